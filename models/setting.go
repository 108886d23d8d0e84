package models

// Setting is one key of the flat application settings mapping: company
// branding (company_name, logo, whatsapp_contact), theme and the
// push_notifications_enabled flag. Boolean values are stored as the strings
// "true"/"false" and coerced on read.
type Setting struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}
