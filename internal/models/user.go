package models

// User is the database representation of a registered user.
// Privacy settings are stored as flat boolean columns.
type User struct {
	UserID                string
	Name                  string
	Email                 string
	PasswordHash          string
	Location              string
	WhatsAppNumber        string
	ProfileImageURL       string
	AllowExchangeRequests bool
	ShowWhatsApp          bool
	AuditFields
}
