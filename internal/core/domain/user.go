package domain

// PrivacySettings controls what other users may do or see.
type PrivacySettings struct {
	AllowExchangeRequests bool `json:"allowExchangeRequests"`
	ShowWhatsApp          bool `json:"showWhatsApp"`
}

// UserSettings groups per-user preferences.
type UserSettings struct {
	Privacy PrivacySettings `json:"privacy"`
}

// DefaultUserSettings are applied to newly registered users.
func DefaultUserSettings() UserSettings {
	return UserSettings{
		Privacy: PrivacySettings{
			AllowExchangeRequests: true,
			ShowWhatsApp:          true,
		},
	}
}

// User represents a registered participant in the exchange community.
type User struct {
	UserID          string       `json:"userID"`
	Name            string       `json:"name"`
	Email           string       `json:"email"`
	PasswordHash    string       `json:"-"`
	Location        string       `json:"location"`
	WhatsAppNumber  string       `json:"whatsappNumber"`
	ProfileImageURL string       `json:"profileImageURL"`
	Settings        UserSettings `json:"settings"`
	AuditFields
}

// ProfileComplete reports whether the profile has the fields other users need
// to follow through on an exchange.
func (u User) ProfileComplete() bool {
	return u.Name != "" && u.WhatsAppNumber != ""
}
