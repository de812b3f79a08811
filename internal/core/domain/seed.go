package domain

// Seed represents a tradeable seed listing owned by exactly one user.
type Seed struct {
	SeedID      string `json:"seedID"`
	OwnerID     string `json:"ownerID"`
	Name        string `json:"name"`
	Variety     string `json:"variety"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageURL    string `json:"imageURL"`
	// IsActive is the listing's soft-delete flag. IsAvailableForExchange is
	// the owner's opt-in; both are snapshots consulted at request creation
	// only, not continuously re-validated.
	IsActive               bool `json:"isActive"`
	IsAvailableForExchange bool `json:"isAvailableForExchange"`
	AuditFields
}

// AvailableForExchange reports whether a new exchange request may target this seed.
func (s Seed) AvailableForExchange() bool {
	return s.IsActive && s.IsAvailableForExchange
}
