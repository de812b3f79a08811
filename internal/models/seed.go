package models

// Seed is the database representation of a seed listing.
type Seed struct {
	SeedID                 string
	OwnerID                string
	Name                   string
	Variety                string
	Category               string
	Description            string
	ImageURL               string
	IsActive               bool
	IsAvailableForExchange bool
	AuditFields
}
