package domain

import "strings"

// MaxMessageLength bounds the free-text message attached to a request.
const MaxMessageLength = 500

// ExchangePayload carries the caller-supplied fields of a candidate exchange,
// before ids are resolved against the store.
type ExchangePayload struct {
	RequesterID     string
	OwnerID         string
	SeedRequestedID string
	SeedOfferedID   string
	Status          ExchangeStatus
	Message         string
}

// ValidationResult is the outcome of a pure payload validation.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// ValidateExchangePayload runs the structural business checks on a candidate
// exchange. It is pure: no I/O, no side effects. All failed checks are
// reported, in order.
func ValidateExchangePayload(p ExchangePayload) ValidationResult {
	var errs []string

	if strings.TrimSpace(p.RequesterID) == "" {
		errs = append(errs, "requester id is required")
	}
	if strings.TrimSpace(p.OwnerID) == "" {
		errs = append(errs, "owner id is required")
	}
	if strings.TrimSpace(p.SeedRequestedID) == "" {
		errs = append(errs, "requested seed id is required")
	}
	if strings.TrimSpace(p.SeedOfferedID) == "" {
		errs = append(errs, "offered seed id is required")
	}
	if p.RequesterID != "" && p.RequesterID == p.OwnerID {
		errs = append(errs, "requester and owner must be different users")
	}
	if p.SeedRequestedID != "" && p.SeedRequestedID == p.SeedOfferedID {
		errs = append(errs, "cannot exchange a seed for itself")
	}
	if p.Status != "" && !p.Status.IsValid() {
		errs = append(errs, "unknown exchange status")
	}
	if len(p.Message) > MaxMessageLength {
		errs = append(errs, "message exceeds maximum length")
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
