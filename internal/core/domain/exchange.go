package domain

import "time"

// ExchangeStatus is the lifecycle state of an exchange request.
type ExchangeStatus string

const (
	StatusPending   ExchangeStatus = "pending"
	StatusAccepted  ExchangeStatus = "accepted"
	StatusRejected  ExchangeStatus = "rejected"
	StatusCompleted ExchangeStatus = "completed"
)

// IsValid reports whether s is one of the four known statuses.
func (s ExchangeStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is permitted from s.
func (s ExchangeStatus) IsTerminal() bool {
	return s == StatusRejected || s == StatusCompleted
}

// allowedTransitions is the directed edge list of the status machine.
var allowedTransitions = map[ExchangeStatus][]ExchangeStatus{
	StatusPending:   {StatusAccepted, StatusRejected},
	StatusAccepted:  {StatusCompleted, StatusRejected},
	StatusRejected:  {},
	StatusCompleted: {},
}

// CanTransition reports whether the status machine allows moving from -> to.
func CanTransition(from, to ExchangeStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ActorPermitted reports whether actorID may drive the exchange to newStatus.
// Accepting and rejecting is reserved to the seed owner; completing an
// accepted exchange is open to either party.
func (e Exchange) ActorPermitted(newStatus ExchangeStatus, actorID string) bool {
	switch newStatus {
	case StatusAccepted, StatusRejected:
		return e.OwnerID == actorID
	case StatusCompleted:
		return e.OwnerID == actorID || e.RequesterID == actorID
	}
	return false
}

// Exchange is the lifecycle record tracking a proposed seed swap between two users.
type Exchange struct {
	ExchangeID      string         `json:"exchangeID"`
	RequesterID     string         `json:"requesterID"`
	OwnerID         string         `json:"ownerID"`
	SeedRequestedID string         `json:"seedRequestedID"`
	SeedOfferedID   string         `json:"seedOfferedID"`
	Status          ExchangeStatus `json:"status"`
	Message         string         `json:"message"`
	Notes           string         `json:"notes"`

	AcceptedAt  *time.Time `json:"acceptedAt,omitempty"`
	AcceptedBy  string     `json:"acceptedBy,omitempty"`
	RejectedAt  *time.Time `json:"rejectedAt,omitempty"`
	RejectedBy  string     `json:"rejectedBy,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CompletedBy string     `json:"completedBy,omitempty"`

	// Version is bumped on every mutation. It is advisory only: writers do
	// not reject stale versions, but readers can detect a missed update.
	Version int64 `json:"version"`

	AuditFields
}

// ExchangeRole is the side a given user plays in an exchange.
type ExchangeRole string

const (
	RoleOwner     ExchangeRole = "owner"
	RoleRequester ExchangeRole = "requester"
)
