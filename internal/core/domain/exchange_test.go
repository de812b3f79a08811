package domain_test

import (
	"strings"
	"testing"

	"github.com/seedswap/seed_exchange_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	all := []domain.ExchangeStatus{
		domain.StatusPending,
		domain.StatusAccepted,
		domain.StatusRejected,
		domain.StatusCompleted,
	}

	allowed := map[domain.ExchangeStatus][]domain.ExchangeStatus{
		domain.StatusPending:  {domain.StatusAccepted, domain.StatusRejected},
		domain.StatusAccepted: {domain.StatusCompleted, domain.StatusRejected},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, next := range allowed[from] {
				if next == to {
					want = true
				}
			}
			got := domain.CanTransition(from, to)
			assert.Equal(t, want, got, "transition %s -> %s", from, to)
		}
	}
}

func TestTerminalStatusesHaveNoOutgoingEdges(t *testing.T) {
	all := []domain.ExchangeStatus{
		domain.StatusPending,
		domain.StatusAccepted,
		domain.StatusRejected,
		domain.StatusCompleted,
	}

	for _, terminal := range []domain.ExchangeStatus{domain.StatusRejected, domain.StatusCompleted} {
		assert.True(t, terminal.IsTerminal())
		for _, to := range all {
			assert.False(t, domain.CanTransition(terminal, to), "%s must be terminal", terminal)
		}
	}
	assert.False(t, domain.StatusPending.IsTerminal())
	assert.False(t, domain.StatusAccepted.IsTerminal())
}

func TestActorPermitted(t *testing.T) {
	exchange := domain.Exchange{
		RequesterID: "requester-1",
		OwnerID:     "owner-1",
	}

	tests := []struct {
		name      string
		newStatus domain.ExchangeStatus
		actorID   string
		want      bool
	}{
		{"owner accepts", domain.StatusAccepted, "owner-1", true},
		{"requester cannot accept", domain.StatusAccepted, "requester-1", false},
		{"owner rejects", domain.StatusRejected, "owner-1", true},
		{"requester cannot reject", domain.StatusRejected, "requester-1", false},
		{"owner completes", domain.StatusCompleted, "owner-1", true},
		{"requester completes", domain.StatusCompleted, "requester-1", true},
		{"stranger cannot complete", domain.StatusCompleted, "someone-else", false},
		{"nobody moves to pending", domain.StatusPending, "owner-1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exchange.ActorPermitted(tt.newStatus, tt.actorID))
		})
	}
}

func TestValidateExchangePayload(t *testing.T) {
	valid := domain.ExchangePayload{
		RequesterID:     "user-b",
		OwnerID:         "user-a",
		SeedRequestedID: "seed-x",
		SeedOfferedID:   "seed-y",
		Status:          domain.StatusPending,
		Message:         "hi",
	}

	t.Run("valid payload", func(t *testing.T) {
		res := domain.ValidateExchangePayload(valid)
		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
	})

	t.Run("missing required fields", func(t *testing.T) {
		res := domain.ValidateExchangePayload(domain.ExchangePayload{})
		assert.False(t, res.Valid)
		assert.Len(t, res.Errors, 4)
	})

	t.Run("requester equals owner", func(t *testing.T) {
		p := valid
		p.OwnerID = p.RequesterID
		res := domain.ValidateExchangePayload(p)
		assert.False(t, res.Valid)
		assert.Contains(t, res.Errors, "requester and owner must be different users")
	})

	t.Run("same seed on both sides", func(t *testing.T) {
		p := valid
		p.SeedOfferedID = p.SeedRequestedID
		res := domain.ValidateExchangePayload(p)
		assert.False(t, res.Valid)
		assert.Contains(t, res.Errors, "cannot exchange a seed for itself")
	})

	t.Run("unknown status", func(t *testing.T) {
		p := valid
		p.Status = domain.ExchangeStatus("archived")
		res := domain.ValidateExchangePayload(p)
		assert.False(t, res.Valid)
		assert.Contains(t, res.Errors, "unknown exchange status")
	})

	t.Run("empty status is allowed", func(t *testing.T) {
		p := valid
		p.Status = ""
		res := domain.ValidateExchangePayload(p)
		assert.True(t, res.Valid)
	})

	t.Run("message too long", func(t *testing.T) {
		p := valid
		p.Message = strings.Repeat("x", domain.MaxMessageLength+1)
		res := domain.ValidateExchangePayload(p)
		assert.False(t, res.Valid)
		assert.Contains(t, res.Errors, "message exceeds maximum length")
	})
}

func TestNotificationTypeForStatus(t *testing.T) {
	assert.Equal(t, domain.NotificationExchangeAccepted, domain.NotificationTypeForStatus(domain.StatusAccepted))
	assert.Equal(t, domain.NotificationExchangeRejected, domain.NotificationTypeForStatus(domain.StatusRejected))
	assert.Equal(t, domain.NotificationExchangeCompleted, domain.NotificationTypeForStatus(domain.StatusCompleted))
	assert.Equal(t, domain.NotificationSystemMessage, domain.NotificationTypeForStatus(domain.StatusPending))
}
