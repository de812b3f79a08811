package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/seedswap/seed_exchange_app/internal/apperrors"
	"github.com/seedswap/seed_exchange_app/internal/core/domain"
	portsrepo "github.com/seedswap/seed_exchange_app/internal/core/ports/repositories"
	"github.com/seedswap/seed_exchange_app/internal/models"
)

const exchangeColumns = `exchange_id, requester_id, owner_id, seed_requested_id, seed_offered_id,
		status, message, notes, accepted_at, accepted_by, rejected_at, rejected_by,
		completed_at, completed_by, version, created_at, last_updated_at`

type PgxExchangeRepository struct {
	BaseRepository
}

// newPgxExchangeRepository creates a new repository for exchange data.
func newPgxExchangeRepository(pool *pgxpool.Pool) portsrepo.ExchangeRepository {
	return &PgxExchangeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ExchangeRepository = (*PgxExchangeRepository)(nil)

// SaveExchange inserts a new exchange row.
func (r *PgxExchangeRepository) SaveExchange(ctx context.Context, exchange domain.Exchange) error {
	model := toModelExchange(exchange)

	query := `
		INSERT INTO exchanges (` + exchangeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`

	_, err := r.Pool.Exec(ctx, query,
		model.ExchangeID,
		model.RequesterID,
		model.OwnerID,
		model.SeedRequestedID,
		model.SeedOfferedID,
		model.Status,
		model.Message,
		model.Notes,
		model.AcceptedAt,
		model.AcceptedBy,
		model.RejectedAt,
		model.RejectedBy,
		model.CompletedAt,
		model.CompletedBy,
		model.Version,
		model.CreatedAt,
		model.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("exchange %s conflicts with an existing row: %w", model.ExchangeID, apperrors.ErrDuplicate)
		}
		return wrapQueryErr(fmt.Sprintf("failed to save exchange %s", model.ExchangeID), err)
	}
	return nil
}

// FindExchangeByID retrieves an exchange by its unique identifier.
func (r *PgxExchangeRepository) FindExchangeByID(ctx context.Context, exchangeID string) (*domain.Exchange, error) {
	query := `SELECT ` + exchangeColumns + ` FROM exchanges WHERE exchange_id = $1;`

	rows, err := r.Pool.Query(ctx, query, exchangeID)
	if err != nil {
		return nil, wrapQueryErr(fmt.Sprintf("failed to query exchange %s", exchangeID), err)
	}

	model, err := pgx.CollectOneRow(rows, scanExchange)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapQueryErr(fmt.Sprintf("failed to scan exchange %s", exchangeID), err)
	}

	exchange := toDomainExchange(model)
	return &exchange, nil
}

// ListExchangesByOwner retrieves a user's received exchanges, newest first.
func (r *PgxExchangeRepository) ListExchangesByOwner(ctx context.Context, ownerID string, statuses []domain.ExchangeStatus, limit int) ([]domain.Exchange, error) {
	return r.listByParty(ctx, "owner_id", ownerID, statuses, limit)
}

// ListExchangesByRequester retrieves a user's sent exchanges, newest first.
func (r *PgxExchangeRepository) ListExchangesByRequester(ctx context.Context, requesterID string, statuses []domain.ExchangeStatus, limit int) ([]domain.Exchange, error) {
	return r.listByParty(ctx, "requester_id", requesterID, statuses, limit)
}

func (r *PgxExchangeRepository) listByParty(ctx context.Context, column, userID string, statuses []domain.ExchangeStatus, limit int) ([]domain.Exchange, error) {
	query := `SELECT ` + exchangeColumns + ` FROM exchanges WHERE ` + column + ` = $1`
	args := []any{userID}
	if len(statuses) > 0 {
		query += ` AND status = ANY($2)`
		args = append(args, statusStrings(statuses))
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryErr(fmt.Sprintf("failed to query exchanges for %s %s", column, userID), err)
	}

	modelExchanges, err := pgx.CollectRows(rows, scanExchange)
	if err != nil {
		return nil, wrapQueryErr(fmt.Sprintf("failed to scan exchanges for %s %s", column, userID), err)
	}

	return toDomainExchangeSlice(modelExchanges), nil
}

// HasActiveExchange reports whether a pending/accepted exchange already exists
// for the exact triple.
func (r *PgxExchangeRepository) HasActiveExchange(ctx context.Context, requesterID, seedRequestedID, seedOfferedID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM exchanges
			WHERE requester_id = $1
			  AND seed_requested_id = $2
			  AND seed_offered_id = $3
			  AND status IN ('pending', 'accepted')
		);
	`
	var exists bool
	err := r.Pool.QueryRow(ctx, query, requesterID, seedRequestedID, seedOfferedID).Scan(&exists)
	if err != nil {
		return false, wrapQueryErr("failed to check active exchange", err)
	}
	return exists, nil
}

// ListActiveExchangesForSeed retrieves pending/accepted exchanges touching the
// seed on either side.
func (r *PgxExchangeRepository) ListActiveExchangesForSeed(ctx context.Context, seedID string) ([]domain.Exchange, error) {
	query := `
		SELECT ` + exchangeColumns + `
		FROM exchanges
		WHERE (seed_requested_id = $1 OR seed_offered_id = $1)
		  AND status IN ('pending', 'accepted')
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, seedID)
	if err != nil {
		return nil, wrapQueryErr(fmt.Sprintf("failed to query active exchanges for seed %s", seedID), err)
	}

	modelExchanges, err := pgx.CollectRows(rows, scanExchange)
	if err != nil {
		return nil, wrapQueryErr(fmt.Sprintf("failed to scan active exchanges for seed %s", seedID), err)
	}

	return toDomainExchangeSlice(modelExchanges), nil
}

// UpdateExchangeStatus persists the status, transition fields and version of
// an already-loaded exchange. Last write wins.
func (r *PgxExchangeRepository) UpdateExchangeStatus(ctx context.Context, exchange domain.Exchange) error {
	model := toModelExchange(exchange)

	query := `
		UPDATE exchanges SET
			status = $2,
			accepted_at = $3,
			accepted_by = $4,
			rejected_at = $5,
			rejected_by = $6,
			completed_at = $7,
			completed_by = $8,
			version = $9,
			last_updated_at = $10
		WHERE exchange_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		model.ExchangeID,
		model.Status,
		model.AcceptedAt,
		model.AcceptedBy,
		model.RejectedAt,
		model.RejectedBy,
		model.CompletedAt,
		model.CompletedBy,
		model.Version,
		model.LastUpdatedAt,
	)
	if err != nil {
		return wrapQueryErr(fmt.Sprintf("failed to update exchange %s", model.ExchangeID), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteExchange hard-deletes an exchange row.
func (r *PgxExchangeRepository) DeleteExchange(ctx context.Context, exchangeID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM exchanges WHERE exchange_id = $1;`, exchangeID)
	if err != nil {
		return wrapQueryErr(fmt.Sprintf("failed to delete exchange %s", exchangeID), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanExchange(row pgx.CollectableRow) (models.Exchange, error) {
	var e models.Exchange
	err := row.Scan(
		&e.ExchangeID,
		&e.RequesterID,
		&e.OwnerID,
		&e.SeedRequestedID,
		&e.SeedOfferedID,
		&e.Status,
		&e.Message,
		&e.Notes,
		&e.AcceptedAt,
		&e.AcceptedBy,
		&e.RejectedAt,
		&e.RejectedBy,
		&e.CompletedAt,
		&e.CompletedBy,
		&e.Version,
		&e.CreatedAt,
		&e.LastUpdatedAt,
	)
	return e, err
}

func statusStrings(statuses []domain.ExchangeStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func toModelExchange(e domain.Exchange) models.Exchange {
	return models.Exchange{
		ExchangeID:      e.ExchangeID,
		RequesterID:     e.RequesterID,
		OwnerID:         e.OwnerID,
		SeedRequestedID: e.SeedRequestedID,
		SeedOfferedID:   e.SeedOfferedID,
		Status:          models.ExchangeStatus(e.Status),
		Message:         e.Message,
		Notes:           e.Notes,
		AcceptedAt:      e.AcceptedAt,
		AcceptedBy:      optionalString(e.AcceptedBy),
		RejectedAt:      e.RejectedAt,
		RejectedBy:      optionalString(e.RejectedBy),
		CompletedAt:     e.CompletedAt,
		CompletedBy:     optionalString(e.CompletedBy),
		Version:         e.Version,
		AuditFields: models.AuditFields{
			CreatedAt:     e.CreatedAt,
			LastUpdatedAt: e.LastUpdatedAt,
		},
	}
}

func toDomainExchange(m models.Exchange) domain.Exchange {
	return domain.Exchange{
		ExchangeID:      m.ExchangeID,
		RequesterID:     m.RequesterID,
		OwnerID:         m.OwnerID,
		SeedRequestedID: m.SeedRequestedID,
		SeedOfferedID:   m.SeedOfferedID,
		Status:          domain.ExchangeStatus(m.Status),
		Message:         m.Message,
		Notes:           m.Notes,
		AcceptedAt:      m.AcceptedAt,
		AcceptedBy:      stringValue(m.AcceptedBy),
		RejectedAt:      m.RejectedAt,
		RejectedBy:      stringValue(m.RejectedBy),
		CompletedAt:     m.CompletedAt,
		CompletedBy:     stringValue(m.CompletedBy),
		Version:         m.Version,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

func toDomainExchangeSlice(modelExchanges []models.Exchange) []domain.Exchange {
	exchanges := make([]domain.Exchange, len(modelExchanges))
	for i, m := range modelExchanges {
		exchanges[i] = toDomainExchange(m)
	}
	return exchanges
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
