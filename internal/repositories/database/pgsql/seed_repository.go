package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/seedswap/seed_exchange_app/internal/apperrors"
	"github.com/seedswap/seed_exchange_app/internal/core/domain"
	portsrepo "github.com/seedswap/seed_exchange_app/internal/core/ports/repositories"
	"github.com/seedswap/seed_exchange_app/internal/models"
)

const seedColumns = `seed_id, owner_id, name, variety, category, description, image_url,
		is_active, is_available_for_exchange, created_at, last_updated_at`

type PgxSeedRepository struct {
	BaseRepository
}

// newPgxSeedRepository creates a new repository for seed data.
func newPgxSeedRepository(pool *pgxpool.Pool) portsrepo.SeedRepository {
	return &PgxSeedRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SeedRepository = (*PgxSeedRepository)(nil)

// SaveSeed inserts a new seed row.
func (r *PgxSeedRepository) SaveSeed(ctx context.Context, seed domain.Seed) error {
	model := toModelSeed(seed)

	query := `
		INSERT INTO seeds (` + seedColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		model.SeedID,
		model.OwnerID,
		model.Name,
		model.Variety,
		model.Category,
		model.Description,
		model.ImageURL,
		model.IsActive,
		model.IsAvailableForExchange,
		model.CreatedAt,
		model.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("seed %s conflicts with an existing row: %w", model.SeedID, apperrors.ErrDuplicate)
		}
		return wrapQueryErr(fmt.Sprintf("failed to save seed %s", model.SeedID), err)
	}
	return nil
}

// FindSeedByID retrieves a seed by its unique identifier.
func (r *PgxSeedRepository) FindSeedByID(ctx context.Context, seedID string) (*domain.Seed, error) {
	query := `SELECT ` + seedColumns + ` FROM seeds WHERE seed_id = $1;`

	rows, err := r.Pool.Query(ctx, query, seedID)
	if err != nil {
		return nil, wrapQueryErr(fmt.Sprintf("failed to query seed %s", seedID), err)
	}

	model, err := pgx.CollectOneRow(rows, scanSeed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapQueryErr(fmt.Sprintf("failed to scan seed %s", seedID), err)
	}

	seed := toDomainSeed(model)
	return &seed, nil
}

// FindSeedsByIDs retrieves multiple seeds in one round trip. Missing IDs are
// simply absent from the returned map.
func (r *PgxSeedRepository) FindSeedsByIDs(ctx context.Context, seedIDs []string) (map[string]domain.Seed, error) {
	if len(seedIDs) == 0 {
		return map[string]domain.Seed{}, nil
	}

	query := `SELECT ` + seedColumns + ` FROM seeds WHERE seed_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, seedIDs)
	if err != nil {
		return nil, wrapQueryErr("failed to query seeds by ids", err)
	}

	modelSeeds, err := pgx.CollectRows(rows, scanSeed)
	if err != nil {
		return nil, wrapQueryErr("failed to scan seeds by ids", err)
	}

	seeds := make(map[string]domain.Seed, len(modelSeeds))
	for _, m := range modelSeeds {
		seeds[m.SeedID] = toDomainSeed(m)
	}
	return seeds, nil
}

// ListSeedsByOwner retrieves a paginated list of a user's seeds.
func (r *PgxSeedRepository) ListSeedsByOwner(ctx context.Context, ownerID string, limit, offset int) ([]domain.Seed, error) {
	query := `
		SELECT ` + seedColumns + `
		FROM seeds
		WHERE owner_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, wrapQueryErr(fmt.Sprintf("failed to query seeds for owner %s", ownerID), err)
	}

	modelSeeds, err := pgx.CollectRows(rows, scanSeed)
	if err != nil {
		return nil, wrapQueryErr(fmt.Sprintf("failed to scan seeds for owner %s", ownerID), err)
	}

	seeds := make([]domain.Seed, len(modelSeeds))
	for i, m := range modelSeeds {
		seeds[i] = toDomainSeed(m)
	}
	return seeds, nil
}

// CountActiveSeedsByOwner counts a user's active seed listings.
func (r *PgxSeedRepository) CountActiveSeedsByOwner(ctx context.Context, ownerID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM seeds WHERE owner_id = $1 AND is_active;`, ownerID).Scan(&count)
	if err != nil {
		return 0, wrapQueryErr(fmt.Sprintf("failed to count seeds for owner %s", ownerID), err)
	}
	return count, nil
}

// UpdateSeed updates an existing seed's details.
func (r *PgxSeedRepository) UpdateSeed(ctx context.Context, seed domain.Seed) error {
	model := toModelSeed(seed)

	query := `
		UPDATE seeds SET
			name = $2,
			variety = $3,
			category = $4,
			description = $5,
			image_url = $6,
			is_available_for_exchange = $7,
			last_updated_at = $8
		WHERE seed_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		model.SeedID,
		model.Name,
		model.Variety,
		model.Category,
		model.Description,
		model.ImageURL,
		model.IsAvailableForExchange,
		model.LastUpdatedAt,
	)
	if err != nil {
		return wrapQueryErr(fmt.Sprintf("failed to update seed %s", model.SeedID), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivateSeed marks a seed as inactive.
func (r *PgxSeedRepository) DeactivateSeed(ctx context.Context, seedID string, now time.Time) error {
	tag, err := r.Pool.Exec(ctx,
		`UPDATE seeds SET is_active = FALSE, last_updated_at = $2 WHERE seed_id = $1;`,
		seedID, now)
	if err != nil {
		return wrapQueryErr(fmt.Sprintf("failed to deactivate seed %s", seedID), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanSeed(row pgx.CollectableRow) (models.Seed, error) {
	var s models.Seed
	err := row.Scan(
		&s.SeedID,
		&s.OwnerID,
		&s.Name,
		&s.Variety,
		&s.Category,
		&s.Description,
		&s.ImageURL,
		&s.IsActive,
		&s.IsAvailableForExchange,
		&s.CreatedAt,
		&s.LastUpdatedAt,
	)
	return s, err
}

func toModelSeed(s domain.Seed) models.Seed {
	return models.Seed{
		SeedID:                 s.SeedID,
		OwnerID:                s.OwnerID,
		Name:                   s.Name,
		Variety:                s.Variety,
		Category:               s.Category,
		Description:            s.Description,
		ImageURL:               s.ImageURL,
		IsActive:               s.IsActive,
		IsAvailableForExchange: s.IsAvailableForExchange,
		AuditFields: models.AuditFields{
			CreatedAt:     s.CreatedAt,
			LastUpdatedAt: s.LastUpdatedAt,
		},
	}
}

func toDomainSeed(m models.Seed) domain.Seed {
	return domain.Seed{
		SeedID:                 m.SeedID,
		OwnerID:                m.OwnerID,
		Name:                   m.Name,
		Variety:                m.Variety,
		Category:               m.Category,
		Description:            m.Description,
		ImageURL:               m.ImageURL,
		IsActive:               m.IsActive,
		IsAvailableForExchange: m.IsAvailableForExchange,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}
