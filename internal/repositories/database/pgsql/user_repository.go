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

const userColumns = `user_id, name, email, password_hash, location, whatsapp_number,
		profile_image_url, allow_exchange_requests, show_whatsapp, created_at, last_updated_at`

type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

// SaveUser inserts a new user row.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	model := toModelUser(user)

	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		model.UserID,
		model.Name,
		model.Email,
		model.PasswordHash,
		model.Location,
		model.WhatsAppNumber,
		model.ProfileImageURL,
		model.AllowExchangeRequests,
		model.ShowWhatsApp,
		model.CreatedAt,
		model.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user with email %s already exists: %w", model.Email, apperrors.ErrDuplicate)
		}
		return wrapQueryErr(fmt.Sprintf("failed to save user %s", model.UserID), err)
	}
	return nil
}

// FindUserByID retrieves a user by their unique identifier.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findUserBy(ctx, "user_id", userID)
}

// FindUserByEmail retrieves a user by email, for login.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUserBy(ctx, "email", email)
}

func (r *PgxUserRepository) findUserBy(ctx context.Context, column, value string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + column + ` = $1;`

	rows, err := r.Pool.Query(ctx, query, value)
	if err != nil {
		return nil, wrapQueryErr(fmt.Sprintf("failed to query user by %s", column), err)
	}

	model, err := pgx.CollectOneRow(rows, scanUser)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapQueryErr(fmt.Sprintf("failed to scan user by %s", column), err)
	}

	user := toDomainUser(model)
	return &user, nil
}

// UpdateUser updates an existing user's profile and settings.
func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	model := toModelUser(user)

	query := `
		UPDATE users SET
			name = $2,
			location = $3,
			whatsapp_number = $4,
			profile_image_url = $5,
			allow_exchange_requests = $6,
			show_whatsapp = $7,
			last_updated_at = $8
		WHERE user_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		model.UserID,
		model.Name,
		model.Location,
		model.WhatsAppNumber,
		model.ProfileImageURL,
		model.AllowExchangeRequests,
		model.ShowWhatsApp,
		model.LastUpdatedAt,
	)
	if err != nil {
		return wrapQueryErr(fmt.Sprintf("failed to update user %s", model.UserID), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.CollectableRow) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.UserID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Location,
		&u.WhatsAppNumber,
		&u.ProfileImageURL,
		&u.AllowExchangeRequests,
		&u.ShowWhatsApp,
		&u.CreatedAt,
		&u.LastUpdatedAt,
	)
	return u, err
}

func toModelUser(u domain.User) models.User {
	return models.User{
		UserID:                u.UserID,
		Name:                  u.Name,
		Email:                 u.Email,
		PasswordHash:          u.PasswordHash,
		Location:              u.Location,
		WhatsAppNumber:        u.WhatsAppNumber,
		ProfileImageURL:       u.ProfileImageURL,
		AllowExchangeRequests: u.Settings.Privacy.AllowExchangeRequests,
		ShowWhatsApp:          u.Settings.Privacy.ShowWhatsApp,
		AuditFields: models.AuditFields{
			CreatedAt:     u.CreatedAt,
			LastUpdatedAt: u.LastUpdatedAt,
		},
	}
}

func toDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:          m.UserID,
		Name:            m.Name,
		Email:           m.Email,
		PasswordHash:    m.PasswordHash,
		Location:        m.Location,
		WhatsAppNumber:  m.WhatsAppNumber,
		ProfileImageURL: m.ProfileImageURL,
		Settings: domain.UserSettings{
			Privacy: domain.PrivacySettings{
				AllowExchangeRequests: m.AllowExchangeRequests,
				ShowWhatsApp:          m.ShowWhatsApp,
			},
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}
