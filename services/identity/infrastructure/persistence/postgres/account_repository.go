package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/campusmart/campusmart/pkg/campus"
	"github.com/campusmart/campusmart/pkg/database"
	identitydomain "github.com/campusmart/campusmart/services/identity/domain"
	"github.com/campusmart/campusmart/services/identity/domain/models"
)

// AccountRepository implements repositories.AccountRepository against PostgreSQL.
type AccountRepository struct {
	db *database.Database
}

// NewAccountRepository returns an AccountRepository backed by the given connection pool.
func NewAccountRepository(database *database.Database) *AccountRepository {
	return &AccountRepository{db: database}
}

// Create persists a new Account. Returns ErrEmailTaken on unique constraint violations.
func (r *AccountRepository) Create(ctx context.Context, a *models.Account) error {
	_, err := r.db.DB().ExecContext(ctx, `
		INSERT INTO accounts (id, email, password_hash, campus, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.Email, a.PasswordHash, string(a.Campus), a.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return identitydomain.ErrEmailTaken
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByEmail returns the account for email or ErrAccountNotFound.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT id, email, password_hash, campus, created_at
		FROM accounts
		WHERE email = $1`, email)

	var (
		a         models.Account
		campusKey string
	)
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &campusKey, &a.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, identitydomain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("query account: %w", err)
	}
	a.Campus = campus.Key(campusKey)
	return &a, nil
}
