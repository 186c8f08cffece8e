package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/actrac/actrac-server/internal/logger"
	"github.com/actrac/actrac-server/internal/models"
)

// ErrDuplicateUser is returned by Save when the username or email
// collides with an existing row. The unique constraints in the users
// table are the authoritative guard; the service-level pre-check only
// exists for a friendlier error path.
var ErrDuplicateUser = errors.New("duplicate username or email")

// uniqueViolation is the PostgreSQL error code for unique_violation.
const uniqueViolation = "23505"

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsernameOrEmail returns the user matching either field.
// Nil pointers disable the corresponding condition. Returns (nil, nil)
// when no row matches.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE ($1::VARCHAR IS NOT NULL AND username = $1)
		   OR ($2::VARCHAR IS NOT NULL AND email = $2)
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username, email)

	logger.Log.Debugw("user lookup",
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID resolves a user id to its public projection. The password
// hash is never selected here. Returns (nil, nil) when no row matches.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	const query = `
		SELECT id, username, email
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("user lookup by id failed", "id", id, "error", err)
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the stored row.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, passwordHash string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (username, email, password_hash, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, username, email, password_hash, created_at
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username, email, passwordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrDuplicateUser
		}
		logger.Log.Errorw("user insert failed", "username", username, "error", err)
		return nil, err
	}

	return &user, nil
}
