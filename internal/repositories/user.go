package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/hyunjk/bookreview/internal/logger"
	"github.com/hyunjk/bookreview/internal/middlewares"
	"github.com/hyunjk/bookreview/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

// pgUniqueViolation is the Postgres error code for a unique constraint
// violation.
const pgUniqueViolation = "23505"

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the user with the given username, or nil when no
// such user exists.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, password_hash, is_admin, created_at
		FROM users
		WHERE username = $1
	`
	return r.getOne(ctx, query, username)
}

// GetByEmail returns the user with the given email, or nil when no such
// user exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, username, email, password_hash, is_admin, created_at
		FROM users
		WHERE email = $1
	`
	return r.getOne(ctx, query, email)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, r.queryer(ctx), &user, query, arg)

	logger.Log.Debugw("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"arg", arg,
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

// ListAll returns every user without the password hash, oldest first.
func (r *UserReadRepository) ListAll(ctx context.Context) ([]models.User, error) {
	const query = `
		SELECT id, username, email, is_admin, created_at
		FROM users
		ORDER BY created_at
	`

	users := []models.User{}
	err := sqlx.SelectContext(ctx, r.queryer(ctx), &users, query)

	logger.Log.Debugw("user list query",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserReadRepository) queryer(ctx context.Context) sqlx.QueryerContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the stored record. A duplicate
// username or email is reported as ErrAlreadyExists even when the
// conflict arises between a service-level pre-check and the insert.
func (r *UserWriteRepository) Save(ctx context.Context, username string, email *string, passwordHash string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (username, email, password_hash, is_admin, created_at)
		VALUES ($1, $2, $3, FALSE, NOW())
		RETURNING id, username, email, password_hash, is_admin, created_at
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.queryer(ctx), &user, query, username, email, passwordHash)

	logger.Log.Debugw("user insert",
		"query", strings.Join(strings.Fields(query), " "),
		"username", username,
		"error", err,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return nil, ErrAlreadyExists
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateIsAdmin sets the admin flag on an existing user and returns the
// updated record, or ErrNotFound when no such user exists. The update is
// idempotent: it never creates or deletes a record.
func (r *UserWriteRepository) UpdateIsAdmin(ctx context.Context, userID uuid.UUID, isAdmin bool) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET is_admin = $2
		WHERE id = $1
		RETURNING id, username, email, password_hash, is_admin, created_at
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.queryer(ctx), &user, query, userID, isAdmin)

	logger.Log.Debugw("user admin update",
		"query", strings.Join(strings.Fields(query), " "),
		"user_id", userID,
		"is_admin", isAdmin,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserWriteRepository) queryer(ctx context.Context) sqlx.QueryerContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db
}
