package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jkeller/lifetable/internal/core"
)

// ErrEmailTaken reports a signup with an already-registered email.
var ErrEmailTaken = errors.New("email already registered")

// ErrInvalidCredentials reports a failed login. Unknown email and
// wrong password return this same error so user-facing text cannot
// distinguish the two cases.
var ErrInvalidCredentials = errors.New("invalid email or password")

// DefaultPlan is assigned to new accounts.
const DefaultPlan = "free"

// Service performs signup and login against the users table.
type Service struct {
	pool         *pgxpool.Pool
	queryTimeout time.Duration
}

// NewService creates a credential service backed by the given pool.
func NewService(pool *pgxpool.Pool, queryTimeout time.Duration) *Service {
	if queryTimeout <= 0 {
		queryTimeout = core.DefaultQueryTimeout
	}
	return &Service{pool: pool, queryTimeout: queryTimeout}
}

// Signup validates the fields, hashes the password, and inserts the
// user. A duplicate email returns ErrEmailTaken; other store failures
// come back wrapped as core.StoreError.
func (s *Service) Signup(ctx context.Context, name, email, password string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return &core.ValidationError{Field: "name", Message: "name is required"}
	}
	if email == "" {
		return &core.ValidationError{Field: "email", Message: "email is required"}
	}
	if password == "" {
		return &core.ValidationError{Field: "password", Message: "password is required"}
	}

	hash, err := HashPassword(password)
	if err != nil {
		return &core.ValidationError{Field: "password", Message: err.Error()}
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	_, err = s.pool.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, plan) VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), name, email, hash, DefaultPlan)
	if err != nil {
		if core.IsUniqueViolation(err) {
			return ErrEmailTaken
		}
		return &core.StoreError{Op: "insert user", Err: err}
	}
	return nil
}

// Login verifies the claimed credentials and returns the user's ID.
// Any mismatch, whether the email is unknown or the password is wrong,
// returns ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (uuid.UUID, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return uuid.Nil, &core.ValidationError{Field: "email", Message: "email is required"}
	}
	if password == "" {
		return uuid.Nil, &core.ValidationError{Field: "password", Message: "password is required"}
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	var (
		id   uuid.UUID
		hash string
	)
	err := s.pool.QueryRow(ctx, `SELECT id, password_hash FROM users WHERE email = $1`, email).Scan(&id, &hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, ErrInvalidCredentials
	}
	if err != nil {
		return uuid.Nil, &core.StoreError{Op: "lookup user", Err: err}
	}

	if !VerifyPassword(password, hash) {
		return uuid.Nil, ErrInvalidCredentials
	}
	return id, nil
}
