package core

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultQueryTimeout bounds store access when no timeout is configured.
var DefaultQueryTimeout = 10 * time.Second

// Service provides the query and mutation engine over the observation
// dataset. It holds the injected connection pool; nothing in this
// package reaches for ambient application state.
type Service struct {
	pool         *pgxpool.Pool
	queryTimeout time.Duration
}

// NewService creates a Service backed by the given pool.
// queryTimeout bounds every store round trip; zero or negative values
// fall back to DefaultQueryTimeout.
func NewService(pool *pgxpool.Pool, queryTimeout time.Duration) *Service {
	if queryTimeout <= 0 {
		queryTimeout = DefaultQueryTimeout
	}
	return &Service{
		pool:         pool,
		queryTimeout: queryTimeout,
	}
}

// queryCtx derives a bounded context for a single store operation.
func (s *Service) queryCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.queryTimeout)
}
