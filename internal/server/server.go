// Package server exposes the HTTP API: interview sessions, plan
// generation and the static funding/tax lookups.
package server

import (
	"time"

	"planmate-backend/internal/common/database"
	"planmate-backend/internal/common/errors"
	"planmate-backend/internal/common/logger"
	"planmate-backend/internal/generation"
	"planmate-backend/internal/interview"
)

// Deps carries everything the handlers need. DB, Redis and Cache may
// be nil; the matching endpoints degrade (readiness skips the probe,
// plan reads go straight to Postgres).
type Deps struct {
	Store     *interview.Store
	Flow      *interview.Flow
	Generator *generation.Service
	PlanCache *generation.PlanCache
	DB        *database.PostgresClient
	Redis     *database.RedisClient
	Logger    logger.Logger
	Now       func() time.Time
}

// Handler owns all HTTP endpoints.
type Handler struct {
	store      *interview.Store
	flow       *interview.Flow
	generator  *generation.Service
	planCache  *generation.PlanCache
	db         *database.PostgresClient
	redis      *database.RedisClient
	errHandler *errors.ErrorHandler
	logger     logger.Logger
	now        func() time.Time
}

// NewHandler wires the handler set.
func NewHandler(deps Deps) *Handler {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &Handler{
		store:      deps.Store,
		flow:       deps.Flow,
		generator:  deps.Generator,
		planCache:  deps.PlanCache,
		db:         deps.DB,
		redis:      deps.Redis,
		errHandler: errors.NewErrorHandler(deps.Logger),
		logger:     deps.Logger,
		now:        now,
	}
}
