package repositories

import (
	"dashboard-backend/internal/logger"
	"dashboard-backend/internal/metrics"
)

var repoLog = logger.WithComponent("repositories")

// StoreError is the single failure kind surfaced by this layer. It names the
// operation that failed and wraps the underlying store error for diagnostics;
// the raw cause is logged here and never exposed past the service boundary.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return e.Op }

func (e *StoreError) Unwrap() error { return e.Err }

// storeFail emits the structured diagnostic for a failed query, bumps the
// error counter, and returns the coarse operation-named failure.
func storeFail(op string, err error) error {
	repoLog.Error().Str("op", op).Err(err).Msg("store query failed")
	metrics.StoreQueryErrors.WithLabelValues(op).Inc()
	return &StoreError{Op: op, Err: err}
}
