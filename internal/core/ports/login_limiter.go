package ports

import "context"

// LoginLimiter throttles repeated failed logins per account identifier.
// Implementations are expected to degrade open: a broken backend must not
// make login unavailable.
type LoginLimiter interface {
	// Exhausted reports whether the failure budget for the identifier is spent.
	Exhausted(ctx context.Context, identifier string) (bool, error)
	// RecordFailure counts one failed attempt against the identifier.
	RecordFailure(ctx context.Context, identifier string) error
	// Reset clears the failure count after a successful login.
	Reset(ctx context.Context, identifier string) error
}
