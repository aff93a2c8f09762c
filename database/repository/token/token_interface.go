package tokenRepo

import (
	"context"
	"time"
)

// RevocationStore remembers revoked bearer tokens by their SHA-256 hash.
type RevocationStore interface {
	// Revoke marks tokenHash as revoked until ttl elapses.
	Revoke(ctx context.Context, tokenHash string, ttl time.Duration) error
	// IsRevoked reports whether tokenHash was revoked and has not expired yet.
	IsRevoked(ctx context.Context, tokenHash string) (bool, error)
}
