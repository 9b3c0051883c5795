package notification

import "context"

// RecipientRateLimiter defines the contract for per-recipient throttling.
// Implementations live in infra/ratelimit/.
type RecipientRateLimiter interface {
	// Allow checks whether an email may be sent to the given recipient.
	// Returns true if allowed, false if rate limited.
	Allow(ctx context.Context, recipient string) (bool, error)
}
