package notification

import "context"

// LogStore defines the contract for persisting dispatch outcomes.
// Implementations live in infra/store/ (e.g., Supabase).
type LogStore interface {
	// Create inserts a new email log record.
	Create(ctx context.Context, log *EmailLog) error

	// List retrieves email logs with pagination and filtering.
	List(ctx context.Context, filter ListFilter) ([]*EmailLog, int, error)
}
