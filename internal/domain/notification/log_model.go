package notification

import "time"

// DeliveryStatus represents the outcome of a dispatch attempt.
type DeliveryStatus string

const (
	StatusSent   DeliveryStatus = "sent"
	StatusFailed DeliveryStatus = "failed"
)

// EmailLog is the persisted record of one dispatch attempt. The dispatch
// itself is fire-and-forget; the log exists so the admin console can audit
// what was (or wasn't) sent.
type EmailLog struct {
	ID           string         `json:"id"`
	Template     string         `json:"template"`
	Recipient    string         `json:"recipient"`
	Subject      string         `json:"subject"`
	Status       DeliveryStatus `json:"status"`
	ProviderID   string         `json:"provider_id,omitempty"`
	ErrorMessage string         `json:"error_message,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// ListFilter defines pagination and filtering options for listing email logs.
type ListFilter struct {
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
	Status    string `form:"status"`
	Recipient string `form:"recipient"`
	Template  string `form:"template"`
}

// ListResponse wraps a paginated list of email logs.
type ListResponse struct {
	Logs     []*EmailLog `json:"logs"`
	Total    int         `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}
