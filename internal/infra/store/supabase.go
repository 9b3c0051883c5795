package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"eksemail/internal/domain/notification"

	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"
)

const tableName = "email_logs"

var _ notification.LogStore = (*SupabaseStore)(nil)

// SupabaseStore persists dispatch outcomes in the storefront's backend
// platform, which owns all durable application state. The admin console reads
// the same table through row-level-security-gated queries.
type SupabaseStore struct {
	client *supa.Client
}

// NewSupabaseStore creates a new Supabase-backed email log store.
func NewSupabaseStore(supabaseURL, serviceKey string) (*SupabaseStore, error) {
	client, err := supa.NewClient(supabaseURL, serviceKey, nil)
	if err != nil {
		return nil, fmt.Errorf("creating supabase client: %w", err)
	}
	return &SupabaseStore{client: client}, nil
}

// supabaseRow is the internal representation for Supabase PostgREST insert/select.
type supabaseRow struct {
	ID           string  `json:"id,omitempty"`
	Template     string  `json:"template"`
	Recipient    string  `json:"recipient"`
	Subject      string  `json:"subject,omitempty"`
	Status       string  `json:"status"`
	ProviderID   *string `json:"provider_id,omitempty"`
	ErrorMessage *string `json:"error_message,omitempty"`
	CreatedAt    string  `json:"created_at,omitempty"`
}

// Create inserts a new email log record.
func (s *SupabaseStore) Create(ctx context.Context, log *notification.EmailLog) error {
	row := supabaseRow{
		Template:  log.Template,
		Recipient: log.Recipient,
		Subject:   log.Subject,
		Status:    string(log.Status),
	}

	if log.ProviderID != "" {
		row.ProviderID = &log.ProviderID
	}
	if log.ErrorMessage != "" {
		row.ErrorMessage = &log.ErrorMessage
	}

	data, _, err := s.client.From(tableName).Insert(row, false, "", "representation", "").Execute()
	if err != nil {
		return fmt.Errorf("inserting email log: %w", err)
	}

	var results []supabaseRow
	if err := json.Unmarshal(data, &results); err != nil {
		return fmt.Errorf("parsing insert response: %w", err)
	}

	if len(results) > 0 {
		log.ID = results[0].ID
		if results[0].CreatedAt != "" {
			if t, err := time.Parse(time.RFC3339Nano, results[0].CreatedAt); err == nil {
				log.CreatedAt = t
			}
		}
	}

	return nil
}

// List retrieves email logs with pagination and filtering, newest first.
func (s *SupabaseStore) List(ctx context.Context, filter notification.ListFilter) ([]*notification.EmailLog, int, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	offset := (filter.Page - 1) * filter.PageSize

	query := s.client.From(tableName).Select("*", "exact", false)

	if filter.Status != "" {
		query = query.Eq("status", filter.Status)
	}
	if filter.Recipient != "" {
		query = query.Eq("recipient", filter.Recipient)
	}
	if filter.Template != "" {
		query = query.Eq("template", filter.Template)
	}

	query = query.Order("created_at", &postgrest.OrderOpts{Ascending: false})
	query = query.Range(offset, offset+filter.PageSize-1, "")

	data, count, err := query.Execute()
	if err != nil {
		return nil, 0, fmt.Errorf("listing email logs: %w", err)
	}

	var rows []supabaseRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, 0, fmt.Errorf("parsing email log list: %w", err)
	}

	logs := make([]*notification.EmailLog, len(rows))
	for i, row := range rows {
		logs[i] = rowToLog(&row)
	}

	return logs, int(count), nil
}

// rowToLog converts a supabaseRow to an EmailLog.
func rowToLog(row *supabaseRow) *notification.EmailLog {
	log := &notification.EmailLog{
		ID:        row.ID,
		Template:  row.Template,
		Recipient: row.Recipient,
		Subject:   row.Subject,
		Status:    notification.DeliveryStatus(row.Status),
	}

	if row.ProviderID != nil {
		log.ProviderID = *row.ProviderID
	}
	if row.ErrorMessage != nil {
		log.ErrorMessage = *row.ErrorMessage
	}
	if row.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, row.CreatedAt); err == nil {
			log.CreatedAt = t
		}
	}

	return log
}
