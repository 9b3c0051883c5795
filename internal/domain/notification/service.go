package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"eksemail/internal/common"
)

// Service orchestrates one email dispatch: resolve template → render →
// single synchronous send → record outcome. There is no queue and no retry;
// delivery is at-most-once and the caller owns any retry policy.
type Service struct {
	renderer    TemplateRenderer
	provider    Provider
	store       LogStore
	rateLimiter RecipientRateLimiter
}

// NewService creates a new notification service. store and rateLimiter are
// optional; pass nil to run without delivery logging or contact throttling.
func NewService(renderer TemplateRenderer, provider Provider, store LogStore, rateLimiter RecipientRateLimiter) *Service {
	return &Service{
		renderer:    renderer,
		provider:    provider,
		store:       store,
		rateLimiter: rateLimiter,
	}
}

// Dispatch validates the request, renders the template, and performs exactly
// one outbound send. A lookup failure stops the dispatch before any network
// I/O — nothing is ever sent from an unknown template.
func (s *Service) Dispatch(ctx context.Context, req *SendRequest) error {
	start := time.Now()
	id := TemplateID(req.Template)

	if !IsValidTemplate(id) {
		return common.NewLookupError(req.Template)
	}

	// The contact acknowledgment is the only template a site visitor can
	// trigger; throttle it per sender. Fail open when Redis is unavailable.
	if id == TemplateContactAck && s.rateLimiter != nil {
		allowed, err := s.rateLimiter.Allow(ctx, req.To)
		if err != nil {
			slog.Error("rate limit check failed, proceeding without limit", "recipient", req.To, "error", err)
		} else if !allowed {
			return common.NewValidationError(fmt.Sprintf("rate limit exceeded for recipient: %s", req.To))
		}
	}

	subject, html, err := s.renderer.Render(id, req.Data)
	if err != nil {
		s.record(ctx, req, "", StatusFailed, "", err.Error())
		return fmt.Errorf("rendering template %s: %w", id, err)
	}

	// The caller's subject wins; the registry default fills the gap.
	if req.Subject != "" {
		subject = req.Subject
	}

	msg := &Message{
		To:      req.To,
		Subject: subject,
		HTML:    html,
	}

	providerID, err := s.provider.Send(ctx, msg)
	if err != nil {
		s.record(ctx, req, subject, StatusFailed, "", err.Error())

		slog.Error("email delivery failed",
			"template", id,
			"to", req.To,
			"provider", s.provider.Name(),
			"error", err,
			"duration", time.Since(start),
		)
		return common.NewTransportError(s.provider.Name(), err.Error())
	}

	s.record(ctx, req, subject, StatusSent, providerID, "")

	slog.Info("email sent",
		"template", id,
		"to", req.To,
		"provider", s.provider.Name(),
		"provider_id", providerID,
		"duration", time.Since(start),
	)

	return nil
}

// ListLogs retrieves dispatch records for the admin console.
func (s *Service) ListLogs(ctx context.Context, filter ListFilter) (*ListResponse, error) {
	if s.store == nil {
		return nil, common.NewValidationError("delivery log store is not configured")
	}

	logs, total, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing email logs: %w", err)
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	return &ListResponse{
		Logs:     logs,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

// record persists the dispatch outcome. Best effort: the triggering business
// operation (order creation, signup) has already committed, so a log failure
// must never change the caller's response.
func (s *Service) record(ctx context.Context, req *SendRequest, subject string, status DeliveryStatus, providerID, errMsg string) {
	if s.store == nil {
		return
	}

	entry := &EmailLog{
		Template:     req.Template,
		Recipient:    req.To,
		Subject:      subject,
		Status:       status,
		ProviderID:   providerID,
		ErrorMessage: errMsg,
	}

	if err := s.store.Create(ctx, entry); err != nil {
		slog.Error("failed to record email log",
			"template", req.Template,
			"to", req.To,
			"status", status,
			"error", err,
		)
	}
}
