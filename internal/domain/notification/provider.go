package notification

import "context"

// Provider defines the contract for an outbound mail transport.
// Implementations live in infra/email/ (SMTP relay, Resend API).
type Provider interface {
	// Send delivers a rendered message over a transient connection and
	// returns the provider's message ID. The connection is opened, used for
	// exactly one message, and released on every exit path.
	Send(ctx context.Context, msg *Message) (string, error)

	// Name returns the provider identifier for logging and error reporting.
	Name() string
}

// TemplateRenderer defines the contract for rendering email templates.
// Implementations live in infra/template/.
type TemplateRenderer interface {
	// Render produces the default subject line and a complete standalone HTML
	// document for the given template. An unregistered template fails with a
	// LookupError before any I/O happens.
	Render(id TemplateID, data map[string]any) (subject, html string, err error)
}
