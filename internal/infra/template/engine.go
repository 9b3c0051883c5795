package template

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"eksemail/internal/common"
	"eksemail/internal/domain/notification"
)

var _ notification.TemplateRenderer = (*Engine)(nil)

//go:embed templates/*.html
var templatesFS embed.FS

// templateMeta holds the default subject and the payload decoder for each
// template. The decoder is what makes rendering a pure function of data:
// it copies the open request payload into a typed view, never mutating it.
type templateMeta struct {
	Subject string
	prepare func(data map[string]any) (any, error)
}

// registry maps template identifiers to their metadata. It is the closed set
// of emails this service can produce; anything else is a lookup error.
var registry = map[notification.TemplateID]templateMeta{
	notification.TemplateOrderConfirmation: {
		Subject: "Your Eksejabula Order Confirmation",
		prepare: func(data map[string]any) (any, error) { return decode[OrderConfirmationData](data) },
	},
	notification.TemplateShippingConfirmation: {
		Subject: "Your Eksejabula Order Has Shipped",
		prepare: func(data map[string]any) (any, error) { return decode[ShippingConfirmationData](data) },
	},
	notification.TemplateAdminNewOrder: {
		Subject: "New Order Received",
		prepare: func(data map[string]any) (any, error) { return decode[AdminNewOrderData](data) },
	},
	notification.TemplateContactAck: {
		Subject: "We Received Your Message",
		prepare: func(data map[string]any) (any, error) { return decode[ContactAckData](data) },
	},
	notification.TemplatePasswordReset: {
		Subject: "Reset Your Eksejabula Password",
		prepare: func(data map[string]any) (any, error) { return decode[PasswordResetData](data) },
	},
	notification.TemplateWelcome: {
		Subject: "Welcome to Eksejabula",
		prepare: func(data map[string]any) (any, error) { return decode[WelcomeData](data) },
	},
}

// funcs are the helpers available inside templates. The copyright year is the
// single non-deterministic element of a rendered document.
var funcs = template.FuncMap{
	"money": func(a Amount) string { return fmt.Sprintf("R%.2f", float64(a)) },
	"year":  func() int { return time.Now().Year() },
}

// Engine renders email templates using Go's html/template package. Every
// body fragment is wrapped in the shared shell (brand header, content slot,
// footer) so each email is a complete standalone document with inline styles.
type Engine struct {
	templates map[notification.TemplateID]*template.Template
}

// NewEngine creates a new template engine from the embedded template files.
// Each registered identifier gets its own clone of the shell layout with the
// matching content fragment parsed in.
func NewEngine() (*Engine, error) {
	layout, err := template.New("layout").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parsing layout template: %w", err)
	}

	templates := make(map[notification.TemplateID]*template.Template, len(registry))
	for id := range registry {
		clone, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning layout for %s: %w", id, err)
		}
		tmpl, err := clone.ParseFS(templatesFS, fmt.Sprintf("templates/%s.html", id))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", id, err)
		}
		templates[id] = tmpl
	}

	return &Engine{templates: templates}, nil
}

// Render produces the default subject line and a complete HTML document for
// the given template identifier. Payload fields are HTML-escaped as they are
// interpolated; names, addresses, and contact messages are user-controlled.
func (e *Engine) Render(id notification.TemplateID, data map[string]any) (subject, html string, err error) {
	meta, ok := registry[id]
	if !ok {
		return "", "", common.NewLookupError(string(id))
	}

	view, err := meta.prepare(data)
	if err != nil {
		return "", "", fmt.Errorf("preparing data for template %s: %w", id, err)
	}

	var buf bytes.Buffer
	if err := e.templates[id].ExecuteTemplate(&buf, "layout.html", view); err != nil {
		return "", "", fmt.Errorf("executing template %s: %w", id, err)
	}

	return meta.Subject, buf.String(), nil
}
