package notification

// TemplateID identifies an email template in the closed registry.
type TemplateID string

const (
	TemplateOrderConfirmation    TemplateID = "order_confirmation"
	TemplateShippingConfirmation TemplateID = "shipping_confirmation"
	TemplateAdminNewOrder        TemplateID = "admin_new_order"
	TemplateContactAck           TemplateID = "contact_acknowledgment"
	TemplatePasswordReset        TemplateID = "password_reset"
	TemplateWelcome              TemplateID = "welcome"
)

// validTemplates is the set of all recognized template identifiers.
var validTemplates = map[TemplateID]bool{
	TemplateOrderConfirmation:    true,
	TemplateShippingConfirmation: true,
	TemplateAdminNewOrder:        true,
	TemplateContactAck:           true,
	TemplatePasswordReset:        true,
	TemplateWelcome:              true,
}

// IsValidTemplate checks whether a template identifier is recognized.
func IsValidTemplate(id TemplateID) bool {
	return validTemplates[id]
}

// TemplateIDs returns every registered template identifier.
func TemplateIDs() []TemplateID {
	ids := make([]TemplateID, 0, len(validTemplates))
	for id := range validTemplates {
		ids = append(ids, id)
	}
	return ids
}

// SendRequest is the API request payload for dispatching an email.
// Data is an open, template-specific payload; the template decides which
// fields it reads. Subject is optional — the registry default is used when
// it is empty.
type SendRequest struct {
	Template string         `json:"template" binding:"required"`
	To       string         `json:"to" binding:"required"`
	Subject  string         `json:"subject"`
	Data     map[string]any `json:"data"`
}

// Message is the rendered message ready for delivery. It exists only for the
// duration of one dispatch and is handed straight to the provider.
type Message struct {
	To      string
	Subject string
	HTML    string
}
