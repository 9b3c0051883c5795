package template

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Amount is a monetary value that accepts either a JSON number or a numeric
// string — the storefront passes order totals as text.
type Amount float64

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	if s == "" || s == "null" {
		*a = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parsing amount %q: %w", s, err)
	}
	*a = Amount(f)
	return nil
}

// OrderItem is one purchased line in an order confirmation. CustomText and
// CustomNumber carry jersey personalization and render only when present.
type OrderItem struct {
	Name         string `json:"name"`
	Image        string `json:"image"`
	Quantity     int    `json:"quantity"`
	Price        Amount `json:"price"`
	CustomText   string `json:"customText"`
	CustomNumber string `json:"customNumber"`
}

// LineTotal is quantity × unit price.
func (i OrderItem) LineTotal() Amount {
	return Amount(float64(i.Quantity) * float64(i.Price))
}

// Address is a shipping destination. Address2 is optional.
type Address struct {
	Name       string `json:"name"`
	Address1   string `json:"address1"`
	Address2   string `json:"address2"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
}

// OrderConfirmationData is the payload for the order confirmation template.
type OrderConfirmationData struct {
	CustomerName    string      `json:"customerName"`
	OrderID         string      `json:"orderId"`
	Items           []OrderItem `json:"items"`
	ShippingAddress Address     `json:"shippingAddress"`
	TotalAmount     Amount      `json:"totalAmount"`
	OrderDate       string      `json:"orderDate"`
}

// OrderNumber is the customer-facing short form: the first 8 characters of
// the full order id.
func (d OrderConfirmationData) OrderNumber() string {
	return shortID(d.OrderID)
}

// ShippingConfirmationData is the payload for the shipping confirmation template.
type ShippingConfirmationData struct {
	CustomerName      string `json:"customerName"`
	OrderID           string `json:"orderId"`
	TrackingNumber    string `json:"trackingNumber"`
	Carrier           string `json:"carrier"`
	EstimatedDelivery string `json:"estimatedDelivery"`
}

// OrderNumber is the customer-facing short form of the order id.
func (d ShippingConfirmationData) OrderNumber() string {
	return shortID(d.OrderID)
}

// TrackingURL builds the carrier tracking link. The host portion is the
// carrier name lowercased with all whitespace stripped.
func (d ShippingConfirmationData) TrackingURL() string {
	host := strings.ToLower(strings.Join(strings.Fields(d.Carrier), ""))
	return fmt.Sprintf("https://www.%s.com/track?number=%s", host, d.TrackingNumber)
}

// AdminNewOrderData is the payload for the admin new-order notice.
type AdminNewOrderData struct {
	OrderID       string `json:"orderId"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	ItemsCount    int    `json:"itemsCount"`
	TotalAmount   Amount `json:"totalAmount"`
}

// ContactAckData is the payload for the contact-form acknowledgment.
type ContactAckData struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// PasswordResetData is the payload for the password reset template.
type PasswordResetData struct {
	Name      string `json:"name"`
	ResetLink string `json:"resetLink"`
}

// WelcomeData is the payload for the welcome template.
type WelcomeData struct {
	Name string `json:"name"`
}

// shortID returns the first 8 characters of an id.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// decode converts the open request payload into a typed template payload via
// a JSON round trip. Fields with mismatched types are tolerated and left at
// their zero value so a bad optional field renders as a blank segment instead
// of failing the whole dispatch.
func decode[T any](data map[string]any) (T, error) {
	var v T
	raw, err := json.Marshal(data)
	if err != nil {
		return v, fmt.Errorf("encoding template data: %w", err)
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return v, fmt.Errorf("decoding template data: %w", err)
		}
	}
	return v, nil
}
