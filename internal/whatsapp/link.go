// Package whatsapp composes the confirmation deep link handed to the
// customer after checkout. Opening the link is fire-and-forget; nothing in
// the order flow depends on its outcome.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/sivanaveen080/biryani-for-lunch/internal/checkout"
	"github.com/sivanaveen080/biryani-for-lunch/pkg/config"
)

// Composer builds wa.me links against the fixed vendor contact.
type Composer struct {
	recipient   string
	shippingFee int
}

var _ checkout.LinkComposer = (*Composer)(nil)

// NewComposer builds a composer from deployment configuration.
func NewComposer(cfg config.WhatsAppConfig) (*Composer, error) {
	recipient := strings.TrimSpace(cfg.Recipient)
	if recipient == "" {
		return nil, fmt.Errorf("whatsapp recipient required")
	}
	return &Composer{recipient: recipient, shippingFee: cfg.ShippingFee}, nil
}

// Compose renders the confirmation message for a submitted order and
// URL-encodes it into the deep link.
func (c *Composer) Compose(orderID int64, sub checkout.Submission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New Order!\n")
	fmt.Fprintf(&b, "Order ID: %d\n", orderID)
	fmt.Fprintf(&b, "Name: %s\n", sub.CustomerName)
	fmt.Fprintf(&b, "Mobile: %s\n\n", sub.CustomerMobile)
	b.WriteString("Items:\n")
	b.WriteString(sub.ItemsText())
	fmt.Fprintf(&b, "\nItems Total: ₹%d\n", sub.ItemsTotal)
	fmt.Fprintf(&b, "Shipping: ₹%d (on us)\n", c.shippingFee)
	fmt.Fprintf(&b, "Payable Total: ₹%d", sub.PayableTotal)

	return "https://wa.me/" + c.recipient + "?text=" + url.QueryEscape(b.String())
}
