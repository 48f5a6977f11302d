// Package notify composes outbound notification deep links. Nothing here
// sends anything; the dashboard opens the returned link in the messaging
// app.
package notify

import (
	"fmt"
	"net/url"
	"strings"
)

// LinkData carries the substitution values for a message template.
type LinkData struct {
	CustomerName   string
	OrderCode      string
	OutstandingEGP float64
}

// RenderTemplate substitutes {customerName}, {orderId} and
// {outstandingAmount} tokens in a message template.
func RenderTemplate(template string, data LinkData) string {
	r := strings.NewReplacer(
		"{customerName}", data.CustomerName,
		"{orderId}", data.OrderCode,
		"{outstandingAmount}", formatAmount(data.OutstandingEGP),
	)
	return r.Replace(template)
}

// WhatsAppLink builds a wa.me deep link carrying the rendered message.
// Phone is expected in international format; a leading "+" is stripped.
func WhatsAppLink(phone, template string, data LinkData) string {
	message := RenderTemplate(template, data)
	phone = strings.TrimPrefix(strings.TrimSpace(phone), "+")
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(message))
}

func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
