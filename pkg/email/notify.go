package email

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"floraform.ca/storefront/pkg/global"
	"floraform.ca/storefront/pkg/models"
)

// Notifier builds and sends the storefront's transactional email: order
// confirmation to the buyer, order notification to the store, contact-form
// relay and welcome mail.
type Notifier struct {
	sender   Sender
	settings global.Settings
}

func NewNotifier(sender Sender, settings global.Settings) *Notifier {
	return &Notifier{sender: sender, settings: settings}
}

// shortOrderID matches the order reference shown to customers: the last 8
// characters of the persisted identifier.
func shortOrderID(id string) string {
	if len(id) > 8 {
		return id[len(id)-8:]
	}
	return id
}

func (n *Notifier) wrap(title, body string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: auto; border: 1px solid #ddd; border-radius: 8px; overflow: hidden;">
  <div style="background-color: #047857; color: white; padding: 20px; text-align: center;">
    <h1 style="margin: 0; font-size: 24px;">%s</h1>
  </div>
  <div style="padding: 20px;">%s</div>
  <div style="background-color: #f1f5f9; text-align: center; padding: 15px; font-size: 12px; color: #64748b;">
    <p>&copy; %d %s. All rights reserved.</p>
  </div>
</div>`, html.EscapeString(title), body, time.Now().Year(), html.EscapeString(n.settings.StoreName))
}

func orderItemsTable(order *models.Order) string {
	var rows strings.Builder
	for _, item := range order.Items {
		rows.WriteString(fmt.Sprintf(`<tr>
  <td style="padding: 8px; border-bottom: 1px solid #eee;">%s</td>
  <td style="text-align: center; padding: 8px; border-bottom: 1px solid #eee;">%d</td>
  <td style="text-align: right; padding: 8px; border-bottom: 1px solid #eee;">$%.2f</td>
</tr>`, html.EscapeString(item.ProductName), item.Quantity, item.Price*float64(item.Quantity)))
	}

	return fmt.Sprintf(`<table style="width: 100%%; border-collapse: collapse; margin-top: 15px;">
  <thead>
    <tr>
      <th style="text-align: left; padding: 8px; border-bottom: 1px solid #ddd;">Item</th>
      <th style="text-align: center; padding: 8px; border-bottom: 1px solid #ddd;">Quantity</th>
      <th style="text-align: right; padding: 8px; border-bottom: 1px solid #ddd;">Price</th>
    </tr>
  </thead>
  <tbody>%s</tbody>
</table>
<p style="text-align: right; font-weight: bold; margin-top: 10px;">Total: $%.2f</p>`, rows.String(), order.Total)
}

// SendOrderConfirmation sends the buyer a detailed confirmation
// referencing the persisted order identifier and line items.
func (n *Notifier) SendOrderConfirmation(ctx context.Context, order *models.Order, user *models.User) error {
	subject := fmt.Sprintf("Your %s Order Confirmation (#%s)", n.settings.StoreName, shortOrderID(order.ID))
	body := fmt.Sprintf(`<p>Hi %s,</p>
<p>We've received your order and are getting it ready for shipment. Here are the details:</p>
<div style="padding: 15px; background-color: #f9f9f9; border-radius: 5px;">
  <p><strong>Order ID:</strong> #%s</p>
  <p><strong>Order Date:</strong> %s</p>
</div>
<h2 style="font-size: 18px; color: #047857; border-bottom: 2px solid #eee; padding-bottom: 5px; margin-top: 20px;">Order Summary</h2>
%s`,
		html.EscapeString(user.Name), shortOrderID(order.ID),
		order.Date.Format("January 2, 2006"), orderItemsTable(order))

	return n.sender.Send(ctx, user.Email, subject, n.wrap("Thank You For Your Order!", body))
}

// SendAdminNotification sends the store a copy of the order summary.
func (n *Notifier) SendAdminNotification(ctx context.Context, order *models.Order, user *models.User) error {
	subject := fmt.Sprintf("New Order Received (#%s)", shortOrderID(order.ID))
	body := fmt.Sprintf(`<p>A new order has been placed:</p>
<div style="padding: 15px; background-color: #f9f9f9; border-radius: 5px;">
  <p><strong>Order ID:</strong> #%s</p>
  <p><strong>Customer:</strong> %s (%s)</p>
  <p><strong>Order Date:</strong> %s</p>
</div>
<h2 style="font-size: 18px; color: #047857; border-bottom: 2px solid #eee; padding-bottom: 5px; margin-top: 20px;">Order Summary</h2>
%s`,
		shortOrderID(order.ID), html.EscapeString(user.Name), html.EscapeString(user.Email),
		order.Date.Format("January 2, 2006"), orderItemsTable(order))

	return n.sender.Send(ctx, n.settings.AdminEmail, subject, n.wrap("New Order Notification", body))
}

// SendContactMessage relays a contact-form message to the admin and sends
// an auto-reply to the customer.
func (n *Notifier) SendContactMessage(ctx context.Context, name, fromEmail, message string) error {
	adminSubject := fmt.Sprintf("New Contact Message from %s", name)
	adminBody := fmt.Sprintf(`<p>You have received a new message from your website's contact form:</p>
<div style="padding: 15px; background-color: #f9f9f9; border-radius: 5px;">
  <p><strong>Name:</strong> %s</p>
  <p><strong>Email:</strong> %s</p>
</div>
<h2 style="font-size: 18px; color: #047857; border-bottom: 2px solid #eee; padding-bottom: 5px; margin-top: 20px;">Message</h2>
<p style="white-space: pre-wrap;">%s</p>`,
		html.EscapeString(name), html.EscapeString(fromEmail), html.EscapeString(message))

	if err := n.sender.Send(ctx, n.settings.AdminEmail, adminSubject, n.wrap("New Contact Form Submission", adminBody)); err != nil {
		return err
	}

	replySubject := "We've received your message!"
	replyBody := fmt.Sprintf(`<p>Hi %s,</p>
<p>Thank you for contacting %s. We've received your message and a member of our team will get back to you as soon as possible.</p>
<p>Best regards,<br>The %s Team</p>`,
		html.EscapeString(name), html.EscapeString(n.settings.StoreName), html.EscapeString(n.settings.StoreName))

	return n.sender.Send(ctx, fromEmail, replySubject, n.wrap("We've Received Your Message", replyBody))
}

// SendWelcome greets a newly signed-up user.
func (n *Notifier) SendWelcome(ctx context.Context, user *models.User) error {
	subject := fmt.Sprintf("Welcome to %s!", n.settings.StoreName)
	body := fmt.Sprintf(`<p>Hi %s,</p>
<p>Your account has been created. Happy planting!</p>
<p>Best regards,<br>The %s Team</p>`,
		html.EscapeString(user.Name), html.EscapeString(n.settings.StoreName))

	return n.sender.Send(ctx, user.Email, subject, n.wrap(fmt.Sprintf("Welcome to %s", n.settings.StoreName), body))
}
