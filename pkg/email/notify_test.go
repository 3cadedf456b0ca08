package email

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floraform.ca/storefront/pkg/global"
	"floraform.ca/storefront/pkg/models"
)

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type recordingSender struct {
	sent []sentMail
	err  error
}

func (s *recordingSender) Send(_ context.Context, to, subject, htmlBody string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

func testSettings() global.Settings {
	return global.Settings{
		StoreName:   "Flora & Form",
		AdminEmail:  "orders@floraform.ca",
		FromAddress: "Flora & Form <onboarding@resend.dev>",
	}
}

func testOrder() *models.Order {
	return &models.Order{
		ID:     "68b1f2c4a9d3e5f601234567",
		UserID: 1,
		Date:   time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC),
		Total:  64.25,
		Items: []models.OrderItem{
			{ProductID: 1, ProductName: "Monstera Deliciosa", Quantity: 1, Price: 45.00},
			{ProductID: 10, ProductName: "Pothos Golden", Quantity: 1, Price: 19.25},
		},
	}
}

func TestShortOrderID(t *testing.T) {
	assert.Equal(t, "01234567", shortOrderID("68b1f2c4a9d3e5f601234567"))
	assert.Equal(t, "abc", shortOrderID("abc"))
}

func TestOrderConfirmationGoesToBuyer(t *testing.T) {
	sender := &recordingSender{}
	n := NewNotifier(sender, testSettings())
	user := &models.User{ID: 1, Name: "Demo User", Email: "user@example.com"}

	err := n.SendOrderConfirmation(context.Background(), testOrder(), user)

	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	mail := sender.sent[0]
	assert.Equal(t, "user@example.com", mail.To)
	assert.Equal(t, "Your Flora & Form Order Confirmation (#01234567)", mail.Subject)
	assert.Contains(t, mail.Body, "Monstera Deliciosa")
	assert.Contains(t, mail.Body, "Pothos Golden")
	assert.Contains(t, mail.Body, "Total: $64.25")
	assert.Contains(t, mail.Body, "March 14, 2026")
}

func TestAdminNotificationGoesToStore(t *testing.T) {
	sender := &recordingSender{}
	n := NewNotifier(sender, testSettings())
	user := &models.User{ID: 1, Name: "Demo User", Email: "user@example.com"}

	err := n.SendAdminNotification(context.Background(), testOrder(), user)

	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	mail := sender.sent[0]
	assert.Equal(t, "orders@floraform.ca", mail.To)
	assert.Contains(t, mail.Subject, "#01234567")
	assert.Contains(t, mail.Body, "Demo User")
	assert.Contains(t, mail.Body, "user@example.com")
}

func TestContactMessageRelaysAndAutoReplies(t *testing.T) {
	sender := &recordingSender{}
	n := NewNotifier(sender, testSettings())

	err := n.SendContactMessage(context.Background(), "Sam", "sam@example.com", "Do you ship to PO boxes?")

	require.NoError(t, err)
	require.Len(t, sender.sent, 2)
	assert.Equal(t, "orders@floraform.ca", sender.sent[0].To)
	assert.Contains(t, sender.sent[0].Body, "Do you ship to PO boxes?")
	assert.Equal(t, "sam@example.com", sender.sent[1].To)
	assert.Contains(t, sender.sent[1].Subject, "received your message")
}

func TestEmailBodiesEscapeUserInput(t *testing.T) {
	sender := &recordingSender{}
	n := NewNotifier(sender, testSettings())
	order := testOrder()
	order.Items[0].ProductName = `<script>alert("x")</script>`
	user := &models.User{ID: 1, Name: "Demo User", Email: "user@example.com"}

	require.NoError(t, n.SendOrderConfirmation(context.Background(), order, user))

	require.Len(t, sender.sent, 1)
	assert.NotContains(t, sender.sent[0].Body, "<script>")
	assert.Contains(t, sender.sent[0].Body, "&lt;script&gt;")
}
