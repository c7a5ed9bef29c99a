package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vastramart/vastramart-api/identity"
	"github.com/vastramart/vastramart-api/models"
)

const confirmationTemplate = "../templates/order_confirmation.html"

type fakeIdentityClient struct {
	user *identity.User
	err  error
}

func (f *fakeIdentityClient) GetUser(context.Context, string) (*identity.User, error) {
	return f.user, f.err
}

type captureMailer struct {
	to      string
	subject string
	body    string
	err     error
	calls   int
}

func (m *captureMailer) Send(to, subject, htmlBody string) error {
	m.calls++
	m.to = to
	m.subject = subject
	m.body = htmlBody
	return m.err
}

func testProducts() []models.OrderedProduct {
	return []models.OrderedProduct{
		{Name: "Tee", Price: 500, Quantity: 2},
		{Name: "Kurta", Price: 1499.50, Quantity: 1},
	}
}

func TestSendOrderConfirmation(t *testing.T) {
	idc := &fakeIdentityClient{user: &identity.User{ID: "user_1", Name: "Asha", Email: "asha@example.com"}}
	mailer := &captureMailer{}

	service := NewNotificationService(idc, mailer, confirmationTemplate)

	err := service.SendOrderConfirmation(context.Background(), "user_1", testProducts())
	require.NoError(t, err)

	assert.Equal(t, 1, mailer.calls)
	assert.Equal(t, "asha@example.com", mailer.to)
	assert.Contains(t, mailer.subject, "VM-")

	assert.Contains(t, mailer.body, "Asha")
	assert.Contains(t, mailer.body, "Tee")
	assert.Contains(t, mailer.body, "Kurta")
	assert.Contains(t, mailer.body, "1000.00")
	assert.Contains(t, mailer.body, "1499.50")
	assert.Contains(t, mailer.body, "2499.50")
}

func TestSendOrderConfirmationUnknownUser(t *testing.T) {
	mailer := &captureMailer{}
	service := NewNotificationService(&fakeIdentityClient{}, mailer, confirmationTemplate)

	err := service.SendOrderConfirmation(context.Background(), "user_missing", testProducts())
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Zero(t, mailer.calls)
}

func TestSendOrderConfirmationIdentityLookupFails(t *testing.T) {
	idc := &fakeIdentityClient{err: errors.New("identity provider returned status 503")}
	mailer := &captureMailer{}
	service := NewNotificationService(idc, mailer, confirmationTemplate)

	err := service.SendOrderConfirmation(context.Background(), "user_1", testProducts())
	assert.ErrorIs(t, err, ErrNotification)
	assert.Zero(t, mailer.calls)
}

func TestSendOrderConfirmationMailerFails(t *testing.T) {
	idc := &fakeIdentityClient{user: &identity.User{Name: "Asha", Email: "asha@example.com"}}
	mailer := &captureMailer{err: errors.New("smtp: connection reset")}
	service := NewNotificationService(idc, mailer, confirmationTemplate)

	err := service.SendOrderConfirmation(context.Background(), "user_1", testProducts())
	assert.ErrorIs(t, err, ErrNotification)
}

func TestBuildOrderConfirmation(t *testing.T) {
	now := time.Date(2026, time.March, 14, 9, 30, 15, 0, time.UTC)

	data := BuildOrderConfirmation("Asha", testProducts(), now)

	assert.Equal(t, "Asha", data.Name)
	assert.Equal(t, "VM-20260314093015", data.OrderNumber)
	assert.Equal(t, "Saturday, 21 Mar 2026", data.DeliveryDate)

	require.Len(t, data.Items, 2)
	assert.Equal(t, OrderConfirmationLine{Name: "Tee", Quantity: 2, LineTotal: 1000}, data.Items[0])
	assert.Equal(t, OrderConfirmationLine{Name: "Kurta", Quantity: 1, LineTotal: 1499.50}, data.Items[1])
	assert.Equal(t, 2499.50, data.Total)
}
