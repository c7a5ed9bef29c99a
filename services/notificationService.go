package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/vastramart/vastramart-api/identity"
	"github.com/vastramart/vastramart-api/models"
)

// IdentityClient resolves a user's profile from the identity provider.
// GetUser returns (nil, nil) for an unknown user id.
type IdentityClient interface {
	GetUser(ctx context.Context, userID string) (*identity.User, error)
}

// Mailer dispatches a rendered HTML email.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type NotificationService struct {
	identity     IdentityClient
	mailer       Mailer
	templatePath string
}

func NewNotificationService(identityClient IdentityClient, mailer Mailer, templatePath string) *NotificationService {
	return &NotificationService{
		identity:     identityClient,
		mailer:       mailer,
		templatePath: templatePath,
	}
}

type OrderConfirmationLine struct {
	Name      string
	Quantity  int
	LineTotal float64
}

type OrderConfirmationData struct {
	Name         string
	OrderNumber  string
	DeliveryDate string
	Items        []OrderConfirmationLine
	Total        float64
}

// SendOrderConfirmation resolves the buyer's profile, renders the itemized
// order summary and dispatches it by email. The order number and delivery
// date in the email are display-only and are not persisted anywhere.
func (s *NotificationService) SendOrderConfirmation(ctx context.Context, userID string, products []models.OrderedProduct) error {
	user, err := s.identity.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: identity lookup: %v", ErrNotification, err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	data := BuildOrderConfirmation(user.Name, products, time.Now())

	tmpl, err := template.ParseFiles(s.templatePath)
	if err != nil {
		return fmt.Errorf("%w: template parse error: %v", ErrNotification, err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("%w: template execution error: %v", ErrNotification, err)
	}

	subject := fmt.Sprintf("Your Vastramart order %s is confirmed", data.OrderNumber)
	if err := s.mailer.Send(user.Email, subject, body.String()); err != nil {
		return fmt.Errorf("%w: %v", ErrNotification, err)
	}
	return nil
}

// BuildOrderConfirmation assembles the display data for the confirmation
// email: a synthetic time-derived order number, an estimated delivery date
// a week out, per-line totals and the grand total.
func BuildOrderConfirmation(name string, products []models.OrderedProduct, now time.Time) OrderConfirmationData {
	data := OrderConfirmationData{
		Name:         name,
		OrderNumber:  "VM-" + now.Format("20060102150405"),
		DeliveryDate: now.AddDate(0, 0, 7).Format("Monday, 02 Jan 2006"),
	}

	for _, product := range products {
		lineTotal := product.Price * float64(product.Quantity)
		data.Items = append(data.Items, OrderConfirmationLine{
			Name:      product.Name,
			Quantity:  product.Quantity,
			LineTotal: lineTotal,
		})
		data.Total += lineTotal
	}
	return data
}
