package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/vastramart/vastramart-api/models"
)

// ErrProvider wraps every failure talking to the payment provider. Callers
// log the full detail and surface a generic message to the client.
var ErrProvider = errors.New("payment provider request failed")

type Customer struct {
	Name  string
	Email string
	Phone string
}

type PaymentLink struct {
	ID       string
	ShortURL string
}

// RazorpayClient creates hosted payment links through the Razorpay Payment
// Links API. Amounts are sent in paise, the order id travels in
// reference_id and notes so the callback can be correlated back.
type RazorpayClient struct {
	baseURL   string
	keyID     string
	keySecret string
	client    *resty.Client
}

func NewRazorpayClient(baseURL, keyID, keySecret string) *RazorpayClient {
	return &RazorpayClient{
		baseURL:   baseURL,
		keyID:     keyID,
		keySecret: keySecret,
		client:    resty.New().SetTimeout(30 * time.Second),
	}
}

func (c *RazorpayClient) CreatePaymentLink(ctx context.Context, order *models.Order, customer Customer, callbackURL string) (*PaymentLink, error) {
	payload := map[string]any{
		"amount":       MinorUnits(order.Amount),
		"currency":     "INR",
		"reference_id": ReferenceID(order.ID),
		"description":  fmt.Sprintf("Payment for order #%d", order.ID),
		"customer": map[string]any{
			"name":    customer.Name,
			"email":   customer.Email,
			"contact": customer.Phone,
		},
		"notify": map[string]any{
			"sms":   true,
			"email": true,
		},
		"notes": map[string]any{
			"order_id": strconv.FormatUint(uint64(order.ID), 10),
		},
		"callback_url":    callbackURL,
		"callback_method": "get",
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBasicAuth(c.keyID, c.keySecret).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(payload).
		Post(c.baseURL + "/v1/payment_links")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("%w: status %d: %s", ErrProvider, resp.StatusCode(), string(resp.Body()))
	}

	var linkResp struct {
		ID       string `json:"id"`
		ShortURL string `json:"short_url"`
	}
	if err := json.Unmarshal(resp.Body(), &linkResp); err != nil {
		return nil, fmt.Errorf("%w: failed to parse response: %v", ErrProvider, err)
	}
	if linkResp.ShortURL == "" {
		return nil, fmt.Errorf("%w: short_url missing in response", ErrProvider)
	}

	return &PaymentLink{ID: linkResp.ID, ShortURL: linkResp.ShortURL}, nil
}

// MinorUnits converts a currency-major INR amount to paise.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// ReferenceID is the provider-side correlation token carrying the order id.
func ReferenceID(orderID uint) string {
	return fmt.Sprintf("order_%d", orderID)
}

// ParseReferenceID recovers the order id from a callback reference token.
func ParseReferenceID(ref string) (uint, error) {
	var orderID uint
	if _, err := fmt.Sscanf(ref, "order_%d", &orderID); err != nil {
		return 0, fmt.Errorf("malformed reference id %q", ref)
	}
	return orderID, nil
}
