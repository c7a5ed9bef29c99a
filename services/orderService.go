package services

import (
	"context"

	"github.com/vastramart/vastramart-api/models"
)

// OrderRepository persists orders. Lookup methods return (nil, nil) when
// no order matches.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	Save(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	FindByIdempotencyKey(ctx context.Context, userID, key string) (*models.Order, error)
	FindByUserID(ctx context.Context, userID, sort string) ([]models.Order, error)
	List(ctx context.Context, query ListOrdersQuery) ([]models.Order, int64, error)
	CountByStatus(ctx context.Context, status models.OrderStatus) (int64, error)
}

type ListOrdersQuery struct {
	Page   int
	Limit  int
	Sort   string
	Search string
}

type OrderService struct {
	repo OrderRepository
}

func NewOrderService(repo OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// PlaceOrder persists a new pending order with the amount computed from the
// product snapshots. When the caller supplies an idempotency key and an
// order with that key already exists for the user, the original order is
// returned with replayed=true instead of creating a duplicate; callers use
// the flag to suppress repeat side effects such as the confirmation email.
func (s *OrderService) PlaceOrder(ctx context.Context, userID string, products []models.OrderedProduct, idempotencyKey string) (order *models.Order, replayed bool, err error) {
	if len(products) == 0 {
		return nil, false, ErrInvalidInput
	}

	if idempotencyKey != "" {
		existing, err := s.repo.FindByIdempotencyKey(ctx, userID, idempotencyKey)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			return existing, true, nil
		}
	}

	order = &models.Order{
		UserID:         userID,
		Products:       products,
		Amount:         OrderAmount(products),
		Status:         models.OrderStatusPending,
		IdempotencyKey: idempotencyKey,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, false, err
	}
	return order, false, nil
}

// MarkPaid transitions a pending order to paid. Marking an already paid
// order is a no-op so that redelivered provider callbacks stay harmless;
// a failed order is terminal and cannot become paid.
func (s *OrderService) MarkPaid(ctx context.Context, orderID uint, paymentID string) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	switch order.Status {
	case models.OrderStatusPaid:
		return order, nil
	case models.OrderStatusFailed:
		return nil, ErrOrderFinal
	}

	order.Status = models.OrderStatusPaid
	if paymentID != "" {
		order.PaymentID = paymentID
	}
	if err := s.repo.Save(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// MarkFailed transitions a pending order to failed on a provider failure or
// expiry callback. Idempotent on already failed orders; a paid order is
// terminal and stays paid.
func (s *OrderService) MarkFailed(ctx context.Context, orderID uint) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	switch order.Status {
	case models.OrderStatusFailed:
		return order, nil
	case models.OrderStatusPaid:
		return nil, ErrOrderFinal
	}

	order.Status = models.OrderStatusFailed
	if err := s.repo.Save(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// AttachPaymentLink records the provider's payment link id on an order
// after the link has been created.
func (s *OrderService) AttachPaymentLink(ctx context.Context, order *models.Order, linkID string) error {
	order.PaymentLinkID = linkID
	return s.repo.Save(ctx, order)
}

func (s *OrderService) GetOrderByID(ctx context.Context, orderID uint) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) GetOrdersByUser(ctx context.Context, userID, sort string) ([]models.Order, error) {
	return s.repo.FindByUserID(ctx, userID, sort)
}

func (s *OrderService) ListOrders(ctx context.Context, query ListOrdersQuery) ([]models.Order, int64, error) {
	return s.repo.List(ctx, query)
}

// CountOpenOrders reports how many orders are still awaiting payment.
func (s *OrderService) CountOpenOrders(ctx context.Context) (int64, error) {
	return s.repo.CountByStatus(ctx, models.OrderStatusPending)
}

// OrderAmount computes the order total from the product snapshots. The
// result is fixed on the order row at creation time and never recomputed.
func OrderAmount(products []models.OrderedProduct) float64 {
	var total float64
	for _, product := range products {
		total += product.Price * float64(product.Quantity)
	}
	return total
}
