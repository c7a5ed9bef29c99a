package services

import (
	"context"

	"github.com/vastramart/vastramart-api/models"
)

// CartRepository persists one cart per user. GetCart returns (nil, nil)
// when the user has no cart yet.
type CartRepository interface {
	GetCart(ctx context.Context, userID string) (*models.Cart, error)
	UpsertCart(ctx context.Context, userID string, items []models.CartItem) (*models.Cart, error)
}

type CartService struct {
	repo CartRepository
}

func NewCartService(repo CartRepository) *CartService {
	return &CartService{repo: repo}
}

// GetCart returns the user's cart items. A user without a cart gets an
// empty slice, never an error.
func (s *CartService) GetCart(ctx context.Context, userID string) ([]models.CartItem, error) {
	cart, err := s.repo.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil || cart.Items == nil {
		return []models.CartItem{}, nil
	}
	return cart.Items, nil
}

// SetCart replaces the user's cart wholesale, creating it if absent.
// Concurrent writes for the same user are last-write-wins.
func (s *CartService) SetCart(ctx context.Context, userID string, items []models.CartItem) (*models.Cart, error) {
	return s.repo.UpsertCart(ctx, userID, items)
}
