package controllers

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/vastramart/vastramart-api/middlewares"
	"github.com/vastramart/vastramart-api/models"
	"github.com/vastramart/vastramart-api/services"
)

// withPrincipal simulates a verified session for handler tests.
func withPrincipal(principal middlewares.Principal) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		middlewares.SetPrincipal(ctx, principal)
		ctx.Next()
	}
}

type memoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string][]models.CartItem
}

func newMemoryCartRepository() *memoryCartRepository {
	return &memoryCartRepository{carts: make(map[string][]models.CartItem)}
}

func (m *memoryCartRepository) GetCart(_ context.Context, userID string) (*models.Cart, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items, ok := m.carts[userID]
	if !ok {
		return nil, nil
	}
	return &models.Cart{UserID: userID, Items: items}, nil
}

func (m *memoryCartRepository) UpsertCart(_ context.Context, userID string, items []models.CartItem) (*models.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	// A cleared cart reads back with a nil item slice, like a gorm
	// Preload over zero rows.
	var stored []models.CartItem
	if len(items) > 0 {
		stored = make([]models.CartItem, len(items))
		copy(stored, items)
	}
	m.carts[userID] = stored
	return &models.Cart{UserID: userID, Items: stored}, nil
}

type memoryOrderRepository struct {
	mu     sync.Mutex
	nextID uint
	orders map[uint]*models.Order
}

func newMemoryOrderRepository() *memoryOrderRepository {
	return &memoryOrderRepository{orders: make(map[uint]*models.Order)}
}

func (m *memoryOrderRepository) Create(_ context.Context, order *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	order.ID = m.nextID
	m.orders[order.ID] = order
	return nil
}

func (m *memoryOrderRepository) Save(_ context.Context, order *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[order.ID] = order
	return nil
}

func (m *memoryOrderRepository) FindByID(_ context.Context, id uint) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	return order, nil
}

func (m *memoryOrderRepository) FindByIdempotencyKey(_ context.Context, userID, key string) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, order := range m.orders {
		if order.UserID == userID && order.IdempotencyKey == key {
			return order, nil
		}
	}
	return nil, nil
}

func (m *memoryOrderRepository) FindByUserID(_ context.Context, userID, _ string) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Order
	for _, order := range m.orders {
		if order.UserID == userID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (m *memoryOrderRepository) List(_ context.Context, _ services.ListOrdersQuery) ([]models.Order, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Order
	for _, order := range m.orders {
		out = append(out, *order)
	}
	return out, int64(len(out)), nil
}

func (m *memoryOrderRepository) CountByStatus(_ context.Context, status models.OrderStatus) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, order := range m.orders {
		if order.Status == status {
			count++
		}
	}
	return count, nil
}
