package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vastramart/vastramart-api/models"
)

// memoryCartRepository backs round-trip tests without a database.
type memoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string][]models.CartItem
	err   error
}

func newMemoryCartRepository() *memoryCartRepository {
	return &memoryCartRepository{carts: make(map[string][]models.CartItem)}
}

func (m *memoryCartRepository) GetCart(_ context.Context, userID string) (*models.Cart, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	items, ok := m.carts[userID]
	if !ok {
		return nil, nil
	}
	return &models.Cart{UserID: userID, Items: items}, nil
}

func (m *memoryCartRepository) UpsertCart(_ context.Context, userID string, items []models.CartItem) (*models.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
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

func TestGetCartNewUserReturnsEmptySlice(t *testing.T) {
	service := NewCartService(newMemoryCartRepository())

	items, err := service.GetCart(context.Background(), "user_new")
	require.NoError(t, err)

	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestSetCartRoundTrip(t *testing.T) {
	service := NewCartService(newMemoryCartRepository())
	items := []models.CartItem{
		{ProductID: "p1", Name: "Tee", Price: 500, Image: "tee.jpg", Quantity: 2},
		{ProductID: "p2", Name: "Kurta", Price: 1499.50, Image: "kurta.jpg", Quantity: 1},
	}

	cart, err := service.SetCart(context.Background(), "user_1", items)
	require.NoError(t, err)
	assert.Equal(t, "user_1", cart.UserID)

	got, err := service.GetCart(context.Background(), "user_1")
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestSetCartReplacesWholesale(t *testing.T) {
	service := NewCartService(newMemoryCartRepository())

	first := []models.CartItem{
		{ProductID: "p1", Name: "Tee", Price: 500, Quantity: 2},
		{ProductID: "p2", Name: "Kurta", Price: 1499.50, Quantity: 1},
	}
	second := []models.CartItem{
		{ProductID: "p3", Name: "Dupatta", Price: 350, Quantity: 1},
	}

	_, err := service.SetCart(context.Background(), "user_1", first)
	require.NoError(t, err)
	_, err = service.SetCart(context.Background(), "user_1", second)
	require.NoError(t, err)

	got, err := service.GetCart(context.Background(), "user_1")
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestSetCartEmptyListClearsCart(t *testing.T) {
	service := NewCartService(newMemoryCartRepository())

	_, err := service.SetCart(context.Background(), "user_1", []models.CartItem{
		{ProductID: "p1", Name: "Tee", Price: 500, Quantity: 2},
	})
	require.NoError(t, err)

	_, err = service.SetCart(context.Background(), "user_1", []models.CartItem{})
	require.NoError(t, err)

	got, err := service.GetCart(context.Background(), "user_1")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// A cart row with no items must still read back as an empty slice, not
// nil, so the HTTP layer renders [] rather than null.
func TestGetCartNormalizesNilItems(t *testing.T) {
	repo := newMemoryCartRepository()
	repo.carts["user_1"] = nil

	service := NewCartService(repo)

	got, err := service.GetCart(context.Background(), "user_1")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	service := NewCartService(newMemoryCartRepository())

	_, err := service.SetCart(context.Background(), "user_1", []models.CartItem{
		{ProductID: "p1", Name: "Tee", Price: 500, Quantity: 2},
	})
	require.NoError(t, err)

	got, err := service.GetCart(context.Background(), "user_2")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetCartPropagatesRepositoryError(t *testing.T) {
	repo := newMemoryCartRepository()
	repo.err = errors.New("connection refused")

	service := NewCartService(repo)

	_, err := service.GetCart(context.Background(), "user_1")
	assert.ErrorIs(t, err, repo.err)
}
