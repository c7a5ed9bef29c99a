package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vastramart/vastramart-api/middlewares"
	"github.com/vastramart/vastramart-api/models"
	"github.com/vastramart/vastramart-api/services"
)

type notifierCall struct {
	userID   string
	products []models.OrderedProduct
}

type fakeNotifier struct {
	calls chan notifierCall
	err   error
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{calls: make(chan notifierCall, 1)}
}

func (f *fakeNotifier) SendOrderConfirmation(_ context.Context, userID string, products []models.OrderedProduct) error {
	f.calls <- notifierCall{userID: userID, products: products}
	return f.err
}

func newOrderRouter(repo services.OrderRepository, notifier OrderNotifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewOrderController(services.NewOrderService(repo), notifier)

	router := gin.New()
	customer := withPrincipal(middlewares.Principal{UserID: "user_1", Name: "Asha", Role: "customer"})
	router.POST("/order", customer, controller.CreateOrder)
	router.POST("/order-anon", controller.CreateOrder)
	router.GET("/user/:userId/orders", customer, controller.GetOrdersByCustomer)
	router.GET("/order/:orderId", customer, controller.GetOrderByID)
	return router
}

func placeOrderRequest(t *testing.T, router *gin.Engine, path, payload string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateOrder(t *testing.T) {
	repo := newMemoryOrderRepository()
	notifier := newFakeNotifier()
	router := newOrderRouter(repo, notifier)

	payload := `{"products":[{"name":"Tee","price":500,"quantity":2}]}`
	rec := placeOrderRequest(t, router, "/order", payload)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message string       `json:"message"`
		Order   models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, msgOrderPlaced, resp.Message)
	assert.Equal(t, "user_1", resp.Order.UserID)
	assert.Equal(t, 1000.0, resp.Order.Amount)
	assert.Equal(t, models.OrderStatusPending, resp.Order.Status)

	select {
	case call := <-notifier.calls:
		assert.Equal(t, "user_1", call.userID)
		require.Len(t, call.products, 1)
		assert.Equal(t, "Tee", call.products[0].Name)
	case <-time.After(time.Second):
		t.Fatal("confirmation email was never dispatched")
	}
}

func TestCreateOrderWithoutSession(t *testing.T) {
	router := newOrderRouter(newMemoryOrderRepository(), nil)

	payload := `{"products":[{"name":"Tee","price":500,"quantity":2}]}`
	rec := placeOrderRequest(t, router, "/order-anon", payload)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateOrderRejectsEmptyProducts(t *testing.T) {
	repo := newMemoryOrderRepository()
	router := newOrderRouter(repo, nil)

	for _, payload := range []string{`{"products":[]}`, `{}`} {
		rec := placeOrderRequest(t, router, "/order", payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}

	orders, _, err := repo.List(context.Background(), services.ListOrdersQuery{})
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCreateOrderSurvivesNotifierFailure(t *testing.T) {
	notifier := newFakeNotifier()
	notifier.err = errors.New("smtp: connection reset")
	router := newOrderRouter(newMemoryOrderRepository(), notifier)

	payload := `{"products":[{"name":"Tee","price":500,"quantity":2}]}`
	rec := placeOrderRequest(t, router, "/order", payload)

	assert.Equal(t, http.StatusOK, rec.Code)

	select {
	case <-notifier.calls:
	case <-time.After(time.Second):
		t.Fatal("confirmation email was never attempted")
	}
}

func TestCreateOrderIdempotencyKeyReplay(t *testing.T) {
	repo := newMemoryOrderRepository()
	notifier := newFakeNotifier()
	router := newOrderRouter(repo, notifier)

	payload := `{"products":[{"name":"Tee","price":500,"quantity":2}],"idempotencyKey":"chk_abc"}`

	first := placeOrderRequest(t, router, "/order", payload)
	require.Equal(t, http.StatusOK, first.Code)
	second := placeOrderRequest(t, router, "/order", payload)
	require.Equal(t, http.StatusOK, second.Code)

	orders, count, err := repo.List(context.Background(), services.ListOrdersQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, orders, 1)
	assert.Equal(t, "chk_abc", orders[0].IdempotencyKey)

	// Only the first submission sends a confirmation email.
	select {
	case <-notifier.calls:
	case <-time.After(time.Second):
		t.Fatal("confirmation email was never dispatched")
	}
	select {
	case <-notifier.calls:
		t.Fatal("replayed submission re-sent the confirmation email")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestGetOrdersByCustomerForbidsOtherUsers(t *testing.T) {
	router := newOrderRouter(newMemoryOrderRepository(), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/user/user_2/orders", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetOrderByIDNotFound(t *testing.T) {
	router := newOrderRouter(newMemoryOrderRepository(), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/order/99", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
