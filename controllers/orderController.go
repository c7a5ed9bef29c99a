package controllers

import (
	"context"
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vastramart/vastramart-api/middlewares"
	"github.com/vastramart/vastramart-api/models"
	"github.com/vastramart/vastramart-api/services"
)

// OrderNotifier dispatches the confirmation email after an order is
// placed. Failures must not fail the order itself.
type OrderNotifier interface {
	SendOrderConfirmation(ctx context.Context, userID string, products []models.OrderedProduct) error
}

type OrderController struct {
	orders   *services.OrderService
	notifier OrderNotifier
}

func NewOrderController(orders *services.OrderService, notifier OrderNotifier) *OrderController {
	return &OrderController{orders: orders, notifier: notifier}
}

// CreateOrder persists a pending order for the authenticated user and
// kicks off the confirmation email without blocking the response. An email
// failure never voids a placed order.
func (c *OrderController) CreateOrder(ctx *gin.Context) {
	principal, ok := middlewares.GetPrincipal(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgAuthRequired)
		return
	}

	var body struct {
		Products       []models.OrderedProduct `json:"products" binding:"omitempty,dive"`
		IdempotencyKey string                  `json:"idempotencyKey"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Printf("JSON binding error: %v", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	order, replayed, err := c.orders.PlaceOrder(ctx.Request.Context(), principal.UserID, body.Products, body.IdempotencyKey)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			sendErrorResponse(ctx, http.StatusBadRequest, msgOrderNeedsProducts)
			return
		}
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToCreateOrder)
		return
	}

	// A replayed submission already sent its confirmation email.
	if !replayed {
		c.notifyAsync(principal.UserID, order)
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": msgOrderPlaced,
		"order":   order,
	})
}

func (c *OrderController) notifyAsync(userID string, order *models.Order) {
	if c.notifier == nil {
		return
	}
	products := order.Products
	orderID := order.ID
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := c.notifier.SendOrderConfirmation(ctx, userID, products); err != nil {
			log.Printf("Order %d: confirmation email not sent: %v", orderID, err)
		}
	}()
}

// GetOrdersByCustomer lists a customer's orders, newest first by default.
// A customer may only read their own orders; admins may read anyone's.
func (c *OrderController) GetOrdersByCustomer(ctx *gin.Context) {
	principal, ok := middlewares.GetPrincipal(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgAuthRequired)
		return
	}

	userID := ctx.Param("userId")
	if principal.UserID != userID && principal.Role != "admin" {
		sendErrorResponse(ctx, http.StatusForbidden, msgForbidden)
		return
	}

	sortOrder := ctx.DefaultQuery("sort", "desc")

	orders, err := c.orders.GetOrdersByUser(ctx.Request.Context(), userID, sortOrder)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchOrders)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

func (c *OrderController) GetOrderByID(ctx *gin.Context) {
	principal, ok := middlewares.GetPrincipal(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgAuthRequired)
		return
	}

	orderID, err := strconv.Atoi(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	order, err := c.orders.GetOrderByID(ctx.Request.Context(), uint(orderID))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
			return
		}
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchOrders)
		return
	}

	if order.UserID != principal.UserID && principal.Role != "admin" {
		sendErrorResponse(ctx, http.StatusForbidden, msgForbidden)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

// GetOrders is the admin listing with pagination metadata.
func (c *OrderController) GetOrders(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 15
	}

	query := services.ListOrdersQuery{
		Page:   page,
		Limit:  limit,
		Sort:   ctx.DefaultQuery("sort", "desc"),
		Search: ctx.Query("search"),
	}

	orders, count, err := c.orders.ListOrders(ctx.Request.Context(), query)
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch orders", err)
		return
	}

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(count) / float64(query.Limit))

	ctx.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"metadata": gin.H{
			"total":        count,
			"currentPage":  page,
			"limit":        query.Limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

// GetOpenOrderCount reports how many orders still await payment; feeds the
// admin dashboard.
func (c *OrderController) GetOpenOrderCount(ctx *gin.Context) {
	count, err := c.orders.CountOpenOrders(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to count open orders", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"openOrderCount": count})
}
