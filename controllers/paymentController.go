package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/vastramart/vastramart-api/middlewares"
	"github.com/vastramart/vastramart-api/models"
	"github.com/vastramart/vastramart-api/payments"
	"github.com/vastramart/vastramart-api/services"
)

// PaymentLinkIssuer obtains a hosted payment page from the external
// provider for an order total and customer contact triple.
type PaymentLinkIssuer interface {
	CreatePaymentLink(ctx context.Context, order *models.Order, customer payments.Customer, callbackURL string) (*payments.PaymentLink, error)
}

type PaymentController struct {
	orders *services.OrderService
	issuer PaymentLinkIssuer
}

func NewPaymentController(orders *services.OrderService, issuer PaymentLinkIssuer) *PaymentController {
	return &PaymentController{orders: orders, issuer: issuer}
}

// CreatePaymentLink persists a pending order first, so an id exists to
// correlate the provider callback, then requests the hosted payment page.
// If the provider call fails the order stays pending: retriable, never
// rolled back.
func (c *PaymentController) CreatePaymentLink(ctx *gin.Context) {
	principal, ok := middlewares.GetPrincipal(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgAuthRequired)
		return
	}

	var body struct {
		TotalAmount float64           `json:"totalAmount" binding:"required,gt=0"`
		UserName    string            `json:"userName" binding:"required"`
		UserEmail   string            `json:"userEmail" binding:"required,email"`
		UserPhone   string            `json:"userPhone" binding:"required"`
		CartItems   []models.CartItem `json:"cartItems" binding:"required,dive"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Printf("JSON binding error: %v", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	products := make([]models.OrderedProduct, 0, len(body.CartItems))
	for _, item := range body.CartItems {
		products = append(products, models.OrderedProduct{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	order, _, err := c.orders.PlaceOrder(ctx.Request.Context(), principal.UserID, products, "")
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			sendErrorResponse(ctx, http.StatusBadRequest, msgOrderNeedsProducts)
			return
		}
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToCreateOrder)
		return
	}

	customer := payments.Customer{
		Name:  body.UserName,
		Email: body.UserEmail,
		Phone: body.UserPhone,
	}

	link, err := c.issuer.CreatePaymentLink(ctx.Request.Context(), order, customer, callbackURL())
	if err != nil {
		log.Printf("Payment provider error for order %d: %v", order.ID, err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToInitiatePay)
		return
	}

	if err := c.orders.AttachPaymentLink(ctx.Request.Context(), order, link.ID); err != nil {
		log.Printf("Order %d created, but payment link id not saved: %s", order.ID, link.ID)
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"url": link.ShortURL})
}

type callbackParams struct {
	PaymentID   string `json:"razorpay_payment_id" form:"razorpay_payment_id"`
	LinkID      string `json:"razorpay_payment_link_id" form:"razorpay_payment_link_id"`
	ReferenceID string `json:"razorpay_payment_link_reference_id" form:"razorpay_payment_link_reference_id"`
	LinkStatus  string `json:"razorpay_payment_link_status" form:"razorpay_payment_link_status"`
}

// PaymentCallback handles the provider's redirect (GET with query params)
// and webhook (POST with a JSON body). It transitions the referenced order
// and, for browser redirects, forwards the customer to the storefront's
// order-success page.
func (c *PaymentController) PaymentCallback(ctx *gin.Context) {
	var params callbackParams

	if ctx.Request.Method == http.MethodPost {
		if err := ctx.ShouldBindJSON(&params); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidRequestBody)
			return
		}
	} else {
		params.PaymentID = ctx.Query("razorpay_payment_id")
		params.LinkID = ctx.Query("razorpay_payment_link_id")
		params.ReferenceID = ctx.Query("razorpay_payment_link_reference_id")
		params.LinkStatus = ctx.Query("razorpay_payment_link_status")
	}

	if params.ReferenceID == "" || params.LinkStatus == "" {
		sendErrorResponse(ctx, http.StatusBadRequest, msgMissingCallbackParams)
		return
	}

	orderID, err := payments.ParseReferenceID(params.ReferenceID)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid reference id")
		return
	}

	switch params.LinkStatus {
	case "paid":
		_, err = c.orders.MarkPaid(ctx.Request.Context(), orderID, params.PaymentID)
	case "expired", "cancelled":
		_, err = c.orders.MarkFailed(ctx.Request.Context(), orderID)
	default:
		log.Printf("Order %d: ignoring callback with status %q", orderID, params.LinkStatus)
		ctx.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		case errors.Is(err, services.ErrOrderFinal):
			sendErrorResponse(ctx, http.StatusConflict, "Order already settled")
		default:
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
		}
		return
	}

	if ctx.Request.Method == http.MethodGet {
		ctx.Redirect(http.StatusFound, os.Getenv("FRONTEND_URL")+"/order-success")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func callbackURL() string {
	return os.Getenv("API_BASE_URL") + "/payment/callback"
}
