package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vastramart/vastramart-api/models"
	"github.com/vastramart/vastramart-api/services"
)

type CartController struct {
	carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

// GetCart returns the user's cart items. A user who has never saved a cart
// gets an empty array, not an error.
func (c *CartController) GetCart(ctx *gin.Context) {
	userID := ctx.Param("userId")

	items, err := c.carts.GetCart(ctx.Request.Context(), userID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToFetchCart)
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// SetCart replaces the user's cart with the submitted item list.
func (c *CartController) SetCart(ctx *gin.Context) {
	userID := ctx.Param("userId")

	// required rejects a missing items field (nil slice) while an explicit
	// empty list still binds non-nil and clears the cart.
	var body struct {
		Items []models.CartItem `json:"items" binding:"required,dive"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	cart, err := c.carts.SetCart(ctx.Request.Context(), userID, body.Items)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToSaveCart)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"cart": cart})
}
