package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Vastramart API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

PRODUCT
- POST "/product" - Create new product (admin)
- GET "/product" - Get all products
- GET "/product/:id" - Get product by ID
- PUT "/product/:id" - Update product (admin)
- DELETE "/product/:id" - Delete product (admin)
- POST "/product-images" - Upload product images (admin)

CAROUSEL
- GET "/carousel" - Get active carousel slides
- POST "/carousel" - Create carousel slide (admin)
- PUT "/carousel/:id" - Update carousel slide (admin)
- DELETE "/carousel/:id" - Delete carousel slide (admin)

ANNOUNCEMENT
- GET "/announcement/latest" - Get latest active announcement
- GET "/announcement" - Get all announcements (admin)
- POST "/announcement" - Create announcement (admin)
- PUT "/announcement/:id" - Update announcement (admin)
- DELETE "/announcement/:id" - Delete announcement (admin)

CART
- GET "/cart/:userId" - Get a user's cart
- POST "/cart/:userId" - Replace a user's cart

ORDER
- POST "/order" - Place a new order
- GET "/order" - Retrieve all orders (admin)
- GET "/user/:userId/orders" - Get orders for a specific user
- GET "/order/:orderId" - Get order by ID
- GET "/order-metrics/open" - Count orders awaiting payment (admin)

PAYMENT
- POST "/payment/create-payment-link" - Create a hosted payment link
- GET/POST "/payment/callback" - Payment provider callback`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
