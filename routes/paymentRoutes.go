package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vastramart/vastramart-api/controllers"
	"github.com/vastramart/vastramart-api/middlewares"
)

func PaymentRoutes(server *gin.Engine, payment *controllers.PaymentController) {
	server.POST("/payment/create-payment-link", middlewares.RequireAuth(), payment.CreatePaymentLink)
	server.GET("/payment/callback", payment.PaymentCallback)
	server.POST("/payment/callback", payment.PaymentCallback)
}
