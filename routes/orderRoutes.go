package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vastramart/vastramart-api/controllers"
	"github.com/vastramart/vastramart-api/middlewares"
)

func OrderRoutes(server *gin.Engine, order *controllers.OrderController) {
	server.POST("/order", middlewares.RequireAuth(), order.CreateOrder)
	server.GET("/order", middlewares.RequireAuth(), middlewares.RequireAdmin(), order.GetOrders)
	server.GET("/order/:orderId", middlewares.RequireAuth(), order.GetOrderByID)
	server.GET("/user/:userId/orders", middlewares.RequireAuth(), order.GetOrdersByCustomer)
	server.GET("/order-metrics/open", middlewares.RequireAuth(), middlewares.RequireAdmin(), order.GetOpenOrderCount)
}
