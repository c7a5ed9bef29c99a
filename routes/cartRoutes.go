package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vastramart/vastramart-api/controllers"
)

func CartRoutes(server *gin.Engine, cart *controllers.CartController) {
	server.GET("/cart/:userId", cart.GetCart)
	server.POST("/cart/:userId", cart.SetCart)
}
