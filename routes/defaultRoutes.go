package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vastramart/vastramart-api/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}
