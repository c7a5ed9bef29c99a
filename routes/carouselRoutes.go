package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vastramart/vastramart-api/controllers"
	"github.com/vastramart/vastramart-api/middlewares"
)

func CarouselRoutes(server *gin.Engine, carousel *controllers.CarouselController) {
	server.GET("/carousel", carousel.GetSlides)

	admin := server.Group("/carousel", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("", carousel.CreateSlide)
		admin.PUT("/:id", carousel.UpdateSlide)
		admin.DELETE("/:id", carousel.DeleteSlide)
	}
}
