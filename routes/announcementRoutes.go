package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vastramart/vastramart-api/controllers"
	"github.com/vastramart/vastramart-api/middlewares"
)

func AnnouncementRoutes(server *gin.Engine, announcement *controllers.AnnouncementController) {
	server.GET("/announcement/latest", announcement.GetLatestAnnouncement)

	admin := server.Group("/announcement", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("", announcement.GetAnnouncements)
		admin.POST("", announcement.CreateAnnouncement)
		admin.PUT("/:id", announcement.UpdateAnnouncement)
		admin.DELETE("/:id", announcement.DeleteAnnouncement)
	}
}
