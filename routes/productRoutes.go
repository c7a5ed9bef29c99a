package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vastramart/vastramart-api/controllers"
	"github.com/vastramart/vastramart-api/middlewares"
)

func ProductRoutes(server *gin.Engine, product *controllers.ProductController) {
	server.GET("/product", product.GetProducts)
	server.GET("/product/:id", product.GetProduct)

	admin := server.Group("/", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("/product", product.CreateProduct)
		admin.PUT("/product/:id", product.UpdateProduct)
		admin.DELETE("/product/:id", product.DeleteProduct)
		admin.POST("/product-images", product.UploadProductImages)
	}
}
