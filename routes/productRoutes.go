package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bookmart/bookstore-api/controllers"
)

func ProductRoutes(server *gin.Engine, products *controllers.ProductController) {
	group := server.Group("/api/products")
	{
		group.POST("", products.CreateProduct)
		group.GET("", products.GetProducts)
		group.GET("/top", products.GetTopProducts)
		group.GET("/new", products.GetNewProducts)
		group.POST("/filter", products.FilterProducts)
		group.GET("/:id", products.GetProductByID)
		group.PUT("/:id", products.UpdateProduct)
		group.DELETE("/:id", products.DeleteProduct)
		group.POST("/:id/reviews", products.AddProductReview)
	}
}
