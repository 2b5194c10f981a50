package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bookmart/bookstore-api/controllers"
)

func CategoryRoutes(server *gin.Engine, categories *controllers.CategoryController) {
	group := server.Group("/api/category")
	{
		group.POST("", categories.CreateCategory)
		group.GET("", categories.GetCategories)
		group.GET("/:id", categories.GetCategoryByID)
		group.PUT("/:id", categories.UpdateCategory)
		group.DELETE("/:id", categories.DeleteCategory)
	}
}
