package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bookmart/bookstore-api/controllers"
)

func UserRoutes(server *gin.Engine, users *controllers.UserController) {
	group := server.Group("/api/users")
	{
		group.POST("", users.CreateUser)
		group.GET("", users.GetUsers)
		group.GET("/:id", users.GetUserByID)
		group.PUT("/:id", users.UpdateUser)
		group.DELETE("/:id", users.DeleteUser)
	}
}
