package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bookmart/bookstore-api/controllers"
)

func OrderItemRoutes(server *gin.Engine, orderItems *controllers.OrderItemController) {
	group := server.Group("/api/orderitems")
	{
		group.POST("", orderItems.AddOrderItem)
		group.GET("", orderItems.GetOrderItems)
		group.GET("/user/:id", orderItems.GetOrderItemsByUser)
		group.GET("/:id", orderItems.GetOrderItemByID)
		group.PUT("/:id", orderItems.UpdateOrderItem)
		group.DELETE("/:id", orderItems.DeleteOrderItem)
	}
}
