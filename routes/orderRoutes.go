package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bookmart/bookstore-api/controllers"
)

func OrderRoutes(server *gin.Engine, orders *controllers.OrderController) {
	group := server.Group("/api/orders")
	{
		group.POST("", orders.CreateOrder)
		group.GET("", orders.GetOrders)
		group.GET("/total-orders", orders.CountTotalOrders)
		group.GET("/total-sales", orders.CalculateTotalSales)
		group.GET("/total-sales-by-date", orders.CalculateTotalSalesByDate)
		group.GET("/order-user/:id", orders.GetUserOrders)
		group.GET("/:id", orders.GetOrderByID)
		group.PUT("/:id/pay", orders.MarkOrderAsPaid)
		group.PUT("/:id/delivered", orders.MarkOrderAsDelivered)
	}
}
