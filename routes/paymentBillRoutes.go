package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bookmart/bookstore-api/controllers"
)

func PaymentBillRoutes(server *gin.Engine, bills *controllers.PaymentBillController) {
	group := server.Group("/api/paymentbills")
	{
		group.POST("", bills.AddPaymentBill)
		group.GET("", bills.GetPaymentBills)
		group.GET("/:id", bills.GetPaymentBillByID)
	}
}
