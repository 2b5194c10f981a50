package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookmart/bookstore-api/models"
	"github.com/bookmart/bookstore-api/services"
	"github.com/bookmart/bookstore-api/store"
)

type OrderController struct {
	store  *store.Store
	orders *services.OrderService
}

func NewOrderController(st *store.Store, orders *services.OrderService) *OrderController {
	return &OrderController{store: st, orders: orders}
}

type createOrderRequest struct {
	User       string `json:"user" binding:"required"`
	OrderItems []struct {
		ID  string `json:"id" binding:"required"`
		Qty int    `json:"qty" binding:"required,gt=0"`
	} `json:"orderItems"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
	PaymentBill     string                 `json:"paymentBill" binding:"required"`
}

func (c *OrderController) CreateOrder(ctx *gin.Context) {
	var body createOrderRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(body.OrderItems) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "No order items provided")
		return
	}

	userID, ok := parseObjectID(ctx, body.User, "user ID")
	if !ok {
		return
	}
	billID, ok := parseObjectID(ctx, body.PaymentBill, "payment bill ID")
	if !ok {
		return
	}

	items := make([]services.RequestedItem, len(body.OrderItems))
	for i, item := range body.OrderItems {
		productID, ok := parseObjectID(ctx, item.ID, "product ID")
		if !ok {
			return
		}
		items[i] = services.RequestedItem{ProductID: productID, Qty: item.Qty}
	}

	order, err := c.orders.Create(ctx.Request.Context(), services.CreateOrderInput{
		UserID:          userID,
		PaymentBillID:   billID,
		Items:           items,
		ShippingAddress: body.ShippingAddress,
		PaymentMethod:   body.PaymentMethod,
	})
	if err != nil {
		log.Println("Order creation failed:", err)
		respondWithServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, order)
}

// orderWithUser replaces the raw user reference with a small projection of
// the user record, mirroring the populated responses of the list and detail
// endpoints.
type orderWithUser struct {
	*models.Order
	User gin.H `json:"user"`
}

func (c *OrderController) GetOrders(ctx *gin.Context) {
	orders, err := c.store.FindAllOrders(ctx.Request.Context())
	if err != nil {
		log.Println("Failed to fetch orders:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch orders")
		return
	}

	populated := make([]orderWithUser, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		entry := orderWithUser{Order: o, User: gin.H{"id": o.User}}
		if user, err := c.store.FindUserByID(ctx.Request.Context(), o.User); err == nil {
			entry.User = gin.H{"id": user.ID, "username": user.Username}
		}
		populated = append(populated, entry)
	}

	ctx.JSON(http.StatusOK, populated)
}

func (c *OrderController) GetOrderByID(ctx *gin.Context) {
	orderID, ok := parseObjectID(ctx, ctx.Param("id"), "order ID")
	if !ok {
		return
	}

	order, err := c.store.FindOrderByID(ctx.Request.Context(), orderID)
	if err != nil {
		if isNoDocuments(err) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println("Failed to fetch order:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch order")
		}
		return
	}

	entry := orderWithUser{Order: order, User: gin.H{"id": order.User}}
	if user, err := c.store.FindUserByID(ctx.Request.Context(), order.User); err == nil {
		entry.User = gin.H{"username": user.Username, "email": user.Email}
	}

	ctx.JSON(http.StatusOK, entry)
}

func (c *OrderController) GetUserOrders(ctx *gin.Context) {
	userID, ok := parseObjectID(ctx, ctx.Param("id"), "user ID")
	if !ok {
		return
	}

	if _, err := c.store.FindUserByID(ctx.Request.Context(), userID); err != nil {
		if isNoDocuments(err) {
			sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		} else {
			log.Println("Failed to fetch user:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch user")
		}
		return
	}

	orders, err := c.store.FindOrdersByUser(ctx.Request.Context(), userID)
	if err != nil {
		log.Println("Failed to fetch orders:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch orders")
		return
	}
	if len(orders) == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "No orders found for this user")
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

func (c *OrderController) CountTotalOrders(ctx *gin.Context) {
	total, err := c.store.CountOrders(ctx.Request.Context())
	if err != nil {
		log.Println("Failed to count orders:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to count orders")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"totalOrders": total})
}

func (c *OrderController) CalculateTotalSales(ctx *gin.Context) {
	total, err := c.store.TotalSales(ctx.Request.Context())
	if err != nil {
		log.Println("Failed to sum sales:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to calculate total sales")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"totalSales": total})
}

func (c *OrderController) CalculateTotalSalesByDate(ctx *gin.Context) {
	sales, err := c.store.TotalSalesByDate(ctx.Request.Context())
	if err != nil {
		log.Println("Failed to group sales:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to calculate sales by date")
		return
	}
	if sales == nil {
		sales = []store.SalesByDate{}
	}
	ctx.JSON(http.StatusOK, sales)
}

type markPaidRequest struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	UpdateTime string `json:"update_time"`
	Payer      struct {
		EmailAddress string `json:"email_address"`
	} `json:"payer"`
}

func (c *OrderController) MarkOrderAsPaid(ctx *gin.Context) {
	orderID, ok := parseObjectID(ctx, ctx.Param("id"), "order ID")
	if !ok {
		return
	}

	var body markPaidRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	result := models.PaymentResult{
		ID:           body.ID,
		Status:       body.Status,
		UpdateTime:   body.UpdateTime,
		EmailAddress: body.Payer.EmailAddress,
	}

	order, err := c.store.SetOrderPaid(ctx.Request.Context(), orderID, result)
	if err != nil {
		if isNoDocuments(err) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println("Failed to mark order paid:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to update order")
		}
		return
	}

	ctx.JSON(http.StatusOK, order)
}

func (c *OrderController) MarkOrderAsDelivered(ctx *gin.Context) {
	orderID, ok := parseObjectID(ctx, ctx.Param("id"), "order ID")
	if !ok {
		return
	}

	order, err := c.store.SetOrderDelivered(ctx.Request.Context(), orderID)
	if err != nil {
		if isNoDocuments(err) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
		} else {
			log.Println("Failed to mark order delivered:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to update order")
		}
		return
	}

	ctx.JSON(http.StatusOK, order)
}

