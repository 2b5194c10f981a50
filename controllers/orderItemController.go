package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookmart/bookstore-api/models"
	"github.com/bookmart/bookstore-api/store"
)

// OrderItemController serves the cart-style order item endpoints: items
// created here carry a user reference and a mutable quantity, unlike the
// items frozen into a placed order.
type OrderItemController struct {
	store *store.Store
}

func NewOrderItemController(st *store.Store) *OrderItemController {
	return &OrderItemController{store: st}
}

type addOrderItemRequest struct {
	User    string `json:"user"`
	Product string `json:"product" binding:"required"`
	Qty     int    `json:"qty" binding:"required,gt=0"`
}

func (c *OrderItemController) AddOrderItem(ctx *gin.Context) {
	var body addOrderItemRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	productID, ok := parseObjectID(ctx, body.Product, "product ID")
	if !ok {
		return
	}

	product, err := c.store.FindProductByID(ctx.Request.Context(), productID)
	if err != nil {
		if isNoDocuments(err) {
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		} else {
			log.Println("Failed to fetch product:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch product")
		}
		return
	}

	item := models.OrderItem{
		Name:    product.Name,
		Qty:     body.Qty,
		Image:   product.Image,
		Price:   product.Price,
		Product: product.ID,
	}
	if body.User != "" {
		userID, ok := parseObjectID(ctx, body.User, "user ID")
		if !ok {
			return
		}
		item.User = userID
	}

	if err := c.store.InsertOrderItem(ctx.Request.Context(), &item); err != nil {
		log.Println("Failed to create order item:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create order item")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"success": true,
		"message": "Order item created successfully",
		"data":    item,
	})
}

func (c *OrderItemController) GetOrderItems(ctx *gin.Context) {
	items, err := c.store.FindAllOrderItems(ctx.Request.Context())
	if err != nil {
		log.Println("Failed to fetch order items:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch order items")
		return
	}
	if items == nil {
		items = []models.OrderItem{}
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": items})
}

func (c *OrderItemController) GetOrderItemsByUser(ctx *gin.Context) {
	userID, ok := parseObjectID(ctx, ctx.Param("id"), "user ID")
	if !ok {
		return
	}

	items, err := c.store.FindOrderItemsByUser(ctx.Request.Context(), userID)
	if err != nil {
		log.Println("Failed to fetch order items:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch order items")
		return
	}
	if items == nil {
		items = []models.OrderItem{}
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": items})
}

func (c *OrderItemController) GetOrderItemByID(ctx *gin.Context) {
	itemID, ok := parseObjectID(ctx, ctx.Param("id"), "order item ID")
	if !ok {
		return
	}

	item, err := c.store.FindOrderItemByID(ctx.Request.Context(), itemID)
	if err != nil {
		if isNoDocuments(err) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order item not found")
		} else {
			log.Println("Failed to fetch order item:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch order item")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": item})
}

type updateOrderItemRequest struct {
	Qty int `json:"qty" binding:"required,gt=0"`
}

func (c *OrderItemController) UpdateOrderItem(ctx *gin.Context) {
	itemID, ok := parseObjectID(ctx, ctx.Param("id"), "order item ID")
	if !ok {
		return
	}

	var body updateOrderItemRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	item, err := c.store.UpdateOrderItemQty(ctx.Request.Context(), itemID, body.Qty)
	if err != nil {
		if isNoDocuments(err) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order item not found")
		} else {
			log.Println("Failed to update order item:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to update order item")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "data": item})
}

func (c *OrderItemController) DeleteOrderItem(ctx *gin.Context) {
	itemID, ok := parseObjectID(ctx, ctx.Param("id"), "order item ID")
	if !ok {
		return
	}

	if err := c.store.DeleteOrderItem(ctx.Request.Context(), itemID); err != nil {
		if isNoDocuments(err) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order item not found")
		} else {
			log.Println("Failed to delete order item:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to delete order item")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true, "message": "Order item deleted successfully"})
}
