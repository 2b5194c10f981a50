package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the BookMart API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

USER
- POST "/api/users" - Create user account
- GET "/api/users" - Get all users
- GET "/api/users/:id" - Get user by ID
- PUT "/api/users/:id" - Update user by ID
- DELETE "/api/users/:id" - Delete user by ID

CATEGORY
- POST "/api/category" - Create a category
- GET "/api/category" - Get all categories
- GET "/api/category/:id" - Get category by ID
- PUT "/api/category/:id" - Update category by ID
- DELETE "/api/category/:id" - Delete category by ID

PRODUCT
- POST "/api/products" - Create new product
- GET "/api/products" - Get products (supports ?keyword= and ?page=)
- GET "/api/products/top" - Get top rated products
- GET "/api/products/new" - Get newest products
- POST "/api/products/filter" - Filter products by category and price range
- GET "/api/products/:id" - Get product by ID
- PUT "/api/products/:id" - Update product by ID
- DELETE "/api/products/:id" - Delete product by ID
- POST "/api/products/:id/reviews" - Add a product review

ORDER ITEM
- POST "/api/orderitems" - Add an order item
- GET "/api/orderitems" - Get all order items
- GET "/api/orderitems/user/:id" - Get order items for a user
- GET "/api/orderitems/:id" - Get order item by ID
- PUT "/api/orderitems/:id" - Update order item quantity
- DELETE "/api/orderitems/:id" - Delete order item by ID

ORDER
- POST "/api/orders" - Create a new order
- GET "/api/orders" - Retrieve all orders
- GET "/api/orders/total-orders" - Count all orders
- GET "/api/orders/total-sales" - Calculate total sales
- GET "/api/orders/total-sales-by-date" - Sales grouped by paid date
- GET "/api/orders/order-user/:id" - Get orders for a specific user
- GET "/api/orders/:id" - Get order by ID
- PUT "/api/orders/:id/pay" - Mark order as paid
- PUT "/api/orders/:id/delivered" - Mark order as delivered

PAYMENT BILL
- POST "/api/paymentbills" - Create a payment bill
- GET "/api/paymentbills" - Get all payment bills
- GET "/api/paymentbills/:id" - Get payment bill by ID`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
