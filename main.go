package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/bookmart/bookstore-api/controllers"
	"github.com/bookmart/bookstore-api/initializers"
	"github.com/bookmart/bookstore-api/routes"
	"github.com/bookmart/bookstore-api/services"
	"github.com/bookmart/bookstore-api/store"
)

func init() {
	initializers.LoadEnv()
}

func main() {
	client, db, err := initializers.ConnectToDB()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Println("Failed to disconnect from database:", err)
		}
	}()

	if err := initializers.SyncDatabase(db); err != nil {
		log.Fatal("Failed to sync database:", err)
	}

	st := store.New(db)
	orderService := services.NewOrderService(st)
	reviewService := services.NewReviewService(st)

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:4200"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.UserRoutes(server, controllers.NewUserController(st))
	routes.CategoryRoutes(server, controllers.NewCategoryController(st))
	routes.ProductRoutes(server, controllers.NewProductController(st, reviewService))
	routes.OrderItemRoutes(server, controllers.NewOrderItemController(st))
	routes.OrderRoutes(server, controllers.NewOrderController(st, orderService))
	routes.PaymentBillRoutes(server, controllers.NewPaymentBillController(st))

	server.Run()
}
