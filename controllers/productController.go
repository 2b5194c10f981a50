package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bookmart/bookstore-api/models"
	"github.com/bookmart/bookstore-api/services"
	"github.com/bookmart/bookstore-api/store"
)

const productPageSize = 6

type ProductController struct {
	store   *store.Store
	reviews *services.ReviewService
}

func NewProductController(st *store.Store, reviews *services.ReviewService) *ProductController {
	return &ProductController{store: st, reviews: reviews}
}

type productRequest struct {
	Name        string       `json:"name" binding:"required"`
	Image       string       `json:"image"`
	Brand       string       `json:"brand" binding:"required"`
	Description string       `json:"description" binding:"required"`
	Price       models.Money `json:"price" binding:"required"`
	Category    string       `json:"category" binding:"required"`
	// Pointer so a stock of zero still passes the required check.
	Stock *int `json:"stock" binding:"required,gte=0"`
}

func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var body productRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	categoryID, ok := parseObjectID(ctx, body.Category, "category ID")
	if !ok {
		return
	}

	product := models.Product{
		Name:        body.Name,
		Image:       body.Image,
		Brand:       body.Brand,
		Description: body.Description,
		Price:       body.Price,
		Category:    categoryID,
		Stock:       *body.Stock,
	}

	if err := c.store.InsertProduct(ctx.Request.Context(), &product); err != nil {
		log.Println("Failed to create product:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create product")
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

func (c *ProductController) GetProducts(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	keyword := ctx.Query("keyword")

	products, total, err := c.store.FindProducts(ctx.Request.Context(), keyword, page, productPageSize)
	if err != nil {
		log.Println("Failed to fetch products:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch products")
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	pages := (total + productPageSize - 1) / productPageSize

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"products": products,
		"page":     page,
		"pages":    pages,
		"hasMore":  int64(page*productPageSize) < total,
	})
}

func (c *ProductController) GetProductByID(ctx *gin.Context) {
	productID, ok := parseObjectID(ctx, ctx.Param("id"), "product ID")
	if !ok {
		return
	}

	product, err := c.store.FindProductByID(ctx.Request.Context(), productID)
	if err != nil {
		if isNoDocuments(err) {
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		} else {
			log.Println("Failed to fetch product:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to retrieve product")
		}
		return
	}

	ctx.JSON(http.StatusOK, product)
}

func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	productID, ok := parseObjectID(ctx, ctx.Param("id"), "product ID")
	if !ok {
		return
	}

	var body productRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	categoryID, ok := parseObjectID(ctx, body.Category, "category ID")
	if !ok {
		return
	}

	product := models.Product{
		ID:          productID,
		Name:        body.Name,
		Image:       body.Image,
		Brand:       body.Brand,
		Description: body.Description,
		Price:       body.Price,
		Category:    categoryID,
		Stock:       *body.Stock,
	}

	if err := c.store.UpdateProduct(ctx.Request.Context(), &product); err != nil {
		if isNoDocuments(err) {
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		} else {
			log.Println("Failed to update product:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update product")
		}
		return
	}

	updated, err := c.store.FindProductByID(ctx.Request.Context(), productID)
	if err != nil {
		log.Println("Failed to reload product:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to retrieve product")
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

func (c *ProductController) DeleteProduct(ctx *gin.Context) {
	productID, ok := parseObjectID(ctx, ctx.Param("id"), "product ID")
	if !ok {
		return
	}

	if err := c.store.DeleteProduct(ctx.Request.Context(), productID); err != nil {
		if isNoDocuments(err) {
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		} else {
			log.Println("Failed to delete product:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete product")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func (c *ProductController) GetTopProducts(ctx *gin.Context) {
	products, err := c.store.FindTopProducts(ctx.Request.Context(), 4)
	if err != nil {
		log.Println("Failed to fetch top products:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch products")
		return
	}
	ctx.JSON(http.StatusOK, products)
}

func (c *ProductController) GetNewProducts(ctx *gin.Context) {
	products, err := c.store.FindNewProducts(ctx.Request.Context(), 5)
	if err != nil {
		log.Println("Failed to fetch new products:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch products")
		return
	}
	ctx.JSON(http.StatusOK, products)
}

type filterProductsRequest struct {
	Categories []string      `json:"categories"`
	PriceRange []models.Money `json:"priceRange"`
}

func (c *ProductController) FilterProducts(ctx *gin.Context) {
	var body filterProductsRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	categories := make([]primitive.ObjectID, 0, len(body.Categories))
	for _, raw := range body.Categories {
		id, ok := parseObjectID(ctx, raw, "category ID")
		if !ok {
			return
		}
		categories = append(categories, id)
	}

	var minPrice, maxPrice *models.Money
	if len(body.PriceRange) == 2 {
		minPrice = &body.PriceRange[0]
		maxPrice = &body.PriceRange[1]
	}

	products, err := c.store.FilterProducts(ctx.Request.Context(), categories, minPrice, maxPrice)
	if err != nil {
		log.Println("Failed to filter products:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to filter products")
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	ctx.JSON(http.StatusOK, products)
}

type addReviewRequest struct {
	User    string  `json:"user" binding:"required"`
	Rating  float64 `json:"rating" binding:"required,gte=1,lte=5"`
	Comment string  `json:"comment"`
}

func (c *ProductController) AddProductReview(ctx *gin.Context) {
	productID, ok := parseObjectID(ctx, ctx.Param("id"), "product ID")
	if !ok {
		return
	}

	var body addReviewRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, ok := parseObjectID(ctx, body.User, "user ID")
	if !ok {
		return
	}

	if err := c.reviews.AddReview(ctx.Request.Context(), productID, userID, body.Rating, body.Comment); err != nil {
		log.Println("Review rejected:", err)
		respondWithServiceError(ctx, err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": "Review added"})
}
