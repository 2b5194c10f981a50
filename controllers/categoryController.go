package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookmart/bookstore-api/models"
	"github.com/bookmart/bookstore-api/store"
)

type CategoryController struct {
	store *store.Store
}

func NewCategoryController(st *store.Store) *CategoryController {
	return &CategoryController{store: st}
}

type categoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	var body categoryRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	category := models.Category{Name: body.Name}
	if err := c.store.InsertCategory(ctx.Request.Context(), &category); err != nil {
		log.Println("Failed to create category:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create category")
		return
	}

	ctx.JSON(http.StatusCreated, category)
}

func (c *CategoryController) GetCategories(ctx *gin.Context) {
	categories, err := c.store.FindAllCategories(ctx.Request.Context())
	if err != nil {
		log.Println("Failed to fetch categories:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch categories")
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	ctx.JSON(http.StatusOK, categories)
}

func (c *CategoryController) GetCategoryByID(ctx *gin.Context) {
	categoryID, ok := parseObjectID(ctx, ctx.Param("id"), "category ID")
	if !ok {
		return
	}

	category, err := c.store.FindCategoryByID(ctx.Request.Context(), categoryID)
	if err != nil {
		if isNoDocuments(err) {
			sendErrorResponse(ctx, http.StatusNotFound, "Category not found")
		} else {
			log.Println("Failed to fetch category:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch category")
		}
		return
	}

	ctx.JSON(http.StatusOK, category)
}

func (c *CategoryController) UpdateCategory(ctx *gin.Context) {
	categoryID, ok := parseObjectID(ctx, ctx.Param("id"), "category ID")
	if !ok {
		return
	}

	var body categoryRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := c.store.UpdateCategory(ctx.Request.Context(), categoryID, body.Name)
	if err != nil {
		if isNoDocuments(err) {
			sendErrorResponse(ctx, http.StatusNotFound, "Category not found")
		} else {
			log.Println("Failed to update category:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to update category")
		}
		return
	}

	ctx.JSON(http.StatusOK, category)
}

func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	categoryID, ok := parseObjectID(ctx, ctx.Param("id"), "category ID")
	if !ok {
		return
	}

	if err := c.store.DeleteCategory(ctx.Request.Context(), categoryID); err != nil {
		if isNoDocuments(err) {
			sendErrorResponse(ctx, http.StatusNotFound, "Category not found")
		} else {
			log.Println("Failed to delete category:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to delete category")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
