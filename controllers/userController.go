package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/bookmart/bookstore-api/models"
	"github.com/bookmart/bookstore-api/store"
)

const bcryptCost = 10

type UserController struct {
	store *store.Store
}

func NewUserController(st *store.Store) *UserController {
	return &UserController{store: st}
}

type createUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (c *UserController) CreateUser(ctx *gin.Context) {
	var body createUserRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	exists, err := c.store.UserExists(ctx.Request.Context(), body.Email, body.Username)
	if err != nil {
		log.Println("Database error during user check:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}
	if exists {
		sendErrorResponse(ctx, http.StatusBadRequest, "User already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcryptCost)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		Username: body.Username,
		Email:    body.Email,
		Password: string(hashed),
	}
	if err := c.store.InsertUser(ctx.Request.Context(), &user); err != nil {
		log.Println("User creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

func (c *UserController) GetUsers(ctx *gin.Context) {
	users, err := c.store.FindAllUsers(ctx.Request.Context())
	if err != nil {
		log.Println("Failed to fetch users:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch users")
		return
	}
	if users == nil {
		users = []models.User{}
	}
	ctx.JSON(http.StatusOK, users)
}

func (c *UserController) GetUserByID(ctx *gin.Context) {
	userID, ok := parseObjectID(ctx, ctx.Param("id"), "user ID")
	if !ok {
		return
	}

	user, err := c.store.FindUserByID(ctx.Request.Context(), userID)
	if err != nil {
		if isNoDocuments(err) {
			sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		} else {
			log.Println("Failed to fetch user:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to fetch user")
		}
		return
	}

	ctx.JSON(http.StatusOK, user)
}

type updateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (c *UserController) UpdateUser(ctx *gin.Context) {
	userID, ok := parseObjectID(ctx, ctx.Param("id"), "user ID")
	if !ok {
		return
	}

	var body updateUserRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	user, err := c.store.UpdateUser(ctx.Request.Context(), userID, body.Username, body.Email)
	if err != nil {
		if isNoDocuments(err) {
			sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		} else {
			log.Println("Failed to update user:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to update user")
		}
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (c *UserController) DeleteUser(ctx *gin.Context) {
	userID, ok := parseObjectID(ctx, ctx.Param("id"), "user ID")
	if !ok {
		return
	}

	if err := c.store.DeleteUser(ctx.Request.Context(), userID); err != nil {
		if isNoDocuments(err) {
			sendErrorResponse(ctx, http.StatusNotFound, "User not found")
		} else {
			log.Println("Failed to delete user:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to delete user")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "User deleted successfully"})
}
