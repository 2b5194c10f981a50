package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bookmart/bookstore-api/services"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// respondWithServiceError maps the service error taxonomy onto HTTP statuses:
// NotFound 404, InvalidRequest 400, Conflict 409, everything else 500.
func respondWithServiceError(ctx *gin.Context, err error) {
	ctx.JSON(statusFromError(err), gin.H{"message": err.Error()})
}

func statusFromError(err error) int {
	var notFound *services.NotFoundError
	var invalid *services.InvalidRequestError
	var conflict *services.ConflictError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &invalid):
		return http.StatusBadRequest
	case errors.As(err, &conflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// parseObjectID converts a path or body id, reporting 400 on malformed input.
func parseObjectID(ctx *gin.Context, raw, what string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid "+what)
		return primitive.NilObjectID, false
	}
	return id, true
}

func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
