package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookmart/bookstore-api/controllers"
	"github.com/bookmart/bookstore-api/store"
)

// newTestServer wires the order item routes onto a store whose client points
// at an unreachable address. Requests that make it past request parsing fail
// inside the store with a server selection error, so a 400 can only come from
// the handler's own validation.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetServerSelectionTimeout(20*time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	st := store.New(client.Database("test"))
	server := gin.New()
	OrderItemRoutes(server, controllers.NewOrderItemController(st))
	return server
}

func TestGetOrderItemsByUserRouteParsesUserID(t *testing.T) {
	server := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orderitems/user/"+primitive.NewObjectID().Hex(), nil)
	server.ServeHTTP(rec, req)

	// The id reaches the store lookup, which fails against the dead client.
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetOrderItemsByUserRouteRejectsMalformedID(t *testing.T) {
	server := newTestServer(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orderitems/user/not-an-id", nil)
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid user ID")
}
