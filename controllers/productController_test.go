package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindProductRequest(t *testing.T, body string) (productRequest, error) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(body))
	ctx.Request.Header.Set("Content-Type", "application/json")

	var req productRequest
	err := ctx.ShouldBindJSON(&req)
	return req, err
}

func TestProductRequestAcceptsZeroStock(t *testing.T) {
	req, err := bindProductRequest(t, `{
		"name": "novel",
		"brand": "penguin",
		"description": "a fine read",
		"price": "19.99",
		"category": "64f000000000000000000001",
		"stock": 0
	}`)
	require.NoError(t, err)
	require.NotNil(t, req.Stock)
	assert.Equal(t, 0, *req.Stock)
}

func TestProductRequestRejectsMissingStock(t *testing.T) {
	_, err := bindProductRequest(t, `{
		"name": "novel",
		"brand": "penguin",
		"description": "a fine read",
		"price": "19.99",
		"category": "64f000000000000000000001"
	}`)
	assert.Error(t, err)
}

func TestProductRequestRejectsNegativeStock(t *testing.T) {
	_, err := bindProductRequest(t, `{
		"name": "novel",
		"brand": "penguin",
		"description": "a fine read",
		"price": "19.99",
		"category": "64f000000000000000000001",
		"stock": -1
	}`)
	assert.Error(t, err)
}
