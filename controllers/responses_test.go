package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bookmart/bookstore-api/services"
)

func TestStatusFromError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{&services.NotFoundError{Resource: "product"}, http.StatusNotFound},
		{&services.InvalidRequestError{Reason: "no order items provided"}, http.StatusBadRequest},
		{&services.ConflictError{Reason: "product already reviewed"}, http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
		{fmt.Errorf("fetch user: %w", &services.NotFoundError{Resource: "user"}), http.StatusNotFound},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, statusFromError(tc.err), "error %v", tc.err)
	}
}
