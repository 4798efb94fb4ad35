package apierror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"storefront/internal/apierror"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsCarryStatus(t *testing.T) {
	cases := []struct {
		err    *apierror.Error
		status int
	}{
		{apierror.BadRequest("bad input"), http.StatusBadRequest},
		{apierror.NotFound("missing"), http.StatusNotFound},
		{apierror.Unauthorized("who are you"), http.StatusUnauthorized},
		{apierror.Forbidden("not yours"), http.StatusForbidden},
		{apierror.Internal("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.Status)
		assert.Equal(t, tc.status, apierror.StatusOf(tc.err))
	}
}

func TestConstructorsDefaultMessage(t *testing.T) {
	assert.Equal(t, "bad request", apierror.BadRequest("").Error())
	assert.Equal(t, "not found", apierror.NotFound("").Error())
}

func TestStatusOfUnknownErrorIs500(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, apierror.StatusOf(errors.New("driver: connection reset")))
}

func TestStatusOfWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("loading product: %w", apierror.NotFound("product not found"))
	assert.Equal(t, http.StatusNotFound, apierror.StatusOf(wrapped))

	var apiErr *apierror.Error
	assert.True(t, errors.As(wrapped, &apiErr))
	assert.Equal(t, "product not found", apiErr.Message)
}
