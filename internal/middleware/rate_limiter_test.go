package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func okStatus(c *gin.Context) { c.Status(http.StatusOK) }

func hit(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", middleware.RateLimiter(2, time.Minute), okStatus)

	assert.Equal(t, http.StatusOK, hit(r, http.MethodGet, "/ping").Code)
	assert.Equal(t, http.StatusOK, hit(r, http.MethodGet, "/ping").Code)

	w := hit(r, http.MethodGet, "/ping")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRateLimiterInstancesAreIndependent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/a", middleware.RateLimiter(1, time.Minute), okStatus)
	r.GET("/b", middleware.RateLimiter(1, time.Minute), okStatus)

	assert.Equal(t, http.StatusOK, hit(r, http.MethodGet, "/a").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(r, http.MethodGet, "/a").Code)

	// The second route keeps its own budget
	assert.Equal(t, http.StatusOK, hit(r, http.MethodGet, "/b").Code)
}

func TestLoginRateLimiterLimitsAttempts(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", middleware.LoginRateLimiter(), okStatus)

	for i := 0; i < 20; i++ {
		assert.Equal(t, http.StatusOK, hit(r, http.MethodPost, "/login").Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(r, http.MethodPost, "/login").Code)
}
