package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, role string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": 1,
		"email":   "ada@example.com",
		"role":    role,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func testRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append(handlers, func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/protected", chain...)
	return r
}

func request(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	r := testRouter(middleware.JWTAuth(testSecret))
	w := request(r, signToken(t, testSecret, "customer", time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	r := testRouter(middleware.JWTAuth(testSecret))
	w := request(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	r := testRouter(middleware.JWTAuth(testSecret))
	w := request(r, signToken(t, testSecret, "customer", -time.Hour))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthRejectsWrongSecret(t *testing.T) {
	r := testRouter(middleware.JWTAuth(testSecret))
	w := request(r, signToken(t, "other-secret", "customer", time.Hour))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleAllowsListedRole(t *testing.T) {
	r := testRouter(middleware.JWTAuth(testSecret), middleware.RequireRole("admin"))
	w := request(r, signToken(t, testSecret, "admin", time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleRejectsOtherRole(t *testing.T) {
	r := testRouter(middleware.JWTAuth(testSecret), middleware.RequireRole("admin"))
	w := request(r, signToken(t, testSecret, "customer", time.Hour))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
