package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/internal/dto"
	"storefront/internal/handler"
	"storefront/internal/middleware"
	"storefront/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	usersSecret = "users-test-secret"
	adminRoleID = uint(1)
	custRoleID  = uint(2)
)

// fakeUserService is a map-backed UserService sufficient for exercising the
// handler-level access rules. Update applies the same partial-merge contract
// as the real service.
type fakeUserService struct {
	users map[uint]*dto.UserResponse
}

var _ service.UserService = (*fakeUserService)(nil)

func newFakeUserService(users ...dto.UserResponse) *fakeUserService {
	f := &fakeUserService{users: make(map[uint]*dto.UserResponse)}
	for i := range users {
		u := users[i]
		f.users[u.ID] = &u
	}
	return f
}

func (f *fakeUserService) GetAll(ctx context.Context) ([]dto.UserResponse, error) {
	result := make([]dto.UserResponse, 0, len(f.users))
	for _, u := range f.users {
		result = append(result, *u)
	}
	return result, nil
}

func (f *fakeUserService) GetByID(ctx context.Context, id uint) (*dto.UserResponse, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errNotFoundUser
	}
	resp := *u
	return &resp, nil
}

func (f *fakeUserService) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	u := &dto.UserResponse{ID: uint(len(f.users) + 1), Name: req.Name, Email: req.Email, RoleID: req.RoleID}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserService) Update(ctx context.Context, id uint, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errNotFoundUser
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Locked != nil {
		u.Locked = *req.Locked
	}
	if req.RoleID != nil {
		u.RoleID = *req.RoleID
	}
	resp := *u
	return &resp, nil
}

func (f *fakeUserService) Delete(ctx context.Context, id uint) (bool, error) {
	_, ok := f.users[id]
	delete(f.users, id)
	return ok, nil
}

var errNotFoundUser = assert.AnError

// usersRouter mirrors the route wiring: JWTAuth on the group, no role gate
// on get/update.
func usersRouter(svc *fakeUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewUsersHandler(svc)
	r := gin.New()
	v1 := r.Group("/v1", middleware.JWTAuth(usersSecret))
	v1.GET("/users/:id", h.Get)
	v1.PUT("/users/:id", h.Update)
	return r
}

func userToken(t *testing.T, userID uint, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   "someone@example.com",
		"role":    role,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(usersSecret))
	require.NoError(t, err)
	return token
}

func doJSON(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seededUsers() *fakeUserService {
	return newFakeUserService(
		dto.UserResponse{ID: 1, Name: "Root", Email: "root@example.com", RoleID: adminRoleID},
		dto.UserResponse{ID: 2, Name: "Ada", Email: "ada@example.com", RoleID: custRoleID},
		dto.UserResponse{ID: 3, Name: "Grace", Email: "grace@example.com", RoleID: custRoleID},
	)
}

func TestUserCannotChangeOwnRole(t *testing.T) {
	svc := seededUsers()
	r := usersRouter(svc)

	w := doJSON(r, http.MethodPut, "/v1/users/2", userToken(t, 2, "customer"), `{"role_id":1}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, custRoleID, svc.users[2].RoleID)
}

func TestUserCannotLockAccounts(t *testing.T) {
	svc := seededUsers()
	r := usersRouter(svc)

	w := doJSON(r, http.MethodPut, "/v1/users/2", userToken(t, 2, "customer"), `{"locked":true}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, svc.users[2].Locked)
}

func TestUserCannotUpdateAnotherAccount(t *testing.T) {
	svc := seededUsers()
	r := usersRouter(svc)

	w := doJSON(r, http.MethodPut, "/v1/users/3", userToken(t, 2, "customer"), `{"name":"Hijacked"}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Grace", svc.users[3].Name)
}

func TestUserCanUpdateOwnProfile(t *testing.T) {
	svc := seededUsers()
	r := usersRouter(svc)

	w := doJSON(r, http.MethodPut, "/v1/users/2", userToken(t, 2, "customer"), `{"name":"Ada L."}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ada L.", svc.users[2].Name)
}

func TestAdminCanChangeRoleAndLock(t *testing.T) {
	svc := seededUsers()
	r := usersRouter(svc)

	w := doJSON(r, http.MethodPut, "/v1/users/3", userToken(t, 1, "admin"), `{"role_id":1,"locked":true}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, adminRoleID, svc.users[3].RoleID)
	assert.True(t, svc.users[3].Locked)
}

func TestUserCannotReadAnotherAccount(t *testing.T) {
	r := usersRouter(seededUsers())

	w := doJSON(r, http.MethodGet, "/v1/users/3", userToken(t, 2, "customer"), "")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUserCanReadOwnAccount(t *testing.T) {
	r := usersRouter(seededUsers())

	w := doJSON(r, http.MethodGet, "/v1/users/2", userToken(t, 2, "customer"), "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ada@example.com")
}

func TestAdminCanReadAnyAccount(t *testing.T) {
	r := usersRouter(seededUsers())

	w := doJSON(r, http.MethodGet, "/v1/users/2", userToken(t, 1, "admin"), "")

	assert.Equal(t, http.StatusOK, w.Code)
}
