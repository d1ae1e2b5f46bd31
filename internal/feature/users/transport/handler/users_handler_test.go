package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"wtwr_backend/internal/feature/auth/domain"
	"wtwr_backend/internal/feature/auth/domain/entity"
	"wtwr_backend/internal/feature/users/usecase"
	"wtwr_backend/internal/platform/http/middleware"
	jwtmw "wtwr_backend/internal/platform/jwt"
)

const (
	testSecret = "users-handler-secret"
	meID       = "5d2f1c9e8b3a4f6d7e8c9b0a"
	otherID    = "65a1b2c3d4e5f60718293a4b"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type mockUsersUsecase struct {
	ListUsersFunc     func(ctx context.Context) ([]entity.User, error)
	GetUserFunc       func(ctx context.Context, id string) (*entity.User, error)
	UpdateProfileFunc func(ctx context.Context, userID string, in usecase.ProfileInput) (*entity.User, error)
}

func (m *mockUsersUsecase) ListUsers(ctx context.Context) ([]entity.User, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx)
	}
	return nil, nil
}

func (m *mockUsersUsecase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUsersUsecase) UpdateProfile(ctx context.Context, userID string, in usecase.ProfileInput) (*entity.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, userID, in)
	}
	return nil, domain.ErrUserNotFound
}

func setupRouter(uc UsersUsecase) *gin.Engine {
	h := NewUsersHandler(uc)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	users := r.Group("/users", jwtmw.AuthRequired(jwtmw.NewVerifier(testSecret)))
	users.GET("", h.List)
	users.GET("/me", h.Me)
	users.PATCH("/me", h.UpdateMe)
	users.GET("/:id", middleware.ValidateObjectID("id"), h.Get)
	return r
}

func bearer(t *testing.T, userID string) string {
	t.Helper()
	token, err := jwtmw.NewGenerator(testSecret, time.Hour).GenerateToken(userID)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return "Bearer " + token
}

func do(r *gin.Engine, method, path, auth string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUsersHandler_RequiresAuth(t *testing.T) {
	r := setupRouter(&mockUsersUsecase{})

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/users"},
		{http.MethodGet, "/users/me"},
		{http.MethodPatch, "/users/me"},
		{http.MethodGet, "/users/" + meID},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := do(r, tc.method, tc.path, "", nil)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"message":"Authorization required"}`, w.Body.String())
		})
	}
}

func TestUsersHandler_List(t *testing.T) {
	uc := &mockUsersUsecase{
		ListUsersFunc: func(ctx context.Context) ([]entity.User, error) {
			return []entity.User{
				{ID: meID, Email: "me@example.com", Name: "Me", Avatar: "https://example.com/me.png", Password: "hash"},
			}, nil
		},
	}

	w := do(setupRouter(uc), http.MethodGet, "/users", bearer(t, meID), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":"`+meID+`","email":"me@example.com","name":"Me","avatar":"https://example.com/me.png"}]`, w.Body.String())
}

func TestUsersHandler_List_Error(t *testing.T) {
	uc := &mockUsersUsecase{
		ListUsersFunc: func(ctx context.Context) ([]entity.User, error) { return nil, errors.New("db down") },
	}

	w := do(setupRouter(uc), http.MethodGet, "/users", bearer(t, meID), nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")
}

func TestUsersHandler_Get(t *testing.T) {
	uc := &mockUsersUsecase{
		GetUserFunc: func(ctx context.Context, id string) (*entity.User, error) {
			if id == otherID {
				return &entity.User{ID: otherID, Email: "o@example.com", Name: "Other"}, nil
			}
			return nil, domain.ErrUserNotFound
		},
	}
	r := setupRouter(uc)

	tests := []struct {
		name           string
		id             string
		expectedStatus int
	}{
		{"found", otherID, http.StatusOK},
		{"well-formed but missing", "aaaaaaaaaaaaaaaaaaaaaaaa", http.StatusNotFound},
		{"malformed id", "abc", http.StatusBadRequest},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodGet, "/users/"+tt.id, bearer(t, meID), nil)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestUsersHandler_Me(t *testing.T) {
	var requested string
	uc := &mockUsersUsecase{
		GetUserFunc: func(ctx context.Context, id string) (*entity.User, error) {
			requested = id
			return &entity.User{ID: id, Email: "me@example.com", Name: "Me", Avatar: "https://example.com/me.png", Password: "hash"}, nil
		},
	}

	w := do(setupRouter(uc), http.MethodGet, "/users/me", bearer(t, meID), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, meID, requested, "must read the authenticated account")
	assert.JSONEq(t, `{"user":{"id":"`+meID+`","email":"me@example.com","name":"Me","avatar":"https://example.com/me.png"}}`, w.Body.String())
}

func TestUsersHandler_Me_Deleted(t *testing.T) {
	w := do(setupRouter(&mockUsersUsecase{}), http.MethodGet, "/users/me", bearer(t, meID), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUsersHandler_UpdateMe(t *testing.T) {
	tests := []struct {
		name           string
		body           gin.H
		updateFunc     func(ctx context.Context, userID string, in usecase.ProfileInput) (*entity.User, error)
		expectedStatus int
	}{
		{
			name: "success",
			body: gin.H{"name": "New Name", "avatar": "https://example.com/n.png", "email": "hijack@example.com"},
			updateFunc: func(ctx context.Context, userID string, in usecase.ProfileInput) (*entity.User, error) {
				assert.Equal(t, meID, userID)
				assert.Equal(t, usecase.ProfileInput{Name: "New Name", Avatar: "https://example.com/n.png"}, in)
				return &entity.User{ID: userID, Email: "me@example.com", Name: in.Name, Avatar: in.Avatar}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid avatar",
			body:           gin.H{"name": "New Name", "avatar": "not a url"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "name too short",
			body:           gin.H{"name": "N", "avatar": "https://example.com/n.png"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "account gone",
			body: gin.H{"name": "New Name", "avatar": "https://example.com/n.png"},
			updateFunc: func(ctx context.Context, userID string, in usecase.ProfileInput) (*entity.User, error) {
				return nil, domain.ErrUserNotFound
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUsersUsecase{UpdateProfileFunc: tt.updateFunc}

			w := do(setupRouter(uc), http.MethodPatch, "/users/me", bearer(t, meID), tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.JSONEq(t, `{"user":{"id":"`+meID+`","email":"me@example.com","name":"New Name","avatar":"https://example.com/n.png"}}`, w.Body.String())
			}
		})
	}
}
