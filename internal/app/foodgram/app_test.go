package foodgram

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/foodgram/internal/config"
	"github.com/magabrotheeeer/foodgram/internal/lib/jwt"
	"github.com/magabrotheeeer/foodgram/internal/models"
	authservice "github.com/magabrotheeeer/foodgram/internal/services/auth"
)

type usersStub map[int64]*models.User

func (u usersStub) CreateUser(context.Context, models.User) (int64, error) { return 0, nil }

func (u usersStub) GetUser(_ context.Context, id int64) (*models.User, error) {
	if user, ok := u[id]; ok {
		return user, nil
	}
	return nil, models.ErrNotFound
}

func (u usersStub) GetUserByUsername(context.Context, string) (*models.User, error) {
	return nil, models.ErrNotFound
}

type pingOK struct{}

func (pingOK) PingContext(context.Context) error { return nil }

func newTestRouter(t *testing.T) (http.Handler, *jwt.MakerImpl) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	maker := jwt.NewJWTMaker("test-secret", time.Hour)
	users := usersStub{
		1: {ID: 1, Username: "cook", IsActive: true},
		2: {ID: 2, Username: "admin", IsActive: true, IsStaff: true},
	}

	r := chi.NewRouter()
	RegisterRoutes(r, logger, Services{
		Auth: authservice.New(users, maker, logger),
		DB:   pingOK{},
	}, RouterOptions{
		RateLimit:      config.RateLimit{RPS: 1000, Burst: 1000},
		AuthRateLimit:  config.AuthRateLimit{Requests: 100, Window: time.Minute},
		AllowedOrigins: []string{"*"},
		Registry:       prometheus.NewRegistry(),
	})
	return r, maker
}

func TestRoutes_Access(t *testing.T) {
	router, maker := newTestRouter(t)

	cookToken, err := maker.GenerateToken(1, "cook", false)
	require.NoError(t, err)
	staleStaffClaim, err := maker.GenerateToken(1, "cook", true)
	require.NoError(t, err)

	tests := []struct {
		name     string
		method   string
		path     string
		token    string
		wantCode int
	}{
		{name: "health", method: http.MethodGet, path: "/health", wantCode: http.StatusOK},
		{name: "create recipe without token", method: http.MethodPost, path: "/api/v1/recipes", wantCode: http.StatusUnauthorized},
		{name: "create tag without token", method: http.MethodPost, path: "/api/v1/tags", wantCode: http.StatusUnauthorized},
		{name: "create tag as regular user", method: http.MethodPost, path: "/api/v1/tags", token: cookToken, wantCode: http.StatusForbidden},
		{name: "staff claim in token is not trusted", method: http.MethodGet, path: "/api/v1/admin/users", token: staleStaffClaim, wantCode: http.StatusForbidden},
		{name: "subscriptions without token", method: http.MethodGet, path: "/api/v1/users/subscriptions", wantCode: http.StatusUnauthorized},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader("{}"))
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
