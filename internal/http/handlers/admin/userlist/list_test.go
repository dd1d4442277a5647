package userlist

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/foodgram/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) ListUsers(ctx context.Context, filter models.UserFilter, page models.Page) ([]*models.User, error) {
	args := m.Called(ctx, filter, page)
	res, _ := args.Get(0).([]*models.User)
	return res, args.Error(1)
}

func TestListHandler(t *testing.T) {
	svc := new(MockService)
	svc.On("ListUsers", mock.Anything,
		models.UserFilter{Email: "ivan@example.com", Username: "ivan"},
		models.Page{Limit: 20, Offset: 0},
	).Return([]*models.User{{ID: 1, Username: "ivan", Email: "ivan@example.com", PasswordHash: "secret-hash"}}, nil).Once()

	h := New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/users?email=ivan@example.com&username=ivan&limit=20", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"ivan"`)
	assert.NotContains(t, w.Body.String(), "secret-hash")
	svc.AssertExpectations(t)
}
