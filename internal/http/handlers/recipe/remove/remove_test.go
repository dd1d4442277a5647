package remove

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/foodgram/internal/http/middlewarectx"
	"github.com/magabrotheeeer/foodgram/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) RemoveRecipe(ctx context.Context, editorID, recipeID int64) error {
	return m.Called(ctx, editorID, recipeID).Error(0)
}

func TestRemoveHandler(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		userID   any
		mockErr  error
		callSvc  bool
		wantCode int
	}{
		{name: "удалён", id: "4", userID: int64(2), callSvc: true, wantCode: http.StatusNoContent},
		{name: "не найден", id: "4", userID: int64(2), callSvc: true, mockErr: models.ErrNotFound, wantCode: http.StatusNotFound},
		{name: "не автор", id: "4", userID: int64(3), callSvc: true, mockErr: models.ErrForbidden, wantCode: http.StatusForbidden},
		{name: "без токена", id: "4", wantCode: http.StatusUnauthorized},
		{name: "плохой id", id: "-1", userID: int64(2), wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			if tt.callSvc {
				svc.On("RemoveRecipe", mock.Anything, tt.userID, int64(4)).Return(tt.mockErr).Once()
			}
			handler := New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)

			req := httptest.NewRequest(http.MethodDelete, "/recipes/"+tt.id, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			if tt.userID != nil {
				ctx = context.WithValue(ctx, middlewarectx.UserID, tt.userID)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req.WithContext(ctx))

			assert.Equal(t, tt.wantCode, w.Code)
			svc.AssertExpectations(t)
		})
	}
}
