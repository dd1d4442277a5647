package tagread

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/foodgram/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) GetTag(ctx context.Context, id int64) (*models.Tag, error) {
	args := m.Called(ctx, id)
	tag, _ := args.Get(0).(*models.Tag)
	return tag, args.Error(1)
}

func TestReadHandler(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "тег найден",
			id:   "3",
			setupMock: func(m *MockService) {
				m.On("GetTag", mock.Anything, int64(3)).
					Return(&models.Tag{ID: 3, Name: "Обед", Color: "#49B64E", Slug: "lunch"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"id":3,"name":"Обед","color":"#49B64E","slug":"lunch"}`,
		},
		{
			name:           "некорректный id",
			id:             "abc",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"failed to decode id from url"`,
		},
		{
			name: "тега нет",
			id:   "9",
			setupMock: func(m *MockService) {
				m.On("GetTag", mock.Anything, int64(9)).Return(nil, models.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"not found"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)
			handler := New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)

			req := httptest.NewRequest(http.MethodGet, "/tags/"+tt.id, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
