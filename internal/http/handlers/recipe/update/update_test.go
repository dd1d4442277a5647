package update

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/foodgram/internal/http/middlewarectx"
	"github.com/magabrotheeeer/foodgram/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) UpdateRecipe(ctx context.Context, editorID, recipeID int64, input models.RecipeInput) (*models.RecipeDetail, error) {
	args := m.Called(ctx, editorID, recipeID, input)
	res, _ := args.Get(0).(*models.RecipeDetail)
	return res, args.Error(1)
}

func TestUpdateHandler(t *testing.T) {
	upd := models.RecipeUpdate{
		Name:        "Борщ зелёный",
		Text:        "Сварить",
		CookingTime: 60,
		Ingredients: []models.IngredientAmount{{ID: 3, Amount: 100}},
		Tags:        []int64{2},
	}
	body, err := json.Marshal(upd)
	require.NoError(t, err)

	tests := []struct {
		name           string
		id             string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "обновление без изображения",
			id:   "5",
			setupMock: func(m *MockService) {
				m.On("UpdateRecipe", mock.Anything, int64(1), int64(5), upd.Input()).
					Return(&models.RecipeDetail{Recipe: models.Recipe{ID: 5, Name: upd.Name}}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Борщ зелёный"`,
		},
		{
			name: "чужой рецепт",
			id:   "6",
			setupMock: func(m *MockService) {
				m.On("UpdateRecipe", mock.Anything, int64(1), int64(6), upd.Input()).
					Return(nil, models.ErrForbidden).Once()
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `"error":"forbidden"`,
		},
		{
			name:           "некорректный id",
			id:             "x",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "failed to decode id from url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)
			handler := New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)

			req := httptest.NewRequest(http.MethodPatch, "/recipes/"+tt.id, bytes.NewReader(body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			ctx = context.WithValue(ctx, middlewarectx.UserID, int64(1))
			req = req.WithContext(ctx)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
