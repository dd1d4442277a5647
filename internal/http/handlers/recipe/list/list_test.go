package list

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/foodgram/internal/http/middlewarectx"
	"github.com/magabrotheeeer/foodgram/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) ListRecipes(ctx context.Context, viewerID int64, filter models.RecipeFilter, page models.Page) ([]*models.RecipeDetail, error) {
	args := m.Called(ctx, viewerID, filter, page)
	res, _ := args.Get(0).([]*models.RecipeDetail)
	return res, args.Error(1)
}

func TestListHandler(t *testing.T) {
	author := int64(7)

	tests := []struct {
		name       string
		url        string
		viewer     any
		wantViewer int64
		wantFilter models.RecipeFilter
		wantPage   models.Page
		callSvc    bool
		wantCode   int
	}{
		{
			name:       "anonymous default page",
			url:        "/recipes",
			wantFilter: models.RecipeFilter{},
			wantPage:   models.Page{Limit: models.DefaultLimit},
			callSvc:    true,
			wantCode:   http.StatusOK,
		},
		{
			name:       "author and tags",
			url:        "/recipes?author=7&tags=breakfast&tags=lunch&limit=5&offset=5",
			viewer:     int64(3),
			wantViewer: 3,
			wantFilter: models.RecipeFilter{AuthorID: &author, TagSlugs: []string{"breakfast", "lunch"}},
			wantPage:   models.Page{Limit: 5, Offset: 5},
			callSvc:    true,
			wantCode:   http.StatusOK,
		},
		{
			name:     "bad author",
			url:      "/recipes?author=abc",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			if tt.callSvc {
				svc.On("ListRecipes", mock.Anything, tt.wantViewer, tt.wantFilter, tt.wantPage).
					Return([]*models.RecipeDetail{{Recipe: models.Recipe{ID: 1}}}, nil).Once()
			}
			handler := New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.viewer != nil {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.UserID, tt.viewer))
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			svc.AssertExpectations(t)
		})
	}
}
