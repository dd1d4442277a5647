package tagcreate

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/foodgram/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) CreateTag(ctx context.Context, req models.TagRequest) (*models.Tag, error) {
	args := m.Called(ctx, req)
	tag, _ := args.Get(0).(*models.Tag)
	return tag, args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	valid := models.TagRequest{Name: "Завтрак", Color: "#E26C2D", Slug: "breakfast"}

	tests := []struct {
		name       string
		body       string
		setupMock  func(*MockService)
		wantStatus int
		wantError  string
	}{
		{
			name: "создан",
			body: `{"name":"Завтрак","color":"#E26C2D","slug":"breakfast"}`,
			setupMock: func(m *MockService) {
				m.On("CreateTag", mock.Anything, valid).
					Return(&models.Tag{ID: 5, Name: "Завтрак", Color: "#E26C2D", Slug: "breakfast"}, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "id из запроса игнорируется",
			body: `{"id":100,"name":"Завтрак","color":"#E26C2D","slug":"breakfast"}`,
			setupMock: func(m *MockService) {
				m.On("CreateTag", mock.Anything, valid).
					Return(&models.Tag{ID: 5, Name: "Завтрак", Color: "#E26C2D", Slug: "breakfast"}, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "некорректный слаг",
			body:       `{"name":"Завтрак","color":"#E26C2D","slug":"за втрак"}`,
			setupMock:  func(_ *MockService) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "field Slug can contain only latin letters, numbers, - and _",
		},
		{
			name: "слаг занят",
			body: `{"name":"Завтрак","color":"#E26C2D","slug":"breakfast"}`,
			setupMock: func(m *MockService) {
				m.On("CreateTag", mock.Anything, valid).Return(nil, models.ErrAlreadyExists).Once()
			},
			wantStatus: http.StatusConflict,
			wantError:  "already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)
			h := New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)

			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/tags", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.wantStatus, w.Code)
			var got struct {
				Status string             `json:"status"`
				Error  string             `json:"error"`
				Data   models.TagResponse `json:"data"`
			}
			require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, got.Error)
			} else {
				assert.Equal(t, int64(5), got.Data.ID)
				assert.Equal(t, "breakfast", got.Data.Slug)
			}
			svc.AssertExpectations(t)
		})
	}
}
