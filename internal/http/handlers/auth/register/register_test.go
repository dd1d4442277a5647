package register

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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/foodgram/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func TestRegisterHandler(t *testing.T) {
	valid := models.RegisterRequest{
		Email:     "ivan@example.com",
		Username:  "ivan",
		FirstName: "Иван",
		LastName:  "Петров",
		Password:  "secret123",
	}

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешная регистрация",
			body: mustJSON(t, valid),
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, valid).Return(&models.User{
					ID: 1, Username: "ivan", Email: "ivan@example.com", PasswordHash: "hash",
				}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"username":"ivan"`,
		},
		{
			name:           "некорректный email",
			body:           `{"email":"nope","username":"ivan","first_name":"a","last_name":"b","password":"secret123"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   "field Email must be a valid email",
		},
		{
			name: "username занят",
			body: mustJSON(t, valid),
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, valid).Return(nil, models.ErrAlreadyExists).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"error":"already exists"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)
			handler := New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)

			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())
			assert.NotContains(t, w.Body.String(), "hash")
			svc.AssertExpectations(t)
		})
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
