package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/foodgram/internal/media"
	"github.com/magabrotheeeer/foodgram/internal/models"
)

func TestStatusOKWithData(t *testing.T) {
	data := map[string]string{"key": "value"}
	resp := StatusOKWithData(data)

	assert.Equal(t, StatusOK, resp.Status)
	assert.Empty(t, resp.Error)
	assert.Equal(t, data, resp.Data)
}

func TestError(t *testing.T) {
	resp := Error("something went wrong")

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "something went wrong", resp.Error)
}

func TestValidationError(t *testing.T) {
	type TestStruct struct {
		Name  string `validate:"required,alphanum"`
		Email string `validate:"email"`
		Color string `validate:"hexcolor"`
		Time  int    `validate:"gte=1"`
	}

	v := validator.New()
	err := v.Struct(TestStruct{Name: "!!!", Email: "nope", Color: "red", Time: 0})
	require.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))

	assert.Equal(t, StatusError, resp.Status)
	assert.Contains(t, resp.Error, "field Name can contain only numbers and letters")
	assert.Contains(t, resp.Error, "field Email must be a valid email")
	assert.Contains(t, resp.Error, "field Color must be a hex color")
	assert.Contains(t, resp.Error, "field Time must be at least 1")
}

func TestValidationErrorRequired(t *testing.T) {
	type TestStruct struct {
		Name string `validate:"required"`
	}

	err := validator.New().Struct(TestStruct{})
	require.Error(t, err)

	resp := ValidationError(err.(validator.ValidationErrors))
	assert.Contains(t, resp.Error, "field Name is a required field")
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: models.ErrSelfSubscription, want: http.StatusBadRequest},
		{err: models.ErrAlreadySubscribed, want: http.StatusBadRequest},
		{err: models.ErrNotSubscribed, want: http.StatusBadRequest},
		{err: fmt.Errorf("op: %w", models.ErrDuplicateIngredient), want: http.StatusBadRequest},
		{err: fmt.Errorf("op: %w", media.ErrInvalidImage), want: http.StatusBadRequest},
		{err: fmt.Errorf("op: %w: 0.004", models.ErrInvalidAmount), want: http.StatusUnprocessableEntity},
		{err: models.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{err: models.ErrInactiveUser, want: http.StatusUnauthorized},
		{err: models.ErrForbidden, want: http.StatusForbidden},
		{err: fmt.Errorf("storage.GetRecipe: %w", models.ErrNotFound), want: http.StatusNotFound},
		{err: fmt.Errorf("%w: tags_slug_key", models.ErrAlreadyExists), want: http.StatusConflict},
		{err: errors.New("connection refused"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFromError(tt.err))
		})
	}
}

func TestFail(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "domain error",
			err:        fmt.Errorf("services.subscription.Subscribe: %w", models.ErrAlreadySubscribed),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"status":"Error","error":"already subscribed"}`,
		},
		{
			name:       "internal error is hidden",
			err:        errors.New("pq: password authentication failed"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"status":"Error","error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)

			Fail(w, r, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
		})
	}
}
