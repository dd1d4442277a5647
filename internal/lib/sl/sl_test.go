package sl_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/foodgram/internal/lib/sl"
)

func TestErr_ReturnsCorrectAttr(t *testing.T) {
	attr := sl.Err(errors.New("something went wrong"))

	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, slog.StringValue("something went wrong"), attr.Value)
}

func TestErr_NilError(t *testing.T) {
	var attr slog.Attr
	assert.NotPanics(t, func() {
		attr = sl.Err(nil)
	})
	assert.Equal(t, "error", attr.Key)
	assert.Empty(t, attr.Value.String())
}

func TestOp(t *testing.T) {
	attr := sl.Op("handlers.recipe.create.New")
	assert.Equal(t, "op", attr.Key)
	assert.Equal(t, "handlers.recipe.create.New", attr.Value.String())
}
