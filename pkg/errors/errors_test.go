package errors_test

import (
	"errors"
	"testing"

	pkgerrors "github.com/Lawaia-Dev/itemsync/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestAPIError(t *testing.T) {
	t.Run("with status code", func(t *testing.T) {
		err := &pkgerrors.APIError{
			Source:     "metaforge",
			StatusCode: 503,
			Message:    "service unavailable",
			Endpoint:   "https://metaforge.app/api/arc-raiders/items",
		}
		assert.Contains(t, err.Error(), "metaforge")
		assert.Contains(t, err.Error(), "503")
		assert.Contains(t, err.Error(), "service unavailable")
		assert.True(t, errors.Is(err, pkgerrors.ErrSourceUnavailable))
	})

	t.Run("with wrapped error", func(t *testing.T) {
		baseErr := errors.New("connection refused")
		err := &pkgerrors.APIError{
			Source:  "metaforge",
			Message: "request failed",
			Err:     baseErr,
		}
		assert.Contains(t, err.Error(), "request failed")
		assert.Equal(t, baseErr, err.Unwrap())
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewAPIError("metaforge", 500, "internal server error")
		assert.Contains(t, err.Error(), "500")
		assert.True(t, pkgerrors.IsSourceUnavailable(err))
	})
}

func TestShapeError(t *testing.T) {
	err := &pkgerrors.ShapeError{Source: "raidtheory", Got: "string"}
	assert.Contains(t, err.Error(), "raidtheory")
	assert.Contains(t, err.Error(), "string")
	assert.True(t, errors.Is(err, pkgerrors.ErrBadShape))
	assert.True(t, pkgerrors.IsBadShape(err))
}

func TestParseError(t *testing.T) {
	t.Run("with file", func(t *testing.T) {
		err := pkgerrors.NewParseError("json", "items.json", "unexpected end of input", nil)
		assert.Contains(t, err.Error(), "items.json")
		assert.Contains(t, err.Error(), "unexpected end of input")
	})

	t.Run("without file", func(t *testing.T) {
		err := &pkgerrors.ParseError{Format: "json", Message: "invalid character"}
		assert.Equal(t, "json parse error: invalid character", err.Error())
	})

	t.Run("wrap helper", func(t *testing.T) {
		base := errors.New("boom")
		err := pkgerrors.WrapParse("json", "items.json", base)
		assert.ErrorIs(t, err, base)
		assert.Nil(t, pkgerrors.WrapParse("json", "items.json", nil))
	})
}

func TestIOError(t *testing.T) {
	base := errors.New("permission denied")
	err := pkgerrors.WrapIO("write", "data/items.json", base)
	assert.Contains(t, err.Error(), "write")
	assert.Contains(t, err.Error(), "data/items.json")
	assert.ErrorIs(t, err, base)
	assert.Nil(t, pkgerrors.WrapIO("write", "data/items.json", nil))
}

func TestResourceError(t *testing.T) {
	base := errors.New("boom")
	err := pkgerrors.WrapResource("fetch", "items", "metaforge", base)
	assert.Contains(t, err.Error(), "fetch")
	assert.Contains(t, err.Error(), "metaforge")
	assert.ErrorIs(t, err, base)
}

func TestConfigError(t *testing.T) {
	err := pkgerrors.NewConfigError("sources", "output path cannot be empty", nil)
	assert.Contains(t, err.Error(), "sources")
	assert.Contains(t, err.Error(), "output path cannot be empty")
}
