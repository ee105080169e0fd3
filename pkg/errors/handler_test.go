package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestErrorHandler(t *testing.T) {
	t.Run("validation errors expose their message", func(t *testing.T) {
		h := NewErrorHandler(zap.NewNop())
		rec := httptest.NewRecorder()

		h.Handle(rec, httptest.NewRequest(http.MethodPost, "/", nil), NewValidationError("Invalid email format"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, "Invalid email format", decodeError(t, rec))
	})

	t.Run("server errors hide their cause but log it", func(t *testing.T) {
		core, logs := observer.New(zap.ErrorLevel)
		h := NewErrorHandler(zap.New(core))
		rec := httptest.NewRecorder()

		cause := errors.New("NEWSLETTER_API_KEY is not set")
		h.Handle(rec, httptest.NewRequest(http.MethodPost, "/", nil), NewConfigurationError("missing credential").WithCause(cause))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, GenericMessage, decodeError(t, rec))
		assert.NotContains(t, rec.Body.String(), "NEWSLETTER_API_KEY")
		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "missing credential", logs.All()[0].Message)
	})

	t.Run("plain errors become generic internal errors", func(t *testing.T) {
		h := NewErrorHandler(zap.NewNop())
		rec := httptest.NewRecorder()

		h.Handle(rec, httptest.NewRequest(http.MethodPost, "/", nil), errors.New("dial tcp: refused"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, GenericMessage, decodeError(t, rec))
	})

	t.Run("middleware recovers from panics", func(t *testing.T) {
		h := NewErrorHandler(zap.NewNop())
		rec := httptest.NewRecorder()

		h.Middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("boom")
		})).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, GenericMessage, decodeError(t, rec))
	})
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))

	wrapped := Wrap(errors.New("boom"), "forwarding")
	assert.True(t, IsType(wrapped, ErrorTypeInternal))

	validation := Wrap(NewValidationError("bad"), "decode")
	assert.True(t, IsValidation(validation))
	assert.Equal(t, "decode: bad", GetAppError(validation).Message)
}
