package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestLoggerPassesThroughStatusAndBody(t *testing.T) {
	handler := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("missing"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/public/hero", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "missing", rec.Body.String())
}

func TestRequestLoggerDefaultsImplicitWritesToOK(t *testing.T) {
	inner := &accessRecorder{ResponseWriter: httptest.NewRecorder()}
	_, err := inner.Write([]byte("ok"))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, inner.status)
	assert.Equal(t, 2, inner.size)
}
