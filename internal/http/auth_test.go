package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-backend-go/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokens() services.TokenService {
	return services.TokenService{
		Secret:     []byte("test-secret"),
		Issuer:     "portfolio",
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	}
}

func protectedProbe(t *testing.T, tokens services.TokenService, authorize func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	handler := WithAuth(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{
			"adminId": CurrentAdminID(r),
			"email":   CurrentEmail(r),
		})
	}))
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authorize != nil {
		authorize(req)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestWithAuthRejectsMissingHeader(t *testing.T) {
	rec := protectedProbe(t, testTokens(), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWithAuthRejectsMalformedHeader(t *testing.T) {
	rec := protectedProbe(t, testTokens(), func(r *http.Request) {
		r.Header.Set("Authorization", "Token abc")
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWithAuthRejectsGarbageToken(t *testing.T) {
	rec := protectedProbe(t, testTokens(), func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer not-a-jwt")
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWithAuthRejectsRefreshToken(t *testing.T) {
	tokens := testTokens()
	refresh, err := tokens.CreateRefreshToken("admin-1")
	require.NoError(t, err)

	rec := protectedProbe(t, tokens, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+refresh)
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWithAuthAcceptsAccessToken(t *testing.T) {
	tokens := testTokens()
	access, _, err := tokens.CreateAccessToken("admin-1", "admin@example.com")
	require.NoError(t, err)

	rec := protectedProbe(t, tokens, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+access)
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin-1")
	assert.Contains(t, rec.Body.String(), "admin@example.com")
}
