package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func postContact(t *testing.T, server *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/public/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.SubmitContact(rec, req)
	return rec
}

func TestSubmitContactRejectsInvalidJSON(t *testing.T) {
	rec := postContact(t, &Server{}, "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitContactRequiresNameAndMessage(t *testing.T) {
	rec := postContact(t, &Server{}, `{"name":"","email":"a@b.c","message":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Name and message are required")
}

func TestSubmitContactRequiresValidEmail(t *testing.T) {
	rec := postContact(t, &Server{}, `{"name":"Ada","email":"not-an-email","message":"hi"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "valid email")
}

func TestTrimStringCapsLength(t *testing.T) {
	long := strings.Repeat("x", 300)
	assert.Len(t, trimString(long, 255), 255)
	assert.Equal(t, "abc", trimString("  abc  ", 255))
	assert.Equal(t, "", trimString("   ", 255))
}

func TestTrimStringKeepsRunesIntact(t *testing.T) {
	// "é" is two bytes; a cap of 3 falls inside the second rune
	assert.Equal(t, "é", trimString("ééé", 3))
	assert.Equal(t, "éé", trimString("ééé", 4))

	capped := trimString(strings.Repeat("日", 100), 255)
	assert.True(t, utf8.ValidString(capped))
	assert.LessOrEqual(t, len(capped), 255)
}

func TestChangePasswordConfirmationCheckedFirst(t *testing.T) {
	server := &Server{Tokens: testTokens()}
	req := httptest.NewRequest(http.MethodPut, "/api/auth/password",
		strings.NewReader(`{"currentPassword":"old","newPassword":"new","confirmPassword":"different"}`))
	rec := httptest.NewRecorder()
	server.ChangePassword(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "confirmation does not match")
}
