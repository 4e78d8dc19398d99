package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sshraki/Attendance/internal/domain/employee"
	"github.com/sshraki/Attendance/internal/pkg/jwt"
)

func newProtectedHandler(jwtService jwt.Service, reached *bool) http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*reached = true
		w.WriteHeader(http.StatusOK)
	})
	return jwtauth.Verifier(jwtService.JWTAuth())(AuthRequired(jwtService)(next))
}

func issueToken(t *testing.T, jwtService jwt.Service) string {
	token, _, err := jwtService.GenerateAccessToken("emp-1", "EMP001", "Jane Roe", employee.RoleEmployee)
	require.NoError(t, err)
	return token
}

func TestAuthRequired_ValidToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", "15m")
	token := issueToken(t, jwtService)

	var reached bool
	handler := newProtectedHandler(jwtService, &reached)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}

func TestAuthRequired_RevokedToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", "15m")
	token := issueToken(t, jwtService)
	jwtService.RevokeToken(token)

	var reached bool
	handler := newProtectedHandler(jwtService, &reached)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthRequired_MissingToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", "15m")

	var reached bool
	handler := newProtectedHandler(jwtService, &reached)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthRequired_GarbageToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", "15m")

	var reached bool
	handler := newProtectedHandler(jwtService, &reached)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}
