package api_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"promptpilot/backend/internal/api"
	"promptpilot/backend/internal/auth"
)

type stubVerifier struct {
	ownerID string
	err     error
}

func (s stubVerifier) Verify(string) (string, error) {
	return s.ownerID, s.err
}

func TestRequireAuth(t *testing.T) {
	var seenOwner string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenOwner = auth.OwnerID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Valid bearer token passes through with owner in context", func(t *testing.T) {
		seenOwner = ""
		mw := api.RequireAuth(stubVerifier{ownerID: "user1"})

		req := httptest.NewRequest(http.MethodGet, "/v1/chat/list", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		rr := httptest.NewRecorder()
		mw(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "user1", seenOwner)
	})

	t.Run("Missing header is rejected", func(t *testing.T) {
		seenOwner = ""
		mw := api.RequireAuth(stubVerifier{ownerID: "user1"})

		req := httptest.NewRequest(http.MethodGet, "/v1/chat/list", nil)
		rr := httptest.NewRecorder()
		mw(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "unauthorized", decodeError(t, rr).Code)
		assert.Empty(t, seenOwner)
	})

	t.Run("Non-bearer scheme is rejected", func(t *testing.T) {
		mw := api.RequireAuth(stubVerifier{ownerID: "user1"})

		req := httptest.NewRequest(http.MethodGet, "/v1/chat/list", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rr := httptest.NewRecorder()
		mw(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Verifier rejection yields 401", func(t *testing.T) {
		mw := api.RequireAuth(stubVerifier{err: errors.New("bad signature")})

		req := httptest.NewRequest(http.MethodGet, "/v1/chat/list", nil)
		req.Header.Set("Authorization", "Bearer forged")
		rr := httptest.NewRecorder()
		mw(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
