package api

import (
	"log/slog"
	"net/http"
	"strings"

	"promptpilot/backend/internal/auth"
)

// RequireAuth verifies the bearer credential on every request and
// stores the resolved owner id in the request context. Handlers read it
// back with auth.OwnerID; every chat and commit lookup downstream is
// checked against it.
func RequireAuth(verifier auth.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := extractBearerToken(r)
			if tokenString == "" {
				respondWithJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Missing or invalid credentials.", Code: "unauthorized"})
				return
			}
			ownerID, err := verifier.Verify(tokenString)
			if err != nil {
				slog.Debug("Rejected bearer token", "error", err)
				respondWithJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Missing or invalid credentials.", Code: "unauthorized"})
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithOwnerID(r.Context(), ownerID)))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return h[7:]
	}
	return ""
}
