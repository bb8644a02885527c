package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

var ErrUnauthorized = errors.New("unauthorized")

// Principal identifies who was authenticated. The static-token scheme only
// ever yields the shared admin identity, but handlers stay agnostic so
// per-user credentials can slot in later.
type Principal struct {
	Name string
}

type Authenticator interface {
	Authenticate(r *http.Request) (*Principal, error)
}

// StaticTokenAuthenticator accepts a single shared bearer token. Minimal by
// intent: the dashboard is internal and has one operator.
type StaticTokenAuthenticator struct {
	Token string
}

func NewStaticTokenAuthenticator(token string) *StaticTokenAuthenticator {
	return &StaticTokenAuthenticator{Token: token}
}

func (a *StaticTokenAuthenticator) Authenticate(r *http.Request) (*Principal, error) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || a.Token == "" || token != a.Token {
		return nil, ErrUnauthorized
	}
	return &Principal{Name: "admin"}, nil
}

// RequireAuth guards the staff endpoints.
func RequireAuth(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := auth.Authenticate(r); err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
