// Package middleware consumes the identity resolved by the external
// authorizer. No token validation happens here; the gateway in front of the
// server has already verified the caller and forwards the result as headers.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// Cognito groups recognized by the authorizer
const (
	GroupPlayers = "Players"
	GroupAdmins  = "Admins"
)

type contextKey string

const identityContextKey contextKey = "identity"

// Identity is the already-authenticated caller
type Identity struct {
	PlayerID string
	Email    string
	Groups   []string
}

// IsMember reports whether the identity carries the given group
func (id Identity) IsMember(group string) bool {
	for _, g := range id.Groups {
		if g == group {
			return true
		}
	}
	return false
}

// IdentityFromContext returns the identity stored by RequireIdentity
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityContextKey).(Identity)
	return id, ok
}

// RequireIdentity extracts the resolved identity headers into the request
// context, rejecting requests that arrive without one
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := Identity{
			PlayerID: r.Header.Get("X-Player-Id"),
			Email:    r.Header.Get("X-Player-Email"),
		}
		if groups := r.Header.Get("X-Player-Groups"); groups != "" {
			for _, group := range strings.Split(groups, ",") {
				identity.Groups = append(identity.Groups, strings.TrimSpace(group))
			}
		}

		if identity.PlayerID == "" {
			writeForbidden(w, http.StatusUnauthorized, "Missing caller identity")
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireGroup rejects callers that are not members of the given group
func RequireGroup(group string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok || !identity.IsMember(group) {
				writeForbidden(w, http.StatusForbidden, "Caller is not allowed to perform this operation")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeForbidden(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":    message,
		"statusCode": status,
	})
}
