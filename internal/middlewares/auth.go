package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hyunjk/bookreview/internal/jwt"
	"github.com/hyunjk/bookreview/internal/logger"
)

// Tokener defines the minimal token interface needed by the gate.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// gateError is the JSON body written on a rejected request.
type gateError struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeGateError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(gateError{OK: false, Error: code, Message: message})
}

// AuthMiddleware verifies the session cookie and stores the decoded claims
// in the request context. Requests with no cookie, or whose token fails
// verification for any reason, are rejected with 401.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				writeGateError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("rejected invalid session token", "err", err)
				writeGateError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
				return
			}

			next.ServeHTTP(w, r.WithContext(SetClaimsToContext(ctx, claims)))
		})
	}
}

// AdminOnly rejects authenticated non-admin requests with 403. It trusts
// the isAdmin claim embedded at token issuance: a promotion or demotion
// takes effect when the user next logs in, bounded by the token lifetime.
func AdminOnly() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := GetClaimsFromContext(r.Context())
			if claims == nil {
				writeGateError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
				return
			}
			if !claims.IsAdmin {
				logger.Log.Infow("rejected non-admin request", "username", claims.Username, "uri", r.RequestURI)
				writeGateError(w, http.StatusForbidden, "forbidden", "admin access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// claimsContextKey is an unexported type for the claims context key.
type claimsContextKey struct{}

var claimsKey = claimsContextKey{}

// SetClaimsToContext stores verified session claims in the context.
func SetClaimsToContext(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaimsFromContext retrieves the verified session claims, or nil when
// the request did not pass AuthMiddleware.
func GetClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey).(*jwt.Claims)
	return claims
}
