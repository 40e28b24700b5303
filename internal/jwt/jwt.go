package jwt

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTTL is the fixed lifetime of an issued session token. There is no
// refresh mechanism; re-authentication is the only way to extend a session.
const TokenTTL = 7 * 24 * time.Hour

// DefaultCookieName is used when no cookie name is configured.
const DefaultCookieName = "auth_token"

var (
	// ErrMissingSecret is returned when signing is attempted without a
	// configured secret. This is a server misconfiguration, never a
	// client error.
	ErrMissingSecret = errors.New("jwt signing secret is not configured")

	// ErrInvalidToken covers every verification failure: malformed token,
	// bad signature, expired token, missing secret.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrNoToken is returned when the request carries no session cookie.
	ErrNoToken = errors.New("no session cookie present")
)

// Claims is the claim set embedded in a session token.
type Claims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim as a UUID.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// JWT signs and verifies session tokens and owns the cookie policy that
// carries them between client and server.
type JWT struct {
	SecretKey  string // Secret key for HMAC signing
	CookieName string // Name of the session cookie
}

// New creates a new JWT instance. An empty cookieName falls back to
// DefaultCookieName. An empty secret is allowed here and rejected at
// signing and verification time, so callers get a tagged error instead of
// a weakly signed token.
func New(secretKey, cookieName string) *JWT {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return &JWT{
		SecretKey:  secretKey,
		CookieName: cookieName,
	}
}

// Generate signs a token for the given identity with the fixed TTL.
func (j *JWT) Generate(ctx context.Context, userID uuid.UUID, username string, isAdmin bool) (string, error) {
	if j.SecretKey == "" {
		return "", ErrMissingSecret
	}

	now := time.Now()
	claims := Claims{
		Username: username,
		IsAdmin:  isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetClaims parses and verifies the token string and returns its claims.
// Every failure is reported as ErrInvalidToken; nothing propagates past
// this boundary.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	if j.SecretKey == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Validate checks the token string without returning its claims.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetTokenFromRequest extracts the raw token from the session cookie.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	cookie, err := r.Cookie(j.CookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrNoToken
	}
	return cookie.Value, nil
}

// NewCookie builds the session cookie carrying the token. The cookie is
// httpOnly and secure so client-side script can never read the raw token.
func (j *JWT) NewCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     j.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(TokenTTL / time.Second),
	}
}

// ClearCookie builds the cookie that removes the session on logout.
// MaxAge<0 emits Max-Age=0, expiring the cookie immediately.
func (j *JWT) ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     j.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	}
}
