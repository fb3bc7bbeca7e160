package devserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// SessionCookie is the name of the cookie carrying the signed session token.
const SessionCookie = "dietech_session"

type sessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// sessions signs and verifies the session cookies issued by the auth
// endpoints.
type sessions struct {
	secret []byte
	ttl    time.Duration
}

func newSessions(secret string, ttl time.Duration) *sessions {
	return &sessions{secret: []byte(secret), ttl: ttl}
}

// issue returns a cookie carrying a freshly signed session token.
func (s *sessions) issue(accountID int64, username string) (*http.Cookie, error) {
	now := time.Now()
	claims := sessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", accountID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  now.Add(s.ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// expired returns a cookie that clears the session on the client.
func (s *sessions) expired() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// verify parses and validates a session token.
func (s *sessions) verify(token string) (*sessionClaims, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("invalid session token")
	}
	return &claims, nil
}

// Require rejects requests without a valid session cookie with a 401
// problem body.
func (s *sessions) Require() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil {
				return writeProblem(c, http.StatusUnauthorized, "Unauthorized", "missing session cookie")
			}
			claims, err := s.verify(cookie.Value)
			if err != nil {
				return writeProblem(c, http.StatusUnauthorized, "Unauthorized", "invalid or expired session")
			}
			c.Set("session_user", claims.Username)
			return next(c)
		}
	}
}
