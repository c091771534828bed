// Package session carries per-visitor state (UI language, admin login) in a
// signed token stored in a cookie. There is no server-side session store and
// no process-wide mutable state; every request decodes its own session.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"todayproje/server/internal/i18n"
)

// CookieName is the cookie the session token rides in.
const CookieName = "todayproje_session"

// Session is the per-request visitor state.
type Session struct {
	Language string
	Admin    bool
}

type claims struct {
	Language string `json:"lang"`
	Admin    bool   `json:"admin,omitempty"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured session lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Default returns the zero-value session: default locale, not logged in.
func Default() Session {
	return Session{Language: i18n.DefaultLocale}
}

// Issue signs a token for the given session state.
func (c *Codec) Issue(s Session) (string, error) {
	if s.Language == "" || !i18n.Supported(s.Language) {
		s.Language = i18n.DefaultLocale
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Language: s.Language,
		Admin:    s.Admin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	})
	return token.SignedString(c.secret)
}

// Decode verifies a token and returns the session it carries. Anything
// invalid — bad signature, wrong algorithm, expired, garbage — resolves to
// the default session rather than an error.
func (c *Codec) Decode(tokenString string) Session {
	if tokenString == "" {
		return Default()
	}

	var cl claims
	token, err := jwt.ParseWithClaims(tokenString, &cl, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return Default()
	}

	s := Session{Language: cl.Language, Admin: cl.Admin}
	if !i18n.Supported(s.Language) {
		s.Language = i18n.DefaultLocale
	}
	return s
}
