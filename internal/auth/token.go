package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// ErrInvalidToken is returned for tokens that are malformed, forged or
// expired.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims represents the session cookie's JWT claims. The token only points at
// a server-side session; the identity itself never leaves the session store.
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for session sid.
func (t *Tokens) Issue(sid string) (string, error) {
	now := t.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	})
	s, err := token.SignedString(t.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to create token")
	}
	return s, nil
}

// Parse validates the signature and expiry and returns the session id.
func (t *Tokens) Parse(tokenStr string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now))
	if err != nil {
		return "", errors.Wrap(ErrInvalidToken, err.Error())
	}
	if !token.Valid || claims.SessionID == "" {
		return "", errors.Wrap(ErrInvalidToken, "missing session id")
	}
	return claims.SessionID, nil
}
