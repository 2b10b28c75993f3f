package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// SessionID is the token id; the session snapshot is stored under it.
func (c *Claims) SessionID() string {
	return c.ID
}

type TokenIssuer struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, expiry time.Duration) *TokenIssuer {
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), expiry: expiry, now: time.Now}
}

func (t *TokenIssuer) Expiry() time.Duration {
	return t.expiry
}

func (t *TokenIssuer) GenerateToken(sessionID, userID, email string, isAdmin bool) (string, *Claims, error) {
	now := t.now()
	claims := &Claims{
		UserID:  userID,
		Email:   email,
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

func (t *TokenIssuer) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.ID == "" || claims.UserID == "" {
		return nil, errors.New("token missing session")
	}
	return claims, nil
}
