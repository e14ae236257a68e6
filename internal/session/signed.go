package session

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Signed is a stateless Provider backing: the cookie value is an HS256 token
// carrying the identity claims. Destroy cannot revoke an issued token early;
// the caller clears the cookie and the token dies at its exp claim.
type Signed struct {
	secret []byte
	ttl    time.Duration
}

var _ Provider = (*Signed)(nil)

// NewSigned creates a signed-token session store.
func NewSigned(secret []byte, ttl time.Duration) *Signed {
	return &Signed{secret: secret, ttl: ttl}
}

func (s *Signed) Create(_ context.Context, userID int, username string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"exp":      time.Now().Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Signed) Resolve(_ context.Context, tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		// Tampered, foreign or expired tokens all read as "no session".
		return nil, nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, nil
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, nil
	}
	username, ok := claims["username"].(string)
	if !ok {
		return nil, nil
	}

	return &Identity{UserID: int(userID), Username: username}, nil
}

func (s *Signed) Destroy(_ context.Context, _ string) error {
	return nil
}
