package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const issuer = "gamestore"

// JWTAuthClient verifies and mints HS256 tokens whose subject is a user id.
type JWTAuthClient struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

func NewJWTAuthClient(secret string, expiry time.Duration) *JWTAuthClient {
	return &JWTAuthClient{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}
}

func (c *JWTAuthClient) GenerateToken(userID uuid.UUID) (string, error) {
	now := c.now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.expiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

func (c *JWTAuthClient) VerifyToken(raw string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	parser := jwt.Parser{ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}

	_, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	if !claims.VerifyIssuer(issuer, true) {
		return uuid.Nil, fmt.Errorf("unexpected issuer %q", claims.Issuer)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid subject: %w", err)
	}
	return userID, nil
}
