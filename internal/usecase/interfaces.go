package usecase

import (
	"github.com/google/uuid"
)

// TokenVerifier turns a bearer token into the id of the user it was issued
// to.
type TokenVerifier interface {
	VerifyToken(token string) (uuid.UUID, error)
}

type TokenIssuer interface {
	GenerateToken(userID uuid.UUID) (string, error)
}
