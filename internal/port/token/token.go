package token

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Issuer signs and verifies the bearer tokens carried on every authenticated
// request. The subject is the member id — no other claims are trusted.
type Issuer interface {
	Issue(memberID uuid.UUID) (string, error)
	Verify(token string) (uuid.UUID, error)
}
