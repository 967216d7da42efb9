package user

import (
	"strings"

	"petshop-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole    = errs.Invalid("role must be worker or admin")
	ErrMissingSubject = errs.Invalid("identity has no subject")
	ErrNotFound       = errs.NotFound("user not found")
)

// Identity is what the external identity provider vouches for.
type Identity struct {
	Subject uuid.UUID
	Email   string
}

func NewIdentity(subject uuid.UUID, email string) (Identity, error) {
	if subject == uuid.Nil {
		return Identity{}, ErrMissingSubject
	}
	return Identity{Subject: subject, Email: strings.ToLower(strings.TrimSpace(email))}, nil
}
