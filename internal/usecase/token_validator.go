package usecase

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator_mock.go -package=usecasemock

import (
	"context"

	"petshop-api/internal/domain/user"
	"petshop-api/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator turns a bearer token into the identity the IdP vouches for.
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (user.Identity, error)
}

type tokenValidatorImpl struct {
	verifier *jwt.Verifier
}

func NewTokenValidator(verifier *jwt.Verifier) TokenValidator {
	return &tokenValidatorImpl{
		verifier: verifier,
	}
}

func (t *tokenValidatorImpl) ValidateToken(ctx context.Context, tokenString string) (user.Identity, error) {
	claims, err := t.verifier.ValidateToken(ctx, tokenString)
	if err != nil {
		return user.Identity{}, err
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return user.Identity{}, jwt.ErrInvalidToken
	}

	return user.NewIdentity(subject, claims.EmailAddress())
}
