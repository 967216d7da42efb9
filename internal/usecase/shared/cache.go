package shared

import (
	"context"

	"petshop-api/internal/domain/user"

	"github.com/google/uuid"
)

// UserCache holds reconciled users by IdP subject. A miss is (nil, nil).
type UserCache interface {
	Get(ctx context.Context, id uuid.UUID) (*user.User, error)
	Set(ctx context.Context, u *user.User) error
	Evict(ctx context.Context, id uuid.UUID) error
}
