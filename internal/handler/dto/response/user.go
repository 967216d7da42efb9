package response

import (
	"time"

	"petshop-api/internal/domain/user"
	"petshop-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"nome"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"criado_em"`
	UpdatedAt   time.Time `json:"atualizado_em"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	return copyInto[UserResponse](v)
}

func FromUserViews(views []*queries.UserView) []*UserResponse {
	return copyAll[UserResponse](views)
}

func FromUser(u *user.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID(),
		Email:       u.Email(),
		DisplayName: u.DisplayName(),
		Role:        u.Role().String(),
		CreatedAt:   u.CreatedAt(),
		UpdatedAt:   u.UpdatedAt(),
	}
}
