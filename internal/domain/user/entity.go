package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the local record of a staff member known to the identity provider.
type User struct {
	id          uuid.UUID
	email       string
	displayName string
	role        Role
	createdAt   time.Time
	updatedAt   time.Time
}

func ReconstructUser(id uuid.UUID, email, displayName string, role Role, createdAt, updatedAt time.Time) *User {
	return &User{
		id:          id,
		email:       email,
		displayName: displayName,
		role:        role,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) DisplayName() string  { return u.displayName }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
func (u *User) IsAdmin() bool        { return u.role == RoleAdmin }

// Reconcile decides the local record for an identity. A first-seen identity
// becomes a worker, or an admin when owner is true. An existing worker is only
// ever promoted, never demoted, by reconciliation.
func Reconcile(existing *User, id Identity, owner bool, now time.Time) (u *User, changed bool) {
	if existing == nil {
		role := RoleWorker
		if owner {
			role = RoleAdmin
		}
		return &User{
			id:          id.Subject,
			email:       id.Email,
			displayName: id.Email,
			role:        role,
			createdAt:   now,
			updatedAt:   now,
		}, true
	}
	if owner && existing.role != RoleAdmin {
		promoted := *existing
		promoted.role = RoleAdmin
		promoted.updatedAt = now
		return &promoted, true
	}
	return existing, false
}

func (u *User) ChangeRole(role Role, now time.Time) error {
	if !role.IsValid() {
		return ErrInvalidRole
	}
	u.role = role
	u.updatedAt = now
	return nil
}
