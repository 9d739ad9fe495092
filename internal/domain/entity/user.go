package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a storefront account. PasswordHash is the bcrypt hash of the
// login password; it never leaves the persistence and usecase layers.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user may access the admin surface.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
