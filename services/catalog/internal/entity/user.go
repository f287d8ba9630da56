package entity

import (
	"time"

	"campshop/pkg/access"
)

type User struct {
	ID                  string      `json:"id"`
	Name                string      `json:"name" validate:"required"`
	Email               string      `json:"email" validate:"required,email"`
	Role                access.Role `json:"role" validate:"required,oneof=user publisher seller admin"`
	Password            string      `json:"-"`
	ResetPasswordToken  *string     `json:"-"`
	ResetPasswordExpire *time.Time  `json:"-"`
	CreatedAt           time.Time   `json:"created_at"`
}

func (u *User) Principal() *access.Principal {
	return &access.Principal{ID: u.ID, Role: u.Role}
}

func (u *User) ClearResetToken() {
	u.ResetPasswordToken = nil
	u.ResetPasswordExpire = nil
}

// Credentials is a password before hashing.
type Credentials struct {
	Password string `json:"password" validate:"required,min=6"`
}

// UserInput is the writable part of a user. Nil fields are left untouched.
type UserInput struct {
	Name     *string      `json:"name"`
	Email    *string      `json:"email"`
	Role     *access.Role `json:"role"`
	Password *string      `json:"password"`
}

func (in UserInput) ApplyTo(u *User) {
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
}
