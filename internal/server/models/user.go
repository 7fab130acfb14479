// Package models holds the server-side domain records.
package models

import "time"

// User is a stored credential record. PasswordHash never leaves the server;
// use Public to obtain the caller-facing view.
type User struct {
	ID           int64     `db:"id"`
	UserName     string    `db:"username"`
	Email        string    `db:"email"`
	FirstName    *string   `db:"first_name"`
	LastName     *string   `db:"last_name"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// PublicUser is a User without its password hash.
type PublicUser struct {
	ID        int64   `json:"id"`
	UserName  string  `json:"username"`
	Email     string  `json:"email"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		UserName:  u.UserName,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// NewUser is the registration input.
type NewUser struct {
	UserName  string  `validate:"required,max=255"`
	Email     string  `validate:"required,email,max=255"`
	Password  string  `validate:"required,max=72"`
	FirstName *string `validate:"omitempty,max=255"`
	LastName  *string `validate:"omitempty,max=255"`
}
