package user

import (
	"errors"
	"time"
)

// permitted role values
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

var ErrNotFound = errors.New("user not found")

type User struct {
	ID             int64     `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Title          string    `json:"title"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	HashedPassword string    `json:"-"` // never expose hash in JSON
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type CreateUserRequest struct {
	Title           string `json:"title" binding:"required"`
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Role            string `json:"role" binding:"required,oneof=Admin User"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
}

// UpdateUserRequest treats an empty string as "field not provided", never as
// an attempt to clear a column. When password is present confirmPassword must
// be present and equal.
type UpdateUserRequest struct {
	Title           string `json:"title"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email" binding:"omitempty,email"`
	Role            string `json:"role" binding:"omitempty,oneof=Admin User"`
	Password        string `json:"password" binding:"omitempty,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required_with=Password,omitempty,eqfield=Password"`
}

func (r UpdateUserRequest) HasPassword() bool {
	return r.Password != ""
}

// UpdateFields is the merge set a repository applies on update. Empty string
// means leave the stored value unchanged.
type UpdateFields struct {
	Title          string
	FirstName      string
	LastName       string
	Email          string
	Role           string
	HashedPassword string
}
