package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User is an account holder. Users own images and posts and take part in
// the follow graph as both follower and followed side of an edge.
type User struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	Email          string     `json:"email" gorm:"size:100;uniqueIndex;not null"`
	Name           string     `json:"name" gorm:"size:50"`
	Surname        string     `json:"surname" gorm:"size:80"`
	BirthDate      *time.Time `json:"birth_date,omitempty"`
	AboutMe        string     `json:"about_me" gorm:"type:text"`
	HashedPassword string     `json:"-" gorm:"size:200"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// SignupRequest defines the request body for registering a new user
type SignupRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Name      string `json:"name" validate:"omitempty,max=50"`
	Surname   string `json:"surname" validate:"omitempty,max=80"`
	BirthDate string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	AboutMe   string `json:"about_me" validate:"omitempty,max=2000"`
	Password  string `json:"password" validate:"required,min=8"`
}

// UpdateUserRequest defines the request body for a partial profile update.
// Only non-nil fields are applied.
type UpdateUserRequest struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Name      *string `json:"name,omitempty" validate:"omitempty,max=50"`
	Surname   *string `json:"surname,omitempty" validate:"omitempty,max=80"`
	BirthDate *string `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	AboutMe   *string `json:"about_me,omitempty" validate:"omitempty,max=2000"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=8"`
}

// SignInRequest defines the request body for password authentication
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ResetPasswordRequest carries a password-reset token and the new password
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
