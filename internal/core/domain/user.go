package domain

import (
	"errors"
	"time"
)

// Role is the access tier controlling which dashboard and administrative
// actions a user may reach.
type Role string

const (
	RoleUser   Role = "user"
	RoleExpert Role = "expert"
	RoleAdmin  Role = "admin"
)

// ParseRole narrows a free-form string to one of the three supported roles.
// Anything unrecognised degrades to RoleUser, mirroring how profile rows
// with a null role are read.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleExpert:
		return RoleExpert
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleUser
	}
}

// ValidRole reports whether s is exactly one of the three supported roles.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleUser, RoleExpert, RoleAdmin:
		return true
	}
	return false
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrForbidden          = errors.New("access forbidden")
	ErrTokenRevoked       = errors.New("token revoked")
)

// User models an authenticated actor: a profile row joined with the identity
// store. The service never owns a durable copy beyond the backing collection;
// every fetch is a disposable snapshot.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	Name         string    `json:"name" bson:"name"`
	Role         Role      `json:"role" bson:"role"`
	AvatarURL    string    `json:"avatar_url,omitempty" bson:"avatar_url,omitempty"`
	Bio          string    `json:"bio,omitempty" bson:"bio,omitempty"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
