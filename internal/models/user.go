package models

import "time"

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

type User struct {
	ID           string
	Name         string
	LastName     string
	Email        string
	PasswordHash []byte
	Location     string
	Role         UserRole
	AvatarURL    *string
	AvatarKey    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
