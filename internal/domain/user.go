package domain

import "time"

// UserRole distinguishes end-users from platform administrators.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// Address holds optional shipping/contact details for a user.
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
}

// User is the domain model for platform accounts.
type User struct {
	ID            string
	Name          string
	Email         string
	PasswordHash  string
	Role          UserRole
	Phone         string
	Address       Address
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
