package model

import "time"

// Role classifies an account. Only these two values are valid; the auth
// layer rejects anything else before it reaches the database.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// Student is a login account. Admins live in the same table, distinguished
// by Role.
type Student struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:128;not null"`
	Email     string `gorm:"uniqueIndex;size:256;not null"`
	Password  string `gorm:"size:128;not null"`
	Role      Role   `gorm:"size:16;not null"`
	CreatedAt time.Time
}
