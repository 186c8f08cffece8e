package models

import "time"

// UserDB represents a user record in the database.
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                 // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	Email        string    `json:"email" db:"email"`           // Unique email, used for login
	PasswordHash string    `json:"-" db:"password_hash"`       // Hashed password, never serialized
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// User is the public projection of a user record. It is the only user
// shape that ever leaves the service.
type User struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Email    string `json:"email" db:"email"`
}
