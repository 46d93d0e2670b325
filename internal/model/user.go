package model

import "time"

// User is a registered account. PasswordHash is a bcrypt digest and never leaves the server.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
