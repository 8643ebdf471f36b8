package models

// User is an account allowed to log in.
type User struct {
	Name         string
	PasswordHash string
	Role         string
	LastLogin    string
}
