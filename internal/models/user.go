package models

// Registered user. Password is opaque and compared as is.
type User struct {
	Username string
	Password string
}
