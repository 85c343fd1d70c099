package model

// Role represents a user role
type Role struct {
	ID   int    `json:"id"`
	Name string `json:"role_name"`
}

// Role names known to the application.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)
