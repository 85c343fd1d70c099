package model

import "time"

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	RoleID       int       `json:"role_id"`
	CreatedAt    time.Time `json:"created_at"`
}
