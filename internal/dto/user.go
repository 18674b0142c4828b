package dto

import "time"

type RegisterRequest struct {
	FirstName    string `json:"first_name" binding:"required,max=50"`
	LastName     string `json:"last_name" binding:"required,max=50"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"omitempty,min=10,max=15"`
	Organization string `json:"organization" binding:"omitempty,max=100"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,role"`
}

// UserResponse is the public-safe projection of a user. The password
// column is never serialized.
type UserResponse struct {
	ID           uint      `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Organization string    `json:"organization,omitempty"`
	Role         string    `json:"role"`
	Validated    bool      `json:"validated"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
