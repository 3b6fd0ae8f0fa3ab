// Package model provides request and response types for the auth module.
package model

import "time"

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,max=255"`
	Name     string `json:"name" binding:"required,max=255"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the bearer token and its expiry.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
