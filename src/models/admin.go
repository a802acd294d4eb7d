package models

import "time"

// Admin represents an administrator account
type Admin struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never expose
	CreatedAt    time.Time `json:"created_at"`
}

// AdminPublic is the projection of an admin that may leave the server
type AdminPublic struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AdminProfile is AdminPublic plus the creation time, returned by the profile route
type AdminProfile struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Public strips the password hash
func (a *Admin) Public() AdminPublic {
	return AdminPublic{ID: a.ID, Username: a.Username, Email: a.Email}
}

// Profile strips the password hash and keeps created_at
func (a *Admin) Profile() AdminProfile {
	return AdminProfile{ID: a.ID, Username: a.Username, Email: a.Email, CreatedAt: a.CreatedAt}
}

// AdminInput is the body accepted by register and admin update
type AdminInput struct {
	Username string `json:"username" yaml:"username"`
	Email    string `json:"email" yaml:"email"`
	Password string `json:"password" yaml:"password"`
}

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful authentication
type LoginResponse struct {
	Token string      `json:"token"`
	Admin AdminPublic `json:"admin"`
}
