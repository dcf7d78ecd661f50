package models

import (
	"github.com/golang-jwt/jwt/v5"
)

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

// User is the persisted account record. Password holds a bcrypt hash, or
// plaintext for records written before hashing was introduced.
type User struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	Password string        `json:"password"`
	Role     UserRole      `json:"role"`
	Phone    string        `json:"phone,omitempty"`
	Address  string        `json:"address,omitempty"`
	City     string        `json:"city,omitempty"`
	Country  string        `json:"country,omitempty"`
	Orders   []OrderRecord `json:"orders"`
}

// Profile strips credentials for API responses.
func (u *User) Profile() *UserProfile {
	if u == nil {
		return nil
	}

	return &UserProfile{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Role:    u.Role,
		Phone:   u.Phone,
		Address: u.Address,
		City:    u.City,
		Country: u.Country,
	}
}

type UserProfile struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Role    UserRole `json:"role"`
	Phone   string   `json:"phone,omitempty"`
	Address string   `json:"address,omitempty"`
	City    string   `json:"city,omitempty"`
	Country string   `json:"country,omitempty"`
}

type SignupRequest struct {
	Name      string   `json:"name" validate:"required,max=60"`
	Email     string   `json:"email" validate:"required,email"`
	Password  string   `json:"password" validate:"required,min=6"`
	Role      UserRole `json:"role" validate:"required,oneof=admin member"`
	AdminCode string   `json:"adminCode,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ProfileUpdateRequest struct {
	Name    string `json:"name" validate:"required,max=80"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty" validate:"max=40"`
	Address string `json:"address,omitempty" validate:"max=160"`
	City    string `json:"city,omitempty" validate:"max=120"`
	Country string `json:"country,omitempty" validate:"max=120"`
}

// AuthResult carries business-rule outcomes; a rejection is not an error.
type AuthResult struct {
	Success   bool         `json:"success"`
	Message   string       `json:"message,omitempty"`
	Token     string       `json:"token,omitempty"`
	ExpiresIn int          `json:"expires_in,omitempty"`
	User      *UserProfile `json:"user,omitempty"`
}

// JWT claims structure

type Claims struct {
	UserID string   `json:"user_id"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
	jwt.RegisteredClaims
}
