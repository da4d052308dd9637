package auth

import "github.com/autoconnect/backend/pkg/domain/user"

// LoginInput represents the request body for user authentication.
type LoginInput struct {
	Identity string `json:"identity" validate:"required,max=255"`
	Password string `json:"password" validate:"required,max=255"`
}

// RegisterInput represents the request body for creating a user.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Names    string `json:"names" validate:"max=255"`
}

// RegisterResponse is the 201 body of the register endpoint.
type RegisterResponse struct {
	Message string     `json:"message"`
	User    *user.User `json:"user"`
}

// LoginResponse carries the issued JWT.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
