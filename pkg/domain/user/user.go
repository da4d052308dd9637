package user

import (
	"errors"
	"strings"
	"time"

	"github.com/autoconnect/backend/pkg/domain"
	"github.com/autoconnect/backend/pkg/utils"
	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user cannot be found in the
	// repository.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned when the identity/password pair does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// User owns bank accounts and signs in to obtain a JWT.
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Names     string    `json:"names"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// New creates a User with a hashed password and current timestamps.
func New(username, email, password, names string) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, domain.ErrRequiredFieldsMissing
	}
	if !utils.IsEmail(email) {
		return nil, domain.NewValidationError("invalid email %q", email)
	}
	if utils.IsEmail(username) {
		return nil, domain.NewValidationError("username must not be an email address")
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &User{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		Password:  hashed,
		Names:     strings.TrimSpace(names),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// CheckPassword reports whether password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return utils.CheckPasswordHash(password, u.Password)
}
