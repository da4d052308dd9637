package auth_test

import (
	"fmt"
	"testing"

	"github.com/autoconnect/backend/webapi/common"
	"github.com/autoconnect/backend/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

type AuthTestSuite struct {
	testutils.E2ETestSuite
}

func (s *AuthTestSuite) TestRegister() {
	u := s.CreateTestUser()
	s.NotEmpty(u.ID)
	s.Equal("Test User", u.Names)
	s.Empty(u.Password, "password hash must never be serialized")
}

func (s *AuthTestSuite) TestRegister_Duplicate() {
	u := s.CreateTestUser()
	body := fmt.Sprintf(`{"username":"%s","email":"other@example.com","password":"password123"}`, u.Username)
	resp := s.MakeRequest(fiber.MethodPost, "/api/auth/register", body, "")
	s.Equal(fiber.StatusConflict, resp.StatusCode)
}

func (s *AuthTestSuite) TestRegister_Validation() {
	for name, body := range map[string]string{
		"missing password": `{"username":"bob","email":"bob@example.com"}`,
		"bad email":        `{"username":"bob","email":"bob","password":"password123"}`,
		"short password":   `{"username":"bob","email":"bob@example.com","password":"123"}`,
	} {
		s.Run(name, func() {
			resp := s.MakeRequest(fiber.MethodPost, "/api/auth/register", body, "")
			s.Equal(fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func (s *AuthTestSuite) TestLoginRoute_BadRequest() {
	resp := s.MakeRequest(fiber.MethodPost, "/api/auth/login", `{"identity":123}`, "")
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *AuthTestSuite) TestLoginRoute_Unauthorized() {
	resp := s.MakeRequest(fiber.MethodPost, "/api/auth/login", `{"identity":"nonexistent@example.com","password":"password"}`, "")
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
}

func (s *AuthTestSuite) TestLoginRoute_InvalidPassword() {
	u := s.CreateTestUser()
	body := fmt.Sprintf(`{"identity":"%s","password":"wrongpassword"}`, u.Username)
	resp := s.MakeRequest(fiber.MethodPost, "/api/auth/login", body, "")
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
	var env common.ErrorResponse
	s.DecodeJSON(resp, &env)
	s.Equal("error", env.Status)
}

func (s *AuthTestSuite) TestLoginRoute_Success() {
	u := s.CreateTestUser()
	token := s.LoginUser(u)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (any, error) {
		return []byte(s.Cfg.Auth.Jwt.Secret), nil
	})
	s.Require().NoError(err)
	claims := parsed.Claims.(jwt.MapClaims)
	s.Equal(u.ID.String(), claims["user_id"])
	s.Equal(u.Email, claims["email"])
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}
