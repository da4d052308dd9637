package auth

import (
	"errors"

	"github.com/autoconnect/backend/pkg/domain"
	"github.com/autoconnect/backend/pkg/domain/user"
	authsvc "github.com/autoconnect/backend/pkg/service/auth"
	usersvc "github.com/autoconnect/backend/pkg/service/user"
	"github.com/autoconnect/backend/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(app *fiber.App, authSvc *authsvc.Service, userSvc *usersvc.Service) {
	app.Post("/api/auth/register", Register(userSvc))
	app.Post("/api/auth/login", Login(authSvc))
}

// Register handles user sign-up.
// @Summary Register a user
// @Description Creates a user with a bcrypt-hashed password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterInput true "New user"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 409 {object} common.ErrorResponse "Username or email already taken"
// @Failure 500 {object} common.ErrorResponse
// @Router /api/auth/register [post]
func Register(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterInput](c)
		if input == nil {
			return err
		}
		u, err := userSvc.CreateUser(c.UserContext(), input.Username, input.Email, input.Password, input.Names)
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return common.ErrorResponseJSON(c, fiber.StatusConflict, "User already exists", domain.ErrAlreadyExists)
			}
			common.LogFailure("Failed to register user", err)
			return common.WriteFailure(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(RegisterResponse{
			Message: "User registered successfully",
			User:    u,
		})
	}
}

// Login handles user authentication and returns a JWT token.
// @Summary User login
// @Description Authenticate user with identity (username or email) and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginInput true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 401 {object} common.ErrorResponse
// @Failure 500 {object} common.ErrorResponse
// @Router /api/auth/login [post]
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err
		}
		u, err := authSvc.Login(c.UserContext(), input.Identity, input.Password)
		if err != nil {
			if errors.Is(err, user.ErrInvalidCredentials) {
				return common.ErrorResponseJSON(c, fiber.StatusUnauthorized, "Invalid identity or password", err)
			}
			return common.ErrorResponseJSON(c, fiber.StatusInternalServerError, common.MsgUnknownServerError, err)
		}
		token, err := authSvc.GenerateToken(u)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusInternalServerError, common.MsgUnknownServerError, err)
		}
		return c.JSON(LoginResponse{Message: "Success login", Token: token})
	}
}
