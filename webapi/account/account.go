package account

import (
	"errors"

	"github.com/autoconnect/backend/pkg/config"
	"github.com/autoconnect/backend/pkg/domain"
	"github.com/autoconnect/backend/pkg/domain/account"
	"github.com/autoconnect/backend/pkg/middleware"
	accountsvc "github.com/autoconnect/backend/pkg/service/account"
	authsvc "github.com/autoconnect/backend/pkg/service/auth"
	"github.com/autoconnect/backend/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Routes registers the bank account endpoints. All of them require a JWT and
// only ever expose the caller's own accounts.
//
// Routes:
//   - POST   /api/accounts/add-account : Create an account.
//   - GET    /api/accounts             : List the caller's accounts.
//   - GET    /api/accounts/:id         : Fetch one account.
//   - PUT    /api/accounts/:id         : Merge the supplied fields into an account.
//   - DELETE /api/accounts/:id         : Delete an account.
func Routes(app *fiber.App, accountSvc *accountsvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	group := app.Group("/api/accounts", middleware.JwtProtected(cfg.Auth.Jwt))
	group.Post("/add-account", CreateAccount(accountSvc, authSvc))
	group.Get("/", ListAccounts(accountSvc, authSvc))
	group.Get("/:id", GetAccount(accountSvc, authSvc))
	group.Put("/:id", UpdateAccount(accountSvc, authSvc))
	group.Delete("/:id", DeleteAccount(accountSvc, authSvc))
}

func currentUser(c *fiber.Ctx, authSvc *authsvc.Service) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return authSvc.GetCurrentUserID(token)
}

// loadOwned fetches the :id account and hides accounts of other users behind
// a 404. It writes the response and returns nil when the lookup fails.
func loadOwned(c *fiber.Ctx, accountSvc *accountsvc.Service, userID uuid.UUID) *account.BankAccount {
	id, ok := common.ParseID(c)
	if !ok {
		return nil
	}
	acc, err := accountSvc.Get(c.UserContext(), id)
	if err == nil && acc.UserID != userID {
		err = domain.ErrNotFound
	}
	if err != nil {
		_ = common.NotFoundOrError(c, "Account", err)
		return nil
	}
	return acc
}

// CreateAccount returns a Fiber handler that creates a bank account for the
// current user.
// @Summary Create a bank account
// @Description Validates the required fields and enum values, then saves the account once.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body CreateAccountRequest true "Account details"
// @Success 201 {object} CreateAccountResponse "Account created"
// @Failure 400 {object} common.ErrorResponse "Required fields missing or invalid enum value"
// @Failure 401 {object} common.ErrorResponse "Unauthorized"
// @Failure 500 {object} common.ErrorResponse "Unknown server error"
// @Router /api/accounts/add-account [post]
// @Security Bearer
func CreateAccount(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUser(c, authSvc)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusUnauthorized, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err
		}
		acc, err := accountSvc.Create(c.UserContext(), account.NewParams{
			UserID:        userID,
			BankName:      input.BankName,
			BranchName:    input.BranchName,
			AccountNumber: input.AccountNumber,
			CardNumber:    input.CardNumber,
			AccountType:   input.AccountType,
			Status:        input.Status,
			Balance:       input.Balance,
		})
		if err != nil {
			common.LogFailure("Failed to create account", err)
			return common.WriteFailure(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(CreateAccountResponse{
			Message: "Bank account added successfully",
			Account: acc,
		})
	}
}

// ListAccounts returns a Fiber handler listing the current user's accounts.
// @Summary List bank accounts
// @Tags accounts
// @Produce json
// @Success 200 {array} account.BankAccount
// @Failure 401 {object} common.ErrorResponse "Unauthorized"
// @Failure 500 {object} common.ErrorResponse "Unknown server error"
// @Router /api/accounts [get]
// @Security Bearer
func ListAccounts(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUser(c, authSvc)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusUnauthorized, "Unauthorized", err)
		}
		accounts, err := accountSvc.List(c.UserContext(), &userID)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusInternalServerError, common.MsgUnknownServerError, err)
		}
		if accounts == nil {
			accounts = []*account.BankAccount{}
		}
		return c.JSON(accounts)
	}
}

// GetAccount returns a Fiber handler fetching one account.
// @Summary Get a bank account
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} account.BankAccount
// @Failure 400 {object} common.ErrorResponse "Invalid id"
// @Failure 404 {object} common.ErrorResponse "Account not found"
// @Router /api/accounts/{id} [get]
// @Security Bearer
func GetAccount(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUser(c, authSvc)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusUnauthorized, "Unauthorized", err)
		}
		acc := loadOwned(c, accountSvc, userID)
		if acc == nil {
			return nil
		}
		return c.JSON(acc)
	}
}

// UpdateAccount returns a Fiber handler merging the supplied fields into an account.
// @Summary Update a bank account
// @Description Only the fields present in the body are changed; enum values are re-validated.
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body UpdateAccountRequest true "Fields to change"
// @Success 200 {object} account.BankAccount
// @Failure 400 {object} common.ErrorResponse "Invalid enum value"
// @Failure 404 {object} common.ErrorResponse "Account not found"
// @Failure 500 {object} common.ErrorResponse "Unknown server error"
// @Router /api/accounts/{id} [put]
// @Security Bearer
func UpdateAccount(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUser(c, authSvc)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusUnauthorized, "Unauthorized", err)
		}
		acc := loadOwned(c, accountSvc, userID)
		if acc == nil {
			return nil
		}
		input, err := common.BindAndValidate[UpdateAccountRequest](c)
		if input == nil {
			return err
		}
		updated, err := accountSvc.Update(c.UserContext(), acc.ID, input.toUpdate())
		if err != nil {
			if errors.Is(err, domain.ErrValidation) {
				return common.WriteFailure(c, err)
			}
			return common.NotFoundOrError(c, "Account", err)
		}
		return c.JSON(updated)
	}
}

// DeleteAccount returns a Fiber handler deleting an account.
// @Summary Delete a bank account
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} common.MessageResponse
// @Failure 404 {object} common.ErrorResponse "Account not found"
// @Router /api/accounts/{id} [delete]
// @Security Bearer
func DeleteAccount(accountSvc *accountsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUser(c, authSvc)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusUnauthorized, "Unauthorized", err)
		}
		acc := loadOwned(c, accountSvc, userID)
		if acc == nil {
			return nil
		}
		if err := accountSvc.Delete(c.UserContext(), acc.ID); err != nil {
			return common.NotFoundOrError(c, "Account", err)
		}
		return c.JSON(common.MessageResponse{Message: "Bank account deleted successfully"})
	}
}
