package checkout

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/autoconnect/backend/pkg/config"
	"github.com/autoconnect/backend/pkg/domain"
	"github.com/autoconnect/backend/pkg/middleware"
	"github.com/autoconnect/backend/pkg/provider/payment"
	"github.com/autoconnect/backend/pkg/service/checkout"
	"github.com/autoconnect/backend/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

// Routes registers HTTP routes for checkout-related operations.
func Routes(
	app *fiber.App,
	checkoutSvc *checkout.Service,
	cfg *config.App,
) {
	app.Post(
		"/api/payments/create-session",
		middleware.JwtProtected(cfg.Auth.Jwt),
		CreateSession(checkoutSvc),
	)
	app.Post("/api/payments/webhook", Webhook(checkoutSvc))
}

// CreateSession returns a Fiber handler that starts a hosted checkout session.
// @Summary Create a payment session
// @Description Creates a hosted checkout session for a whole-unit amount. The customer email defaults to the caller's.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body CreateSessionRequest true "Payment details"
// @Success 200 {object} payment.Session
// @Failure 400 {object} ErrorBody "Invalid amount value"
// @Failure 401 {object} common.ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorBody "Payment session creation failed"
// @Router /api/payments/create-session [post]
// @Security Bearer
func CreateSession(checkoutSvc *checkout.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input CreateSessionRequest
		if err := c.App().Config().JSONDecoder(c.Body(), &input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorBody{Error: payment.ErrInvalidAmountValue.Error()})
		}
		amount, err := parseAmount(input.Amount)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorBody{Error: err.Error()})
		}
		if err := common.ValidateStruct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorBody{Error: err.Error()})
		}
		email := input.CustomerEmail
		if email == "" {
			email = tokenEmail(c)
		}
		session, err := checkoutSvc.CreateSession(c.UserContext(), &payment.SessionParams{
			Amount:        amount,
			Description:   input.Description,
			CustomerEmail: email,
		})
		if err != nil {
			if errors.Is(err, domain.ErrInvalidAmount) {
				return c.Status(fiber.StatusBadRequest).JSON(ErrorBody{Error: err.Error()})
			}
			log.Errorf("Failed to create payment session: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(ErrorBody{Error: err.Error()})
		}
		return c.JSON(session)
	}
}

// parseAmount accepts a JSON number or a numeric string. Anything else is an
// invalid amount; range and integrality are checked by the payment service.
func parseAmount(v any) (float64, error) {
	var s string
	switch a := v.(type) {
	case float64:
		return a, nil
	case json.Number:
		s = a.String()
	case string:
		s = strings.TrimSpace(a)
	default:
		return 0, payment.ErrInvalidAmountValue
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, payment.ErrInvalidAmountValue
	}
	return d.InexactFloat64(), nil
}

func tokenEmail(c *fiber.Ctx) string {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}

// Webhook returns a Fiber handler for payment provider callbacks.
// @Summary Payment webhook
// @Description Verifies the Stripe-Signature header. A completed checkout triggers a best-effort confirmation email.
// @Tags payments
// @Accept json
// @Produce json
// @Param Stripe-Signature header string false "Webhook signature"
// @Success 200 {object} WebhookResponse
// @Failure 400 {object} common.ErrorResponse "Invalid webhook"
// @Router /api/payments/webhook [post]
func Webhook(checkoutSvc *checkout.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := c.Body()
		if len(payload) == 0 {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid webhook", "Empty request body")
		}
		event, err := checkoutSvc.HandleWebhook(c.UserContext(), payload, c.Get("Stripe-Signature"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid webhook", err)
		}
		return c.JSON(WebhookResponse{Received: true, Type: string(event.Type)})
	}
}
