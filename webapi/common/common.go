// Package common holds the request binding and response envelope helpers
// shared by every HTTP area.
package common

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/autoconnect/backend/pkg/domain"
	"github.com/autoconnect/backend/pkg/domain/user"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// StatusError is the envelope status value for failures.
const StatusError = "error"

// MsgUnknownServerError is the message of every unexpected write failure.
const MsgUnknownServerError = "Unknown server error"

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}

// MessageResponse is returned by operations with nothing else to report.
type MessageResponse struct {
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ErrorResponseJSON writes the failure envelope. err may be nil, an error or a string.
func ErrorResponseJSON(c *fiber.Ctx, status int, message string, err any) error {
	body := ErrorResponse{Message: message, Status: StatusError}
	switch e := err.(type) {
	case nil:
	case error:
		body.Error = e.Error()
	case string:
		body.Error = e
	default:
		body.Error = fmt.Sprint(e)
	}
	return c.Status(status).JSON(body)
}

// ErrorToStatusCode maps domain and adapter errors to HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidAmount):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, user.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrEmptyResult):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrRequestFailed),
		errors.Is(err, domain.ErrInvalidResponseFormat):
		return fiber.StatusBadGateway
	default:
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe.Code
		}
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the JSON body into T and validates it. On failure it
// writes a 400 envelope and returns a nil pointer together with the result of
// writing the response.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	// No body or an unsupported content type means no fields were supplied.
	if len(c.Body()) == 0 {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", domain.ErrRequiredFieldsMissing)
	}
	if err := c.BodyParser(&input); err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", err)
		case errors.Is(err, fiber.ErrUnprocessableEntity):
			return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", domain.ErrRequiredFieldsMissing)
		}
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := ValidateStruct(input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", err)
	}
	return &input, nil
}

// ValidateStruct runs the validate tags of v and returns one user-facing reason.
func ValidateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return validationReason(err)
	}
	return nil
}

// validationReason collapses validator output into one user-facing reason.
func validationReason(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return domain.ErrRequiredFieldsMissing
		}
		msgs = append(msgs, fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag()))
	}
	return domain.NewValidationError("%s", strings.Join(msgs, "; "))
}

// ParseID reads the :id route parameter. On failure it writes a 400 envelope
// and returns ok=false.
func ParseID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		_ = ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid id", domain.NewValidationError("invalid id %q", c.Params("id")))
		return uuid.Nil, false
	}
	return id, true
}

// NotFoundOrError writes 404 for ErrNotFound and the mapped status otherwise.
func NotFoundOrError(c *fiber.Ctx, what string, err error) error {
	status := ErrorToStatusCode(err)
	if status == fiber.StatusNotFound {
		return ErrorResponseJSON(c, status, what+" not found", domain.ErrNotFound)
	}
	if status == fiber.StatusInternalServerError {
		return ErrorResponseJSON(c, status, MsgUnknownServerError, err)
	}
	return ErrorResponseJSON(c, status, "Request failed", err)
}

// LogFailure logs a failed write at Warn for validation problems and at Error
// for everything WriteFailure answers with a 500.
func LogFailure(msg string, err error) {
	if errors.Is(err, domain.ErrValidation) {
		log.Warnf("%s: %v", msg, err)
		return
	}
	log.Errorf("%s: %v", msg, err)
}

// WriteFailure writes the create-contract failure: 400 for validation
// problems and 500 "Unknown server error" for anything else.
func WriteFailure(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrValidation) {
		return ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", err)
	}
	return ErrorResponseJSON(c, fiber.StatusInternalServerError, MsgUnknownServerError, err)
}
