package common_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/autoconnect/backend/pkg/domain"
	"github.com/autoconnect/backend/pkg/domain/category"
	"github.com/autoconnect/backend/pkg/domain/user"
	"github.com/autoconnect/backend/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string        `json:"name" validate:"required"`
	Type  category.Type `json:"type" validate:"required"`
	Email string        `json:"email" validate:"omitempty,email"`
}

func bindApp() *fiber.App {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		in, err := common.BindAndValidate[sampleRequest](c)
		if in == nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(in)
	})
	return app
}

func post(t *testing.T, app *fiber.App, body string) (int, common.ErrorResponse) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint: errcheck
	var env common.ErrorResponse
	_ = json.NewDecoder(resp.Body).Decode(&env)
	return resp.StatusCode, env
}

func TestBindAndValidate(t *testing.T) {
	app := bindApp()

	tests := []struct {
		name      string
		body      string
		status    int
		errorText string
	}{
		{"valid", `{"name":"Fuel","type":"expense"}`, fiber.StatusCreated, ""},
		{"missing field", `{"type":"expense"}`, fiber.StatusBadRequest, "Required fields missing"},
		{"empty field", `{"name":"","type":"expense"}`, fiber.StatusBadRequest, "Required fields missing"},
		{"unknown enum", `{"name":"Fuel","type":"transfer"}`, fiber.StatusBadRequest, `invalid type "transfer"`},
		{"bad email", `{"name":"Fuel","type":"income","email":"x"}`, fiber.StatusBadRequest, "email failed on the 'email' rule"},
		{"malformed json", `{"name":`, fiber.StatusBadRequest, ""},
		{"empty body", ``, fiber.StatusBadRequest, "Required fields missing"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, env := post(t, app, tc.body)
			assert.Equal(t, tc.status, status)
			if status == fiber.StatusBadRequest {
				assert.Equal(t, common.StatusError, env.Status)
				assert.NotEmpty(t, env.Message)
			}
			if tc.errorText != "" {
				assert.Equal(t, tc.errorText, env.Error)
			}
		})
	}
}

func TestBindAndValidate_NoContentType(t *testing.T) {
	req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(`{"name":"Fuel","type":"expense"}`))
	resp, err := bindApp().Test(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint: errcheck

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var env common.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, "Validation failed", env.Message)
	assert.Equal(t, "Required fields missing", env.Error)
}

func TestErrorToStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrRequiredFieldsMissing, fiber.StatusBadRequest},
		{domain.NewAdapterError("ocr", domain.ErrInvalidInput, "No file uploaded", nil), fiber.StatusBadRequest},
		{domain.NewAdapterError("payment", domain.ErrInvalidAmount, "Invalid amount value", nil), fiber.StatusBadRequest},
		{user.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{fmt.Errorf("get: %w", domain.ErrNotFound), fiber.StatusNotFound},
		{fmt.Errorf("%w: %w", domain.ErrAlreadyExists, domain.ErrPersistence), fiber.StatusConflict},
		{domain.NewAdapterError("ocr", domain.ErrEmptyResult, "No text extracted", nil), fiber.StatusUnprocessableEntity},
		{domain.NewAdapterError("llm", domain.ErrRequestFailed, "LLM request failed: x", nil), fiber.StatusBadGateway},
		{fiber.ErrMethodNotAllowed, fiber.StatusMethodNotAllowed},
		{errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, common.ErrorToStatusCode(tc.err), tc.err.Error())
	}
}

func TestWriteFailure(t *testing.T) {
	app := fiber.New()
	app.Get("/validation", func(c *fiber.Ctx) error { return common.WriteFailure(c, domain.ErrRequiredFieldsMissing) })
	app.Get("/persistence", func(c *fiber.Ctx) error {
		return common.WriteFailure(c, fmt.Errorf("%w: %w", domain.ErrAlreadyExists, domain.ErrPersistence))
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/validation", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/persistence", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	var env common.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, common.MsgUnknownServerError, env.Message)
	assert.Equal(t, "error", env.Status)
}

func TestLogFailure(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	common.LogFailure("Failed to create account", domain.ErrRequiredFieldsMissing)
	assert.Contains(t, buf.String(), "[Warn] Failed to create account: Required fields missing")
	assert.NotContains(t, buf.String(), "[Error]")

	buf.Reset()
	common.LogFailure("Failed to create account", fmt.Errorf("%w: %w", domain.ErrAlreadyExists, domain.ErrPersistence))
	assert.Contains(t, buf.String(), "[Error] Failed to create account")
}
