// Package testutils runs the full HTTP stack against an in-memory SQLite
// database with mocked third-party providers.
package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/autoconnect/backend/infra"
	infraaccount "github.com/autoconnect/backend/infra/repository/account"
	infracategory "github.com/autoconnect/backend/infra/repository/category"
	"github.com/autoconnect/backend/infra/repository/repotest"
	infrauser "github.com/autoconnect/backend/infra/repository/user"
	"github.com/autoconnect/backend/internal/fixtures"
	"github.com/autoconnect/backend/pkg/app"
	"github.com/autoconnect/backend/pkg/config"
	"github.com/autoconnect/backend/pkg/domain/user"
	"github.com/autoconnect/backend/pkg/utils"
	"github.com/autoconnect/backend/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TestPassword is the password of every user made by CreateTestUser.
const TestPassword = "password123"

// E2ETestSuite wires webapi.SetupApp to a fresh database per test.
type E2ETestSuite struct {
	suite.Suite
	DB      *gorm.DB
	App     *fiber.App
	Cfg     *config.App
	Payment *fixtures.MockPayment
	OCR     *fixtures.MockOCRReader
	LLM     *fixtures.MockCompleter
	Mailer  *fixtures.MockMailSender
}

// NewTestConfig returns a config good enough to build the app in tests.
func NewTestConfig() *config.App {
	return &config.App{
		Env:         "test",
		FrontendURL: "http://localhost:5173",
		Server:      &config.Server{Scheme: "http", Host: "localhost", Port: 5000},
		Log:         &config.Log{Format: "text"},
		DB:          &config.DB{Driver: "sqlite", Url: "file::memory:"},
		Auth:        &config.Auth{Jwt: &config.Jwt{Secret: "test-secret", Expiry: time.Hour}},
		Redis:       &config.Redis{},
		RateLimit:   &config.RateLimit{MaxRequests: 10000, Window: time.Minute},
		PaymentProviders: &config.PaymentProviders{
			Stripe: &config.Stripe{Currency: "inr"},
		},
		SMTP:   &config.SMTP{From: "noreply@autoconnect.test"},
		Vision: &config.Vision{},
		LLM:    &config.LLM{},
	}
}

func (s *E2ETestSuite) SetupSuite() {
	utils.PasswordCost = utils.MinPasswordCost
}

// SetupTest builds a fresh database, mocks and app for every test.
func (s *E2ETestSuite) SetupTest() {
	t := s.T()
	s.DB = repotest.NewSQLite(t)
	s.Require().NoError(infra.AutoMigrate(s.DB))

	s.Cfg = NewTestConfig()
	s.Payment = fixtures.NewMockPayment(t)
	s.OCR = fixtures.NewMockOCRReader(t)
	s.LLM = fixtures.NewMockCompleter(t)
	s.Mailer = fixtures.NewMockMailSender(t)

	deps := &app.Deps{
		AccountRepo:     infraaccount.New(s.DB),
		CategoryRepo:    infracategory.New(s.DB),
		UserRepo:        infrauser.New(s.DB),
		PaymentProvider: s.Payment,
		OCR:             s.OCR,
		LLM:             s.LLM,
		Mailer:          s.Mailer,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	s.App = webapi.SetupApp(app.New(deps, s.Cfg))
}

// MakeRequest is a helper for making HTTP requests in tests
func (s *E2ETestSuite) MakeRequest(method, path, body, token string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	return s.Do(req, token)
}

// MakeUpload posts file as the multipart field name.
func (s *E2ETestSuite) MakeUpload(path, field string, file []byte, token string) *http.Response {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if file != nil {
		part, err := w.CreateFormFile(field, "receipt.jpg")
		s.Require().NoError(err)
		_, err = part.Write(file)
		s.Require().NoError(err)
	} else {
		s.Require().NoError(w.WriteField("note", "no file"))
	}
	s.Require().NoError(w.Close())

	req := httptest.NewRequest(fiber.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return s.Do(req, token)
}

// Do sends req with an optional bearer token.
func (s *E2ETestSuite) Do(req *http.Request, token string) *http.Response {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.App.Test(req, -1)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

// DecodeJSON reads resp's body into out.
func (s *E2ETestSuite) DecodeJSON(resp *http.Response, out any) {
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
}

// CreateTestUser registers a unique user through the API.
func (s *E2ETestSuite) CreateTestUser() *user.User {
	randomID := uuid.New().String()[:8]
	body := fmt.Sprintf(
		`{"username":"testuser_%s","email":"test_%s@example.com","password":"%s","names":"Test User"}`,
		randomID, randomID, TestPassword,
	)
	resp := s.MakeRequest(fiber.MethodPost, "/api/auth/register", body, "")
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)

	var out struct {
		User *user.User `json:"user"`
	}
	s.DecodeJSON(resp, &out)
	s.Require().NotNil(out.User)
	return out.User
}

// LoginUser logs u in through the API and returns the JWT.
func (s *E2ETestSuite) LoginUser(u *user.User) string {
	body := fmt.Sprintf(`{"identity":"%s","password":"%s"}`, u.Email, TestPassword)
	resp := s.MakeRequest(fiber.MethodPost, "/api/auth/login", body, "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	var out struct {
		Token string `json:"token"`
	}
	s.DecodeJSON(resp, &out)
	s.Require().NotEmpty(out.Token)
	return out.Token
}

// CreateTestUserWithToken registers and logs in a fresh user.
func (s *E2ETestSuite) CreateTestUserWithToken() (*user.User, string) {
	u := s.CreateTestUser()
	return u, s.LoginUser(u)
}
