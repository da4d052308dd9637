// Package fixtures holds testify mocks of the repository and provider
// interfaces, shared by service and handler tests.
package fixtures

import (
	"context"
	"encoding/json"

	"github.com/autoconnect/backend/pkg/domain/account"
	"github.com/autoconnect/backend/pkg/domain/category"
	"github.com/autoconnect/backend/pkg/domain/user"
	"github.com/autoconnect/backend/pkg/provider/mail"
	"github.com/autoconnect/backend/pkg/provider/payment"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type tHelper interface {
	mock.TestingT
	Cleanup(func())
}

// MockAccountRepository mocks pkg/repository/account.Repository.
type MockAccountRepository struct {
	mock.Mock
}

func NewMockAccountRepository(t tHelper) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccountRepository) Create(ctx context.Context, acc *account.BankAccount) error {
	return m.Called(ctx, acc).Error(0)
}

func (m *MockAccountRepository) Get(ctx context.Context, id uuid.UUID) (*account.BankAccount, error) {
	args := m.Called(ctx, id)
	acc, _ := args.Get(0).(*account.BankAccount)
	return acc, args.Error(1)
}

func (m *MockAccountRepository) List(ctx context.Context) ([]*account.BankAccount, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*account.BankAccount)
	return list, args.Error(1)
}

func (m *MockAccountRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*account.BankAccount, error) {
	args := m.Called(ctx, userID)
	list, _ := args.Get(0).([]*account.BankAccount)
	return list, args.Error(1)
}

func (m *MockAccountRepository) Update(ctx context.Context, acc *account.BankAccount) error {
	return m.Called(ctx, acc).Error(0)
}

func (m *MockAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockCategoryRepository mocks pkg/repository/category.Repository.
type MockCategoryRepository struct {
	mock.Mock
}

func NewMockCategoryRepository(t tHelper) *MockCategoryRepository {
	m := &MockCategoryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCategoryRepository) Create(ctx context.Context, c *category.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCategoryRepository) Get(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*category.Category)
	return c, args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*category.Category)
	return list, args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, c *category.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockUserRepository mocks pkg/repository/user.Repository.
type MockUserRepository struct {
	mock.Mock
}

func NewMockUserRepository(t tHelper) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByIdentity(ctx context.Context, identity string) (*user.User, error) {
	args := m.Called(ctx, identity)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

// MockPayment mocks payment.Payment.
type MockPayment struct {
	mock.Mock
}

func NewMockPayment(t tHelper) *MockPayment {
	m := &MockPayment{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPayment) CreateSession(ctx context.Context, params *payment.SessionParams) (*payment.Session, error) {
	args := m.Called(ctx, params)
	s, _ := args.Get(0).(*payment.Session)
	return s, args.Error(1)
}

func (m *MockPayment) HandleWebhook(ctx context.Context, payload []byte, signature string) (*payment.PaymentEvent, error) {
	args := m.Called(ctx, payload, signature)
	ev, _ := args.Get(0).(*payment.PaymentEvent)
	return ev, args.Error(1)
}

// MockOCRReader mocks ocr.Reader.
type MockOCRReader struct {
	mock.Mock
}

func NewMockOCRReader(t tHelper) *MockOCRReader {
	m := &MockOCRReader{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockOCRReader) ReadText(ctx context.Context, image []byte) (string, error) {
	args := m.Called(ctx, image)
	return args.String(0), args.Error(1)
}

// MockCompleter mocks llm.Completer.
type MockCompleter struct {
	mock.Mock
}

func NewMockCompleter(t tHelper) *MockCompleter {
	m := &MockCompleter{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCompleter) CompleteJSON(ctx context.Context, system, user string) (json.RawMessage, error) {
	args := m.Called(ctx, system, user)
	out, _ := args.Get(0).(json.RawMessage)
	return out, args.Error(1)
}

// MockMailSender mocks mail.Sender.
type MockMailSender struct {
	mock.Mock
}

func NewMockMailSender(t tHelper) *MockMailSender {
	m := &MockMailSender{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockMailSender) Send(ctx context.Context, msg mail.Message) mail.Result {
	return m.Called(ctx, msg).Get(0).(mail.Result)
}
