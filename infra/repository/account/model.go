package account

import (
	"time"

	"github.com/autoconnect/backend/pkg/domain/account"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account represents a bank account row.
type Account struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	BankName      string          `gorm:"size:64;not null"`
	BranchName    string          `gorm:"size:255;not null"`
	AccountNumber string          `gorm:"size:64;not null"`
	CardNumber    string          `gorm:"size:32;not null"`
	AccountType   string          `gorm:"size:32;not null"`
	Status        string          `gorm:"size:16;not null;default:Active"`
	Balance       decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "bank_accounts"
}

func fromDomain(a *account.BankAccount) *Account {
	return &Account{
		ID:            a.ID,
		UserID:        a.UserID,
		BankName:      string(a.BankName),
		BranchName:    a.BranchName,
		AccountNumber: a.AccountNumber,
		CardNumber:    a.CardNumber,
		AccountType:   string(a.AccountType),
		Status:        string(a.Status),
		Balance:       a.Balance,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func (m *Account) toDomain() *account.BankAccount {
	return &account.BankAccount{
		ID:            m.ID,
		UserID:        m.UserID,
		BankName:      account.BankName(m.BankName),
		BranchName:    m.BranchName,
		AccountNumber: m.AccountNumber,
		CardNumber:    m.CardNumber,
		AccountType:   account.Type(m.AccountType),
		Status:        account.Status(m.Status),
		Balance:       m.Balance,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
