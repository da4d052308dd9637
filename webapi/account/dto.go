package account

import (
	"github.com/autoconnect/backend/pkg/domain/account"
	"github.com/shopspring/decimal"
)

//revive:disable

// CreateAccountRequest is the body of POST /api/accounts/add-account.
// The owner is the authenticated user.
type CreateAccountRequest struct {
	BankName      account.BankName `json:"bankName" validate:"required"`
	BranchName    string           `json:"branchName" validate:"required,max=255"`
	AccountNumber string           `json:"accountNumber" validate:"required,max=64"`
	CardNumber    string           `json:"cardNumber" validate:"required,max=32"`
	AccountType   account.Type     `json:"accountType" validate:"required"`
	Status        account.Status   `json:"status"`
	Balance       *decimal.Decimal `json:"balance"`
}

// UpdateAccountRequest is the body of PUT /api/accounts/:id. Only supplied
// fields are changed.
type UpdateAccountRequest struct {
	BankName      *account.BankName `json:"bankName"`
	BranchName    *string           `json:"branchName"`
	AccountNumber *string           `json:"accountNumber"`
	CardNumber    *string           `json:"cardNumber"`
	AccountType   *account.Type     `json:"accountType"`
	Status        *account.Status   `json:"status"`
	Balance       *decimal.Decimal  `json:"balance"`
}

// CreateAccountResponse is the 201 body.
type CreateAccountResponse struct {
	Message string               `json:"message"`
	Account *account.BankAccount `json:"account"`
}

func (r *UpdateAccountRequest) toUpdate() account.Update {
	return account.Update{
		BankName:      r.BankName,
		BranchName:    r.BranchName,
		AccountNumber: r.AccountNumber,
		CardNumber:    r.CardNumber,
		AccountType:   r.AccountType,
		Status:        r.Status,
		Balance:       r.Balance,
	}
}
