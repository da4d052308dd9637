package account_test

import (
	"encoding/json"
	"testing"

	"github.com/autoconnect/backend/pkg/domain"
	"github.com/autoconnect/backend/pkg/domain/account"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() account.NewParams {
	return account.NewParams{
		UserID:        uuid.New(),
		BankName:      account.BankHDFC,
		BranchName:    "Andheri West",
		AccountNumber: "50100234567890",
		CardNumber:    "4111111111111111",
		AccountType:   account.TypeSavings,
	}
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()
	acc, err := account.New(validParams())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, acc.ID)
	assert.Equal(t, account.StatusActive, acc.Status)
	assert.True(t, acc.Balance.IsZero())
	assert.False(t, acc.CreatedAt.IsZero())
}

func TestNew_KeepsSuppliedStatusAndBalance(t *testing.T) {
	t.Parallel()
	p := validParams()
	p.Status = account.StatusFrozen
	bal := decimal.RequireFromString("1250.75")
	p.Balance = &bal

	acc, err := account.New(p)
	require.NoError(t, err)
	assert.Equal(t, account.StatusFrozen, acc.Status)
	assert.True(t, bal.Equal(acc.Balance))
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		mutate   func(*account.NewParams)
		required bool
	}{
		{"missing user", func(p *account.NewParams) { p.UserID = uuid.Nil }, true},
		{"missing bank", func(p *account.NewParams) { p.BankName = "" }, true},
		{"blank branch", func(p *account.NewParams) { p.BranchName = "   " }, true},
		{"missing account number", func(p *account.NewParams) { p.AccountNumber = "" }, true},
		{"missing card number", func(p *account.NewParams) { p.CardNumber = "" }, true},
		{"missing type", func(p *account.NewParams) { p.AccountType = "" }, true},
		{"unknown bank", func(p *account.NewParams) { p.BankName = "Foo Bank" }, false},
		{"unknown type", func(p *account.NewParams) { p.AccountType = "Checking" }, false},
		{"unknown status", func(p *account.NewParams) { p.Status = "Dormant" }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := validParams()
			tc.mutate(&p)
			acc, err := account.New(p)
			assert.Nil(t, acc)
			assert.ErrorIs(t, err, domain.ErrValidation)
			if tc.required {
				assert.ErrorIs(t, err, domain.ErrRequiredFieldsMissing)
			} else {
				assert.NotErrorIs(t, err, domain.ErrRequiredFieldsMissing)
			}
		})
	}
}

func TestEnums_UnmarshalJSON(t *testing.T) {
	t.Parallel()
	var body struct {
		BankName    account.BankName `json:"bankName"`
		AccountType account.Type     `json:"accountType"`
		Status      account.Status   `json:"status"`
	}

	err := json.Unmarshal([]byte(`{"bankName":"Yes Bank","accountType":"Fixed Deposit","status":"Closed"}`), &body)
	require.NoError(t, err)
	assert.Equal(t, account.BankYes, body.BankName)
	assert.Equal(t, account.TypeFixedDeposit, body.AccountType)
	assert.Equal(t, account.StatusClosed, body.Status)

	err = json.Unmarshal([]byte(`{"bankName":"Foo Bank"}`), &body)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "Foo Bank")

	err = json.Unmarshal([]byte(`{"accountType":"Checking"}`), &body)
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = json.Unmarshal([]byte(`{"status":42}`), &body)
	assert.ErrorIs(t, err, domain.ErrValidation)

	var empty struct {
		BankName account.BankName `json:"bankName"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"bankName":""}`), &empty))
	assert.Empty(t, empty.BankName)
}

func TestBankAccount_MarshalJSON(t *testing.T) {
	t.Parallel()
	p := validParams()
	bal := decimal.RequireFromString("99.5")
	p.Balance = &bal
	acc, err := account.New(p)
	require.NoError(t, err)

	raw, err := json.Marshal(acc)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, 99.5, out["balance"])
	assert.Equal(t, "HDFC Bank", out["bankName"])
	assert.Equal(t, "Active", out["status"])
	assert.Contains(t, out, "accountNumber")
	assert.Contains(t, out, "userId")
}

func TestApply(t *testing.T) {
	t.Parallel()
	acc, err := account.New(validParams())
	require.NoError(t, err)
	original := *acc

	branch := "Bandra"
	status := account.StatusInactive
	require.NoError(t, acc.Apply(account.Update{BranchName: &branch, Status: &status}))
	assert.Equal(t, "Bandra", acc.BranchName)
	assert.Equal(t, account.StatusInactive, acc.Status)
	assert.Equal(t, original.AccountNumber, acc.AccountNumber)
	assert.Equal(t, original.BankName, acc.BankName)

	bad := account.Type("Checking")
	err = acc.Apply(account.Update{AccountType: &bad})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, account.TypeSavings, acc.AccountType, "failed update must not mutate")

	blank := ""
	err = acc.Apply(account.Update{CardNumber: &blank})
	assert.ErrorIs(t, err, domain.ErrRequiredFieldsMissing)
	assert.Equal(t, original.CardNumber, acc.CardNumber)
}
