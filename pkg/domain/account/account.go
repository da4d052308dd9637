// Package account holds the BankAccount entity and its closed enumerations.
package account

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/autoconnect/backend/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// balance is rendered as a JSON number, not a quoted string
	decimal.MarshalJSONWithoutQuotes = true
}

// BankName is one of the supported banks.
type BankName string

const (
	BankStateBankOfIndia BankName = "State Bank of India"
	BankHDFC             BankName = "HDFC Bank"
	BankICICI            BankName = "ICICI Bank"
	BankAxis             BankName = "Axis Bank"
	BankKotakMahindra    BankName = "Kotak Mahindra Bank"
	BankPunjabNational   BankName = "Punjab National Bank"
	BankOfBaroda         BankName = "Bank of Baroda"
	BankCanara           BankName = "Canara Bank"
	BankUnionBankOfIndia BankName = "Union Bank of India"
	BankIndusInd         BankName = "IndusInd Bank"
	BankYes              BankName = "Yes Bank"
	BankIDFCFirst        BankName = "IDFC First Bank"
)

// BankNames lists every accepted BankName.
var BankNames = []BankName{
	BankStateBankOfIndia,
	BankHDFC,
	BankICICI,
	BankAxis,
	BankKotakMahindra,
	BankPunjabNational,
	BankOfBaroda,
	BankCanara,
	BankUnionBankOfIndia,
	BankIndusInd,
	BankYes,
	BankIDFCFirst,
}

// Valid reports whether b is a known bank.
func (b BankName) Valid() bool {
	for _, n := range BankNames {
		if n == b {
			return true
		}
	}
	return false
}

// UnmarshalJSON rejects unknown bank names. An empty string decodes to the
// zero value so the required-field check can report it.
func (b *BankName) UnmarshalJSON(data []byte) error {
	s, err := decodeEnum(data)
	if err != nil {
		return err
	}
	v := BankName(s)
	if s != "" && !v.Valid() {
		return domain.NewValidationError("invalid bankName %q", s)
	}
	*b = v
	return nil
}

// Type is the kind of bank account.
type Type string

const (
	TypeSavings      Type = "Savings"
	TypeCurrent      Type = "Current"
	TypeSalary       Type = "Salary"
	TypeFixedDeposit Type = "Fixed Deposit"
	TypeNRI          Type = "NRI"
)

// Types lists every accepted account Type.
var Types = []Type{TypeSavings, TypeCurrent, TypeSalary, TypeFixedDeposit, TypeNRI}

// Valid reports whether t is a known account type.
func (t Type) Valid() bool {
	for _, v := range Types {
		if v == t {
			return true
		}
	}
	return false
}

func (t *Type) UnmarshalJSON(data []byte) error {
	s, err := decodeEnum(data)
	if err != nil {
		return err
	}
	v := Type(s)
	if s != "" && !v.Valid() {
		return domain.NewValidationError("invalid accountType %q", s)
	}
	*t = v
	return nil
}

// Status is the lifecycle state of a bank account.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
	StatusClosed   Status = "Closed"
	StatusFrozen   Status = "Frozen"
)

// Statuses lists every accepted Status.
var Statuses = []Status{StatusActive, StatusInactive, StatusClosed, StatusFrozen}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

func (s *Status) UnmarshalJSON(data []byte) error {
	raw, err := decodeEnum(data)
	if err != nil {
		return err
	}
	v := Status(raw)
	if raw != "" && !v.Valid() {
		return domain.NewValidationError("invalid status %q", raw)
	}
	*s = v
	return nil
}

func decodeEnum(data []byte) (string, error) {
	if string(data) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", domain.NewValidationError("enum value must be a string")
	}
	return s, nil
}

// BankAccount is a user's bank account record.
type BankAccount struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"userId"`
	BankName      BankName        `json:"bankName"`
	BranchName    string          `json:"branchName"`
	AccountNumber string          `json:"accountNumber"`
	CardNumber    string          `json:"cardNumber"`
	AccountType   Type            `json:"accountType"`
	Status        Status          `json:"status"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// NewParams are the inputs to New. Status and Balance are optional.
type NewParams struct {
	UserID        uuid.UUID
	BankName      BankName
	BranchName    string
	AccountNumber string
	CardNumber    string
	AccountType   Type
	Status        Status
	Balance       *decimal.Decimal
}

// New builds a validated BankAccount. Status defaults to Active and Balance to 0.
func New(p NewParams) (*BankAccount, error) {
	now := time.Now().UTC()
	a := &BankAccount{
		ID:            uuid.New(),
		UserID:        p.UserID,
		BankName:      p.BankName,
		BranchName:    strings.TrimSpace(p.BranchName),
		AccountNumber: strings.TrimSpace(p.AccountNumber),
		CardNumber:    strings.TrimSpace(p.CardNumber),
		AccountType:   p.AccountType,
		Status:        p.Status,
		Balance:       decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if a.Status == "" {
		a.Status = StatusActive
	}
	if p.Balance != nil {
		a.Balance = *p.Balance
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks the required fields and enum constraints.
func (a *BankAccount) Validate() error {
	if a.UserID == uuid.Nil || a.BankName == "" || a.BranchName == "" ||
		a.AccountNumber == "" || a.CardNumber == "" || a.AccountType == "" {
		return domain.ErrRequiredFieldsMissing
	}
	if !a.BankName.Valid() {
		return domain.NewValidationError("invalid bankName %q", a.BankName)
	}
	if !a.AccountType.Valid() {
		return domain.NewValidationError("invalid accountType %q", a.AccountType)
	}
	if !a.Status.Valid() {
		return domain.NewValidationError("invalid status %q", a.Status)
	}
	return nil
}

// Update holds the fields a caller may change. Nil fields are left as is.
type Update struct {
	BankName      *BankName
	BranchName    *string
	AccountNumber *string
	CardNumber    *string
	AccountType   *Type
	Status        *Status
	Balance       *decimal.Decimal
}

// Apply merges u into a and re-validates. a is left untouched on error.
func (a *BankAccount) Apply(u Update) error {
	next := *a
	if u.BankName != nil {
		next.BankName = *u.BankName
	}
	if u.BranchName != nil {
		next.BranchName = strings.TrimSpace(*u.BranchName)
	}
	if u.AccountNumber != nil {
		next.AccountNumber = strings.TrimSpace(*u.AccountNumber)
	}
	if u.CardNumber != nil {
		next.CardNumber = strings.TrimSpace(*u.CardNumber)
	}
	if u.AccountType != nil {
		next.AccountType = *u.AccountType
	}
	if u.Status != nil {
		next.Status = *u.Status
	}
	if u.Balance != nil {
		next.Balance = *u.Balance
	}
	if err := next.Validate(); err != nil {
		return err
	}
	next.UpdatedAt = time.Now().UTC()
	*a = next
	return nil
}
