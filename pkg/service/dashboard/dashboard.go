// Package dashboard serves the dashboard statistics. The figures are a fixed
// sample payload; nothing is aggregated from stored data yet.
package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Totals struct {
	Balance  decimal.Decimal `json:"totalBalance"`
	Income   decimal.Decimal `json:"totalIncome"`
	Expenses decimal.Decimal `json:"totalExpenses"`
	Savings  decimal.Decimal `json:"totalSavings"`
}

type MonthlyPoint struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

type CategoryShare struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Color  string          `json:"color"`
}

type Transaction struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Type     string          `json:"type"`
	Date     string          `json:"date"`
}

// Stats is the GET /api/v1/dashboard payload.
type Stats struct {
	Totals             Totals          `json:"totals"`
	Monthly            []MonthlyPoint  `json:"monthly"`
	Categories         []CategoryShare `json:"categories"`
	RecentTransactions []Transaction   `json:"recentTransactions"`
}

type Service struct{}

func New() *Service { return &Service{} }

var (
	monthlyIncome  = []int64{42000, 45000, 43500, 47000, 52000, 49000, 51000, 53500, 50000, 55000, 58000, 60000}
	monthlyExpense = []int64{31000, 29500, 33000, 30500, 34000, 36500, 32000, 35000, 33500, 37000, 38500, 41000}
)

// Stats returns the sample dashboard payload.
func (s *Service) Stats(_ context.Context) *Stats {
	monthly := make([]MonthlyPoint, 0, 12)
	var income, expense decimal.Decimal
	for i := range 12 {
		in := decimal.NewFromInt(monthlyIncome[i])
		out := decimal.NewFromInt(monthlyExpense[i])
		income = income.Add(in)
		expense = expense.Add(out)
		monthly = append(monthly, MonthlyPoint{
			Month:   time.Month(i + 1).String()[:3],
			Income:  in,
			Expense: out,
		})
	}

	return &Stats{
		Totals: Totals{
			Balance:  decimal.RequireFromString("245750.50"),
			Income:   income,
			Expenses: expense,
			Savings:  income.Sub(expense),
		},
		Monthly: monthly,
		Categories: []CategoryShare{
			{Name: "Fuel", Amount: decimal.NewFromInt(48500), Color: "#f97316"},
			{Name: "Servicing", Amount: decimal.NewFromInt(36200), Color: "#0ea5e9"},
			{Name: "Insurance", Amount: decimal.NewFromInt(54000), Color: "#22c55e"},
			{Name: "EMI", Amount: decimal.NewFromInt(180000), Color: "#a855f7"},
			{Name: "Accessories", Amount: decimal.NewFromInt(14800), Color: "#eab308"},
			{Name: "Other", Amount: decimal.NewFromInt(79000), Color: "#64748b"},
		},
		RecentTransactions: []Transaction{
			{ID: "txn-1001", Title: "Salary", Category: "Income", Amount: decimal.NewFromInt(60000), Type: "income", Date: "2024-12-01"},
			{ID: "txn-1002", Title: "Car EMI", Category: "EMI", Amount: decimal.NewFromInt(15000), Type: "expense", Date: "2024-12-03"},
			{ID: "txn-1003", Title: "Fuel refill", Category: "Fuel", Amount: decimal.RequireFromString("3250.75"), Type: "expense", Date: "2024-12-05"},
			{ID: "txn-1004", Title: "Periodic service", Category: "Servicing", Amount: decimal.NewFromInt(6800), Type: "expense", Date: "2024-12-09"},
			{ID: "txn-1005", Title: "Used parts sale", Category: "Income", Amount: decimal.NewFromInt(4200), Type: "income", Date: "2024-12-12"},
		},
	}
}
