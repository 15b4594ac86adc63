package domain

import "time"

// MonthlyTrend aggregates one calendar month that has at least one
// transaction. Month is the first day of the month and doubles as the
// sort key.
type MonthlyTrend struct {
	Month    time.Time `json:"month"`
	Income   float64   `json:"income"`
	Expenses float64   `json:"expenses"` // absolute value
	Savings  float64   `json:"savings"`  // net, may be negative
}

// TransactionAnalysis is the full result of one ingestion run. The raw
// transaction list is included so consumers can re-derive anything not
// pre-aggregated.
type TransactionAnalysis struct {
	TotalIncome        float64            `json:"totalIncome"`
	TotalExpenses      float64            `json:"totalExpenses"`
	NetCashFlow        float64            `json:"netCashFlow"`
	SpendingByCategory map[string]float64 `json:"spendingByCategory"`
	MonthlyTrends      []MonthlyTrend     `json:"monthlyTrends"`
	Insights           []string           `json:"insights"`
	Transactions       []Transaction      `json:"transactions"`
}

// TransactionSummary holds per-category derived statistics. A category
// with no transactions in the current batch yields the zero value.
type TransactionSummary struct {
	TotalAmount        float64      `json:"totalAmount"`
	TransactionCount   int          `json:"transactionCount"`
	AverageAmount      float64      `json:"averageAmount"`
	FirstTransaction   time.Time    `json:"firstTransaction"`
	LastTransaction    time.Time    `json:"lastTransaction"`
	LargestTransaction *Transaction `json:"largestTransaction,omitempty"`
}
