// Package ledger implements the double-entry bookkeeping engine: journal
// entry construction and validation, posting into the append-only
// transaction log, and aggregate rollups.
package ledger

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType carries the direction of a summary transaction.
type TransactionType string

const (
	TypeCredit TransactionType = "Credit"
	TypeDebit  TransactionType = "Debit"
)

// TransactionStatus enumerates transaction states.
type TransactionStatus string

const (
	StatusPosted  TransactionStatus = "Posted"
	StatusPending TransactionStatus = "Pending"
)

// Transaction is a row in the ledger feed. Created once, never mutated,
// only prepended to the log.
type Transaction struct {
	ID          string            `json:"id"`
	Date        time.Time         `json:"date"`
	Description string            `json:"description"`
	Amount      decimal.Decimal   `json:"amount"`
	Type        TransactionType   `json:"type"`
	Category    string            `json:"category"`
	Status      TransactionStatus `json:"status"`
}

// Posting is one leg of a posted journal entry. Every line of a posted
// entry is persisted as its own posting, preserving account, cost center,
// tax code, and direction; the entry reference ties the legs together.
type Posting struct {
	EntryRef    string          `json:"entryRef"`
	Date        time.Time       `json:"date"`
	AccountCode string          `json:"accountCode"`
	Description string          `json:"description"`
	CostCenter  string          `json:"costCenter,omitempty"`
	TaxCode     string          `json:"taxCode,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

var (
	// ErrUnbalanced indicates debits and credits differ beyond tolerance.
	ErrUnbalanced = errors.New("ledger: entry is not balanced")
	// ErrZeroAmount indicates there is nothing to post.
	ErrZeroAmount = errors.New("ledger: entry total is zero")
	// ErrLineConflict indicates a line carries both a debit and a credit.
	ErrLineConflict = errors.New("ledger: line cannot carry both debit and credit")
	// ErrNegativeAmount indicates a negative debit or credit.
	ErrNegativeAmount = errors.New("ledger: amounts must be non-negative")
	// ErrMissingAccount indicates an amount-bearing line without an account.
	ErrMissingAccount = errors.New("ledger: line is missing an account")
	// ErrUnknownAccount indicates the account code is not in the chart.
	ErrUnknownAccount = errors.New("ledger: unknown account code")
	// ErrLineNotFound indicates the line id does not exist on the entry.
	ErrLineNotFound = errors.New("ledger: line not found")
)

// Seed returns the opening transaction log, most recent first.
func Seed() []Transaction {
	day := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}
	return []Transaction{
		{ID: "JE-2023-10-001", Date: day("2023-10-26"), Description: "Tuition Payment Bulk - Batch A", Amount: decimal.NewFromInt(1250000000), Type: TypeCredit, Category: "4001 - Tuition Revenue", Status: StatusPosted},
		{ID: "JE-2023-10-002", Date: day("2023-10-25"), Description: "Vendor Payment: Tech Solutions Inc (PO-2023-001)", Amount: decimal.NewFromInt(375000000), Type: TypeDebit, Category: "2001 - Accounts Payable", Status: StatusPosted},
		{ID: "JE-2023-10-024", Date: day("2023-10-24"), Description: "Payroll Run: Oct 2023 (142 Employees)", Amount: decimal.NewFromInt(2850000000), Type: TypeDebit, Category: "5001 - Salary Expense", Status: StatusPending},
		{ID: "JE-2023-10-020", Date: day("2023-10-20"), Description: "Research Grant: Govt Ministry", Amount: decimal.NewFromInt(750000000), Type: TypeCredit, Category: "4100 - Grant Income", Status: StatusPosted},
		{ID: "JE-2023-10-018", Date: day("2023-10-18"), Description: "Utility Payment: PLN & Internet", Amount: decimal.NewFromInt(45000000), Type: TypeDebit, Category: "5200 - Utilities", Status: StatusPosted},
	}
}
