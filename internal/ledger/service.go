package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/shared"
)

// AccountDirectory resolves chart-of-accounts codes.
type AccountDirectory interface {
	Exists(ctx context.Context, code string) (bool, error)
}

// Service validates and posts journal entries into the transaction log.
type Service struct {
	repo     Repository
	accounts AccountDirectory
	seq      *shared.Sequence
	audit    shared.AuditRecorder
	logger   *slog.Logger
	now      func() time.Time
}

func NewService(repo Repository, accounts AccountDirectory, seq *shared.Sequence, audit shared.AuditRecorder, logger *slog.Logger) *Service {
	return &Service{repo: repo, accounts: accounts, seq: seq, audit: audit, logger: logger, now: time.Now}
}

// WithNow overrides the clock, for tests.
func (s *Service) WithNow(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Post validates the entry and commits it: one posting per amount-bearing
// line plus a summary transaction for the feed (amount = total debit, type
// Debit). On success the working entry is cleared back to the two-line
// default. All failures are validation failures; there is no partial-post
// state.
func (s *Service) Post(ctx context.Context, e *Entry) (Transaction, error) {
	debit, _ := e.Totals()
	if !e.IsBalanced() {
		return Transaction{}, ErrUnbalanced
	}
	if debit.IsZero() {
		return Transaction{}, ErrZeroAmount
	}

	ref := e.Ref
	if ref == "" {
		ref = fmt.Sprintf("JE-%d-%04d", s.now().Year(), s.seq.Next())
	}
	date := e.Date
	if date.IsZero() {
		date = s.now()
	}

	postings, err := s.buildPostings(ctx, e, ref, date)
	if err != nil {
		return Transaction{}, err
	}

	description := "Manual Journal Entry"
	if len(e.Lines) > 0 && e.Lines[0].Description != "" {
		description = e.Lines[0].Description
	}
	tx := Transaction{
		ID:          ref,
		Date:        date,
		Description: description,
		Amount:      debit,
		Type:        TypeDebit,
		Category:    "Manual Adjustment",
		Status:      StatusPosted,
	}

	err = s.repo.WithTx(ctx, func(ctx context.Context, store TxRepository) error {
		if err := store.InsertTransaction(ctx, tx); err != nil {
			return err
		}
		return store.InsertPostings(ctx, postings)
	})
	if err != nil {
		return Transaction{}, err
	}

	e.Reset()
	if s.audit != nil {
		_ = s.audit.Record(ctx, shared.AuditLog{
			Action:   "journal.post",
			Entity:   "journal_entry",
			EntityID: ref,
			Meta:     map[string]any{"amount": debit.String(), "legs": len(postings)},
			At:       s.now(),
		})
	}
	return tx, nil
}

// buildPostings turns the entry's lines into ledger postings. Blank filler
// lines (no amounts, no account) are skipped; every amount-bearing line
// must name a known account and carry exactly one of debit/credit.
func (s *Service) buildPostings(ctx context.Context, e *Entry, ref string, date time.Time) ([]Posting, error) {
	var postings []Posting
	for _, line := range e.Lines {
		hasDebit := !line.Debit.IsZero()
		hasCredit := !line.Credit.IsZero()
		if !hasDebit && !hasCredit && line.AccountCode == "" {
			continue
		}
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return nil, fmt.Errorf("%w: line %d", ErrNegativeAmount, line.ID)
		}
		if hasDebit && hasCredit {
			return nil, fmt.Errorf("%w: line %d", ErrLineConflict, line.ID)
		}
		if line.AccountCode == "" {
			return nil, fmt.Errorf("%w: line %d", ErrMissingAccount, line.ID)
		}
		if s.accounts != nil {
			ok, err := s.accounts.Exists(ctx, line.AccountCode)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, line.AccountCode)
			}
		}
		postings = append(postings, Posting{
			EntryRef:    ref,
			Date:        date,
			AccountCode: line.AccountCode,
			Description: line.Description,
			CostCenter:  line.CostCenter,
			TaxCode:     line.TaxCode,
			Debit:       line.Debit,
			Credit:      line.Credit,
		})
	}
	return postings, nil
}

// Transactions returns the ledger feed, most recent first.
func (s *Service) Transactions(ctx context.Context) ([]Transaction, error) {
	return s.repo.ListTransactions(ctx)
}

// Postings returns the individual legs recorded for a posted entry.
func (s *Service) Postings(ctx context.Context, entryRef string) ([]Posting, error) {
	return s.repo.ListPostings(ctx, entryRef)
}
