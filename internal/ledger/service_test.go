package ledger

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/shared"
)

type stubDirectory map[string]bool

func (d stubDirectory) Exists(_ context.Context, code string) (bool, error) {
	return d[code], nil
}

func newTestService(repo Repository) *Service {
	dir := stubDirectory{"1001": true, "2001": true, "4001": true, "5100": true, "5200": true}
	svc := NewService(repo, dir, shared.NewSequence(0), nil, slog.Default())
	svc.WithNow(func() time.Time { return time.Date(2023, 10, 27, 9, 0, 0, 0, time.UTC) })
	return svc
}

func TestPostBalancedEntry(t *testing.T) {
	repo := NewMemoryRepository(Seed())
	svc := newTestService(repo)
	ctx := context.Background()

	e := NewEntry(time.Time{})
	require.NoError(t, e.UpdateLine(1, LinePatch{
		AccountCode: ptr("5100"),
		Description: ptr("Honorarium Dosen Tamu"),
		CostCenter:  ptr("CC-100"),
		Debit:       decPtr("500000"),
	}))
	require.NoError(t, e.UpdateLine(2, LinePatch{
		AccountCode: ptr("1001"),
		Credit:      decPtr("500000"),
	}))

	tx, err := svc.Post(ctx, e)
	require.NoError(t, err)
	require.Equal(t, "JE-2023-0001", tx.ID)
	require.Equal(t, "Honorarium Dosen Tamu", tx.Description)
	require.True(t, decimal.NewFromInt(500000).Equal(tx.Amount))
	require.Equal(t, TypeDebit, tx.Type)
	require.Equal(t, "Manual Adjustment", tx.Category)
	require.Equal(t, StatusPosted, tx.Status)

	feed, err := svc.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, feed, len(Seed())+1)
	require.Equal(t, tx.ID, feed[0].ID, "new transactions prepend to the feed")

	postings, err := svc.Postings(ctx, tx.ID)
	require.NoError(t, err)
	require.Len(t, postings, 2)
	require.Equal(t, "5100", postings[0].AccountCode)
	require.Equal(t, "CC-100", postings[0].CostCenter)
	require.True(t, postings[1].Credit.Equal(decimal.NewFromInt(500000)))

	// The working entry resets after a successful post.
	require.Empty(t, e.Ref)
	require.Len(t, e.Lines, 2)
	require.True(t, e.Lines[0].Debit.IsZero())
}

func TestPostDescriptionFallback(t *testing.T) {
	repo := NewMemoryRepository(nil)
	svc := newTestService(repo)

	e := NewEntryWith("", time.Time{}, []Line{
		{AccountCode: "5200", Debit: dec("100000")},
		{AccountCode: "1001", Credit: dec("100000")},
	})
	tx, err := svc.Post(context.Background(), e)
	require.NoError(t, err)
	require.Equal(t, "Manual Journal Entry", tx.Description)
}

func TestPostRejectsUnbalanced(t *testing.T) {
	repo := NewMemoryRepository(Seed())
	svc := newTestService(repo)
	ctx := context.Background()

	e := NewEntryWith("", time.Time{}, []Line{
		{AccountCode: "5100", Debit: dec("500000")},
		{AccountCode: "1001", Credit: dec("300000")},
	})
	_, err := svc.Post(ctx, e)
	require.ErrorIs(t, err, ErrUnbalanced)

	feed, err := svc.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, feed, len(Seed()), "failed post must leave no partial state")
	require.Len(t, e.Lines, 2, "failed post keeps the working entry intact")
}

func TestPostRejectsZeroTotal(t *testing.T) {
	svc := newTestService(NewMemoryRepository(nil))
	_, err := svc.Post(context.Background(), NewEntry(time.Time{}))
	require.ErrorIs(t, err, ErrZeroAmount)
}

func TestPostRejectsDebitAndCreditOnOneLine(t *testing.T) {
	repo := NewMemoryRepository(nil)
	svc := newTestService(repo)

	e := NewEntryWith("", time.Time{}, []Line{
		{AccountCode: "5100", Debit: dec("200000"), Credit: dec("200000")},
		{AccountCode: "1001"},
	})
	_, err := svc.Post(context.Background(), e)
	require.ErrorIs(t, err, ErrLineConflict)

	postings, err := svc.Postings(context.Background(), "JE-2023-0001")
	require.NoError(t, err)
	require.Empty(t, postings)
}

func TestPostRejectsUnknownAndMissingAccounts(t *testing.T) {
	svc := newTestService(NewMemoryRepository(nil))
	ctx := context.Background()

	e := NewEntryWith("", time.Time{}, []Line{
		{AccountCode: "9999", Debit: dec("100000")},
		{AccountCode: "1001", Credit: dec("100000")},
	})
	_, err := svc.Post(ctx, e)
	require.ErrorIs(t, err, ErrUnknownAccount)

	e = NewEntryWith("", time.Time{}, []Line{
		{Debit: dec("100000")},
		{AccountCode: "1001", Credit: dec("100000")},
	})
	_, err = svc.Post(ctx, e)
	require.ErrorIs(t, err, ErrMissingAccount)
}

func TestPostSkipsBlankFillerLines(t *testing.T) {
	svc := newTestService(NewMemoryRepository(nil))

	// Two filled rows plus the untouched filler rows a form submits.
	e := NewEntryWith("JE-MANUAL-1", time.Time{}, []Line{
		{AccountCode: "5100", Debit: dec("750000")},
		{AccountCode: "1001", Credit: dec("750000")},
		{},
		{},
	})
	tx, err := svc.Post(context.Background(), e)
	require.NoError(t, err)
	require.Equal(t, "JE-MANUAL-1", tx.ID)

	postings, err := svc.Postings(context.Background(), tx.ID)
	require.NoError(t, err)
	require.Len(t, postings, 2)
}

func TestAggregates(t *testing.T) {
	txs := Seed()
	credit := Sum(txs, ByType(TypeCredit))
	debit := Sum(txs, ByType(TypeDebit))
	require.True(t, credit.GreaterThan(decimal.Zero))
	require.True(t, debit.GreaterThan(decimal.Zero))
	require.Equal(t, len(txs), Count(txs, nil))
	require.Equal(t, 1, Count(txs, ByStatus(StatusPending)))
}

func ptr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}
