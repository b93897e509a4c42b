package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Line is a single debit/credit row on a journal entry being assembled.
type Line struct {
	ID          int64           `json:"id"`
	AccountCode string          `json:"accountCode"`
	Description string          `json:"description"`
	CostCenter  string          `json:"costCenter"`
	TaxCode     string          `json:"taxCode"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// Entry is a proposed, not-yet-posted journal entry. Line order is
// meaningful: the first line's description seeds the posted transaction's
// description.
type Entry struct {
	Ref    string    `json:"ref"`
	Date   time.Time `json:"date"`
	Lines  []Line    `json:"lines"`
	lastID int64
}

// balanceTolerance is one currency unit, absolute regardless of entry
// magnitude.
var balanceTolerance = decimal.NewFromInt(1)

// NewEntry returns a working entry with the default two blank lines.
func NewEntry(date time.Time) *Entry {
	e := &Entry{Date: date}
	e.AddLine()
	e.AddLine()
	return e
}

// NewEntryWith builds an entry from already-assembled lines. Line ids are
// kept when positive and otherwise assigned in order.
func NewEntryWith(ref string, date time.Time, lines []Line) *Entry {
	e := &Entry{Ref: ref, Date: date}
	for _, line := range lines {
		if line.ID > e.lastID {
			e.lastID = line.ID
		}
	}
	for _, line := range lines {
		if line.ID <= 0 {
			e.lastID++
			line.ID = e.lastID
		}
		e.Lines = append(e.Lines, line)
	}
	return e
}

// AddLine appends a blank line with a fresh id strictly greater than any id
// previously issued on this entry, even across removals.
func (e *Entry) AddLine() *Line {
	e.lastID++
	e.Lines = append(e.Lines, Line{ID: e.lastID})
	return &e.Lines[len(e.Lines)-1]
}

// RemoveLine deletes the line with the given id. Removing every line is
// allowed; the resulting zero-total entry is simply not postable.
func (e *Entry) RemoveLine(id int64) bool {
	for i, line := range e.Lines {
		if line.ID == id {
			e.Lines = append(e.Lines[:i], e.Lines[i+1:]...)
			return true
		}
	}
	return false
}

// LinePatch sets individual fields on a line; nil fields are untouched. No
// cross-field recomputation happens: selecting a tax code does not adjust
// amounts.
type LinePatch struct {
	AccountCode *string
	Description *string
	CostCenter  *string
	TaxCode     *string
	Debit       *decimal.Decimal
	Credit      *decimal.Decimal
}

// UpdateLine applies the patch to the identified line.
func (e *Entry) UpdateLine(id int64, patch LinePatch) error {
	for i := range e.Lines {
		if e.Lines[i].ID != id {
			continue
		}
		line := &e.Lines[i]
		if patch.AccountCode != nil {
			line.AccountCode = *patch.AccountCode
		}
		if patch.Description != nil {
			line.Description = *patch.Description
		}
		if patch.CostCenter != nil {
			line.CostCenter = *patch.CostCenter
		}
		if patch.TaxCode != nil {
			line.TaxCode = *patch.TaxCode
		}
		if patch.Debit != nil {
			line.Debit = *patch.Debit
		}
		if patch.Credit != nil {
			line.Credit = *patch.Credit
		}
		return nil
	}
	return ErrLineNotFound
}

// Totals sums debits and credits across all lines.
func (e *Entry) Totals() (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, line := range e.Lines {
		debit = debit.Add(line.Debit)
		credit = credit.Add(line.Credit)
	}
	return debit, credit
}

// IsBalanced reports whether total debit and credit agree within one
// currency unit.
func (e *Entry) IsBalanced() bool {
	debit, credit := e.Totals()
	return debit.Sub(credit).Abs().LessThan(balanceTolerance)
}

// Reset clears the entry back to the fresh two-line default.
func (e *Entry) Reset() {
	e.Ref = ""
	e.Lines = nil
	e.lastID = 0
	e.AddLine()
	e.AddLine()
}
