package shared

import (
	"strconv"
	"strings"
	"sync/atomic"
)

// Sequence hands out monotonically increasing numbers. Unlike deriving the
// next id from the current collection length, a sequence never reissues a
// number after records are removed, and stays collision-free under
// concurrent creation.
type Sequence struct {
	last atomic.Int64
}

// NewSequence returns a Sequence whose first Next call yields start+1.
func NewSequence(start int64) *Sequence {
	s := &Sequence{}
	s.last.Store(start)
	return s
}

// Next reserves and returns the next number.
func (s *Sequence) Next() int64 {
	return s.last.Add(1)
}

// Observe raises the floor so that future numbers stay above n. Used when
// loading seed data carrying pre-assigned identifiers.
func (s *Sequence) Observe(n int64) {
	for {
		cur := s.last.Load()
		if n <= cur || s.last.CompareAndSwap(cur, n) {
			return
		}
	}
}

// SuffixSequence returns a Sequence floored at the highest numeric
// suffix among the given identifiers, where the suffix is the digit
// run after the final '-' (ITM-007 observes 7, PO-2023-011 observes
// 11). Identifiers without a numeric suffix are skipped, so the
// counter can be rebuilt from whatever rows the store holds.
func SuffixSequence(ids ...string) *Sequence {
	seq := NewSequence(0)
	for _, id := range ids {
		i := strings.LastIndexByte(id, '-')
		if i < 0 || i == len(id)-1 {
			continue
		}
		n, err := strconv.ParseInt(id[i+1:], 10, 64)
		if err != nil {
			continue
		}
		seq.Observe(n)
	}
	return seq
}
