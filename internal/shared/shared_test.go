package shared

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestSequenceMonotonic(t *testing.T) {
	seq := NewSequence(3)
	require.Equal(t, int64(4), seq.Next())
	require.Equal(t, int64(5), seq.Next())

	seq.Observe(10)
	require.Equal(t, int64(11), seq.Next())

	// Observing a lower value never rewinds.
	seq.Observe(2)
	require.Equal(t, int64(12), seq.Next())
}

func TestSuffixSequenceFloorsAtHighestSuffix(t *testing.T) {
	seq := SuffixSequence("ITM-001", "ITM-007", "ITM-003")
	require.Equal(t, int64(8), seq.Next())

	// Mixed id shapes only count the trailing digit run.
	seq = SuffixSequence("PO-2023-10-003", "PO-2024-011")
	require.Equal(t, int64(12), seq.Next())

	// Rows without a numeric suffix fall back to a fresh counter.
	seq = SuffixSequence("LEGACY", "no-suffix-", "")
	require.Equal(t, int64(1), seq.Next())
}

func TestSequenceConcurrent(t *testing.T) {
	seq := NewSequence(0)
	const workers, perWorker = 8, 100

	seen := make(chan int64, workers*perWorker)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				seen <- seq.Next()
			}
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[int64]struct{}, workers*perWorker)
	for n := range seen {
		_, dup := unique[n]
		require.False(t, dup, "sequence reissued %d", n)
		unique[n] = struct{}{}
	}
	require.Len(t, unique, workers*perWorker)
}

func TestFormatIDR(t *testing.T) {
	require.Equal(t, "Rp0", FormatIDR(decimal.Zero))
	require.Equal(t, "Rp55.000", FormatIDR(decimal.NewFromInt(55000)))
	require.Equal(t, "Rp62.500.000", FormatIDR(decimal.NewFromInt(62500000)))
	require.Equal(t, "Rp1.250.000.000", FormatIDR(decimal.NewFromInt(1250000000)))
}
