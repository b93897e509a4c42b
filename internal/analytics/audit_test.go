package analytics

import (
	"context"
	"log/slog"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/shared"
)

type countingRecorder struct {
	calls int
}

func (c *countingRecorder) Record(context.Context, shared.AuditLog) error {
	c.calls++
	return nil
}

func TestAuditBumperInvalidatesOnRecord(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cache := NewCache(client, time.Minute)
	ctx := context.Background()

	before, err := cache.Version(ctx)
	require.NoError(t, err)

	base := &countingRecorder{}
	bumper := NewAuditBumper(base, cache, slog.Default())
	require.NoError(t, bumper.Record(ctx, shared.AuditLog{Action: "order.receive"}))

	after, err := cache.Version(ctx)
	require.NoError(t, err)
	require.Greater(t, after, before)
	require.Equal(t, 1, base.calls)
}

func TestAuditBumperRecordsDespiteBumpFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cache := NewCache(client, time.Minute)
	mr.Close()

	base := &countingRecorder{}
	bumper := NewAuditBumper(base, cache, slog.Default())

	err := bumper.Record(context.Background(), shared.AuditLog{Action: "journal.post"})
	require.NoError(t, err, "a failed bump must not block the audit trail")
	require.Equal(t, 1, base.calls)
}
