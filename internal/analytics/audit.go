package analytics

import (
	"context"
	"log/slog"

	"github.com/the-anuneanu/UNINUS-Management-System/internal/shared"
)

// AuditBumper decorates an audit recorder so every recorded mutation
// also invalidates the KPI snapshot cache. A failed bump only degrades
// freshness (the snapshot expires on TTL anyway), so it is logged
// rather than surfaced to the caller.
type AuditBumper struct {
	base   shared.AuditRecorder
	cache  *Cache
	logger *slog.Logger
}

// NewAuditBumper wraps base with cache invalidation on record.
func NewAuditBumper(base shared.AuditRecorder, cache *Cache, logger *slog.Logger) *AuditBumper {
	return &AuditBumper{base: base, cache: cache, logger: logger}
}

func (b *AuditBumper) Record(ctx context.Context, entry shared.AuditLog) error {
	if err := b.cache.Bump(ctx); err != nil {
		b.logger.Warn("kpi cache bump failed, snapshot stale until TTL",
			slog.String("action", entry.Action),
			slog.Any("error", err))
	}
	return b.base.Record(ctx, entry)
}
