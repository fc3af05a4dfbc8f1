package database

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lmittmann/tint"
)

// DefaultSlowQueryThreshold is the duration above which a query is logged as slow.
const DefaultSlowQueryThreshold = 200 * time.Millisecond

const (
	tintAttrCodeDuration = 214
	tintAttrCodeQuery    = 2
)

type queryStartKey struct{}

type queryStart struct {
	at  time.Time
	sql string
}

// QueryTracer logs failed queries, slow queries, and every query at debug level.
type QueryTracer struct {
	logger        *slog.Logger
	slowThreshold time.Duration
}

var _ pgx.QueryTracer = (*QueryTracer)(nil)

func NewQueryTracer(logger *slog.Logger, slowThreshold time.Duration) *QueryTracer {
	return &QueryTracer{logger: logger, slowThreshold: slowThreshold}
}

func (t *QueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, queryStartKey{}, queryStart{at: time.Now(), sql: data.SQL})
}

func (t *QueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, ok := ctx.Value(queryStartKey{}).(queryStart)
	if !ok {
		return
	}
	elapsed := time.Since(start.at)
	failed := data.Err != nil && !errors.Is(data.Err, pgx.ErrNoRows)
	slow := t.slowThreshold > 0 && elapsed >= t.slowThreshold

	if !failed && !slow && !t.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}

	log := t.logger.With(
		tint.Attr(tintAttrCodeDuration, slog.String("duration", elapsed.String())),
		tint.Attr(tintAttrCodeQuery, slog.String("query", start.sql)),
	)
	switch {
	case failed:
		log.ErrorContext(ctx, "❌ Erreur lors de l'exécution d'une requête", tint.Err(data.Err))
	case slow:
		log.WarnContext(ctx, "⚠️ Requête lente", "threshold", t.slowThreshold.String())
	default:
		log.DebugContext(ctx, "requête exécutée", "rows", data.CommandTag.RowsAffected())
	}
}
