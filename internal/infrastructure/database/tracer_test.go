package database

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func traceQuery(tr *QueryTracer, err error, wait time.Duration) {
	ctx := tr.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
	time.Sleep(wait)
	tr.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{CommandTag: pgconn.NewCommandTag("SELECT 1"), Err: err})
}

func TestQueryTracer(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	tr := NewQueryTracer(logger, 20*time.Millisecond)

	traceQuery(tr, nil, 0)
	assert.Empty(t, buf.String(), "fast queries are only logged at debug level")

	traceQuery(tr, pgx.ErrNoRows, 0)
	assert.Empty(t, buf.String(), "no rows is not a failure")

	traceQuery(tr, errors.New("boom"), 0)
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "boom")
	assert.Contains(t, buf.String(), "SELECT 1")

	buf.Reset()
	traceQuery(tr, nil, 30*time.Millisecond)
	assert.Contains(t, buf.String(), "level=WARN")
}
