package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/connersimmonsmayne/weddingplanner-sub000/pkg/metrics"
)

type ctxKey int

const (
	queryStartKey ctxKey = iota
	querySQLKey
)

// SlowQueryTracer logs and counts queries slower than the threshold.
// pgx v5 TraceQueryEndData does not carry the SQL, so it is stashed in
// the context at query start.
type SlowQueryTracer struct {
	logger        *zap.Logger
	slowThreshold time.Duration
}

func NewSlowQueryTracer(logger *zap.Logger, slowThreshold time.Duration) *SlowQueryTracer {
	if slowThreshold == 0 {
		slowThreshold = 100 * time.Millisecond
	}
	return &SlowQueryTracer{
		logger:        logger,
		slowThreshold: slowThreshold,
	}
}

func (t *SlowQueryTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	ctx = context.WithValue(ctx, queryStartKey, time.Now())
	ctx = context.WithValue(ctx, querySQLKey, data.SQL)
	return ctx
}

func (t *SlowQueryTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	startTime, ok := ctx.Value(queryStartKey).(time.Time)
	if !ok {
		return
	}

	duration := time.Since(startTime)
	metrics.RecordDBQueryDuration(data.CommandTag.String(), duration)

	if duration > t.slowThreshold {
		sql, _ := ctx.Value(querySQLKey).(string)
		if sql == "" {
			sql = "unknown"
		}
		if len(sql) > 200 {
			sql = sql[:200] + "..."
		}

		t.logger.Warn("slow-query",
			zap.String("sql", sql),
			zap.Duration("took", duration),
			zap.String("command_tag", data.CommandTag.String()),
		)
	}
}
