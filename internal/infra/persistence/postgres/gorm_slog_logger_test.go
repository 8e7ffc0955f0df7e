package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"smartdine/config"
	deliverycontext "smartdine/internal/delivery/context"
	"smartdine/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func traceSQL() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "failed query", err: errors.New("connection reset"), want: "level=ERROR"},
		{name: "missing row", err: gorm.ErrRecordNotFound, want: "level=DEBUG"},
		{name: "duplicate key", err: &pgconn.PgError{Code: "23505"}, want: "level=DEBUG"},
		{name: "slow query", elapsed: time.Second, want: "GORM slow query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			gormLogger := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

			gormLogger.Trace(context.Background(), time.Now().Add(-tt.elapsed), traceSQL, tt.err)

			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestGormSlogLogger_QuietWhenNotDebug(t *testing.T) {
	var buf bytes.Buffer
	gormLogger := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	gormLogger.Trace(context.Background(), time.Now(), traceSQL, nil)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	gormLogger := newGormSlogLogger(newBufferLogger(&base), cfg)

	ctx := deliverycontext.WithLogger(context.Background(), newBufferLogger(&scoped).With(slog.String("request_id", "r-1")))
	gormLogger.Trace(ctx, time.Now(), traceSQL, nil)

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=r-1")
}
