package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"mapbook/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCapturingLogger(t *testing.T, debug bool) (logger.Interface, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	base := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), buf
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	record := map[string]any{}
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &record))

	return record
}

func sqlFn() (string, int64) {
	return "SELECT * FROM addresses", 3
}

func TestGormSlogLogger_TraceError(t *testing.T) {
	gormLogger, buf := newCapturingLogger(t, false)

	gormLogger.Trace(context.Background(), time.Now(), sqlFn, errors.New("connection reset"))

	record := lastRecord(t, buf)
	assert.Equal(t, "Postgres query failed", record["msg"])
	assert.Equal(t, "connection reset", record["error"])
	assert.Equal(t, "postgres", record["store"])
	assert.Equal(t, "SELECT * FROM addresses", record["sql"])
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	gormLogger, buf := newCapturingLogger(t, false)

	gormLogger.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	gormLogger, buf := newCapturingLogger(t, false)

	gormLogger.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

	record := lastRecord(t, buf)
	assert.Equal(t, "Postgres slow query", record["msg"])
	assert.Equal(t, "WARN", record["level"])
}

func TestGormSlogLogger_QueriesOnlyInDebug(t *testing.T) {
	quiet, quietBuf := newCapturingLogger(t, false)
	quiet.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, quietBuf.String())

	verbose, verboseBuf := newCapturingLogger(t, true)
	verbose.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Equal(t, "Postgres query", lastRecord(t, verboseBuf)["msg"])
}

func TestGormSlogLogger_Silent(t *testing.T) {
	gormLogger, buf := newCapturingLogger(t, true)

	gormLogger.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	gormLogger.LogMode(logger.Silent).Error(context.Background(), "failed %s", "x")

	assert.Empty(t, buf.String())
}
