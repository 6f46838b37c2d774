package logging

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger(level zapcore.Level) (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return NewLoggerFromCore(core), logs
}

func TestLogger_EmitsFields(t *testing.T) {
	log, observed := newObservedLogger(zapcore.DebugLevel)

	log.Info("clause extracted",
		String("source", "heading"),
		Int("clause_id", 3),
		Bool("fallback", false),
	)

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "clause extracted", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "heading", fields["source"])
	assert.Equal(t, int64(3), fields["clause_id"])
	assert.Equal(t, false, fields["fallback"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	log, observed := newObservedLogger(zapcore.WarnLevel)

	log.Debug("ignored")
	log.Info("ignored too")
	log.Warn("kept")
	log.Error("kept too")

	assert.Equal(t, 2, observed.Len())
}

func TestLogger_With_ChildDoesNotMutateParent(t *testing.T) {
	log, observed := newObservedLogger(zapcore.InfoLevel)

	child := log.With(String("run_id", "abc"))
	child.Info("child entry")
	log.Info("parent entry")

	entries := observed.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "abc", entries[0].ContextMap()["run_id"])
	assert.NotContains(t, entries[1].ContextMap(), "run_id")
}

func TestLogger_Named(t *testing.T) {
	log, observed := newObservedLogger(zapcore.InfoLevel)
	log.Named("segmenter").Info("hello")

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "segmenter", entries[0].LoggerName)
}

func TestErrField(t *testing.T) {
	f := Err(errors.New("boom"))
	assert.Equal(t, "error", f.Key)
	assert.Equal(t, "boom", f.Value)

	assert.Equal(t, "<nil>", Err(nil).Value)
}

func TestDurationField(t *testing.T) {
	f := Duration("elapsed", 2*time.Second)
	assert.Equal(t, 2*time.Second, f.Value)
}

func TestNewLogger_Defaults(t *testing.T) {
	log, err := NewLogger(LogConfig{})
	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestNewLogger_BadOutputPath(t *testing.T) {
	_, err := NewLogger(LogConfig{OutputPaths: []string{"/nonexistent-dir-xyz/log.out"}})
	assert.Error(t, err)
}

func TestDefault_SetAndGet(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	log, _ := newObservedLogger(zapcore.InfoLevel)
	SetDefault(log)
	assert.Equal(t, log, Default())

	// nil is rejected, previous default survives
	SetDefault(nil)
	assert.Equal(t, log, Default())
}

func TestNopLogger_Silent(t *testing.T) {
	log := NewNopLogger()
	log.Info("discarded", String("k", "v"))
	log.With(String("a", "b")).Named("x").Error("also discarded")
}
