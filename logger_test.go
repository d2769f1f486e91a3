package shapes

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	require.NotNil(t, l)
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		assert.False(t, l.Enabled(context.Background(), level), "default logger enabled for %v", level)
	}
}

// captureLogs installs a debug logger writing into the returned buffer
// for the duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	return &buf
}

func TestSetLogger(t *testing.T) {
	buf := captureLogs(t)

	Logger().Info("test message", "key", "value")
	assert.Contains(t, buf.String(), "test message")
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := Logger()
	require.NotNil(t, l, "SetLogger(nil) should set nop logger, not nil")
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestLoggerRecordsRejectedConstruction(t *testing.T) {
	buf := captureLogs(t)

	_, err := NewDisk(-1.0)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "shape rejected")
	assert.Contains(t, buf.String(), "arg=radius")

	buf.Reset()
	_, err = NewTriangle(5.0, 4.0, 10.0)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "shape rejected")
	assert.Contains(t, buf.String(), "kind=triangle")
}

func TestLoggerRecordsNonFiniteArea(t *testing.T) {
	buf := captureLogs(t)

	d, err := NewDisk(math.MaxFloat64)
	require.NoError(t, err)

	_, ok := d.TryGetArea()
	require.False(t, ok)
	assert.Contains(t, buf.String(), "area not representable")
	assert.Contains(t, buf.String(), "kind=disk")
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	const goroutines = 100

	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l := Logger()
			if l == nil {
				t.Error("Logger() returned nil during concurrent access")
				return
			}
			l.Debug("concurrent read")
		}()
	}

	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}

	wg.Wait()
}

func BenchmarkLoggerDisabledLog(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("message", "key", "value")
	}
}
