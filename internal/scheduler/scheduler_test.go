package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog_sync/internal/domain"
)

type fakeSyncer struct {
	runs atomic.Int64
	err  error
}

func (f *fakeSyncer) Run(ctx context.Context) (*domain.BatchReport, error) {
	f.runs.Add(1)
	return &domain.BatchReport{}, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestScheduler_RunOnce(t *testing.T) {
	syncer := &fakeSyncer{}
	s := NewScheduler(syncer, 0, testLogger())

	require.NoError(t, s.Start(context.Background()))
	assert.Equal(t, int64(1), syncer.runs.Load())
}

func TestScheduler_RunOncePropagatesError(t *testing.T) {
	syncer := &fakeSyncer{err: errors.New("listing failed")}
	s := NewScheduler(syncer, 0, testLogger())

	assert.Error(t, s.Start(context.Background()))
}

func TestScheduler_RepeatsOnInterval(t *testing.T) {
	syncer := &fakeSyncer{}
	s := NewScheduler(syncer, 10*time.Millisecond, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := s.Start(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.GreaterOrEqual(t, syncer.runs.Load(), int64(2))
}

func TestScheduler_IntervalRunSwallowsErrors(t *testing.T) {
	syncer := &fakeSyncer{err: errors.New("transient")}
	s := NewScheduler(syncer, 10*time.Millisecond, testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := s.Start(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.GreaterOrEqual(t, syncer.runs.Load(), int64(2))
}
