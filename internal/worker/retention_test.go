package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	testhelpers "github.com/fadheel-alt/resi-checker/internal/test"
)

func TestNewRetentionSweeperDefaults(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	sweeper := NewRetentionSweeper(&testhelpers.SweeperFacadeStub{}, 0, 0, logger)
	if sweeper.days != 7 {
		t.Fatalf("expected retention default of 7 days, got %d", sweeper.days)
	}
	if sweeper.interval != time.Hour {
		t.Fatalf("expected interval default of 1h, got %v", sweeper.interval)
	}
}

func TestRetentionSweeperSweepsImmediately(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.SweeperFacadeStub{}
	sweeper := NewRetentionSweeper(facade, 14, time.Hour, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeper.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for len(facade.Calls()) == 0 {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for startup sweep")
		case <-time.After(10 * time.Millisecond):
		}
	}

	sweeper.Stop()
	calls := facade.Calls()
	if len(calls) == 0 || calls[0] != 14 {
		t.Fatalf("expected startup sweep with 14 days, got %v", calls)
	}
}

func TestRetentionSweeperTicks(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.SweeperFacadeStub{}
	sweeper := NewRetentionSweeper(facade, 7, 10*time.Millisecond, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeper.Start(ctx)

	deadline := time.After(time.Second)
	for len(facade.Calls()) < 3 {
		select {
		case <-deadline:
			t.Fatalf("timeout waiting for ticker sweeps, got %d", len(facade.Calls()))
		case <-time.After(5 * time.Millisecond):
		}
	}

	sweeper.Stop()
}

func TestRetentionSweeperSwallowsErrors(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.SweeperFacadeStub{PurgeFn: func(context.Context, int) (int64, error) {
		return 0, errors.New("boom")
	}}
	sweeper := NewRetentionSweeper(facade, 7, 10*time.Millisecond, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeper.Start(ctx)

	deadline := time.After(time.Second)
	for len(facade.Calls()) < 2 {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for sweeps after failures")
		case <-time.After(5 * time.Millisecond):
		}
	}

	sweeper.Stop()
}

func TestRetentionSweeperStopIsIdempotent(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	sweeper := NewRetentionSweeper(&testhelpers.SweeperFacadeStub{}, 7, time.Hour, logger)

	sweeper.Start(context.Background())
	sweeper.Stop()
	sweeper.Stop()
}
