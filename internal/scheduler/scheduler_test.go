package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bills_fetcher/internal/domain"
)

type call struct {
	cuatrenio string
	mode      domain.Mode
}

type fakeRefresher struct {
	mu     sync.Mutex
	calls  []call
	fail   map[string]bool
	onCall func(n int)
}

func (f *fakeRefresher) RefreshPeriod(_ context.Context, cuatrenio string, mode domain.Mode) ([]*domain.SyncStats, error) {
	f.mu.Lock()
	f.calls = append(f.calls, call{cuatrenio, mode})
	n := len(f.calls)
	f.mu.Unlock()

	if f.onCall != nil {
		f.onCall(n)
	}
	if f.fail[cuatrenio] {
		return nil, errors.New("listing unavailable")
	}
	return []*domain.SyncStats{{Cuatrenio: cuatrenio}}, nil
}

func (f *fakeRefresher) snapshot() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestScheduler_RefreshesEveryCuatrenioOnStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	refresher := &fakeRefresher{
		fail: map[string]bool{"2018-2022": true},
		onCall: func(n int) {
			if n == 2 {
				cancel()
			}
		},
	}

	s := NewScheduler(refresher, []string{"2018-2022", "2022-2026"}, domain.ModeFull, time.Hour, testLogger())
	err := s.Start(ctx)

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []call{
		{"2018-2022", domain.ModeFull},
		{"2022-2026", domain.ModeFull},
	}, refresher.snapshot())
}

func TestScheduler_RunsOnTick(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	refresher := &fakeRefresher{
		onCall: func(n int) {
			if n == 3 {
				cancel()
			}
		},
	}

	s := NewScheduler(refresher, []string{"2022-2026"}, domain.ModeListOnly, 10*time.Millisecond, testLogger())

	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}
	assert.Len(t, refresher.snapshot(), 3)
}
