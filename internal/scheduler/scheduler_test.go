package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jpdougherty96/HERD-DEV-sub000/internal/domain"
	"github.com/jpdougherty96/HERD-DEV-sub000/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_DeniesLapsed(t *testing.T) {
	denier := mocks.NewMockLapsedDenier(t)
	log := newTestLogger(t)

	s := New(denier, 50*time.Millisecond, log)

	denied := []*domain.Booking{
		{ID: "b1", ClassID: "c1", GuestID: "g1"},
	}
	denier.EXPECT().DenyLapsed(mock.Anything).Return(denied, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(denier.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	denier := mocks.NewMockLapsedDenier(t)
	log := newTestLogger(t)

	s := New(denier, 50*time.Millisecond, log)

	denier.EXPECT().DenyLapsed(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(denier.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	denier := mocks.NewMockLapsedDenier(t)
	log := newTestLogger(t)

	s := New(denier, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	denier := mocks.NewMockLapsedDenier(t)
	log := newTestLogger(t)

	s := New(denier, 30*time.Millisecond, log)

	denier.EXPECT().DenyLapsed(mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	calls := len(denier.Calls)
	assert.GreaterOrEqual(t, calls, 2)
}
