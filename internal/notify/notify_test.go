package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeNotifier records delivered notifications.
type fakeNotifier struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (f *fakeNotifier) Notify(title, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, title+"|"+body)
	return f.err
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestScheduleDelivers(t *testing.T) {
	fake := &fakeNotifier{}
	s := NewScheduler(fake, nil)

	err := s.Schedule(context.Background(), "Task reminder", "buy milk", 0)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	if fake.count() != 1 {
		t.Fatalf("delivered %d notifications, want 1", fake.count())
	}
	if fake.calls[0] != "Task reminder|buy milk" {
		t.Errorf("delivered %q", fake.calls[0])
	}
}

func TestScheduleWaitsForDelay(t *testing.T) {
	fake := &fakeNotifier{}
	s := NewScheduler(fake, nil)

	start := time.Now()
	if err := s.Schedule(context.Background(), "t", "b", 50*time.Millisecond); err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("delivered after %v, want >= 50ms", elapsed)
	}
}

func TestScheduleCanceled(t *testing.T) {
	fake := &fakeNotifier{}
	s := NewScheduler(fake, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Schedule(ctx, "t", "b", time.Hour)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if fake.count() != 0 {
		t.Error("canceled schedule must not deliver")
	}
}

func TestScheduleNegativeDelay(t *testing.T) {
	fake := &fakeNotifier{}
	s := NewScheduler(fake, nil)

	if err := s.Schedule(context.Background(), "t", "b", -time.Second); err == nil {
		t.Fatal("negative delay should fail")
	}
	if fake.count() != 0 {
		t.Error("invalid schedule must not deliver")
	}
}

func TestScheduleNotifierError(t *testing.T) {
	wantErr := errors.New("notification service unavailable")
	s := NewScheduler(&fakeNotifier{err: wantErr}, nil)

	if err := s.Schedule(context.Background(), "t", "b", 0); !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want %v", err, wantErr)
	}
}

func TestCheckPermission(t *testing.T) {
	if err := CheckPermission(true); err != nil {
		t.Errorf("enabled config should pass: %v", err)
	}

	if err := CheckPermission(false); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("disabled config error = %v, want ErrPermissionDenied", err)
	}

	t.Setenv(DisableEnv, "1")
	if err := CheckPermission(true); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("disable env error = %v, want ErrPermissionDenied", err)
	}
}
