package info

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestRunChecks(t *testing.T) {
	pass := func(ctx context.Context) error { return nil }
	fail := func(ctx context.Context) error { return errors.New("store offline") }

	t.Run("no checks", func(t *testing.T) {
		ih := NewInfoHandler()
		if err := ih.runChecks(context.Background(), nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("all pass", func(t *testing.T) {
		ih := NewInfoHandler(WithReadinessChecks(pass, pass))
		if err := ih.runChecks(context.Background(), ih.readinessChecks); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("failure reports the probe index", func(t *testing.T) {
		ih := NewInfoHandler(WithReadinessChecks(pass, fail))
		err := ih.runChecks(context.Background(), ih.readinessChecks)
		if err == nil || !strings.Contains(err.Error(), "probe 2 failed") {
			t.Fatalf("expected probe 2 to be named, got %v", err)
		}
		if !strings.Contains(err.Error(), "store offline") {
			t.Fatalf("expected the cause in the message, got %v", err)
		}
	})

	t.Run("timeout is reported distinctly", func(t *testing.T) {
		slow := func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}
		ih := NewInfoHandler(WithProbeTimeout(20*time.Millisecond), WithReadinessChecks(slow))

		err := ih.runChecks(context.Background(), ih.readinessChecks)
		if err == nil || !strings.Contains(err.Error(), "timed out") {
			t.Fatalf("expected a timeout report, got %v", err)
		}
	})

	t.Run("cancellation is reported distinctly", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		waiting := func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}
		ih := NewInfoHandler(WithReadinessChecks(waiting))

		err := ih.runChecks(ctx, ih.readinessChecks)
		if err == nil || !strings.Contains(err.Error(), "cancelled") {
			t.Fatalf("expected a cancellation report, got %v", err)
		}
	})

	t.Run("nil checks are skipped", func(t *testing.T) {
		ih := NewInfoHandler(WithReadinessChecks(nil, pass, nil))
		if len(ih.readinessChecks) != 1 {
			t.Fatalf("expected nil checks to be filtered, got %d", len(ih.readinessChecks))
		}
		if err := ih.runChecks(context.Background(), ih.readinessChecks); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWithProbeTimeoutRejectsInvalidValues(t *testing.T) {
	ih := NewInfoHandler(WithProbeTimeout(-1))
	if ih.probeTimeout != defaultProbeTimeout {
		t.Fatalf("expected the default timeout to survive, got %s", ih.probeTimeout)
	}
}
