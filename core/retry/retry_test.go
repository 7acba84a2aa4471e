package retry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

var errConflict = errors.New("conflict")

func suffixMutator(base string) func(string, int) string {
	return func(_ string, attempt int) string {
		return fmt.Sprintf("%s-%d", base, attempt)
	}
}

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	p := Policy{MaxAttempts: 5, Retryable: func(error) bool { return true }}

	candidate, attempts, err := p.Do(context.Background(), "shirt", func(ctx context.Context, c string) error {
		return nil
	})

	if err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
	if candidate != "shirt" || attempts != 1 {
		t.Errorf("candidate = %q attempts = %d, want shirt/1", candidate, attempts)
	}
}

func TestDo_MutatesUntilSuccess(t *testing.T) {
	p := Policy{
		MaxAttempts: 5,
		Retryable:   func(err error) bool { return errors.Is(err, errConflict) },
		Mutate:      suffixMutator("shirt"),
	}

	var seen []string
	candidate, attempts, err := p.Do(context.Background(), "shirt", func(ctx context.Context, c string) error {
		seen = append(seen, c)
		if len(seen) < 3 {
			return errConflict
		}
		return nil
	})

	if err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
	if candidate != "shirt-3" || attempts != 3 {
		t.Errorf("candidate = %q attempts = %d, want shirt-3/3", candidate, attempts)
	}
	want := []string{"shirt", "shirt-2", "shirt-3"}
	for i, c := range want {
		if seen[i] != c {
			t.Errorf("attempt %d candidate = %q, want %q", i+1, seen[i], c)
		}
	}
}

func TestDo_ExhaustsAtCeiling(t *testing.T) {
	p := Policy{
		MaxAttempts: 5,
		Retryable:   func(err error) bool { return errors.Is(err, errConflict) },
		Mutate:      suffixMutator("shirt"),
	}

	calls := 0
	_, attempts, err := p.Do(context.Background(), "shirt", func(ctx context.Context, c string) error {
		calls++
		return errConflict
	})

	if calls != 5 || attempts != 5 {
		t.Errorf("calls = %d attempts = %d, want 5/5", calls, attempts)
	}
	if err == nil || !strings.Contains(err.Error(), "5 attempts") {
		t.Errorf("err = %v, want message stating attempt count", err)
	}
	if !errors.Is(err, errConflict) {
		t.Errorf("err should wrap the last attempt error, got %v", err)
	}
}

func TestDo_NonRetryableAbortsImmediately(t *testing.T) {
	fatal := errors.New("validation failed")
	p := Policy{
		MaxAttempts: 5,
		Retryable:   func(err error) bool { return errors.Is(err, errConflict) },
		Mutate:      suffixMutator("shirt"),
	}

	calls := 0
	_, attempts, err := p.Do(context.Background(), "shirt", func(ctx context.Context, c string) error {
		calls++
		return fatal
	})

	if calls != 1 || attempts != 1 {
		t.Errorf("calls = %d attempts = %d, want 1/1", calls, attempts)
	}
	if !errors.Is(err, fatal) {
		t.Errorf("err = %v, want fatal error passed through", err)
	}
}

func TestDo_ZeroMaxAttemptsRunsOnce(t *testing.T) {
	p := Policy{}
	calls := 0
	_, _, err := p.Do(context.Background(), "x", func(ctx context.Context, c string) error {
		calls++
		return errors.New("nope")
	})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if err == nil {
		t.Error("err should be returned")
	}
}
