package retry

import (
	"context"
	"fmt"
)

// Policy is a bounded retry loop that mutates the candidate between
// attempts. It is parameterized so the handle-collision logic in product
// creation stays testable without any slug specifics: Retryable classifies
// which errors are worth another attempt, Mutate derives the next candidate.
type Policy struct {
	MaxAttempts int
	Retryable   func(error) bool
	Mutate      func(candidate string, attempt int) string
}

// AttemptFunc performs one attempt with the given candidate.
type AttemptFunc func(ctx context.Context, candidate string) error

// Do runs attempt with successive candidates until it succeeds, hits a
// non-retryable error, or exhausts MaxAttempts. It returns the candidate
// that was used on the final attempt and the number of attempts made.
func (p Policy) Do(ctx context.Context, candidate string, attempt AttemptFunc) (string, int, error) {
	max := p.MaxAttempts
	if max < 1 {
		max = 1
	}

	var err error
	for n := 1; n <= max; n++ {
		if n > 1 && p.Mutate != nil {
			candidate = p.Mutate(candidate, n)
		}
		if ctx.Err() != nil {
			return candidate, n - 1, ctx.Err()
		}
		err = attempt(ctx, candidate)
		if err == nil {
			return candidate, n, nil
		}
		if p.Retryable == nil || !p.Retryable(err) {
			return candidate, n, err
		}
	}
	return candidate, max, fmt.Errorf("gave up after %d attempts: %w", max, err)
}
