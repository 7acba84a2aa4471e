package settle

import (
	"context"
	"sync"
)

// Result holds the outcome of a single settled task.
type Result[T any] struct {
	Value T
	Err   error
}

// Task produces a value or an error.
type Task[T any] func(ctx context.Context) (T, error)

// All runs every task concurrently and waits for all of them to finish,
// collecting successes and failures separately. Unlike errgroup, a failing
// task never cancels its siblings: the point is that one slow or broken
// reference fetch must not take down the rest.
func All[T any](ctx context.Context, tasks map[string]Task[T]) map[string]Result[T] {
	results := make(map[string]Result[T], len(tasks))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for name, task := range tasks {
		wg.Add(1)
		go func(name string, task Task[T]) {
			defer wg.Done()
			v, err := task(ctx)
			mu.Lock()
			results[name] = Result[T]{Value: v, Err: err}
			mu.Unlock()
		}(name, task)
	}
	wg.Wait()
	return results
}

// Failed returns the names of tasks that settled with an error.
func Failed[T any](results map[string]Result[T]) []string {
	var names []string
	for name, r := range results {
		if r.Err != nil {
			names = append(names, name)
		}
	}
	return names
}
