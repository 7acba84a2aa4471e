package listing

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"sync/atomic"

	"storeadmin.GO/resource"
)

// Fetcher is the slice of the upstream client the controller needs.
type Fetcher interface {
	List(ctx context.Context, endpoint string, params url.Values) (map[string]interface{}, error)
}

// ErrStale marks a fetch whose result was discarded because a newer fetch
// was triggered (or the controller was closed) before it resolved. Not an
// error condition for the caller: the newer result owns the view.
var ErrStale = errors.New("listing: stale response discarded")

// Controller drives the list view for one resource: it turns QueryState
// into an upstream request, normalizes the response, and commits only the
// most recently triggered fetch's result. A slow early response resolving
// after a fast later one must not overwrite it.
type Controller struct {
	client Fetcher
	desc   resource.Descriptor

	gen    atomic.Uint64
	closed atomic.Bool

	mu      sync.Mutex
	last    ListResult
	lastErr error
}

// NewController creates a controller for the given resource descriptor.
func NewController(client Fetcher, desc resource.Descriptor) *Controller {
	return &Controller{client: client, desc: desc}
}

// Descriptor returns the resource descriptor the controller serves.
func (c *Controller) Descriptor() resource.Descriptor {
	return c.desc
}

// Fetch issues the list request for state and commits the result unless a
// newer fetch was triggered meanwhile. A fetch failure is committed as an
// empty result plus the surfaced error: the view must show an explicit
// error, never a silent empty state.
func (c *Controller) Fetch(ctx context.Context, state QueryState) (ListResult, error) {
	gen := c.gen.Add(1)

	var res ListResult
	var fetchErr error
	payload, err := c.client.List(ctx, c.desc.Endpoint, state.Params())
	if err != nil {
		fetchErr = fmt.Errorf("load %s: %w", c.desc.Name, err)
	} else {
		res = Normalize(payload, c.desc.ListKey)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed.Load() || gen != c.gen.Load() {
		return ListResult{}, ErrStale
	}
	c.last, c.lastErr = res, fetchErr
	return res, fetchErr
}

// Snapshot returns the last committed result and error.
func (c *Controller) Snapshot() (ListResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last, c.lastErr
}

// Close invalidates the controller: any in-flight fetch resolves as stale
// and commits nothing. Mirrors a view unmount or resource switch.
func (c *Controller) Close() {
	c.closed.Store(true)
}
