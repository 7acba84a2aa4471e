package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strings"
	"time"
)

// Client talks to the commerce backend's admin REST API. Every collection
// follows the same contract: GET with limit/offset/q/order plus filter
// params, POST with a JSON body, DELETE by id. The client returns raw JSON
// objects; shaping them into rows is the listing package's job.
type Client struct {
	base  string
	token string
	http  *http.Client
}

// New creates a client for the given base URL. token is sent as a Bearer
// header when non-empty.
func New(base, token string) *Client {
	return &Client{
		base:  strings.TrimRight(base, "/"),
		token: token,
		http:  &http.Client{Timeout: 30 * time.Second},
	}
}

// NewFromEnv builds a client from COMMERCE_API_URL / COMMERCE_API_TOKEN.
func NewFromEnv() *Client {
	base := os.Getenv("COMMERCE_API_URL")
	if base == "" {
		base = "http://localhost:9000"
	}
	return New(base, os.Getenv("COMMERCE_API_TOKEN"))
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (map[string]interface{}, error) {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("commerce api request failed: %w", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &APIError{Status: res.StatusCode, Message: errorMessage(data)}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]interface{}{}, nil
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return payload, nil
}

// errorMessage pulls the human-readable message out of an error body.
func errorMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}

// List performs GET on a collection endpoint with the given query params.
func (c *Client) List(ctx context.Context, endpoint string, params url.Values) (map[string]interface{}, error) {
	return c.do(ctx, http.MethodGet, endpoint, params, nil)
}

// Create performs POST on a collection endpoint.
func (c *Client) Create(ctx context.Context, endpoint string, body interface{}) (map[string]interface{}, error) {
	return c.do(ctx, http.MethodPost, endpoint, nil, body)
}

// Delete removes an entity by id. No body is expected on success.
func (c *Client) Delete(ctx context.Context, endpoint, id string) error {
	_, err := c.do(ctx, http.MethodDelete, endpoint+"/"+url.PathEscape(id), nil, nil)
	return err
}

// CreatedEntity extracts the created entity object from a POST response:
// the resource's canonical key first, then the first object-valued property
// in sorted key order. Sorted order makes the fallback deterministic; map
// iteration order would not be. The fallback path is logged since it means
// the backend envelope drifted.
func CreatedEntity(payload map[string]interface{}, key string) map[string]interface{} {
	if v, ok := payload[key].(map[string]interface{}); ok {
		return v
	}
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if obj, ok := payload[k].(map[string]interface{}); ok {
			log.Printf("upstream: created-entity key %q missing, falling back to %q", key, k)
			return obj
		}
	}
	return nil
}

// EntityID returns the id field of an entity map, tolerating numeric ids.
func EntityID(entity map[string]interface{}) string {
	if entity == nil {
		return ""
	}
	switch v := entity["id"].(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	}
	return ""
}
