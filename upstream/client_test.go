package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestClient_ListSendsParamsAndAuth(t *testing.T) {
	var gotPath, gotAuth string
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]interface{}{"orders": []interface{}{}, "count": 0})
	}))
	defer srv.Close()

	c := New(srv.URL, "secret-token")
	params := url.Values{}
	params.Set("limit", "20")
	params.Set("offset", "20")
	params.Add("status", "pending")
	params.Add("status", "completed")

	_, err := c.List(context.Background(), "/admin/orders", params)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotPath != "/admin/orders" {
		t.Errorf("path = %q, want /admin/orders", gotPath)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("auth = %q, want bearer token", gotAuth)
	}
	if got := gotQuery["status"]; len(got) != 2 || got[0] != "pending" || got[1] != "completed" {
		t.Errorf("status params = %v, want [pending completed]", got)
	}
	if gotQuery.Get("offset") != "20" {
		t.Errorf("offset = %q, want 20", gotQuery.Get("offset"))
	}
}

func TestClient_ErrorBodyMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "Product with handle shirt already exists"})
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	_, err := c.Create(context.Background(), "/admin/products", map[string]string{"title": "Shirt"})
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T, want *APIError", err)
	}
	if apiErr.Status != http.StatusConflict {
		t.Errorf("status = %d, want 409", apiErr.Status)
	}
	if apiErr.Message != "Product with handle shirt already exists" {
		t.Errorf("message = %q, want verbatim server message", apiErr.Message)
	}
	if !IsConflict(err) {
		t.Error("IsConflict should report true")
	}
}

func TestClient_DeleteEmptyBodyOK(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	if err := c.Delete(context.Background(), "/admin/regions", "reg_123"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/admin/regions/reg_123" {
		t.Errorf("request = %s %s, want DELETE /admin/regions/reg_123", gotMethod, gotPath)
	}
}

func TestClient_TransportFailure(t *testing.T) {
	c := New("http://127.0.0.1:1", "")
	_, err := c.List(context.Background(), "/admin/orders", nil)
	if err == nil {
		t.Fatal("expected transport error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Errorf("transport failure must not be an APIError, got %v", apiErr)
	}
	if ServerMessage(err) != "" {
		t.Errorf("ServerMessage = %q, want empty for transport failure", ServerMessage(err))
	}
}

func TestCreatedEntity_CanonicalKeyThenFallback(t *testing.T) {
	payload := map[string]interface{}{
		"region": map[string]interface{}{"id": "reg_1"},
	}
	if e := CreatedEntity(payload, "region"); EntityID(e) != "reg_1" {
		t.Errorf("canonical key: id = %q, want reg_1", EntityID(e))
	}

	renamed := map[string]interface{}{
		"data": map[string]interface{}{"id": "reg_2"},
	}
	if e := CreatedEntity(renamed, "region"); EntityID(e) != "reg_2" {
		t.Errorf("fallback: id = %q, want reg_2", EntityID(e))
	}

	if e := CreatedEntity(map[string]interface{}{"ok": true}, "region"); e != nil {
		t.Errorf("no object-valued key: entity = %v, want nil", e)
	}
}

func TestCreatedEntity_FallbackIsDeterministic(t *testing.T) {
	// Several object-valued candidates: the lexicographically first one
	// must win on every call, independent of map iteration order.
	payload := map[string]interface{}{
		"zebra":    map[string]interface{}{"id": "z_1"},
		"apple":    map[string]interface{}{"id": "a_1"},
		"midpoint": map[string]interface{}{"id": "m_1"},
	}
	for i := 0; i < 20; i++ {
		if e := CreatedEntity(payload, "region"); EntityID(e) != "a_1" {
			t.Fatalf("run %d: id = %q, want a_1 (first key in sorted order)", i, EntityID(e))
		}
	}
}

func TestEntityID_NumericID(t *testing.T) {
	if got := EntityID(map[string]interface{}{"id": float64(42)}); got != "42" {
		t.Errorf("id = %q, want 42", got)
	}
}
