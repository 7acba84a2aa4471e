package listing

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"storeadmin.GO/resource"
)

// refFetcher serves canned payloads per endpoint and fails the listed ones.
type refFetcher struct {
	payloads map[string]map[string]interface{}
	failing  map[string]error
}

func (f *refFetcher) List(ctx context.Context, endpoint string, params url.Values) (map[string]interface{}, error) {
	if err, ok := f.failing[endpoint]; ok {
		return nil, err
	}
	if p, ok := f.payloads[endpoint]; ok {
		return p, nil
	}
	return map[string]interface{}{}, nil
}

func refRows(key string, labels ...[2]string) map[string]interface{} {
	arr := make([]interface{}, len(labels))
	for i, l := range labels {
		arr[i] = map[string]interface{}{"id": l[0], "name": l[1], "title": l[1], "value": l[1]}
	}
	return map[string]interface{}{key: arr}
}

func TestLoadOptions_PartialFailure(t *testing.T) {
	desc, _ := resource.Lookup("products")
	if len(desc.References) != 5 {
		t.Fatalf("products references = %d, want 5", len(desc.References))
	}

	f := &refFetcher{
		payloads: map[string]map[string]interface{}{
			"/admin/collections":    refRows("collections", [2]string{"col_1", "Summer"}),
			"/admin/sales-channels": refRows("sales_channels", [2]string{"sc_1", "Webshop"}),
			"/admin/product-tags":   refRows("product_tags", [2]string{"tag_1", "new"}),
		},
		failing: map[string]error{
			"/admin/product-categories": errors.New("upstream 500"),
			"/admin/product-types":      errors.New("timeout"),
		},
	}

	out := LoadOptions(context.Background(), f, desc)

	if len(out.Sets) != 5 {
		t.Fatalf("sets = %d, want one per reference", len(out.Sets))
	}
	if len(out.Sets["collections"]) != 1 || out.Sets["collections"][0].Label != "Summer" {
		t.Errorf("collections = %v", out.Sets["collections"])
	}
	if len(out.Sets["categories"]) != 0 {
		t.Errorf("failed reference should yield an empty option list, got %v", out.Sets["categories"])
	}
	if len(out.Warnings) != 2 {
		t.Fatalf("warnings = %v, want exactly one per failed reference", out.Warnings)
	}
	joined := strings.Join(out.Warnings, "\n")
	if !strings.Contains(joined, "categories") || !strings.Contains(joined, "types") {
		t.Errorf("warnings should name the failed references: %v", out.Warnings)
	}
}

func TestLoadOptions_SortedCaseInsensitive(t *testing.T) {
	opts := buildOptions([]map[string]interface{}{
		{"id": "3", "name": "zebra"},
		{"id": "1", "name": "Apple"},
		{"id": "2", "name": "apricot"},
		{"id": "4", "name": "Banana"},
	}, "name")

	got := make([]string, len(opts))
	for i, o := range opts {
		got[i] = o.Label
	}
	want := []string{"Apple", "apricot", "Banana", "zebra"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestBuildOptions_LabelFallbacks(t *testing.T) {
	opts := buildOptions([]map[string]interface{}{
		{"id": "a", "title": "From Title"},
		{"id": "b", "value": "from-value"},
		{"id": "c"},
		{"name": "no id, skipped"},
	}, "missing_field")

	if len(opts) != 3 {
		t.Fatalf("options = %d, want 3 (rows without id skipped)", len(opts))
	}
	byID := map[string]string{}
	for _, o := range opts {
		byID[o.ID] = o.Label
	}
	if byID["a"] != "From Title" || byID["b"] != "from-value" || byID["c"] != "c" {
		t.Errorf("labels = %v", byID)
	}
}

func TestLoadOptions_NoReferences(t *testing.T) {
	desc, _ := resource.Lookup("regions")
	out := LoadOptions(context.Background(), &refFetcher{}, desc)
	if len(out.Sets) != 0 || len(out.Warnings) != 0 {
		t.Errorf("out = %+v, want empty", out)
	}
}
