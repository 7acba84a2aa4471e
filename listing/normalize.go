package listing

import (
	"fmt"
	"log"
	"sort"
)

// ListResult is a normalized page of rows. Rows stay opaque maps: the row
// shape is resource-dependent and only a few well-known keys (id, status,
// timestamps) are ever interpreted, defensively.
type ListResult struct {
	Rows     []map[string]interface{} `json:"rows"`
	Count    int                      `json:"count"`
	Warnings []string                 `json:"warnings,omitempty"`
}

// Normalize shapes a raw list envelope into a ListResult. Precedence is
// explicit: the resource's canonical listKey first, then the first
// array-valued property in key order. The fallback path is logged since it
// means the backend envelope drifted. Count prefers an explicit numeric
// "count" field and otherwise falls back to len(rows) — which cannot tell
// "truly zero rows" from "count omitted"; that approximation is accepted.
func Normalize(payload map[string]interface{}, listKey string) ListResult {
	var res ListResult

	raw, ok := payload[listKey].([]interface{})
	if !ok {
		if fallbackKey, arr, found := firstArrayValue(payload); found {
			log.Printf("listing: list key %q missing, falling back to %q", listKey, fallbackKey)
			res.Warnings = append(res.Warnings, fmt.Sprintf("response missing %q, used %q", listKey, fallbackKey))
			raw = arr
		}
	}

	res.Rows = make([]map[string]interface{}, 0, len(raw))
	for _, item := range raw {
		if row, ok := item.(map[string]interface{}); ok {
			res.Rows = append(res.Rows, row)
		}
	}

	if n, ok := numericCount(payload["count"]); ok {
		res.Count = n
	} else {
		res.Count = len(res.Rows)
	}
	if res.Count < 0 {
		res.Count = 0
	}
	return res
}

// firstArrayValue scans the payload in sorted key order and returns the
// first array-valued property. Sorted order makes the fallback
// deterministic; map iteration order would not be.
func firstArrayValue(payload map[string]interface{}) (string, []interface{}, bool) {
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if arr, ok := payload[k].([]interface{}); ok {
			return k, arr, true
		}
	}
	return "", nil, false
}

func numericCount(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	}
	return 0, false
}
