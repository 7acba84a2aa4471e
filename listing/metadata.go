package listing

import (
	"context"
	"fmt"
	"net/url"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"storeadmin.GO/core/settle"
	"storeadmin.GO/resource"
)

// Option is one entry of a reference dropdown.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// OptionSets carries the reference lists a resource's filter/create UI
// needs, plus warnings for the references that failed to load. A failed
// reference yields an empty list, never a fatal error: the form must stay
// usable with whatever did load.
type OptionSets struct {
	Sets     map[string][]Option `json:"sets"`
	Warnings []string            `json:"warnings,omitempty"`
}

// referenceLimit caps each auxiliary fetch; dropdowns do not paginate.
const referenceLimit = 100

// LoadOptions fetches every reference list of the descriptor concurrently
// with settle-all semantics: one slow or failing fetch neither blocks nor
// fails the others.
func LoadOptions(ctx context.Context, client Fetcher, desc resource.Descriptor) OptionSets {
	out := OptionSets{Sets: make(map[string][]Option, len(desc.References))}
	if len(desc.References) == 0 {
		return out
	}

	tasks := make(map[string]settle.Task[[]Option], len(desc.References))
	for _, ref := range desc.References {
		ref := ref
		tasks[ref.Name] = func(ctx context.Context) ([]Option, error) {
			params := url.Values{}
			params.Set("limit", fmt.Sprint(referenceLimit))
			payload, err := client.List(ctx, ref.Endpoint, params)
			if err != nil {
				return nil, err
			}
			return buildOptions(Normalize(payload, ref.ListKey).Rows, ref.LabelField), nil
		}
	}

	results := settle.All(ctx, tasks)
	for name, r := range results {
		if r.Err != nil {
			out.Sets[name] = []Option{}
			out.Warnings = append(out.Warnings, fmt.Sprintf("could not load %s: %v", name, r.Err))
			continue
		}
		out.Sets[name] = r.Value
	}
	sort.Strings(out.Warnings)
	return out
}

// buildOptions shapes opaque rows into options and sorts them by label
// using a locale-aware, case-insensitive comparison for stable dropdown
// ordering.
func buildOptions(rows []map[string]interface{}, labelField string) []Option {
	opts := make([]Option, 0, len(rows))
	for _, row := range rows {
		id := stringField(row, "id")
		if id == "" {
			continue
		}
		label := stringField(row, labelField)
		if label == "" {
			label = firstStringField(row, "name", "title", "label", "value")
		}
		if label == "" {
			label = id
		}
		opts = append(opts, Option{ID: id, Label: label})
	}

	col := collate.New(language.Und, collate.Loose)
	sort.SliceStable(opts, func(i, j int) bool {
		return col.CompareString(opts[i].Label, opts[j].Label) < 0
	})
	return opts
}

func stringField(row map[string]interface{}, key string) string {
	if key == "" {
		return ""
	}
	switch v := row[key].(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	}
	return ""
}

func firstStringField(row map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if s := stringField(row, k); s != "" {
			return s
		}
	}
	return ""
}
