package listing

import (
	"net/url"
	"sort"
	"strconv"
)

// Reserved query parameter names; everything else is a filter.
const (
	ParamPage     = "page"
	ParamSearch   = "q"
	ParamOrder    = "order"
	ParamPageSize = "page_size"
)

var allowedPageSizes = []int{20, 50, 100}

// QueryState is the explicit, serializable list-view state: page, free-text
// search, sort key, page size and multi-value filters. The browser URL is
// one serialization target of this state, never its only representation,
// so the controller stays testable without a navigation stack. All update
// methods are value-semantics: they return a new state and never mutate
// the receiver.
type QueryState struct {
	Page     int
	Search   string
	SortKey  string
	PageSize int
	Filters  map[string][]string
}

// NewQueryState returns the default state: page 1, page size 20, no filters.
func NewQueryState() QueryState {
	return QueryState{Page: 1, PageSize: 20, Filters: map[string][]string{}}
}

// snapPageSize clamps a requested page size to the nearest allowed value.
func snapPageSize(n int) int {
	best := allowedPageSizes[0]
	bestDist := abs(n - best)
	for _, s := range allowedPageSizes[1:] {
		if d := abs(n - s); d < bestDist {
			best, bestDist = s, d
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// dedupe removes repeated values, keeping first-seen order. Setting the
// same filter value twice must yield one entry.
func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// ParseQuery derives a QueryState from URL query parameters.
func ParseQuery(v url.Values) QueryState {
	s := NewQueryState()
	if p, err := strconv.Atoi(v.Get(ParamPage)); err == nil && p >= 1 {
		s.Page = p
	}
	s.Search = v.Get(ParamSearch)
	s.SortKey = v.Get(ParamOrder)
	if ps, err := strconv.Atoi(v.Get(ParamPageSize)); err == nil && ps > 0 {
		s.PageSize = snapPageSize(ps)
	}
	for key, vals := range v {
		switch key {
		case ParamPage, ParamSearch, ParamOrder, ParamPageSize:
			continue
		}
		if deduped := dedupe(vals); len(deduped) > 0 {
			s.Filters[key] = deduped
		}
	}
	return s
}

func (s QueryState) clone() QueryState {
	filters := make(map[string][]string, len(s.Filters))
	for k, v := range s.Filters {
		filters[k] = append([]string(nil), v...)
	}
	s.Filters = filters
	return s
}

// SetFilters merges a partial filter update into the state. A nil value
// removes the key; slice values become repeated parameters. Changing any
// filter resets the page to 1 so the view never lands on a now-out-of-range
// page.
func (s QueryState) SetFilters(patch map[string][]string) QueryState {
	next := s.clone()
	for key, vals := range patch {
		if vals == nil {
			delete(next.Filters, key)
			continue
		}
		if deduped := dedupe(vals); len(deduped) > 0 {
			next.Filters[key] = deduped
		} else {
			delete(next.Filters, key)
		}
	}
	next.Page = 1
	return next
}

// GoToPage sets the page without touching anything else. No clamping: an
// out-of-range page yields an empty result set, which is a valid state.
func (s QueryState) GoToPage(n int) QueryState {
	next := s.clone()
	if n < 1 {
		n = 1
	}
	next.Page = n
	return next
}

// WithSearch sets the free-text query and resets the page to 1.
func (s QueryState) WithSearch(text string) QueryState {
	next := s.clone()
	next.Search = text
	next.Page = 1
	return next
}

// WithSort sets the sort key without resetting the page.
func (s QueryState) WithSort(key string) QueryState {
	next := s.clone()
	next.SortKey = key
	return next
}

// Values serializes the state back into URL query parameters. Defaults
// (page 1, page size 20, empty search/sort) are omitted so equivalent
// states produce equivalent parameter sets.
func (s QueryState) Values() url.Values {
	v := url.Values{}
	if s.Page > 1 {
		v.Set(ParamPage, strconv.Itoa(s.Page))
	}
	if s.Search != "" {
		v.Set(ParamSearch, s.Search)
	}
	if s.SortKey != "" {
		v.Set(ParamOrder, s.SortKey)
	}
	if s.PageSize != 0 && s.PageSize != 20 {
		v.Set(ParamPageSize, strconv.Itoa(s.PageSize))
	}
	for _, key := range sortedFilterKeys(s.Filters) {
		for _, val := range s.Filters[key] {
			v.Add(key, val)
		}
	}
	return v
}

// Params builds the outbound request parameter bag: limit/offset from the
// page math, q and order only when set, filters only when non-empty.
func (s QueryState) Params() url.Values {
	pageSize := s.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	page := s.Page
	if page < 1 {
		page = 1
	}

	v := url.Values{}
	v.Set("limit", strconv.Itoa(pageSize))
	v.Set("offset", strconv.Itoa((page-1)*pageSize))
	if s.Search != "" {
		v.Set("q", s.Search)
	}
	if s.SortKey != "" {
		v.Set("order", s.SortKey)
	}
	for _, key := range sortedFilterKeys(s.Filters) {
		for _, val := range s.Filters[key] {
			v.Add(key, val)
		}
	}
	return v
}

// TotalPages computes the page count for a result total. At least 1 so the
// pager always has a current page to stand on.
func (s QueryState) TotalPages(count int) int {
	pageSize := s.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

func sortedFilterKeys(filters map[string][]string) []string {
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
