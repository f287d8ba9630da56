// Package query turns a list request's query string into a filter, sort,
// projection and page window, runs it through gorm and wraps the page in the
// list envelope.
//
//	GET /products?price[gte]=100&sort=-price&select=name,price&page=2&limit=5
//
// Operator suffixes are looked up in a fixed table. A suffix outside the table
// is not an operator: the whole key is kept as a plain equality field.
package query

import (
	"errors"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

type Operator string

const (
	OpEq  Operator = "eq"
	OpLt  Operator = "lt"
	OpLte Operator = "lte"
	OpGt  Operator = "gt"
	OpGte Operator = "gte"
	OpIn  Operator = "in"
)

var operatorTokens = map[string]Operator{
	"lt":  OpLt,
	"lte": OpLte,
	"gt":  OpGt,
	"gte": OpGte,
	"in":  OpIn,
}

const (
	DefaultPage  = 1
	DefaultLimit = 10

	// Larger values are clamped. With both caps in place Skip stays far
	// below the int range.
	MaxLimit = 100
	MaxPage  = 1000000
)

var DefaultSort = []SortField{{Field: "created_at", Desc: true}}

var reservedKeys = map[string]bool{
	"select": true,
	"sort":   true,
	"page":   true,
	"limit":  true,
}

type Condition struct {
	Field  string
	Op     Operator
	Values []string
}

type SortField struct {
	Field string
	Desc  bool
}

// Spec is the request-scoped retrieval plan built by Parse.
type Spec struct {
	Conditions []Condition
	Select     []string
	Sort       []SortField
	Page       int
	Limit      int
}

func (s Spec) Skip() int {
	return (s.Page - 1) * s.Limit
}

func Parse(values url.Values) Spec {
	spec := Spec{
		Select: splitFields(values.Get("select")),
		Sort:   parseSort(values.Get("sort")),
		Page:   boundedInt(values.Get("page"), DefaultPage, MaxPage),
		Limit:  boundedInt(values.Get("limit"), DefaultLimit, MaxLimit),
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		if !reservedKeys[key] {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		spec.Conditions = append(spec.Conditions, parseCondition(key, values[key]))
	}

	return spec
}

func parseCondition(key string, raw []string) Condition {
	field, op := key, OpEq
	if open := strings.IndexByte(key, '['); open > 0 && strings.HasSuffix(key, "]") {
		if known, ok := operatorTokens[key[open+1:len(key)-1]]; ok {
			field, op = key[:open], known
		}
	}

	values := raw
	if op == OpIn {
		values = nil
		for _, v := range raw {
			values = append(values, splitFields(v)...)
		}
	}

	return Condition{Field: field, Op: op, Values: values}
}

func parseSort(raw string) []SortField {
	var fields []SortField
	for _, name := range splitFields(raw) {
		desc := strings.HasPrefix(name, "-")
		name = strings.TrimLeft(name, "-+")
		if name == "" {
			continue
		}
		fields = append(fields, SortField{Field: name, Desc: desc})
	}
	if len(fields) == 0 {
		return DefaultSort
	}
	return fields
}

func splitFields(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// boundedInt parses a positive integer, falling back on junk and clamping to
// max. Values too large for an int clamp as well.
func boundedInt(raw string, fallback, max int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(strings.TrimSpace(raw), "-") {
		return max
	}
	if err != nil || n < 1 {
		return fallback
	}
	if n > max {
		return max
	}
	return n
}
