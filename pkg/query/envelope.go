package query

import (
	"encoding/json"
	"fmt"
)

type PageRef struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type Pagination struct {
	Next     *PageRef `json:"next,omitempty"`
	Previous *PageRef `json:"previous,omitempty"`
}

// Envelope is the list response body handed to the client as is.
type Envelope struct {
	Success    bool        `json:"success"`
	Results    int         `json:"results"`
	Pagination Pagination  `json:"pagination"`
	Data       interface{} `json:"data"`
}

func Paginate(spec Spec, total int64) Pagination {
	var p Pagination
	skip := int64(spec.Skip())
	if skip < total && int64(spec.Limit) < total-skip {
		p.Next = &PageRef{Page: spec.Page + 1, Limit: spec.Limit}
	}
	if skip > 0 {
		p.Previous = &PageRef{Page: spec.Page - 1, Limit: spec.Limit}
	}
	return p
}

// NewEnvelope wraps one page of items. With a select list the items are cut
// down to the selected fields, id and the keep keys (expanded relations).
func NewEnvelope[T any](spec Spec, items []T, total int64, keep ...string) (*Envelope, error) {
	if items == nil {
		items = []T{}
	}

	var data interface{} = items
	if len(spec.Select) > 0 {
		projected, err := Project(items, spec.Select, keep...)
		if err != nil {
			return nil, err
		}
		data = projected
	}

	return &Envelope{
		Success:    true,
		Results:    len(items),
		Pagination: Paginate(spec, total),
		Data:       data,
	}, nil
}

// Project re-encodes items as JSON objects holding only the named keys.
func Project[T any](items []T, fields []string, keep ...string) ([]map[string]json.RawMessage, error) {
	allowed := map[string]bool{"id": true}
	for _, f := range fields {
		allowed[f] = true
	}
	for _, k := range keep {
		allowed[k] = true
	}

	out := make([]map[string]json.RawMessage, 0, len(items))
	for _, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("failed to encode item: %w", err)
		}
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, fmt.Errorf("failed to decode item: %w", err)
		}
		for key := range obj {
			if !allowed[key] {
				delete(obj, key)
			}
		}
		out = append(out, obj)
	}
	return out, nil
}
