package query

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type product struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Price    float64           `json:"price"`
	Category map[string]string `json:"category,omitempty"`
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name     string
		spec     Spec
		total    int64
		next     *PageRef
		previous *PageRef
	}{
		{"single page", Spec{Page: 1, Limit: 10}, 7, nil, nil},
		{"exact fit", Spec{Page: 1, Limit: 10}, 10, nil, nil},
		{"first of many", Spec{Page: 1, Limit: 10}, 11, &PageRef{Page: 2, Limit: 10}, nil},
		{"middle", Spec{Page: 2, Limit: 5}, 20, &PageRef{Page: 3, Limit: 5}, &PageRef{Page: 1, Limit: 5}},
		{"last", Spec{Page: 4, Limit: 5}, 20, nil, &PageRef{Page: 3, Limit: 5}},
		{"past the end", Spec{Page: 9, Limit: 5}, 20, nil, &PageRef{Page: 8, Limit: 5}},
		{"empty", Spec{Page: 1, Limit: 10}, 0, nil, nil},
		{"skip near int max", Spec{Page: 922337203685477581, Limit: 10}, 5, nil, &PageRef{Page: 922337203685477580, Limit: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(tt.spec, tt.total)
			assert.Equal(t, tt.next, p.Next)
			assert.Equal(t, tt.previous, p.Previous)
		})
	}
}

func TestPaginate_ClampedHugePage(t *testing.T) {
	spec := Parse(map[string][]string{"page": {"922337203685477581"}, "limit": {"10"}})

	p := Paginate(spec, 5)

	assert.Nil(t, p.Next)
	assert.Equal(t, &PageRef{Page: MaxPage - 1, Limit: 10}, p.Previous)
}

func TestNewEnvelope(t *testing.T) {
	items := []product{{ID: "1", Name: "Desk", Price: 120}, {ID: "2", Name: "Lamp", Price: 100}}

	env, err := NewEnvelope(Spec{Page: 1, Limit: 2}, items, 5)
	require.NoError(t, err)

	assert.True(t, env.Success)
	assert.Equal(t, 2, env.Results)
	assert.Equal(t, &PageRef{Page: 2, Limit: 2}, env.Pagination.Next)
	assert.Nil(t, env.Pagination.Previous)
	assert.Equal(t, items, env.Data)
}

func TestNewEnvelope_EmptyDataIsArray(t *testing.T) {
	env, err := NewEnvelope[product](Spec{Page: 1, Limit: 10}, nil, 0)
	require.NoError(t, err)

	raw, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"results":0,"pagination":{},"data":[]}`, string(raw))
}

func TestNewEnvelope_Projection(t *testing.T) {
	items := []product{{ID: "1", Name: "Desk", Price: 120, Category: map[string]string{"name": "Office"}}}

	env, err := NewEnvelope(Spec{Page: 1, Limit: 10, Select: []string{"name"}}, items, 1, "category")
	require.NoError(t, err)

	raw, err := json.Marshal(env.Data)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1","name":"Desk","category":{"name":"Office"}}]`, string(raw))
}
