package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	values, err := url.ParseQuery(raw)
	require.NoError(t, err)
	return values
}

func TestParse_Defaults(t *testing.T) {
	spec := Parse(url.Values{})

	assert.Equal(t, 1, spec.Page)
	assert.Equal(t, 10, spec.Limit)
	assert.Equal(t, 0, spec.Skip())
	assert.Equal(t, []SortField{{Field: "created_at", Desc: true}}, spec.Sort)
	assert.Empty(t, spec.Select)
	assert.Empty(t, spec.Conditions)
}

func TestParse_ReservedKeysNeverFilter(t *testing.T) {
	spec := Parse(mustQuery(t, "select=name,price&sort=price&page=2&limit=3"))

	assert.Empty(t, spec.Conditions)
	assert.Equal(t, []string{"name", "price"}, spec.Select)
	assert.Equal(t, []SortField{{Field: "price"}}, spec.Sort)
	assert.Equal(t, 2, spec.Page)
	assert.Equal(t, 3, spec.Limit)
	assert.Equal(t, 3, spec.Skip())
}

func TestParse_Operators(t *testing.T) {
	spec := Parse(mustQuery(t, "price[gte]=100&price[lt]=500&weeks[lte]=8&rating[gt]=2&careers[in]=Business,UI/UX"))

	assert.ElementsMatch(t, []Condition{
		{Field: "careers", Op: OpIn, Values: []string{"Business", "UI/UX"}},
		{Field: "price", Op: OpGte, Values: []string{"100"}},
		{Field: "price", Op: OpLt, Values: []string{"500"}},
		{Field: "rating", Op: OpGt, Values: []string{"2"}},
		{Field: "weeks", Op: OpLte, Values: []string{"8"}},
	}, spec.Conditions)
}

func TestParse_UnknownOperatorStaysLiteral(t *testing.T) {
	spec := Parse(mustQuery(t, "price[where]=1&name[$ne]=x"))

	assert.ElementsMatch(t, []Condition{
		{Field: "price[where]", Op: OpEq, Values: []string{"1"}},
		{Field: "name[$ne]", Op: OpEq, Values: []string{"x"}},
	}, spec.Conditions)
}

func TestParse_InWithRepeatedValues(t *testing.T) {
	spec := Parse(mustQuery(t, "category_id[in]=a&category_id[in]=b,c"))

	require.Len(t, spec.Conditions, 1)
	assert.Equal(t, []string{"a", "b", "c"}, spec.Conditions[0].Values)
}

func TestParse_InvalidPageAndLimitFallBack(t *testing.T) {
	for _, raw := range []string{
		"page=abc&limit=xyz",
		"page=0&limit=0",
		"page=-3&limit=-1",
		"page=1.5&limit=",
	} {
		spec := Parse(mustQuery(t, raw))
		assert.Equal(t, DefaultPage, spec.Page, raw)
		assert.Equal(t, DefaultLimit, spec.Limit, raw)
	}
}

func TestParse_LimitAndPageAreClamped(t *testing.T) {
	spec := Parse(mustQuery(t, "limit=9223372036854775807&page=922337203685477581"))
	assert.Equal(t, MaxLimit, spec.Limit)
	assert.Equal(t, MaxPage, spec.Page)
	assert.Equal(t, (MaxPage-1)*MaxLimit, spec.Skip())

	spec = Parse(mustQuery(t, "limit=200000000&page=99999999999999999999999"))
	assert.Equal(t, MaxLimit, spec.Limit)
	assert.Equal(t, MaxPage, spec.Page)

	spec = Parse(mustQuery(t, "limit=-99999999999999999999999"))
	assert.Equal(t, DefaultLimit, spec.Limit)

	spec = Parse(mustQuery(t, "limit=100&page=7"))
	assert.Equal(t, 100, spec.Limit)
	assert.Equal(t, 7, spec.Page)
}

func TestParse_Sort(t *testing.T) {
	spec := Parse(mustQuery(t, "sort=-price, name ,,"))
	assert.Equal(t, []SortField{{Field: "price", Desc: true}, {Field: "name"}}, spec.Sort)

	spec = Parse(mustQuery(t, "sort=-,"))
	assert.Equal(t, DefaultSort, spec.Sort)
}

func TestSkip(t *testing.T) {
	for page := 1; page <= 4; page++ {
		for limit := 1; limit <= 25; limit += 6 {
			spec := Spec{Page: page, Limit: limit}
			assert.Equal(t, (page-1)*limit, spec.Skip())
		}
	}
}
