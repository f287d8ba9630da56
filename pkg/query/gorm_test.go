package query

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type item struct {
	ID         string
	Name       string
	Price      float64
	CategoryID string
	CreatedAt  time.Time
}

var itemSchema = Schema{
	"id":          {Column: "id"},
	"name":        {Column: "name"},
	"price":       {Column: "price", Kind: Number},
	"category_id": {Column: "category_id"},
	"created_at":  {Column: "created_at", Kind: Time},
}

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test dbname=test sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func buildSQL(t *testing.T, db *gorm.DB, raw string) (string, []interface{}) {
	t.Helper()
	values, err := url.ParseQuery(raw)
	require.NoError(t, err)
	spec := Parse(values)

	tx, err := spec.Filter(db.Model(&item{}), itemSchema)
	require.NoError(t, err)

	var items []item
	stmt := spec.Order(tx, itemSchema).Find(&items).Statement
	return stmt.SQL.String(), stmt.Vars
}

func TestFilter_ComparisonOperators(t *testing.T) {
	sql, vars := buildSQL(t, dryRunDB(t), "price[gte]=100&price[lt]=500&sort=-price")

	assert.Contains(t, sql, `"price" >= $1`)
	assert.Contains(t, sql, `"price" < $2`)
	assert.Contains(t, sql, `ORDER BY "price" DESC,"id"`)
	assert.Equal(t, []interface{}{float64(100), float64(500)}, vars)
}

func TestFilter_EqualityAndIn(t *testing.T) {
	sql, vars := buildSQL(t, dryRunDB(t), "category_id[in]=a,b&name=Desk")

	assert.Contains(t, sql, `"category_id" IN ($1,$2)`)
	assert.Contains(t, sql, `"name" = $3`)
	assert.Equal(t, []interface{}{"a", "b", "Desk"}, vars)
}

func TestFilter_UnknownFieldMatchesNothing(t *testing.T) {
	sql, vars := buildSQL(t, dryRunDB(t), "price[where]=1")

	assert.Contains(t, sql, "1 = 0")
	assert.NotContains(t, sql, "where]")
	assert.Empty(t, vars)
}

func TestFilter_UnknownSortFieldIgnored(t *testing.T) {
	sql, _ := buildSQL(t, dryRunDB(t), "sort=password")

	assert.NotContains(t, sql, "password")
	assert.Contains(t, sql, `ORDER BY "id"`)
}

func TestFilter_InvalidValue(t *testing.T) {
	spec := Parse(url.Values{"price[gte]": {"cheap"}})

	_, err := spec.Filter(dryRunDB(t).Model(&item{}), itemSchema)
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestColumns(t *testing.T) {
	spec := Spec{Select: []string{"name", "password", "name"}}

	assert.Equal(t, []string{"id", "name"}, spec.Columns(itemSchema, nil))
	assert.Equal(t, []string{"id", "name", "category_id"},
		spec.Columns(itemSchema, &Expand{Path: "Category", ForeignKey: "category_id"}))
	assert.Nil(t, Spec{}.Columns(itemSchema, nil))
}

func TestRun_DryRun(t *testing.T) {
	spec := Parse(url.Values{"price[gte]": {"100"}, "limit": {"5"}})

	items, total, err := Run[item](context.Background(), dryRunDB(t), itemSchema, spec, nil)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, total)
}

func TestRun_OversizedLimit(t *testing.T) {
	spec := Parse(url.Values{"limit": {"9223372036854775807"}})

	var items []item
	assert.NotPanics(t, func() {
		var err error
		items, _, err = Run[item](context.Background(), dryRunDB(t), itemSchema, spec, nil)
		require.NoError(t, err)
	})
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestRun_InvalidFilter(t *testing.T) {
	spec := Parse(url.Values{"created_at[gt]": {"yesterday"}})

	_, _, err := Run[item](context.Background(), dryRunDB(t), itemSchema, spec, nil)
	assert.ErrorIs(t, err, ErrInvalidFilter)
}
