package query

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrInvalidFilter means a filter value does not fit the column it targets.
var ErrInvalidFilter = errors.New("invalid filter value")

type Kind int

const (
	String Kind = iota
	Number
	Integer
	Bool
	Time
)

type Field struct {
	Column string
	Kind   Kind
}

// Schema lists the fields of one collection that a query string may name,
// keyed by their JSON name.
type Schema map[string]Field

// Expand preloads a related collection with a reduced column set.
// ForeignKey is added to a projected select so the preload can still join.
type Expand struct {
	Path       string
	Columns    []string
	ForeignKey string
}

var matchNothing = clause.Expr{SQL: "1 = 0"}

// Filter adds the conditions of s to db. Conditions on fields the schema does
// not know match no rows.
func (s Spec) Filter(db *gorm.DB, schema Schema) (*gorm.DB, error) {
	var exprs []clause.Expression
	for _, cond := range s.Conditions {
		expr, err := cond.expression(schema)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	if len(exprs) == 0 {
		return db, nil
	}
	return db.Clauses(clause.Where{Exprs: exprs}), nil
}

func (c Condition) expression(schema Schema) (clause.Expression, error) {
	field, ok := schema[c.Field]
	if !ok || (len(c.Values) == 0 && c.Op != OpIn) {
		return matchNothing, nil
	}

	values := make([]interface{}, 0, len(c.Values))
	for _, raw := range c.Values {
		v, err := convert(raw, field.Kind)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidFilter, c.Field, raw)
		}
		values = append(values, v)
	}

	col := clause.Column{Name: field.Column}
	switch c.Op {
	case OpLt:
		return clause.Lt{Column: col, Value: values[0]}, nil
	case OpLte:
		return clause.Lte{Column: col, Value: values[0]}, nil
	case OpGt:
		return clause.Gt{Column: col, Value: values[0]}, nil
	case OpGte:
		return clause.Gte{Column: col, Value: values[0]}, nil
	case OpIn:
		if len(values) == 0 {
			return matchNothing, nil
		}
		return clause.IN{Column: col, Values: values}, nil
	}

	if len(values) == 1 {
		return clause.Eq{Column: col, Value: values[0]}, nil
	}
	return clause.IN{Column: col, Values: values}, nil
}

// Order applies the sort fields the schema knows, then id as a tie breaker so
// pages stay stable.
func (s Spec) Order(db *gorm.DB, schema Schema) *gorm.DB {
	for _, sf := range s.Sort {
		field, ok := schema[sf.Field]
		if !ok {
			continue
		}
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: field.Column}, Desc: sf.Desc})
	}
	return db.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
}

// Columns returns the select list for a projected query, or nil for all columns.
func (s Spec) Columns(schema Schema, expand *Expand) []string {
	if len(s.Select) == 0 {
		return nil
	}
	cols := []string{"id"}
	seen := map[string]bool{"id": true}
	add := func(col string) {
		if col != "" && !seen[col] {
			seen[col] = true
			cols = append(cols, col)
		}
	}
	for _, name := range s.Select {
		if field, ok := schema[name]; ok {
			add(field.Column)
		}
	}
	if expand != nil {
		add(expand.ForeignKey)
	}
	return cols
}

// Run issues one count and one page fetch for M. The count sees the filter but
// not the page window.
func Run[M any](ctx context.Context, db *gorm.DB, schema Schema, spec Spec, expand *Expand) ([]M, int64, error) {
	base, err := spec.Filter(db.WithContext(ctx).Model(new(M)), schema)
	if err != nil {
		return nil, 0, err
	}
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count: %w", err)
	}

	find := spec.Order(base, schema)
	if cols := spec.Columns(schema, expand); cols != nil {
		find = find.Select(cols)
	}
	if expand != nil {
		columns := expand.Columns
		find = find.Preload(expand.Path, func(tx *gorm.DB) *gorm.DB {
			if len(columns) == 0 {
				return tx
			}
			return tx.Select(columns)
		})
	}

	items := []M{}
	if err := find.Offset(spec.Skip()).Limit(spec.Limit).Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch: %w", err)
	}
	return items, total, nil
}

func convert(raw string, kind Kind) (interface{}, error) {
	switch kind {
	case Number:
		return strconv.ParseFloat(raw, 64)
	case Integer:
		return strconv.ParseInt(raw, 10, 64)
	case Bool:
		return strconv.ParseBool(raw)
	case Time:
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t, nil
		}
		return time.Parse("2006-01-02", raw)
	}
	return raw, nil
}
