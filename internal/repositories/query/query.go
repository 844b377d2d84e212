// Package query models filter and sort expressions as structured values
// that are rendered to parameterized SQL. Raw clause text never reaches
// the database: field names are checked against a per-entity whitelist and
// values always travel as bind parameters.
package query

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrBadExpression marks every malformed or disallowed query expression so
// callers can report it as a client error rather than a store failure.
var ErrBadExpression = errors.New("bad query expression")

// Op is a comparison operator in a filter expression.
type Op string

const (
	OpEq   Op = "eq"
	OpNe   Op = "ne"
	OpGt   Op = "gt"
	OpGte  Op = "gte"
	OpLt   Op = "lt"
	OpLte  Op = "lte"
	OpLike Op = "like"
)

var sqlOps = map[Op]string{
	OpEq:   "=",
	OpNe:   "<>",
	OpGt:   ">",
	OpGte:  ">=",
	OpLt:   "<",
	OpLte:  "<=",
	OpLike: "LIKE",
}

// Filter is one field comparison.
type Filter struct {
	Field string
	Op    Op
	Value interface{}
}

// Sort is one ordering term.
type Sort struct {
	Field string
	Desc  bool
}

func errUnknownField(field string) error {
	return fmt.Errorf("%w: unknown field %q", ErrBadExpression, field)
}

func errUnknownOp(op Op) error {
	return fmt.Errorf("%w: unknown operator %q", ErrBadExpression, op)
}

// ApplyFilters renders filters onto the builder. Every field must appear in
// the allowed set.
func ApplyFilters(db *gorm.DB, filters []Filter, allowed map[string]bool) (*gorm.DB, error) {
	for _, f := range filters {
		if !allowed[f.Field] {
			return nil, errUnknownField(f.Field)
		}
		sqlOp, ok := sqlOps[f.Op]
		if !ok {
			return nil, errUnknownOp(f.Op)
		}
		db = db.Where(fmt.Sprintf("%s %s ?", f.Field, sqlOp), f.Value)
	}
	return db, nil
}

// ApplySorts renders sort terms onto the builder.
func ApplySorts(db *gorm.DB, sorts []Sort, allowed map[string]bool) (*gorm.DB, error) {
	for _, s := range sorts {
		if !allowed[s.Field] {
			return nil, errUnknownField(s.Field)
		}
		if s.Desc {
			db = db.Order(s.Field + " DESC")
		} else {
			db = db.Order(s.Field)
		}
	}
	return db, nil
}

// ParseFilters decodes "field:op:value" expressions from the request query
// string. The value part may itself contain colons.
func ParseFilters(exprs []string) ([]Filter, error) {
	var filters []Filter
	for _, expr := range exprs {
		if expr == "" {
			continue
		}
		parts := strings.SplitN(expr, ":", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: malformed filter %q (want field:op:value)", ErrBadExpression, expr)
		}
		op := Op(parts[1])
		if _, ok := sqlOps[op]; !ok {
			return nil, errUnknownOp(op)
		}
		value := parts[2]
		if op == OpLike {
			filters = append(filters, Filter{Field: parts[0], Op: op, Value: "%" + value + "%"})
			continue
		}
		filters = append(filters, Filter{Field: parts[0], Op: op, Value: value})
	}
	return filters, nil
}

// ParseSorts decodes a comma-separated sort list; a leading "-" marks a
// descending term.
func ParseSorts(expr string) []Sort {
	var sorts []Sort
	for _, term := range strings.Split(expr, ",") {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		if strings.HasPrefix(term, "-") {
			sorts = append(sorts, Sort{Field: strings.TrimPrefix(term, "-"), Desc: true})
			continue
		}
		sorts = append(sorts, Sort{Field: term})
	}
	return sorts
}
