package repository

import "strings"

type Operator string

const (
	OpEq     Operator = "eq"
	OpNe     Operator = "ne"
	OpGt     Operator = "gt"
	OpGte    Operator = "gte"
	OpLt     Operator = "lt"
	OpLte    Operator = "lte"
	OpLike   Operator = "like"   // case-insensitive substring match
	OpEqFold Operator = "eqfold" // case-insensitive equality
	OpIn     Operator = "in"
	OpNull   Operator = "null"
)

// Condition restricts a query to records whose Field satisfies Op against
// Value. Field is an entity field name ("ParentID") or column ("parent_id").
type Condition struct {
	Field string
	Op    Operator
	Value interface{}
}

type SortField struct {
	Field string
	Desc  bool
}

// QueryCriteria bundles the optional filter, ordering and eager-load set of
// a collection query. The zero value selects every record in insertion
// order.
type QueryCriteria struct {
	Conditions []Condition
	Sort       []SortField
	Include    []string
}

func Where(field string, op Operator, value interface{}) Condition {
	return Condition{Field: field, Op: op, Value: value}
}

func (c QueryCriteria) Where(field string, op Operator, value interface{}) QueryCriteria {
	c.Conditions = append(append([]Condition(nil), c.Conditions...), Where(field, op, value))
	return c
}

func (c QueryCriteria) OrderBy(fields ...SortField) QueryCriteria {
	c.Sort = append(append([]SortField(nil), c.Sort...), fields...)
	return c
}

func (c QueryCriteria) With(include ...string) QueryCriteria {
	c.Include = append(append([]string(nil), c.Include...), include...)
	return c
}

// ParseSort reads a comma separated field list; a leading "-" sorts that
// field descending. "-price,name" => price DESC, name ASC.
func ParseSort(raw string) []SortField {
	var fields []SortField
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" || part == "-" {
			continue
		}
		if strings.HasPrefix(part, "-") {
			fields = append(fields, SortField{Field: part[1:], Desc: true})
			continue
		}
		fields = append(fields, SortField{Field: strings.TrimPrefix(part, "+")})
	}
	return fields
}

// ParseInclude splits a comma separated relation list.
func ParseInclude(raw string) []string {
	var include []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			include = append(include, part)
		}
	}
	return include
}
