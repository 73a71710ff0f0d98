// Package querybuilder assembles postgres statements with positional
// placeholders. It covers exactly the shapes the repositories need:
// multi-row inserts with an optional suffix and aggregate selects.
package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// statement tracks bound arguments while clauses render. Placeholders
// are numbered by bind order, so clauses must render left to right.
type statement struct {
	args []any
}

func (s *statement) bind(value any) string {
	s.args = append(s.args, value)
	return "$" + strconv.Itoa(len(s.args))
}

// expand rewrites each ? in sql to the next bound placeholder. Extra
// question marks beyond len(values) pass through untouched.
func (s *statement) expand(sql string, values []any) string {
	if len(values) == 0 {
		return sql
	}

	var out strings.Builder
	used := 0
	for i := 0; i < len(sql); i++ {
		if sql[i] != '?' || used >= len(values) {
			out.WriteByte(sql[i])
			continue
		}
		out.WriteString(s.bind(values[used]))
		used++
	}
	return out.String()
}

// Condition renders one WHERE term, binding its arguments as it goes.
type Condition func(st *statement) string

func Eq(column string, value any) Condition {
	return func(st *statement) string {
		return column + " = " + st.bind(value)
	}
}

// In renders a membership test. An empty value list renders a clause
// that matches nothing, so callers need no special case.
func In(column string, values []any) Condition {
	return func(st *statement) string {
		if len(values) == 0 {
			return "1=0"
		}

		marks := make([]string, len(values))
		for i, v := range values {
			marks[i] = st.bind(v)
		}
		return column + " IN (" + strings.Join(marks, ", ") + ")"
	}
}

// Expr is the escape hatch for raw SQL terms; each ? binds the next
// value.
func Expr(sql string, values ...any) Condition {
	return func(st *statement) string {
		return st.expand(sql, values)
	}
}

type SelectBuilder struct {
	columns []string
	table   string
	joins   []string
	where   []Condition
	groupBy []string
	orderBy []string
	limit   int
	offset  int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Join(clause string) *SelectBuilder {
	b.joins = append(b.joins, strings.TrimSpace(clause))
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) GroupBy(parts ...string) *SelectBuilder {
	b.groupBy = append(b.groupBy, parts...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) Offset(offset int) *SelectBuilder {
	b.offset = offset
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	switch {
	case len(b.columns) == 0:
		return "", nil, fmt.Errorf("select columns are required")
	case strings.TrimSpace(b.table) == "":
		return "", nil, fmt.Errorf("select table is required")
	}

	st := &statement{args: make([]any, 0, len(b.where))}
	parts := []string{
		"SELECT " + strings.Join(b.columns, ", "),
		"FROM " + b.table,
	}
	for _, join := range b.joins {
		parts = append(parts, "JOIN "+join)
	}
	if clause := renderWhere(st, b.where); clause != "" {
		parts = append(parts, clause)
	}
	if len(b.groupBy) > 0 {
		parts = append(parts, "GROUP BY "+strings.Join(b.groupBy, ", "))
	}
	if len(b.orderBy) > 0 {
		parts = append(parts, "ORDER BY "+strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		parts = append(parts, "LIMIT "+strconv.Itoa(b.limit))
	}
	if b.offset > 0 {
		parts = append(parts, "OFFSET "+strconv.Itoa(b.offset))
	}

	return strings.Join(parts, " "), st.args, nil
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

// Suffix appends raw SQL after the VALUES list, typically ON CONFLICT
// or RETURNING.
func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(b.table) == "":
		return "", nil, fmt.Errorf("insert table is required")
	case len(b.columns) == 0:
		return "", nil, fmt.Errorf("insert columns are required")
	case len(b.rows) == 0:
		return "", nil, fmt.Errorf("insert values are required")
	}

	st := &statement{args: make([]any, 0, len(b.rows)*len(b.columns))}
	tuples := make([]string, len(b.rows))
	for i, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", i, len(row), len(b.columns))
		}
		marks := make([]string, len(row))
		for j, value := range row {
			marks[j] = st.bind(value)
		}
		tuples[i] = "(" + strings.Join(marks, ", ") + ")"
	}

	sql := "INSERT INTO " + b.table +
		" (" + strings.Join(b.columns, ", ") + ") VALUES " +
		strings.Join(tuples, ", ")
	if b.suffix != "" {
		sql += " " + b.suffix
	}

	return sql, st.args, nil
}

func renderWhere(st *statement, conditions []Condition) string {
	if len(conditions) == 0 {
		return ""
	}

	terms := make([]string, len(conditions))
	for i, condition := range conditions {
		terms[i] = condition(st)
	}
	return "WHERE " + strings.Join(terms, " AND ")
}
