// Package remote adalah klien baca untuk backend data (Supabase/PostgREST atau Postgres langsung).
//
// Semua halaman membangun Query dengan bentuk yang sama:
//
//	remote.From("agendas").
//		Select("id", "title", "starts_at").
//		Gte("starts_at", now).
//		Order("starts_at", remote.Asc).
//		Limit(3)
//
// lalu menjalankannya lewat List atau One terhadap sebuah Client.
package remote

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Operator string

const (
	OpEq  Operator = "eq"
	OpNeq Operator = "neq"
	OpGt  Operator = "gt"
	OpGte Operator = "gte"
	OpLt  Operator = "lt"
	OpLte Operator = "lte"
)

func (o Operator) valid() bool {
	switch o {
	case OpEq, OpNeq, OpGt, OpGte, OpLt, OpLte:
		return true
	}
	return false
}

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

type Filter struct {
	Column string
	Op     Operator
	Value  string
}

type Ordering struct {
	Column    string
	Direction Direction
}

// Query bersifat value type: setiap method mengembalikan salinan baru.
type Query struct {
	Table   string
	Columns []string
	Filters []Filter
	Orders  []Ordering
	// 0 = tanpa batas
	Max    int
	single bool
}

func From(table string) Query {
	return Query{Table: strings.TrimSpace(table)}
}

func (q Query) Select(columns ...string) Query {
	q.Columns = append([]string(nil), columns...)
	return q
}

func (q Query) where(col string, op Operator, v any) Query {
	q.Filters = append(append([]Filter(nil), q.Filters...), Filter{Column: col, Op: op, Value: formatValue(v)})
	return q
}

func (q Query) Eq(col string, v any) Query  { return q.where(col, OpEq, v) }
func (q Query) Neq(col string, v any) Query { return q.where(col, OpNeq, v) }
func (q Query) Gt(col string, v any) Query  { return q.where(col, OpGt, v) }
func (q Query) Gte(col string, v any) Query { return q.where(col, OpGte, v) }
func (q Query) Lt(col string, v any) Query  { return q.where(col, OpLt, v) }
func (q Query) Lte(col string, v any) Query { return q.where(col, OpLte, v) }

func (q Query) Order(col string, dir Direction) Query {
	q.Orders = append(append([]Ordering(nil), q.Orders...), Ordering{Column: col, Direction: dir})
	return q
}

func (q Query) Limit(n int) Query {
	q.Max = n
	return q
}

// Single menandai lookup satu baris; limit dipaksa 1.
func (q Query) Single() Query {
	q.single = true
	q.Max = 1
	return q
}

func (q Query) IsSingle() bool { return q.single }

// Projection mengembalikan daftar kolom; kosong berarti semua kolom ("*").
func (q Query) Projection() string {
	if len(q.Columns) == 0 {
		return "*"
	}
	return strings.Join(q.Columns, ",")
}

var errInvalidQuery = errors.New("invalid query")

func (q Query) Validate() error {
	if q.Table == "" {
		return fmt.Errorf("%w: table is required", errInvalidQuery)
	}
	if q.Max < 0 {
		return fmt.Errorf("%w: negative limit %d", errInvalidQuery, q.Max)
	}
	for _, c := range q.Columns {
		if strings.TrimSpace(c) == "" {
			return fmt.Errorf("%w: empty column in projection", errInvalidQuery)
		}
	}
	for _, f := range q.Filters {
		if f.Column == "" {
			return fmt.Errorf("%w: filter without column", errInvalidQuery)
		}
		if !f.Op.valid() {
			return fmt.Errorf("%w: operator %q", errInvalidQuery, f.Op)
		}
	}
	for _, o := range q.Orders {
		if o.Column == "" {
			return fmt.Errorf("%w: order without column", errInvalidQuery)
		}
		if o.Direction != Asc && o.Direction != Desc {
			return fmt.Errorf("%w: direction %q", errInvalidQuery, o.Direction)
		}
	}
	return nil
}

// IsInvalidQuery reports whether err came from Query.Validate.
func IsInvalidQuery(err error) bool { return errors.Is(err, errInvalidQuery) }

func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
