// Package remotetest menyediakan remote.Client in-memory untuk test.
// Semantik filter, order, limit dan projection mengikuti PostgREST.
package remotetest

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"

	"diporani_web/internals/remote"
)

type Row = map[string]any

type Store struct {
	mu     sync.Mutex
	tables map[string][]Row
	fail   map[string]error

	// Queries mencatat setiap query yang dijalankan (urut).
	Queries []remote.Query
	PingErr error
}

func NewStore() *Store {
	return &Store{tables: map[string][]Row{}, fail: map[string]error{}}
}

func (s *Store) Insert(table string, rows ...Row) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[table] = append(s.tables[table], rows...)
	return s
}

// FailWith membuat semua query ke table mengembalikan err.
func (s *Store) FailWith(table string, err error) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[table] = err
	return s
}

func (s *Store) Calls(table string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, q := range s.Queries {
		if q.Table == table {
			n++
		}
	}
	return n
}

func (s *Store) Ping(context.Context) error { return s.PingErr }

func (s *Store) Fetch(ctx context.Context, q remote.Query, dest any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := q.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	s.Queries = append(s.Queries, q)
	if err := s.fail[q.Table]; err != nil {
		s.mu.Unlock()
		return err
	}
	src, ok := s.tables[q.Table]
	rows := make([]Row, 0, len(src))
	for _, r := range src {
		if matches(r, q.Filters) {
			rows = append(rows, r)
		}
	}
	s.mu.Unlock()

	if !ok {
		return &remote.QueryError{Status: 404, Code: "42P01", Message: fmt.Sprintf("relation %q does not exist", q.Table)}
	}

	if len(q.Orders) > 0 {
		sort.SliceStable(rows, func(i, j int) bool {
			for _, o := range q.Orders {
				c := compare(rows[i][o.Column], rows[j][o.Column])
				if c == 0 {
					continue
				}
				if o.Direction == remote.Desc {
					return c > 0
				}
				return c < 0
			}
			return false
		})
	}
	if q.Max > 0 && len(rows) > q.Max {
		rows = rows[:q.Max]
	}

	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, project(r, q.Columns))
	}

	b, err := sonic.Marshal(out)
	if err != nil {
		return err
	}
	return sonic.Unmarshal(b, dest)
}

func matches(r Row, filters []remote.Filter) bool {
	for _, f := range filters {
		v, ok := r[f.Column]
		if !ok || v == nil {
			return false
		}
		c := compareToString(v, f.Value)
		switch f.Op {
		case remote.OpEq:
			if c != 0 {
				return false
			}
		case remote.OpNeq:
			if c == 0 {
				return false
			}
		case remote.OpGt:
			if c <= 0 {
				return false
			}
		case remote.OpGte:
			if c < 0 {
				return false
			}
		case remote.OpLt:
			if c >= 0 {
				return false
			}
		case remote.OpLte:
			if c > 0 {
				return false
			}
		}
	}
	return true
}

func project(r Row, cols []string) Row {
	if len(cols) == 0 {
		cp := make(Row, len(r))
		for k, v := range r {
			cp[k] = v
		}
		return cp
	}
	cp := make(Row, len(cols))
	for _, c := range cols {
		if v, ok := r[c]; ok {
			cp[c] = v
		}
	}
	return cp
}

func compareToString(v any, s string) int {
	switch t := v.(type) {
	case int:
		return compareFloat(float64(t), s)
	case int64:
		return compareFloat(float64(t), s)
	case float64:
		return compareFloat(t, s)
	case bool:
		return strings.Compare(strconv.FormatBool(t), s)
	case time.Time:
		return compareStrings(t.UTC().Format(time.RFC3339Nano), s)
	default:
		return compareStrings(fmt.Sprint(t), s)
	}
}

func compareFloat(a float64, s string) int {
	b, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return strings.Compare(strconv.FormatFloat(a, 'f', -1, 64), s)
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// timestamp dibandingkan sebagai waktu, selain itu leksikografis.
func compareStrings(a, b string) int {
	ta, errA := time.Parse(time.RFC3339Nano, a)
	tb, errB := time.Parse(time.RFC3339Nano, b)
	if errA == nil && errB == nil {
		return ta.Compare(tb)
	}
	return strings.Compare(a, b)
}

func compare(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	switch t := b.(type) {
	case time.Time:
		return compareToString(a, t.UTC().Format(time.RFC3339Nano))
	case int, int64, float64:
		return compareToString(a, fmt.Sprint(t))
	default:
		return compareToString(a, fmt.Sprint(t))
	}
}
