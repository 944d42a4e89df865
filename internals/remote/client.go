package remote

import (
	"context"
	"fmt"
)

// Client menjalankan Query. dest selalu pointer ke slice (mis. *[]model.AgendaModel).
type Client interface {
	Fetch(ctx context.Context, q Query, dest any) error
	Ping(ctx context.Context) error
}

// List mengembalikan koleksi; hasil kosong bukan error.
func List[T any](ctx context.Context, c Client, q Query) ([]T, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	var rows []T
	if err := c.Fetch(ctx, q, &rows); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", q.Table, err)
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

// One menjalankan lookup satu baris; nol baris → ErrNotFound.
func One[T any](ctx context.Context, c Client, q Query) (T, error) {
	var zero T
	rows, err := List[T](ctx, c, q.Single())
	if err != nil {
		return zero, err
	}
	if len(rows) == 0 {
		return zero, fmt.Errorf("fetch %s: %w", q.Table, ErrNotFound)
	}
	return rows[0], nil
}
