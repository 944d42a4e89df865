// Package resource menyimpan status satu kali fetch: idle → loading → ready | failed.
//
// Setiap view (fragment beranda, halaman list, halaman detail, endpoint JSON)
// memegang Collection atau Item miliknya sendiri; tidak ada cache bersama.
// Status tidak pernah kembali ke loading setelah selesai, fetch ulang berarti
// nilai baru.
package resource

import (
	"errors"

	"diporani_web/internals/remote"
)

type State int

const (
	Idle State = iota
	Loading
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

/* ===============================
   Collection
=================================*/

type Collection[T any] struct {
	state State
	items []T
	err   error
}

// Pending: section belum punya data (skeleton).
func Pending[T any]() Collection[T] {
	return Collection[T]{state: Loading}
}

// Resolve menutup fetch list. Error → failed; nil slice → ready kosong.
func Resolve[T any](items []T, err error) Collection[T] {
	if err != nil {
		return Collection[T]{state: Failed, err: err}
	}
	if items == nil {
		items = []T{}
	}
	return Collection[T]{state: Ready, items: items}
}

func (c Collection[T]) State() State { return c.state }
func (c Collection[T]) Items() []T   { return c.items }
func (c Collection[T]) Err() error   { return c.err }
func (c Collection[T]) Len() int     { return len(c.items) }
func (c Collection[T]) Loading() bool {
	return c.state == Loading || c.state == Idle
}
func (c Collection[T]) Failed() bool { return c.state == Failed }
func (c Collection[T]) Ready() bool  { return c.state == Ready }

// Empty hanya true untuk fetch yang sukses tanpa baris.
func (c Collection[T]) Empty() bool {
	return c.state == Ready && len(c.items) == 0
}

// Map mengubah item tanpa mengubah status.
func Map[T, U any](c Collection[T], fn func(T) U) Collection[U] {
	out := Collection[U]{state: c.state, err: c.err}
	if c.items != nil {
		out.items = make([]U, 0, len(c.items))
		for _, it := range c.items {
			out.items = append(out.items, fn(it))
		}
	}
	return out
}

/* ===============================
   Item
=================================*/

type Item[T any] struct {
	state State
	value *T
	err   error
}

func PendingItem[T any]() Item[T] {
	return Item[T]{state: Loading}
}

// ResolveItem menutup fetch satu baris. ErrNotFound dianggap ready tanpa nilai;
// error lain → failed. Keduanya dirender sebagai "tidak ditemukan".
func ResolveItem[T any](v T, err error) Item[T] {
	switch {
	case err == nil:
		return Item[T]{state: Ready, value: &v}
	case errors.Is(err, remote.ErrNotFound):
		return Item[T]{state: Ready}
	default:
		return Item[T]{state: Failed, err: err}
	}
}

// Found membungkus hasil lookup lokal (slice statis) yang pakai pola (v, ok).
func Found[T any](v T, ok bool) Item[T] {
	if !ok {
		return Item[T]{state: Ready}
	}
	return Item[T]{state: Ready, value: &v}
}

func (i Item[T]) State() State { return i.state }
func (i Item[T]) Err() error   { return i.err }
func (i Item[T]) Loading() bool {
	return i.state == Loading || i.state == Idle
}
func (i Item[T]) Failed() bool { return i.state == Failed }

// Value mengembalikan nilai dan apakah ada.
func (i Item[T]) Value() (T, bool) {
	if i.value == nil {
		var zero T
		return zero, false
	}
	return *i.value, true
}

// NotFound: fetch sudah selesai tapi tidak ada yang bisa dirender.
func (i Item[T]) NotFound() bool {
	if i.Loading() {
		return false
	}
	return i.value == nil
}
