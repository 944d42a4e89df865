package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type agendaRow struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	StartsAt time.Time `json:"starts_at"`
}

func newFakePostgREST(t *testing.T, h http.HandlerFunc) *PostgREST {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewPostgREST(PostgRESTConfig{BaseURL: srv.URL + "/", APIKey: "anon-key", Timeout: 2 * time.Second})
	require.NoError(t, err)
	return c
}

func TestNewPostgRESTRequiresCredentials(t *testing.T) {
	_, err := NewPostgREST(PostgRESTConfig{APIKey: "k"})
	require.Error(t, err)
	_, err = NewPostgREST(PostgRESTConfig{BaseURL: "https://x.supabase.co"})
	require.Error(t, err)
}

func TestPostgRESTFetchSendsQueryAndHeaders(t *testing.T) {
	var gotPath, gotSelect, gotFilter, gotOrder, gotLimit, gotKey, gotAuth string
	c := newFakePostgREST(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		q := r.URL.Query()
		gotSelect, gotFilter, gotOrder, gotLimit = q.Get("select"), q.Get("starts_at"), q.Get("order"), q.Get("limit")
		gotKey, gotAuth = r.Header.Get("apikey"), r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"a1","title":"Pelantikan","starts_at":"2025-02-01T08:00:00+00:00"}]`))
	})

	q := From("agendas").Select("id", "title", "starts_at").
		Gte("starts_at", "2025-01-01T00:00:00Z").Order("starts_at", Asc).Limit(3)

	rows, err := List[agendaRow](context.Background(), c, q)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Pelantikan", rows[0].Title)
	assert.True(t, rows[0].StartsAt.Equal(time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)))

	assert.Equal(t, "/rest/v1/agendas", gotPath)
	assert.Equal(t, "id,title,starts_at", gotSelect)
	assert.Equal(t, "gte.2025-01-01T00:00:00Z", gotFilter)
	assert.Equal(t, "starts_at.asc", gotOrder)
	assert.Equal(t, "3", gotLimit)
	assert.Equal(t, "anon-key", gotKey)
	assert.Equal(t, "Bearer anon-key", gotAuth)
}

func TestPostgRESTEmptyCollectionIsNotAnError(t *testing.T) {
	c := newFakePostgREST(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	rows, err := List[agendaRow](context.Background(), c, From("agendas"))
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)

	_, err = One[agendaRow](context.Background(), c, From("agendas").Eq("id", "nope"))
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestPostgRESTDecodesQueryError(t *testing.T) {
	c := newFakePostgREST(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"42P01","details":null,"hint":null,"message":"relation \"public.agendas\" does not exist"}`))
	})

	_, err := List[agendaRow](context.Background(), c, From("agendas"))
	require.Error(t, err)

	var qe *QueryError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, http.StatusNotFound, qe.Status)
	assert.Equal(t, "42P01", qe.Code)
	assert.Contains(t, qe.Message, "does not exist")
	assert.False(t, IsNotFound(err))
}

func TestPostgRESTNonJSONErrorBody(t *testing.T) {
	c := newFakePostgREST(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	})

	err := c.Ping(context.Background())
	var qe *QueryError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, http.StatusBadGateway, qe.Status)
	assert.Equal(t, "upstream down", qe.Message)
}

func TestPostgRESTUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := NewPostgREST(PostgRESTConfig{BaseURL: base, APIKey: "k", Timeout: time.Second})
	require.NoError(t, err)

	_, err = List[agendaRow](context.Background(), c, From("agendas"))
	require.Error(t, err)
	var qe *QueryError
	assert.False(t, IsNotFound(err))
	assert.False(t, errors.As(err, &qe))
}

func TestPostgRESTHonoursCancelledContext(t *testing.T) {
	calls := 0
	c := newFakePostgREST(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`[]`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := List[agendaRow](ctx, c, From("agendas"))
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}
