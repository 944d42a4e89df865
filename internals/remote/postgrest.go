package remote

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

const defaultTimeout = 10 * time.Second

type PostgRESTConfig struct {
	// BaseURL proyek Supabase, mis. https://xyz.supabase.co (tanpa /rest/v1)
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// PostgREST menjalankan Query lewat REST API Supabase memakai HTTP client Fiber.
type PostgREST struct {
	base    string
	apiKey  string
	timeout time.Duration
	http    *fiber.Client
}

func NewPostgREST(cfg PostgRESTConfig) (*PostgREST, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("postgrest: base url is required")
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("postgrest: invalid base url: %w", err)
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("postgrest: api key is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &PostgREST{
		base:    base + "/rest/v1",
		apiKey:  cfg.APIKey,
		timeout: timeout,
		http:    fiber.AcquireClient(),
	}, nil
}

// EncodeQuery menerjemahkan Query ke query string PostgREST.
//
//	select=id,title&starts_at=gte.2025-01-01T00:00:00Z&order=starts_at.asc&limit=3
func EncodeQuery(q Query) url.Values {
	v := url.Values{}
	v.Set("select", q.Projection())
	for _, f := range q.Filters {
		v.Add(f.Column, string(f.Op)+"."+f.Value)
	}
	if len(q.Orders) > 0 {
		parts := make([]string, 0, len(q.Orders))
		for _, o := range q.Orders {
			parts = append(parts, o.Column+"."+string(o.Direction))
		}
		v.Set("order", strings.Join(parts, ","))
	}
	if q.Max > 0 {
		v.Set("limit", strconv.Itoa(q.Max))
	}
	return v
}

func (p *PostgREST) endpoint(q Query) string {
	return p.base + "/" + url.PathEscape(q.Table) + "?" + EncodeQuery(q).Encode()
}

func (p *PostgREST) get(ctx context.Context, target string) (int, []byte, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}
	timeout := p.timeout
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl); left < timeout {
			timeout = left
		}
	}
	if timeout <= 0 {
		return 0, nil, context.DeadlineExceeded
	}

	a := p.http.Get(target).
		Set("apikey", p.apiKey).
		Set(fiber.HeaderAuthorization, "Bearer "+p.apiKey).
		Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON).
		Timeout(timeout)

	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return 0, nil, fmt.Errorf("postgrest request: %w", errors.Join(errs...))
	}
	return code, body, nil
}

func (p *PostgREST) Fetch(ctx context.Context, q Query, dest any) error {
	if err := q.Validate(); err != nil {
		return err
	}
	code, body, err := p.get(ctx, p.endpoint(q))
	if err != nil {
		return err
	}
	if code < 200 || code > 299 {
		return decodeError(code, body)
	}
	if err := sonic.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("postgrest decode %s: %w", q.Table, err)
	}
	return nil
}

func (p *PostgREST) Ping(ctx context.Context) error {
	code, body, err := p.get(ctx, p.base+"/")
	if err != nil {
		return err
	}
	if code < 200 || code > 299 {
		return decodeError(code, body)
	}
	return nil
}

func decodeError(code int, body []byte) error {
	qe := &QueryError{Status: code}
	if len(body) > 0 {
		if err := sonic.Unmarshal(body, qe); err != nil || qe.Message == "" {
			qe.Message = strings.TrimSpace(string(body))
		}
	}
	if qe.Message == "" {
		qe.Message = fiber.NewError(code).Message
	}
	qe.Status = code
	return qe
}
