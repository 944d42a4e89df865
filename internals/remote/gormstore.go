package remote

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore menjalankan Query langsung ke Postgres (Supabase) lewat gorm.
// Bentuk query sama persis dengan PostgREST: projection, filter, order, limit.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) build(ctx context.Context, q Query) *gorm.DB {
	tx := s.DB.WithContext(ctx).Table(q.Table)
	if len(q.Columns) > 0 {
		tx = tx.Select(q.Columns)
	}
	for _, f := range q.Filters {
		tx = tx.Where(filterExpr(f))
	}
	for _, o := range q.Orders {
		tx = tx.Order(clause.OrderByColumn{
			Column: clause.Column{Name: o.Column},
			Desc:   o.Direction == Desc,
		})
	}
	if q.Max > 0 {
		tx = tx.Limit(q.Max)
	}
	return tx
}

func filterExpr(f Filter) clause.Expression {
	col := clause.Column{Name: f.Column}
	switch f.Op {
	case OpNeq:
		return clause.Neq{Column: col, Value: f.Value}
	case OpGt:
		return clause.Gt{Column: col, Value: f.Value}
	case OpGte:
		return clause.Gte{Column: col, Value: f.Value}
	case OpLt:
		return clause.Lt{Column: col, Value: f.Value}
	case OpLte:
		return clause.Lte{Column: col, Value: f.Value}
	default:
		return clause.Eq{Column: col, Value: f.Value}
	}
}

func (s *GormStore) Fetch(ctx context.Context, q Query, dest any) error {
	if err := q.Validate(); err != nil {
		return err
	}
	if err := s.build(ctx, q).Find(dest).Error; err != nil {
		return mapPGError(err)
	}
	return nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// --- PG error mapping ---
func mapPGError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		status := 400
		switch pgErr.Code {
		case "42P01", "42703": // undefined_table, undefined_column
			status = 404
		case "42501": // insufficient_privilege (RLS)
			status = 403
		case "57014": // statement timeout
			status = 504
		}
		return &QueryError{
			Status:  status,
			Code:    pgErr.Code,
			Message: pgErr.Message,
			Details: pgErr.Detail,
			Hint:    pgErr.Hint,
		}
	}
	return fmt.Errorf("gorm query: %w", err)
}
