package source

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"diporani_web/internals/constants"
	"diporani_web/internals/features/materials/dto"
	"diporani_web/internals/features/materials/model"
	"diporani_web/internals/remote"
)

type Remote struct {
	Client remote.Client
	Log    *zap.Logger
}

func NewRemote(client remote.Client, log *zap.Logger) *Remote {
	return &Remote{Client: client, Log: log.Named("materials")}
}

func (r *Remote) Kind() constants.ContentSource { return constants.SourceRemote }

func listQuery(limit int) remote.Query {
	q := remote.From("materials").
		Select(model.Columns...).
		Order("created_at", remote.Desc)
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q
}

func (r *Remote) List(ctx context.Context, limit int) ([]dto.MaterialCard, error) {
	rows, err := remote.List[model.MaterialModel](ctx, r.Client, listQuery(limit))
	if err != nil {
		r.Log.Error("❌ Error fetching materials", zap.Int("limit", limit), zap.Error(err))
		return nil, err
	}
	out := make([]dto.MaterialCard, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToMaterialCard(m))
	}
	return out, nil
}

func (r *Remote) Get(ctx context.Context, ref string) (dto.MaterialDetail, error) {
	if _, err := uuid.Parse(ref); err != nil {
		return dto.MaterialDetail{}, remote.ErrNotFound
	}
	q := remote.From("materials").Select(model.Columns...).Eq("id", ref)
	row, err := remote.One[model.MaterialModel](ctx, r.Client, q)
	if err != nil {
		if !remote.IsNotFound(err) {
			r.Log.Error("❌ Error fetching material", zap.String("id", ref), zap.Error(err))
		}
		return dto.MaterialDetail{}, err
	}
	return dto.ToMaterialDetail(row), nil
}
