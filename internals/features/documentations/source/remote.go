package source

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"diporani_web/internals/constants"
	"diporani_web/internals/features/documentations/dto"
	"diporani_web/internals/features/documentations/model"
	"diporani_web/internals/remote"
)

type Remote struct {
	Client remote.Client
	Log    *zap.Logger
}

func NewRemote(client remote.Client, log *zap.Logger) *Remote {
	return &Remote{Client: client, Log: log.Named("documentations")}
}

func (r *Remote) Kind() constants.ContentSource { return constants.SourceRemote }

func (r *Remote) List(ctx context.Context, limit int) ([]dto.DocumentationCard, error) {
	q := remote.From("documentation_assets").
		Select(model.Columns...).
		Order("created_at", remote.Desc)
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := remote.List[model.DocumentationAssetModel](ctx, r.Client, q)
	if err != nil {
		r.Log.Error("❌ Error fetching dokumentasi", zap.Int("limit", limit), zap.Error(err))
		return nil, err
	}

	out := make([]dto.DocumentationCard, 0, len(rows))
	for _, m := range rows {
		card, err := dto.ToDocumentationCard(m)
		if err != nil {
			r.Log.Warn("⚠️ dokumentasi ditolak", zap.String("id", m.ID), zap.Error(err))
			continue
		}
		out = append(out, card)
	}
	return out, nil
}

func (r *Remote) Get(ctx context.Context, ref string) (dto.DocumentationDetail, error) {
	if _, err := uuid.Parse(ref); err != nil {
		return dto.DocumentationDetail{}, remote.ErrNotFound
	}
	q := remote.From("documentation_assets").Select(model.Columns...).Eq("id", ref)
	row, err := remote.One[model.DocumentationAssetModel](ctx, r.Client, q)
	if err != nil {
		if !remote.IsNotFound(err) {
			r.Log.Error("❌ Error fetching dokumentasi", zap.String("id", ref), zap.Error(err))
		}
		return dto.DocumentationDetail{}, err
	}
	d, err := dto.ToDocumentationDetail(row)
	if err != nil {
		r.Log.Warn("⚠️ dokumentasi ditolak", zap.String("id", ref), zap.Error(err))
		// baris ada tapi tidak bisa ditampilkan: perlakukan sebagai tidak ditemukan
		return dto.DocumentationDetail{}, fmt.Errorf("%w: %w", remote.ErrNotFound, err)
	}
	return d, nil
}
