package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"diporani_web/internals/features/agendas/dto"
	"diporani_web/internals/features/agendas/model"
	"diporani_web/internals/helpers/resource"
	"diporani_web/internals/remote"
)

// UpcomingLimit: jumlah agenda di beranda.
const UpcomingLimit = 3

type AgendaService struct {
	Client remote.Client
	Log    *zap.Logger
	Now    func() time.Time
}

func NewAgendaService(client remote.Client, log *zap.Logger, now func() time.Time) *AgendaService {
	if now == nil {
		now = time.Now
	}
	return &AgendaService{Client: client, Log: log.Named("agendas"), Now: now}
}

// UpcomingQuery: starts_at >= now, urut naik, maksimal limit.
func UpcomingQuery(now time.Time, limit int) remote.Query {
	return remote.From("agendas").
		Select(model.Columns...).
		Gte("starts_at", now).
		Order("starts_at", remote.Asc).
		Limit(limit)
}

func (s *AgendaService) Upcoming(ctx context.Context) resource.Collection[dto.AgendaDTO] {
	rows, err := remote.List[model.AgendaModel](ctx, s.Client, UpcomingQuery(s.Now(), UpcomingLimit))
	if err != nil {
		s.Log.Error("❌ Error fetching agenda", zap.Error(err))
		return resource.Resolve[dto.AgendaDTO](nil, err)
	}
	return resource.Resolve(dto.ToAgendaDTOs(rows), nil)
}
