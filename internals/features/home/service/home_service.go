package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	agendaDTO "diporani_web/internals/features/agendas/dto"
	agendaService "diporani_web/internals/features/agendas/service"
	docDTO "diporani_web/internals/features/documentations/dto"
	docSource "diporani_web/internals/features/documentations/source"
	materialDTO "diporani_web/internals/features/materials/dto"
	materialSource "diporani_web/internals/features/materials/source"
	memberDTO "diporani_web/internals/features/members/dto"
	memberService "diporani_web/internals/features/members/service"
	"diporani_web/internals/helpers/resource"
)

const (
	MaterialPreview      = 4
	DocumentationPreview = 6
)

// SectionDTO: satu section beranda dengan status masing-masing.
type SectionDTO[T any] struct {
	State resource.State `json:"state"`
	Items []T            `json:"items"`
	Error string         `json:"error,omitempty"`
}

type HomeDTO struct {
	Struktur    SectionDTO[memberDTO.RoleGroup]      `json:"struktur"`
	Materi      SectionDTO[materialDTO.MaterialCard] `json:"materi"`
	Dokumentasi SectionDTO[docDTO.DocumentationCard] `json:"dokumentasi"`
	Agenda      SectionDTO[agendaDTO.AgendaDTO]      `json:"agenda"`
}

// toSection: pesan error dibuat generik, detail sudah di-log oleh pemanggil fetch.
func toSection[T any](col resource.Collection[T], failMsg string) SectionDTO[T] {
	s := SectionDTO[T]{State: col.State(), Items: col.Items()}
	if col.Failed() {
		s.Items = []T{}
		s.Error = failMsg
	}
	return s
}

type HomeService struct {
	Members   *memberService.MemberService
	Materials materialSource.Source
	Docs      docSource.Source
	Agendas   *agendaService.AgendaService
}

func NewHomeService(
	members *memberService.MemberService,
	materials materialSource.Source,
	docs docSource.Source,
	agendas *agendaService.AgendaService,
) *HomeService {
	return &HomeService{Members: members, Materials: materials, Docs: docs, Agendas: agendas}
}

// Load menjalankan empat fetch paralel. Tidak fail-fast: tiap goroutine
// selalu return nil dan menyimpan status section-nya sendiri.
func (s *HomeService) Load(ctx context.Context) HomeDTO {
	var (
		out HomeDTO
		g   errgroup.Group
	)

	g.Go(func() error {
		out.Struktur = toSection(s.Members.Structure(ctx), "Gagal memuat data anggota")
		return nil
	})
	g.Go(func() error {
		items, err := s.Materials.List(ctx, MaterialPreview)
		out.Materi = toSection(resource.Resolve(items, err), "Gagal memuat materi")
		return nil
	})
	g.Go(func() error {
		items, err := s.Docs.List(ctx, DocumentationPreview)
		out.Dokumentasi = toSection(resource.Resolve(items, err), "Gagal memuat dokumentasi")
		return nil
	})
	g.Go(func() error {
		out.Agenda = toSection(s.Agendas.Upcoming(ctx), "Gagal memuat agenda")
		return nil
	})

	_ = g.Wait()
	return out
}
