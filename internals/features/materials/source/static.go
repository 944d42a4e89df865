package source

import (
	"context"
	"fmt"

	"diporani_web/internals/constants"
	"diporani_web/internals/features/materials/dto"
	"diporani_web/internals/remote"
)

// StaticMaterial: materi bawaan, dialamatkan lewat slug.
type StaticMaterial struct {
	Slug             string
	Title            string
	ShortDescription string
	Body             []string
	Objectives       []string
}

var loremBody = []string{
	"Lorem ipsum dolor sit amet, consectetur adipiscing elit. Curabitur ac sollicitudin mi, vel cursus lorem.",
	"Vestibulum ante ipsum primis in faucibus orci luctus et ultrices posuere cubilia curae; Integer porta, risus vel egestas vulputate, nunc nibh tempus sem, vitae tempus leo risus at elit.",
	"Suspendisse potenti. Morbi id ligula at dui viverra convallis quis eget sapien.",
}

var loremObjectives = []string{
	"Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
	"Vestibulum ante ipsum primis in faucibus orci luctus et ultrices posuere cubilia curae.",
	"Suspendisse potenti. Morbi id ligula at dui viverra convallis.",
}

// MateriList: urutan tampil = urutan slice.
var MateriList = []StaticMaterial{
	{
		Slug:             "orientasi-penegak",
		Title:            "Orientasi Penegak",
		ShortDescription: "Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
		Body:             loremBody,
		Objectives:       loremObjectives,
	},
	{
		Slug:             "keterampilan-lapangan",
		Title:            "Keterampilan Lapangan",
		ShortDescription: "Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
		Body:             loremBody,
		Objectives:       loremObjectives,
	},
	{
		Slug:             "pengembangan-karakter",
		Title:            "Pengembangan Karakter",
		ShortDescription: "Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
		Body:             loremBody,
		Objectives:       loremObjectives,
	},
	{
		Slug:             "pengetahuan-umum",
		Title:            "Pengetahuan Umum",
		ShortDescription: "Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
		Body:             loremBody,
		Objectives:       loremObjectives,
	},
}

type Static struct {
	Items []StaticMaterial
}

func NewStatic() *Static {
	return &Static{Items: MateriList}
}

func (s *Static) Kind() constants.ContentSource { return constants.SourceStatic }

func (s *Static) List(_ context.Context, limit int) ([]dto.MaterialCard, error) {
	items := s.Items
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	out := make([]dto.MaterialCard, 0, len(items))
	for _, it := range items {
		out = append(out, dto.MaterialCard{
			Ref:     it.Slug,
			Title:   it.Title,
			Summary: it.ShortDescription,
			Href:    dto.Href(it.Slug),
		})
	}
	return out, nil
}

// Find: scan exact-match, case-sensitive.
func (s *Static) Find(slug string) (StaticMaterial, bool) {
	for _, it := range s.Items {
		if it.Slug == slug {
			return it, true
		}
	}
	return StaticMaterial{}, false
}

func (s *Static) Get(_ context.Context, ref string) (dto.MaterialDetail, error) {
	it, ok := s.Find(ref)
	if !ok {
		return dto.MaterialDetail{}, fmt.Errorf("materi %q: %w", ref, remote.ErrNotFound)
	}
	return dto.MaterialDetail{
		Ref:        it.Slug,
		Title:      it.Title,
		Summary:    it.ShortDescription,
		Paragraphs: it.Body,
		Objectives: it.Objectives,
	}, nil
}
