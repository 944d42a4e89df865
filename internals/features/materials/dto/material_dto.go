package dto

import (
	"html/template"
	"path"
	"strings"

	"diporani_web/internals/constants"
	"diporani_web/internals/features/materials/model"
	helper "diporani_web/internals/helpers"
	"diporani_web/internals/helpers/dbtime"
)

const (
	fallbackSummary = "Materi latihan pramuka"
	summaryLen      = 150
)

// ============================
// Response DTO
// ============================

// MaterialCard: kartu ringkas (beranda & halaman /materi).
type MaterialCard struct {
	Ref       string `json:"ref"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	DateLabel string `json:"date_label,omitempty"`
	Href      string `json:"href"`
}

type Attachment struct {
	URL       string             `json:"url"`
	Name      string             `json:"name"`
	Kind      constants.FileKind `json:"kind"`
	Icon      string             `json:"icon"`
	SizeLabel string             `json:"size_label"`
}

// MaterialDetail: satu bentuk untuk dua sumber. Sumber remote mengisi Body
// (markdown → HTML), sumber statis mengisi Paragraphs & Objectives.
type MaterialDetail struct {
	Ref        string        `json:"ref"`
	Title      string        `json:"title"`
	Summary    string        `json:"summary"`
	DateLabel  string        `json:"date_label,omitempty"`
	Body       template.HTML `json:"body,omitempty"`
	Paragraphs []string      `json:"paragraphs,omitempty"`
	Objectives []string      `json:"objectives,omitempty"`
	Attachment *Attachment   `json:"attachment,omitempty"`
}

func Href(ref string) string { return "/materi/" + ref }

// ============================
// Converter (remote)
// ============================

// Summary: description → potongan content → teks default.
func Summary(m model.MaterialModel) string {
	return helper.FirstNonEmpty(
		strings.TrimSpace(helper.Deref(m.Description)),
		helper.Excerpt(helper.Deref(m.Content), summaryLen),
		fallbackSummary,
	)
}

func ToMaterialCard(m model.MaterialModel) MaterialCard {
	return MaterialCard{
		Ref:       m.ID,
		Title:     m.Title,
		Summary:   Summary(m),
		DateLabel: dbtime.FormatDate(m.CreatedAt),
		Href:      Href(m.ID),
	}
}

func ToMaterialDetail(m model.MaterialModel) MaterialDetail {
	return MaterialDetail{
		Ref:        m.ID,
		Title:      m.Title,
		Summary:    Summary(m),
		DateLabel:  dbtime.FormatDate(m.CreatedAt),
		Body:       helper.RenderMarkdown(helper.Deref(m.Content)),
		Attachment: toAttachment(m),
	}
}

func toAttachment(m model.MaterialModel) *Attachment {
	url := strings.TrimSpace(helper.Deref(m.FileURL))
	if url == "" {
		return nil
	}
	name := helper.FirstNonEmpty(strings.TrimSpace(helper.Deref(m.FileName)), path.Base(url))
	kind := constants.DetectFileKind(helper.Deref(m.FileType), name)
	return &Attachment{
		URL:       url,
		Name:      name,
		Kind:      kind,
		Icon:      kind.Icon(),
		SizeLabel: helper.FormatFileSize(m.FileSize),
	}
}
