package dto

import (
	"fmt"
	"html/template"
	"strings"

	"diporani_web/internals/constants"
	"diporani_web/internals/features/documentations/model"
	helper "diporani_web/internals/helpers"
	"diporani_web/internals/helpers/dbtime"
)

// ============================
// Response DTO
// ============================

type Media struct {
	URL       string              `json:"url"`
	Kind      constants.MediaKind `json:"kind"`
	KindLabel string              `json:"kind_label"`
}

func (m Media) IsImage() bool { return m.Kind == constants.MediaImage }
func (m Media) IsVideo() bool { return m.Kind == constants.MediaVideo }

// DocumentationCard: kartu galeri. Sumber remote mengisi Media,
// sumber statis mengisi Cover (gradient tile pertama).
type DocumentationCard struct {
	Ref       string       `json:"ref"`
	Title     string       `json:"title"`
	Summary   string       `json:"summary,omitempty"`
	Category  string       `json:"category,omitempty"`
	DateLabel string       `json:"date_label,omitempty"`
	Media     *Media       `json:"media,omitempty"`
	Cover     template.CSS `json:"cover,omitempty"`
	Href      string       `json:"href"`
}

type GalleryTile struct {
	Title      string       `json:"title"`
	Caption    string       `json:"caption"`
	Background template.CSS `json:"background"`
}

type DocumentationDetail struct {
	Ref        string        `json:"ref"`
	Title      string        `json:"title"`
	Summary    string        `json:"summary,omitempty"`
	Category   string        `json:"category,omitempty"`
	DateLabel  string        `json:"date_label,omitempty"`
	Paragraphs []string      `json:"paragraphs,omitempty"`
	Highlights []string      `json:"highlights,omitempty"`
	Gallery    []GalleryTile `json:"gallery,omitempty"`
	Media      *Media        `json:"media,omitempty"`
}

func Href(ref string) string { return "/dokumentasi/" + ref }

// Gradient: tiga warna hex → linear-gradient dengan opasitas 80%.
func Gradient(from, via, to string) template.CSS {
	return template.CSS(fmt.Sprintf("linear-gradient(135deg, %scc, %scc, %scc)", from, via, to))
}

// ============================
// Converter (remote)
// ============================

// toMedia menolak file_type di luar image/video/other.
func toMedia(m model.DocumentationAssetModel) (*Media, error) {
	kind, err := constants.ParseMediaKind(helper.Deref(m.FileType))
	if err != nil {
		return nil, err
	}
	return &Media{URL: m.FileURL, Kind: kind, KindLabel: kind.Label()}, nil
}

func ToDocumentationCard(m model.DocumentationAssetModel) (DocumentationCard, error) {
	media, err := toMedia(m)
	if err != nil {
		return DocumentationCard{}, err
	}
	return DocumentationCard{
		Ref:       m.ID,
		Title:     m.Title,
		Summary:   strings.TrimSpace(helper.Deref(m.Description)),
		Category:  helper.TitleCase(helper.Deref(m.Category)),
		DateLabel: dbtime.FormatDate(m.CreatedAt),
		Media:     media,
		Href:      Href(m.ID),
	}, nil
}

func ToDocumentationDetail(m model.DocumentationAssetModel) (DocumentationDetail, error) {
	media, err := toMedia(m)
	if err != nil {
		return DocumentationDetail{}, err
	}
	d := DocumentationDetail{
		Ref:       m.ID,
		Title:     m.Title,
		Category:  helper.TitleCase(helper.Deref(m.Category)),
		DateLabel: dbtime.FormatDateLong(m.CreatedAt),
		Media:     media,
	}
	if desc := strings.TrimSpace(helper.Deref(m.Description)); desc != "" {
		d.Paragraphs = splitParagraphs(desc)
	}
	return d, nil
}

// splitParagraphs: baris kosong memisahkan paragraf.
func splitParagraphs(s string) []string {
	var out []string
	for _, p := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
