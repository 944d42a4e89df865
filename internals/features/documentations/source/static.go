package source

import (
	"context"
	"fmt"

	"diporani_web/internals/constants"
	"diporani_web/internals/features/documentations/dto"
	"diporani_web/internals/remote"
)

type StaticDocumentation struct {
	Slug        string
	Title       string
	Date        string
	Summary     string
	Description []string
	Highlights  []string
	Gallery     []dto.GalleryTile
}

var loremHighlights = []string{
	"Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
	"Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.",
	"Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris.",
}

var DokumentasiList = []StaticDocumentation{
	{
		Slug:    "latihan-rutin",
		Title:   "Dokumentasi Latihan Rutin",
		Date:    "Lorem 2025",
		Summary: "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Integer eget urna ut libero aliquet commodo sit amet vel mauris.",
		Description: []string{
			"Lorem ipsum dolor sit amet, consectetur adipiscing elit. Vestibulum ante ipsum primis in faucibus orci luctus et ultrices posuere cubilia curae; Integer eget urna ut libero aliquet commodo sit amet vel mauris.",
			"Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat.",
		},
		Highlights: loremHighlights,
		Gallery: []dto.GalleryTile{
			{Title: "Formasi Lingkaran", Caption: "Simulasi diskusi kelompok kecil kajian materi penegak.", Background: dto.Gradient("#0f172a", "#334155", "#64748b")},
			{Title: "Latihan Pionering", Caption: "Penyusunan simpul dasar secara kolaboratif dalam tim.", Background: dto.Gradient("#f59e0b", "#f97316", "#f43f5e")},
			{Title: "Refleksi Sesi", Caption: "Penutup latihan dengan evaluasi dan pembagian tindak lanjut.", Background: dto.Gradient("#10b981", "#14b8a6", "#06b6d4")},
		},
	},
	{
		Slug:    "simulasi-pioneering",
		Title:   "Simulasi Pioneering",
		Date:    "Ipsum 2025",
		Summary: "Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis nostrud exercitation ullamco.",
		Description: []string{
			"Lorem ipsum dolor sit amet, consectetur adipiscing elit. Donec ut libero ut arcu ornare dapibus non vitae arcu.",
			"Nunc viverra, magna in facilisis ultricies, lorem augue ornare enim, sed malesuada eros lorem at purus.",
		},
		Highlights: loremHighlights,
		Gallery: []dto.GalleryTile{
			{Title: "Briefing Lapangan", Caption: "Instruksi teknis sebelum simulasi dimulai.", Background: dto.Gradient("#0ea5e9", "#3b82f6", "#6366f1")},
			{Title: "Tahap Perakitan", Caption: "Tim bekerja menyusun tiang utama pioneering.", Background: dto.Gradient("#a855f7", "#d946ef", "#ec4899")},
			{Title: "Uji Struktur", Caption: "Pengujian kekuatan simpul oleh pembina.", Background: dto.Gradient("#84cc16", "#10b981", "#22c55e")},
		},
	},
	{
		Slug:    "lomba-tingkat",
		Title:   "Lomba Tingkat Ambalan",
		Date:    "Dolor 2025",
		Summary: "Quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat lorem ipsum.",
		Description: []string{
			"Lorem ipsum dolor sit amet, consectetur adipiscing elit. Pellentesque ac justo lacus.",
			"Integer porttitor nibh a erat tempus, sit amet ornare mauris eleifend.",
		},
		Highlights: loremHighlights,
		Gallery: []dto.GalleryTile{
			{Title: "Upacara Pembukaan", Caption: "Regu diporani memasuki arena lomba tingkat.", Background: dto.Gradient("#e11d48", "#f59e0b", "#facc15")},
			{Title: "Bidang Ketangkasan", Caption: "Peserta menyelesaikan rintangan dengan strategi regu.", Background: dto.Gradient("#1e3a8a", "#1d4ed8", "#3b82f6")},
			{Title: "Penghargaan", Caption: "Pengumuman hasil dan pembagian apresiasi.", Background: dto.Gradient("#1e293b", "#475569", "#94a3b8")},
		},
	},
	{
		Slug:    "pengabdian-masyarakat",
		Title:   "Pengabdian Masyarakat",
		Date:    "Sit 2025",
		Summary: "Duis aute irure dolor in reprehenderit in voluptate velit esse cillum dolore eu fugiat nulla pariatur.",
		Description: []string{
			"Lorem ipsum dolor sit amet, consectetur adipiscing elit. Maecenas non lorem eu ipsum cursus ornare.",
			"Sed bibendum, nulla sit amet lobortis faucibus, orci eros efficitur nisi, a pretium lacus neque id sapien.",
		},
		Highlights: loremHighlights,
		Gallery: []dto.GalleryTile{
			{Title: "Briefing Tugas", Caption: "Koordinasi pembagian area layanan.", Background: dto.Gradient("#059669", "#10b981", "#a3e635")},
			{Title: "Aksi Lapangan", Caption: "Anggota bertugas membersihkan fasilitas umum.", Background: dto.Gradient("#ea580c", "#f59e0b", "#facc15")},
			{Title: "Sesi Edukasi", Caption: "Penyampaian materi singkat kepada warga.", Background: dto.Gradient("#0891b2", "#3b82f6", "#6366f1")},
		},
	},
	{
		Slug:    "perkemahan-akhir-tahun",
		Title:   "Perkemahan Akhir Tahun",
		Date:    "Amet 2025",
		Summary: "Excepteur sint occaecat cupidatat non proident, sunt in culpa qui officia deserunt mollit anim id est laborum.",
		Description: []string{
			"Lorem ipsum dolor sit amet, consectetur adipiscing elit. Aliquam condimentum lacus vel semper porttitor.",
			"Curabitur vulputate, lorem sed malesuada ultricies, libero justo dignissim libero, vitae hendrerit libero turpis nec dui.",
		},
		Highlights: loremHighlights,
		Gallery: []dto.GalleryTile{
			{Title: "Mendirikan Tenda", Caption: "Koordinasi regu memasang bivak di area perkemahan.", Background: dto.Gradient("#0f172a", "#b45309", "#10b981")},
			{Title: "Api Unggun", Caption: "Malam keakraban dengan penampilan seni ambalan.", Background: dto.Gradient("#c2410c", "#e11d48", "#9333ea")},
			{Title: "Refleksi Penutupan", Caption: "Sesi evaluasi bersama sebelum pulang.", Background: dto.Gradient("#1e40af", "#2563eb", "#06b6d4")},
		},
	},
	{
		Slug:    "pelatihan-kepemimpinan",
		Title:   "Pelatihan Kepemimpinan",
		Date:    "Consectetur 2025",
		Summary: "Mauris non tempor quam, et lacinia sapien. Mauris accumsan eros eget libero posuere vulputate.",
		Description: []string{
			"Lorem ipsum dolor sit amet, consectetur adipiscing elit. Nunc varius interdum libero et aliquet.",
			"Suspendisse potenti. Curabitur consequat felis sed ligula posuere, vitae mattis lacus pretium.",
		},
		Highlights: loremHighlights,
		Gallery: []dto.GalleryTile{
			{Title: "Pembukaan Sesi", Caption: "Sambutan dan orientasi program pelatihan.", Background: dto.Gradient("#4338ca", "#6366f1", "#a5b4fc")},
			{Title: "Workshop Studi Kasus", Caption: "Diskusi kelompok memecahkan skenario kepemimpinan.", Background: dto.Gradient("#1e293b", "#059669", "#34d399")},
			{Title: "Presentasi Akhir", Caption: "Pemaparan hasil simulasi di depan mentor.", Background: dto.Gradient("#c026d3", "#8b5cf6", "#38bdf8")},
		},
	},
}

type Static struct {
	Items []StaticDocumentation
}

func NewStatic() *Static {
	return &Static{Items: DokumentasiList}
}

func (s *Static) Kind() constants.ContentSource { return constants.SourceStatic }

func (s *Static) List(_ context.Context, limit int) ([]dto.DocumentationCard, error) {
	items := s.Items
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	out := make([]dto.DocumentationCard, 0, len(items))
	for _, it := range items {
		card := dto.DocumentationCard{
			Ref:       it.Slug,
			Title:     it.Title,
			Summary:   it.Summary,
			DateLabel: it.Date,
			Href:      dto.Href(it.Slug),
		}
		if len(it.Gallery) > 0 {
			card.Cover = it.Gallery[0].Background
		}
		out = append(out, card)
	}
	return out, nil
}

// Find: scan exact-match, case-sensitive.
func (s *Static) Find(slug string) (StaticDocumentation, bool) {
	for _, it := range s.Items {
		if it.Slug == slug {
			return it, true
		}
	}
	return StaticDocumentation{}, false
}

func (s *Static) Get(_ context.Context, ref string) (dto.DocumentationDetail, error) {
	it, ok := s.Find(ref)
	if !ok {
		return dto.DocumentationDetail{}, fmt.Errorf("dokumentasi %q: %w", ref, remote.ErrNotFound)
	}
	return dto.DocumentationDetail{
		Ref:        it.Slug,
		Title:      it.Title,
		Summary:    it.Summary,
		DateLabel:  it.Date,
		Paragraphs: it.Description,
		Highlights: it.Highlights,
		Gallery:    it.Gallery,
	}, nil
}
