// Package content: konten profil statis beranda (hero, tentang, pembina, kontak).
package content

type NavItem struct {
	Label  string
	Anchor string
}

type Stat struct {
	Label string
	Value string
}

type Pembina struct {
	Name      string
	Title     string
	Instagram string
}

type ContactItem struct {
	Label string
	Value string
	Href  string
}

type Section struct {
	Anchor   string
	Heading  string
	Subtitle string
	Empty    string
}

type Home struct {
	Brand    string
	School   string
	Nav      []NavItem
	Eyebrow  string
	Title    string
	Tagline  string
	Lead     string
	Values   []string
	Stats    []Stat
	About    []string
	Focus    []string
	Pembina  []Pembina
	Contact  []ContactItem
	Struktur Section
	Materi   Section
	Docs     Section
	Agenda   Section
	Closing  string
}

var Nav = []NavItem{
	{Label: "Profil", Anchor: "profil"},
	{Label: "Pembina", Anchor: "pembina"},
	{Label: "Struktur", Anchor: "struktur"},
	{Label: "Materi", Anchor: "materi"},
	{Label: "Dokumentasi", Anchor: "dokumentasi"},
	{Label: "Agenda", Anchor: "agenda"},
	{Label: "Kontak", Anchor: "kontak"},
}

var Default = Home{
	Brand:   "DIPORANI",
	School:  "SMA Negeri 1 Kasihan",
	Nav:     Nav,
	Eyebrow: "Profil DIPORANI",
	Title:   "Diporani SMA Negeri 1 Kasihan",
	Tagline: "Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
	Lead:    "Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris.",
	Values:  []string{"Lorem", "Ipsum", "Dolor"},
	Stats: []Stat{
		{Label: "Lorem Ipsum", Value: "000+"},
		{Label: "Dolor Sit", Value: "000"},
		{Label: "Amet", Value: "000"},
	},
	About: []string{
		"Lorem ipsum dolor sit amet, consectetur adipiscing elit. Integer nec odio. Praesent libero. Sed cursus ante dapibus diam.",
		"Sed nisi. Nulla quis sem at nibh elementum imperdiet. Duis sagittis ipsum. Praesent mauris.",
	},
	Focus: []string{
		"Lorem ipsum dolor sit amet",
		"Consectetur adipiscing elit",
		"Sed do eiusmod tempor",
		"Ut labore et dolore magna",
	},
	Pembina: []Pembina{
		{Name: "Kak Pembina Putra", Title: "Pembina Penegak Putra", Instagram: "loremipsum"},
		{Name: "Kak Pembina Putri", Title: "Pembina Penegak Putri", Instagram: "loremipsum"},
	},
	Contact: []ContactItem{
		{Label: "Email", Value: "loremipsum@example.com", Href: "mailto:loremipsum@example.com"},
		{Label: "Instagram", Value: "@loremipsum", Href: "https://instagram.com/loremipsum"},
		{Label: "Alamat", Value: "Lorem ipsum dolor sit amet, Bantul"},
	},
	Struktur: Section{
		Anchor:   "struktur",
		Heading:  "Struktur Keanggotaan",
		Subtitle: "Anggota Dewan Ambalan DIPORANI SMA Negeri 1 Kasihan",
		Empty:    "Belum ada data anggota",
	},
	Materi: Section{
		Anchor:   "materi",
		Heading:  "Materi Latihan DIPORANI",
		Subtitle: "Kumpulan materi dan artikel untuk menunjang kegiatan kepramukaan.",
		Empty:    "Belum ada materi",
	},
	Docs: Section{
		Anchor:   "dokumentasi",
		Heading:  "Dokumentasi Kegiatan",
		Subtitle: "Galeri foto dan video kegiatan DIPORANI SMA Negeri 1 Kasihan.",
		Empty:    "Belum ada dokumentasi",
	},
	Agenda: Section{
		Anchor:   "agenda",
		Heading:  "Agenda Kegiatan",
		Subtitle: "Jadwal kegiatan DIPORANI yang akan datang.",
		Empty:    "Belum ada agenda yang akan datang",
	},
	Closing: "Pramuka DIPORANI siap berkarya untuk sekolah dan masyarakat.",
}
