package constants

import (
	"fmt"
	"strings"
)

/* ==========================
   Role (profiles.role)
========================== */

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleBPH     Role = "bph"
	RoleMateri  Role = "materi"
	RoleMedia   Role = "media"
	RoleAnggota Role = "anggota"
)

// RoleOrder adalah urutan tampil grup di halaman struktur.
var RoleOrder = []Role{
	RoleAdmin,
	RoleBPH,
	RoleMateri,
	RoleMedia,
	RoleAnggota,
}

var roleGroupLabels = map[Role]string{
	RoleAdmin:   "Admin",
	RoleBPH:     "Badan Pengurus Harian (BPH)",
	RoleMateri:  "Sie. Materi",
	RoleMedia:   "Sie. Media",
	RoleAnggota: "Anggota Dewan Ambalan",
}

var roleBadgeLabels = map[Role]string{
	RoleAdmin:   "Admin",
	RoleBPH:     "BPH",
	RoleMateri:  "Sie. Materi",
	RoleMedia:   "Sie. Media",
	RoleAnggota: "Anggota",
}

// ParseRole menolak nilai di luar enum secara eksplisit.
func ParseRole(s string) (Role, error) {
	r := Role(strings.TrimSpace(s))
	if _, ok := roleGroupLabels[r]; !ok {
		return "", fmt.Errorf("%w: role %q", ErrUnknownValue, s)
	}
	return r, nil
}

func (r Role) Valid() bool {
	_, ok := roleGroupLabels[r]
	return ok
}

// GroupLabel dipakai sebagai judul grup di struktur keanggotaan.
func (r Role) GroupLabel() string { return roleGroupLabels[r] }

// BadgeLabel dipakai di badge halaman profil.
func (r Role) BadgeLabel() string { return roleBadgeLabels[r] }

// Rank returns the position of r in RoleOrder, or -1.
func (r Role) Rank() int {
	for i, o := range RoleOrder {
		if o == r {
			return i
		}
	}
	return -1
}

// Admin dan BPH tampil dengan jabatan di kartu anggota.
func (r Role) ShowsJabatan() bool {
	return r == RoleAdmin || r == RoleBPH
}

/* ==========================
   Tingkatan (rank)
========================== */

type Tingkatan string

const (
	TingkatanBantara Tingkatan = "bantara"
	TingkatanLaksana Tingkatan = "laksana"
)

var tingkatanLabels = map[Tingkatan]string{
	TingkatanBantara: "Penegak Bantara",
	TingkatanLaksana: "Penegak Laksana",
}

func ParseTingkatan(s string) (Tingkatan, error) {
	t := Tingkatan(strings.TrimSpace(s))
	if _, ok := tingkatanLabels[t]; !ok {
		return "", fmt.Errorf("%w: tingkatan %q", ErrUnknownValue, s)
	}
	return t, nil
}

func (t Tingkatan) Label() string { return tingkatanLabels[t] }

/* ==========================
   Jabatan (position)
========================== */

type Jabatan string

const (
	JabatanAnggota Jabatan = "anggota"
	JabatanPradana Jabatan = "pradana"
	JabatanKerani  Jabatan = "kerani"
	JabatanHartoko Jabatan = "hartoko"
	JabatanJudat   Jabatan = "judat"
)

var jabatanLabels = map[Jabatan]string{
	JabatanAnggota: "Anggota",
	JabatanPradana: "Pradana",
	JabatanKerani:  "Kerani",
	JabatanHartoko: "Hartoko",
	JabatanJudat:   "Judat",
}

func ParseJabatan(s string) (Jabatan, error) {
	j := Jabatan(strings.TrimSpace(s))
	if _, ok := jabatanLabels[j]; !ok {
		return "", fmt.Errorf("%w: jabatan %q", ErrUnknownValue, s)
	}
	return j, nil
}

func (j Jabatan) Label() string { return jabatanLabels[j] }

// Jabatan "anggota" tidak ditampilkan sebagai badge.
func (j Jabatan) IsOfficer() bool {
	return j != "" && j != JabatanAnggota
}
