package dto

import (
	"strings"
	"time"

	"diporani_web/internals/constants"
	"diporani_web/internals/features/members/model"
	helper "diporani_web/internals/helpers"
	"diporani_web/internals/helpers/dbtime"
)

const UnnamedMember = "Tanpa Nama"

// ============================
// Response DTO
// ============================

type MemberDTO struct {
	ID             string              `json:"id"`
	FullName       string              `json:"full_name"`
	Initials       string              `json:"initials"`
	Role           constants.Role      `json:"role"`
	RoleLabel      string              `json:"role_label"`
	Tingkatan      constants.Tingkatan `json:"tingkatan,omitempty"`
	TingkatanLabel string              `json:"tingkatan_label,omitempty"`
	Jabatan        constants.Jabatan   `json:"jabatan,omitempty"`
	JabatanLabel   string              `json:"jabatan_label,omitempty"`
	Instagram      string              `json:"instagram,omitempty"`
	InstagramURL   string              `json:"instagram_url,omitempty"`
	Motto          string              `json:"motto,omitempty"`
	Bio            string              `json:"bio,omitempty"`
	AvatarURL      string              `json:"avatar_url,omitempty"`
	JoinedLabel    string              `json:"joined_label"`
	CreatedAt      time.Time           `json:"created_at"`

	// Unrecognized: tingkatan/jabatan di luar enum. Anggota tetap tampil,
	// nilai mentah dipakai sebagai label.
	Unrecognized []error `json:"-"`
}

// ShowJabatan: jabatan hanya tampil di kartu Admin/BPH dan hanya kalau bukan "anggota".
func (m MemberDTO) ShowJabatan() bool {
	if !m.Role.ShowsJabatan() {
		return false
	}
	if m.Jabatan == "" {
		return m.JabatanLabel != ""
	}
	return m.Jabatan.IsOfficer()
}

// AvatarSrc: foto profil, atau avatar inisial kalau kosong.
func (m MemberDTO) AvatarSrc() string {
	if m.AvatarURL != "" {
		return m.AvatarURL
	}
	if m.Initials == "" || m.Initials == "?" {
		return "/avatars/_"
	}
	return "/avatars/" + m.Initials
}

type PostDTO struct {
	ID        string    `json:"id"`
	Caption   string    `json:"caption,omitempty"`
	ImageURL  string    `json:"image_url"`
	DateLabel string    `json:"date_label"`
	CreatedAt time.Time `json:"created_at"`
}

type ProfileDetailDTO struct {
	Profile MemberDTO `json:"profile"`
	Posts   []PostDTO `json:"posts"`
}

// ============================
// Converter
// ============================

// ToMemberDTO hanya menolak role di luar enum. Tingkatan/jabatan tak dikenal
// dicatat di Unrecognized dan label diisi nilai mentahnya.
func ToMemberDTO(m model.ProfileModel) (MemberDTO, error) {
	role, err := constants.ParseRole(m.Role)
	if err != nil {
		return MemberDTO{}, err
	}
	out := MemberDTO{
		ID:           m.ID,
		FullName:     helper.FirstNonEmpty(strings.TrimSpace(helper.Deref(m.FullName)), UnnamedMember),
		Initials:     helper.Initials(helper.Deref(m.FullName)),
		Role:         role,
		RoleLabel:    role.BadgeLabel(),
		Instagram:    helper.InstagramHandle(helper.Deref(m.Instagram)),
		InstagramURL: helper.InstagramURL(helper.Deref(m.Instagram)),
		Motto:        strings.TrimSpace(helper.Deref(m.Motto)),
		Bio:          strings.TrimSpace(helper.Deref(m.Bio)),
		AvatarURL:    strings.TrimSpace(helper.Deref(m.AvatarURL)),
		JoinedLabel:  dbtime.FormatMonthYear(m.CreatedAt),
		CreatedAt:    m.CreatedAt,
	}
	if v := strings.TrimSpace(helper.Deref(m.Tingkatan)); v != "" {
		if t, err := constants.ParseTingkatan(v); err != nil {
			out.TingkatanLabel = v
			out.Unrecognized = append(out.Unrecognized, err)
		} else {
			out.Tingkatan, out.TingkatanLabel = t, t.Label()
		}
	}
	if v := strings.TrimSpace(helper.Deref(m.Jabatan)); v != "" {
		if j, err := constants.ParseJabatan(v); err != nil {
			out.JabatanLabel = v
			out.Unrecognized = append(out.Unrecognized, err)
		} else {
			out.Jabatan, out.JabatanLabel = j, j.Label()
		}
	}
	return out, nil
}

func ToPostDTO(p model.PostModel) PostDTO {
	return PostDTO{
		ID:        p.ID,
		Caption:   strings.TrimSpace(helper.Deref(p.Caption)),
		ImageURL:  p.ImageURL,
		DateLabel: dbtime.FormatDate(p.CreatedAt),
		CreatedAt: p.CreatedAt,
	}
}

func ToPostDTOs(ps []model.PostModel) []PostDTO {
	out := make([]PostDTO, 0, len(ps))
	for _, p := range ps {
		out = append(out, ToPostDTO(p))
	}
	return out
}

// ============================
// Grouping
// ============================

type RoleGroup struct {
	Role    constants.Role `json:"role"`
	Label   string         `json:"label"`
	Anchor  string         `json:"anchor"`
	Members []MemberDTO    `json:"members"`
}

// Featured: Admin & BPH tampil di baris atas dengan kartu lebih besar.
func (g RoleGroup) Featured() bool { return g.Role.ShowsJabatan() }

type RejectedMember struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Reason   string `json:"reason"`
}

// GroupByRole membagi anggota ke bucket admin → bph → materi → media → anggota.
// Urutan di dalam bucket mengikuti urutan input (query sudah full_name asc).
// Grup hanya dibuat kalau ada anggotanya. Anggota dengan role tak dikenal
// dikembalikan terpisah, tidak pernah masuk bucket mana pun.
func GroupByRole(members []model.ProfileModel) ([]RoleGroup, []RejectedMember) {
	buckets := make(map[constants.Role][]MemberDTO, len(constants.RoleOrder))
	var rejected []RejectedMember

	for _, m := range members {
		d, err := ToMemberDTO(m)
		if err != nil {
			rejected = append(rejected, RejectedMember{
				ID:       m.ID,
				FullName: helper.Deref(m.FullName),
				Reason:   err.Error(),
			})
			continue
		}
		buckets[d.Role] = append(buckets[d.Role], d)
	}

	groups := make([]RoleGroup, 0, len(buckets))
	for _, role := range constants.RoleOrder {
		list := buckets[role]
		if len(list) == 0 {
			continue
		}
		groups = append(groups, RoleGroup{
			Role:    role,
			Label:   role.GroupLabel(),
			Anchor:  helper.Slugify(role.GroupLabel(), 0),
			Members: list,
		})
	}
	return groups, rejected
}
