package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diporani_web/internals/constants"
	"diporani_web/internals/features/members/model"
)

func str(s string) *string { return &s }

func profile(id, name, role string) model.ProfileModel {
	return model.ProfileModel{ID: id, FullName: str(name), Role: role}
}

func TestGroupByRoleScenario(t *testing.T) {
	in := []model.ProfileModel{
		profile("1", "Ayu", "anggota"),
		profile("2", "Bima", "admin"),
		profile("3", "Citra", "bph"),
		profile("4", "Dewi", "anggota"),
		profile("5", "Eka", "materi"),
	}

	groups, rejected := GroupByRole(in)
	require.Empty(t, rejected)
	require.Len(t, groups, 4)

	var roles []constants.Role
	var sizes []int
	for _, g := range groups {
		roles = append(roles, g.Role)
		sizes = append(sizes, len(g.Members))
	}
	assert.Equal(t, []constants.Role{constants.RoleAdmin, constants.RoleBPH, constants.RoleMateri, constants.RoleAnggota}, roles)
	assert.Equal(t, []int{1, 1, 1, 2}, sizes)

	// urutan input dipertahankan di dalam bucket
	assert.Equal(t, "Ayu", groups[3].Members[0].FullName)
	assert.Equal(t, "Dewi", groups[3].Members[1].FullName)
	assert.Equal(t, "Anggota Dewan Ambalan", groups[3].Label)
	assert.True(t, groups[0].Featured())
	assert.False(t, groups[3].Featured())
}

func TestGroupByRoleOnlyNonEmptyGroups(t *testing.T) {
	groups, rejected := GroupByRole(nil)
	assert.Empty(t, groups)
	assert.Empty(t, rejected)

	groups, _ = GroupByRole([]model.ProfileModel{profile("1", "Ayu", "media")})
	require.Len(t, groups, 1)
	assert.Equal(t, constants.RoleMedia, groups[0].Role)
}

func TestGroupByRoleRejectsUnknownRoleOnly(t *testing.T) {
	bad := profile("9", "Fajar", "ketua")
	badJabatan := profile("8", "Gita", "bph")
	badJabatan.Jabatan = str("Ketua Sangga")
	badTingkatan := profile("7", "Hana", "materi")
	badTingkatan.Tingkatan = str("Penegak Bantara")

	groups, rejected := GroupByRole([]model.ProfileModel{bad, profile("1", "Ayu", "anggota"), badJabatan, badTingkatan})
	require.Len(t, groups, 3)
	assert.Equal(t, constants.RoleBPH, groups[0].Role)
	assert.Equal(t, constants.RoleMateri, groups[1].Role)
	assert.Equal(t, constants.RoleAnggota, groups[2].Role)

	require.Len(t, rejected, 1)
	assert.Equal(t, "9", rejected[0].ID)
	assert.Equal(t, "Fajar", rejected[0].FullName)
	assert.Contains(t, rejected[0].Reason, "ketua")

	gita := groups[0].Members[0]
	assert.Empty(t, gita.Jabatan)
	assert.Equal(t, "Ketua Sangga", gita.JabatanLabel)
	assert.True(t, gita.ShowJabatan())
	require.Len(t, gita.Unrecognized, 1)
	assert.ErrorIs(t, gita.Unrecognized[0], constants.ErrUnknownValue)

	hana := groups[1].Members[0]
	assert.Empty(t, hana.Tingkatan)
	assert.Equal(t, "Penegak Bantara", hana.TingkatanLabel)
	require.Len(t, hana.Unrecognized, 1)
}

func TestToMemberDTO(t *testing.T) {
	m := profile("1", "  ", "bph")
	m.Jabatan = str("pradana")
	m.Tingkatan = str("laksana")
	m.Instagram = str("@diporani")

	d, err := ToMemberDTO(m)
	require.NoError(t, err)
	assert.Equal(t, UnnamedMember, d.FullName)
	assert.Equal(t, "?", d.Initials)
	assert.Equal(t, "BPH", d.RoleLabel)
	assert.Equal(t, "Pradana", d.JabatanLabel)
	assert.Equal(t, "Penegak Laksana", d.TingkatanLabel)
	assert.Equal(t, "diporani", d.Instagram)
	assert.True(t, d.ShowJabatan())
	assert.Equal(t, "/avatars/_", d.AvatarSrc())

	m2 := profile("2", "Rani Putri", "anggota")
	m2.Jabatan = str("pradana")
	d2, err := ToMemberDTO(m2)
	require.NoError(t, err)
	assert.False(t, d2.ShowJabatan())
	assert.Equal(t, "/avatars/RP", d2.AvatarSrc())

	m2.AvatarURL = str("https://cdn.example.com/a.jpg")
	d2, err = ToMemberDTO(m2)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/a.jpg", d2.AvatarSrc())
}
