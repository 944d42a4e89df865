package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"diporani_web/internals/constants"
	"diporani_web/internals/features/members/service"
	"diporani_web/internals/helpers/resource"
	"diporani_web/internals/remote/remotetest"
)

const (
	idAyu  = "11111111-1111-4111-8111-111111111111"
	idBima = "22222222-2222-4222-8222-222222222222"
	idEka  = "33333333-3333-4333-8333-333333333333"
)

func seeded() *remotetest.Store {
	return remotetest.NewStore().
		Insert("profiles",
			remotetest.Row{"id": idEka, "full_name": "Eka", "role": "materi", "created_at": "2024-08-01T00:00:00Z"},
			remotetest.Row{"id": idAyu, "full_name": "Ayu", "role": "anggota", "tingkatan": "bantara", "created_at": "2024-08-01T00:00:00Z"},
			remotetest.Row{"id": idBima, "full_name": "Bima", "role": "admin", "jabatan": "pradana", "created_at": "2024-08-01T00:00:00Z"},
			remotetest.Row{"id": "44444444-4444-4444-8444-444444444444", "full_name": "Zaki", "role": "ketua", "created_at": "2024-08-01T00:00:00Z"},
		).
		Insert("posts",
			remotetest.Row{"id": "p1", "user_id": idAyu, "caption": "Latihan", "image_url": "https://img/1.jpg", "created_at": "2025-01-01T00:00:00Z"},
			remotetest.Row{"id": "p2", "user_id": idAyu, "image_url": "https://img/2.jpg", "created_at": "2025-03-01T00:00:00Z"},
			remotetest.Row{"id": "p3", "user_id": idBima, "image_url": "https://img/3.jpg", "created_at": "2025-02-01T00:00:00Z"},
		)
}

func TestStructureGroupsAndLogsRejected(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	svc := service.NewMemberService(seeded(), zap.New(core))

	col := svc.Structure(context.Background())
	require.True(t, col.Ready())
	groups := col.Items()
	require.Len(t, groups, 3)
	assert.Equal(t, constants.RoleAdmin, groups[0].Role)
	assert.Equal(t, constants.RoleMateri, groups[1].Role)
	assert.Equal(t, constants.RoleAnggota, groups[2].Role)

	rejected := logs.FilterMessage("⚠️ anggota ditolak (role tidak dikenal)").All()
	require.Len(t, rejected, 1)
	assert.Equal(t, "Zaki", rejected[0].ContextMap()["full_name"])
}

func TestMembersOrderedByName(t *testing.T) {
	svc := service.NewMemberService(seeded(), zap.NewNop())

	col := svc.Members(context.Background())
	require.True(t, col.Ready())
	var names []string
	for _, m := range col.Items() {
		names = append(names, m.FullName)
	}
	assert.Equal(t, []string{"Ayu", "Bima", "Eka"}, names)
}

func TestStructureEmptyAndFailed(t *testing.T) {
	empty := service.NewMemberService(remotetest.NewStore().Insert("profiles"), zap.NewNop())
	col := empty.Structure(context.Background())
	assert.True(t, col.Empty())

	broken := remotetest.NewStore().FailWith("profiles", errors.New("boom"))
	col = service.NewMemberService(broken, zap.NewNop()).Structure(context.Background())
	assert.True(t, col.Failed())
	assert.Equal(t, resource.Failed, col.State())
}

func TestProfileWithPostsNewestFirst(t *testing.T) {
	store := seeded()
	svc := service.NewMemberService(store, zap.NewNop())

	item, posts := svc.Profile(context.Background(), idAyu)
	m, ok := item.Value()
	require.True(t, ok)
	assert.Equal(t, "Ayu", m.FullName)
	assert.Equal(t, "Penegak Bantara", m.TingkatanLabel)

	require.True(t, posts.Ready())
	require.Equal(t, 2, posts.Len())
	assert.Equal(t, "p2", posts.Items()[0].ID)
	assert.Equal(t, "p1", posts.Items()[1].ID)
}

func TestProfileNotFound(t *testing.T) {
	store := seeded()
	svc := service.NewMemberService(store, zap.NewNop())

	item, _ := svc.Profile(context.Background(), "99999999-9999-4999-8999-999999999999")
	assert.True(t, item.NotFound())

	// id bukan uuid: langsung not found tanpa query
	before := store.Calls("profiles")
	item, _ = svc.Profile(context.Background(), "bukan-uuid")
	assert.True(t, item.NotFound())
	assert.Equal(t, before, store.Calls("profiles"))
}

func TestProfileFailureRendersAsNotFound(t *testing.T) {
	store := remotetest.NewStore().FailWith("profiles", errors.New("timeout"))
	svc := service.NewMemberService(store, zap.NewNop())

	item, _ := svc.Profile(context.Background(), idAyu)
	assert.True(t, item.Failed())
	assert.True(t, item.NotFound())
	assert.ErrorContains(t, item.Err(), "timeout")
}

func TestPostsFailureKeepsProfile(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	store := seeded().FailWith("posts", errors.New("posts down"))
	svc := service.NewMemberService(store, zap.New(core))

	item, posts := svc.Profile(context.Background(), idBima)
	m, ok := item.Value()
	require.True(t, ok)
	assert.Equal(t, "Bima", m.FullName)
	assert.True(t, posts.Failed())
	assert.Equal(t, 0, posts.Len())
	assert.Equal(t, 1, logs.FilterMessage("⚠️ gagal ambil postingan, galeri dikosongkan").Len())
}

func TestUnknownTingkatanOrJabatanKeepsMember(t *testing.T) {
	const idGita = "55555555-5555-4555-8555-555555555555"
	store := remotetest.NewStore().
		Insert("profiles",
			remotetest.Row{"id": idGita, "full_name": "Gita", "role": "bph", "jabatan": "Ketua Sangga", "created_at": "2024-08-01T00:00:00Z"},
			remotetest.Row{"id": idEka, "full_name": "Eka", "role": "materi", "tingkatan": "Penegak Bantara", "created_at": "2024-08-01T00:00:00Z"},
		).
		Insert("posts")
	core, logs := observer.New(zapcore.WarnLevel)
	svc := service.NewMemberService(store, zap.New(core))

	col := svc.Structure(context.Background())
	require.True(t, col.Ready())
	groups := col.Items()
	require.Len(t, groups, 2)
	assert.Equal(t, constants.RoleBPH, groups[0].Role)
	assert.Equal(t, constants.RoleMateri, groups[1].Role)
	assert.Equal(t, 0, logs.FilterMessage("⚠️ anggota ditolak (role tidak dikenal)").Len())
	assert.Equal(t, 2, logs.FilterMessage("⚠️ nilai profil tidak dikenal, tampil apa adanya").Len())

	item, posts := svc.Profile(context.Background(), idGita)
	m, ok := item.Value()
	require.True(t, ok)
	assert.Equal(t, "Ketua Sangga", m.JabatanLabel)
	assert.True(t, m.ShowJabatan())
	assert.True(t, posts.Empty())
}
