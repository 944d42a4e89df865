package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"diporani_web/internals/features/members/dto"
	"diporani_web/internals/features/members/model"
	helper "diporani_web/internals/helpers"
	"diporani_web/internals/helpers/resource"
	"diporani_web/internals/remote"
)

var postColumns = []string{"id", "caption", "image_url", "created_at"}

type MemberService struct {
	Client remote.Client
	Log    *zap.Logger
}

func NewMemberService(client remote.Client, log *zap.Logger) *MemberService {
	return &MemberService{Client: client, Log: log.Named("members")}
}

// profiles: semua kolom, full_name asc, tanpa filter.
func membersQuery() remote.Query {
	return remote.From("profiles").Order("full_name", remote.Asc)
}

func (s *MemberService) fetchProfiles(ctx context.Context) ([]model.ProfileModel, error) {
	rows, err := remote.List[model.ProfileModel](ctx, s.Client, membersQuery())
	if err != nil {
		s.Log.Error("❌ Error fetching members", zap.Error(err))
		return nil, err
	}
	return rows, nil
}

func (s *MemberService) logRejected(rejected []dto.RejectedMember) {
	for _, r := range rejected {
		s.Log.Warn("⚠️ anggota ditolak (role tidak dikenal)",
			zap.String("id", r.ID),
			zap.String("full_name", r.FullName),
			zap.String("reason", r.Reason),
		)
	}
}

// logUnrecognized: tingkatan/jabatan di luar enum cukup di-warn, anggota tetap tampil.
func (s *MemberService) logUnrecognized(d dto.MemberDTO) {
	for _, err := range d.Unrecognized {
		s.Log.Warn("⚠️ nilai profil tidak dikenal, tampil apa adanya",
			zap.String("id", d.ID),
			zap.String("full_name", d.FullName),
			zap.Error(err),
		)
	}
}

// Structure: koleksi grup role untuk section "Struktur Keanggotaan".
func (s *MemberService) Structure(ctx context.Context) resource.Collection[dto.RoleGroup] {
	rows, err := s.fetchProfiles(ctx)
	if err != nil {
		return resource.Resolve[dto.RoleGroup](nil, err)
	}
	groups, rejected := dto.GroupByRole(rows)
	s.logRejected(rejected)
	for _, g := range groups {
		for _, m := range g.Members {
			s.logUnrecognized(m)
		}
	}
	return resource.Resolve(groups, nil)
}

// Members: anggota valid dalam urutan query (full_name asc).
func (s *MemberService) Members(ctx context.Context) resource.Collection[dto.MemberDTO] {
	rows, err := s.fetchProfiles(ctx)
	if err != nil {
		return resource.Resolve[dto.MemberDTO](nil, err)
	}
	out := make([]dto.MemberDTO, 0, len(rows))
	var rejected []dto.RejectedMember
	for _, r := range rows {
		d, err := dto.ToMemberDTO(r)
		if err != nil {
			rejected = append(rejected, dto.RejectedMember{ID: r.ID, FullName: helper.Deref(r.FullName), Reason: err.Error()})
			continue
		}
		s.logUnrecognized(d)
		out = append(out, d)
	}
	s.logRejected(rejected)
	return resource.Resolve(out, nil)
}

// Profile: profil by id lalu query dependen ke posts. Gagal ambil posts
// tidak menyembunyikan profil (galeri kosong + log).
func (s *MemberService) Profile(ctx context.Context, id string) (resource.Item[dto.MemberDTO], resource.Collection[dto.PostDTO]) {
	noPosts := resource.Resolve[dto.PostDTO](nil, nil)

	if _, err := uuid.Parse(id); err != nil {
		return resource.Found(dto.MemberDTO{}, false), noPosts
	}

	row, err := remote.One[model.ProfileModel](ctx, s.Client, remote.From("profiles").Eq("id", id))
	if err != nil {
		if !remote.IsNotFound(err) {
			s.Log.Error("❌ Error fetching profile", zap.String("id", id), zap.Error(err))
		}
		return resource.ResolveItem(dto.MemberDTO{}, err), noPosts
	}

	member, err := dto.ToMemberDTO(row)
	if err != nil {
		s.logRejected([]dto.RejectedMember{{ID: row.ID, Reason: err.Error()}})
		return resource.Found(dto.MemberDTO{}, false), noPosts
	}
	s.logUnrecognized(member)

	postsQ := remote.From("posts").
		Select(postColumns...).
		Eq("user_id", id).
		Order("created_at", remote.Desc)
	posts, perr := remote.List[model.PostModel](ctx, s.Client, postsQ)
	if perr != nil {
		s.Log.Warn("⚠️ gagal ambil postingan, galeri dikosongkan", zap.String("user_id", id), zap.Error(perr))
	}
	return resource.ResolveItem(member, nil), resource.Map(resource.Resolve(posts, perr), dto.ToPostDTO)
}
