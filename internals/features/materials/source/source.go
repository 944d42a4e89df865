// Package source menyediakan materi dari dua varian: Static (data bawaan,
// alamat slug) dan Remote (tabel materials, alamat UUID). Keduanya dilayani
// route yang sama; varian dipilih lewat CONTENT_SOURCE.
package source

import (
	"context"

	"go.uber.org/zap"

	"diporani_web/internals/constants"
	"diporani_web/internals/features/materials/dto"
	"diporani_web/internals/remote"
)

type Source interface {
	Kind() constants.ContentSource
	// List: terbaru dulu; limit <= 0 berarti semua.
	List(ctx context.Context, limit int) ([]dto.MaterialCard, error)
	// Get: remote.ErrNotFound kalau ref tidak ada.
	Get(ctx context.Context, ref string) (dto.MaterialDetail, error)
}

func New(kind constants.ContentSource, client remote.Client, log *zap.Logger) Source {
	if kind == constants.SourceStatic {
		return NewStatic()
	}
	return NewRemote(client, log)
}
