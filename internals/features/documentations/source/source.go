// Package source: dokumentasi dari data bawaan (slug) atau tabel
// documentation_assets (UUID), dipilih lewat CONTENT_SOURCE.
package source

import (
	"context"

	"go.uber.org/zap"

	"diporani_web/internals/constants"
	"diporani_web/internals/features/documentations/dto"
	"diporani_web/internals/remote"
)

type Source interface {
	Kind() constants.ContentSource
	List(ctx context.Context, limit int) ([]dto.DocumentationCard, error)
	Get(ctx context.Context, ref string) (dto.DocumentationDetail, error)
}

func New(kind constants.ContentSource, client remote.Client, log *zap.Logger) Source {
	if kind == constants.SourceStatic {
		return NewStatic()
	}
	return NewRemote(client, log)
}
