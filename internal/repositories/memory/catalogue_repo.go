package memory

import (
	"context"

	"github.com/omoluabi/heartville/internal/models"
)

type CatalogueRepository interface {
	Album(ctx context.Context) (*models.CatalogueAlbum, error)
	Tracks(ctx context.Context) ([]models.Track, error)
}

type catalogueRepo struct {
	album models.CatalogueAlbum
}

func NewCatalogueRepo(album models.CatalogueAlbum) CatalogueRepository {
	return &catalogueRepo{album: album}
}

func (r *catalogueRepo) Album(_ context.Context) (*models.CatalogueAlbum, error) {
	a := r.album
	return &a, nil
}

func (r *catalogueRepo) Tracks(_ context.Context) ([]models.Track, error) {
	out := make([]models.Track, len(r.album.Tracks))
	copy(out, r.album.Tracks)
	return out, nil
}
