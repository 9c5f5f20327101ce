package services

import (
	"context"
	"strings"

	"github.com/omoluabi/heartville/internal/models"
	"github.com/omoluabi/heartville/internal/repositories/memory"
	"github.com/omoluabi/heartville/internal/utils"
)

type CatalogueService interface {
	Album(ctx context.Context) (*models.CatalogueAlbum, error)
	SearchTracks(ctx context.Context, query string) ([]models.Track, error)
}

type catalogueService struct {
	catalogue memory.CatalogueRepository
}

func NewCatalogueService(catalogue memory.CatalogueRepository) CatalogueService {
	return &catalogueService{catalogue: catalogue}
}

func (s *catalogueService) Album(ctx context.Context) (*models.CatalogueAlbum, error) {
	const op = "CatalogueService.Album"

	album, err := s.catalogue.Album(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load album", err)
	}
	return album, nil
}

// SearchTracks is a case-insensitive substring scan over each track's title,
// artist, mood and tags joined into one haystack. A blank query returns the
// full track list.
func (s *catalogueService) SearchTracks(ctx context.Context, query string) ([]models.Track, error) {
	const op = "CatalogueService.SearchTracks"

	tracks, err := s.catalogue.Tracks(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load tracks", err)
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return tracks, nil
	}

	results := make([]models.Track, 0, len(tracks))
	for _, t := range tracks {
		parts := append([]string{t.Title, t.Artist, t.Mood}, t.Tags...)
		haystack := strings.ToLower(strings.Join(parts, " "))
		if strings.Contains(haystack, q) {
			results = append(results, t)
		}
	}
	return results, nil
}
