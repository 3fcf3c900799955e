package repository

import (
	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/mediavault/catalog-api/internal/domain/catalog"
	"github.com/mediavault/catalog-api/internal/domain/media"
	"github.com/mediavault/catalog-api/internal/infrastructure/database/entities"
)

// NewMovieStore builds the movies store.
func NewMovieStore(db *gorm.DB, log zerolog.Logger) catalog.Store[media.MovieDTO] {
	desc := Descriptor[media.MovieDTO, entities.Movie]{
		Table:            "movies",
		SoftDelete:       true,
		FullText:         true,
		HasYear:          true,
		SearchText:       []string{"title", "overview", "language", "quality"},
		SearchArrays:     []string{"genres"},
		SubstringFilters: []string{"title"},
		ArrayFilters:     []string{"genres"},
		ListOrder:        "updated_at DESC",
		Versioned:        true,
		ToDTO:            movieToDTO,
		FromDTO:          movieFromDTO,
	}
	return New[media.MovieDTO, entities.Movie, *entities.Movie](db, desc, log)
}

func movieToDTO(e *entities.Movie) media.MovieDTO {
	return media.MovieDTO{
		ID:               e.ID,
		Title:            e.Title,
		Year:             e.Year,
		Magnet:           e.Magnet,
		TmdbID:           e.TmdbID,
		ImdbID:           e.ImdbID,
		Language:         e.Language,
		OriginalLanguage: e.OriginalLanguage,
		Quality:          e.Quality,
		FileType:         e.FileType,
		Sha256Hash:       e.Sha256Hash,
		IsDeleted:        e.IsDeleted,
		CreatedAt:        &e.CreatedAt,
		UpdatedAt:        &e.UpdatedAt,
		Overview:         e.Overview,
		PosterPath:       e.PosterPath,
		Genres:           e.Genres,
		TorrentURL:       e.TorrentURL,
		TrailerURL:       e.TrailerURL,
		Size:             e.Size,
		Seeds:            e.Seeds,
		Peers:            e.Peers,
		Version:          &e.Version,
	}
}

// movieFromDTO maps the wire shape to a row. Client-supplied timestamps and
// deletion flags are discarded; a fresh row always starts live at version 1.
func movieFromDTO(d *media.MovieDTO) *entities.Movie {
	live := false
	return &entities.Movie{
		ID:               d.ID,
		Title:            d.Title,
		Year:             d.Year,
		Magnet:           d.Magnet,
		TmdbID:           d.TmdbID,
		ImdbID:           d.ImdbID,
		Language:         d.Language,
		OriginalLanguage: d.OriginalLanguage,
		Quality:          d.Quality,
		FileType:         d.FileType,
		Sha256Hash:       d.Sha256Hash,
		IsDeleted:        &live,
		Overview:         d.Overview,
		PosterPath:       d.PosterPath,
		Genres:           pq.StringArray(d.Genres),
		TorrentURL:       d.TorrentURL,
		TrailerURL:       d.TrailerURL,
		Size:             d.Size,
		Seeds:            d.Seeds,
		Peers:            d.Peers,
		Version:          1,
	}
}
