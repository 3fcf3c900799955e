package repository

import (
	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/mediavault/catalog-api/internal/domain/catalog"
	"github.com/mediavault/catalog-api/internal/domain/media"
	"github.com/mediavault/catalog-api/internal/infrastructure/database/entities"
)

// NewSeriesStore builds the series store.
func NewSeriesStore(db *gorm.DB, log zerolog.Logger) catalog.Store[media.SeriesDTO] {
	desc := Descriptor[media.SeriesDTO, entities.Series]{
		Table:            "series",
		SoftDelete:       true,
		FullText:         true,
		HasYear:          true,
		SearchText:       []string{"title", "overview", "network", "language", "quality"},
		SearchArrays:     []string{"genres"},
		SubstringFilters: []string{"title"},
		ArrayFilters:     []string{"genres"},
		ListOrder:        "updated_at DESC",
		ToDTO:            seriesToDTO,
		FromDTO:          seriesFromDTO,
	}
	return New[media.SeriesDTO, entities.Series, *entities.Series](db, desc, log)
}

func seriesToDTO(e *entities.Series) media.SeriesDTO {
	return media.SeriesDTO{
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
		Seasons:          e.Seasons,
		Episodes:         e.Episodes,
		Network:          e.Network,
		Status:           e.Status,
		EpisodeRuntime:   e.EpisodeRuntime,
	}
}

func seriesFromDTO(d *media.SeriesDTO) *entities.Series {
	live := false
	return &entities.Series{
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
		Seasons:          d.Seasons,
		Episodes:         d.Episodes,
		Network:          d.Network,
		Status:           d.Status,
		EpisodeRuntime:   d.EpisodeRuntime,
	}
}
