package repository

import (
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/mediavault/catalog-api/internal/domain/catalog"
	"github.com/mediavault/catalog-api/internal/domain/media"
	"github.com/mediavault/catalog-api/internal/infrastructure/database/entities"
)

// NewSeriesEpisodeStore builds the series-episodes store. Episodes are
// hard-deleted and listed in season/episode order within their series.
func NewSeriesEpisodeStore(db *gorm.DB, log zerolog.Logger) catalog.Store[media.SeriesEpisodeDTO] {
	desc := Descriptor[media.SeriesEpisodeDTO, entities.SeriesEpisode]{
		Table:            "series_episodes",
		SearchText:       []string{"title", "overview"},
		SubstringFilters: []string{"title"},
		ListOrder:        "season_number ASC, episode_number ASC",
		ConflictTarget:   "(series_id, season_number, episode_number)",
		ToDTO:            seriesEpisodeToDTO,
		FromDTO:          seriesEpisodeFromDTO,
	}
	return New[media.SeriesEpisodeDTO, entities.SeriesEpisode, *entities.SeriesEpisode](db, desc, log)
}

func seriesEpisodeToDTO(e *entities.SeriesEpisode) media.SeriesEpisodeDTO {
	return media.SeriesEpisodeDTO{
		ID:            e.ID,
		SeriesID:      e.SeriesID,
		SeasonNumber:  e.SeasonNumber,
		EpisodeNumber: e.EpisodeNumber,
		Title:         e.Title,
		Overview:      e.Overview,
		AirDate:       e.AirDate,
		Runtime:       e.Runtime,
		Magnet:        e.Magnet,
		Quality:       e.Quality,
		Size:          e.Size,
		FileType:      e.FileType,
		Sha256Hash:    e.Sha256Hash,
		CreatedAt:     &e.CreatedAt,
		UpdatedAt:     &e.UpdatedAt,
	}
}

func seriesEpisodeFromDTO(d *media.SeriesEpisodeDTO) *entities.SeriesEpisode {
	return &entities.SeriesEpisode{
		ID:            d.ID,
		SeriesID:      d.SeriesID,
		SeasonNumber:  d.SeasonNumber,
		EpisodeNumber: d.EpisodeNumber,
		Title:         d.Title,
		Overview:      d.Overview,
		AirDate:       d.AirDate,
		Runtime:       d.Runtime,
		Magnet:        d.Magnet,
		Quality:       d.Quality,
		Size:          d.Size,
		FileType:      d.FileType,
		Sha256Hash:    d.Sha256Hash,
	}
}
