package repository

import (
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/mediavault/catalog-api/internal/domain/catalog"
	"github.com/mediavault/catalog-api/internal/domain/media"
	"github.com/mediavault/catalog-api/internal/infrastructure/database/entities"
)

// NewMusicTrackStore builds the music-tracks store. Tracks are hard-deleted
// and listed in track order within their release.
func NewMusicTrackStore(db *gorm.DB, log zerolog.Logger) catalog.Store[media.MusicTrackDTO] {
	desc := Descriptor[media.MusicTrackDTO, entities.MusicTrack]{
		Table:            "music_tracks",
		SearchText:       []string{"title", "artist"},
		SubstringFilters: []string{"title", "artist"},
		ListOrder:        "track_number ASC",
		ConflictTarget:   "(album_id, track_number)",
		ToDTO:            musicTrackToDTO,
		FromDTO:          musicTrackFromDTO,
	}
	return New[media.MusicTrackDTO, entities.MusicTrack, *entities.MusicTrack](db, desc, log)
}

func musicTrackToDTO(e *entities.MusicTrack) media.MusicTrackDTO {
	return media.MusicTrackDTO{
		ID:          e.ID,
		AlbumID:     e.AlbumID,
		TrackNumber: e.TrackNumber,
		Title:       e.Title,
		Artist:      e.Artist,
		Duration:    e.Duration,
		FilePath:    e.FilePath,
		FileType:    e.FileType,
		Sha256Hash:  e.Sha256Hash,
		CreatedAt:   &e.CreatedAt,
		UpdatedAt:   &e.UpdatedAt,
	}
}

func musicTrackFromDTO(d *media.MusicTrackDTO) *entities.MusicTrack {
	return &entities.MusicTrack{
		ID:          d.ID,
		AlbumID:     d.AlbumID,
		TrackNumber: d.TrackNumber,
		Title:       d.Title,
		Artist:      d.Artist,
		Duration:    d.Duration,
		FilePath:    d.FilePath,
		FileType:    d.FileType,
		Sha256Hash:  d.Sha256Hash,
	}
}
