package media

import (
	"time"

	"github.com/google/uuid"

	"github.com/mediavault/catalog-api/internal/domain/catalog"
	"github.com/mediavault/catalog-api/internal/validation"
)

// SeriesDTO is the wire shape of a series record.
type SeriesDTO struct {
	ID               uuid.UUID  `json:"id"`
	Title            string     `json:"title" validate:"required,min=1,max=255"`
	Year             *int       `json:"year" validate:"required,min=1888,max=2100"`
	Magnet           string     `json:"magnet" validate:"required,magnet"`
	TmdbID           *int       `json:"tmdbId"`
	ImdbID           *string    `json:"imdbId" validate:"omitempty,imdbid"`
	Language         *string    `json:"language" validate:"omitempty,max=50"`
	OriginalLanguage *string    `json:"originalLanguage" validate:"omitempty,max=50"`
	Quality          *string    `json:"quality" validate:"omitempty,max=20"`
	FileType         *string    `json:"fileType" validate:"omitempty,max=20"`
	Sha256Hash       *string    `json:"sha256Hash" validate:"omitempty,sha256hex"`
	IsDeleted        *bool      `json:"isDeleted"`
	CreatedAt        *time.Time `json:"createdAt"`
	UpdatedAt        *time.Time `json:"updatedAt"`
	Overview         *string    `json:"overview" validate:"omitempty,max=1000"`
	PosterPath       *string    `json:"posterPath" validate:"omitempty,max=255"`
	Genres           []string   `json:"genres" validate:"omitempty,dive,max=50"`
	TorrentURL       *string    `json:"torrentUrl" validate:"omitempty,max=255"`
	TrailerURL       *string    `json:"trailerUrl" validate:"omitempty,max=255"`
	Size             *int64     `json:"size" validate:"omitempty,min=0"`
	Seeds            *int       `json:"seeds" validate:"omitempty,min=0"`
	Peers            *int       `json:"peers" validate:"omitempty,min=0"`
	Seasons          *int       `json:"seasons" validate:"omitempty,min=0"`
	Episodes         *int       `json:"episodes" validate:"omitempty,min=0"`
	Network          *string    `json:"network" validate:"omitempty,max=100"`
	Status           *string    `json:"status" validate:"omitempty,max=50"`
	EpisodeRuntime   *int       `json:"episodeRuntime" validate:"omitempty,min=0"`
}

func (d *SeriesDTO) RecordID() uuid.UUID      { return d.ID }
func (d *SeriesDTO) SetRecordID(id uuid.UUID) { d.ID = id }

// NormalizeSeries canonicalizes fields before persistence.
func NormalizeSeries(d *SeriesDTO) {
	d.Sha256Hash = validation.CanonicalHashPtr("series", d.Sha256Hash)
}

// SeriesErrorBody returns the entity-shaped error payload for series writes.
func SeriesErrorBody(id uuid.UUID, message string) *SeriesDTO {
	return &SeriesDTO{ID: id, Title: message}
}

// SeriesService is the series family's service instantiation.
type SeriesService = catalog.Service[SeriesDTO, *SeriesDTO]
