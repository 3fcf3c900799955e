// Package media defines the transfer types of the five media families and
// their validation rules. Field constraints mirror what the catalog accepts
// on the wire; persistence shapes live in the entities package.
package media

import (
	"time"

	"github.com/google/uuid"

	"github.com/mediavault/catalog-api/internal/domain/catalog"
	"github.com/mediavault/catalog-api/internal/validation"
)

// MovieDTO is the wire shape of a movie record.
type MovieDTO struct {
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
	Version          *int       `json:"version"`
}

func (d *MovieDTO) RecordID() uuid.UUID      { return d.ID }
func (d *MovieDTO) SetRecordID(id uuid.UUID) { d.ID = id }

// NormalizeMovie canonicalizes fields before persistence.
func NormalizeMovie(d *MovieDTO) {
	d.Sha256Hash = validation.CanonicalHashPtr("movies", d.Sha256Hash)
}

// MovieErrorBody returns the entity-shaped error payload the API emits when
// a movie write is rejected; the message travels in the title field.
func MovieErrorBody(id uuid.UUID, message string) *MovieDTO {
	return &MovieDTO{ID: id, Title: message}
}

// MovieService is the movie family's service instantiation.
type MovieService = catalog.Service[MovieDTO, *MovieDTO]
