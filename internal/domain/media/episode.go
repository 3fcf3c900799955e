package media

import (
	"time"

	"github.com/google/uuid"

	"github.com/mediavault/catalog-api/internal/domain/catalog"
	"github.com/mediavault/catalog-api/internal/validation"
)

// SeriesEpisodeDTO is the wire shape of one episode of a series. Episodes
// are children of a series record and are hard-deleted.
type SeriesEpisodeDTO struct {
	ID            uuid.UUID  `json:"id"`
	SeriesID      uuid.UUID  `json:"seriesId" validate:"required"`
	SeasonNumber  *int       `json:"seasonNumber" validate:"required,min=0"`
	EpisodeNumber *int       `json:"episodeNumber" validate:"required,min=0"`
	Title         *string    `json:"title" validate:"omitempty,max=255"`
	Overview      *string    `json:"overview"`
	AirDate       *time.Time `json:"airDate"`
	Runtime       *int       `json:"runtime" validate:"omitempty,min=0"`
	Magnet        *string    `json:"magnet" validate:"omitempty,magnet"`
	Quality       *string    `json:"quality" validate:"omitempty,max=20"`
	Size          *int64     `json:"size" validate:"omitempty,min=0"`
	FileType      *string    `json:"fileType" validate:"omitempty,max=20"`
	Sha256Hash    *string    `json:"sha256Hash" validate:"omitempty,sha256hex"`
	CreatedAt     *time.Time `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt"`
}

func (d *SeriesEpisodeDTO) RecordID() uuid.UUID      { return d.ID }
func (d *SeriesEpisodeDTO) SetRecordID(id uuid.UUID) { d.ID = id }

// ParentID returns the owning series id.
func (d *SeriesEpisodeDTO) ParentID() uuid.UUID { return d.SeriesID }

// NormalizeSeriesEpisode canonicalizes fields before persistence.
func NormalizeSeriesEpisode(d *SeriesEpisodeDTO) {
	d.Sha256Hash = validation.CanonicalHashPtr("series_episodes", d.Sha256Hash)
}

// SeriesEpisodeErrorBody returns the entity-shaped error payload for
// episode writes; the message travels in the title field.
func SeriesEpisodeErrorBody(id uuid.UUID, message string) *SeriesEpisodeDTO {
	msg := message
	return &SeriesEpisodeDTO{ID: id, Title: &msg}
}

// SeriesEpisodeService is the episode family's service instantiation.
type SeriesEpisodeService = catalog.ChildService[SeriesEpisodeDTO, *SeriesEpisodeDTO]
