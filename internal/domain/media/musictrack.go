package media

import (
	"time"

	"github.com/google/uuid"

	"github.com/mediavault/catalog-api/internal/domain/catalog"
	"github.com/mediavault/catalog-api/internal/validation"
)

// MusicTrackDTO is the wire shape of one track inside a music release.
// Tracks are children of a music record and are hard-deleted.
type MusicTrackDTO struct {
	ID          uuid.UUID  `json:"id"`
	AlbumID     uuid.UUID  `json:"albumId" validate:"required"`
	TrackNumber *int       `json:"trackNumber" validate:"required,min=0"`
	Title       string     `json:"title" validate:"required,min=1,max=255"`
	Artist      *string    `json:"artist" validate:"omitempty,max=255"`
	Duration    *int       `json:"duration" validate:"omitempty,min=0"`
	FilePath    *string    `json:"filePath"`
	FileType    *string    `json:"fileType" validate:"omitempty,max=20"`
	Sha256Hash  *string    `json:"sha256Hash" validate:"omitempty,sha256hex"`
	CreatedAt   *time.Time `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

func (d *MusicTrackDTO) RecordID() uuid.UUID      { return d.ID }
func (d *MusicTrackDTO) SetRecordID(id uuid.UUID) { d.ID = id }

// ParentID returns the owning music release id.
func (d *MusicTrackDTO) ParentID() uuid.UUID { return d.AlbumID }

// NormalizeMusicTrack canonicalizes fields before persistence.
func NormalizeMusicTrack(d *MusicTrackDTO) {
	d.Sha256Hash = validation.CanonicalHashPtr("music_tracks", d.Sha256Hash)
}

// MusicTrackErrorBody returns the entity-shaped error payload for track writes.
func MusicTrackErrorBody(id uuid.UUID, message string) *MusicTrackDTO {
	return &MusicTrackDTO{ID: id, Title: message}
}

// MusicTrackService is the music-track family's service instantiation.
type MusicTrackService = catalog.ChildService[MusicTrackDTO, *MusicTrackDTO]
