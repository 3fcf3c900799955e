package media

import (
	"time"

	"github.com/google/uuid"

	"github.com/mediavault/catalog-api/internal/domain/catalog"
	"github.com/mediavault/catalog-api/internal/validation"
)

// MusicDTO is the wire shape of a music release record.
type MusicDTO struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title" validate:"required,min=1,max=255"`
	Artist      string     `json:"artist" validate:"required,min=1,max=255"`
	Album       *string    `json:"album" validate:"omitempty,max=255"`
	Year        *int       `json:"year" validate:"omitempty,min=1888,max=2100"`
	Genre       *string    `json:"genre" validate:"omitempty,max=100"`
	TrackCount  *int       `json:"trackCount" validate:"omitempty,min=0"`
	Magnet      string     `json:"magnet" validate:"required,magnet"`
	Quality     *string    `json:"quality" validate:"omitempty,max=50"`
	FileType    *string    `json:"fileType" validate:"omitempty,max=20"`
	Size        *int64     `json:"size" validate:"omitempty,min=0"`
	Sha256Hash  *string    `json:"sha256Hash" validate:"omitempty,sha256hex"`
	Seeds       *int       `json:"seeds" validate:"omitempty,min=0"`
	Peers       *int       `json:"peers" validate:"omitempty,min=0"`
	CoverPath   *string    `json:"coverPath" validate:"omitempty,max=255"`
	Description *string    `json:"description"`
	Label       *string    `json:"label" validate:"omitempty,max=100"`
	ReleaseDate *time.Time `json:"releaseDate"`
	TorrentURL  *string    `json:"torrentUrl" validate:"omitempty,max=255"`
	IsDeleted   *bool      `json:"isDeleted"`
	CreatedAt   *time.Time `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

func (d *MusicDTO) RecordID() uuid.UUID      { return d.ID }
func (d *MusicDTO) SetRecordID(id uuid.UUID) { d.ID = id }

// NormalizeMusic canonicalizes fields before persistence.
func NormalizeMusic(d *MusicDTO) {
	d.Sha256Hash = validation.CanonicalHashPtr("music", d.Sha256Hash)
}

// MusicErrorBody returns the entity-shaped error payload for music writes.
func MusicErrorBody(id uuid.UUID, message string) *MusicDTO {
	return &MusicDTO{ID: id, Title: message}
}

// MusicService is the music family's service instantiation.
type MusicService = catalog.Service[MusicDTO, *MusicDTO]
