package media

import (
	"time"

	"github.com/google/uuid"

	"github.com/mediavault/catalog-api/internal/domain/catalog"
	"github.com/mediavault/catalog-api/internal/validation"
)

// VideoDTO is the wire shape of a standalone video record.
type VideoDTO struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title" validate:"required,min=1,max=255"`
	Creator       *string    `json:"creator" validate:"omitempty,max=255"`
	Year          *int       `json:"year" validate:"omitempty,min=1888,max=2100"`
	Duration      *int       `json:"duration" validate:"omitempty,min=0"`
	Category      *string    `json:"category" validate:"omitempty,max=100"`
	Magnet        string     `json:"magnet" validate:"required,magnet"`
	Quality       *string    `json:"quality" validate:"omitempty,max=50"`
	FileType      *string    `json:"fileType" validate:"omitempty,max=20"`
	Size          *int64     `json:"size" validate:"omitempty,min=0"`
	Sha256Hash    *string    `json:"sha256Hash" validate:"omitempty,sha256hex"`
	Seeds         *int       `json:"seeds" validate:"omitempty,min=0"`
	Peers         *int       `json:"peers" validate:"omitempty,min=0"`
	ThumbnailPath *string    `json:"thumbnailPath" validate:"omitempty,max=255"`
	Description   *string    `json:"description"`
	Tags          []string   `json:"tags" validate:"omitempty,dive,max=50"`
	TorrentURL    *string    `json:"torrentUrl" validate:"omitempty,max=255"`
	Source        *string    `json:"source" validate:"omitempty,max=100"`
	IsDeleted     *bool      `json:"isDeleted"`
	CreatedAt     *time.Time `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt"`
}

func (d *VideoDTO) RecordID() uuid.UUID      { return d.ID }
func (d *VideoDTO) SetRecordID(id uuid.UUID) { d.ID = id }

// NormalizeVideo canonicalizes fields before persistence.
func NormalizeVideo(d *VideoDTO) {
	d.Sha256Hash = validation.CanonicalHashPtr("videos", d.Sha256Hash)
}

// VideoErrorBody returns the entity-shaped error payload for video writes.
func VideoErrorBody(id uuid.UUID, message string) *VideoDTO {
	return &VideoDTO{ID: id, Title: message}
}

// VideoService is the video family's service instantiation.
type VideoService = catalog.Service[VideoDTO, *VideoDTO]
