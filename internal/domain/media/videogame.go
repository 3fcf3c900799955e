package media

import (
	"time"

	"github.com/google/uuid"

	"github.com/mediavault/catalog-api/internal/domain/catalog"
	"github.com/mediavault/catalog-api/internal/validation"
)

// VideoGameDTO is the wire shape of a video-game record.
type VideoGameDTO struct {
	ID                 uuid.UUID      `json:"id"`
	Title              string         `json:"title" validate:"required,min=1,max=255"`
	Year               *int           `json:"year" validate:"omitempty,min=1950,max=2100"`
	Developer          *string        `json:"developer" validate:"omitempty,max=255"`
	Publisher          *string        `json:"publisher" validate:"omitempty,max=255"`
	Platform           []string       `json:"platform" validate:"required,dive,max=50"`
	Magnet             string         `json:"magnet" validate:"required,magnet"`
	Quality            *string        `json:"quality" validate:"omitempty,max=50"`
	FileType           *string        `json:"fileType" validate:"omitempty,max=20"`
	Size               *int64         `json:"size" validate:"omitempty,min=0"`
	Sha256Hash         *string        `json:"sha256Hash" validate:"omitempty,sha256hex"`
	Seeds              *int           `json:"seeds" validate:"omitempty,min=0"`
	Peers              *int           `json:"peers" validate:"omitempty,min=0"`
	CoverPath          *string        `json:"coverPath" validate:"omitempty,max=255"`
	Description        *string        `json:"description"`
	SystemRequirements map[string]any `json:"systemRequirements"`
	Genre              []string       `json:"genre" validate:"omitempty,dive,max=50"`
	ScreenshotPaths    []string       `json:"screenshotPaths"`
	Rating             *string        `json:"rating" validate:"omitempty,max=10"`
	ReleaseDate        *time.Time     `json:"releaseDate"`
	TorrentURL         *string        `json:"torrentUrl" validate:"omitempty,max=255"`
	EsrbRating         *string        `json:"esrbRating" validate:"omitempty,max=10"`
	Multiplayer        *bool          `json:"multiplayer"`
	IsDeleted          *bool          `json:"isDeleted"`
	CreatedAt          *time.Time     `json:"createdAt"`
	UpdatedAt          *time.Time     `json:"updatedAt"`
}

func (d *VideoGameDTO) RecordID() uuid.UUID      { return d.ID }
func (d *VideoGameDTO) SetRecordID(id uuid.UUID) { d.ID = id }

// NormalizeVideoGame canonicalizes fields before persistence.
func NormalizeVideoGame(d *VideoGameDTO) {
	d.Sha256Hash = validation.CanonicalHashPtr("video_games", d.Sha256Hash)
}

// VideoGameErrorBody returns the entity-shaped error payload for game writes.
func VideoGameErrorBody(id uuid.UUID, message string) *VideoGameDTO {
	return &VideoGameDTO{ID: id, Title: message}
}

// VideoGameService is the video-game family's service instantiation.
type VideoGameService = catalog.Service[VideoGameDTO, *VideoGameDTO]
