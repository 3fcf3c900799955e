package repository

import (
	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/mediavault/catalog-api/internal/domain/catalog"
	"github.com/mediavault/catalog-api/internal/domain/media"
	"github.com/mediavault/catalog-api/internal/infrastructure/database/entities"
)

// NewVideoStore builds the videos store.
func NewVideoStore(db *gorm.DB, log zerolog.Logger) catalog.Store[media.VideoDTO] {
	desc := Descriptor[media.VideoDTO, entities.Video]{
		Table:            "videos",
		SoftDelete:       true,
		FullText:         true,
		HasYear:          true,
		SearchText:       []string{"title", "creator", "category", "description"},
		SearchArrays:     []string{"tags"},
		SubstringFilters: []string{"title", "creator"},
		ArrayFilters:     []string{"tags"},
		ListOrder:        "updated_at DESC",
		ToDTO:            videoToDTO,
		FromDTO:          videoFromDTO,
	}
	return New[media.VideoDTO, entities.Video, *entities.Video](db, desc, log)
}

func videoToDTO(e *entities.Video) media.VideoDTO {
	return media.VideoDTO{
		ID:            e.ID,
		Title:         e.Title,
		Creator:       e.Creator,
		Year:          e.Year,
		Duration:      e.Duration,
		Category:      e.Category,
		Magnet:        e.Magnet,
		Quality:       e.Quality,
		FileType:      e.FileType,
		Size:          e.Size,
		Sha256Hash:    e.Sha256Hash,
		Seeds:         e.Seeds,
		Peers:         e.Peers,
		ThumbnailPath: e.ThumbnailPath,
		Description:   e.Description,
		Tags:          e.Tags,
		TorrentURL:    e.TorrentURL,
		Source:        e.Source,
		IsDeleted:     e.IsDeleted,
		CreatedAt:     &e.CreatedAt,
		UpdatedAt:     &e.UpdatedAt,
	}
}

func videoFromDTO(d *media.VideoDTO) *entities.Video {
	live := false
	return &entities.Video{
		ID:            d.ID,
		Title:         d.Title,
		Creator:       d.Creator,
		Year:          d.Year,
		Duration:      d.Duration,
		Category:      d.Category,
		Magnet:        d.Magnet,
		Quality:       d.Quality,
		FileType:      d.FileType,
		Size:          d.Size,
		Sha256Hash:    d.Sha256Hash,
		Seeds:         d.Seeds,
		Peers:         d.Peers,
		ThumbnailPath: d.ThumbnailPath,
		Description:   d.Description,
		Tags:          pq.StringArray(d.Tags),
		TorrentURL:    d.TorrentURL,
		Source:        d.Source,
		IsDeleted:     &live,
	}
}
