package repository

import (
	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/mediavault/catalog-api/internal/domain/catalog"
	"github.com/mediavault/catalog-api/internal/domain/media"
	"github.com/mediavault/catalog-api/internal/infrastructure/database/entities"
)

// NewVideoGameStore builds the video-games store.
func NewVideoGameStore(db *gorm.DB, log zerolog.Logger) catalog.Store[media.VideoGameDTO] {
	desc := Descriptor[media.VideoGameDTO, entities.VideoGame]{
		Table:            "video_games",
		SoftDelete:       true,
		FullText:         true,
		HasYear:          true,
		SearchText:       []string{"title", "developer", "publisher"},
		SearchArrays:     []string{"platform", "genre"},
		SubstringFilters: []string{"title", "developer", "publisher"},
		ArrayFilters:     []string{"platform", "genre"},
		ListOrder:        "updated_at DESC",
		ToDTO:            videoGameToDTO,
		FromDTO:          videoGameFromDTO,
	}
	return New[media.VideoGameDTO, entities.VideoGame, *entities.VideoGame](db, desc, log)
}

func videoGameToDTO(e *entities.VideoGame) media.VideoGameDTO {
	return media.VideoGameDTO{
		ID:                 e.ID,
		Title:              e.Title,
		Year:               e.Year,
		Developer:          e.Developer,
		Publisher:          e.Publisher,
		Platform:           e.Platform,
		Magnet:             e.Magnet,
		Quality:            e.Quality,
		FileType:           e.FileType,
		Size:               e.Size,
		Sha256Hash:         e.Sha256Hash,
		Seeds:              e.Seeds,
		Peers:              e.Peers,
		CoverPath:          e.CoverPath,
		Description:        e.Description,
		SystemRequirements: e.SystemRequirements,
		Genre:              e.Genre,
		ScreenshotPaths:    e.ScreenshotPaths,
		Rating:             e.Rating,
		ReleaseDate:        e.ReleaseDate,
		TorrentURL:         e.TorrentURL,
		EsrbRating:         e.EsrbRating,
		Multiplayer:        e.Multiplayer,
		IsDeleted:          e.IsDeleted,
		CreatedAt:          &e.CreatedAt,
		UpdatedAt:          &e.UpdatedAt,
	}
}

func videoGameFromDTO(d *media.VideoGameDTO) *entities.VideoGame {
	live := false
	return &entities.VideoGame{
		ID:                 d.ID,
		Title:              d.Title,
		Year:               d.Year,
		Developer:          d.Developer,
		Publisher:          d.Publisher,
		Platform:           pq.StringArray(d.Platform),
		Magnet:             d.Magnet,
		Quality:            d.Quality,
		FileType:           d.FileType,
		Size:               d.Size,
		Sha256Hash:         d.Sha256Hash,
		Seeds:              d.Seeds,
		Peers:              d.Peers,
		CoverPath:          d.CoverPath,
		Description:        d.Description,
		SystemRequirements: entities.JSONMap(d.SystemRequirements),
		Genre:              pq.StringArray(d.Genre),
		ScreenshotPaths:    pq.StringArray(d.ScreenshotPaths),
		Rating:             d.Rating,
		ReleaseDate:        d.ReleaseDate,
		TorrentURL:         d.TorrentURL,
		EsrbRating:         d.EsrbRating,
		Multiplayer:        d.Multiplayer,
		IsDeleted:          &live,
	}
}
