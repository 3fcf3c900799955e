package repository

import (
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/mediavault/catalog-api/internal/domain/catalog"
	"github.com/mediavault/catalog-api/internal/domain/media"
	"github.com/mediavault/catalog-api/internal/infrastructure/database/entities"
)

// NewMusicStore builds the music store.
func NewMusicStore(db *gorm.DB, log zerolog.Logger) catalog.Store[media.MusicDTO] {
	desc := Descriptor[media.MusicDTO, entities.Music]{
		Table:            "music",
		SoftDelete:       true,
		FullText:         true,
		HasYear:          true,
		SearchText:       []string{"title", "artist", "album", "genre", "label"},
		SubstringFilters: []string{"title", "artist", "album"},
		ListOrder:        "updated_at DESC",
		ToDTO:            musicToDTO,
		FromDTO:          musicFromDTO,
	}
	return New[media.MusicDTO, entities.Music, *entities.Music](db, desc, log)
}

func musicToDTO(e *entities.Music) media.MusicDTO {
	return media.MusicDTO{
		ID:          e.ID,
		Title:       e.Title,
		Artist:      e.Artist,
		Album:       e.Album,
		Year:        e.Year,
		Genre:       e.Genre,
		TrackCount:  e.TrackCount,
		Magnet:      e.Magnet,
		Quality:     e.Quality,
		FileType:    e.FileType,
		Size:        e.Size,
		Sha256Hash:  e.Sha256Hash,
		Seeds:       e.Seeds,
		Peers:       e.Peers,
		CoverPath:   e.CoverPath,
		Description: e.Description,
		Label:       e.Label,
		ReleaseDate: e.ReleaseDate,
		TorrentURL:  e.TorrentURL,
		IsDeleted:   e.IsDeleted,
		CreatedAt:   &e.CreatedAt,
		UpdatedAt:   &e.UpdatedAt,
	}
}

func musicFromDTO(d *media.MusicDTO) *entities.Music {
	live := false
	return &entities.Music{
		ID:          d.ID,
		Title:       d.Title,
		Artist:      d.Artist,
		Album:       d.Album,
		Year:        d.Year,
		Genre:       d.Genre,
		TrackCount:  d.TrackCount,
		Magnet:      d.Magnet,
		Quality:     d.Quality,
		FileType:    d.FileType,
		Size:        d.Size,
		Sha256Hash:  d.Sha256Hash,
		Seeds:       d.Seeds,
		Peers:       d.Peers,
		CoverPath:   d.CoverPath,
		Description: d.Description,
		Label:       d.Label,
		ReleaseDate: d.ReleaseDate,
		TorrentURL:  d.TorrentURL,
		IsDeleted:   &live,
	}
}
