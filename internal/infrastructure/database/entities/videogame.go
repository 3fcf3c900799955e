package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// VideoGame is the row shape of the video_games table.
type VideoGame struct {
	ID                 uuid.UUID
	Title              string
	Year               *int
	Developer          *string
	Publisher          *string
	Platform           pq.StringArray
	Magnet             string
	Quality            *string
	FileType           *string
	Size               *int64
	Sha256Hash         *string
	Seeds              *int
	Peers              *int
	CoverPath          *string
	Description        *string
	SystemRequirements JSONMap
	Genre              pq.StringArray
	ScreenshotPaths    pq.StringArray
	Rating             *string
	ReleaseDate        *time.Time
	TorrentURL         *string
	EsrbRating         *string
	Multiplayer        *bool
	IsDeleted          *bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (e *VideoGame) Columns() []string {
	return []string{
		"id", "title", "year", "developer", "publisher", "platform",
		"magnet", "quality", "file_type", "size", "sha256_hash",
		"seeds", "peers", "cover_path", "description", "system_requirements",
		"genre", "screenshot_paths", "rating", "release_date", "torrent_url",
		"esrb_rating", "multiplayer", "is_deleted", "created_at", "updated_at",
	}
}

func (e *VideoGame) Values() []any {
	return []any{
		e.ID, e.Title, e.Year, e.Developer, e.Publisher, e.Platform,
		e.Magnet, e.Quality, e.FileType, e.Size, e.Sha256Hash,
		e.Seeds, e.Peers, e.CoverPath, e.Description, e.SystemRequirements,
		e.Genre, e.ScreenshotPaths, e.Rating, e.ReleaseDate, e.TorrentURL,
		e.EsrbRating, e.Multiplayer, e.IsDeleted, e.CreatedAt, e.UpdatedAt,
	}
}

func (e *VideoGame) ScanDest() []any {
	return []any{
		&e.ID, &e.Title, &e.Year, &e.Developer, &e.Publisher, &e.Platform,
		&e.Magnet, &e.Quality, &e.FileType, &e.Size, &e.Sha256Hash,
		&e.Seeds, &e.Peers, &e.CoverPath, &e.Description, &e.SystemRequirements,
		&e.Genre, &e.ScreenshotPaths, &e.Rating, &e.ReleaseDate, &e.TorrentURL,
		&e.EsrbRating, &e.Multiplayer, &e.IsDeleted, &e.CreatedAt, &e.UpdatedAt,
	}
}

func (e *VideoGame) Stamp(now time.Time) {
	e.CreatedAt = now
	e.UpdatedAt = now
}
