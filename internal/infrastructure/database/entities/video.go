package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Video is the row shape of the videos table.
type Video struct {
	ID            uuid.UUID
	Title         string
	Creator       *string
	Year          *int
	Duration      *int
	Category      *string
	Magnet        string
	Quality       *string
	FileType      *string
	Size          *int64
	Sha256Hash    *string
	Seeds         *int
	Peers         *int
	ThumbnailPath *string
	Description   *string
	Tags          pq.StringArray
	TorrentURL    *string
	Source        *string
	IsDeleted     *bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (e *Video) Columns() []string {
	return []string{
		"id", "title", "creator", "year", "duration", "category",
		"magnet", "quality", "file_type", "size", "sha256_hash",
		"seeds", "peers", "thumbnail_path", "description", "tags",
		"torrent_url", "source", "is_deleted", "created_at", "updated_at",
	}
}

func (e *Video) Values() []any {
	return []any{
		e.ID, e.Title, e.Creator, e.Year, e.Duration, e.Category,
		e.Magnet, e.Quality, e.FileType, e.Size, e.Sha256Hash,
		e.Seeds, e.Peers, e.ThumbnailPath, e.Description, e.Tags,
		e.TorrentURL, e.Source, e.IsDeleted, e.CreatedAt, e.UpdatedAt,
	}
}

func (e *Video) ScanDest() []any {
	return []any{
		&e.ID, &e.Title, &e.Creator, &e.Year, &e.Duration, &e.Category,
		&e.Magnet, &e.Quality, &e.FileType, &e.Size, &e.Sha256Hash,
		&e.Seeds, &e.Peers, &e.ThumbnailPath, &e.Description, &e.Tags,
		&e.TorrentURL, &e.Source, &e.IsDeleted, &e.CreatedAt, &e.UpdatedAt,
	}
}

func (e *Video) Stamp(now time.Time) {
	e.CreatedAt = now
	e.UpdatedAt = now
}
