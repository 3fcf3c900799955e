package entities

import (
	"time"

	"github.com/google/uuid"
)

// Music is the row shape of the music table.
type Music struct {
	ID          uuid.UUID
	Title       string
	Artist      string
	Album       *string
	Year        *int
	Genre       *string
	TrackCount  *int
	Magnet      string
	Quality     *string
	FileType    *string
	Size        *int64
	Sha256Hash  *string
	Seeds       *int
	Peers       *int
	CoverPath   *string
	Description *string
	Label       *string
	ReleaseDate *time.Time
	TorrentURL  *string
	IsDeleted   *bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (e *Music) Columns() []string {
	return []string{
		"id", "title", "artist", "album", "year", "genre", "track_count",
		"magnet", "quality", "file_type", "size", "sha256_hash",
		"seeds", "peers", "cover_path", "description", "label",
		"release_date", "torrent_url", "is_deleted", "created_at", "updated_at",
	}
}

func (e *Music) Values() []any {
	return []any{
		e.ID, e.Title, e.Artist, e.Album, e.Year, e.Genre, e.TrackCount,
		e.Magnet, e.Quality, e.FileType, e.Size, e.Sha256Hash,
		e.Seeds, e.Peers, e.CoverPath, e.Description, e.Label,
		e.ReleaseDate, e.TorrentURL, e.IsDeleted, e.CreatedAt, e.UpdatedAt,
	}
}

func (e *Music) ScanDest() []any {
	return []any{
		&e.ID, &e.Title, &e.Artist, &e.Album, &e.Year, &e.Genre, &e.TrackCount,
		&e.Magnet, &e.Quality, &e.FileType, &e.Size, &e.Sha256Hash,
		&e.Seeds, &e.Peers, &e.CoverPath, &e.Description, &e.Label,
		&e.ReleaseDate, &e.TorrentURL, &e.IsDeleted, &e.CreatedAt, &e.UpdatedAt,
	}
}

func (e *Music) Stamp(now time.Time) {
	e.CreatedAt = now
	e.UpdatedAt = now
}
