package entities

import (
	"time"

	"github.com/google/uuid"
)

// MusicTrack is the row shape of the music_tracks table. Tracks have no
// soft-delete flag; deletes remove the row.
type MusicTrack struct {
	ID          uuid.UUID
	AlbumID     uuid.UUID
	TrackNumber *int
	Title       string
	Artist      *string
	Duration    *int
	FilePath    *string
	FileType    *string
	Sha256Hash  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (e *MusicTrack) Columns() []string {
	return []string{
		"id", "album_id", "track_number", "title", "artist", "duration",
		"file_path", "file_type", "sha256_hash", "created_at", "updated_at",
	}
}

func (e *MusicTrack) Values() []any {
	return []any{
		e.ID, e.AlbumID, e.TrackNumber, e.Title, e.Artist, e.Duration,
		e.FilePath, e.FileType, e.Sha256Hash, e.CreatedAt, e.UpdatedAt,
	}
}

func (e *MusicTrack) ScanDest() []any {
	return []any{
		&e.ID, &e.AlbumID, &e.TrackNumber, &e.Title, &e.Artist, &e.Duration,
		&e.FilePath, &e.FileType, &e.Sha256Hash, &e.CreatedAt, &e.UpdatedAt,
	}
}

func (e *MusicTrack) Stamp(now time.Time) {
	e.CreatedAt = now
	e.UpdatedAt = now
}
