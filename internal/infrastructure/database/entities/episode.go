package entities

import (
	"time"

	"github.com/google/uuid"
)

// SeriesEpisode is the row shape of the series_episodes table. Episodes
// have no soft-delete flag; deletes remove the row.
type SeriesEpisode struct {
	ID            uuid.UUID
	SeriesID      uuid.UUID
	SeasonNumber  *int
	EpisodeNumber *int
	Title         *string
	Overview      *string
	AirDate       *time.Time
	Runtime       *int
	Magnet        *string
	Quality       *string
	Size          *int64
	FileType      *string
	Sha256Hash    *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (e *SeriesEpisode) Columns() []string {
	return []string{
		"id", "series_id", "season_number", "episode_number", "title",
		"overview", "air_date", "runtime", "magnet", "quality", "size",
		"file_type", "sha256_hash", "created_at", "updated_at",
	}
}

func (e *SeriesEpisode) Values() []any {
	return []any{
		e.ID, e.SeriesID, e.SeasonNumber, e.EpisodeNumber, e.Title,
		e.Overview, e.AirDate, e.Runtime, e.Magnet, e.Quality, e.Size,
		e.FileType, e.Sha256Hash, e.CreatedAt, e.UpdatedAt,
	}
}

func (e *SeriesEpisode) ScanDest() []any {
	return []any{
		&e.ID, &e.SeriesID, &e.SeasonNumber, &e.EpisodeNumber, &e.Title,
		&e.Overview, &e.AirDate, &e.Runtime, &e.Magnet, &e.Quality, &e.Size,
		&e.FileType, &e.Sha256Hash, &e.CreatedAt, &e.UpdatedAt,
	}
}

func (e *SeriesEpisode) Stamp(now time.Time) {
	e.CreatedAt = now
	e.UpdatedAt = now
}
