package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Series is the row shape of the series table.
type Series struct {
	ID               uuid.UUID
	Title            string
	Year             *int
	Magnet           string
	TmdbID           *int
	ImdbID           *string
	Language         *string
	OriginalLanguage *string
	Quality          *string
	FileType         *string
	Sha256Hash       *string
	IsDeleted        *bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Overview         *string
	PosterPath       *string
	Genres           pq.StringArray
	TorrentURL       *string
	TrailerURL       *string
	Size             *int64
	Seeds            *int
	Peers            *int
	Seasons          *int
	Episodes         *int
	Network          *string
	Status           *string
	EpisodeRuntime   *int
}

func (e *Series) Columns() []string {
	return []string{
		"id", "title", "year", "magnet", "tmdb_id", "imdb_id",
		"language", "original_language", "quality", "file_type",
		"sha256_hash", "is_deleted", "created_at", "updated_at",
		"overview", "poster_path", "genres", "torrent_url", "trailer_url",
		"size", "seeds", "peers",
		"seasons", "episodes", "network", "status", "episode_runtime",
	}
}

func (e *Series) Values() []any {
	return []any{
		e.ID, e.Title, e.Year, e.Magnet, e.TmdbID, e.ImdbID,
		e.Language, e.OriginalLanguage, e.Quality, e.FileType,
		e.Sha256Hash, e.IsDeleted, e.CreatedAt, e.UpdatedAt,
		e.Overview, e.PosterPath, e.Genres, e.TorrentURL, e.TrailerURL,
		e.Size, e.Seeds, e.Peers,
		e.Seasons, e.Episodes, e.Network, e.Status, e.EpisodeRuntime,
	}
}

func (e *Series) ScanDest() []any {
	return []any{
		&e.ID, &e.Title, &e.Year, &e.Magnet, &e.TmdbID, &e.ImdbID,
		&e.Language, &e.OriginalLanguage, &e.Quality, &e.FileType,
		&e.Sha256Hash, &e.IsDeleted, &e.CreatedAt, &e.UpdatedAt,
		&e.Overview, &e.PosterPath, &e.Genres, &e.TorrentURL, &e.TrailerURL,
		&e.Size, &e.Seeds, &e.Peers,
		&e.Seasons, &e.Episodes, &e.Network, &e.Status, &e.EpisodeRuntime,
	}
}

func (e *Series) Stamp(now time.Time) {
	e.CreatedAt = now
	e.UpdatedAt = now
}
