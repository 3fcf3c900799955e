package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediavault/catalog-api/internal/domain/media"
	"github.com/mediavault/catalog-api/internal/infrastructure/database/entities"
)

func TestMovieFromDTODiscardsClientControlledFields(t *testing.T) {
	deleted := true
	created := time.Now().Add(-48 * time.Hour)
	version := 7
	d := &media.MovieDTO{
		ID:        uuid.New(),
		Title:     "Dune",
		Magnet:    "magnet:?xt=urn:btih:0123456789abcdef0123456789abcdef01234567&dn=d&tr=t",
		IsDeleted: &deleted,
		CreatedAt: &created,
		UpdatedAt: &created,
		Version:   &version,
		Genres:    []string{"Sci-Fi", "Drama"},
	}

	e := movieFromDTO(d)

	require.NotNil(t, e.IsDeleted)
	assert.False(t, *e.IsDeleted)
	assert.True(t, e.CreatedAt.IsZero())
	assert.True(t, e.UpdatedAt.IsZero())
	assert.Equal(t, 1, e.Version)
	assert.Equal(t, []string{"Sci-Fi", "Drama"}, []string(e.Genres))
}

func TestMovieRoundTrip(t *testing.T) {
	year := 2021
	lang := "en"
	e := &entities.Movie{
		ID:        uuid.New(),
		Title:     "Dune",
		Year:      &year,
		Magnet:    "magnet:?xt=urn:btih:0123456789abcdef0123456789abcdef01234567&dn=d&tr=t",
		Language:  &lang,
		Genres:    []string{"Sci-Fi"},
		CreatedAt: time.Now().Add(-time.Hour),
		UpdatedAt: time.Now(),
		Version:   3,
	}

	d := movieToDTO(e)
	assert.Equal(t, e.ID, d.ID)
	assert.Equal(t, "Dune", d.Title)
	assert.Equal(t, &year, d.Year)
	assert.Equal(t, &lang, d.Language)
	assert.Equal(t, []string{"Sci-Fi"}, d.Genres)
	require.NotNil(t, d.Version)
	assert.Equal(t, 3, *d.Version)
	require.NotNil(t, d.CreatedAt)
	assert.Equal(t, e.CreatedAt, *d.CreatedAt)
}

func TestStampSetsBothTimestamps(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	e := &entities.SeriesEpisode{}
	e.Stamp(now)
	assert.Equal(t, now, e.CreatedAt)
	assert.Equal(t, now, e.UpdatedAt)
}

func TestEntityColumnTablesAlign(t *testing.T) {
	check := func(name string, e Entity) {
		t.Run(name, func(t *testing.T) {
			cols := e.Columns()
			assert.Len(t, e.Values(), len(cols))
			assert.Len(t, e.ScanDest(), len(cols))
		})
	}
	check("movie", &entities.Movie{})
	check("series", &entities.Series{})
	check("music", &entities.Music{})
	check("music_track", &entities.MusicTrack{})
	check("video", &entities.Video{})
	check("video_game", &entities.VideoGame{})
	check("series_episode", &entities.SeriesEpisode{})
}
