package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mediavault/catalog-api/internal/domain/catalog"
	"github.com/mediavault/catalog-api/internal/domain/media"
	"github.com/mediavault/catalog-api/internal/infrastructure/database/entities"
)

func testDescriptor() Descriptor[media.MovieDTO, entities.Movie] {
	return Descriptor[media.MovieDTO, entities.Movie]{
		Table:            "movies",
		SoftDelete:       true,
		FullText:         true,
		HasYear:          true,
		SearchText:       []string{"title", "overview"},
		SearchArrays:     []string{"genres"},
		SubstringFilters: []string{"title"},
		ArrayFilters:     []string{"genres"},
		ListOrder:        "updated_at DESC",
		Versioned:        true,
	}
}

func TestSearchSQL(t *testing.T) {
	desc := testDescriptor()
	query, terms := desc.searchSQL([]string{"id", "title"})

	assert.Equal(t, 5, terms)
	assert.Contains(t, query, "SELECT id, title FROM movies")
	assert.Contains(t, query, "(is_deleted = false OR is_deleted IS NULL)")
	assert.Contains(t, query, "search_vector @@ plainto_tsquery('english', ?)")
	assert.Contains(t, query, "title ILIKE '%' || ? || '%'")
	assert.Contains(t, query, "EXISTS (SELECT 1 FROM unnest(genres) AS u(v) WHERE u.v ILIKE '%' || ? || '%')")
	assert.Contains(t, query, "year::text = ?")
	assert.Contains(t, query, "ORDER BY ts_rank(search_vector, plainto_tsquery('english', ?)) DESC, updated_at DESC")
	assert.Contains(t, query, "LIMIT ? OFFSET ?")
}

func TestSearchSQLWithoutFullText(t *testing.T) {
	desc := Descriptor[media.SeriesEpisodeDTO, entities.SeriesEpisode]{
		Table:      "series_episodes",
		SearchText: []string{"title", "overview"},
		ListOrder:  "season_number ASC, episode_number ASC",
	}
	query, terms := desc.searchSQL([]string{"id"})

	assert.Equal(t, 2, terms)
	assert.NotContains(t, query, "search_vector")
	assert.NotContains(t, query, "is_deleted")
	assert.Contains(t, query, "WHERE TRUE AND")
	assert.Contains(t, query, "ORDER BY updated_at DESC")
}

func TestUpsertSQL(t *testing.T) {
	desc := testDescriptor()
	query := desc.upsertSQL([]string{"id", "title", "created_at", "updated_at", "version"})

	assert.Contains(t, query, "INSERT INTO movies (id, title, created_at, updated_at, version)")
	assert.Contains(t, query, "VALUES (?, ?, ?, ?, ?)")
	assert.Contains(t, query, "ON CONFLICT (id) DO UPDATE SET")
	assert.Contains(t, query, "title = EXCLUDED.title")
	assert.Contains(t, query, "updated_at = EXCLUDED.updated_at")
	assert.Contains(t, query, "version = movies.version + 1")
	assert.NotContains(t, query, "created_at = EXCLUDED.created_at")
	assert.NotContains(t, query, "id = EXCLUDED.id")
	assert.Contains(t, query, "RETURNING id, title, created_at, updated_at, version")
}

func TestUpsertSQLUnversioned(t *testing.T) {
	desc := testDescriptor()
	desc.Versioned = false
	query := desc.upsertSQL([]string{"id", "title", "version"})
	assert.Contains(t, query, "version = EXCLUDED.version")
}

func TestUpsertSQLChildNaturalKeyConflict(t *testing.T) {
	desc := Descriptor[media.MusicTrackDTO, entities.MusicTrack]{
		Table:          "music_tracks",
		ConflictTarget: "(album_id, track_number)",
	}
	query := desc.upsertSQL([]string{"id", "album_id", "track_number", "title", "created_at"})

	assert.Contains(t, query, "ON CONFLICT (album_id, track_number) DO UPDATE SET")
	assert.NotContains(t, query, "ON CONFLICT (id)")
	assert.NotContains(t, query, "id = EXCLUDED.id")
	assert.NotContains(t, query, "created_at = EXCLUDED.created_at")
}

func TestUpdatedSinceSQLExcludesSoftDeleted(t *testing.T) {
	desc := testDescriptor()
	query := desc.updatedSinceSQL([]string{"id"})

	assert.Contains(t, query, "(is_deleted = false OR is_deleted IS NULL)")
	assert.Contains(t, query, "updated_at > ?")
	assert.Contains(t, query, "ORDER BY updated_at ASC")

	child := Descriptor[media.MusicTrackDTO, entities.MusicTrack]{Table: "music_tracks"}
	assert.NotContains(t, child.updatedSinceSQL([]string{"id"}), "is_deleted")
}

func TestFilterSQL(t *testing.T) {
	desc := testDescriptor()
	where, args := desc.filterSQL([]catalog.Filter{
		{Column: "title", Value: "dune"},
		{Column: "genres", Value: "Sci-Fi"},
		{Column: "language", Value: "en"},
	})

	assert.Contains(t, where, "(is_deleted = false OR is_deleted IS NULL)")
	assert.Contains(t, where, "title ILIKE '%' || ? || '%'")
	assert.Contains(t, where, "? = ANY(genres)")
	assert.Contains(t, where, "LOWER(language::text) = LOWER(?)")
	assert.Equal(t, []any{"dune", "Sci-Fi", "en"}, args)
}

func TestExactMatchIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, "LOWER(language::text) = LOWER(?)", exactMatch("language"))
}

func TestDeleteSQL(t *testing.T) {
	soft := testDescriptor()
	assert.Equal(t, "UPDATE movies SET is_deleted = true, updated_at = ? WHERE id = ?", soft.deleteSQL())
	assert.Equal(t, "UPDATE movies SET is_deleted = true, updated_at = ? WHERE id = ANY(?)", soft.bulkDeleteSQL())

	hard := Descriptor[media.MusicTrackDTO, entities.MusicTrack]{Table: "music_tracks"}
	assert.Equal(t, "DELETE FROM music_tracks WHERE id = ?", hard.deleteSQL())
	assert.Equal(t, "DELETE FROM music_tracks WHERE id = ANY(?)", hard.bulkDeleteSQL())
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "?", placeholders(1))
	assert.Equal(t, "?, ?, ?", placeholders(3))
}
