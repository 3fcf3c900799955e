package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mediavault/catalog-api/internal/config"
	"github.com/mediavault/catalog-api/internal/domain/catalog"
	"github.com/mediavault/catalog-api/internal/domain/media"
)

// Services bundles the per-family services the HTTP layer serves.
type Services struct {
	Movies   *media.MovieService
	Series   *media.SeriesService
	Music    *media.MusicService
	Tracks   *media.MusicTrackService
	Videos   *media.VideoService
	Games    *media.VideoGameService
	Episodes *media.SeriesEpisodeService
}

// Provider wires HTTP handlers.
type Provider struct {
	Movies   *FamilyHandler[media.MovieDTO]
	Series   *FamilyHandler[media.SeriesDTO]
	Music    *FamilyHandler[media.MusicDTO]
	Tracks   *FamilyHandler[media.MusicTrackDTO]
	Videos   *FamilyHandler[media.VideoDTO]
	Games    *FamilyHandler[media.VideoGameDTO]
	Episodes *FamilyHandler[media.SeriesEpisodeDTO]
}

// NewProvider builds every family handler.
func NewProvider(cfg *config.Config, svcs Services, log zerolog.Logger) *Provider {
	return &Provider{
		Movies: NewFamilyHandler("movies", svcs.Movies, cfg, log,
			queryFilters(map[string]string{
				"title": "title", "year": "year", "language": "language",
				"quality": "quality", "fileType": "file_type", "genre": "genres",
			}),
			func(id uuid.UUID, msg string) any { return media.MovieErrorBody(id, msg) }),
		Series: NewFamilyHandler("series", svcs.Series, cfg, log,
			queryFilters(map[string]string{
				"title": "title", "year": "year", "language": "language",
				"quality": "quality", "fileType": "file_type", "genre": "genres",
				"network": "network", "status": "status",
			}),
			func(id uuid.UUID, msg string) any { return media.SeriesErrorBody(id, msg) }),
		Music: NewFamilyHandler("music", svcs.Music, cfg, log,
			queryFilters(map[string]string{
				"title": "title", "artist": "artist", "album": "album",
				"genre": "genre", "year": "year", "quality": "quality",
				"fileType": "file_type", "label": "label",
			}),
			func(id uuid.UUID, msg string) any { return media.MusicErrorBody(id, msg) }),
		Tracks: NewFamilyHandler[media.MusicTrackDTO]("music_tracks", svcs.Tracks, cfg, log,
			queryFilters(map[string]string{
				"title": "title", "artist": "artist", "albumId": "album_id",
				"fileType": "file_type",
			}),
			func(id uuid.UUID, msg string) any { return media.MusicTrackErrorBody(id, msg) }).
			WithDeleteByParent(func(ctx context.Context, parentID uuid.UUID) error {
				return svcs.Tracks.DeleteByParent(ctx, "album_id", parentID)
			}),
		Videos: NewFamilyHandler("videos", svcs.Videos, cfg, log,
			queryFilters(map[string]string{
				"title": "title", "creator": "creator", "category": "category",
				"year": "year", "quality": "quality", "fileType": "file_type",
				"tag": "tags", "source": "source",
			}),
			func(id uuid.UUID, msg string) any { return media.VideoErrorBody(id, msg) }),
		Games: NewFamilyHandler("video_games", svcs.Games, cfg, log,
			queryFilters(map[string]string{
				"title": "title", "developer": "developer", "publisher": "publisher",
				"year": "year", "platform": "platform", "genre": "genre",
				"esrbRating": "esrb_rating", "rating": "rating",
			}),
			func(id uuid.UUID, msg string) any { return media.VideoGameErrorBody(id, msg) }),
		Episodes: NewFamilyHandler[media.SeriesEpisodeDTO]("series_episodes", svcs.Episodes, cfg, log,
			queryFilters(map[string]string{
				"seriesId": "series_id", "seasonNumber": "season_number",
				"episodeNumber": "episode_number", "title": "title",
				"quality": "quality",
			}),
			func(id uuid.UUID, msg string) any { return media.SeriesEpisodeErrorBody(id, msg) }).
			WithDeleteByParent(func(ctx context.Context, parentID uuid.UUID) error {
				return svcs.Episodes.DeleteByParent(ctx, "series_id", parentID)
			}),
	}
}

// queryFilters maps non-empty query parameters to column filters using the
// param-to-column table. Columns never come from user input.
func queryFilters(params map[string]string) func(c *gin.Context) []catalog.Filter {
	return func(c *gin.Context) []catalog.Filter {
		var filters []catalog.Filter
		for param, column := range params {
			if v := c.Query(param); v != "" {
				filters = append(filters, catalog.Filter{Column: column, Value: v})
			}
		}
		return filters
	}
}
