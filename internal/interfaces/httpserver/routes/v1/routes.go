// Package v1 registers the versioned catalog routes. Every family gets the
// same core surface; lookup, aggregate, and child-scoped extras are wired
// per family with explicit column and dimension names.
package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/mediavault/catalog-api/internal/domain/catalog"
	"github.com/mediavault/catalog-api/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates versioned route registration.
type Routes struct {
	handlers *handlers.Provider
}

func NewRoutes(provider *handlers.Provider) *Routes {
	return &Routes{handlers: provider}
}

// Register attaches all v1 routes under the /v1 prefix.
func (r *Routes) Register(router gin.IRouter) {
	group := router.Group("/v1")

	movies := group.Group("/movies")
	registerFamily(movies, r.handlers.Movies, true)
	movies.GET("/tmdb/:tmdbId", r.handlers.Movies.ListByColumn("tmdb_id", "tmdbId"))
	movies.GET("/imdb/:imdbId", r.handlers.Movies.ListByColumn("imdb_id", "imdbId"))
	movies.GET("/language/:language", r.handlers.Movies.ListByColumn("language", "language"))
	movies.GET("/top-languages", r.handlers.Movies.Top(catalog.Dimension{Name: "language", Column: "language"}))
	movies.GET("/top-genres", r.handlers.Movies.Top(catalog.Dimension{Name: "genre", Column: "genres", Array: true}))

	series := group.Group("/series")
	registerFamily(series, r.handlers.Series, true)
	series.GET("/tmdb/:tmdbId", r.handlers.Series.ListByColumn("tmdb_id", "tmdbId"))
	series.GET("/imdb/:imdbId", r.handlers.Series.ListByColumn("imdb_id", "imdbId"))
	series.GET("/language/:language", r.handlers.Series.ListByColumn("language", "language"))
	series.GET("/top-languages", r.handlers.Series.Top(catalog.Dimension{Name: "language", Column: "language"}))
	series.GET("/top-genres", r.handlers.Series.Top(catalog.Dimension{Name: "genre", Column: "genres", Array: true}))
	series.GET("/top-networks", r.handlers.Series.Top(catalog.Dimension{Name: "network", Column: "network"}))

	music := group.Group("/music")
	registerFamily(music, r.handlers.Music, true)
	music.GET("/artist/:artist", r.handlers.Music.ListByColumn("artist", "artist"))
	music.GET("/album/:album", r.handlers.Music.ListByColumn("album", "album"))
	music.GET("/genre/:genre", r.handlers.Music.ListByColumn("genre", "genre"))
	music.GET("/top-genres", r.handlers.Music.Top(catalog.Dimension{Name: "genre", Column: "genre"}))
	music.GET("/top-artists", r.handlers.Music.Top(catalog.Dimension{Name: "artist", Column: "artist"}))

	tracks := group.Group("/music-tracks")
	registerFamily(tracks, r.handlers.Tracks, false)
	tracks.GET("/album/:albumId", r.handlers.Tracks.ListByParent("album_id", "albumId"))
	tracks.DELETE("/album/:albumId", r.handlers.Tracks.DeleteByParent("albumId"))

	videos := group.Group("/videos")
	registerFamily(videos, r.handlers.Videos, true)
	videos.GET("/category/:category", r.handlers.Videos.ListByColumn("category", "category"))
	videos.GET("/creator/:creator", r.handlers.Videos.ListByColumn("creator", "creator"))
	videos.GET("/top-categories", r.handlers.Videos.Top(catalog.Dimension{Name: "category", Column: "category"}))
	videos.GET("/top-tags", r.handlers.Videos.Top(catalog.Dimension{Name: "tag", Column: "tags", Array: true}))

	games := group.Group("/videogames")
	registerFamily(games, r.handlers.Games, true)
	games.GET("/platform/:platform", r.handlers.Games.ListByFilterColumn("platform", "platform"))
	games.GET("/developer/:developer", r.handlers.Games.ListByColumn("developer", "developer"))
	games.GET("/top-platforms", r.handlers.Games.Top(catalog.Dimension{Name: "platform", Column: "platform", Array: true}))
	games.GET("/top-genres", r.handlers.Games.Top(catalog.Dimension{Name: "genre", Column: "genre", Array: true}))

	episodes := group.Group("/episodes")
	registerFamily(episodes, r.handlers.Episodes, false)
	episodes.GET("/series/:seriesId", r.handlers.Episodes.ListByParent("series_id", "seriesId"))
	episodes.GET("/series/:seriesId/season/:seasonNumber",
		r.handlers.Episodes.ListByParentSegment("series_id", "seriesId", "season_number", "seasonNumber"))
	episodes.DELETE("/series/:seriesId", r.handlers.Episodes.DeleteByParent("seriesId"))
}

// registerFamily wires the core surface every family shares. Child tables
// carry no release year, so their year endpoints are left out.
func registerFamily[D any](g *gin.RouterGroup, h *handlers.FamilyHandler[D], withYear bool) {
	g.GET("", h.List)
	g.GET("/search", h.Search)
	g.GET("/advanced-search", h.AdvancedSearch)
	g.GET("/:id", h.Get)
	g.GET("/count", h.Count)
	if withYear {
		g.GET("/count-by-year/:year", h.CountForYear)
		g.GET("/year/:year", h.ListByYear)
		g.GET("/year-count", h.YearCounts)
	}
	g.GET("/updates", h.Updates)
	g.POST("", h.Create)
	g.POST("/create-or-update", h.CreateOrUpdate)
	g.PUT("/:id", h.Update)
	g.PUT("/bulk", h.BulkUpdate)
	g.DELETE("/:id", h.Delete)
	g.DELETE("/bulk", h.BulkDelete)
}
