package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/mediavault/catalog-api/internal/config"
	"github.com/mediavault/catalog-api/internal/domain/catalog"
	"github.com/mediavault/catalog-api/internal/domain/media"
	"github.com/mediavault/catalog-api/internal/infrastructure/database"
	"github.com/mediavault/catalog-api/internal/infrastructure/logger"
	"github.com/mediavault/catalog-api/internal/infrastructure/observability"
	"github.com/mediavault/catalog-api/internal/infrastructure/repository"
	"github.com/mediavault/catalog-api/internal/interfaces/httpserver"
	"github.com/mediavault/catalog-api/internal/interfaces/httpserver/handlers"
)

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	db, err := database.Connect(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if cfg.RunMigrations {
		if err := database.Migrate(db, log); err != nil {
			log.Fatal().Err(err).Msg("migrate database")
		}
	}

	movieSvc := catalog.NewService[media.MovieDTO, *media.MovieDTO](
		"movies", repository.NewMovieStore(db, log), cfg, log, media.NormalizeMovie)
	seriesSvc := catalog.NewService[media.SeriesDTO, *media.SeriesDTO](
		"series", repository.NewSeriesStore(db, log), cfg, log, media.NormalizeSeries)
	musicSvc := catalog.NewService[media.MusicDTO, *media.MusicDTO](
		"music", repository.NewMusicStore(db, log), cfg, log, media.NormalizeMusic)
	videoSvc := catalog.NewService[media.VideoDTO, *media.VideoDTO](
		"videos", repository.NewVideoStore(db, log), cfg, log, media.NormalizeVideo)
	gameSvc := catalog.NewService[media.VideoGameDTO, *media.VideoGameDTO](
		"video_games", repository.NewVideoGameStore(db, log), cfg, log, media.NormalizeVideoGame)

	trackSvc := catalog.NewChildService(
		catalog.NewService[media.MusicTrackDTO, *media.MusicTrackDTO](
			"music_tracks", repository.NewMusicTrackStore(db, log), cfg, log, media.NormalizeMusicTrack),
		"music", musicSvc,
		func(d *media.MusicTrackDTO) uuid.UUID { return d.ParentID() },
	)

	episodeSvc := catalog.NewChildService(
		catalog.NewService[media.SeriesEpisodeDTO, *media.SeriesEpisodeDTO](
			"series_episodes", repository.NewSeriesEpisodeStore(db, log), cfg, log, media.NormalizeSeriesEpisode),
		"series", seriesSvc,
		func(d *media.SeriesEpisodeDTO) uuid.UUID { return d.ParentID() },
	)

	server := httpserver.New(cfg, log, db, handlers.Services{
		Movies:   movieSvc,
		Series:   seriesSvc,
		Music:    musicSvc,
		Tracks:   trackSvc,
		Videos:   videoSvc,
		Games:    gameSvc,
		Episodes: episodeSvc,
	})

	if err := server.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}

	log.Info().Msg("server exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
