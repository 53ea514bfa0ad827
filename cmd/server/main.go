package main

import (
	"net/http"

	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"gourmetquest/config"
	"gourmetquest/dataset"
	"gourmetquest/handlers"
	"gourmetquest/observability"
)

// main loads the canonical table once and serves the dashboard API over it.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	observability.InitLogger("gourmetquest", cfg.Env, cfg.LogLevel)

	table, _, err := dataset.Open(cfg.DatasetPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DatasetPath).Msg("Dataset unavailable")
	}

	mux := handlers.NewMux(table, handlers.Settings{
		TopCuisinesDefault:   cfg.TopCuisinesDefault,
		MinRestaurantEntries: cfg.MinRestaurantEntries,
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
	})
	handler := c.Handler(handlers.LoggingMiddleware(mux))

	log.Info().Str("port", cfg.Port).Int("rows", table.Len()).Msg("Server starting")
	if err := http.ListenAndServe(cfg.Addr(), handler); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
