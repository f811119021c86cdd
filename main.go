package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/egoscicki/Untitled-Location-Game/internal/httpserver"
	"github.com/egoscicki/Untitled-Location-Game/internal/imagery"
	"github.com/egoscicki/Untitled-Location-Game/internal/places"
	"github.com/egoscicki/Untitled-Location-Game/internal/store"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := places.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load location catalog")
	}
	total, domestic := places.Stats()
	log.Info().Int("total", total).Int("domestic", domestic).Msg("catalog loaded")

	db, err := openDB(getEnv("DATABASE_PATH", "./data/app.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	provider := imagery.NewStreetView(os.Getenv("STREETVIEW_API_KEY"))
	sampler := places.NewSampler(provider)

	mem := store.NewMemoryStore()
	srv := httpserver.New(mem, db, sampler)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Msg("starting wherizit server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
