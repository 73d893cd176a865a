package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"storefront/internal/api"
	"storefront/internal/config"
	"storefront/internal/seed"
)

func main() {
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	// Money and stat fields serialize as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true

	gin.SetMode(cfg.GinMode)

	tables := api.NewTables()

	if cfg.SeedFile != "" {
		f, err := seed.Load(cfg.SeedFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.SeedFile).Msg("seed load failed")
		}
		if err := f.Apply(tables); err != nil {
			log.Fatal().Err(err).Str("file", cfg.SeedFile).Msg("seed apply failed")
		}
		log.Info().
			Int("persons", len(f.Persons)).
			Int("products", len(f.Products)).
			Int("units", len(f.Units)).
			Int("skills", len(f.Skills)).
			Msg("seed applied")
	}

	r := api.NewRouter(tables, log)

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
