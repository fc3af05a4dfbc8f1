package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"rpbot/internal/adapters/discord"
	"rpbot/internal/application"
	"rpbot/internal/config"
	"rpbot/internal/infrastructure/database"
	"rpbot/internal/infrastructure/database/sqlc_generated"
	"rpbot/internal/infrastructure/i18n"
	"rpbot/internal/infrastructure/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration invalide: %v", err)
	}

	logger, err := logging.Setup(cfg.LogLevel)
	if err != nil {
		logger.Warn("⚠️ LOG_LEVEL inconnu, niveau info utilisé", logging.Err(err))
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("❌ Arrêt sur erreur", logging.Err(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	limits, err := config.LoadLimits(cfg.LimitsFile)
	if err != nil {
		return err
	}

	if err := database.RunMigrations(cfg.DatabaseURL, logger); err != nil {
		return err
	}
	pool, err := database.NewPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	catalogs, err := i18n.LoadEmbedded()
	if err != nil {
		return err
	}
	if report := i18n.Check(catalogs); !report.OK() {
		for _, issue := range report.Issues {
			logger.Warn("⚠️ Traduction incohérente", "issue", issue.String())
		}
	}
	translator, err := i18n.NewTranslator(catalogs, logger)
	if err != nil {
		return err
	}
	if cfg.LocalesOverrideDir != "" {
		if err := translator.LoadOverrides(os.DirFS(cfg.LocalesOverrideDir)); err != nil {
			return err
		}
	}

	q := sqlc_generated.New(pool)
	universeRepo := database.NewUniverseRepository(pool)
	serverRepo := database.NewServerRepository(q)
	placeRepo := database.NewPlaceRepository(q)
	roadRepo := database.NewRoadRepository(q)

	session, err := discord.NewSession(cfg)
	if err != nil {
		return err
	}
	guild := discord.NewGuildService(session, logger)

	bot := discord.NewBot(cfg, session, discord.UseCases{
		Universe: application.NewUniverseService(universeRepo, serverRepo, limits, config.DefaultTier, logger),
		Setup:    application.NewSetupService(universeRepo, serverRepo, guild, translator, logger),
		Place:    application.NewPlaceService(universeRepo, serverRepo, placeRepo, guild, limits, logger),
		Road:     application.NewRoadService(universeRepo, serverRepo, placeRepo, roadRepo, guild, limits, logger),
	}, translator, logger)

	return bot.Start(ctx)
}
