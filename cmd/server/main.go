package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-crypt-keeper/internal/config"
	"github.com/MKhiriev/go-crypt-keeper/internal/handler"
	"github.com/MKhiriev/go-crypt-keeper/internal/logger"
	"github.com/MKhiriev/go-crypt-keeper/internal/secret"
	"github.com/MKhiriev/go-crypt-keeper/internal/server"
	"github.com/MKhiriev/go-crypt-keeper/internal/service"
	"github.com/MKhiriev/go-crypt-keeper/internal/store"
	"github.com/MKhiriev/go-crypt-keeper/internal/workers"
	"github.com/MKhiriev/go-crypt-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("crypt-keeper").Fatal().Err(err).Msg("error getting configs")
	}

	log, err := logger.NewLoggerWithLevel("crypt-keeper", cfg.App.LogLevel)
	if err != nil {
		logger.NewLogger("crypt-keeper").Fatal().Err(err).Msg("invalid log level")
	}
	ctx := log.WithContext(context.Background())

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	resolver, err := newResolver(cfg.Vault)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating vault client")
	}

	services, err := service.NewServices(store.NewStorages(db, log), resolver, cfg,
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if _, err = services.CipherPoolService.Bootstrap(ctx, cfg.Encryption); err != nil {
		log.Fatal().Err(err).Msg("error bootstrapping cipher pool")
	}
	if err = services.EncryptionService.Refresh(ctx); err != nil {
		log.Fatal().Err(err).Msg("error loading cipher pool")
	}

	background := workers.NewWorkers(
		workers.NewPoolRefreshWorker(services.EncryptionService, cfg.Encryption.RefreshInterval, log),
		workers.NewRotationWorker(services.EncryptionService, services.RotationService, services.CipherPoolService,
			cfg.Workers.RotationInterval, log),
	)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, background, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()

	// a campaign started over the API may still be running
	services.RotationService.Wait()
	log.Info().Msg("server stopped")
}

// newResolver enables the VAULT secret source only when an address is set.
func newResolver(cfg config.Vault) (secret.Resolver, error) {
	if cfg.Address == "" {
		return secret.NewResolver(), nil
	}

	client, err := secret.NewVaultClient(cfg)
	if err != nil {
		return nil, err
	}
	return secret.NewResolver(secret.WithVault(secret.NewKVStore(client, cfg.Mount))), nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
