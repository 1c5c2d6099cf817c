package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-crypt-keeper/internal/commands"
	"github.com/MKhiriev/go-crypt-keeper/internal/logger"
	"github.com/MKhiriev/go-crypt-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	level := os.Getenv("CRYPTCTL_LOG_LEVEL")
	if level == "" {
		level = "error"
	}
	log, err := logger.NewLoggerWithLevel("cryptctl", level)
	if err != nil {
		log = logger.NewLogger("cryptctl")
	}

	version := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String()

	if err = commands.NewRootCommand(version, log).ExecuteContext(log.WithContext(ctx)); err != nil {
		stop()
		os.Exit(1)
	}
}
