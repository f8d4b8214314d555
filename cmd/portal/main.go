package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/multipool/internal/app"
	"github.com/MKhiriev/multipool/internal/cliserver"
	"github.com/MKhiriev/multipool/internal/config"
	"github.com/MKhiriev/multipool/internal/exchange"
	"github.com/MKhiriev/multipool/internal/logger"
	"github.com/MKhiriev/multipool/internal/stats"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.New("portal")
	cfg, err := config.GetPortalConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	application, err := app.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving pool configuration")
	}

	run(cfg, application, log)
}

// run launches the configured portal surfaces and blocks until a stop
// signal arrives, then shuts them down gracefully.
func run(cfg *config.PortalConfig, application *app.App, log *logger.Logger) {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	var statsServer *stats.Server
	if cfg.Website.Address != "" {
		var rates stats.RateProvider
		if cfg.Exchange.BaseURL != "" {
			rates = exchange.NewClient(exchange.ClientConfig{
				BaseURL:  cfg.Exchange.BaseURL,
				Currency: cfg.Exchange.Currency,
				Timeout:  cfg.Exchange.RequestTimeout,
			})
		}

		build := stats.BuildInfo{Version: buildVersion, Date: buildDate, Commit: buildCommit}
		handler := stats.NewHandler(application, rates, build, log)
		statsServer = stats.NewServer(handler.Init(), cfg.Website.Address, log)

		go func() {
			if err := statsServer.Run(); err != nil {
				log.Error().Err(err).Msg("error running stats server")
			}
		}()
	}

	var adminServer *cliserver.Server
	if cfg.CLI.Address != "" {
		var err error
		adminServer, err = cliserver.NewServer(cfg.CLI.Address, application, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating admin listener")
		}

		go func() {
			if err := adminServer.Run(); err != nil {
				log.Error().Err(err).Msg("error running admin listener")
			}
		}()
	}

	<-ctx.Done()

	if statsServer != nil {
		statsServer.Shutdown(context.Background())
	}
	if adminServer != nil {
		adminServer.Shutdown()
	}

	log.Info().Msg("portal shut down gracefully")
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
