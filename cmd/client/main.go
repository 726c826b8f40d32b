package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-store-keeper/internal/adapter"
	"github.com/MKhiriev/go-store-keeper/internal/client"
	"github.com/MKhiriev/go-store-keeper/internal/config"
	"github.com/MKhiriev/go-store-keeper/internal/logger"
	"github.com/rs/zerolog"
)

func main() {
	log := logger.NewConsoleLogger("store-client", os.Stderr, zerolog.WarnLevel)

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	api, err := adapter.NewHTTPStoreAPI(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating store api")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = client.NewApp(api, log).Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
