package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/MoulikGL/basiccrudapp-admin/internal/buildinfo"
	"github.com/MoulikGL/basiccrudapp-admin/internal/client/cli"
	"github.com/MoulikGL/basiccrudapp-admin/internal/client/config"
	"github.com/MoulikGL/basiccrudapp-admin/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
