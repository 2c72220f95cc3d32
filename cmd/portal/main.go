package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/campushq/collegeportal/internal/buildinfo"
	"github.com/campushq/collegeportal/internal/logging"
	"github.com/campushq/collegeportal/internal/portal/cli"
	"github.com/campushq/collegeportal/internal/portal/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewText(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
