package main

import (
	"context"
	"log"
	"os"

	"github.com/autohub/autohub-cli/internal/buildinfo"
	"github.com/autohub/autohub-cli/internal/client/cli"
	"github.com/autohub/autohub-cli/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
