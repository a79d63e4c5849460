package main

import (
	"context"
	"os"

	"github.com/segmentio/ksuid"
	"github.com/urfave/cli/v2"

	"github.com/riskml/mldeploy/cmd/mldeploy/commands"
	"github.com/riskml/mldeploy/internal/di"
)

func main() {
	logger := di.ProvideLogger().With().Str("run_id", ksuid.New().String()).Logger()
	ctx := logger.WithContext(context.Background())

	app := &cli.App{
		Name:  "mldeploy",
		Usage: "ML deployment configuration toolkit",
		Description: `Resolves layered configuration records for the ML deployment pipeline.

Given an application identity (tenant, project, model, pipeline, environment),
this tool loads the chain of JSON spec files under the working directory,
merges them with computed defaults, and prints the resulting record for
downstream provisioning, packaging, and scheduling tooling.`,
		Commands: []*cli.Command{
			commands.ResolveCommand(&logger),
			commands.FingerprintCommand(&logger),
			commands.CheckCommand(&logger),
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		logger.Error().Err(err).Msg("Application error")
		os.Exit(1)
	}
}
