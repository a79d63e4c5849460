package commands

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/riskml/mldeploy/internal/config"
	"github.com/riskml/mldeploy/internal/di"
)

// identityFlags are shared by every command that builds an AppConfig from
// the command line.
func identityFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "tenant",
			Aliases:  []string{"t"},
			Usage:    "Tenant name (top-level spec directory)",
			Required: true,
			EnvVars:  []string{"TENANT"},
		},
		&cli.StringFlag{
			Name:    "project",
			Aliases: []string{"p"},
			Usage:   "Project name within the tenant",
			EnvVars: []string{"PROJECT"},
		},
		&cli.StringFlag{
			Name:    "model",
			Aliases: []string{"m"},
			Usage:   "Model name within the project",
			EnvVars: []string{"MODEL"},
		},
		&cli.StringFlag{
			Name:    "pipeline",
			Aliases: []string{"l"},
			Usage:   "Pipeline name within the model",
			EnvVars: []string{"PIPELINE"},
		},
		&cli.StringFlag{
			Name:     "environment",
			Aliases:  []string{"e"},
			Usage:    "Environment name; slash-delimited paths keep their last segment (e.g. refs/heads/prod -> prod)",
			Required: true,
			EnvVars:  []string{"ENVIRONMENT"},
		},
		&cli.StringFlag{
			Name:    "branch",
			Usage:   "Git branch being built",
			EnvVars: []string{"BRANCH"},
		},
		&cli.StringFlag{
			Name:    "commit-sha",
			Usage:   "Git commit SHA of the build",
			EnvVars: []string{"COMMIT_SHA"},
		},
		&cli.StringFlag{
			Name:    "build-number",
			Usage:   "CI build number",
			EnvVars: []string{"BUILD_NUMBER"},
		},
		&cli.StringFlag{
			Name:    "feature-engineering-jar",
			Usage:   "Override the feature-engineering assembly location",
			EnvVars: []string{"FEATURE_ENGINEERING_JAR"},
		},
		&cli.StringFlag{
			Name:    "dir",
			Aliases: []string{"d"},
			Usage:   "Root directory of the spec-file tree",
			Value:   ".",
			EnvVars: []string{"MLDEPLOY_DIR"},
		},
		&cli.BoolFlag{
			Name:    "debug",
			Usage:   "Mark the resolved config as a debug build",
			EnvVars: []string{"DEBUG"},
		},
	}
}

func identityParams(c *cli.Context) config.Params {
	return config.Params{
		Tenant:                c.String("tenant"),
		Project:               c.String("project"),
		Model:                 c.String("model"),
		Pipeline:              c.String("pipeline"),
		Environment:           c.String("environment"),
		Branch:                c.String("branch"),
		CommitSha:             c.String("commit-sha"),
		BuildNumber:           c.String("build-number"),
		FeatureEngineeringJar: c.String("feature-engineering-jar"),
		Debug:                 c.Bool("debug"),
	}
}

// ResolveCommand returns the resolve command for printing layered config records
func ResolveCommand(logger *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:    "resolve",
		Aliases: []string{"r"},
		Usage:   "Resolve a layered config record and print it",
		Description: `Resolve one config record from the spec-file tree and print it.

Config kinds form a chain; each kind contains every field of its parent:
  app -> tenant -> {deployment, image, project -> {model -> features, pipeline, dataset}}

Examples:
  # Resolve the tenant config for acme in prod
  mldeploy resolve --kind tenant --tenant acme --environment prod

  # Resolve a model config, including its content hashes
  mldeploy resolve --kind model --tenant acme --project risk --model v1 \
    --environment prod --commit-sha abc123 --build-number 42

  # Print a pipeline config as YAML
  mldeploy resolve --kind pipeline --tenant acme --project risk --model v1 \
    --pipeline train --environment prod --output yaml`,
		Flags: append(identityFlags(),
			&cli.StringFlag{
				Name:    "kind",
				Aliases: []string{"k"},
				Usage:   "Config kind: app, tenant, deployment, project, model, pipeline, dataset, features, or image",
				Value:   "app",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output format: json or yaml",
				Value:   "json",
			},
		),
		Action: func(c *cli.Context) error {
			ctx := logger.WithContext(c.Context)

			app, err := config.NewAppConfig(identityParams(c))
			if err != nil {
				return err
			}

			container, err := di.New(di.WithWorkingDir(c.String("dir")))
			if err != nil {
				return err
			}
			loader := di.MustGet[*config.Loader](container)

			var record any
			switch kind := c.String("kind"); kind {
			case "app":
				record = app
			case "tenant":
				record, err = loader.Tenant(ctx, app)
			case "deployment":
				record, err = loader.Deployment(ctx, app)
			case "project":
				record, err = loader.Project(ctx, app)
			case "model":
				record, err = loader.Model(ctx, app)
			case "pipeline":
				record, err = loader.Pipeline(ctx, app)
			case "dataset":
				record, err = loader.Glue(ctx, app)
			case "features":
				record, err = loader.Features(ctx, app)
			case "image":
				record, err = loader.Image(ctx, app)
			default:
				return fmt.Errorf("unknown config kind: %s", kind)
			}
			if err != nil {
				return err
			}

			return printRecord(c, record)
		},
	}
}

func printRecord(c *cli.Context, record any) error {
	switch output := c.String("output"); output {
	case "yaml":
		data, err := yaml.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		fmt.Fprint(c.App.Writer, string(data))
	case "json":
		data, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		fmt.Fprintln(c.App.Writer, string(data))
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}
	return nil
}
