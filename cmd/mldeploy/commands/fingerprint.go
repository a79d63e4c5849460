package commands

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/riskml/mldeploy/internal/config"
	"github.com/riskml/mldeploy/internal/di"
)

// FingerprintCommand returns the fingerprint command for printing model hashes
func FingerprintCommand(logger *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:    "fingerprint",
		Aliases: []string{"f"},
		Usage:   "Print the content hashes and version fingerprint of a model",
		Description: `Compute the model's code hash, binary hash, and version fingerprint.

The fingerprint is the SHA-1 of (binary hash, code hash, declared
model_version) and changes whenever any of the three changes. Build tooling
compares it against the last deployed fingerprint to decide whether a new
artifact must be packaged.

Examples:
  mldeploy fingerprint --tenant acme --project risk --model v1 --environment prod`,
		Flags: identityFlags(),
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
			model, err := loader.Model(ctx, app)
			if err != nil {
				return err
			}

			out := struct {
				ModelSHA       string `json:"model_sha"`
				ModelCodeSHA   string `json:"model_code_sha"`
				ModelBinarySHA string `json:"model_binary_sha"`
				ModelVersion   string `json:"model_version"`
			}{
				ModelSHA:       model.ModelSHA,
				ModelCodeSHA:   model.ModelCodeSHA,
				ModelBinarySHA: model.ModelBinarySHA,
				ModelVersion:   model.ModelVersion,
			}

			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal fingerprint: %w", err)
			}
			fmt.Fprintln(c.App.Writer, string(data))
			return nil
		},
	}
}
