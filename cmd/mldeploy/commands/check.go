package commands

import (
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/riskml/mldeploy/internal/config"
	"github.com/riskml/mldeploy/internal/di"
	"github.com/riskml/mldeploy/internal/services"
)

// CheckCommand returns the check command for verifying a resolved config
// against the live AWS caller identity
func CheckCommand(logger *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Verify the resolved tenant config against the AWS caller identity",
		Description: `Resolve the tenant config and confirm that its aws_account_id matches
the account of the current AWS credentials. Catches the classic mistake of
deploying a tenant's stack with another tenant's credentials before any
resource is touched.

Examples:
  mldeploy check --tenant acme --environment prod`,
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
			tenant, err := loader.Tenant(ctx, app)
			if err != nil {
				return err
			}

			identity := di.MustGet[*services.IdentityService](container)
			if err := identity.VerifyAccount(ctx, tenant.AWSAccountID); err != nil {
				return err
			}

			logger.Info().
				Str("tenant", tenant.TenantName).
				Str("environment", tenant.Environment).
				Str("aws_account_id", tenant.AWSAccountID).
				Msg("Caller identity matches tenant config")
			return nil
		},
	}
}
