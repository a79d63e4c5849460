package config

import (
	"context"

	"github.com/riskml/mldeploy/internal/naming"
)

// Deployment loads <tenant>/deployment.json layered onto the tenant config.
// When the app config does not declare a feature-engineering jar, the
// default artifact path for the current commit is filled in; the deployment
// spec itself has the final say.
func (l *Loader) Deployment(ctx context.Context, app AppConfig) (DeploymentConfig, error) {
	tenant, err := l.Tenant(ctx, app)
	if err != nil {
		return DeploymentConfig{}, err
	}

	spec, err := readSpec(l.deploymentSpecPath(app.Tenant))
	if err != nil {
		return DeploymentConfig{}, err
	}

	jar := app.FeatureEngineeringJar
	if jar == "" {
		jar = naming.FeatureEngineeringJar(tenant.S3Bucket, app.CommitSha)
	}

	tenantMap, err := asMap(tenant)
	if err != nil {
		return DeploymentConfig{}, err
	}

	computed := map[string]any{
		"branch":                  app.Branch,
		"feature_engineering_jar": jar,
	}

	merged, err := Layers(tenantMap, computed, spec)
	if err != nil {
		return DeploymentConfig{}, err
	}

	var cfg DeploymentConfig
	if err := decode(merged, &cfg); err != nil {
		return DeploymentConfig{}, err
	}
	return cfg, nil
}
