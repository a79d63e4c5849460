package config

import (
	"context"

	"github.com/rs/zerolog"
)

// Tenant loads <tenant>/tenant.json and resolves it into a TenantConfig.
//
// Merge order: the parsed tenant spec, then computed identity fields and
// tags, then the spec's environments.<name> entry for the current
// environment. Environment-specific overrides always win over tenant-wide
// defaults, including over computed tags.
func (l *Loader) Tenant(ctx context.Context, app AppConfig) (TenantConfig, error) {
	path := l.tenantSpecPath(app.Tenant)
	spec, err := readSpec(path)
	if err != nil {
		return TenantConfig{}, err
	}
	zerolog.Ctx(ctx).Debug().Str("path", path).Str("tenant", app.Tenant).Msg("loaded tenant spec")

	environmentSpec := map[string]any{}
	if environments, ok := spec["environments"].(map[string]any); ok {
		if override, ok := environments[app.Environment].(map[string]any); ok {
			environmentSpec = override
		}
	}

	appMap, err := asMap(app)
	if err != nil {
		return TenantConfig{}, err
	}

	computed := map[string]any{
		"app_config":      appMap,
		"fqn":             app.FQN,
		"tenant_name":     app.Tenant,
		"environment":     app.Environment,
		"build_number":    app.BuildNumber,
		"commit_sha":      app.CommitSha,
		"build_artifacts": "./artifacts",
		"tags": map[string]any{
			"Environment": app.Environment,
			"BuildNumber": app.BuildNumber,
			"CommitSha":   app.CommitSha,
		},
	}

	merged, err := Layers(spec, computed, environmentSpec)
	if err != nil {
		return TenantConfig{}, err
	}

	var cfg TenantConfig
	if err := decode(merged, &cfg); err != nil {
		return TenantConfig{}, err
	}
	return cfg, nil
}
