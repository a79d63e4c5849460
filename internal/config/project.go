package config

import "context"

// Project loads <tenant>/<project>/project.json layered onto the tenant
// config.
func (l *Loader) Project(ctx context.Context, app AppConfig) (ProjectConfig, error) {
	tenant, err := l.Tenant(ctx, app)
	if err != nil {
		return ProjectConfig{}, err
	}

	spec, err := readSpec(l.projectSpecPath(app.Tenant, app.Project))
	if err != nil {
		return ProjectConfig{}, err
	}

	tenantMap, err := asMap(tenant)
	if err != nil {
		return ProjectConfig{}, err
	}

	merged, err := Layers(tenantMap, spec)
	if err != nil {
		return ProjectConfig{}, err
	}

	var cfg ProjectConfig
	if err := decode(merged, &cfg); err != nil {
		return ProjectConfig{}, err
	}
	return cfg, nil
}
