package config

import "context"

// Image loads the shared mllib/docker.json image spec layered onto the
// tenant config. One analytics image definition serves every tenant.
func (l *Loader) Image(ctx context.Context, app AppConfig) (ImageConfig, error) {
	tenant, err := l.Tenant(ctx, app)
	if err != nil {
		return ImageConfig{}, err
	}

	spec, err := readSpec(l.imageSpecPath())
	if err != nil {
		return ImageConfig{}, err
	}

	tenantMap, err := asMap(tenant)
	if err != nil {
		return ImageConfig{}, err
	}

	merged, err := Layers(tenantMap, spec)
	if err != nil {
		return ImageConfig{}, err
	}

	var cfg ImageConfig
	if err := decode(merged, &cfg); err != nil {
		return ImageConfig{}, err
	}
	return cfg, nil
}
