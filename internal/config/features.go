package config

import "context"

// Features loads <tenant>/<project>/<model>/features.json layered onto the
// model config.
func (l *Loader) Features(ctx context.Context, app AppConfig) (FeaturesConfig, error) {
	model, err := l.Model(ctx, app)
	if err != nil {
		return FeaturesConfig{}, err
	}

	spec, err := readSpec(l.featuresSpecPath(app.Tenant, app.Project, app.Model))
	if err != nil {
		return FeaturesConfig{}, err
	}

	modelMap, err := asMap(model)
	if err != nil {
		return FeaturesConfig{}, err
	}

	merged, err := Layers(modelMap, spec)
	if err != nil {
		return FeaturesConfig{}, err
	}

	var cfg FeaturesConfig
	if err := decode(merged, &cfg); err != nil {
		return FeaturesConfig{}, err
	}
	return cfg, nil
}
