package config

import (
	"context"

	"github.com/riskml/mldeploy/internal/errors"
	"github.com/riskml/mldeploy/internal/naming"
)

// Glue loads <tenant>/<project>/<model>/dataset.json layered onto the
// project config and derives Glue table/crawler naming.
//
// model.json is read independently here, only for its declared model_name;
// dataset naming does not depend on the model fingerprint. The dataset base
// S3 path is deliberately not hyphenated, unlike the model and pipeline
// paths.
func (l *Loader) Glue(ctx context.Context, app AppConfig) (GlueConfig, error) {
	project, err := l.Project(ctx, app)
	if err != nil {
		return GlueConfig{}, err
	}

	spec, err := readSpec(l.datasetSpecPath(app.Tenant, app.Project, app.Model))
	if err != nil {
		return GlueConfig{}, err
	}

	modelSpec, err := readSpec(l.modelSpecPath(app.Tenant, app.Project, app.Model))
	if err != nil {
		return GlueConfig{}, err
	}

	modelName, ok := modelSpec["model_name"].(string)
	if !ok || modelName == "" {
		return GlueConfig{}, errors.ErrModelNameRequired
	}

	baseS3Key := naming.BaseS3Key(app.Tenant, app.Project, modelName, app.Environment)

	computed := map[string]any{
		"base_s3_path":        naming.BaseS3Path(project.S3Bucket, baseS3Key),
		"table_name_prefix":   baseS3Key,
		"crawler_name_prefix": naming.CrawlerNamePrefix(baseS3Key),
	}

	projectMap, err := asMap(project)
	if err != nil {
		return GlueConfig{}, err
	}

	merged, err := Layers(projectMap, spec, computed)
	if err != nil {
		return GlueConfig{}, err
	}

	// Crawler provisioning decides creation on its own; the flag always
	// resolves false regardless of what the dataset spec says.
	merged["force_create_flag"] = false

	var cfg GlueConfig
	if err := decode(merged, &cfg); err != nil {
		return GlueConfig{}, err
	}
	return cfg, nil
}
