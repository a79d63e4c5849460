package config

import (
	"context"

	"github.com/riskml/mldeploy/internal/errors"
	"github.com/riskml/mldeploy/internal/naming"
)

// Pipeline loads <tenant>/<project>/<model>/pipeline.json layered onto the
// project config and derives the pipeline's resource names.
//
// The spec's pipeline_schedule mapping is keyed by pipeline name; the entry
// for the current pipeline becomes the resolved schedule. A spec without a
// pipeline_schedule mapping is an error, a mapping without an entry for this
// pipeline resolves to a null schedule.
func (l *Loader) Pipeline(ctx context.Context, app AppConfig) (PipelineConfig, error) {
	project, err := l.Project(ctx, app)
	if err != nil {
		return PipelineConfig{}, err
	}

	spec, err := readSpec(l.pipelineSpecPath(app.Tenant, app.Project, app.Model))
	if err != nil {
		return PipelineConfig{}, err
	}

	schedules, ok := spec["pipeline_schedule"].(map[string]any)
	if !ok {
		return PipelineConfig{}, errors.ErrPipelineScheduleRequired
	}

	basePath := naming.BasePath(app.Tenant, app.Project, app.Model)
	pipelineName := naming.PipelineName(app.Tenant, app.Project, app.Model, app.Pipeline, app.Environment)
	baseS3Key := naming.BaseS3Key(app.Tenant, app.Project, app.Model, app.Environment)

	computed := map[string]any{
		"base_path":                basePath,
		"base_s3_path":             naming.Hyphenate(naming.BaseS3Path(project.S3Bucket, baseS3Key)),
		"pipeline_name":            pipelineName,
		"pipeline_name_prefix":     pipelineName,
		"rule_name":                pipelineName,
		"pipeline_module_location": naming.PipelineModuleLocation(basePath, app.Pipeline),
		"pipeline_module_name":     naming.PipelineModuleName(app.Tenant, app.Project, app.Model, app.Pipeline),
	}

	projectMap, err := asMap(project)
	if err != nil {
		return PipelineConfig{}, err
	}

	merged, err := Layers(projectMap, spec, computed)
	if err != nil {
		return PipelineConfig{}, err
	}

	// The schedule mapping itself never survives into the record; only the
	// entry for this pipeline does.
	if schedule, ok := schedules[app.Pipeline]; ok {
		merged["pipeline_schedule"] = schedule
	} else {
		delete(merged, "pipeline_schedule")
	}

	// The app config has the final say on the jar, even when unset, and the
	// registered-model reference is assigned at registration time, never
	// from the spec file.
	merged["feature_engineering_jar"] = app.FeatureEngineeringJar
	delete(merged, "registered_model")

	var cfg PipelineConfig
	if err := decode(merged, &cfg); err != nil {
		return PipelineConfig{}, err
	}
	return cfg, nil
}
