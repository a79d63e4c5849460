package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/riskml/mldeploy/internal/errors"
	"github.com/riskml/mldeploy/internal/fingerprint"
	"github.com/riskml/mldeploy/internal/naming"
)

// Model loads <tenant>/<project>/<model>/model.json layered onto the project
// config and computes the model's content hashes.
//
// The code hash covers the regular files directly inside the model source
// directory; the binary hash covers the single declared binary artifact, or
// the empty-input hash when none is declared. The model fingerprint combines
// both hashes with the declared model_version, so a change to any of the
// three produces a new fingerprint.
func (l *Loader) Model(ctx context.Context, app AppConfig) (ModelConfig, error) {
	project, err := l.Project(ctx, app)
	if err != nil {
		return ModelConfig{}, err
	}

	spec, err := readSpec(l.modelSpecPath(app.Tenant, app.Project, app.Model))
	if err != nil {
		return ModelConfig{}, err
	}

	baseDir := naming.BasePath(app.Tenant, app.Project, app.Model)
	sourceSub := stringOr(spec, "model_source_dir", "model")
	binariesSub := stringOr(spec, "model_binaries_dir", "model")

	codeSHA, err := fingerprint.SourceDir(ctx, filepath.Join(l.root, baseDir, sourceSub))
	if err != nil {
		return ModelConfig{}, err
	}

	binarySHA := fingerprint.EmptySHA
	if binary, _ := spec["model_binary"].(string); binary != "" {
		binarySHA, err = fingerprint.File(filepath.Join(l.root, baseDir, binariesSub, binary))
		if err != nil {
			return ModelConfig{}, err
		}
	}

	version, ok := spec["model_version"]
	if !ok {
		return ModelConfig{}, errors.ErrModelVersionRequired
	}

	baseS3Key := naming.BaseS3Key(app.Tenant, app.Project, app.Model, app.Environment)

	computed := map[string]any{
		"model_sha":          fingerprint.Model(binarySHA, codeSHA, stringify(version)),
		"model_binary_sha":   binarySHA,
		"model_code_sha":     codeSHA,
		"model_base_dir":     baseDir,
		"model_source_dir":   baseDir + "/" + sourceSub,
		"model_binaries_dir": baseDir + "/" + binariesSub,
		"base_s3_path":       naming.Hyphenate(naming.BaseS3Path(project.S3Bucket, baseS3Key)),
	}

	projectMap, err := asMap(project)
	if err != nil {
		return ModelConfig{}, err
	}

	merged, err := Layers(projectMap, spec, computed)
	if err != nil {
		return ModelConfig{}, err
	}

	// Registration and upload locations are assigned by the packaging step
	// later in the pipeline; they always resolve null, whatever the spec
	// file claims.
	for _, key := range []string{
		"model_arn",
		"model_code_artifact",
		"model_code_location",
		"model_binaries_artifact",
		"model_binaries_location",
		"model_package_arn",
		"model_group_arn",
	} {
		delete(merged, key)
	}

	var cfg ModelConfig
	if err := decode(merged, &cfg); err != nil {
		return ModelConfig{}, err
	}
	return cfg, nil
}

// stringOr returns the spec's string value for key, or fallback when the key
// is absent or empty.
func stringOr(spec map[string]any, key, fallback string) string {
	if s, ok := spec[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
