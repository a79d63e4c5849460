package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Spec file locations follow a fixed directory convention rooted at the
// loader's working directory. Path construction is centralized here, one
// function per file kind, so the convention cannot drift between loaders.

func (l *Loader) tenantSpecPath(tenant string) string {
	return filepath.Join(l.root, tenant, "tenant.json")
}

func (l *Loader) deploymentSpecPath(tenant string) string {
	return filepath.Join(l.root, tenant, "deployment.json")
}

func (l *Loader) projectSpecPath(tenant, project string) string {
	return filepath.Join(l.root, tenant, project, "project.json")
}

func (l *Loader) modelSpecPath(tenant, project, model string) string {
	return filepath.Join(l.root, tenant, project, model, "model.json")
}

func (l *Loader) pipelineSpecPath(tenant, project, model string) string {
	return filepath.Join(l.root, tenant, project, model, "pipeline.json")
}

func (l *Loader) datasetSpecPath(tenant, project, model string) string {
	return filepath.Join(l.root, tenant, project, model, "dataset.json")
}

func (l *Loader) featuresSpecPath(tenant, project, model string) string {
	return filepath.Join(l.root, tenant, project, model, "features.json")
}

// imageSpecPath is the single shared image spec; one analytics docker image
// serves every tenant.
func (l *Loader) imageSpecPath() string {
	return filepath.Join(l.root, "mllib", "docker.json")
}

// readSpec reads and parses one JSON spec file. A missing or malformed file
// is the caller's problem; no loader retries or substitutes a default
// document.
func readSpec(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file %s: %w", path, err)
	}

	var spec map[string]any
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse spec file %s: %w", path, err)
	}
	return spec, nil
}
