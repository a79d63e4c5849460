package config

import (
	"strings"

	"github.com/riskml/mldeploy/internal/errors"
)

// Params carries the raw identity values handed in by the build system.
// Environment may be a slash-delimited hierarchy string (e.g. a branch path);
// only its final segment becomes the environment name.
type Params struct {
	Tenant                string
	Project               string
	Model                 string
	Pipeline              string
	Environment           string
	Branch                string
	CommitSha             string
	BuildNumber           string
	FeatureEngineeringJar string
	Debug                 bool
}

// NewAppConfig normalizes raw identity parameters into the canonical
// AppConfig record. FQN joins the non-empty values of tenant, project,
// model, pipeline, environment with hyphens, preserving that fixed order.
func NewAppConfig(p Params) (AppConfig, error) {
	if p.Environment == "" {
		return AppConfig{}, errors.ErrEnvironmentRequired
	}

	segments := strings.Split(p.Environment, "/")
	environment := segments[len(segments)-1]

	var parts []string
	for _, part := range []string{p.Tenant, p.Project, p.Model, p.Pipeline, environment} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return AppConfig{
		Branch:                p.Branch,
		BuildNumber:           p.BuildNumber,
		CommitSha:             p.CommitSha,
		Environment:           environment,
		FeatureEngineeringJar: p.FeatureEngineeringJar,
		FQN:                   strings.Join(parts, "-"),
		Model:                 p.Model,
		Pipeline:              p.Pipeline,
		Project:               p.Project,
		Tenant:                p.Tenant,
		Debug:                 p.Debug,
	}, nil
}
