// Package naming produces derived resource names and S3 paths from identity
// fields. AWS forbids underscores in several resource names (pipeline names,
// rule names, S3 path segments derived from them), so templates that target
// those contexts run through Hyphenate. Module and filesystem base paths are
// never hyphenated.
package naming

import (
	"fmt"
	"strings"
)

// Hyphenate replaces every underscore with a hyphen, making an identity
// value safe for AWS resource-name contexts.
func Hyphenate(s string) string {
	return strings.ReplaceAll(s, "_", "-")
}

// BaseS3Key returns the {tenant}-{project}-{model}-{environment} key prefix
// shared by model and pipeline artifacts. The result is not hyphenated;
// callers targeting S3 must apply Hyphenate themselves.
func BaseS3Key(tenant, project, model, environment string) string {
	return fmt.Sprintf("%s-%s-%s-%s", tenant, project, model, environment)
}

// BaseS3Path returns s3://{bucket}/{key}.
func BaseS3Path(bucket, key string) string {
	return fmt.Sprintf("s3://%s/%s", bucket, key)
}

// BasePath returns the {tenant}/{project}/{model} directory prefix that
// anchors every model-scoped spec file.
func BasePath(tenant, project, model string) string {
	return fmt.Sprintf("%s/%s/%s", tenant, project, model)
}

// PipelineName returns {tenant}-{project}-{model}-{pipeline}-{environment}.
// The result feeds pipeline and rule names, so it is hyphenated.
func PipelineName(tenant, project, model, pipeline, environment string) string {
	return Hyphenate(fmt.Sprintf("%s-%s-%s-%s-%s", tenant, project, model, pipeline, environment))
}

// PipelineModuleName returns the dotted module path
// {tenant}.{project}.{model}.{pipeline} used to import the pipeline
// definition at deploy time. Not hyphenated.
func PipelineModuleName(tenant, project, model, pipeline string) string {
	return fmt.Sprintf("%s.%s.%s.%s", tenant, project, model, pipeline)
}

// PipelineModuleLocation returns the on-disk location of the pipeline
// definition relative to the working directory.
func PipelineModuleLocation(basePath, pipeline string) string {
	return fmt.Sprintf("./%s/pipelines/%s.py", basePath, pipeline)
}

// CrawlerNamePrefix returns the Glue crawler prefix for a dataset key.
func CrawlerNamePrefix(baseS3Key string) string {
	return "pi_risk_ml_" + baseS3Key
}

// FeatureEngineeringJar returns the default artifact location for the
// feature-engineering assembly built at the given commit.
func FeatureEngineeringJar(bucket, commitSha string) string {
	return fmt.Sprintf("s3://%s/artifacts/feature-engineering-assembly-%s.jar", bucket, commitSha)
}
