// Package config builds the layered configuration records consumed by the
// deployment tooling. Identity values (tenant, project, model, pipeline,
// environment) select a chain of JSON spec files under a fixed directory
// convention; each loader deep-merges its parent's resolved fields, the
// parsed spec file, and freshly computed derived fields into a new immutable
// record.
//
// Every record is a strict superset of its parent: a child embeds the
// parent's resolved fields by value at construction time, so no state is
// ever shared between records and nothing is mutated after construction.
package config

// AppConfig is the canonical application identity. Environment is the last
// path segment of the raw input; FQN is the hyphen-join of the non-empty
// identity values in tenant, project, model, pipeline, environment order.
type AppConfig struct {
	Branch                string `json:"branch" yaml:"branch"`
	BuildNumber           string `json:"build_number" yaml:"build_number"`
	CommitSha             string `json:"commit_sha" yaml:"commit_sha"`
	Environment           string `json:"environment" yaml:"environment"`
	FeatureEngineeringJar string `json:"feature_engineering_jar" yaml:"feature_engineering_jar"`
	FQN                   string `json:"fqn" yaml:"fqn"`
	Model                 string `json:"model" yaml:"model"`
	Pipeline              string `json:"pipeline" yaml:"pipeline"`
	Project               string `json:"project" yaml:"project"`
	Tenant                string `json:"tenant" yaml:"tenant"`
	Debug                 bool   `json:"debug" yaml:"debug"`
}

// TenantConfig is AppConfig plus the tenant-wide AWS account, role, and
// network defaults from <tenant>/tenant.json. Optional fields stay null when
// the tenant spec does not set them. Tags always carries Environment,
// BuildNumber, and CommitSha.
type TenantConfig struct {
	AppConfig              AppConfig                 `json:"app_config" yaml:"app_config"`
	AWSAccountID           string                    `json:"aws_account_id" yaml:"aws_account_id"`
	AWSRegion              string                    `json:"aws_region" yaml:"aws_region"`
	BuildArtifacts         string                    `json:"build_artifacts" yaml:"build_artifacts"`
	BuildNumber            string                    `json:"build_number" yaml:"build_number"`
	CommitSha              string                    `json:"commit_sha" yaml:"commit_sha"`
	CrawlerRoleARN         string                    `json:"crawler_role_arn" yaml:"crawler_role_arn"`
	DomainID               string                    `json:"domain_id" yaml:"domain_id"`
	EMRClusterID           *string                   `json:"emr_cluster_id" yaml:"emr_cluster_id"`
	Environment            string                    `json:"environment" yaml:"environment"`
	Environments           map[string]map[string]any `json:"environments" yaml:"environments"`
	ExecutionRoleARN       string                    `json:"execution_role_arn" yaml:"execution_role_arn"`
	FQN                    string                    `json:"fqn" yaml:"fqn"`
	LambdaRoleARN          string                    `json:"lambda_role_arn" yaml:"lambda_role_arn"`
	LambdaSecurityGroupIDs []string                  `json:"lambda_security_group_ids" yaml:"lambda_security_group_ids"`
	LambdaSubnetIDs        []string                  `json:"lambda_subnet_ids" yaml:"lambda_subnet_ids"`
	MLLibImageURI          string                    `json:"mllib_image_uri" yaml:"mllib_image_uri"`
	S3Bucket               string                    `json:"s3_bucket" yaml:"s3_bucket"`
	SchedulerRoleARN       string                    `json:"scheduler_role_arn" yaml:"scheduler_role_arn"`
	StudioLifecycleScripts []string                  `json:"studio_lifecycle_scripts" yaml:"studio_lifecycle_scripts"`
	StudioUsers            []string                  `json:"studio_users" yaml:"studio_users"`
	Tags                   map[string]string         `json:"tags" yaml:"tags"`
	TenantName             string                    `json:"tenant_name" yaml:"tenant_name"`
}

// DeploymentConfig is TenantConfig plus the branch/artifact overrides from
// <tenant>/deployment.json.
type DeploymentConfig struct {
	TenantConfig          `yaml:",inline"`
	Branch                string   `json:"branch" yaml:"branch"`
	Branches              []string `json:"branches" yaml:"branches"`
	FeatureEngineeringJar string   `json:"feature_engineering_jar" yaml:"feature_engineering_jar"`
}

// ProjectConfig is TenantConfig plus <tenant>/<project>/project.json.
type ProjectConfig struct {
	TenantConfig `yaml:",inline"`
	ProjectName  string `json:"project_name" yaml:"project_name"`
}

// ModelConfig is ProjectConfig plus <tenant>/<project>/<model>/model.json and
// the computed artifact hashes. ModelSHA is the canonical fingerprint of
// (binary hash, code hash, declared version) used to detect when a new
// deployable artifact must be built.
type ModelConfig struct {
	ProjectConfig          `yaml:",inline"`
	BaseS3Path             string         `json:"base_s3_path" yaml:"base_s3_path"`
	ModelARN               *string        `json:"model_arn" yaml:"model_arn"`
	ModelBaseDir           string         `json:"model_base_dir" yaml:"model_base_dir"`
	ModelBinariesArtifact  *string        `json:"model_binaries_artifact" yaml:"model_binaries_artifact"`
	ModelBinariesDir       string         `json:"model_binaries_dir" yaml:"model_binaries_dir"`
	ModelBinariesLocation  *string        `json:"model_binaries_location" yaml:"model_binaries_location"`
	ModelBinary            *string        `json:"model_binary" yaml:"model_binary"`
	ModelBinarySHA         string         `json:"model_binary_sha" yaml:"model_binary_sha"`
	ModelCodeArtifact      *string        `json:"model_code_artifact" yaml:"model_code_artifact"`
	ModelCodeLocation      *string        `json:"model_code_location" yaml:"model_code_location"`
	ModelCodeSHA           string         `json:"model_code_sha" yaml:"model_code_sha"`
	ModelDescription       string         `json:"model_description" yaml:"model_description"`
	ModelEntrypoint        *string        `json:"model_entrypoint" yaml:"model_entrypoint"`
	ModelGroupARN          *string        `json:"model_group_arn" yaml:"model_group_arn"`
	ModelImageFile         *string        `json:"model_image_file" yaml:"model_image_file"`
	ModelImageURI          *string        `json:"model_image_uri" yaml:"model_image_uri"`
	ModelInferenceConfig   map[string]any `json:"model_inference_config" yaml:"model_inference_config"`
	ModelMetadata          map[string]any `json:"model_metadata" yaml:"model_metadata"`
	ModelName              string         `json:"model_name" yaml:"model_name"`
	ModelPackageARN        *string        `json:"model_package_arn" yaml:"model_package_arn"`
	ModelSHA               string         `json:"model_sha" yaml:"model_sha"`
	ModelSourceDir         string         `json:"model_source_dir" yaml:"model_source_dir"`
	ModelVersion           string         `json:"model_version" yaml:"model_version"`
}

// FeaturesConfig is ModelConfig plus
// <tenant>/<project>/<model>/features.json.
type FeaturesConfig struct {
	ModelConfig `yaml:",inline"`
	Features    map[string]any `json:"features" yaml:"features"`
}

// PipelineConfig is ProjectConfig plus
// <tenant>/<project>/<model>/pipeline.json and the derived pipeline naming
// fields. PipelineName, PipelineNamePrefix, and RuleName are hyphenated for
// AWS; PipelineModuleName and BasePath are not.
type PipelineConfig struct {
	ProjectConfig          `yaml:",inline"`
	BasePath               string  `json:"base_path" yaml:"base_path"`
	BaseS3Path             string  `json:"base_s3_path" yaml:"base_s3_path"`
	FeatureEngineeringJar  string  `json:"feature_engineering_jar" yaml:"feature_engineering_jar"`
	PipelineModuleLocation string  `json:"pipeline_module_location" yaml:"pipeline_module_location"`
	PipelineModuleName     string  `json:"pipeline_module_name" yaml:"pipeline_module_name"`
	PipelineName           string  `json:"pipeline_name" yaml:"pipeline_name"`
	PipelineNamePrefix     string  `json:"pipeline_name_prefix" yaml:"pipeline_name_prefix"`
	PipelineSchedule       *string `json:"pipeline_schedule" yaml:"pipeline_schedule"`
	RegisteredModel        *string `json:"registered_model" yaml:"registered_model"`
	RuleName               string  `json:"rule_name" yaml:"rule_name"`
}

// GlueConfig is ProjectConfig plus
// <tenant>/<project>/<model>/dataset.json and derived Glue table/crawler
// naming. It reads model.json only for the declared model_name; dataset
// naming is independent of model hashing.
type GlueConfig struct {
	ProjectConfig     `yaml:",inline"`
	BaseS3Path        string           `json:"base_s3_path" yaml:"base_s3_path"`
	CrawlerNamePrefix string           `json:"crawler_name_prefix" yaml:"crawler_name_prefix"`
	Datasets          []map[string]any `json:"datasets" yaml:"datasets"`
	ForceCreateFlag   bool             `json:"force_create_flag" yaml:"force_create_flag"`
	TableNamePrefix   string           `json:"table_name_prefix" yaml:"table_name_prefix"`
}

// ImageConfig is TenantConfig plus the shared mllib/docker.json image spec.
type ImageConfig struct {
	TenantConfig     `yaml:",inline"`
	ImageBaseDir     string `json:"image_base_dir" yaml:"image_base_dir"`
	ImageDescription string `json:"image_description" yaml:"image_description"`
	ImageFile        string `json:"image_file" yaml:"image_file"`
	ImageName        string `json:"image_name" yaml:"image_name"`
	ImageURI         string `json:"image_uri" yaml:"image_uri"`
}
