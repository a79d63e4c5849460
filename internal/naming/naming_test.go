package naming

import "testing"

func TestHyphenate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single underscore",
			input: "risk_team",
			want:  "risk-team",
		},
		{
			name:  "multiple underscores",
			input: "a_b_c",
			want:  "a-b-c",
		},
		{
			name:  "no underscores",
			input: "acme-prod",
			want:  "acme-prod",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hyphenate(tt.input); got != tt.want {
				t.Errorf("Hyphenate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPipelineName(t *testing.T) {
	tests := []struct {
		name                                          string
		tenant, project, model, pipeline, environment string
		want                                          string
	}{
		{
			name:        "plain identity",
			tenant:      "acme",
			project:     "risk",
			model:       "v1",
			pipeline:    "train",
			environment: "prod",
			want:        "acme-risk-v1-train-prod",
		},
		{
			name:        "underscores in identity are hyphenated",
			tenant:      "risk_team",
			project:     "fraud_detection",
			model:       "xgb_v2",
			pipeline:    "daily_train",
			environment: "prod",
			want:        "risk-team-fraud-detection-xgb-v2-daily-train-prod",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PipelineName(tt.tenant, tt.project, tt.model, tt.pipeline, tt.environment)
			if got != tt.want {
				t.Errorf("PipelineName() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBaseS3Path(t *testing.T) {
	got := BaseS3Path("my-bucket", "acme-risk-v1-prod")
	if want := "s3://my-bucket/acme-risk-v1-prod"; got != want {
		t.Errorf("BaseS3Path() = %v, want %v", got, want)
	}
}

func TestPipelineModuleName(t *testing.T) {
	// Module names stay dotted and keep underscores; they are import paths,
	// not AWS resource names.
	got := PipelineModuleName("risk_team", "fraud", "xgb", "daily_train")
	if want := "risk_team.fraud.xgb.daily_train"; got != want {
		t.Errorf("PipelineModuleName() = %v, want %v", got, want)
	}
}

func TestPipelineModuleLocation(t *testing.T) {
	got := PipelineModuleLocation("acme/risk/v1", "train")
	if want := "./acme/risk/v1/pipelines/train.py"; got != want {
		t.Errorf("PipelineModuleLocation() = %v, want %v", got, want)
	}
}

func TestCrawlerNamePrefix(t *testing.T) {
	got := CrawlerNamePrefix("acme-risk-v1-prod")
	if want := "pi_risk_ml_acme-risk-v1-prod"; got != want {
		t.Errorf("CrawlerNamePrefix() = %v, want %v", got, want)
	}
}

func TestFeatureEngineeringJar(t *testing.T) {
	got := FeatureEngineeringJar("my-bucket", "abc123")
	if want := "s3://my-bucket/artifacts/feature-engineering-assembly-abc123.jar"; got != want {
		t.Errorf("FeatureEngineeringJar() = %v, want %v", got, want)
	}
}
