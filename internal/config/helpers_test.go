package config

import (
	"os"
	"path/filepath"
	"testing"
)

// writeSpecFile writes one JSON spec file into the fixture tree, creating
// parent directories as needed.
func writeSpecFile(t *testing.T, root string, rel string, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

const tenantSpec = `{
	"aws_account_id": "123456789012",
	"aws_region": "us-east-1",
	"s3_bucket": "default-bucket",
	"execution_role_arn": "arn:aws:iam::123456789012:role/execution",
	"crawler_role_arn": "arn:aws:iam::123456789012:role/crawler",
	"environments": {
		"prod": {
			"s3_bucket": "prod-bucket"
		}
	}
}`

const projectSpec = `{
	"project_name": "risk-scoring"
}`

const modelSpec = `{
	"model_name": "fraud_scorer",
	"model_version": "1.0.0",
	"model_description": "fraud scoring model"
}`

// fixtureTree lays out a minimal tenant/project/model spec tree and returns
// its root.
func fixtureTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeSpecFile(t, root, "acme/tenant.json", tenantSpec)
	writeSpecFile(t, root, "acme/risk/project.json", projectSpec)
	writeSpecFile(t, root, "acme/risk/v1/model.json", modelSpec)
	return root
}

func appFixture(t *testing.T, environment string) AppConfig {
	t.Helper()
	app, err := NewAppConfig(Params{
		Tenant:      "acme",
		Project:     "risk",
		Model:       "v1",
		Pipeline:    "train",
		Environment: environment,
		Branch:      "main",
		CommitSha:   "abc123",
		BuildNumber: "42",
	})
	if err != nil {
		t.Fatal(err)
	}
	return app
}
