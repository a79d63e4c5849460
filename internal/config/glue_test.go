package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	internalerrors "github.com/riskml/mldeploy/internal/errors"
)

const datasetSpec = `{
	"datasets": [
		{"name": "transactions", "format": "parquet"},
		{"name": "chargebacks", "format": "parquet"}
	]
}`

func TestGlueDerivedNaming(t *testing.T) {
	root := fixtureTree(t)
	writeSpecFile(t, root, "acme/risk/v1/dataset.json", datasetSpec)
	loader := NewLoader(root)

	cfg, err := loader.Glue(context.Background(), appFixture(t, "prod"))
	assert.NoError(t, err)

	// Naming uses the declared model_name from model.json, not the model
	// identity segment, and the dataset S3 path is not hyphenated.
	assert.Equal(t, "s3://prod-bucket/acme-risk-fraud_scorer-prod", cfg.BaseS3Path)
	assert.Equal(t, "acme-risk-fraud_scorer-prod", cfg.TableNamePrefix)
	assert.Equal(t, "pi_risk_ml_acme-risk-fraud_scorer-prod", cfg.CrawlerNamePrefix)
	assert.Len(t, cfg.Datasets, 2)
}

func TestGlueForceCreateAlwaysFalse(t *testing.T) {
	root := fixtureTree(t)
	writeSpecFile(t, root, "acme/risk/v1/dataset.json", `{"force_create_flag": true}`)
	loader := NewLoader(root)

	cfg, err := loader.Glue(context.Background(), appFixture(t, "prod"))
	assert.NoError(t, err)
	assert.False(t, cfg.ForceCreateFlag)
}

func TestGlueRequiresModelName(t *testing.T) {
	root := fixtureTree(t)
	writeSpecFile(t, root, "acme/risk/v1/dataset.json", datasetSpec)
	writeSpecFile(t, root, "acme/risk/v1/model.json", `{"model_version": "1.0.0"}`)
	loader := NewLoader(root)

	_, err := loader.Glue(context.Background(), appFixture(t, "prod"))
	assert.ErrorIs(t, err, internalerrors.ErrModelNameRequired)
}

func TestGlueMissingDatasetSpec(t *testing.T) {
	root := fixtureTree(t)
	loader := NewLoader(root)

	_, err := loader.Glue(context.Background(), appFixture(t, "prod"))
	assert.Error(t, err)
}
