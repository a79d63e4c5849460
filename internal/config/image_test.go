package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageSharedSpec(t *testing.T) {
	root := fixtureTree(t)
	writeSpecFile(t, root, "mllib/docker.json", `{
		"image_name": "mllib-analytics",
		"image_file": "Dockerfile",
		"image_base_dir": "mllib",
		"image_description": "shared analytics image",
		"image_uri": "123456789012.dkr.ecr.us-east-1.amazonaws.com/mllib-analytics:latest"
	}`)
	loader := NewLoader(root)

	cfg, err := loader.Image(context.Background(), appFixture(t, "prod"))
	assert.NoError(t, err)

	assert.Equal(t, "mllib-analytics", cfg.ImageName)
	assert.Equal(t, "Dockerfile", cfg.ImageFile)
	assert.Equal(t, "123456789012.dkr.ecr.us-east-1.amazonaws.com/mllib-analytics:latest", cfg.ImageURI)
	// Tenant fields carry through.
	assert.Equal(t, "acme", cfg.TenantName)
	assert.Equal(t, "prod-bucket", cfg.S3Bucket)
}

func TestImageMissingSpecFile(t *testing.T) {
	root := fixtureTree(t)
	loader := NewLoader(root)

	_, err := loader.Image(context.Background(), appFixture(t, "prod"))
	assert.Error(t, err)
}
