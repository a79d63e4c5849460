package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	internalerrors "github.com/riskml/mldeploy/internal/errors"
)

func TestNewAppConfigFQN(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   string
	}{
		{
			name: "all identity values",
			params: Params{
				Tenant:      "acme",
				Project:     "risk",
				Model:       "v1",
				Pipeline:    "train",
				Environment: "prod",
			},
			want: "acme-risk-v1-train-prod",
		},
		{
			name: "missing pipeline is skipped",
			params: Params{
				Tenant:      "acme",
				Project:     "risk",
				Model:       "v1",
				Environment: "prod",
			},
			want: "acme-risk-v1-prod",
		},
		{
			name: "tenant and environment only",
			params: Params{
				Tenant:      "acme",
				Environment: "dev",
			},
			want: "acme-dev",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := NewAppConfig(tt.params)
			if err != nil {
				t.Fatal(err)
			}
			if app.FQN != tt.want {
				t.Errorf("FQN = %v, want %v", app.FQN, tt.want)
			}
		})
	}
}

func TestNewAppConfigEnvironmentTail(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		want        string
	}{
		{
			name:        "plain environment",
			environment: "prod",
			want:        "prod",
		},
		{
			name:        "branch hierarchy keeps last segment",
			environment: "refs/heads/prod",
			want:        "prod",
		},
		{
			name:        "single slash",
			environment: "release/stg",
			want:        "stg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := NewAppConfig(Params{Tenant: "acme", Environment: tt.environment})
			if err != nil {
				t.Fatal(err)
			}
			if app.Environment != tt.want {
				t.Errorf("Environment = %v, want %v", app.Environment, tt.want)
			}
		})
	}
}

func TestNewAppConfigDefaults(t *testing.T) {
	app, err := NewAppConfig(Params{Tenant: "acme", Environment: "prod"})
	assert.NoError(t, err)
	assert.False(t, app.Debug)
	assert.Empty(t, app.Pipeline)
	assert.Empty(t, app.Model)
}

func TestNewAppConfigRequiresEnvironment(t *testing.T) {
	_, err := NewAppConfig(Params{Tenant: "acme"})
	assert.ErrorIs(t, err, internalerrors.ErrEnvironmentRequired)
}
