package di

import (
	"context"
	"testing"

	"github.com/riskml/mldeploy/internal/config"
)

// Test types for dependency injection
type Database struct {
	Name string
}

type Service struct {
	DB  *Database
	Dir string
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr bool
	}{
		{
			name:    "creates container with no providers",
			opts:    nil,
			wantErr: false,
		},
		{
			name: "creates container with single provider",
			opts: []Option{
				WithProviders(func() *Database {
					return &Database{Name: "test-db"}
				}),
			},
			wantErr: false,
		},
		{
			name: "creates container with dependent providers",
			opts: []Option{
				WithWorkingDir("specs"),
				WithProviders(
					func() *Database {
						return &Database{Name: "test-db"}
					},
					func(db *Database, dir WorkingDir) *Service {
						return &Service{DB: db, Dir: string(dir)}
					},
				),
			},
			wantErr: false,
		},
		{
			name: "fails with invalid provider",
			opts: []Option{
				WithProviders("not a function"),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container, err := New(tt.opts...)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && container == nil {
				t.Error("New() returned nil container")
			}
		})
	}
}

func TestMustGet(t *testing.T) {
	container, err := New(
		WithWorkingDir("specs"),
		WithProviders(func() *Database {
			return &Database{Name: "test-db"}
		}),
	)
	if err != nil {
		t.Fatal(err)
	}

	db := MustGet[*Database](container)
	if db.Name != "test-db" {
		t.Errorf("MustGet() = %v, want test-db", db.Name)
	}
}

func TestMustGetPanicsOnMissing(t *testing.T) {
	container, err := New()
	if err != nil {
		t.Fatal(err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustGet() should panic for unregistered type")
		}
	}()
	MustGet[*Database](container)
}

func TestCoreProviders(t *testing.T) {
	container, err := New(WithWorkingDir("specs"))
	if err != nil {
		t.Fatal(err)
	}

	loader := MustGet[*config.Loader](container)
	if loader == nil {
		t.Error("expected loader from core providers")
	}

	ctx := MustGet[context.Context](container)
	if ctx == nil {
		t.Error("expected logger-carrying context from core providers")
	}
}
