package di

import "github.com/riskml/mldeploy/internal/config"

// ProvideLoader creates the spec-file loader rooted at the container's
// working directory.
func ProvideLoader(dir WorkingDir) *config.Loader {
	return config.NewLoader(string(dir))
}
