package config

// Loader resolves config records from spec files under a root directory.
// Loaders are pure functions of the filesystem plus identity: nothing is
// cached between calls and every invocation re-reads the relevant files, so
// concurrent callers need no coordination.
type Loader struct {
	root string
}

// NewLoader creates a Loader rooted at dir. An empty dir means the current
// working directory.
func NewLoader(dir string) *Loader {
	if dir == "" {
		dir = "."
	}
	return &Loader{root: dir}
}
