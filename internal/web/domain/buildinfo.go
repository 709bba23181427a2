package domain

import "time"

// VersionInfo is the parsed contents of the deploy artifact's version.json.
type VersionInfo struct {
	Version string `json:"version"`
	Build   string `json:"build,omitempty"`
	Commit  string `json:"commit,omitempty"`
}

// BuildInfo describes the build and runtime environment of the running
// binary. Values come from the version file, CI environment variables and the
// Go runtime.
type BuildInfo struct {
	Version     string
	GoVersion   string
	OS          string
	Arch        string
	BuildNumber string
	GitCommit   string
	CIServer    string
	Environment string
	StartedAt   time.Time
}

// ShortCommit returns the abbreviated git commit hash.
func (b BuildInfo) ShortCommit() string {
	if len(b.GitCommit) > 8 {
		return b.GitCommit[:8]
	}
	return b.GitCommit
}
