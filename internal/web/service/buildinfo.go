package service

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"runtime"
	"time"

	"github.com/okitolabs/demopass/internal/web/domain"
)

// BuildInfoService assembles build and deploy metadata from the version file,
// CI environment variables and the Go runtime. The result is fixed for the
// lifetime of the process.
type BuildInfoService struct {
	VersionFile string
	Environment string
	StartedAt   time.Time
}

// Get returns the build info document. A missing version file is not an
// error; the version falls back to "dev" the way a local checkout runs.
func (s *BuildInfoService) Get() domain.BuildInfo {
	version := "dev"
	commit := os.Getenv("GIT_COMMIT")
	build := os.Getenv("BUILD_NUMBER")

	if info, err := s.readVersionFile(); err == nil {
		if info.Version != "" {
			version = info.Version
		}
		if commit == "" {
			commit = info.Commit
		}
		if build == "" {
			build = info.Build
		}
	}

	if commit == "" {
		commit = "unknown"
	}
	if build == "" {
		build = "local"
	}

	ciServer := os.Getenv("CI_SERVER")
	if ciServer == "" {
		ciServer = "local development"
	}

	return domain.BuildInfo{
		Version:     version,
		GoVersion:   runtime.Version(),
		OS:          runtime.GOOS,
		Arch:        runtime.GOARCH,
		BuildNumber: build,
		GitCommit:   commit,
		CIServer:    ciServer,
		Environment: s.Environment,
		StartedAt:   s.StartedAt,
	}
}

// readVersionFile parses the version.json the deploy pipeline drops next to
// the binary.
func (s *BuildInfoService) readVersionFile() (domain.VersionInfo, error) {
	if s.VersionFile == "" {
		return domain.VersionInfo{}, fs.ErrNotExist
	}

	data, err := os.ReadFile(s.VersionFile)
	if err != nil {
		return domain.VersionInfo{}, err
	}

	var info domain.VersionInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return domain.VersionInfo{}, errors.New("malformed version file")
	}
	return info, nil
}
