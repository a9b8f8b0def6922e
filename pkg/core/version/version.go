// ============================================================================
// complexible - complex number toolkit
// ============================================================================
//
// Package:     version
// Description: Version and build information
// Author:      kevmasajedi
// Created:     2025-02-10
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version of the complexible module
const Version = "0.1.0"

// Set at build time with -ldflags "-X .../version.GitCommit=..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("complexible v%s (%s, built %s)", i.Version, i.GitCommit, i.BuildDate)
}
