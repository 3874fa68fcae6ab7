// Package version holds the build stamp of the haystack binary.
package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Set with -ldflags "-X github.com/j2inn/haystack-core-sub001/version.Version=..."
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildTime  = "unknown"
)

const shortHashLen = 7

// Info is the build stamp plus the def libs bundled into the binary.
type Info struct {
	Version   string            `json:"version"`
	Commit    string            `json:"commit"`
	BuildTime string            `json:"build_time"`
	GoVersion string            `json:"go_version"`
	Platform  string            `json:"platform"`
	Libs      map[string]string `json:"bundled_libs,omitempty"`
}

// Get returns the build stamp. libs maps bundled lib names to versions and may be nil.
func Get(libs map[string]string) Info {
	return Info{
		Version:   Version,
		Commit:    CommitHash,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Libs:      libs,
	}
}

// String is the one-line form, e.g. "haystack 1.2.0 (abc1234)".
func (i Info) String() string {
	return fmt.Sprintf("haystack %s (%s)", strings.TrimPrefix(i.Version, "v"), i.ShortCommit())
}

// ShortCommit truncates the commit hash.
func (i Info) ShortCommit() string {
	if len(i.Commit) > shortHashLen {
		return i.Commit[:shortHashLen]
	}
	return i.Commit
}

// Rows returns the stamp as ordered label/value rows for table output.
func (i Info) Rows(libNames []string) [][]string {
	rows := [][]string{
		{"version", i.Version},
		{"commit", i.Commit},
		{"built", i.BuildTime},
		{"go", i.GoVersion},
		{"platform", i.Platform},
	}
	for _, name := range libNames {
		if v, ok := i.Libs[name]; ok {
			rows = append(rows, []string{"lib " + name, v})
		}
	}
	return rows
}
