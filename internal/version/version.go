// Package version formats build information injected with -ldflags.
package version

import (
	"fmt"
	"runtime"
)

// Short returns "version-commit" with the commit cut to seven characters.
func Short(version, commit string) string {
	if version == "" {
		version = "dev"
	}
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if commit == "" {
		return version
	}
	return fmt.Sprintf("%s-%s", version, commit)
}

// Detailed returns the multi-line report printed by `nkpipe version`.
func Detailed(version, commit, buildTime string) string {
	if version == "" {
		version = "dev"
	}
	if commit == "" {
		commit = "unknown"
	}
	if buildTime == "" {
		buildTime = "unknown"
	}

	return fmt.Sprintf(`nkpipe
Version:    %s
Commit:     %s
Built:      %s
Go version: %s
OS/Arch:    %s/%s`,
		version, commit, buildTime,
		runtime.Version(),
		runtime.GOOS, runtime.GOARCH)
}
