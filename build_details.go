package casekit

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set with -ldflags "-X github.com/erraggy/casekit.version=v1.2.3" by release builds.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Version returns the release version. Binaries installed with
// "go install ...@vX.Y.Z" report the module version instead of "dev".
func Version() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && strings.HasPrefix(info.Main.Version, "v") {
		return info.Main.Version
	}
	return version
}

// Commit returns the short git hash the binary was built from.
func Commit() string {
	return commit
}

// BuildTime returns the RFC3339 build timestamp.
func BuildTime() string {
	return buildTime
}

// GoVersion returns the Go toolchain version of the running binary.
func GoVersion() string {
	return runtime.Version()
}

// UserAgent identifies casekit to MCP clients and other peers.
func UserAgent() string {
	return "casekit/" + Version()
}

// BuildInfo returns every build detail on its own line.
func BuildInfo() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuild Time: %s\nGo Version: %s",
		Version(), Commit(), BuildTime(), GoVersion())
}
