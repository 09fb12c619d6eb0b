package main

import (
	"github.com/bnema/remotenav/internal/cli/cmd"
	"github.com/bnema/remotenav/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.NewInfo(version, commit, buildDate))
	cmd.Execute()
}
