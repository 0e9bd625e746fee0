package version

import (
	"fmt"
	"runtime/debug"
)

// Version is set at build time:
// go build -ldflags "-X git.home.luguber.info/inful/docspell/internal/version.Version=v0.3.0".
var Version = "unknown"

// GitCommit is set at build time alongside Version.
var GitCommit = "unknown"

// String returns the version line printed by --version. When no ldflags were
// given, the module version recorded by the Go toolchain is used instead.
func String() string {
	v := Version
	if v == "unknown" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
	}
	if GitCommit == "unknown" {
		return fmt.Sprintf("docspell %s", v)
	}
	return fmt.Sprintf("docspell %s (%s)", v, GitCommit)
}
