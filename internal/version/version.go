package version

import "runtime/debug"

// Version is overridden at build time:
//
//	go build -ldflags "-X github.com/bnema/bilibili-accounts-cli/internal/version.Version=v0.3.0" ./cmd/ba
var Version = "dev"

// String prefers the linker-set version, then the module version recorded
// by `go install`.
func String() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}
