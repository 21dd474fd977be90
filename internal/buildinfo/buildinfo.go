// Package buildinfo holds values stamped in by the linker, for example:
//
//	go build -ldflags "-X github.com/zbiljic/autocommit/internal/buildinfo.Version=1.2.0"
//
// It has no imports so any package can depend on it.
package buildinfo

var (
	Version   string
	GitCommit string
	BuildDate string
	BuiltBy   string
)
