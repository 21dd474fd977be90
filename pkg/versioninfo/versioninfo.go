// Package versioninfo formats the version reported by --version.
package versioninfo

import (
	"runtime/debug"
	"strings"

	"github.com/coreos/go-semver/semver"
)

// A Info contains a version.
type Info struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
	// Modified marks a build from a dirty working tree.
	Modified bool
}

// FromBuild fills the fields the linker left empty from the VCS metadata
// the Go toolchain embeds in the binary.
func (vi Info) FromBuild() Info {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return vi
	}
	return vi.withBuildInfo(bi)
}

func (vi Info) withBuildInfo(bi *debug.BuildInfo) Info {
	if vi.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		vi.Version = bi.Main.Version
	}

	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			if vi.Commit == "" {
				vi.Commit = shortCommit(setting.Value)
			}
		case "vcs.time":
			if vi.Date == "" {
				vi.Date = setting.Value
			}
		case "vcs.modified":
			vi.Modified = vi.Modified || setting.Value == "true"
		}
	}

	return vi
}

func (vi Info) String() string {
	var versionElems []string
	if vi.Version != "" {
		version, err := semver.NewVersion(strings.TrimPrefix(vi.Version, "v"))
		if err != nil {
			return vi.Version
		}
		versionElems = append(versionElems, "v"+version.String())
	} else {
		versionElems = append(versionElems, "dev")
	}
	if vi.Commit != "" {
		commit := "commit " + vi.Commit
		if vi.Modified {
			commit += "-dirty"
		}
		versionElems = append(versionElems, commit)
	}
	if vi.Date != "" {
		versionElems = append(versionElems, "built at "+vi.Date)
	}
	if vi.BuiltBy != "" {
		versionElems = append(versionElems, "built by "+vi.BuiltBy)
	}
	return strings.Join(versionElems, ", ")
}

func shortCommit(commit string) string {
	if len(commit) > 12 {
		return commit[:12]
	}
	return commit
}
