// Package version reports the build version of wac.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is set at link time:
//
//	go build -ldflags "-X github.com/wifi-android-connect/wac-go/pkg/version.Version=v1.2.0"
var Version = ""

// Info describes the running binary.
type Info struct {
	Version   string
	Revision  string
	GoVersion string
	Modified  bool
}

// Get returns the version information. When Version was not set at link
// time, the module version from the build info is used.
func Get() Info {
	info := Info{
		Version:   Version,
		GoVersion: runtime.Version(),
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		if info.Version == "" {
			info.Version = "devel"
		}
		return info
	}
	return fromBuildInfo(info, bi)
}

func fromBuildInfo(info Info, bi *debug.BuildInfo) Info {
	if info.Version == "" {
		info.Version = bi.Main.Version
	}
	if info.Version == "" || info.Version == "(devel)" {
		info.Version = "devel"
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// String formats the info as a single line.
func (i Info) String() string {
	s := "wac " + i.Version
	if i.Revision != "" {
		rev := i.Revision
		if len(rev) > 12 {
			rev = rev[:12]
		}
		if i.Modified {
			rev += "-dirty"
		}
		s += fmt.Sprintf(" (%s)", rev)
	}
	return s + " " + i.GoVersion
}
