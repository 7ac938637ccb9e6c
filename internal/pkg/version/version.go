package version

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// Version describes the running binary; main fills it from linker flags.
type Version struct {
	Binary    string
	Name      string
	Version   string
	Commit    string
	BuildDate string
	BuildHost string
	UserAgent string
}

var unreleased = []string{"0.0.0", "v0.0.0"}

// git describe marks for builds off a tag or from a dirty tree
var devMarkers = []string{"dirty", "-g"}

func NewVersion(binary, name, version, commit, buildDate, buildHost string) *Version {
	return &Version{
		Binary:    binary,
		Name:      name,
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		BuildHost: buildHost,
		UserAgent: fmt.Sprintf("%s/%s (%s/%s)", binary, version, runtime.GOOS, runtime.GOARCH),
	}
}

func (v *Version) IsReleased() bool {
	for _, u := range unreleased {
		if v.Version == u {
			return false
		}
	}
	for _, marker := range devMarkers {
		if strings.Contains(v.Version, marker) {
			return false
		}
	}
	return true
}

// String renders the version in the layout printed by `kcctl version`.
func (v *Version) String() string {
	lines := []string{fmt.Sprintf("%s - %s", v.Binary, v.Name), ""}
	for _, field := range [][2]string{
		{"Version", v.Version},
		{"Git Ref", v.Commit},
		{"Build Date", v.BuildDate},
		{"Build Host", v.BuildHost},
		{"Go Version", fmt.Sprintf("%s (%s/%s)", runtime.Version(), runtime.GOOS, runtime.GOARCH)},
		{"Development", strconv.FormatBool(!v.IsReleased())},
	} {
		lines = append(lines, fmt.Sprintf("%-12s %s", field[0]+":", field[1]))
	}
	return strings.Join(lines, "\n")
}
