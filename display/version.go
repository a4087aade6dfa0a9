package display

import (
	"fmt"
	"runtime/debug"

	"github.com/Masterminds/semver/v3"
)

// BuildVersion renders the application version line. An explicit version
// string is normalized through semver so "1.2.3" and "v1.2.3" render the
// same; an empty version falls back to the module's build metadata.
func BuildVersion(name, version string) string {
	if version == "" {
		inferred, ok := inferVersion()
		if !ok {
			return "No version specified"
		}
		version = inferred
	}

	if sv, err := semver.NewVersion(version); err == nil {
		version = sv.String()
	}

	if name != "" {
		return fmt.Sprintf("%s v%s", name, version)
	}
	return fmt.Sprintf("v%s", version)
}

// inferVersion attempts to read the main module version from build info.
func inferVersion() (string, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version, true
	}
	return "", false
}
