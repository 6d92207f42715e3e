package format

import "github.com/Masterminds/semver/v3"

// IsSemver reports whether s is a strict semantic version (MAJOR.MINOR.PATCH
// with optional pre-release and build metadata, no "v" prefix).
func IsSemver(s string) bool {
	_, err := semver.StrictNewVersion(s)
	return err == nil
}
