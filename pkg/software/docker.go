// SPDX-License-Identifier: Apache-2.0

package software

import (
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinDockerEngineVersion is the oldest engine this tool will provision
// services on. Older engines lack the compose plugin semantics we rely on.
var MinDockerEngineVersion = semver.MustParse("24.0.0")

var dockerVersionPattern = regexp.MustCompile(`Docker version ([0-9]+\.[0-9]+\.[0-9]+)`)

// ParseDockerVersion extracts the engine version from `docker --version`
// output, e.g. "Docker version 27.3.1, build ce12230".
func ParseDockerVersion(out string) (*semver.Version, error) {
	m := dockerVersionPattern.FindStringSubmatch(strings.TrimSpace(out))
	if m == nil {
		return nil, InstallationError.New("unrecognized docker version output: %q", out)
	}

	v, err := semver.NewVersion(m[1])
	if err != nil {
		return nil, InstallationError.Wrap(err, "invalid docker version %q", m[1])
	}

	return v, nil
}

// CheckDockerVersion verifies the engine version reported by `docker --version`
// meets the minimum supported version and returns the parsed version.
func CheckDockerVersion(out string) (*semver.Version, error) {
	v, err := ParseDockerVersion(out)
	if err != nil {
		return nil, err
	}

	if v.LessThan(MinDockerEngineVersion) {
		return nil, InstallationError.New("docker engine %s is older than minimum supported %s",
			v.String(), MinDockerEngineVersion.String())
	}

	return v, nil
}
