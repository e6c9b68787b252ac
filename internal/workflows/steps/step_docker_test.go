// SPDX-License-Identifier: Apache-2.0

package steps

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDockerAptRepositoryCommands_FollowHostDistribution(t *testing.T) {
	script := strings.Join(dockerAptRepositoryCommands(), "\n")

	// a Debian host must not be pointed at the ubuntu repo: its codename
	// does not exist there and apt-get update would fail
	require.NotContains(t, script, "linux/ubuntu")
	require.NotContains(t, script, "linux/debian")
	require.Contains(t, script, `download.docker.com/linux/$(. /etc/os-release && echo "$ID")`)
	require.Contains(t, script, `$(. /etc/os-release && echo "$VERSION_CODENAME")`)
}

func TestSetupDockerAptRepository_Builds(t *testing.T) {
	step, err := SetupDockerAptRepository().Build()
	require.NoError(t, err)
	require.NotNil(t, step)
}
