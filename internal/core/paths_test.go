// SPDX-License-Identifier: Apache-2.0

package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNodePaths(t *testing.T) {
	p := NewNodePaths("/srv/eth")

	require.Equal(t, "/srv/eth", p.BaseDir)
	require.Equal(t, "/srv/eth/execution", p.ExecutionDir)
	require.Equal(t, "/srv/eth/consensus", p.ConsensusDir)
	require.Equal(t, "/srv/eth/jwt.hex", p.JwtSecretFile)
	require.Equal(t, "/srv/eth/docker-compose.yml", p.ComposeFile)
	require.Equal(t, DefaultLogsDir, p.LogsDir)
	require.Equal(t, DefaultRunLockFile, p.RunLockFile)
}

func TestNewNodePaths_EmptyBaseDirFallsBack(t *testing.T) {
	p := NewNodePaths("")
	require.Equal(t, DefaultBaseDir, p.BaseDir)
}

func TestDataDirectories(t *testing.T) {
	p := NewNodePaths("/srv/eth")
	require.Equal(t, []string{"/srv/eth/execution", "/srv/eth/consensus"}, p.DataDirectories())
}
