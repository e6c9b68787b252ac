// SPDX-License-Identifier: Apache-2.0

package compose

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ethforge/ethforge/internal/config"
	"github.com/ethforge/ethforge/internal/core"
	"github.com/stretchr/testify/require"
)

func testDocument() Document {
	return NewDocument(config.Default(), core.NewNodePaths("/opt/ethereum"))
}

func TestNewDocument_ServiceShape(t *testing.T) {
	cfg := config.Default()
	paths := core.NewNodePaths(cfg.BaseDir)
	doc := NewDocument(cfg, paths)

	execution := doc.Services.Execution
	consensus := doc.Services.Consensus

	require.Equal(t, cfg.Execution.Image, execution.Image)
	require.Equal(t, cfg.Consensus.Image, consensus.Image)
	require.Equal(t, RestartPolicy, execution.Restart)
	require.Equal(t, RestartPolicy, consensus.Restart)

	// consensus waits for the execution client
	require.Equal(t, []string{ExecutionServiceName}, consensus.DependsOn)
	require.Empty(t, execution.DependsOn)

	// p2p is published on both tcp and udp
	require.Contains(t, execution.Ports, "30303:30303/tcp")
	require.Contains(t, execution.Ports, "30303:30303/udp")
	require.Contains(t, execution.Ports, "8545:8545")
	require.Contains(t, consensus.Ports, "3500:3500")
}

func TestNewDocument_JwtSecretMountedReadOnlyInBoth(t *testing.T) {
	doc := testDocument()

	jwtMount := "/opt/ethereum/jwt.hex:/jwt.hex:ro"
	require.Contains(t, doc.Services.Execution.Volumes, jwtMount)
	require.Contains(t, doc.Services.Consensus.Volumes, jwtMount)
}

func TestNewDocument_ConsensusTargetsExecutionEngineAPI(t *testing.T) {
	doc := testDocument()

	require.Contains(t, doc.Services.Consensus.Command,
		fmt.Sprintf("--execution-endpoint=http://%s:8551", ExecutionServiceName))
	require.Contains(t, doc.Services.Consensus.Command, "--jwt-secret=/jwt.hex")
	require.Contains(t, doc.Services.Execution.Command, "--authrpc.jwtsecret=/jwt.hex")
}

func TestNewDocument_BoundedLogging(t *testing.T) {
	doc := testDocument()

	for _, svc := range []Service{doc.Services.Execution, doc.Services.Consensus} {
		require.Equal(t, "json-file", svc.Logging.Driver)
		require.Equal(t, "10m", svc.Logging.Options["max-size"])
		require.Equal(t, "3", svc.Logging.Options["max-file"])
	}
}

func TestRender_Deterministic(t *testing.T) {
	doc := testDocument()

	first, err := Render(doc)
	require.NoError(t, err)

	second, err := Render(doc)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.NotEmpty(t, first)

	// execution is rendered before consensus
	out := string(first)
	require.Less(t, strings.Index(out, "execution:"), strings.Index(out, "consensus:"))
}
