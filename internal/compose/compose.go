// SPDX-License-Identifier: Apache-2.0

// Package compose models the two-service docker-compose document the
// pipeline writes. The document is fully derived from configuration and
// renders byte-identically across runs, so the write step can diff instead
// of blindly overwriting.
package compose

import (
	"fmt"

	"github.com/ethforge/ethforge/internal/config"
	"github.com/ethforge/ethforge/internal/core"
)

const (
	ExecutionServiceName = "execution"
	ConsensusServiceName = "consensus"

	// RestartPolicy keeps both clients running across crashes and reboots
	// until the operator stops them explicitly.
	RestartPolicy = "unless-stopped"

	// Container-side mount points.
	containerDataDir   = "/data"
	containerJwtSecret = "/jwt.hex"
)

// Logging caps each container's json-file log sink.
type Logging struct {
	Driver  string            `yaml:"driver"`
	Options map[string]string `yaml:"options"`
}

// Service is one compose service entry.
type Service struct {
	Image         string   `yaml:"image"`
	ContainerName string   `yaml:"container_name"`
	Restart       string   `yaml:"restart"`
	DependsOn     []string `yaml:"depends_on,omitempty"`
	Ports         []string `yaml:"ports"`
	Volumes       []string `yaml:"volumes"`
	Command       []string `yaml:"command"`
	Logging       Logging  `yaml:"logging"`
}

// Services fixes the document order: execution first, consensus second.
type Services struct {
	Execution Service `yaml:"execution"`
	Consensus Service `yaml:"consensus"`
}

// Document is the full compose file.
type Document struct {
	Services Services `yaml:"services"`
}

func boundedLogging() Logging {
	return Logging{
		Driver: "json-file",
		Options: map[string]string{
			"max-size": "10m",
			"max-file": "3",
		},
	}
}

// NewDocument derives the compose document from deployment parameters and
// resolved host paths.
func NewDocument(cfg config.Config, paths core.NodePaths) Document {
	jwtMount := fmt.Sprintf("%s:%s:ro", paths.JwtSecretFile, containerJwtSecret)

	execution := Service{
		Image:         cfg.Execution.Image,
		ContainerName: ExecutionServiceName,
		Restart:       RestartPolicy,
		Ports: []string{
			fmt.Sprintf("%d:%d/tcp", cfg.Execution.P2PPort, cfg.Execution.P2PPort),
			fmt.Sprintf("%d:%d/udp", cfg.Execution.P2PPort, cfg.Execution.P2PPort),
			fmt.Sprintf("%d:%d", cfg.Execution.HTTPPort, cfg.Execution.HTTPPort),
			fmt.Sprintf("%d:%d", cfg.Execution.WSPort, cfg.Execution.WSPort),
			fmt.Sprintf("%d:%d", cfg.Execution.AuthRPCPort, cfg.Execution.AuthRPCPort),
		},
		Volumes: []string{
			fmt.Sprintf("%s:%s", paths.ExecutionDir, containerDataDir),
			jwtMount,
		},
		Command: []string{
			"--" + cfg.Network,
			"--datadir=" + containerDataDir,
			"--syncmode=snap",
			"--http",
			"--http.addr=0.0.0.0",
			fmt.Sprintf("--http.port=%d", cfg.Execution.HTTPPort),
			"--http.api=eth,net,web3,engine,admin",
			"--ws",
			"--ws.addr=0.0.0.0",
			fmt.Sprintf("--ws.port=%d", cfg.Execution.WSPort),
			"--authrpc.addr=0.0.0.0",
			fmt.Sprintf("--authrpc.port=%d", cfg.Execution.AuthRPCPort),
			"--authrpc.vhosts=*",
			"--authrpc.jwtsecret=" + containerJwtSecret,
			fmt.Sprintf("--port=%d", cfg.Execution.P2PPort),
		},
		Logging: boundedLogging(),
	}

	consensus := Service{
		Image:         cfg.Consensus.Image,
		ContainerName: ConsensusServiceName,
		Restart:       RestartPolicy,
		DependsOn:     []string{ExecutionServiceName},
		Ports: []string{
			fmt.Sprintf("%d:%d", cfg.Consensus.RPCPort, cfg.Consensus.RPCPort),
			fmt.Sprintf("%d:%d", cfg.Consensus.GatewayPort, cfg.Consensus.GatewayPort),
		},
		Volumes: []string{
			fmt.Sprintf("%s:%s", paths.ConsensusDir, containerDataDir),
			jwtMount,
		},
		Command: []string{
			"--" + cfg.Network,
			"--datadir=" + containerDataDir,
			fmt.Sprintf("--execution-endpoint=http://%s:%d", ExecutionServiceName, cfg.Execution.AuthRPCPort),
			"--jwt-secret=" + containerJwtSecret,
			"--checkpoint-sync-url=" + cfg.Consensus.CheckpointSyncURL,
			"--genesis-beacon-api-url=" + cfg.Consensus.GenesisBeaconAPIURL,
			fmt.Sprintf("--min-sync-peers=%d", cfg.Consensus.MinSyncPeers),
			"--rpc-host=0.0.0.0",
			fmt.Sprintf("--rpc-port=%d", cfg.Consensus.RPCPort),
			"--grpc-gateway-host=0.0.0.0",
			fmt.Sprintf("--grpc-gateway-port=%d", cfg.Consensus.GatewayPort),
			"--accept-terms-of-use",
		},
		Logging: boundedLogging(),
	}

	return Document{Services: Services{Execution: execution, Consensus: consensus}}
}
