// SPDX-License-Identifier: Apache-2.0

package core

import "os"

const (
	// DefaultBaseDir is the root of all artifacts this tool writes to the host.
	DefaultBaseDir = "/opt/ethereum"

	// DefaultLogsDir holds application logs and workflow execution reports.
	DefaultLogsDir = "/var/log/ethforge"

	// DefaultRunLockFile guards against two concurrent provisioning runs.
	DefaultRunLockFile = "/var/run/ethforge.lock"

	ExecutionDirName  = "execution"
	ConsensusDirName  = "consensus"
	JwtSecretFileName = "jwt.hex"
	ComposeFileName   = "docker-compose.yml"

	DefaultDirPerm        os.FileMode = 0o755
	DefaultFilePerm       os.FileMode = 0o644
	DefaultSecretFilePerm os.FileMode = 0o600

	// NetworkSepolia is the default Ethereum test network.
	NetworkSepolia = "sepolia"
)
