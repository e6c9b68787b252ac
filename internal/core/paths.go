// SPDX-License-Identifier: Apache-2.0

package core

import "path"

// NodePaths resolves every fixed path the pipeline touches from a single
// base directory. Later steps read what earlier steps created, so all of
// them must agree on the same resolution.
type NodePaths struct {
	BaseDir       string
	ExecutionDir  string
	ConsensusDir  string
	JwtSecretFile string
	ComposeFile   string
	LogsDir       string
	RunLockFile   string
}

// NewNodePaths builds the path set rooted at baseDir. An empty baseDir
// falls back to DefaultBaseDir.
func NewNodePaths(baseDir string) NodePaths {
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}

	return NodePaths{
		BaseDir:       baseDir,
		ExecutionDir:  path.Join(baseDir, ExecutionDirName),
		ConsensusDir:  path.Join(baseDir, ConsensusDirName),
		JwtSecretFile: path.Join(baseDir, JwtSecretFileName),
		ComposeFile:   path.Join(baseDir, ComposeFileName),
		LogsDir:       DefaultLogsDir,
		RunLockFile:   DefaultRunLockFile,
	}
}

// DataDirectories returns the directories that must exist before the
// compose document referencing them is written.
func (p NodePaths) DataDirectories() []string {
	return []string{p.ExecutionDir, p.ConsensusDir}
}
