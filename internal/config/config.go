// SPDX-License-Identifier: Apache-2.0

package config

import (
	"strings"

	"github.com/ethforge/ethforge/internal/core"
	"github.com/ethforge/ethforge/pkg/logx"
	"github.com/ethforge/ethforge/pkg/sanity"
	"github.com/joomcode/errorx"
	"github.com/spf13/viper"
)

// Config holds the global configuration for the application.
// Deployment parameters (network, images, ports, bootstrap endpoints) are
// deliberately separated from pipeline logic; every field carries a
// validated default so running with no config file provisions a Sepolia node.
type Config struct {
	Log       logx.LoggingConfig `yaml:"log" json:"log"`
	Network   string             `yaml:"network" json:"network"`
	BaseDir   string             `yaml:"baseDir" json:"baseDir"`
	Execution ExecutionConfig    `yaml:"execution" json:"execution"`
	Consensus ConsensusConfig    `yaml:"consensus" json:"consensus"`
	Firewall  FirewallConfig     `yaml:"firewall" json:"firewall"`
}

// ExecutionConfig represents the `execution` configuration block.
type ExecutionConfig struct {
	Image       string `yaml:"image" json:"image"`
	P2PPort     int    `yaml:"p2pPort" json:"p2pPort"`
	HTTPPort    int    `yaml:"httpPort" json:"httpPort"`
	WSPort      int    `yaml:"wsPort" json:"wsPort"`
	AuthRPCPort int    `yaml:"authRpcPort" json:"authRpcPort"`
}

// ConsensusConfig represents the `consensus` configuration block.
type ConsensusConfig struct {
	Image               string `yaml:"image" json:"image"`
	RPCPort             int    `yaml:"rpcPort" json:"rpcPort"`
	GatewayPort         int    `yaml:"gatewayPort" json:"gatewayPort"`
	CheckpointSyncURL   string `yaml:"checkpointSyncUrl" json:"checkpointSyncUrl"`
	GenesisBeaconAPIURL string `yaml:"genesisBeaconApiUrl" json:"genesisBeaconApiUrl"`
	MinSyncPeers        int    `yaml:"minSyncPeers" json:"minSyncPeers"`
}

// FirewallConfig represents the `firewall` configuration block.
type FirewallConfig struct {
	// SSHProfile is the ufw application profile allowed before the firewall
	// is enabled, so the provisioning session itself is never cut off.
	SSHProfile string `yaml:"sshProfile" json:"sshProfile"`
}

// Validate validates all configuration fields to ensure the pipeline only
// ever acts on well-formed deployment parameters.
func (c Config) Validate() error {
	if err := sanity.ValidateIdentifier(c.Network); err != nil {
		return errorx.IllegalArgument.Wrap(err, "invalid network name: %s", c.Network)
	}

	if err := sanity.ValidateAbsolutePath(c.BaseDir); err != nil {
		return errorx.IllegalArgument.Wrap(err, "invalid base directory: %s", c.BaseDir)
	}

	if err := c.Execution.Validate(); err != nil {
		return err
	}

	if err := c.Consensus.Validate(); err != nil {
		return err
	}

	seen := map[int]string{}
	for name, p := range map[string]int{
		"execution.p2pPort":     c.Execution.P2PPort,
		"execution.httpPort":    c.Execution.HTTPPort,
		"execution.wsPort":      c.Execution.WSPort,
		"execution.authRpcPort": c.Execution.AuthRPCPort,
		"consensus.rpcPort":     c.Consensus.RPCPort,
		"consensus.gatewayPort": c.Consensus.GatewayPort,
	} {
		if other, ok := seen[p]; ok {
			return errorx.IllegalArgument.New("port %d is assigned to both %s and %s", p, other, name)
		}
		seen[p] = name
	}

	return nil
}

// Validate validates the execution client parameters.
func (c ExecutionConfig) Validate() error {
	if c.Image == "" {
		return errorx.IllegalArgument.New("execution image cannot be empty")
	}

	for _, p := range []int{c.P2PPort, c.HTTPPort, c.WSPort, c.AuthRPCPort} {
		if err := sanity.ValidatePort(p); err != nil {
			return errorx.IllegalArgument.Wrap(err, "invalid execution port")
		}
	}

	return nil
}

// Validate validates the consensus client parameters. The checkpoint-sync
// and genesis endpoints are trust-sensitive external inputs: their shape is
// validated here, their content is not (the client verifies what it syncs).
func (c ConsensusConfig) Validate() error {
	if c.Image == "" {
		return errorx.IllegalArgument.New("consensus image cannot be empty")
	}

	for _, p := range []int{c.RPCPort, c.GatewayPort} {
		if err := sanity.ValidatePort(p); err != nil {
			return errorx.IllegalArgument.Wrap(err, "invalid consensus port")
		}
	}

	if err := sanity.ValidateURL(c.CheckpointSyncURL, nil); err != nil {
		return errorx.IllegalArgument.Wrap(err, "invalid checkpoint sync url")
	}

	if err := sanity.ValidateURL(c.GenesisBeaconAPIURL, nil); err != nil {
		return errorx.IllegalArgument.Wrap(err, "invalid genesis beacon api url")
	}

	if c.MinSyncPeers < 1 {
		return errorx.IllegalArgument.New("minSyncPeers must be at least 1, got %d", c.MinSyncPeers)
	}

	return nil
}

// ServicePorts returns the six ports the services bind, in document order.
func (c Config) ServicePorts() []int {
	return []int{
		c.Execution.P2PPort,
		c.Execution.HTTPPort,
		c.Execution.WSPort,
		c.Execution.AuthRPCPort,
		c.Consensus.RPCPort,
		c.Consensus.GatewayPort,
	}
}

var globalConfig = Default()

// Default returns the built-in Sepolia deployment parameters.
func Default() Config {
	return Config{
		Log: logx.LoggingConfig{
			Level:          "info",
			ConsoleLogging: true,
			FileLogging:    false,
			Directory:      core.DefaultLogsDir,
			Filename:       "ethforge.log",
			MaxSize:        10,
			MaxBackups:     3,
			MaxAge:         28,
		},
		Network: core.NetworkSepolia,
		BaseDir: core.DefaultBaseDir,
		Execution: ExecutionConfig{
			Image:       "ethereum/client-go:stable",
			P2PPort:     30303,
			HTTPPort:    8545,
			WSPort:      8546,
			AuthRPCPort: 8551,
		},
		Consensus: ConsensusConfig{
			Image:               "gcr.io/prysmaticlabs/prysm/beacon-chain:stable",
			RPCPort:             4000,
			GatewayPort:         3500,
			CheckpointSyncURL:   "https://sepolia.beaconstate.info",
			GenesisBeaconAPIURL: "https://sepolia.beaconstate.info",
			MinSyncPeers:        3,
		},
		Firewall: FirewallConfig{
			SSHProfile: "OpenSSH",
		},
	}
}

// setDefaults registers every configuration key with viper. Keys unknown to
// viper are invisible to Unmarshal, so without this an ETHFORGE_* environment
// override for a key absent from the config file would be silently ignored.
func setDefaults(cfg Config) {
	viper.SetDefault("log.level", cfg.Log.Level)
	viper.SetDefault("log.consoleLogging", cfg.Log.ConsoleLogging)
	viper.SetDefault("log.fileLogging", cfg.Log.FileLogging)
	viper.SetDefault("log.directory", cfg.Log.Directory)
	viper.SetDefault("log.filename", cfg.Log.Filename)
	viper.SetDefault("log.maxSize", cfg.Log.MaxSize)
	viper.SetDefault("log.maxBackups", cfg.Log.MaxBackups)
	viper.SetDefault("log.maxAge", cfg.Log.MaxAge)
	viper.SetDefault("log.compress", cfg.Log.Compress)
	viper.SetDefault("network", cfg.Network)
	viper.SetDefault("baseDir", cfg.BaseDir)
	viper.SetDefault("execution.image", cfg.Execution.Image)
	viper.SetDefault("execution.p2pPort", cfg.Execution.P2PPort)
	viper.SetDefault("execution.httpPort", cfg.Execution.HTTPPort)
	viper.SetDefault("execution.wsPort", cfg.Execution.WSPort)
	viper.SetDefault("execution.authRpcPort", cfg.Execution.AuthRPCPort)
	viper.SetDefault("consensus.image", cfg.Consensus.Image)
	viper.SetDefault("consensus.rpcPort", cfg.Consensus.RPCPort)
	viper.SetDefault("consensus.gatewayPort", cfg.Consensus.GatewayPort)
	viper.SetDefault("consensus.checkpointSyncUrl", cfg.Consensus.CheckpointSyncURL)
	viper.SetDefault("consensus.genesisBeaconApiUrl", cfg.Consensus.GenesisBeaconAPIURL)
	viper.SetDefault("consensus.minSyncPeers", cfg.Consensus.MinSyncPeers)
	viper.SetDefault("firewall.sshProfile", cfg.Firewall.SSHProfile)
}

// Initialize loads the configuration. Precedence: ETHFORGE_* environment
// variables, then the config file (optional, empty path skips it), then the
// built-in defaults. The result is validated before it replaces the defaults.
func Initialize(path string) error {
	cfg := Default()

	viper.Reset()
	viper.SetEnvPrefix("ETHFORGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults(cfg)

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return NotFoundError.Wrap(err, "failed to read config file: %s", path).
				WithProperty(errorx.PropertyPayload(), path)
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return errorx.IllegalFormat.Wrap(err, "failed to parse configuration").
			WithProperty(errorx.PropertyPayload(), path)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	globalConfig = cfg
	return nil
}

// Get returns the loaded configuration.
func Get() Config {
	return globalConfig
}

// Set replaces the loaded configuration; used by tests.
func Set(c *Config) error {
	if err := c.Validate(); err != nil {
		return err
	}

	globalConfig = *c
	return nil
}
