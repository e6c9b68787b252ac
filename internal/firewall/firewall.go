// SPDX-License-Identifier: Apache-2.0

// Package firewall drives ufw idempotently: rules already present and an
// already-enabled firewall are skipped, so re-running provisioning never
// duplicates rules or disrupts established state.
package firewall

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/joomcode/errorx"
)

var (
	ErrNamespace  = errorx.NewNamespace("firewall")
	CommandError  = ErrNamespace.NewType("command")
	NotInstalledE = ErrNamespace.NewType("not_installed")
)

// Runner executes a firewall CLI command and returns its combined output.
type Runner interface {
	Run(name string, args ...string) (string, error)
}

type execRunner struct{}

func (execRunner) Run(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).CombinedOutput()
	return string(out), err
}

// Manager wraps the ufw CLI.
type Manager struct {
	runner Runner
}

type option func(*Manager)

// WithRunner replaces the command runner; used by tests.
func WithRunner(r Runner) option {
	return func(m *Manager) {
		m.runner = r
	}
}

func NewManager(opts ...option) *Manager {
	m := &Manager{runner: execRunner{}}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) status() (string, error) {
	out, err := m.runner.Run("ufw", "status")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", NotInstalledE.Wrap(err, "ufw is not installed")
		}
		return "", CommandError.Wrap(err, "ufw status failed: %s", strings.TrimSpace(out))
	}
	return out, nil
}

// IsActive reports whether the firewall is currently enabled.
func (m *Manager) IsActive() (bool, error) {
	out, err := m.status()
	if err != nil {
		return false, err
	}

	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "Status:") {
			return strings.Contains(line, "active"), nil
		}
	}

	return false, nil
}

// HasRule reports whether an allow rule for the given target (a port/proto
// like "30303/tcp" or an application profile like "OpenSSH") is present.
func (m *Manager) HasRule(target string) (bool, error) {
	out, err := m.status()
	if err != nil {
		return false, err
	}

	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[0] == target && strings.HasPrefix(fields[1], "ALLOW") {
			return true, nil
		}
	}

	return false, nil
}

// Allow ensures an allow rule for target exists. It reports whether a rule
// was added (false means it was already present).
func (m *Manager) Allow(target string) (bool, error) {
	present, err := m.HasRule(target)
	if err != nil {
		return false, err
	}

	if present {
		return false, nil
	}

	out, err := m.runner.Run("ufw", "allow", target)
	if err != nil {
		return false, CommandError.Wrap(err, "ufw allow %s failed: %s", target, strings.TrimSpace(out))
	}

	return true, nil
}

// Enable turns the firewall on non-interactively. It reports whether a state
// change happened (false means it was already active).
func (m *Manager) Enable() (bool, error) {
	active, err := m.IsActive()
	if err != nil {
		return false, err
	}

	if active {
		return false, nil
	}

	out, err := m.runner.Run("ufw", "--force", "enable")
	if err != nil {
		return false, CommandError.Wrap(err, "ufw enable failed: %s", strings.TrimSpace(out))
	}

	return true, nil
}
