// SPDX-License-Identifier: Apache-2.0

// Package sysctl tunes the kernel network buffers the p2p discovery
// protocol depends on. Both clients use discv5 over UDP; the kernel
// defaults for UDP socket buffers are far below what a well-peered node
// sustains.
package sysctl

import (
	"strconv"

	"github.com/joomcode/errorx"
	sysctllib "github.com/lorenzosaino/go-sysctl"
)

var (
	ErrNamespace = errorx.NewNamespace("sysctl")
	TuneError    = ErrNamespace.NewType("tune")
)

// Setting is a sysctl key with the minimum value provisioning enforces.
type Setting struct {
	Key string
	Min int64
}

// P2PSettings returns the UDP buffer floors for discv5 traffic.
func P2PSettings() []Setting {
	return []Setting{
		{Key: "net.core.rmem_max", Min: 16 << 20},
		{Key: "net.core.wmem_max", Min: 16 << 20},
	}
}

// use vars to allow stubbing in tests
var (
	getSysctl = sysctllib.Get
	setSysctl = sysctllib.Set
)

// EnsureMinimum raises the setting to its floor when the current value is
// lower, and leaves higher values alone. It reports whether a change was made.
func EnsureMinimum(s Setting) (bool, error) {
	raw, err := getSysctl(s.Key)
	if err != nil {
		return false, TuneError.Wrap(err, "failed to read sysctl %q", s.Key)
	}

	current, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return false, TuneError.Wrap(err, "sysctl %q has non-numeric value %q", s.Key, raw)
	}

	if current >= s.Min {
		return false, nil
	}

	if err := setSysctl(s.Key, strconv.FormatInt(s.Min, 10)); err != nil {
		return false, TuneError.Wrap(err, "failed to set sysctl %q", s.Key)
	}

	return true, nil
}
