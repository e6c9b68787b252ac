// SPDX-License-Identifier: Apache-2.0

package network

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProbePort(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port

	status := ProbePort(port)
	require.Equal(t, port, status.Port)
	require.True(t, status.Bound)

	require.NoError(t, ln.Close())

	status = ProbePort(port)
	require.False(t, status.Bound)
}

func TestProbePorts(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = ln.Close() }()
	boundPort := ln.Addr().(*net.TCPAddr).Port

	// find a port that is certainly free by binding and releasing it
	probe, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	freePort := probe.Addr().(*net.TCPAddr).Port
	require.NoError(t, probe.Close())

	statuses := ProbePorts([]int{boundPort, freePort})
	require.Len(t, statuses, 2)
	require.True(t, statuses[0].Bound)
	require.False(t, statuses[1].Bound)
}
