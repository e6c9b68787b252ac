// SPDX-License-Identifier: Apache-2.0

package network

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

const probeTimeout = 500 * time.Millisecond

// PortStatus describes whether a local TCP port currently has a listener.
type PortStatus struct {
	Port  int
	Bound bool
}

// ProbePort reports whether something is listening on the given local TCP port.
func ProbePort(port int) PortStatus {
	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(port))
	conn, err := net.DialTimeout("tcp", addr, probeTimeout)
	if err != nil {
		return PortStatus{Port: port, Bound: false}
	}

	_ = conn.Close()
	return PortStatus{Port: port, Bound: true}
}

// ProbePorts probes each port in order and returns one status per port.
func ProbePorts(ports []int) []PortStatus {
	statuses := make([]PortStatus, 0, len(ports))
	for _, p := range ports {
		statuses = append(statuses, ProbePort(p))
	}
	return statuses
}

// GetMachineIP retrieves the first non-loopback IPv4 address of the machine
func GetMachineIP() (string, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return "", err
	}
	for _, iface := range ifaces {
		// check if the interface is up and not a loopback
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			var ip net.IP
			switch v := addr.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			}
			if ip == nil || ip.IsLoopback() {
				continue
			}
			ip = ip.To4()
			if ip == nil {
				continue // not an ipv4 address
			}
			return ip.String(), nil
		}
	}
	return "", fmt.Errorf("no connected network interface found")
}
