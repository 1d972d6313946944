// Package network
package network

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/net"

	"sysreport/internal/logger"
)

// maxConnections caps the active-connection listing, busy hosts can
// have thousands of sockets.
const maxConnections = 20

type Collector struct {
	log logger.Logger
}

func NewCollector(log logger.Logger) *Collector {
	return &Collector{log: log}
}

func (c *Collector) Name() string  { return "network" }
func (c *Collector) Title() string { return "Network" }

func (c *Collector) Collect(ctx context.Context) (string, error) {
	ifaces, err := net.InterfacesWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list interfaces: %w", err)
	}

	var b strings.Builder
	b.WriteString("Interfaces:\n")
	for _, iface := range ifaces {
		addrs := make([]string, 0, len(iface.Addrs))
		for _, a := range iface.Addrs {
			addrs = append(addrs, a.Addr)
		}
		if len(addrs) == 0 {
			addrs = append(addrs, "-")
		}
		fmt.Fprintf(&b, "%-16s mtu %-5d %-24s %s\n", iface.Name, iface.MTU, strings.Join(iface.Flags, ","), strings.Join(addrs, " "))
	}

	b.WriteString("\nActive connections:\n")
	conns, err := net.ConnectionsWithContext(ctx, "inet")
	if err != nil {
		c.log.Warn("failed to list connections", "error", err)
		fmt.Fprintf(&b, "[unavailable: %v]\n", err)
		return b.String(), nil
	}

	shown := 0
	for _, conn := range conns {
		if conn.Status != "LISTEN" && conn.Status != "ESTABLISHED" {
			continue
		}
		if shown >= maxConnections {
			fmt.Fprintf(&b, "... (%d more)\n", countActive(conns)-shown)
			break
		}
		fmt.Fprintf(&b, "%-5s %-24s %-24s %s\n",
			protoName(conn),
			endpoint(conn.Laddr),
			endpoint(conn.Raddr),
			conn.Status,
		)
		shown++
	}
	if shown == 0 {
		b.WriteString("none\n")
	}

	return b.String(), nil
}

func countActive(conns []net.ConnectionStat) int {
	n := 0
	for _, conn := range conns {
		if conn.Status == "LISTEN" || conn.Status == "ESTABLISHED" {
			n++
		}
	}
	return n
}

func endpoint(addr net.Addr) string {
	if addr.IP == "" {
		return "-"
	}
	return fmt.Sprintf("%s:%d", addr.IP, addr.Port)
}

func protoName(conn net.ConnectionStat) string {
	// SOCK_STREAM = 1, SOCK_DGRAM = 2
	switch conn.Type {
	case 1:
		return "tcp"
	case 2:
		return "udp"
	default:
		return fmt.Sprintf("type%d", conn.Type)
	}
}
