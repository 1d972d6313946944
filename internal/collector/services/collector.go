// Package services reports systemd units in a failed state.
package services

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// NotApplicable is the section body emitted on hosts without a
// unit-based service manager.
const NotApplicable = "not applicable (no systemd unit manager)\n"

// Runner abstracts command execution so the collector can be tested
// without a real systemd on the host.
type Runner interface {
	LookPath(name string) (string, error)
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (execRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

type Collector struct {
	runner Runner
}

func NewCollector() *Collector {
	return &Collector{runner: execRunner{}}
}

func (c *Collector) Name() string  { return "services" }
func (c *Collector) Title() string { return "Failed Services" }

func (c *Collector) Collect(ctx context.Context) (string, error) {
	if _, err := c.runner.LookPath("systemctl"); err != nil {
		return NotApplicable, nil
	}

	out, err := c.runner.Output(ctx, "systemctl", "--failed", "--plain", "--no-legend")
	if err != nil {
		return "", fmt.Errorf("systemctl --failed: %w", err)
	}

	body := strings.TrimSpace(string(out))
	if body == "" {
		return "No failed units.\n", nil
	}
	return body + "\n", nil
}
