package store

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Shell runs a script in the host scripting interface and returns its
// standard output. Implementations must terminate the subprocess on
// every exit path, including errors and context cancellation.
type Shell interface {
	Run(ctx context.Context, script string) (string, error)
}

// PowerShell runs scripts through powershell.exe, one process per call.
type PowerShell struct {
	// Exe is the interpreter to invoke, overridable for tests.
	Exe string
}

// NewPowerShell returns a Shell backed by powershell.exe.
func NewPowerShell() *PowerShell {
	return &PowerShell{Exe: "powershell.exe"}
}

// Run executes the script and waits for completion. CommandContext
// kills the process if the context expires, so no host process can
// outlive the call.
func (p *PowerShell) Run(ctx context.Context, script string) (string, error) {
	cmd := exec.CommandContext(ctx, p.Exe,
		"-NoProfile", "-NonInteractive", "-ExecutionPolicy", "Bypass", "-Command", "-")
	cmd.Stdin = strings.NewReader(script)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stdout.String(), fmt.Errorf("powershell: %v: %s", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}
