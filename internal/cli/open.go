package cli

import (
	"fmt"
	"os/exec"
	"runtime"
)

// openDocument hands a generated document to the OS default viewer.
// It uses open on macOS, the start builtin on Windows, and xdg-open
// elsewhere.
func openDocument(path string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		if _, err := exec.LookPath("xdg-open"); err != nil {
			return fmt.Errorf("no document viewer found: install xdg-open")
		}
		cmd = exec.Command("xdg-open", path)
	}

	return cmd.Start()
}
