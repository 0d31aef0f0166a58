package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/addin-tools/addin/internal/profiles"
	"github.com/spf13/cobra"
)

// promptFor asks the user for a missing argument value and returns the
// trimmed line. An optional default is used when the answer is empty.
func promptFor(cmd *cobra.Command, label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: ", label)
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return def, nil
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

// resolveApplication validates a user-supplied application name.
func resolveApplication(name string) (profiles.Application, profiles.Profile, error) {
	if strings.TrimSpace(name) == "" {
		return "", profiles.Profile{}, fmt.Errorf("an application is required (one of %s)", strings.Join(profiles.Names(), ", "))
	}
	return profiles.Lookup(name)
}
