package config

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// PromptToken reads an API token from the terminal without echo. In a
// non-interactive run (stdin not a terminal) a missing token is a
// configuration error rather than a prompt that would hang forever.
func PromptToken(label string) (string, error) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("%s API token not configured", label)
	}

	fmt.Fprintf(os.Stderr, "%s API token: ", label)

	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading %s API token: %w", label, err)
	}

	token := strings.TrimSpace(string(b))
	if token == "" {
		return "", fmt.Errorf("%s API token not provided", label)
	}

	return token, nil
}
