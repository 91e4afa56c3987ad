// Package commands implements the uisp-zabbix-sync subcommands. Each command
// is a single linear pass: fetch or read, transform, write, no retries and no
// persistent state.
package commands

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/wisptech/uisp-zabbix-sync/config"
)

// ensureToken prompts for an API token when the configuration carries none.
func ensureToken(token *string, label string) error {
	if strings.TrimSpace(*token) != "" {
		return nil
	}

	v, err := config.PromptToken(label)
	if err != nil {
		return err
	}

	*token = v

	return nil
}

// writeFile writes data to a temporary file in the destination directory and
// renames it into place, so a failed write leaves no new output file.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".uzs-*")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
