package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wisptech/uisp-zabbix-sync/config"
	"github.com/wisptech/uisp-zabbix-sync/uisp"
	"github.com/wisptech/uisp-zabbix-sync/util"
)

// NewFetchCmd builds the 'fetch' command: retrieve the UISP device collection
// and save the raw JSON to a snapshot file. The snapshot can be fed to
// 'export --input' to avoid a second API fetch.
func NewFetchCmd(cfg *config.Config) *cobra.Command {
	output := ""

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the UISP device collection and save it to a JSON file",
		Long: `Retrieves all devices from the UISP/UNMS instance and writes the raw JSON
response to a snapshot file. The snapshot preserves every field the API
returns and can be passed to 'export --input' to export without a second
API fetch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = time.Now().Format("unms_devices_20060102_150405.json")
			}

			return fetchSnapshot(cmd.Context(), cfg.UISP, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Snapshot file name. Defaults to 'unms_devices_<yyyymmdd_HHMMSS>.json'")

	return cmd
}

func fetchSnapshot(ctx context.Context, cfg config.UISP, output string) error {
	if err := util.ValidateURL(cfg.URL); err != nil {
		return err
	}

	if err := ensureToken(&cfg.Token, "UISP"); err != nil {
		return err
	}

	util.Infof("Connecting to UNMS/UISP at %s", cfg.URL)

	client := uisp.NewClient(cfg)

	raw, err := client.RawDevices(ctx)
	if err != nil {
		util.Errorf("Failed to retrieve devices: %v", err)
		return err
	}

	devices, err := uisp.Decode(raw)
	if err != nil {
		return err
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, bytes.TrimSpace(raw), "", "  "); err != nil {
		return fmt.Errorf("formatting device JSON: %w", err)
	}

	if err := writeFile(output, pretty.Bytes()); err != nil {
		return err
	}

	util.Infof("Successfully saved %d devices to %s", len(devices), output)

	return nil
}
