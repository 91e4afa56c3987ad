package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wisptech/uisp-zabbix-sync/cli"
	"github.com/wisptech/uisp-zabbix-sync/config"
	"github.com/wisptech/uisp-zabbix-sync/inventory"
	"github.com/wisptech/uisp-zabbix-sync/uisp"
	"github.com/wisptech/uisp-zabbix-sync/util"
)

// NewDevicesCmd builds the 'devices' command: print a console summary of the
// UISP device collection.
func NewDevicesCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "Print a summary of the UISP device collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := util.ValidateURL(cfg.UISP.URL); err != nil {
				return err
			}

			if err := ensureToken(&cfg.UISP.Token, "UISP"); err != nil {
				return err
			}

			util.Infof("Connecting to UNMS/UISP at %s", cfg.UISP.URL)

			client := uisp.NewClient(cfg.UISP)

			devices, err := client.Devices(cmd.Context())
			if err != nil {
				util.Errorf("Failed to retrieve devices: %v", err)
				return err
			}

			summarize(os.Stdout, devices)

			return nil
		},
	}
}

func summarize(w io.Writer, devices []uisp.Device) {
	if len(devices) == 0 {
		fmt.Fprintln(w, "No devices found")
		return
	}

	fmt.Fprintf(w, "Found %d devices:\n", len(devices))

	table := cli.NewTable(w, "NAME", "MODEL", "IP ADDRESS", "STATUS").WithWidths(30, 20, 15, 10)

	for _, device := range devices {
		row := inventory.Flatten(device)
		table.Row(row.Name, row.ModelName, row.IPAddress, row.Status)
	}

	table.Flush()
}
