package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wisptech/uisp-zabbix-sync/config"
	"github.com/wisptech/uisp-zabbix-sync/inventory"
	"github.com/wisptech/uisp-zabbix-sync/spreadsheet"
	"github.com/wisptech/uisp-zabbix-sync/uisp"
	"github.com/wisptech/uisp-zabbix-sync/util"
)

// DefaultExportFile is the workbook name shared by 'export' and 'check'.
const DefaultExportFile = "device_data_export.xlsx"

// NewExportCmd builds the 'export' command: flatten the UISP device
// collection into a single-sheet workbook.
func NewExportCmd(cfg *config.Config) *cobra.Command {
	input := ""
	output := DefaultExportFile

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the UISP device collection to an xlsx workbook",
		Long: `Fetches all devices from the UISP/UNMS instance (or reads a JSON snapshot
written by 'fetch') and writes one row per device to a single-sheet xlsx
workbook, with a header row naming the columns:

  site_name, site_type, mac, name, model_name, role, status, ip_address`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return export(cmd.Context(), cfg.UISP, input, output)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", input, "JSON snapshot file written by 'fetch'. When set, no API fetch is made")
	cmd.Flags().StringVarP(&output, "output", "o", output, "Workbook file name")

	return cmd
}

func export(ctx context.Context, cfg config.UISP, input string, output string) error {
	var devices []uisp.Device

	if input != "" {
		raw, err := os.ReadFile(input)
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", util.ErrFileNotFound, input)
		} else if err != nil {
			return err
		}

		if devices, err = uisp.Decode(raw); err != nil {
			return err
		}

		util.Infof("Read %d devices from %s", len(devices), input)
	} else {
		if err := util.ValidateURL(cfg.URL); err != nil {
			return err
		}

		if err := ensureToken(&cfg.Token, "UISP"); err != nil {
			return err
		}

		util.Infof("Connecting to UNMS/UISP at %s", cfg.URL)

		client := uisp.NewClient(cfg)

		var err error
		if devices, err = client.Devices(ctx); err != nil {
			util.Errorf("Failed to retrieve devices: %v", err)
			return err
		}
	}

	if err := spreadsheet.Write(output, inventory.Tabulate(devices)); err != nil {
		return err
	}

	util.Infof("Exported %d devices to %s", len(devices), output)

	return nil
}
