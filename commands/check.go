package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wisptech/uisp-zabbix-sync/config"
	"github.com/wisptech/uisp-zabbix-sync/inventory"
	"github.com/wisptech/uisp-zabbix-sync/spreadsheet"
	"github.com/wisptech/uisp-zabbix-sync/util"
	"github.com/wisptech/uisp-zabbix-sync/zabbix"
)

// NewCheckCmd builds the 'check' command: annotate a workbook's rows with
// their presence in the Zabbix host inventory.
func NewCheckCmd(cfg *config.Config) *cobra.Command {
	file := DefaultExportFile

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check which IP addresses in a workbook are monitored by Zabbix",
		Long: `Reads an xlsx workbook with an 'ip_address' column, looks every address up
in the Zabbix host inventory (every interface of every host) and writes a
copy of the workbook with each row tagged 'exist' or 'not exist' in the
'zabbix' column. Rows with an empty address are left untagged.

The result is written to a new file named after the input with a date
suffix, e.g. device_data_export_result_20260829.xlsx.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkIPs(cmd.Context(), cfg.Zabbix, file)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", file, "Input workbook with an 'ip_address' column")

	return cmd
}

func checkIPs(ctx context.Context, cfg config.Zabbix, file string) error {
	output := resultFile(file, time.Now())

	util.Infof("Reading data from %s", file)

	table, err := spreadsheet.Read(file)
	if err != nil {
		return err
	}

	if table.Column(inventory.ColumnIP) < 0 {
		return fmt.Errorf("%w: column '%s' not found in %s", util.ErrMissingColumn, inventory.ColumnIP, file)
	}

	if err := util.ValidateURL(cfg.URL); err != nil {
		return err
	}

	if err := ensureToken(&cfg.Token, "Zabbix"); err != nil {
		return err
	}

	util.Infof("Connecting to Zabbix API at %s", cfg.URL)

	client := zabbix.NewClient(cfg)

	version, err := client.APIVersion(ctx)
	if err != nil {
		return err
	}

	util.Infof("Connected to Zabbix API version %s", version)
	util.Infof("Retrieving hosts from Zabbix")

	hosts, err := client.Hosts(ctx)
	if err != nil {
		return err
	}

	index := inventory.BuildIndex(hosts)

	util.Infof("Retrieved %d unique IP addresses from Zabbix", len(index))

	matched, err := inventory.Annotate(table, index)
	if err != nil {
		return err
	}

	util.Infof("Saving results to new file: %s", output)

	if err := spreadsheet.Write(output, table); err != nil {
		return err
	}

	util.Infof("Results saved successfully with %d matched IPs", matched)

	return nil
}

// resultFile inserts a date-stamped suffix between the input file's stem and
// extension: devices.xlsx becomes devices_result_20260829.xlsx.
func resultFile(path string, now time.Time) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)

	return fmt.Sprintf("%s_result_%s%s", stem, now.Format("20060102"), ext)
}
