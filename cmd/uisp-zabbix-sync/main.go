package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wisptech/uisp-zabbix-sync/commands"
	"github.com/wisptech/uisp-zabbix-sync/config"
	"github.com/wisptech/uisp-zabbix-sync/util"
)

var (
	cfgFile string
	envFile string
	verbose bool

	conf = config.NewConfig()
)

var rootCmd = &cobra.Command{
	Use:           "uisp-zabbix-sync",
	Short:         "Reconcile device inventory between UISP and Zabbix",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `uisp-zabbix-sync reconciles device inventory between a UISP/UNMS instance
and a Zabbix monitoring system, using xlsx workbooks as the exchange format.

A typical run:

  uisp-zabbix-sync export                 # UISP devices -> device_data_export.xlsx
  uisp-zabbix-sync check                  # tag each row exist / not exist in Zabbix

Server URLs and API tokens are read from a YAML configuration file, a .env
file or the environment (UNMS_SERVER, UNMS_API_KEY, ZABBIX_SERVER,
ZABBIX_API_KEY).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := conf.Load(cfgFile, envFile); err != nil {
			return err
		}

		if verbose {
			conf.Log.Level = "debug"
		}

		if err := util.SetLogLevel(conf.Log.Level); err != nil {
			return err
		}

		if conf.Log.File != "" {
			if err := util.SetLogFile(conf.Log.File); err != nil {
				return err
			}
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Configuration file (YAML)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", ".env file with server URLs and API tokens")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		commands.NewFetchCmd(conf),
		commands.NewExportCmd(conf),
		commands.NewCheckCmd(conf),
		commands.NewDevicesCmd(conf),
		commands.NewPublishCmd(conf),
		commands.NewVersionCmd(),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		util.Errorf("%v", err)
		os.Exit(1)
	}
}
