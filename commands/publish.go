package commands

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/wisptech/uisp-zabbix-sync/config"
	"github.com/wisptech/uisp-zabbix-sync/spreadsheet"
	"github.com/wisptech/uisp-zabbix-sync/util"
)

var spreadsheetURL = regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`)
var rangeFormat = regexp.MustCompile(`(.+?)!([a-zA-Z]+)([0-9]+):([a-zA-Z]+)([0-9]+)?`)

// NewPublishCmd builds the 'publish' command: upload a local workbook to a
// Google Sheets worksheet range.
func NewPublishCmd(cfg *config.Config) *cobra.Command {
	credentials := ""
	url := ""
	area := ""
	file := DefaultExportFile

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload a local workbook to a Google Sheets worksheet",
		Long: `Uploads the header and rows of a local xlsx workbook to a Google Sheets
worksheet range, for teams that keep the reconciliation sheet in Drive.

Authorization uses an OAuth2 credentials file; tokens are cached next to it
after the initial console authorization flow.

Example:
  uisp-zabbix-sync publish --credentials credentials.json \
                           --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \
                           --range "Devices!A1:I" \
                           --file device_data_export.xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if credentials == "" {
				credentials = cfg.Google.Credentials
			}

			if strings.TrimSpace(credentials) == "" {
				return fmt.Errorf("--credentials is a required option")
			}

			if strings.TrimSpace(url) == "" {
				return fmt.Errorf("--url is a required option")
			}

			if strings.TrimSpace(area) == "" {
				return fmt.Errorf("--range is a required option")
			}

			match := spreadsheetURL.FindStringSubmatch(strings.TrimSpace(url))
			if len(match) < 2 {
				return fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
			}

			spreadsheetId := match[1]

			util.Debugf("Spreadsheet - ID:%s  range:%s", spreadsheetId, area)

			table, err := spreadsheet.Read(file)
			if err != nil {
				return err
			}

			header, data, err := tableToValueRanges(table, area)
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			client, err := authorize(ctx, credentials, "https://www.googleapis.com/auth/spreadsheets")
			if err != nil {
				return fmt.Errorf("authentication/authorization error (%v)", err)
			}

			google, err := sheets.NewService(ctx, option.WithHTTPClient(client))
			if err != nil {
				return fmt.Errorf("unable to create new Sheets client (%v)", err)
			}

			rq := sheets.BatchUpdateValuesRequest{
				ValueInputOption: "USER_ENTERED",
				Data:             []*sheets.ValueRange{header, data},
			}

			if _, err := google.Spreadsheets.Values.BatchUpdate(spreadsheetId, &rq).Context(ctx).Do(); err != nil {
				return fmt.Errorf("unable to update sheet (%v)", err)
			}

			util.Infof("Uploaded %s to Google Sheets %s", file, area)

			return nil
		},
	}

	cmd.Flags().StringVar(&credentials, "credentials", credentials, "Path for the OAuth2 'credentials.json' file")
	cmd.Flags().StringVar(&url, "url", url, "Spreadsheet URL")
	cmd.Flags().StringVar(&area, "range", area, "Worksheet range e.g. 'Devices!A1:I'")
	cmd.Flags().StringVarP(&file, "file", "f", file, "Workbook to upload")

	return cmd
}

// tableToValueRanges splits a table into a header ValueRange and a data
// ValueRange for a worksheet area like 'Devices!A1:I'.
func tableToValueRanges(table *spreadsheet.Table, area string) (*sheets.ValueRange, *sheets.ValueRange, error) {
	match := rangeFormat.FindStringSubmatch(area)
	if len(match) < 5 {
		return nil, nil, fmt.Errorf("invalid worksheet range '%s' - expected something like 'Devices!A1:I'", area)
	}

	name := match[1]
	left := match[2]
	top, _ := strconv.Atoi(match[3])
	right := match[4]

	h := make([]interface{}, len(table.Header))
	for i, v := range table.Header {
		h[i] = v
	}

	header := sheets.ValueRange{
		Range:  fmt.Sprintf("%s!%s%v:%s%v", name, left, top, right, top),
		Values: [][]interface{}{h},
	}

	rows := make([][]interface{}, 0, len(table.Records))
	for _, record := range table.Records {
		row := make([]interface{}, len(record))
		for i, v := range record {
			row[i] = v
		}

		rows = append(rows, row)
	}

	data := sheets.ValueRange{
		Range:  fmt.Sprintf("%s!%s%v:%s", name, left, top+1, right),
		Values: rows,
	}

	return &header, &data, nil
}
