// Package inventory implements the device-inventory reconciliation logic:
// flattening UISP device records into tabular rows, indexing Zabbix host
// interfaces by IP, and annotating rows with their Zabbix membership.
package inventory

import (
	"strings"

	"github.com/wisptech/uisp-zabbix-sync/spreadsheet"
	"github.com/wisptech/uisp-zabbix-sync/uisp"
)

// Row is the tabular projection of one UISP device. Every field defaults to
// the empty string when the source record omits the corresponding object.
type Row struct {
	SiteName  string
	SiteType  string
	MAC       string
	Name      string
	ModelName string
	Role      string
	Status    string
	IPAddress string
}

// Columns is the export column order. ColumnIP and ColumnZabbix are the two
// columns the check stage matches by exact name.
var Columns = []string{"site_name", "site_type", "mac", "name", "model_name", "role", "status", "ip_address"}

const (
	ColumnIP     = "ip_address"
	ColumnZabbix = "zabbix"
)

// Flatten maps a device record to a row. Missing nested objects resolve to
// empty fields rather than failing, and ip_address is the part of the raw
// address before any '/mask' suffix.
func Flatten(device uisp.Device) Row {
	row := Row{}

	if id := device.Identification; id != nil {
		row.MAC = id.MAC
		row.Name = id.Name
		row.ModelName = id.Model
		row.Role = id.Role

		if site := id.Site; site != nil {
			row.SiteName = site.Name
			row.SiteType = site.Type
		}
	}

	if overview := device.Overview; overview != nil {
		row.Status = overview.Status
	}

	if device.IPAddress != "" {
		row.IPAddress = strings.Split(device.IPAddress, "/")[0]
	}

	return row
}

func (r Row) values() []string {
	return []string{r.SiteName, r.SiteType, r.MAC, r.Name, r.ModelName, r.Role, r.Status, r.IPAddress}
}

// Tabulate builds the export table for a list of devices, one record per
// device, input order preserved.
func Tabulate(devices []uisp.Device) *spreadsheet.Table {
	table := spreadsheet.Table{
		Header:  Columns,
		Records: [][]string{},
	}

	for _, device := range devices {
		table.Records = append(table.Records, Flatten(device).values())
	}

	return &table
}
