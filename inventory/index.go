package inventory

import (
	"fmt"
	"strings"

	"github.com/wisptech/uisp-zabbix-sync/spreadsheet"
	"github.com/wisptech/uisp-zabbix-sync/util"
	"github.com/wisptech/uisp-zabbix-sync/zabbix"
)

// Annotation values written to the 'zabbix' column.
const (
	Exists    = "exist"
	NotExists = "not exist"
)

// Index maps interface IP addresses to the owning host's technical name. It
// is rebuilt from the live host list on every run and never persisted.
type Index map[string]string

// BuildIndex indexes every interface of every host by IP, in response order.
// A later host sharing an IP overwrites an earlier one (last-write-wins); the
// overwrite is surfaced as a debug diagnostic rather than an error.
func BuildIndex(hosts []zabbix.Host) Index {
	index := Index{}

	for _, host := range hosts {
		for _, ifc := range host.Interfaces {
			if ifc.IP == "" {
				continue
			}

			if previous, ok := index[ifc.IP]; ok && previous != host.Host {
				util.Debugf("IP %s on host %s already indexed for host %s - keeping %s", ifc.IP, host.Host, previous, host.Host)
			}

			index[ifc.IP] = host.Host
		}
	}

	return index
}

// Annotate tags every record of the table in the 'zabbix' column: 'exist' if
// the record's whitespace-trimmed ip_address is in the index, 'not exist' if
// it is not, untouched if it is empty. The column is appended to the table if
// absent. Returns the number of records whose IP was found in the index.
//
// The table must have an 'ip_address' column (exact, case-sensitive name);
// without one the whole operation fails with an error wrapping
// util.ErrMissingColumn and the table is left unmodified.
func Annotate(table *spreadsheet.Table, index Index) (int, error) {
	ip := table.Column(ColumnIP)
	if ip < 0 {
		return 0, fmt.Errorf("%w: column '%s' not found in the input file", util.ErrMissingColumn, ColumnIP)
	}

	tag := table.Column(ColumnZabbix)
	if tag < 0 {
		tag = len(table.Header)
		table.Header = append(table.Header, ColumnZabbix)
	}

	matched := 0

	for i, record := range table.Records {
		for len(record) <= tag {
			record = append(record, "")
		}

		address := strings.TrimSpace(record[ip])
		if address != "" {
			if host, ok := index[address]; ok {
				record[tag] = Exists
				matched++
				util.Debugf("IP %s found in Zabbix as host %s", address, host)
			} else {
				record[tag] = NotExists
				util.Debugf("IP %s not found in Zabbix", address)
			}
		}

		table.Records[i] = record
	}

	return matched, nil
}
