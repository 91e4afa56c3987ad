/*
Package uisp-zabbix-sync reconciles device inventory between a UISP/UNMS
network-management instance and a Zabbix monitoring system, using xlsx
workbooks as the intermediate data-exchange format.

uisp-zabbix-sync supports the following commands:

  - fetch, to save the raw UISP device collection to a JSON snapshot file
  - export, to flatten the UISP device collection into an xlsx workbook
  - check, to tag each workbook row 'exist' / 'not exist' against the Zabbix host inventory
  - devices, to print a console summary of the UISP device collection
  - publish, to upload a workbook to a Google Sheets worksheet
  - version, to print the build version
*/
package sync
