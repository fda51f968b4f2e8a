package render

import (
	"bufio"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Table writes a bordered plain-text table:
//
//	+----+------------------+
//	| id | email            |
//	+----+------------------+
//	| 1  | john@example.com |
//	+----+------------------+
//
// Column widths follow the display width of the cells, so wide runes keep the borders aligned.
func Table(w io.Writer, headers []string, rows [][]string) error {
	bw := bufio.NewWriter(w)

	table := tablewriter.NewWriter(bw)
	table.SetHeader(headers)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, row := range rows {
		table.Append(padRow(row, len(headers)))
	}
	table.Render()

	return bw.Flush()
}
