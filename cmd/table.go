package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/receipts-report/internal/types"
)

// printTable writes rows as aligned, tab-separated columns.
func printTable(w io.Writer, header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// printReport writes a report table.
func printReport(w io.Writer, rep *types.Report) error {
	rows := make([][]string, len(rep.Rows))
	for i, row := range rep.Rows {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = formatValue(v)
		}
		rows[i] = cells
	}
	return printTable(w, rep.Header(), rows)
}

// printRecords writes input records in file column order.
func printRecords(w io.Writer, records []types.Record) error {
	header := []string{"BON_DAT", "LOYALITY_CUSTOMER_ID", "RECEIPT_ID", "RECEIPT_VALUE"}
	rows := make([][]string, len(records))
	for i, r := range records {
		loyalty := "-"
		if r.LoyaltyCustomerID != nil {
			loyalty = *r.LoyaltyCustomerID
		}
		rows[i] = []string{r.Date.Format(types.DateLayout), loyalty, r.ReceiptID, r.ReceiptValue.String()}
	}
	return printTable(w, header, rows)
}

// formatValue renders a report cell for the terminal.
func formatValue(v any) string {
	switch val := v.(type) {
	case decimal.Decimal:
		return val.StringFixed(2)
	case int:
		return strconv.Itoa(val)
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
