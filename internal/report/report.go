// AngelaMos | 2026
// report.go

// Package report renders the financial CSV download. The layout is fixed:
// downstream spreadsheets depend on the exact section markers and column
// order, so nothing here is configurable.
package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/shreeram-borwells/srb-backend/internal/ledger"
	"github.com/shreeram-borwells/srb-backend/internal/money"
)

var boreHeaders = []string{
	"Project Name",
	"Date",
	"Size (Inch)",
	"Depth (ft)",
	"Total Cost (₹)",
	"Amount Given (₹)",
	"Amount Left (₹)",
	"Status",
	"Auditor Name",
}

var expenseHeaders = []string{
	"Date",
	"Category",
	"Description",
	"Amount (₹)",
	"Auditor Name",
}

// Filename builds the download name stamped with the generation date.
func Filename(now time.Time) string {
	return "ShreeRamBorwells_Report_" + now.Format("2006-01-02") + ".csv"
}

// Generate produces the full report. Numeric columns are re-parsed from
// their display strings so no grouping commas leak into the data. Quoted
// fields do not escape embedded quotes; that limitation is part of the
// format.
func Generate(bores []ledger.Bore, expenses []ledger.Expense, now time.Time) string {
	var b strings.Builder

	b.WriteString("Shree Ram Borwells Financial Report Generated On: ")
	b.WriteString(now.Format("2006-01-02"))
	b.WriteString("\n\n")

	b.WriteString("--- REVENUE (BORE PROJECTS) ---\n")
	b.WriteString(strings.Join(boreHeaders, ","))
	b.WriteString("\n")

	for _, bore := range bores {
		row := []string{
			quote(bore.Name),
			bore.Date,
			strings.ReplaceAll(bore.Size, " inch", ""),
			strings.ReplaceAll(bore.Depth, " ft", ""),
			num(money.Parse(bore.TotalCost)),
			num(money.Parse(bore.CostGiven)),
			num(money.Parse(bore.LeftMoney)),
			bore.Status,
			quote(bore.AuditorName),
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteString("\n")
	}

	b.WriteString("\n--- EXPENSES ---\n")
	b.WriteString(strings.Join(expenseHeaders, ","))
	b.WriteString("\n")

	for _, expense := range expenses {
		row := []string{
			expense.Date,
			expense.Category,
			quote(expense.Description),
			num(expense.Amount),
			quote(expense.AuditorName),
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteString("\n")
	}

	return b.String()
}

func quote(s string) string {
	return `"` + s + `"`
}

func num(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
