// AngelaMos | 2026
// report_test.go

package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shreeram-borwells/srb-backend/internal/ledger"
)

func TestGenerate(t *testing.T) {
	now := time.Date(2026, 2, 14, 10, 30, 0, 0, time.UTC)

	bores := []ledger.Bore{
		{
			ID: 1, Name: "Site A", Size: "6.5 inch", Depth: "1000 ft",
			Date: "2025-10-20", TotalCost: "₹ 1,00,000",
			CostGiven: "₹ 40,000", LeftMoney: "₹ 60,000",
			Status: "Active", AuditorName: "Vivek Sharma",
		},
	}
	expenses := []ledger.Expense{
		{
			ID: 101, Date: "2025-11-20", Category: "Diesel",
			Description: "Fuel refill", Amount: 5000,
			AuditorName: "Ajay Kumar",
		},
	}

	out := Generate(bores, expenses, now)
	lines := strings.Split(out, "\n")

	assert.Equal(t,
		"Shree Ram Borwells Financial Report Generated On: 2026-02-14",
		lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "--- REVENUE (BORE PROJECTS) ---", lines[2])
	assert.Equal(t,
		"Project Name,Date,Size (Inch),Depth (ft),Total Cost (₹),"+
			"Amount Given (₹),Amount Left (₹),Status,Auditor Name",
		lines[3])

	// Numeric columns carry no grouping commas; size/depth units stripped.
	assert.Equal(t,
		`"Site A",2025-10-20,6.5,1000,100000,40000,60000,Active,"Vivek Sharma"`,
		lines[4])

	assert.Equal(t, "", lines[5])
	assert.Equal(t, "--- EXPENSES ---", lines[6])
	assert.Equal(t,
		"Date,Category,Description,Amount (₹),Auditor Name",
		lines[7])
	assert.Equal(t,
		`2025-11-20,Diesel,"Fuel refill",5000,"Ajay Kumar"`,
		lines[8])
}

func TestGenerateEmptyLedger(t *testing.T) {
	out := Generate(nil, nil, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	require.Contains(t, out, "--- REVENUE (BORE PROJECTS) ---")
	require.Contains(t, out, "--- EXPENSES ---")

	// Both sections reduce to their header rows.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 7)
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 2, 14, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "ShreeRamBorwells_Report_2026-02-14.csv", Filename(now))
}
