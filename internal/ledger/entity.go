// AngelaMos | 2026
// entity.go

// Package ledger holds the financial state of the business: bore projects
// on the revenue side, expenses on the cost side, and the derived net
// position. State is in-memory only and dies with the process.
package ledger

import "github.com/shreeram-borwells/srb-backend/internal/money"

const (
	StatusPlanning = "Planning"
	StatusActive   = "Active"
	StatusComplete = "Complete"
)

// Bore is a billable drilling project. TotalCost and CostGiven are stored
// as rupee display strings; LeftAmount and LeftMoney are always derived
// from that pair, never written directly.
type Bore struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Size        string  `json:"size"`
	Depth       string  `json:"depth"`
	Date        string  `json:"date"`
	TotalCost   string  `json:"totalCost"`
	CostGiven   string  `json:"costGiven"`
	LeftAmount  float64 `json:"leftAmount"`
	LeftMoney   string  `json:"leftMoney"`
	Status      string  `json:"status"`
	AuditorName string  `json:"auditorName"`
}

// recompute rederives the paid/outstanding figures from the stored pair.
func (b *Bore) recompute() {
	d := money.ComputeDelta(money.Parse(b.TotalCost), money.Parse(b.CostGiven))
	b.LeftAmount = d.LeftAmount
	b.LeftMoney = d.LeftDisplay
	b.TotalCost = d.TotalDisplay
	b.CostGiven = d.GivenDisplay
}

// Expense is a cost entry. Immutable after creation except for deletion.
type Expense struct {
	ID              int64   `json:"id"`
	Date            string  `json:"date"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	Amount          float64 `json:"amount"`
	FormattedAmount string  `json:"formattedAmount"`
	AuditorName     string  `json:"auditorName"`
}

// Totals is the derived aggregate position. Recomputed on every read.
type Totals struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetPosition   float64 `json:"netPosition"`

	TotalRevenueDisplay  string `json:"totalRevenueDisplay"`
	TotalExpensesDisplay string `json:"totalExpensesDisplay"`
	NetPositionDisplay   string `json:"netPositionDisplay"`
}
