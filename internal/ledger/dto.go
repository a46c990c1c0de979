// AngelaMos | 2026
// dto.go

package ledger

type AddBoreRequest struct {
	Name      string `json:"name"      validate:"required"`
	Size      string `json:"size"      validate:"required"`
	Depth     string `json:"depth"`
	Date      string `json:"date"      validate:"required"`
	TotalCost string `json:"totalCost" validate:"required"`
	CostGiven string `json:"costGiven" validate:"required"`
}

type RecordPaymentRequest struct {
	Amount float64 `json:"amount" validate:"required"`
}

type AddExpenseRequest struct {
	Date        string  `json:"date"     validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"   validate:"required,gt=0"`
}

type BoreListResponse struct {
	Active    []Bore `json:"active"`
	Completed []Bore `json:"completed"`
}

type ExpenseListResponse struct {
	Expenses []Expense `json:"expenses"`
}
