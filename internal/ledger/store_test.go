// AngelaMos | 2026
// store_test.go

package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	s.Seed(
		[]Bore{
			{ID: 1, Name: "Rajannapeta Site", Size: "6.5 inch", Depth: "350 ft",
				Date: "2024-01-15", TotalCost: "₹ 45,000", CostGiven: "₹ 45,000",
				Status: StatusComplete, AuditorName: "Ramesh Kumar"},
			{ID: 2, Name: "Gandhi Nagar Colony", Size: "7 inch", Depth: "500 ft",
				Date: "2024-02-02", TotalCost: "₹ 80,000", CostGiven: "₹ 30,000",
				Status: StatusActive, AuditorName: "Suresh Reddy"},
		},
		[]Expense{
			{ID: 3, Date: "2024-02-10", Category: "Diesel",
				Description: "Rig refuel", Amount: 12000, AuditorName: "Ramesh Kumar"},
		},
	)
	return s
}

func TestAddBore(t *testing.T) {
	t.Run("creates with planning status and derived fields", func(t *testing.T) {
		s := NewStore()
		b, err := s.AddBore(AddBoreInput{
			Name:        "New Site",
			Size:        "6.5 inch",
			Depth:       "400",
			Date:        "2024-03-01",
			TotalCost:   "100000",
			CostGiven:   "40000",
			AuditorName: "Ramesh Kumar",
		})
		require.NoError(t, err)

		assert.Equal(t, StatusPlanning, b.Status)
		assert.Equal(t, "400 ft", b.Depth)
		assert.Equal(t, "₹ 1,00,000", b.TotalCost)
		assert.Equal(t, "₹ 40,000", b.CostGiven)
		assert.Equal(t, float64(60000), b.LeftAmount)
		assert.Equal(t, "₹ 60,000", b.LeftMoney)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		s := NewStore()
		_, err := s.AddBore(AddBoreInput{Name: "X", Size: "6 inch"})
		assert.Error(t, err)
	})

	t.Run("ids strictly increase", func(t *testing.T) {
		s := NewStore()
		in := AddBoreInput{Name: "A", Size: "6", Date: "2024-01-01",
			TotalCost: "1", CostGiven: "0"}
		first, err := s.AddBore(in)
		require.NoError(t, err)
		second, err := s.AddBore(in)
		require.NoError(t, err)
		assert.Greater(t, second.ID, first.ID)
	})
}

func TestRecordPayment(t *testing.T) {
	t.Run("adds to cost given and recomputes left", func(t *testing.T) {
		s := seededStore(t)
		b, err := s.RecordPayment(2, 20000)
		require.NoError(t, err)

		assert.Equal(t, "₹ 50,000", b.CostGiven)
		assert.Equal(t, float64(30000), b.LeftAmount)
		assert.Equal(t, "₹ 30,000", b.LeftMoney)
	})

	t.Run("non-positive payment is a no-op", func(t *testing.T) {
		s := seededStore(t)
		before, err := s.GetBore(2)
		require.NoError(t, err)

		for _, p := range []float64{0, -500} {
			after, err := s.RecordPayment(2, p)
			require.NoError(t, err)
			assert.Equal(t, before, after)
		}
	})

	t.Run("overpayment clamps display but keeps signed amount", func(t *testing.T) {
		s := seededStore(t)
		b, err := s.RecordPayment(2, 60000)
		require.NoError(t, err)

		assert.Equal(t, float64(-10000), b.LeftAmount)
		assert.Equal(t, "₹ 0", b.LeftMoney)
	})

	t.Run("unknown id", func(t *testing.T) {
		s := seededStore(t)
		_, err := s.RecordPayment(999, 100)
		assert.Error(t, err)
	})
}

func TestToggleStatus(t *testing.T) {
	s := seededStore(t)

	b, err := s.ToggleStatus(1)
	require.NoError(t, err)
	assert.Equal(t, StatusActive, b.Status)

	b, err = s.ToggleStatus(1)
	require.NoError(t, err)
	assert.Equal(t, StatusComplete, b.Status)

	// Planning also closes straight to Complete.
	planning, err := s.AddBore(AddBoreInput{Name: "P", Size: "6",
		Date: "2024-01-01", TotalCost: "1000", CostGiven: "0"})
	require.NoError(t, err)
	b, err = s.ToggleStatus(planning.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusComplete, b.Status)
}

func TestAddExpense(t *testing.T) {
	t.Run("description defaults to category", func(t *testing.T) {
		s := NewStore()
		e, err := s.AddExpense(AddExpenseInput{
			Date: "2024-03-05", Category: "Labor", Amount: 5000,
		})
		require.NoError(t, err)
		assert.Equal(t, "Labor", e.Description)
		assert.Equal(t, "₹ 5,000", e.FormattedAmount)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		s := NewStore()
		_, err := s.AddExpense(AddExpenseInput{
			Date: "2024-03-05", Category: "Labor", Amount: 0,
		})
		assert.Error(t, err)
	})
}

func TestListBores(t *testing.T) {
	s := seededStore(t)
	active, completed := s.ListBores()

	require.Len(t, active, 1)
	require.Len(t, completed, 1)
	assert.Equal(t, int64(2), active[0].ID)
	assert.Equal(t, int64(1), completed[0].ID)
}

func TestComputeTotals(t *testing.T) {
	s := seededStore(t)
	totals := s.ComputeTotals()

	// Revenue counts money received, not contracted totals.
	assert.Equal(t, float64(75000), totals.TotalRevenue)
	assert.Equal(t, float64(12000), totals.TotalExpenses)
	assert.Equal(t, float64(63000), totals.NetPosition)
	assert.Equal(t, "₹ 63,000", totals.NetPositionDisplay)
}

func TestComputeTotalsNegativeNet(t *testing.T) {
	s := NewStore()
	s.Seed(nil, []Expense{{ID: 1, Date: "2024-01-01", Category: "Diesel", Amount: 5000}})

	totals := s.ComputeTotals()
	assert.Equal(t, float64(-5000), totals.NetPosition)
	assert.Equal(t, "₹ -5,000", totals.NetPositionDisplay)
}

func TestClearAll(t *testing.T) {
	s := seededStore(t)
	bores, expenses := s.ClearAll()

	assert.Equal(t, 2, bores)
	assert.Equal(t, 1, expenses)

	active, completed := s.ListBores()
	assert.Empty(t, active)
	assert.Empty(t, completed)
	assert.Empty(t, s.ListExpenses())

	totals := s.ComputeTotals()
	assert.Zero(t, totals.TotalRevenue)
	assert.Zero(t, totals.TotalExpenses)
}

func TestDelete(t *testing.T) {
	s := seededStore(t)

	require.NoError(t, s.DeleteBore(1))
	assert.Error(t, s.DeleteBore(1))

	require.NoError(t, s.DeleteExpense(3))
	assert.Error(t, s.DeleteExpense(3))
}
