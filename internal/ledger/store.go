// AngelaMos | 2026
// store.go

package ledger

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shreeram-borwells/srb-backend/internal/core"
	"github.com/shreeram-borwells/srb-backend/internal/money"
)

// Store is the mutex-guarded in-memory ledger. All reads return copies so
// callers never hold references into guarded state.
type Store struct {
	mu       sync.Mutex
	bores    map[int64]*Bore
	expenses map[int64]*Expense
	lastID   int64
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		bores:    make(map[int64]*Bore),
		expenses: make(map[int64]*Expense),
		now:      time.Now,
	}
}

// nextID is timestamp-derived but strictly increasing, so two mutations in
// the same millisecond cannot collide.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Seed loads fixture records verbatim, preserving their ids. Derived fields
// are recomputed rather than trusted.
func (s *Store) Seed(bores []Bore, expenses []Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range bores {
		b := bores[i]
		b.recompute()
		s.bores[b.ID] = &b
		if b.ID > s.lastID {
			s.lastID = b.ID
		}
	}
	for i := range expenses {
		e := expenses[i]
		e.FormattedAmount = money.Format(e.Amount)
		s.expenses[e.ID] = &e
		if e.ID > s.lastID {
			s.lastID = e.ID
		}
	}
}

// AddBoreInput carries the raw form fields. Cost fields are free text and
// go through lossy money parsing.
type AddBoreInput struct {
	Name        string
	Size        string
	Depth       string
	Date        string
	TotalCost   string
	CostGiven   string
	AuditorName string
}

func (s *Store) AddBore(in AddBoreInput) (Bore, error) {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Size) == "" ||
		strings.TrimSpace(in.Date) == "" ||
		strings.TrimSpace(in.TotalCost) == "" ||
		strings.TrimSpace(in.CostGiven) == "" {
		return Bore{}, core.ErrInvalidInput
	}

	depth := strings.TrimSpace(in.Depth)
	if depth != "" && !strings.HasSuffix(depth, " ft") {
		depth += " ft"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b := &Bore{
		ID:          s.nextID(),
		Name:        strings.TrimSpace(in.Name),
		Size:        strings.TrimSpace(in.Size),
		Depth:       depth,
		Date:        in.Date,
		TotalCost:   in.TotalCost,
		CostGiven:   in.CostGiven,
		Status:      StatusPlanning,
		AuditorName: in.AuditorName,
	}
	b.recompute()

	s.bores[b.ID] = b
	return *b, nil
}

// RecordPayment adds a positive payment to a project's paid-to-date amount.
// A payment of p <= 0 is a silent no-op returning the unchanged record.
// There is no status precondition: the mutation stands alone.
func (s *Store) RecordPayment(id int64, p float64) (Bore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bores[id]
	if !ok {
		return Bore{}, core.ErrNotFound
	}

	if p <= 0 {
		return *b, nil
	}

	b.CostGiven = money.Format(money.Parse(b.CostGiven) + p)
	b.recompute()
	return *b, nil
}

// ToggleStatus flips a project between Complete and Active. A non-Complete
// project (Planning included) becomes Complete; a Complete one reopens as
// Active. Financial fields are untouched.
func (s *Store) ToggleStatus(id int64) (Bore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bores[id]
	if !ok {
		return Bore{}, core.ErrNotFound
	}

	if b.Status == StatusComplete {
		b.Status = StatusActive
	} else {
		b.Status = StatusComplete
	}
	return *b, nil
}

func (s *Store) DeleteBore(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bores[id]; !ok {
		return core.ErrNotFound
	}
	delete(s.bores, id)
	return nil
}

type AddExpenseInput struct {
	Date        string
	Category    string
	Description string
	Amount      float64
	AuditorName string
}

func (s *Store) AddExpense(in AddExpenseInput) (Expense, error) {
	if strings.TrimSpace(in.Date) == "" ||
		strings.TrimSpace(in.Category) == "" ||
		in.Amount <= 0 {
		return Expense{}, core.ErrInvalidInput
	}

	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		desc = in.Category
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e := &Expense{
		ID:              s.nextID(),
		Date:            in.Date,
		Category:        in.Category,
		Description:     desc,
		Amount:          in.Amount,
		FormattedAmount: money.Format(in.Amount),
		AuditorName:     in.AuditorName,
	}

	s.expenses[e.ID] = e
	return *e, nil
}

func (s *Store) DeleteExpense(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.expenses[id]; !ok {
		return core.ErrNotFound
	}
	delete(s.expenses, id)
	return nil
}

// ListBores returns every project newest first, partitioned into active
// (anything not Complete) and completed.
func (s *Store) ListBores() (active, completed []Bore) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]Bore, 0, len(s.bores))
	for _, b := range s.bores {
		all = append(all, *b)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })

	for _, b := range all {
		if b.Status == StatusComplete {
			completed = append(completed, b)
		} else {
			active = append(active, b)
		}
	}
	return active, completed
}

func (s *Store) ListExpenses() []Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]Expense, 0, len(s.expenses))
	for _, e := range s.expenses {
		all = append(all, *e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return all
}

func (s *Store) GetBore(id int64) (Bore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bores[id]
	if !ok {
		return Bore{}, core.ErrNotFound
	}
	return *b, nil
}

// ComputeTotals derives the aggregate position from current state. Revenue
// counts money actually received (costGiven), not contracted totals.
func (s *Store) ComputeTotals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	var revenue, expenses float64
	for _, b := range s.bores {
		revenue += money.Parse(b.CostGiven)
	}
	for _, e := range s.expenses {
		expenses += e.Amount
	}

	net := revenue - expenses
	return Totals{
		TotalRevenue:         revenue,
		TotalExpenses:        expenses,
		NetPosition:          net,
		TotalRevenueDisplay:  money.Format(revenue),
		TotalExpensesDisplay: money.Format(expenses),
		NetPositionDisplay:   money.Format(net),
	}
}

// ClearAll empties both collections under a single lock acquisition so no
// reader ever observes one collection cleared and the other not.
func (s *Store) ClearAll() (boresCleared, expensesCleared int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	boresCleared = len(s.bores)
	expensesCleared = len(s.expenses)
	s.bores = make(map[int64]*Bore)
	s.expenses = make(map[int64]*Expense)
	return boresCleared, expensesCleared
}

// Counts reports collection sizes for stats endpoints.
func (s *Store) Counts() (bores, expenses int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bores), len(s.expenses)
}
