// AngelaMos | 2026
// fixtures.go

// Package fixtures loads the startup seed data: the account roster and the
// initial ledger records. Stores start empty when the file is absent.
package fixtures

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shreeram-borwells/srb-backend/internal/ledger"
	"github.com/shreeram-borwells/srb-backend/internal/roster"
)

type Data struct {
	Users    []UserFixture    `yaml:"users"`
	Bores    []BoreFixture    `yaml:"bores"`
	Expenses []ExpenseFixture `yaml:"expenses"`
}

type UserFixture struct {
	ID       string `yaml:"id"`
	Role     string `yaml:"role"`
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type BoreFixture struct {
	ID          int64   `yaml:"id"`
	Name        string  `yaml:"name"`
	Size        string  `yaml:"size"`
	DepthFeet   int     `yaml:"depth_feet"`
	Date        string  `yaml:"date"`
	TotalCost   float64 `yaml:"total_cost"`
	CostGiven   float64 `yaml:"cost_given"`
	Status      string  `yaml:"status"`
	AuditorName string  `yaml:"auditor_name"`
}

type ExpenseFixture struct {
	ID          int64   `yaml:"id"`
	Date        string  `yaml:"date"`
	Category    string  `yaml:"category"`
	Description string  `yaml:"description"`
	Amount      float64 `yaml:"amount"`
	AuditorName string  `yaml:"auditor_name"`
}

// Load parses the fixture file. A missing file is not an error here;
// callers decide whether to warn.
func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Data{}, nil
		}
		return nil, fmt.Errorf("read fixtures: %w", err)
	}

	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}

	return &data, nil
}

func (d *Data) SeedRoster(store *roster.Store) {
	users := make([]roster.User, 0, len(d.Users))
	for _, u := range d.Users {
		users = append(users, roster.User{
			ID:       u.ID,
			Role:     roster.Role(u.Role),
			Name:     u.Name,
			Email:    u.Email,
			Password: u.Password,
		})
	}
	store.Seed(users)
}

func (d *Data) SeedLedger(store *ledger.Store) {
	bores := make([]ledger.Bore, 0, len(d.Bores))
	for _, b := range d.Bores {
		bores = append(bores, ledger.Bore{
			ID:          b.ID,
			Name:        b.Name,
			Size:        b.Size,
			Depth:       fmt.Sprintf("%d ft", b.DepthFeet),
			Date:        b.Date,
			TotalCost:   fmt.Sprintf("%.0f", b.TotalCost),
			CostGiven:   fmt.Sprintf("%.0f", b.CostGiven),
			Status:      b.Status,
			AuditorName: b.AuditorName,
		})
	}

	expenses := make([]ledger.Expense, 0, len(d.Expenses))
	for _, e := range d.Expenses {
		expenses = append(expenses, ledger.Expense{
			ID:          e.ID,
			Date:        e.Date,
			Category:    e.Category,
			Description: e.Description,
			Amount:      e.Amount,
			AuditorName: e.AuditorName,
		})
	}

	store.Seed(bores, expenses)
}
