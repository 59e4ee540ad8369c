package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// SalaryView is the stub salary administration page.
type SalaryView struct{}

var _ View = (*SalaryView)(nil)

// NewSalaryView creates the salary screen.
func NewSalaryView() *SalaryView { return &SalaryView{} }

// Init implements View.
func (v *SalaryView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *SalaryView) Update(msg tea.Msg) (View, tea.Cmd) {
	return v, nil
}

// View implements View.
func (v *SalaryView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Salary administration") + "\n\n")
	b.WriteString(Styles.Empty.Render("Salary management is not available yet.") + "\n")
	return b.String()
}
