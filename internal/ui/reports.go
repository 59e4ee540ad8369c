package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"drdash/internal/api"
)

// ReportsView shows the sales/attendance report. The backend has no
// aggregation endpoint yet, so the view holds the zeroed placeholder and
// renders empty states for each section.
type ReportsView struct {
	data api.ReportData
}

var _ View = (*ReportsView)(nil)

// NewReportsView creates the report screen with placeholder data.
func NewReportsView() *ReportsView {
	return &ReportsView{data: api.EmptyReport()}
}

// Data returns the report currently held by the view.
func (v *ReportsView) Data() api.ReportData { return v.data }

// Init implements View.
func (v *ReportsView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *ReportsView) Update(msg tea.Msg) (View, tea.Cmd) {
	return v, nil
}

// View implements View.
func (v *ReportsView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Sales & attendance report") + "\n\n")
	b.WriteString(Styles.Normal.Render(fmt.Sprintf(
		"Total sales: %.2f   Staff: %d   Attendance: %d",
		v.data.TotalSales, v.data.TotalStaff, v.data.TotalAttendance)) + "\n\n")

	b.WriteString(Styles.Section.Render("Top performers") + "\n")
	if len(v.data.TopPerformers) == 0 {
		b.WriteString(Styles.Empty.Render("No performer data") + "\n")
	} else {
		for _, p := range v.data.TopPerformers {
			b.WriteString(fmt.Sprintf("%2d. %s  %.2f\n", p.Rank, p.StaffName, p.TotalSales))
		}
	}

	b.WriteString("\n" + Styles.Section.Render("Sales by brand") + "\n")
	if len(v.data.SalesByBrand) == 0 {
		b.WriteString(Styles.Empty.Render("No brand data") + "\n")
	} else {
		for _, s := range v.data.SalesByBrand {
			b.WriteString(fmt.Sprintf("%s  %.2f (%.1f%%)\n", s.BrandName, s.TotalSales, s.Percentage))
		}
	}

	b.WriteString("\n" + Styles.Section.Render("Monthly trend") + "\n")
	if len(v.data.MonthlyTrend) == 0 {
		b.WriteString(Styles.Empty.Render("No trend data") + "\n")
	} else {
		for _, m := range v.data.MonthlyTrend {
			b.WriteString(fmt.Sprintf("%s  sales %.2f  attendance %d\n", m.Month, m.Sales, m.Attendance))
		}
	}
	return b.String()
}
