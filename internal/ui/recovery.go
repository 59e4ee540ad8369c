package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"drdash/internal/api"
)

// planItem implements list.Item for a RecoveryPlan with its in-flight state.
type planItem struct {
	plan      api.RecoveryPlan
	executing bool
	testing   bool
}

func (p planItem) FilterValue() string { return p.plan.Name }
func (p planItem) Description() string { return "" }

func (p planItem) Title() string {
	line := fmt.Sprintf("%s  [%s]  tested %d×", p.plan.Name, p.plan.Status, p.plan.TestCount)
	if p.plan.LastTested != "" {
		line += fmt.Sprintf("  last %s", p.plan.LastTested)
	}
	switch {
	case p.executing:
		line += "  ⟳ executing…"
	case p.testing:
		line += "  ⟳ testing…"
	}
	return line
}

// RecoveryView shows the recovery posture snapshot and the plan list.
// A load fully replaces its slots; nothing is merged.
type RecoveryView struct {
	list    list.Model
	status  *api.RecoveryStatus
	plans   []api.RecoveryPlan
	spinner spinner.Model
	loading bool

	// Per-plan in-flight flags, keyed by plan name. An entry is set when the
	// action starts and cleared on settlement regardless of outcome. While
	// set, the corresponding keybind is a no-op for that plan.
	executing map[string]bool
	testing   map[string]bool
}

var _ View = (*RecoveryView)(nil)

// NewRecoveryView creates the recovery screen. Data arrives via RecoveryLoadedMsg.
func NewRecoveryView() *RecoveryView {
	// Sized for a plausible terminal until the first WindowSizeMsg arrives.
	l := list.New(nil, NewCompactListDelegate(), 80, 14)
	l.Title = "Recovery plans"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))

	return &RecoveryView{
		list:      l,
		spinner:   s,
		executing: make(map[string]bool),
		testing:   make(map[string]bool),
	}
}

// Init implements View.
func (v *RecoveryView) Init() tea.Cmd {
	return v.spinner.Tick
}

// SetLoading sets the loading state and returns a command to drive the spinner.
func (v *RecoveryView) SetLoading(loading bool) tea.Cmd {
	v.loading = loading
	if loading {
		return v.spinner.Tick
	}
	return nil
}

// Loading reports whether a fetch cycle is in flight.
func (v *RecoveryView) Loading() bool { return v.loading }

// Status returns the last-fetched posture snapshot (nil before first load).
func (v *RecoveryView) Status() *api.RecoveryStatus { return v.status }

// Plans returns the last-fetched plan list.
func (v *RecoveryView) Plans() []api.RecoveryPlan { return v.plans }

// SetStatus replaces the posture slot.
func (v *RecoveryView) SetStatus(s *api.RecoveryStatus) { v.status = s }

// SetPlans replaces the plan list slot wholesale.
func (v *RecoveryView) SetPlans(plans []api.RecoveryPlan) {
	selected := v.list.Index()
	v.plans = plans
	v.rebuildItems()
	if selected >= 0 && selected < len(plans) {
		v.list.Select(selected)
	}
}

// Selected returns the currently selected plan.
func (v *RecoveryView) Selected() (api.RecoveryPlan, bool) {
	idx := v.list.Index()
	if idx < 0 || idx >= len(v.plans) {
		return api.RecoveryPlan{}, false
	}
	return v.plans[idx], true
}

// Executing reports whether an execute call is in flight for the plan.
func (v *RecoveryView) Executing(name string) bool { return v.executing[name] }

// Testing reports whether a test call is in flight for the plan.
func (v *RecoveryView) Testing(name string) bool { return v.testing[name] }

// MarkExecuting sets or clears the execute flag for the plan.
func (v *RecoveryView) MarkExecuting(name string, on bool) {
	v.executing[name] = on
	v.rebuildItems()
}

// MarkTesting sets or clears the test flag for the plan.
func (v *RecoveryView) MarkTesting(name string, on bool) {
	v.testing[name] = on
	v.rebuildItems()
}

// Update implements View.
func (v *RecoveryView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.list.SetWidth(msg.Width)
		v.list.SetHeight(msg.Height - 12) // Reserve space for the status panel and shell chrome
		return v, nil
	case spinner.TickMsg:
		if v.loading {
			var cmd tea.Cmd
			v.spinner, cmd = v.spinner.Update(msg)
			return v, cmd
		}
		return v, nil
	}
	// List handles j/k/g/G navigation natively.
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View implements View.
func (v *RecoveryView) View() string {
	var b strings.Builder
	title := "Disaster recovery"
	if v.loading {
		title += " " + v.spinner.View()
	}
	b.WriteString(Styles.Title.Render(title) + "\n\n")
	b.WriteString(v.statusPanel() + "\n")
	b.WriteString(v.list.View())
	return b.String()
}

// statusPanel renders the RecoveryStatus snapshot, or an empty state before
// the first successful load.
func (v *RecoveryView) statusPanel() string {
	if v.status == nil {
		return Styles.Empty.Render("No recovery status yet") + "\n"
	}
	s := v.status
	lines := []string{
		fmt.Sprintf("Plans: %d total, %d active", s.TotalPlans, s.ActivePlans),
		fmt.Sprintf("RTO %dh  RPO %dh  backups every %dh  retention %dd",
			s.RecoveryTimeObjective, s.RecoveryPointObjective, s.BackupFrequency, s.RetentionPeriod),
		"Last backup: " + orNever(s.LastBackup),
		"Last recovery: " + orNever(s.LastRecovery),
	}
	return Styles.Normal.Render(strings.Join(lines, "\n")) + "\n"
}

func orNever(ts string) string {
	if ts == "" {
		return "never"
	}
	return ts
}

// rebuildItems regenerates list items from the plans and flag maps.
func (v *RecoveryView) rebuildItems() {
	items := make([]list.Item, len(v.plans))
	for i, p := range v.plans {
		items[i] = planItem{
			plan:      p,
			executing: v.executing[p.Name],
			testing:   v.testing[p.Name],
		}
	}
	v.list.SetItems(items)
}
