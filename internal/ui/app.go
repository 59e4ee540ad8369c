package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"drdash/internal/session"
)

// AppModel is the root model: the layout shell plus the per-screen views.
// Navigation chrome is rendered only when an authenticated session is
// present; the check is re-evaluated on every render, never cached.
type AppModel struct {
	Mode       AppMode
	Recovery   *RecoveryView
	Reports    *ReportsView
	Salary     *SalaryView
	Overlays   OverlayStack
	KeyHandler *KeyHandler
	Backend    Backend
	Session    *session.Session

	// Status line doubles as the notification reporter. Notices keeps the
	// full sequence for inspection; the shell renders the most recent one.
	Status        string
	StatusIsError bool
	Notices       []NoticeMsg

	// Busy guards create and delete, which have no per-plan flag.
	Busy bool

	width, height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(backend Backend, sess *session.Session) *AppModel {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "quit")
	reg.Bind("ctrl+c", tea.Quit)
	reg.BindWithDesc("1", switchModeCmd(ModeRecovery), "recovery")
	reg.BindWithDesc("2", switchModeCmd(ModeReports), "reports")
	reg.BindWithDesc("3", switchModeCmd(ModeSalary), "salary")
	recoveryOnly := []AppMode{ModeRecovery}
	reg.BindWithDescForMode("r", func() tea.Msg { return RefreshMsg{} }, "refresh", recoveryOnly)
	reg.BindWithDescForMode("c", func() tea.Msg { return ShowCreatePlanMsg{} }, "create plan", recoveryOnly)
	reg.BindWithDescForMode("e", func() tea.Msg { return ShowExecutePlanMsg{} }, "execute plan", recoveryOnly)
	reg.BindWithDescForMode("t", func() tea.Msg { return ShowTestPlanMsg{} }, "test plan", recoveryOnly)
	reg.BindWithDescForMode("d", func() tea.Msg { return ShowDeletePlanMsg{} }, "delete plan", recoveryOnly)

	return &AppModel{
		Mode:       ModeRecovery,
		Recovery:   NewRecoveryView(),
		Reports:    NewReportsView(),
		Salary:     NewSalaryView(),
		KeyHandler: NewKeyHandler(reg),
		Backend:    backend,
		Session:    sess,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

func switchModeCmd(mode AppMode) tea.Cmd {
	return func() tea.Msg { return SwitchModeMsg{Mode: mode} }
}

// report records a notice and surfaces it on the status line.
func (m *AppModel) report(n NoticeMsg) {
	m.Notices = append(m.Notices, n)
	m.Status = n.Text
	m.StatusIsError = n.IsError
}

// Init implements tea.Model: kick off the initial recovery load.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(
		a.Recovery.SetLoading(true),
		loadRecoveryCmd(a.Backend),
	)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		v, cmd := a.Recovery.Update(msg)
		if r, ok := v.(*RecoveryView); ok {
			a.Recovery = r
		}
		return a, cmd

	case NoticeMsg:
		a.report(msg)
		return a, nil

	case RecoveryLoadedMsg:
		return a.handleRecoveryLoaded(msg)
	case RefreshMsg:
		return a.handleRefresh()
	case SwitchModeMsg:
		a.Mode = msg.Mode
		return a, nil

	case ShowCreatePlanMsg:
		return a.handleShowCreatePlan()
	case ShowDeletePlanMsg:
		return a.handleShowDeletePlan()
	case ShowExecutePlanMsg:
		return a.handleShowExecutePlan()
	case ShowTestPlanMsg:
		return a.handleShowTestPlan()

	case CreatePlanMsg:
		return a.handleCreatePlan(msg)
	case DeletePlanMsg:
		return a.handleDeletePlan(msg)
	case ExecutePlanMsg:
		return a.handleExecutePlan(msg)
	case TestPlanMsg:
		return a.handleTestPlan(msg)
	case PlanActionDoneMsg:
		return a.handlePlanActionDone(msg)

	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil

	case tea.KeyMsg:
		// Modals receive input first.
		if a.Overlays.Len() > 0 {
			cmd, _ := a.Overlays.UpdateTop(msg)
			return a, cmd
		}
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg, a.Mode); consumed {
				return a, keyCmd
			}
		}
	}

	v, cmd := a.currentView().Update(msg)
	a.setCurrentView(v)
	return a, cmd
}

// View implements tea.Model: the layout shell. Without a session only the
// inner content is rendered; with one, navigation tabs and the help line
// wrap it.
func (a *appModelAdapter) View() string {
	var content string
	if top, ok := a.Overlays.Peek(); ok {
		content = top.View.View()
	} else {
		content = a.currentView().View()
	}

	var b strings.Builder
	if a.Session != nil {
		b.WriteString(a.navBar() + "\n\n")
	}
	b.WriteString(content)
	if a.Status != "" {
		style := Styles.Success
		if a.StatusIsError {
			style = Styles.Failure
		}
		b.WriteString("\n" + style.Render(a.Status))
	}
	if a.Session != nil && a.KeyHandler != nil {
		b.WriteString("\n" + Styles.Hint.Render(a.KeyHandler.Registry.HelpLine(a.Mode)))
	}
	return b.String()
}

// navBar renders the screen tabs with the active one highlighted.
func (a *appModelAdapter) navBar() string {
	tabs := make([]string, 0, 3)
	for _, mode := range []AppMode{ModeRecovery, ModeReports, ModeSalary} {
		style := Styles.TabInactive
		if mode == a.Mode {
			style = Styles.TabActive
		}
		tabs = append(tabs, style.Render(mode.String()))
	}
	return strings.Join(tabs, "  ")
}

func (a *appModelAdapter) currentView() View {
	switch a.Mode {
	case ModeReports:
		return a.Reports
	case ModeSalary:
		return a.Salary
	default:
		return a.Recovery
	}
}

func (a *appModelAdapter) setCurrentView(v View) {
	switch a.Mode {
	case ModeRecovery:
		if r, ok := v.(*RecoveryView); ok {
			a.Recovery = r
		}
	case ModeReports:
		if r, ok := v.(*ReportsView); ok {
			a.Reports = r
		}
	case ModeSalary:
		if s, ok := v.(*SalaryView); ok {
			a.Salary = s
		}
	}
}
