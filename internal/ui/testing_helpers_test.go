package ui

import (
	"context"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"drdash/internal/api"
	"drdash/internal/session"
)

// stubBackend implements Backend with canned responses and call counters.
type stubBackend struct {
	status    *api.RecoveryStatus
	statusErr error
	plans     []api.RecoveryPlan
	plansErr  error
	outcome   api.ActionOutcome
	actionErr error

	statusCalls  int
	plansCalls   int
	createCalls  int
	executeCalls int
	testCalls    int
	deleteCalls  int

	lastCreateName   string
	lastCreateConfig map[string]interface{}
}

func (s *stubBackend) RecoveryStatus(ctx context.Context) (*api.RecoveryStatus, error) {
	s.statusCalls++
	return s.status, s.statusErr
}

func (s *stubBackend) RecoveryPlans(ctx context.Context) ([]api.RecoveryPlan, error) {
	s.plansCalls++
	return s.plans, s.plansErr
}

func (s *stubBackend) CreatePlan(ctx context.Context, name string, config map[string]interface{}) (api.ActionOutcome, error) {
	s.createCalls++
	s.lastCreateName = name
	s.lastCreateConfig = config
	return s.outcome, s.actionErr
}

func (s *stubBackend) ExecutePlan(ctx context.Context, name string) (api.ActionOutcome, error) {
	s.executeCalls++
	return s.outcome, s.actionErr
}

func (s *stubBackend) TestPlan(ctx context.Context, name string) (api.ActionOutcome, error) {
	s.testCalls++
	return s.outcome, s.actionErr
}

func (s *stubBackend) DeletePlan(ctx context.Context, name string) (api.ActionOutcome, error) {
	s.deleteCalls++
	return s.outcome, s.actionErr
}

// newTestApp builds an authenticated app over the stub backend.
func newTestApp(b Backend) *appModelAdapter {
	m := NewAppModel(b, &session.Session{Token: "test"})
	return &appModelAdapter{AppModel: m}
}

// drive runs a command and feeds every resulting message back into Update
// until the cycle settles. Spinner ticks are dropped so loading states do
// not recurse forever.
func drive(t *testing.T, a *appModelAdapter, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	driveMsg(t, a, cmd())
}

func driveMsg(t *testing.T, a *appModelAdapter, msg tea.Msg) {
	t.Helper()
	switch m := msg.(type) {
	case nil:
		return
	case spinner.TickMsg:
		return
	case tea.BatchMsg:
		for _, c := range m {
			drive(t, a, c)
		}
		return
	}
	_, cmd := a.Update(msg)
	drive(t, a, cmd)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// lastNotice returns the most recent notice, failing the test if none fired.
func lastNotice(t *testing.T, a *appModelAdapter) NoticeMsg {
	t.Helper()
	if len(a.Notices) == 0 {
		t.Fatal("expected at least one notice")
	}
	return a.Notices[len(a.Notices)-1]
}
