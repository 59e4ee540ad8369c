package ui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"drdash/internal/api"
)

// Backend is the slice of the API client the UI consumes.
type Backend interface {
	RecoveryStatus(ctx context.Context) (*api.RecoveryStatus, error)
	RecoveryPlans(ctx context.Context) ([]api.RecoveryPlan, error)
	CreatePlan(ctx context.Context, name string, config map[string]interface{}) (api.ActionOutcome, error)
	ExecutePlan(ctx context.Context, name string) (api.ActionOutcome, error)
	TestPlan(ctx context.Context, name string) (api.ActionOutcome, error)
	DeletePlan(ctx context.Context, name string) (api.ActionOutcome, error)
}

// loadRecoveryCmd fetches the recovery status and the plan list concurrently
// and settles as a single RecoveryLoadedMsg. Each call carries its own error;
// the handler keeps the previous slot value for any call that failed.
func loadRecoveryCmd(b Backend) tea.Cmd {
	return func() tea.Msg {
		if b == nil {
			return RecoveryLoadedMsg{}
		}
		var msg RecoveryLoadedMsg
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			msg.Status, msg.StatusErr = b.RecoveryStatus(context.Background())
		}()
		go func() {
			defer wg.Done()
			msg.Plans, msg.PlansErr = b.RecoveryPlans(context.Background())
		}()
		wg.Wait()
		return msg
	}
}

// createPlanCmd issues the create call. Validation happens before this
// command is built; the command itself always settles with a done message.
func createPlanCmd(b Backend, name string, config map[string]interface{}) tea.Cmd {
	return func() tea.Msg {
		outcome, err := b.CreatePlan(context.Background(), name, config)
		return PlanActionDoneMsg{Action: ActionCreate, Name: name, Outcome: outcome, Err: err}
	}
}

// executePlanCmd issues the execute call for one plan.
func executePlanCmd(b Backend, name string) tea.Cmd {
	return func() tea.Msg {
		outcome, err := b.ExecutePlan(context.Background(), name)
		return PlanActionDoneMsg{Action: ActionExecute, Name: name, Outcome: outcome, Err: err}
	}
}

// testPlanCmd issues the test call for one plan.
func testPlanCmd(b Backend, name string) tea.Cmd {
	return func() tea.Msg {
		outcome, err := b.TestPlan(context.Background(), name)
		return PlanActionDoneMsg{Action: ActionTest, Name: name, Outcome: outcome, Err: err}
	}
}

// deletePlanCmd issues the delete call for one plan.
func deletePlanCmd(b Backend, name string) tea.Cmd {
	return func() tea.Msg {
		outcome, err := b.DeletePlan(context.Background(), name)
		return PlanActionDoneMsg{Action: ActionDelete, Name: name, Outcome: outcome, Err: err}
	}
}
