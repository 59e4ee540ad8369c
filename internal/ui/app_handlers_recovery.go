package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// handleRecoveryLoaded stores whatever slots loaded and reports one failure
// notice per failing call. A failed slot keeps its previous value; loading
// always ends, stuck spinners are a defect.
func (a *appModelAdapter) handleRecoveryLoaded(msg RecoveryLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.StatusErr != nil {
		a.report(reportFailure(fmt.Sprintf("Load recovery status: %v", msg.StatusErr)))
	} else if msg.Status != nil {
		a.Recovery.SetStatus(msg.Status)
	}
	if msg.PlansErr != nil {
		a.report(reportFailure(fmt.Sprintf("Load recovery plans: %v", msg.PlansErr)))
	} else {
		a.Recovery.SetPlans(msg.Plans)
	}
	return a, a.Recovery.SetLoading(false)
}

// handleRefresh re-runs the load path. Safe to invoke repeatedly.
func (a *appModelAdapter) handleRefresh() (tea.Model, tea.Cmd) {
	return a, tea.Batch(
		a.Recovery.SetLoading(true),
		loadRecoveryCmd(a.Backend),
	)
}

// handleShowCreatePlan opens the create-plan modal unless a create or delete
// is already in flight.
func (a *appModelAdapter) handleShowCreatePlan() (tea.Model, tea.Cmd) {
	if a.Busy {
		return a, nil
	}
	modal := NewCreatePlanModal()
	a.Overlays.Push(Overlay{View: modal, Dismiss: "esc"})
	return a, modal.Init()
}

// handleShowDeletePlan opens the delete confirmation for the selected plan.
func (a *appModelAdapter) handleShowDeletePlan() (tea.Model, tea.Cmd) {
	plan, ok := a.Recovery.Selected()
	if !ok || a.Busy {
		return a, nil
	}
	modal := NewDeletePlanConfirmModal(plan.Name)
	a.Overlays.Push(Overlay{View: modal, Dismiss: "esc"})
	return a, modal.Init()
}

// handleShowExecutePlan starts executing the selected plan unless its
// execute flag is already set (the disabled-control contract).
func (a *appModelAdapter) handleShowExecutePlan() (tea.Model, tea.Cmd) {
	plan, ok := a.Recovery.Selected()
	if !ok {
		return a, nil
	}
	return a.handleExecutePlan(ExecutePlanMsg{Name: plan.Name})
}

// handleShowTestPlan starts testing the selected plan unless its test flag
// is already set.
func (a *appModelAdapter) handleShowTestPlan() (tea.Model, tea.Cmd) {
	plan, ok := a.Recovery.Selected()
	if !ok {
		return a, nil
	}
	return a.handleTestPlan(TestPlanMsg{Name: plan.Name})
}

// handleCreatePlan submits the create call. The modal already validated the
// name; it is popped here so a fresh one starts from the empty form.
func (a *appModelAdapter) handleCreatePlan(msg CreatePlanMsg) (tea.Model, tea.Cmd) {
	if a.Backend == nil || msg.Name == "" || a.Busy {
		return a, nil
	}
	a.Overlays.Pop()
	a.Busy = true
	return a, createPlanCmd(a.Backend, msg.Name, msg.Config)
}

// handleDeletePlan runs after the user confirmed in the modal.
func (a *appModelAdapter) handleDeletePlan(msg DeletePlanMsg) (tea.Model, tea.Cmd) {
	if a.Backend == nil || msg.Name == "" || a.Busy {
		return a, nil
	}
	a.Overlays.Pop()
	a.Busy = true
	return a, deletePlanCmd(a.Backend, msg.Name)
}

// handleExecutePlan marks the plan in flight and issues exactly one call.
func (a *appModelAdapter) handleExecutePlan(msg ExecutePlanMsg) (tea.Model, tea.Cmd) {
	if a.Backend == nil || a.Recovery.Executing(msg.Name) {
		return a, nil
	}
	a.Recovery.MarkExecuting(msg.Name, true)
	return a, executePlanCmd(a.Backend, msg.Name)
}

// handleTestPlan marks the plan in flight and issues exactly one call.
func (a *appModelAdapter) handleTestPlan(msg TestPlanMsg) (tea.Model, tea.Cmd) {
	if a.Backend == nil || a.Recovery.Testing(msg.Name) {
		return a, nil
	}
	a.Recovery.MarkTesting(msg.Name, true)
	return a, testPlanCmd(a.Backend, msg.Name)
}

// handlePlanActionDone clears the in-flight state on every path, reports the
// outcome, and on success re-runs the load so view state is re-derived from
// the server rather than patched locally.
func (a *appModelAdapter) handlePlanActionDone(msg PlanActionDoneMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case ActionExecute:
		a.Recovery.MarkExecuting(msg.Name, false)
	case ActionTest:
		a.Recovery.MarkTesting(msg.Name, false)
	case ActionCreate, ActionDelete:
		a.Busy = false
	}

	if msg.Err != nil {
		a.report(reportFailure(fmt.Sprintf("%s plan %q failed: %v", titleVerb(msg.Action), msg.Name, msg.Err)))
		return a, nil
	}
	if !msg.Outcome.Success {
		detail := msg.Outcome.Err
		if detail == "" {
			detail = "server reported failure"
		}
		a.report(reportFailure(fmt.Sprintf("%s plan %q failed: %s", titleVerb(msg.Action), msg.Name, detail)))
		return a, nil
	}

	a.report(reportSuccess(fmt.Sprintf("Recovery plan %q %s", msg.Name, pastTense(msg.Action))))
	return a, tea.Batch(
		a.Recovery.SetLoading(true),
		loadRecoveryCmd(a.Backend),
	)
}

func titleVerb(action PlanAction) string {
	switch action {
	case ActionCreate:
		return "Create"
	case ActionExecute:
		return "Execute"
	case ActionTest:
		return "Test"
	case ActionDelete:
		return "Delete"
	default:
		return "Update"
	}
}

func pastTense(action PlanAction) string {
	switch action {
	case ActionCreate:
		return "created"
	case ActionExecute:
		return "executed"
	case ActionTest:
		return "tested"
	case ActionDelete:
		return "deleted"
	default:
		return "updated"
	}
}
