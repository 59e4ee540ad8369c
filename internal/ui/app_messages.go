package ui

import "drdash/internal/api"

// PlanAction identifies which mutating call settled.
type PlanAction int

const (
	ActionCreate PlanAction = iota
	ActionExecute
	ActionTest
	ActionDelete
)

func (a PlanAction) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionExecute:
		return "execute"
	case ActionTest:
		return "test"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// RecoveryLoadedMsg is sent when the recovery screen's read calls settle.
// Status and plans are fetched concurrently; each slot carries its own error
// so one failing call does not discard the other's payload.
type RecoveryLoadedMsg struct {
	Status    *api.RecoveryStatus
	StatusErr error
	Plans     []api.RecoveryPlan
	PlansErr  error
}

// PlanActionDoneMsg is sent when a mutating call settles, on every path.
// Err is the transport-level failure; Outcome carries the application-level
// result (including any server-supplied error string) when Err is nil.
type PlanActionDoneMsg struct {
	Action  PlanAction
	Name    string
	Outcome api.ActionOutcome
	Err     error
}

// RefreshMsg triggers a manual reload of the recovery screen.
type RefreshMsg struct{}

// SwitchModeMsg switches the shell to another screen.
type SwitchModeMsg struct {
	Mode AppMode
}

// ShowCreatePlanMsg triggers the create-plan modal.
type ShowCreatePlanMsg struct{}

// ShowDeletePlanMsg triggers the delete confirmation for the selected plan.
type ShowDeletePlanMsg struct{}

// ShowExecutePlanMsg triggers execution of the selected plan.
type ShowExecutePlanMsg struct{}

// ShowTestPlanMsg triggers a test run of the selected plan.
type ShowTestPlanMsg struct{}

// CreatePlanMsg is sent when the user submits the create-plan modal.
type CreatePlanMsg struct {
	Name   string
	Config map[string]interface{}
}

// ExecutePlanMsg is sent to start executing the named plan.
type ExecutePlanMsg struct {
	Name string
}

// TestPlanMsg is sent to start testing the named plan.
type TestPlanMsg struct {
	Name string
}

// DeletePlanMsg is sent when the user confirms deletion of the named plan.
type DeletePlanMsg struct {
	Name string
}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}

// NoticeMsg reports an outcome to the user via the shell's status line.
type NoticeMsg struct {
	Text    string
	IsError bool
}

// reportSuccess and reportFailure build notice commands; they are the only
// way screens surface outcomes to the user.
func reportSuccess(text string) NoticeMsg { return NoticeMsg{Text: text} }
func reportFailure(text string) NoticeMsg { return NoticeMsg{Text: text, IsError: true} }
