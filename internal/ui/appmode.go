package ui

// AppMode represents the top-level screen the shell is showing.
type AppMode int

const (
	ModeRecovery AppMode = iota
	ModeReports
	ModeSalary
)

func (m AppMode) String() string {
	switch m {
	case ModeRecovery:
		return "Recovery"
	case ModeReports:
		return "Reports"
	case ModeSalary:
		return "Salary"
	default:
		return "Unknown"
	}
}
