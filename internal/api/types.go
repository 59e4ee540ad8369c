package api

// RecoveryPlan is one disaster-recovery plan as reported by the backend.
// The dashboard never mutates plans locally; it re-fetches after every
// mutating call so view state always mirrors the server.
type RecoveryPlan struct {
	Name       string `json:"name"`
	Status     string `json:"status"` // "active", "inactive", or "unknown"
	CreatedAt  string `json:"created_at"`
	LastTested string `json:"last_tested,omitempty"` // empty = never tested
	TestCount  int    `json:"test_count"`
}

// RecoveryStatus is the singleton recovery posture snapshot.
// Objectives are in hours; backup frequency in hours; retention in days.
type RecoveryStatus struct {
	TotalPlans             int    `json:"recovery_plans"`
	ActivePlans            int    `json:"active_plans"`
	RecoveryTimeObjective  int    `json:"recovery_time_objective"`
	RecoveryPointObjective int    `json:"recovery_point_objective"`
	BackupFrequency        int    `json:"backup_frequency"`
	RetentionPeriod        int    `json:"retention_period"`
	LastBackup             string `json:"last_backup,omitempty"`
	LastRecovery           string `json:"last_recovery,omitempty"`
}

// ActionOutcome is the application-level result of a mutating call.
// Success false with a non-empty Err carries the server-supplied detail;
// transport failures are reported through the method's error return instead.
type ActionOutcome struct {
	Success  bool   `json:"success"`
	PlanName string `json:"plan_name,omitempty"`
	Message  string `json:"message,omitempty"`
	Err      string `json:"error,omitempty"`
}

// TopPerformer is one row of the staff ranking in the sales report.
type TopPerformer struct {
	StaffName  string  `json:"staff_name"`
	TotalSales float64 `json:"total_sales"`
	Rank       int     `json:"rank"`
}

// BrandSales is one brand's share of total sales.
type BrandSales struct {
	BrandName  string  `json:"brand_name"`
	TotalSales float64 `json:"total_sales"`
	Percentage float64 `json:"percentage"`
}

// MonthlyTrend is one month's sales and attendance totals.
type MonthlyTrend struct {
	Month      string  `json:"month"`
	Sales      float64 `json:"sales"`
	Attendance int     `json:"attendance"`
}

// ReportData aggregates the sales/attendance report screen.
type ReportData struct {
	TotalSales      float64        `json:"totalSales"`
	TotalStaff      int            `json:"totalStaff"`
	TotalAttendance int            `json:"totalAttendance"`
	TopPerformers   []TopPerformer `json:"topPerformers"`
	SalesByBrand    []BrandSales   `json:"salesByBrand"`
	MonthlyTrend    []MonthlyTrend `json:"monthlyTrend"`
}

// EmptyReport returns the zeroed placeholder the report screen renders until
// a real aggregation endpoint exists.
func EmptyReport() ReportData {
	return ReportData{
		TopPerformers: []TopPerformer{},
		SalesByBrand:  []BrandSales{},
		MonthlyTrend:  []MonthlyTrend{},
	}
}
