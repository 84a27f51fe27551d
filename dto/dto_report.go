package dto

// OverviewReport aggregates tenant-wide counts for the dashboard.
type OverviewReport struct {
	Success       bool             `json:"success"`
	Headcount     int64            `json:"headcount"`
	ByDepartment  map[string]int64 `json:"by_department"`
	ByStatus      map[string]int64 `json:"by_status"`
	OpenPositions int64            `json:"open_positions"`
	PendingLeaves int64            `json:"pending_leaves"`
}
