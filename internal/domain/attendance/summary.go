package attendance

import (
	"sort"
	"time"
)

// MemberLateness is one member's lateness totals for a month.
type MemberLateness struct {
	EmployeeID         string  `json:"employee_id"`
	DisplayName        string  `json:"display_name"`
	LateCount          int     `json:"late_count"`
	TotalLateMinutes   int     `json:"total_late_minutes"`
	ReportedLateCount  int     `json:"reported_late_count"`
	TotalDeductedHours float64 `json:"total_deducted_hours"`
}

// MonthlySummary is derived on every request and never stored.
type MonthlySummary struct {
	Month       string           `json:"month"` // YYYY-MM
	PeriodStart time.Time        `json:"period_start"`
	PeriodEnd   time.Time        `json:"period_end"`
	Members     []MemberLateness `json:"members"`
}

// Summarize folds records, expected in ascending check-in order, into per-member
// lateness totals sorted by employee id. On-time records are skipped, and the
// display name is the one on the member's first late record.
func Summarize(records []Attendance) []MemberLateness {
	byMember := make(map[string]*MemberLateness)

	for _, r := range records {
		if !r.IsLate() {
			continue
		}

		s, ok := byMember[r.MemberID]
		if !ok {
			s = &MemberLateness{
				EmployeeID:  r.MemberID,
				DisplayName: r.MemberName,
			}
			byMember[r.MemberID] = s
		}

		s.LateCount++
		s.TotalLateMinutes += r.LateMinutes
		if r.LateReportedInAdvance {
			s.ReportedLateCount++
		}
		s.TotalDeductedHours += r.DeductedHours
	}

	result := make([]MemberLateness, 0, len(byMember))
	for _, s := range byMember {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].EmployeeID < result[j].EmployeeID
	})

	return result
}
