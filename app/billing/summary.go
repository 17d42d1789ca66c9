package billing

import (
	"time"

	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/models"
)

// MonthSummary is one point in the twelve-month revenue trend.
type MonthSummary struct {
	Year     int `json:"year"`
	Month    int `json:"month"`
	Revenue  int `json:"revenue"`
	Students int `json:"students"`
}

// TwelveMonthSummary computes contract revenue and distinct-student headcount
// for the rolling twelve-month window ending at (year, month) inclusive,
// oldest first. Each month is prorated independently with ChargeForMonth, so
// a contract's first month carries its enrollment fee, campaign discount and
// half-month rule exactly as the billing view does. Months with no active
// contracts appear with zero revenue and zero students.
func TwelveMonthSummary(year, month int, contracts []*models.Contract) []MonthSummary {
	summaries := make([]MonthSummary, 0, 12)

	for i := 11; i >= 0; i-- {
		// time.Date normalizes out-of-range months, so month-i walks
		// back across year boundaries.
		target := time.Date(year, time.Month(month-i), 1, 0, 0, 0, 0, time.Local)
		ty, tm := target.Year(), int(target.Month())

		summary := MonthSummary{Year: ty, Month: tm}
		seen := make(map[string]bool)
		for _, ct := range contracts {
			if !Overlaps(ct, ty, tm) {
				continue
			}
			summary.Revenue += ChargeForMonth(ct, ty, tm).Total
			if !seen[ct.StudentID] {
				seen[ct.StudentID] = true
				summary.Students++
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
