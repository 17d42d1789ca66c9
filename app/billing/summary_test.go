package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/models"
)

func TestTwelveMonthSummaryWindow(t *testing.T) {
	summaries := TwelveMonthSummary(2024, 6, nil)

	require.Len(t, summaries, 12)
	// Oldest first: July 2023 through June 2024.
	assert.Equal(t, 2023, summaries[0].Year)
	assert.Equal(t, 7, summaries[0].Month)
	assert.Equal(t, 2024, summaries[11].Year)
	assert.Equal(t, 6, summaries[11].Month)

	// Consecutive calendar months with no gaps.
	for i := 1; i < 12; i++ {
		prev := summaries[i-1]
		cur := summaries[i]
		expectedMonth := prev.Month + 1
		expectedYear := prev.Year
		if expectedMonth == 13 {
			expectedMonth = 1
			expectedYear++
		}
		assert.Equal(t, expectedYear, cur.Year)
		assert.Equal(t, expectedMonth, cur.Month)
	}

	// Empty months still appear, with zeroes.
	for _, s := range summaries {
		assert.Equal(t, 0, s.Revenue)
		assert.Equal(t, 0, s.Students)
	}
}

func TestTwelveMonthSummaryRevenue(t *testing.T) {
	// One contract running October 2023 through March 2024, started on the
	// 16th so the first month bills half.
	ct := &models.Contract{
		ID: "c-1", StudentID: "s-1", Grade: "中2",
		StartDate:     date("2023-10-16"),
		EndDate:       date("2024-03-31"),
		MonthlyAmount: 30000,
		EnrollmentFee: 22000,
	}

	summaries := TwelveMonthSummary(2024, 6, []*models.Contract{ct})
	byMonth := make(map[[2]int]MonthSummary)
	for _, s := range summaries {
		byMonth[[2]int{s.Year, s.Month}] = s
	}

	// September 2023: not yet active.
	assert.Equal(t, 0, byMonth[[2]int{2023, 9}].Revenue)
	assert.Equal(t, 0, byMonth[[2]int{2023, 9}].Students)

	// October 2023: half tuition + half facility fee + enrollment fee.
	assert.Equal(t, 15000+1650+22000, byMonth[[2]int{2023, 10}].Revenue)
	assert.Equal(t, 1, byMonth[[2]int{2023, 10}].Students)

	// November 2023 through March 2024: full rate, no enrollment fee.
	assert.Equal(t, 33300, byMonth[[2]int{2023, 11}].Revenue)
	assert.Equal(t, 33300, byMonth[[2]int{2024, 3}].Revenue)

	// April 2024: contract over.
	assert.Equal(t, 0, byMonth[[2]int{2024, 4}].Revenue)
}

func TestTwelveMonthSummaryDistinctStudents(t *testing.T) {
	// Two contracts for the same student count as one head; a third contract
	// for another student makes two.
	contracts := []*models.Contract{
		{ID: "c-1", StudentID: "s-1", StartDate: date("2024-04-01"), EndDate: date("2025-03-31"), MonthlyAmount: 13200},
		{ID: "c-2", StudentID: "s-1", StartDate: date("2024-04-01"), EndDate: date("2025-03-31"), MonthlyAmount: 8800},
		{ID: "c-3", StudentID: "s-2", StartDate: date("2024-05-01"), EndDate: date("2025-03-31"), MonthlyAmount: 16500},
	}

	summaries := TwelveMonthSummary(2024, 6, contracts)
	last := summaries[11]
	assert.Equal(t, 2024, last.Year)
	assert.Equal(t, 6, last.Month)
	assert.Equal(t, 2, last.Students)
	// Both of s-1's contracts still contribute revenue.
	assert.Equal(t, 13200+3300+8800+3300+16500+3300, last.Revenue)
}
