package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/models"
)

func date(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func testContract(start, end string, monthly, enrollment, discount int) *models.Contract {
	return &models.Contract{
		ID:               "c-1",
		StudentID:        "s-1",
		StartDate:        date(start),
		EndDate:          date(end),
		Grade:            "中2",
		MonthlyAmount:    monthly,
		EnrollmentFee:    enrollment,
		CampaignDiscount: discount,
	}
}

func TestChargeForMonthFirstMonthFullRate(t *testing.T) {
	// Contract starting on the 10th: first month, no half-rate.
	ct := testContract("2024-06-10", "2025-03-31", 30000, 22000, 0)

	charge := ChargeForMonth(ct, 2024, 6)

	assert.True(t, charge.IsFirstMonth)
	assert.False(t, charge.IsHalf)
	assert.Equal(t, 30000, charge.Tuition)
	assert.Equal(t, 3300, charge.FacilityFee)
	assert.Equal(t, 22000, charge.EnrollmentFee)
	assert.Equal(t, 0, charge.CampaignDiscount)
	assert.Equal(t, 55300, charge.Total)
}

func TestChargeForMonthHalfRate(t *testing.T) {
	// Starting on the 20th halves tuition and facility fee; the enrollment
	// fee is still charged in full.
	ct := testContract("2024-06-20", "2025-03-31", 30000, 22000, 0)

	charge := ChargeForMonth(ct, 2024, 6)

	assert.True(t, charge.IsFirstMonth)
	assert.True(t, charge.IsHalf)
	assert.Equal(t, 15000, charge.Tuition)
	assert.Equal(t, 1650, charge.FacilityFee)
	assert.Equal(t, 22000, charge.EnrollmentFee)
	assert.Equal(t, 38650, charge.Total)
}

func TestChargeForMonthSecondMonth(t *testing.T) {
	ct := testContract("2024-06-20", "2025-03-31", 30000, 22000, 5000)

	charge := ChargeForMonth(ct, 2024, 7)

	assert.False(t, charge.IsFirstMonth)
	assert.False(t, charge.IsHalf)
	assert.Equal(t, 30000, charge.Tuition)
	assert.Equal(t, 3300, charge.FacilityFee)
	assert.Equal(t, 0, charge.EnrollmentFee)
	assert.Equal(t, 0, charge.CampaignDiscount)
	assert.Equal(t, 33300, charge.Total)
}

func TestChargeForMonthDay16Boundary(t *testing.T) {
	// The 15th bills full, the 16th bills half.
	full := ChargeForMonth(testContract("2024-06-15", "2025-03-31", 30000, 0, 0), 2024, 6)
	assert.False(t, full.IsHalf)
	assert.Equal(t, 30000, full.Tuition)

	half := ChargeForMonth(testContract("2024-06-16", "2025-03-31", 30000, 0, 0), 2024, 6)
	assert.True(t, half.IsHalf)
	assert.Equal(t, 15000, half.Tuition)
}

func TestChargeForMonthHalfTuitionFloors(t *testing.T) {
	// Fractional yen is dropped, never billed.
	charge := ChargeForMonth(testContract("2024-06-16", "2025-03-31", 30001, 0, 0), 2024, 6)
	assert.Equal(t, 15000, charge.Tuition)
}

func TestChargeForMonthCampaignDiscountFirstMonthOnly(t *testing.T) {
	ct := testContract("2024-06-01", "2025-03-31", 30000, 0, 13200)

	first := ChargeForMonth(ct, 2024, 6)
	assert.Equal(t, 13200, first.CampaignDiscount)
	assert.Equal(t, 30000+3300-13200, first.Total)

	second := ChargeForMonth(ct, 2024, 7)
	assert.Equal(t, 0, second.CampaignDiscount)
	assert.Equal(t, 33300, second.Total)
}

func TestChargeTotalIdentity(t *testing.T) {
	cases := []*models.Contract{
		testContract("2024-06-01", "2025-03-31", 28600, 22000, 0),
		testContract("2024-06-16", "2025-03-31", 28600, 11000, 14300),
		testContract("2024-06-30", "2024-06-30", 8800, 0, 4400),
	}
	for _, ct := range cases {
		for month := 6; month <= 8; month++ {
			charge := ChargeForMonth(ct, 2024, month)
			assert.Equal(t, charge.Tuition+charge.EnrollmentFee+charge.FacilityFee-charge.CampaignDiscount, charge.Total)
		}
	}
}

func TestOverlaps(t *testing.T) {
	ct := testContract("2024-06-10", "2024-09-30", 30000, 0, 0)

	assert.False(t, Overlaps(ct, 2024, 5))
	assert.True(t, Overlaps(ct, 2024, 6))
	assert.True(t, Overlaps(ct, 2024, 9))
	assert.False(t, Overlaps(ct, 2024, 10))

	// A contract ending on the 1st still overlaps that month.
	short := testContract("2024-06-20", "2024-07-01", 30000, 0, 0)
	assert.True(t, Overlaps(short, 2024, 7))

	// Starting on the last day of the month overlaps it.
	lastDay := testContract("2024-06-30", "2024-12-31", 30000, 0, 0)
	assert.True(t, Overlaps(lastDay, 2024, 6))
}

func testLecture() *models.Lecture {
	return &models.Lecture{
		ID:        "l-1",
		StudentID: "s-2",
		Label:     "夏期講習",
		Grade:     "中2",
		Courses: []models.LectureCourse{
			{
				Course:       "数学",
				TotalLessons: 8,
				UnitPrice:    2200,
				Subtotal:     17600,
				Allocations: []models.MonthAllocation{
					{Year: 2024, Month: 7, Lessons: 3},
					{Year: 2024, Month: 8, Lessons: 5},
				},
			},
			{
				Course:       "英語",
				TotalLessons: 4,
				UnitPrice:    2200,
				Subtotal:     8800,
				Allocations: []models.MonthAllocation{
					{Year: 2024, Month: 8, Lessons: 4},
				},
			},
		},
	}
}

func TestAggregateLectureLines(t *testing.T) {
	lec := testLecture()

	july := Aggregate(2024, 7, nil, []*models.Lecture{lec}, nil)
	require.Len(t, july.Lectures, 1)
	assert.Equal(t, "数学", july.Lectures[0].Course)
	assert.Equal(t, 3, july.Lectures[0].Lessons)
	assert.Equal(t, 6600, july.Lectures[0].Amount)
	assert.Equal(t, 6600, july.LectureTotal)

	august := Aggregate(2024, 8, nil, []*models.Lecture{lec}, nil)
	require.Len(t, august.Lectures, 2)
	assert.Equal(t, 5*2200+4*2200, august.LectureTotal)

	// No allocation in the month: the lecture is omitted entirely.
	june := Aggregate(2024, 6, nil, []*models.Lecture{lec}, nil)
	assert.Empty(t, june.Lectures)
	assert.Equal(t, 0, june.LectureTotal)
}

func TestAggregateMaterialsVerbatim(t *testing.T) {
	sales := []*models.MaterialSale{
		{ID: "m-1", StudentID: "s-1", Name: "数学ワーク", UnitPrice: 1320, Quantity: 2, Total: 2640, BillingYear: 2024, BillingMonth: 6},
		{ID: "m-2", StudentID: "s-1", Name: "英単語帳", UnitPrice: 990, Quantity: 1, Total: 990, BillingYear: 2024, BillingMonth: 7},
	}

	result := Aggregate(2024, 6, nil, nil, sales)
	require.Len(t, result.Materials, 1)
	assert.Equal(t, "数学ワーク", result.Materials[0].Name)
	assert.Equal(t, 2640, result.MaterialTotal)
}

func TestAggregateTotals(t *testing.T) {
	contracts := []*models.Contract{
		testContract("2024-06-10", "2025-03-31", 30000, 22000, 0),
		{
			ID: "c-2", StudentID: "s-2", Grade: "小5",
			StartDate: date("2024-04-01"), EndDate: date("2025-03-31"),
			MonthlyAmount: 16500, EnrollmentFee: 22000,
		},
	}
	sales := []*models.MaterialSale{
		{ID: "m-1", StudentID: "s-1", Name: "テキスト", UnitPrice: 1100, Quantity: 1, Total: 1100, BillingYear: 2024, BillingMonth: 6},
	}

	result := Aggregate(2024, 6, contracts, []*models.Lecture{testLecture()}, sales)

	// c-1 in its first month, c-2 in a later month.
	assert.Equal(t, 55300+16500+3300, result.ContractTotal)
	assert.Equal(t, 0, result.LectureTotal)
	assert.Equal(t, 1100, result.MaterialTotal)
	assert.Equal(t, result.ContractTotal+result.LectureTotal+result.MaterialTotal, result.Total)
}

func TestAggregateSkipsNonOverlappingContracts(t *testing.T) {
	ct := testContract("2024-09-01", "2025-03-31", 30000, 22000, 0)

	result := Aggregate(2024, 6, []*models.Contract{ct}, nil, nil)
	assert.Empty(t, result.Contracts)
	assert.Equal(t, 0, result.Total)
}
