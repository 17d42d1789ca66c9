package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyAmount(t *testing.T) {
	s := DefaultSchedule()

	amount, err := s.MonthlyAmount("中2", []CourseLoad{
		{Course: "数学", WeeklyLessons: 1},
		{Course: "英語", WeeklyLessons: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 26400, amount)

	// Weekly lesson count multiplies the per-course price.
	amount, err = s.MonthlyAmount("中2", []CourseLoad{
		{Course: "数学", WeeklyLessons: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 26400, amount)

	amount, err = s.MonthlyAmount("小5", []CourseLoad{
		{Course: "算数", WeeklyLessons: 1},
		{Course: "理科", WeeklyLessons: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 16500, amount)
}

func TestMonthlyAmountDeterministic(t *testing.T) {
	s := DefaultSchedule()
	courses := []CourseLoad{
		{Course: "英語", WeeklyLessons: 2},
		{Course: "国語", WeeklyLessons: 1},
	}

	first, err := s.MonthlyAmount("高1", courses)
	require.NoError(t, err)
	second, err := s.MonthlyAmount("高1", courses)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMonthlyAmountConfigurationErrors(t *testing.T) {
	s := DefaultSchedule()

	// Unknown grade must fail loud, never price at zero.
	_, err := s.MonthlyAmount("中4", []CourseLoad{{Course: "数学", WeeklyLessons: 1}})
	assert.ErrorContains(t, err, "unknown grade")

	// Unknown course for a known grade is also a hard error. 物理 is a
	// senior-high course and must not resolve for a junior-high grade.
	_, err = s.MonthlyAmount("中1", []CourseLoad{{Course: "物理", WeeklyLessons: 1}})
	assert.ErrorContains(t, err, "unknown course")

	_, err = s.MonthlyAmount("中1", nil)
	assert.Error(t, err)

	_, err = s.MonthlyAmount("中1", []CourseLoad{{Course: "数学", WeeklyLessons: 0}})
	assert.Error(t, err)
}

func TestCampaignDiscount(t *testing.T) {
	s := DefaultSchedule()
	courses := []CourseLoad{
		{Course: "数学", WeeklyLessons: 1},
		{Course: "英語", WeeklyLessons: 1},
	}

	discount, err := s.CampaignDiscount("中2", courses)
	require.NoError(t, err)
	assert.Equal(t, 13200, discount)

	// Odd monthly amounts floor, never round up.
	discount, err = s.CampaignDiscount("中3", []CourseLoad{{Course: "国語", WeeklyLessons: 1}})
	require.NoError(t, err)
	assert.Equal(t, 6050, discount)

	_, err = s.CampaignDiscount("不明", courses)
	assert.Error(t, err)
}

func TestEnrollmentFee(t *testing.T) {
	s := DefaultSchedule()

	assert.Equal(t, 22000, s.EnrollmentFee(""))
	assert.Equal(t, 0, s.EnrollmentFee(CampaignSpring))
	assert.Equal(t, 11000, s.EnrollmentFee(CampaignHalfEnrollment))
	// Unrecognised campaign strings fall back to the standard fee.
	assert.Equal(t, 22000, s.EnrollmentFee("昔のキャンペーン"))
}

func TestLectureUnitPrice(t *testing.T) {
	s := DefaultSchedule()

	price, err := s.LectureUnitPrice("中1", "数学")
	require.NoError(t, err)
	assert.Equal(t, 2200, price)

	price, err = s.LectureUnitPrice("小3", "国語")
	require.NoError(t, err)
	assert.Equal(t, 1650, price)

	_, err = s.LectureUnitPrice("中1", "物理")
	assert.ErrorContains(t, err, "unknown course")

	_, err = s.LectureUnitPrice("大1", "数学")
	assert.ErrorContains(t, err, "unknown grade")
}
