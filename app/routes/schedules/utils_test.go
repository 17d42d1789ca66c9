package schedules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/models"
)

func TestValidateTimeFormat(t *testing.T) {
	assert.True(t, ValidateTimeFormat("16:30"))
	assert.True(t, ValidateTimeFormat("09:00"))
	assert.False(t, ValidateTimeFormat("9:00"))
	assert.False(t, ValidateTimeFormat("1630"))
	assert.False(t, ValidateTimeFormat(""))
}

func TestValidateDayOfWeek(t *testing.T) {
	assert.True(t, ValidateDayOfWeek("monday"))
	assert.True(t, ValidateDayOfWeek("Sunday"))
	assert.False(t, ValidateDayOfWeek("funday"))
	assert.False(t, ValidateDayOfWeek(""))
}

func TestDatesForWeekday(t *testing.T) {
	// April 2024 has five Mondays: 1, 8, 15, 22, 29
	dates := datesForWeekday(2024, 4, models.Monday)
	assert.Len(t, dates, 5)
	for i, day := range []int{1, 8, 15, 22, 29} {
		assert.Equal(t, day, dates[i].Day())
		assert.Equal(t, time.Monday, dates[i].Weekday())
		assert.Equal(t, time.April, dates[i].Month())
	}

	// February 2024 (leap year) has five Thursdays, ending on the 29th
	dates = datesForWeekday(2024, 2, models.Thursday)
	assert.Len(t, dates, 5)
	assert.Equal(t, 29, dates[4].Day())
}
