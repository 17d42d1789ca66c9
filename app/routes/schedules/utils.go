package schedules

import (
	"strings"
	"time"

	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/models"
)

// ValidateTimeFormat validates time format (HH:MM)
func ValidateTimeFormat(timeStr string) bool {
	parts := strings.Split(timeStr, ":")
	return len(parts) == 2 && len(parts[0]) == 2 && len(parts[1]) == 2
}

// ValidateDayOfWeek validates day of week
func ValidateDayOfWeek(day string) bool {
	validDays := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	day = strings.ToLower(day)
	for _, validDay := range validDays {
		if day == validDay {
			return true
		}
	}
	return false
}

var weekdayNames = map[time.Weekday]models.DayOfWeek{
	time.Monday:    models.Monday,
	time.Tuesday:   models.Tuesday,
	time.Wednesday: models.Wednesday,
	time.Thursday:  models.Thursday,
	time.Friday:    models.Friday,
	time.Saturday:  models.Saturday,
	time.Sunday:    models.Sunday,
}

// datesForWeekday lists every date in (year, month) falling on the template's
// weekday.
func datesForWeekday(year, month int, day models.DayOfWeek) []time.Time {
	var dates []time.Time
	d := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	for d.Month() == time.Month(month) {
		if weekdayNames[d.Weekday()] == day {
			dates = append(dates, d)
		}
		d = d.AddDate(0, 0, 1)
	}
	return dates
}
