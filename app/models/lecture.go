package models

import (
	"fmt"
	"time"
)

// Lecture represents a one-off seasonal/intensive enrollment, billed by total
// lesson count and allocated across specific months. UnitPrice, Subtotal and
// TotalAmount are derived server-side on every write.
type Lecture struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID   string    `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Label       string    `json:"label" gorm:"not null" validate:"required"`
	Grade       string    `json:"grade" gorm:"not null" validate:"required"`
	TotalAmount int       `json:"total_amount" gorm:"not null"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Courses []LectureCourse `json:"courses" gorm:"foreignKey:LectureID;references:ID" validate:"required,min=1,dive"`
	Student *Student        `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}

// LectureCourse is one course entry on a lecture with its month-by-month
// lesson allocation.
type LectureCourse struct {
	ID           string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	LectureID    string `json:"lecture_id" gorm:"not null;index;type:uuid"`
	Course       string `json:"course" gorm:"not null" validate:"required"`
	TotalLessons int    `json:"total_lessons" gorm:"not null" validate:"required,gt=0"`
	UnitPrice    int    `json:"unit_price" gorm:"not null"`
	Subtotal     int    `json:"subtotal" gorm:"not null"`

	Allocations []MonthAllocation `json:"allocations" gorm:"foreignKey:LectureCourseID;references:ID" validate:"required,min=1,dive"`
}

// MonthAllocation assigns part of a lecture course's lessons to one month.
type MonthAllocation struct {
	ID              string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	LectureCourseID string `json:"lecture_course_id" gorm:"not null;index;type:uuid"`
	Year            int    `json:"year" gorm:"not null" validate:"required"`
	Month           int    `json:"month" gorm:"not null" validate:"required,min=1,max=12"`
	Lessons         int    `json:"lessons" gorm:"not null" validate:"gte=0"`
}

// ValidateAllocations checks that every course entry's month allocations sum
// to its total lesson count and that no month appears twice. A mismatch is a
// validation error, never silently corrected.
func (l *Lecture) ValidateAllocations() error {
	for _, course := range l.Courses {
		sum := 0
		seen := make(map[[2]int]bool, len(course.Allocations))
		for _, a := range course.Allocations {
			key := [2]int{a.Year, a.Month}
			if seen[key] {
				return fmt.Errorf("course %s: duplicate allocation for %d-%02d",
					course.Course, a.Year, a.Month)
			}
			seen[key] = true
			sum += a.Lessons
		}
		if sum != course.TotalLessons {
			return fmt.Errorf("course %s: allocated lessons (%d) do not match total lessons (%d)",
				course.Course, sum, course.TotalLessons)
		}
	}
	return nil
}

// AllocationFor returns the lesson count this course entry assigns to the
// given month, or 0 when the month has no allocation.
func (lc *LectureCourse) AllocationFor(year, month int) int {
	for _, a := range lc.Allocations {
		if a.Year == year && a.Month == month {
			return a.Lessons
		}
	}
	return 0
}
