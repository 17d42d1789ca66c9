package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAllocations(t *testing.T) {
	lecture := &Lecture{
		Courses: []LectureCourse{
			{
				Course:       "数学",
				TotalLessons: 5,
				Allocations: []MonthAllocation{
					{Year: 2024, Month: 7, Lessons: 2},
					{Year: 2024, Month: 8, Lessons: 3},
				},
			},
		},
	}
	assert.NoError(t, lecture.ValidateAllocations())

	// Allocations summing to 4 against 5 total lessons must be rejected,
	// not silently totalled.
	lecture.Courses[0].Allocations[1].Lessons = 2
	err := lecture.ValidateAllocations()
	assert.ErrorContains(t, err, "数学")
	assert.ErrorContains(t, err, "do not match")
}

func TestValidateAllocationsDuplicateMonth(t *testing.T) {
	// Two rows for the same month can sum to the total while AllocationFor
	// only ever reads the first, so the pair must be rejected outright.
	lecture := &Lecture{
		Courses: []LectureCourse{
			{
				Course:       "英語",
				TotalLessons: 5,
				Allocations: []MonthAllocation{
					{Year: 2024, Month: 7, Lessons: 2},
					{Year: 2024, Month: 7, Lessons: 3},
				},
			},
		},
	}
	err := lecture.ValidateAllocations()
	assert.ErrorContains(t, err, "英語")
	assert.ErrorContains(t, err, "duplicate allocation for 2024-07")
}

func TestAllocationFor(t *testing.T) {
	course := &LectureCourse{
		Allocations: []MonthAllocation{
			{Year: 2024, Month: 7, Lessons: 2},
			{Year: 2024, Month: 8, Lessons: 3},
		},
	}

	assert.Equal(t, 2, course.AllocationFor(2024, 7))
	assert.Equal(t, 3, course.AllocationFor(2024, 8))
	assert.Equal(t, 0, course.AllocationFor(2024, 9))
}
