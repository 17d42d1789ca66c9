package models

import "time"

// LessonTemplate is a recurring weekly lesson slot for a student. The schedule
// generator expands templates into dated Lesson rows for a target month.
type LessonTemplate struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	StudentID string    `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	TeacherID *string   `json:"teacher_id,omitempty" gorm:"index;type:uuid"`
	DayOfWeek DayOfWeek `json:"day_of_week" gorm:"not null;type:varchar(10)" validate:"required"`
	StartTime string    `json:"start_time" gorm:"not null;type:varchar(5)" validate:"required"`
	Course    string    `json:"course" gorm:"not null" validate:"required"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}

// Lesson is one dated lesson row, either generated from a template or created
// by hand.
type Lesson struct {
	ID        string       `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	StudentID string       `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	TeacherID *string      `json:"teacher_id,omitempty" gorm:"index;type:uuid"`
	Date      time.Time    `json:"date" gorm:"not null;index;type:date" validate:"required"`
	StartTime string       `json:"start_time" gorm:"not null;type:varchar(5)" validate:"required"`
	Course    string       `json:"course" gorm:"not null" validate:"required"`
	Status    LessonStatus `json:"status" gorm:"not null;default:'scheduled';type:varchar(20)"`
	CreatedAt time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time    `json:"updated_at" gorm:"autoUpdateTime"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Report  *Report  `json:"report,omitempty" gorm:"foreignKey:LessonID;references:ID"`
}

// ClosedDay marks a date the school is closed; the schedule generator never
// places lessons on closed days.
type ClosedDay struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Date      time.Time `json:"date" gorm:"not null;uniqueIndex;type:date" validate:"required"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
