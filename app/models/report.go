package models

import "time"

// Report is a teacher's lesson report: what was covered, homework assigned and
// a progress note. One report per lesson.
type Report struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	LessonID  string    `json:"lesson_id" gorm:"not null;uniqueIndex;type:uuid" validate:"required,uuid"`
	TeacherID string    `json:"teacher_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Content   string    `json:"content" gorm:"not null" validate:"required"`
	Homework  string    `json:"homework,omitempty"`
	Progress  string    `json:"progress,omitempty"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Lesson  *Lesson `json:"lesson,omitempty" gorm:"foreignKey:LessonID;references:ID"`
	Teacher *User   `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;references:ID"`
}

// MonthlySummary records one AI-generated parent progress summary and its
// delivery status.
type MonthlySummary struct {
	ID        string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	StudentID string        `json:"student_id" gorm:"not null;index;type:uuid"`
	Year      int           `json:"year" gorm:"not null"`
	Month     int           `json:"month" gorm:"not null"`
	Body      string        `json:"body" gorm:"not null"`
	Status    SummaryStatus `json:"status" gorm:"not null;default:'pending';type:varchar(20)"`
	SentAt    *time.Time    `json:"sent_at,omitempty"`
	CreatedAt time.Time     `json:"created_at" gorm:"autoCreateTime"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}
