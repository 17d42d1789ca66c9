package models

import "time"

// LessonResponse extends the base Lesson with display details such as the
// student's full name and whether a report has been filed.
type LessonResponse struct {
	Lesson
	StudentName string `json:"student_name"`
	TeacherName string `json:"teacher_name,omitempty"`
	HasReport   bool   `json:"has_report"`
}

type DashboardStats struct {
	TotalStudents    int        `json:"total_students"`
	ActiveContracts  int        `json:"active_contracts"`
	LessonsThisMonth int        `json:"lessons_this_month"`
	ReportsPending   int        `json:"reports_pending"`
	MonthlyRevenue   int        `json:"monthly_revenue"`
	RecentActivities []Activity `json:"recent_activities"`
}

type Activity struct {
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TimeAgo     string    `json:"time_ago"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	RawTime     time.Time `json:"-"`
}
