package models

// DayOfWeek defines the days of the week for lesson templates.
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// LessonStatus defines the possible status values for a scheduled lesson.
type LessonStatus string

const (
	LessonScheduled LessonStatus = "scheduled"
	LessonDone      LessonStatus = "done"
	LessonAbsent    LessonStatus = "absent"
	LessonCancelled LessonStatus = "cancelled"
)

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

// SummaryStatus defines the delivery status of a monthly parent summary.
type SummaryStatus string

const (
	SummaryPending SummaryStatus = "pending"
	SummarySent    SummaryStatus = "sent"
	SummaryFailed  SummaryStatus = "failed"
)
