package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/models"
)

func GetLessonTemplates(db *sql.DB, studentID string) ([]*models.LessonTemplate, error) {
	query := `SELECT id, student_id, teacher_id, day_of_week, start_time, course, is_active, created_at, updated_at
			  FROM lesson_templates WHERE is_active = true`
	var args []interface{}
	if studentID != "" {
		query += ` AND student_id = $1`
		args = append(args, studentID)
	}
	query += ` ORDER BY day_of_week, start_time`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []*models.LessonTemplate
	for rows.Next() {
		tpl := &models.LessonTemplate{}
		var teacherID sql.NullString
		err := rows.Scan(&tpl.ID, &tpl.StudentID, &teacherID, &tpl.DayOfWeek,
			&tpl.StartTime, &tpl.Course, &tpl.IsActive, &tpl.CreatedAt, &tpl.UpdatedAt)
		if err != nil {
			return nil, err
		}
		if teacherID.Valid {
			tpl.TeacherID = &teacherID.String
		}
		templates = append(templates, tpl)
	}

	if templates == nil {
		templates = []*models.LessonTemplate{}
	}
	return templates, rows.Err()
}

func CreateLessonTemplate(db *sql.DB, tpl *models.LessonTemplate) error {
	query := `INSERT INTO lesson_templates (student_id, teacher_id, day_of_week, start_time, course, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, tpl.StudentID, tpl.TeacherID, string(tpl.DayOfWeek),
		tpl.StartTime, tpl.Course).Scan(&tpl.ID, &tpl.CreatedAt, &tpl.UpdatedAt)
}

func DeleteLessonTemplate(db *sql.DB, templateID string) error {
	result, err := db.Exec(`UPDATE lesson_templates SET is_active = false, updated_at = NOW() WHERE id = $1`, templateID)
	if err != nil {
		return fmt.Errorf("failed to delete lesson template: %v", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("lesson template not found")
	}
	return nil
}

// GetLessonsForMonth returns all lessons in the month with student names and
// report presence, ordered by date and time.
func GetLessonsForMonth(db *sql.DB, year, month int) ([]*models.LessonResponse, error) {
	firstDay := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	lastDay := firstDay.AddDate(0, 1, -1)

	query := `SELECT l.id, l.student_id, l.teacher_id, l.date, l.start_time, l.course, l.status,
			  l.created_at, l.updated_at,
			  s.last_name, s.first_name,
			  COALESCE(u.last_name || ' ' || u.first_name, '') as teacher_name,
			  r.id IS NOT NULL as has_report
			  FROM lessons l
			  JOIN students s ON l.student_id = s.id
			  LEFT JOIN users u ON l.teacher_id = u.id
			  LEFT JOIN reports r ON r.lesson_id = l.id
			  WHERE l.date >= $1 AND l.date <= $2
			  ORDER BY l.date, l.start_time`

	rows, err := db.Query(query, firstDay, lastDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lessons []*models.LessonResponse
	for rows.Next() {
		lesson := &models.LessonResponse{}
		var teacherID sql.NullString
		var studentLast, studentFirst string
		err := rows.Scan(
			&lesson.ID, &lesson.StudentID, &teacherID, &lesson.Date, &lesson.StartTime,
			&lesson.Course, &lesson.Status, &lesson.CreatedAt, &lesson.UpdatedAt,
			&studentLast, &studentFirst, &lesson.TeacherName, &lesson.HasReport,
		)
		if err != nil {
			return nil, err
		}
		if teacherID.Valid {
			lesson.TeacherID = &teacherID.String
		}
		lesson.StudentName = studentLast + " " + studentFirst
		lessons = append(lessons, lesson)
	}

	if lessons == nil {
		lessons = []*models.LessonResponse{}
	}
	return lessons, rows.Err()
}

// LessonExists reports whether the student already has a lesson at the given
// date and start time. The schedule generator uses this to skip conflicts.
func LessonExists(db *sql.DB, studentID string, date time.Time, startTime string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM lessons WHERE student_id = $1 AND date = $2 AND start_time = $3)`
	err := db.QueryRow(query, studentID, date, startTime).Scan(&exists)
	return exists, err
}

func CreateLesson(db *sql.DB, lesson *models.Lesson) error {
	query := `INSERT INTO lessons (student_id, teacher_id, date, start_time, course, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	status := lesson.Status
	if status == "" {
		status = models.LessonScheduled
	}
	return db.QueryRow(query, lesson.StudentID, lesson.TeacherID, lesson.Date,
		lesson.StartTime, lesson.Course, string(status)).Scan(&lesson.ID, &lesson.CreatedAt, &lesson.UpdatedAt)
}

func UpdateLessonStatus(db *sql.DB, lessonID string, status models.LessonStatus) error {
	result, err := db.Exec(`UPDATE lessons SET status = $1, updated_at = NOW() WHERE id = $2`,
		string(status), lessonID)
	if err != nil {
		return fmt.Errorf("failed to update lesson: %v", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("lesson not found")
	}
	return nil
}

func DeleteLesson(db *sql.DB, lessonID string) error {
	result, err := db.Exec(`DELETE FROM lessons WHERE id = $1`, lessonID)
	if err != nil {
		return fmt.Errorf("failed to delete lesson: %v", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("lesson not found")
	}
	return nil
}

// GetClosedDays returns the closed days within [from, to] as a date-keyed set.
func GetClosedDays(db *sql.DB, from, to time.Time) (map[string]bool, error) {
	rows, err := db.Query(`SELECT date FROM closed_days WHERE date >= $1 AND date <= $2`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	closed := make(map[string]bool)
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		closed[date.Format("2006-01-02")] = true
	}
	return closed, rows.Err()
}

func ListClosedDays(db *sql.DB) ([]*models.ClosedDay, error) {
	rows, err := db.Query(`SELECT id, date, reason, created_at FROM closed_days ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []*models.ClosedDay
	for rows.Next() {
		day := &models.ClosedDay{}
		var reason sql.NullString
		if err := rows.Scan(&day.ID, &day.Date, &reason, &day.CreatedAt); err != nil {
			return nil, err
		}
		day.Reason = reason.String
		days = append(days, day)
	}

	if days == nil {
		days = []*models.ClosedDay{}
	}
	return days, rows.Err()
}

func CreateClosedDay(db *sql.DB, day *models.ClosedDay) error {
	query := `INSERT INTO closed_days (date, reason, created_at) VALUES ($1, $2, NOW())
			  ON CONFLICT (date) DO UPDATE SET reason = EXCLUDED.reason
			  RETURNING id, created_at`
	return db.QueryRow(query, day.Date, day.Reason).Scan(&day.ID, &day.CreatedAt)
}

func DeleteClosedDay(db *sql.DB, dayID string) error {
	result, err := db.Exec(`DELETE FROM closed_days WHERE id = $1`, dayID)
	if err != nil {
		return fmt.Errorf("failed to delete closed day: %v", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("closed day not found")
	}
	return nil
}
