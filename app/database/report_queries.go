package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/models"
)

func CreateReport(db *sql.DB, report *models.Report) error {
	query := `INSERT INTO reports (lesson_id, teacher_id, content, homework, progress, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, report.LessonID, report.TeacherID, report.Content,
		report.Homework, report.Progress).Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt)
}

func UpdateReport(db *sql.DB, report *models.Report) error {
	query := `UPDATE reports SET content = $1, homework = $2, progress = $3, updated_at = NOW()
			  WHERE id = $4`
	result, err := db.Exec(query, report.Content, report.Homework, report.Progress, report.ID)
	if err != nil {
		return fmt.Errorf("failed to update report: %v", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("report not found")
	}
	return nil
}

func DeleteReport(db *sql.DB, reportID string) error {
	result, err := db.Exec(`DELETE FROM reports WHERE id = $1`, reportID)
	if err != nil {
		return fmt.Errorf("failed to delete report: %v", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("report not found")
	}
	return nil
}

func GetReportByID(db *sql.DB, reportID string) (*models.Report, error) {
	report := &models.Report{}
	var homework, progress sql.NullString
	query := `SELECT id, lesson_id, teacher_id, content, homework, progress, created_at, updated_at
			  FROM reports WHERE id = $1`
	err := db.QueryRow(query, reportID).Scan(
		&report.ID, &report.LessonID, &report.TeacherID, &report.Content,
		&homework, &progress, &report.CreatedAt, &report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	report.Homework = homework.String
	report.Progress = progress.String
	return report, nil
}

func GetReportByLessonID(db *sql.DB, lessonID string) (*models.Report, error) {
	report := &models.Report{}
	var homework, progress sql.NullString
	query := `SELECT id, lesson_id, teacher_id, content, homework, progress, created_at, updated_at
			  FROM reports WHERE lesson_id = $1`
	err := db.QueryRow(query, lessonID).Scan(
		&report.ID, &report.LessonID, &report.TeacherID, &report.Content,
		&homework, &progress, &report.CreatedAt, &report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	report.Homework = homework.String
	report.Progress = progress.String
	return report, nil
}

// GetReportsForStudentMonth returns a student's reports for lessons in the
// given month, oldest first. The monthly summary generator reads from this.
func GetReportsForStudentMonth(db *sql.DB, studentID string, year, month int) ([]*models.Report, error) {
	firstDay := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	lastDay := firstDay.AddDate(0, 1, -1)

	query := `SELECT r.id, r.lesson_id, r.teacher_id, r.content, r.homework, r.progress,
			  r.created_at, r.updated_at, l.date, l.course
			  FROM reports r
			  JOIN lessons l ON r.lesson_id = l.id
			  WHERE l.student_id = $1 AND l.date >= $2 AND l.date <= $3
			  ORDER BY l.date`

	rows, err := db.Query(query, studentID, firstDay, lastDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*models.Report
	for rows.Next() {
		report := &models.Report{Lesson: &models.Lesson{}}
		var homework, progress sql.NullString
		err := rows.Scan(
			&report.ID, &report.LessonID, &report.TeacherID, &report.Content,
			&homework, &progress, &report.CreatedAt, &report.UpdatedAt,
			&report.Lesson.Date, &report.Lesson.Course,
		)
		if err != nil {
			return nil, err
		}
		report.Homework = homework.String
		report.Progress = progress.String
		reports = append(reports, report)
	}

	if reports == nil {
		reports = []*models.Report{}
	}
	return reports, rows.Err()
}

// SaveMonthlySummary upserts a generated summary for (student, year, month).
func SaveMonthlySummary(db *sql.DB, summary *models.MonthlySummary) error {
	query := `INSERT INTO monthly_summaries (student_id, year, month, body, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, NOW())
			  ON CONFLICT (student_id, year, month)
			  DO UPDATE SET body = EXCLUDED.body, status = EXCLUDED.status
			  RETURNING id, created_at`
	status := summary.Status
	if status == "" {
		status = models.SummaryPending
	}
	return db.QueryRow(query, summary.StudentID, summary.Year, summary.Month,
		summary.Body, string(status)).Scan(&summary.ID, &summary.CreatedAt)
}

// MarkSummarySent records successful email delivery of a summary.
func MarkSummarySent(db *sql.DB, summaryID string) error {
	_, err := db.Exec(`UPDATE monthly_summaries SET status = $1, sent_at = NOW() WHERE id = $2`,
		string(models.SummarySent), summaryID)
	return err
}

// MarkSummaryFailed records a delivery failure so the run can be retried.
func MarkSummaryFailed(db *sql.DB, summaryID string) error {
	_, err := db.Exec(`UPDATE monthly_summaries SET status = $1 WHERE id = $2`,
		string(models.SummaryFailed), summaryID)
	return err
}
