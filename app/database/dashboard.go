package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/models"
)

// GetDashboardStats returns statistics for the admin dashboard. Monthly
// revenue is filled in by the handler from the billing aggregator.
func GetDashboardStats(db *sql.DB) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	// 1. Total Students
	err := db.QueryRow("SELECT COUNT(*) FROM students WHERE is_active = true AND deleted_at IS NULL").Scan(&stats.TotalStudents)
	if err != nil {
		return nil, err
	}

	// 2. Contracts active today
	err = db.QueryRow(`
		SELECT COUNT(*) FROM contracts
		WHERE start_date <= CURRENT_DATE AND end_date >= CURRENT_DATE
	`).Scan(&stats.ActiveContracts)
	if err != nil {
		return nil, err
	}

	// 3. Lessons in the current month
	now := time.Now()
	firstDay := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastDay := firstDay.AddDate(0, 1, -1)
	err = db.QueryRow("SELECT COUNT(*) FROM lessons WHERE date >= $1 AND date <= $2",
		firstDay, lastDay).Scan(&stats.LessonsThisMonth)
	if err != nil {
		return nil, err
	}

	// 4. Completed lessons still waiting for a report
	err = db.QueryRow(`
		SELECT COUNT(*) FROM lessons l
		LEFT JOIN reports r ON r.lesson_id = l.id
		WHERE l.status = 'done' AND r.id IS NULL
	`).Scan(&stats.ReportsPending)
	if err != nil {
		return nil, err
	}

	activities, err := getRecentActivities(db)
	if err != nil {
		return nil, err
	}
	stats.RecentActivities = activities

	return stats, nil
}

func getRecentActivities(db *sql.DB) ([]models.Activity, error) {
	query := `
		SELECT 'report', s.last_name || ' ' || s.first_name, l.course, r.created_at
		FROM reports r
		JOIN lessons l ON r.lesson_id = l.id
		JOIN students s ON l.student_id = s.id
		UNION ALL
		SELECT 'contract', s.last_name || ' ' || s.first_name, c.grade, c.created_at
		FROM contracts c
		JOIN students s ON c.student_id = s.id
		ORDER BY 4 DESC
		LIMIT 6
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var kind, name, detail string
		var at time.Time
		if err := rows.Scan(&kind, &name, &detail, &at); err != nil {
			continue
		}
		activity := models.Activity{RawTime: at, TimeAgo: timeAgo(at)}
		switch kind {
		case "report":
			activity.Type = "report"
			activity.Title = "指導報告書が登録されました"
			activity.Description = name + " - " + detail
			activity.Icon = "clipboard-list"
			activity.Color = "green"
		case "contract":
			activity.Type = "contract"
			activity.Title = "契約が登録されました"
			activity.Description = name + " (" + detail + ")"
			activity.Icon = "file-signature"
			activity.Color = "blue"
		}
		activities = append(activities, activity)
	}

	if activities == nil {
		activities = []models.Activity{}
	}
	return activities, rows.Err()
}

func timeAgo(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "たった今"
	case d < time.Hour:
		return fmt.Sprintf("%d分前", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d時間前", int(d.Hours()))
	default:
		return t.Format("2006-01-02")
	}
}
