package services

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/google/generative-ai-go/genai"

	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/config"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/database"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/models"
)

// GenerateMonthlySummaries builds an AI progress summary for every student who
// had reported lessons in (year, month) and emails it to the parent. One
// student failing does not stop the batch.
func GenerateMonthlySummaries(db *sql.DB, year, month int) error {
	log.Printf("Starting monthly summary generation for %d-%02d...", year, month)

	if config.GeminiModel == nil {
		return fmt.Errorf("gemini client not initialized, skipping summary generation")
	}

	// Students with at least one reported lesson in the month and a parent
	// email on file. Already-sent summaries are excluded so the job can rerun.
	query := `
		SELECT DISTINCT s.id, s.last_name || ' ' || s.first_name as name, s.parent_email
		FROM students s
		JOIN lessons l ON l.student_id = s.id
		JOIN reports r ON r.lesson_id = l.id
		WHERE EXTRACT(YEAR FROM l.date) = $1
		AND EXTRACT(MONTH FROM l.date) = $2
		AND s.parent_email != ''
		AND NOT EXISTS (
			SELECT 1 FROM monthly_summaries ms
			WHERE ms.student_id = s.id
			AND ms.year = $1
			AND ms.month = $2
			AND ms.status = 'sent'
		)
	`

	rows, err := db.Query(query, year, month)
	if err != nil {
		return fmt.Errorf("failed to query students for summaries: %v", err)
	}
	defer rows.Close()

	type target struct {
		id, name, email string
	}
	var targets []target
	for rows.Next() {
		var t target
		if err := rows.Scan(&t.id, &t.name, &t.email); err != nil {
			log.Printf("Error scanning row: %v", err)
			continue
		}
		targets = append(targets, t)
	}

	count := 0
	for _, t := range targets {
		reports, err := database.GetReportsForStudentMonth(db, t.id, year, month)
		if err != nil {
			log.Printf("Failed to fetch reports for %s: %v", t.name, err)
			continue
		}
		if len(reports) == 0 {
			continue
		}

		body, err := generateSummaryBody(t.name, year, month, reports)
		if err != nil {
			log.Printf("Failed to generate summary for %s: %v", t.name, err)
			continue
		}

		summary := &models.MonthlySummary{
			StudentID: t.id,
			Year:      year,
			Month:     month,
			Body:      body,
			Status:    models.SummaryPending,
		}
		if err := database.SaveMonthlySummary(db, summary); err != nil {
			log.Printf("Failed to save summary for %s: %v", t.name, err)
			continue
		}

		subject := fmt.Sprintf("【指導報告】%d年%d月 %sさんの学習サマリー", year, month, t.name)
		if err := sendSummaryEmail(t.email, subject, body); err != nil {
			log.Printf("Failed to send summary email for %s: %v", t.name, err)
			if err := database.MarkSummaryFailed(db, summary.ID); err != nil {
				log.Printf("Failed to mark summary failed for %s: %v", t.name, err)
			}
			continue
		}

		if err := database.MarkSummarySent(db, summary.ID); err != nil {
			log.Printf("Failed to mark summary sent for %s: %v", t.name, err)
			continue
		}
		count++
		log.Printf("Sent monthly summary for %s (%d reports)", t.name, len(reports))
	}

	log.Printf("Monthly summary generation completed. Sent %d summaries.", count)
	return nil
}

// generateSummaryBody asks Gemini for a parent-facing progress summary built
// from the month's lesson reports.
func generateSummaryBody(studentName string, year, month int, reports []*models.Report) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "あなたは個別指導塾の教室長です。以下は%sさんの%d年%d月の指導報告です。\n", studentName, year, month)
	sb.WriteString("保護者向けに、今月の学習内容・成長した点・来月に向けた課題を丁寧な日本語でまとめてください。\n\n")
	for _, r := range reports {
		if r.Lesson != nil {
			fmt.Fprintf(&sb, "■ %s %s\n", r.Lesson.Date.Format("1月2日"), r.Lesson.Course)
		}
		fmt.Fprintf(&sb, "指導内容: %s\n", r.Content)
		if r.Homework != "" {
			fmt.Fprintf(&sb, "宿題: %s\n", r.Homework)
		}
		if r.Progress != "" {
			fmt.Fprintf(&sb, "進捗: %s\n", r.Progress)
		}
		sb.WriteString("\n")
	}

	resp, err := config.GeminiModel.GenerateContent(context.Background(), genai.Text(sb.String()))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %v", err)
	}

	var out strings.Builder
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				out.WriteString(string(txt))
			}
		}
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return out.String(), nil
}

func sendSummaryEmail(to, subject, body string) error {
	cfg := config.AppConfig.SMTP
	if cfg.Username == "" || cfg.Password == "" {
		return fmt.Errorf("SMTP credentials not configured")
	}

	msg := strings.Join([]string{
		"From: " + cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
		"",
		body,
	}, "\r\n")

	auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	return smtp.SendMail(addr, auth, cfg.From, []string{to}, []byte(msg))
}
