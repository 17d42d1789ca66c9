package services

import (
	"database/sql"
	"log"
	"time"
)

// StartScheduler starts the background task scheduler
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// On the 1st of each month at 07:00, summarize the previous
			// month's reports for parents.
			if now.Day() == 1 && now.Hour() == 7 && now.Minute() == 0 {
				log.Println("Triggering scheduled tasks [monthly 07:00]...")

				prev := now.AddDate(0, -1, 0)
				if err := GenerateMonthlySummaries(db, prev.Year(), int(prev.Month())); err != nil {
					log.Printf("Error generating monthly summaries: %v", err)
				}
			}
		}
	}()
}
