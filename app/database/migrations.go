package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	if err := createTables(db); err != nil {
		return err
	}

	// Columns added after the initial schema shipped.
	if err := addLectureNotesColumn(db); err != nil {
		return err
	}
	if err := addSummaryStatusColumn(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createTables(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			phone VARCHAR(20),
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT UNIQUE NOT NULL,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS user_roles (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			role_id UUID NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW(),
			deleted_at TIMESTAMPTZ,
			UNIQUE (user_id, role_id)
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			last_name TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_kana TEXT,
			first_kana TEXT,
			grade TEXT NOT NULL,
			school TEXT,
			gender VARCHAR(10),
			parent_name TEXT,
			parent_email TEXT,
			phone VARCHAR(20),
			notes TEXT,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS contracts (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			grade TEXT NOT NULL,
			monthly_amount INTEGER NOT NULL,
			enrollment_fee INTEGER NOT NULL,
			campaign TEXT,
			campaign_discount INTEGER NOT NULL DEFAULT 0,
			notes TEXT,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS contract_courses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			contract_id UUID NOT NULL REFERENCES contracts(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			course TEXT NOT NULL,
			weekly_lessons INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS lectures (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			label TEXT NOT NULL,
			grade TEXT NOT NULL,
			total_amount INTEGER NOT NULL,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS lecture_courses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			lecture_id UUID NOT NULL REFERENCES lectures(id) ON DELETE CASCADE,
			course TEXT NOT NULL,
			total_lessons INTEGER NOT NULL,
			unit_price INTEGER NOT NULL,
			subtotal INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS lecture_allocations (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			lecture_course_id UUID NOT NULL REFERENCES lecture_courses(id) ON DELETE CASCADE,
			year INTEGER NOT NULL,
			month INTEGER NOT NULL,
			lessons INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS material_sales (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			unit_price INTEGER NOT NULL,
			quantity INTEGER NOT NULL,
			total INTEGER NOT NULL,
			billing_year INTEGER NOT NULL,
			billing_month INTEGER NOT NULL,
			sold_on DATE NOT NULL,
			notes TEXT,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS lesson_templates (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			teacher_id UUID REFERENCES users(id),
			day_of_week VARCHAR(10) NOT NULL,
			start_time VARCHAR(5) NOT NULL,
			course TEXT NOT NULL,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS lessons (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			teacher_id UUID REFERENCES users(id),
			date DATE NOT NULL,
			start_time VARCHAR(5) NOT NULL,
			course TEXT NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'scheduled',
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS closed_days (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			date DATE UNIQUE NOT NULL,
			reason TEXT,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS reports (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			lesson_id UUID UNIQUE NOT NULL REFERENCES lessons(id) ON DELETE CASCADE,
			teacher_id UUID NOT NULL REFERENCES users(id),
			content TEXT NOT NULL,
			homework TEXT,
			progress TEXT,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS monthly_summaries (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			year INTEGER NOT NULL,
			month INTEGER NOT NULL,
			body TEXT NOT NULL,
			sent_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			UNIQUE (student_id, year, month)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_contracts_dates ON contracts (start_date, end_date)`,
		`CREATE INDEX IF NOT EXISTS idx_material_sales_billing ON material_sales (billing_year, billing_month)`,
		`CREATE INDEX IF NOT EXISTS idx_lessons_date ON lessons (date)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Failed to run schema migration: %v", err)
			return err
		}
	}
	return nil
}

func addLectureNotesColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'lectures'
				AND column_name = 'notes'
			) THEN
				ALTER TABLE lectures ADD COLUMN notes TEXT;
				RAISE NOTICE 'Added notes column to lectures';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for lectures notes column: %v", err)
		return err
	}
	return nil
}

func addSummaryStatusColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'monthly_summaries'
				AND column_name = 'status'
			) THEN
				ALTER TABLE monthly_summaries ADD COLUMN status VARCHAR(20) NOT NULL DEFAULT 'pending';
				RAISE NOTICE 'Added status column to monthly_summaries';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for monthly_summaries status column: %v", err)
		return err
	}
	return nil
}
