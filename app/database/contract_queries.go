package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/models"
)

// CreateContract inserts a contract and its course entries in one transaction.
// Derived amounts on the struct are expected to be already computed server-side.
func CreateContract(db *sql.DB, contract *models.Contract) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO contracts (student_id, start_date, end_date, grade, monthly_amount,
			  enrollment_fee, campaign, campaign_discount, notes, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err = tx.QueryRow(query,
		contract.StudentID, contract.StartDate, contract.EndDate, contract.Grade,
		contract.MonthlyAmount, contract.EnrollmentFee, contract.Campaign,
		contract.CampaignDiscount, contract.Notes,
	).Scan(&contract.ID, &contract.CreatedAt, &contract.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert contract: %v", err)
	}

	if err := insertContractCourses(tx, contract); err != nil {
		return err
	}
	return tx.Commit()
}

// UpdateContract rewrites the contract row and replaces its course entries.
func UpdateContract(db *sql.DB, contract *models.Contract) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `UPDATE contracts
			  SET student_id = $1, start_date = $2, end_date = $3, grade = $4,
			      monthly_amount = $5, enrollment_fee = $6, campaign = $7,
			      campaign_discount = $8, notes = $9, updated_at = NOW()
			  WHERE id = $10`

	result, err := tx.Exec(query,
		contract.StudentID, contract.StartDate, contract.EndDate, contract.Grade,
		contract.MonthlyAmount, contract.EnrollmentFee, contract.Campaign,
		contract.CampaignDiscount, contract.Notes, contract.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update contract: %v", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("contract not found")
	}

	if _, err := tx.Exec(`DELETE FROM contract_courses WHERE contract_id = $1`, contract.ID); err != nil {
		return fmt.Errorf("failed to replace contract courses: %v", err)
	}
	if err := insertContractCourses(tx, contract); err != nil {
		return err
	}
	return tx.Commit()
}

func insertContractCourses(tx *sql.Tx, contract *models.Contract) error {
	query := `INSERT INTO contract_courses (contract_id, position, course, weekly_lessons)
			  VALUES ($1, $2, $3, $4) RETURNING id`
	for i := range contract.Courses {
		course := &contract.Courses[i]
		course.ContractID = contract.ID
		course.Position = i
		if err := tx.QueryRow(query, contract.ID, i, course.Course, course.WeeklyLessons).Scan(&course.ID); err != nil {
			return fmt.Errorf("failed to insert contract course: %v", err)
		}
	}
	return nil
}

// DeleteContract hard deletes a contract; course entries go with it via cascade.
func DeleteContract(db *sql.DB, contractID string) error {
	result, err := db.Exec(`DELETE FROM contracts WHERE id = $1`, contractID)
	if err != nil {
		return fmt.Errorf("failed to delete contract: %v", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("contract not found")
	}
	return nil
}

func GetContractByID(db *sql.DB, contractID string) (*models.Contract, error) {
	contracts, err := scanContracts(db, `WHERE c.id = $1`, contractID)
	if err != nil {
		return nil, err
	}
	if len(contracts) == 0 {
		return nil, sql.ErrNoRows
	}
	return contracts[0], nil
}

// GetContractsByStudent returns all of a student's contracts, newest first.
func GetContractsByStudent(db *sql.DB, studentID string) ([]*models.Contract, error) {
	return scanContracts(db, `WHERE c.student_id = $1 ORDER BY c.start_date DESC`, studentID)
}

// GetContractsOverlapping returns every contract whose [start_date, end_date]
// interval overlaps the given month, with course entries and student loaded.
func GetContractsOverlapping(db *sql.DB, year, month int) ([]*models.Contract, error) {
	firstDay := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	lastDay := firstDay.AddDate(0, 1, -1)
	return scanContracts(db,
		`WHERE c.start_date <= $1 AND c.end_date >= $2 ORDER BY c.start_date`,
		lastDay, firstDay)
}

// GetAllContracts returns every contract, newest first.
func GetAllContracts(db *sql.DB) ([]*models.Contract, error) {
	return scanContracts(db, `ORDER BY c.start_date DESC`)
}

func scanContracts(db *sql.DB, where string, args ...interface{}) ([]*models.Contract, error) {
	query := `SELECT c.id, c.student_id, c.start_date, c.end_date, c.grade, c.monthly_amount,
			  c.enrollment_fee, c.campaign, c.campaign_discount, c.notes, c.created_at, c.updated_at,
			  s.last_name, s.first_name, s.grade, s.parent_email
			  FROM contracts c
			  JOIN students s ON c.student_id = s.id ` + where

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contracts []*models.Contract
	var ids []string
	byID := make(map[string]*models.Contract)
	for rows.Next() {
		contract := &models.Contract{Student: &models.Student{}}
		var campaign, notes, parentEmail sql.NullString
		err := rows.Scan(
			&contract.ID, &contract.StudentID, &contract.StartDate, &contract.EndDate,
			&contract.Grade, &contract.MonthlyAmount, &contract.EnrollmentFee,
			&campaign, &contract.CampaignDiscount, &notes, &contract.CreatedAt, &contract.UpdatedAt,
			&contract.Student.LastName, &contract.Student.FirstName,
			&contract.Student.Grade, &parentEmail,
		)
		if err != nil {
			return nil, err
		}
		if campaign.Valid {
			contract.Campaign = &campaign.String
		}
		contract.Notes = notes.String
		contract.Student.ID = contract.StudentID
		contract.Student.ParentEmail = parentEmail.String
		contracts = append(contracts, contract)
		ids = append(ids, contract.ID)
		byID[contract.ID] = contract
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if contracts == nil {
		return []*models.Contract{}, nil
	}

	courseQuery := `SELECT id, contract_id, position, course, weekly_lessons
			  FROM contract_courses WHERE contract_id = ANY($1) ORDER BY contract_id, position`
	courseRows, err := db.Query(courseQuery, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer courseRows.Close()

	for courseRows.Next() {
		var course models.ContractCourse
		if err := courseRows.Scan(&course.ID, &course.ContractID, &course.Position,
			&course.Course, &course.WeeklyLessons); err != nil {
			return nil, err
		}
		if contract, ok := byID[course.ContractID]; ok {
			contract.Courses = append(contract.Courses, course)
		}
	}
	return contracts, courseRows.Err()
}
