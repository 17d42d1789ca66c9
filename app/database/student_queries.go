package database

import (
	"database/sql"
	"fmt"

	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/models"
)

// StudentFilters represents filtering options for students
type StudentFilters struct {
	Search string
	Grade  string
	Status string
	Limit  int
	Offset int
}

func GetStudents(db *sql.DB, filters StudentFilters) ([]*models.Student, error) {
	query := `SELECT id, last_name, first_name, last_kana, first_kana, grade, school,
			  gender, parent_name, parent_email, phone, notes, is_active, created_at, updated_at
			  FROM students WHERE deleted_at IS NULL`

	var args []interface{}
	argIndex := 1

	if filters.Status == "inactive" {
		query += " AND is_active = false"
	} else if filters.Status != "all" {
		query += " AND is_active = true"
	}

	if filters.Search != "" {
		query += fmt.Sprintf(` AND (last_name ILIKE $%d OR first_name ILIKE $%d OR last_kana ILIKE $%d OR first_kana ILIKE $%d)`,
			argIndex, argIndex, argIndex, argIndex)
		args = append(args, "%"+filters.Search+"%")
		argIndex++
	}

	if filters.Grade != "" {
		query += fmt.Sprintf(" AND grade = $%d", argIndex)
		args = append(args, filters.Grade)
		argIndex++
	}

	query += " ORDER BY grade, last_kana, first_kana"

	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
		args = append(args, filters.Limit, filters.Offset)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student := &models.Student{}
		var lastKana, firstKana, school, gender, parentName, parentEmail, phone, notes sql.NullString
		err := rows.Scan(
			&student.ID, &student.LastName, &student.FirstName, &lastKana, &firstKana,
			&student.Grade, &school, &gender, &parentName, &parentEmail, &phone, &notes,
			&student.IsActive, &student.CreatedAt, &student.UpdatedAt,
		)
		if err != nil {
			continue
		}
		student.LastKana = lastKana.String
		student.FirstKana = firstKana.String
		student.School = school.String
		student.Gender = models.Gender(gender.String)
		student.ParentName = parentName.String
		student.ParentEmail = parentEmail.String
		student.Phone = phone.String
		student.Notes = notes.String
		students = append(students, student)
	}

	if students == nil {
		students = []*models.Student{}
	}
	return students, nil
}

func GetStudentByID(db *sql.DB, studentID string) (*models.Student, error) {
	student := &models.Student{}
	var lastKana, firstKana, school, gender, parentName, parentEmail, phone, notes sql.NullString

	query := `SELECT id, last_name, first_name, last_kana, first_kana, grade, school,
			  gender, parent_name, parent_email, phone, notes, is_active, created_at, updated_at
			  FROM students WHERE id = $1 AND deleted_at IS NULL`

	err := db.QueryRow(query, studentID).Scan(
		&student.ID, &student.LastName, &student.FirstName, &lastKana, &firstKana,
		&student.Grade, &school, &gender, &parentName, &parentEmail, &phone, &notes,
		&student.IsActive, &student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	student.LastKana = lastKana.String
	student.FirstKana = firstKana.String
	student.School = school.String
	student.Gender = models.Gender(gender.String)
	student.ParentName = parentName.String
	student.ParentEmail = parentEmail.String
	student.Phone = phone.String
	student.Notes = notes.String
	return student, nil
}

func CreateStudent(db *sql.DB, student *models.Student) error {
	query := `INSERT INTO students (last_name, first_name, last_kana, first_kana, grade, school,
			  gender, parent_name, parent_email, phone, notes, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query,
		student.LastName, student.FirstName, student.LastKana, student.FirstKana,
		student.Grade, student.School, string(student.Gender),
		student.ParentName, student.ParentEmail, student.Phone, student.Notes,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
}

func UpdateStudent(db *sql.DB, student *models.Student) error {
	query := `UPDATE students
			  SET last_name = $1, first_name = $2, last_kana = $3, first_kana = $4,
			      grade = $5, school = $6, gender = $7, parent_name = $8, parent_email = $9,
			      phone = $10, notes = $11, is_active = $12, updated_at = NOW()
			  WHERE id = $13 AND deleted_at IS NULL`

	result, err := db.Exec(query,
		student.LastName, student.FirstName, student.LastKana, student.FirstKana,
		student.Grade, student.School, string(student.Gender),
		student.ParentName, student.ParentEmail, student.Phone, student.Notes,
		student.IsActive, student.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update student: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %v", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("student not found")
	}
	return nil
}

// DeactivateStudent soft deletes a student (sets is_active = false)
func DeactivateStudent(db *sql.DB, studentID string) error {
	query := `UPDATE students SET is_active = false, updated_at = NOW() WHERE id = $1`

	result, err := db.Exec(query, studentID)
	if err != nil {
		return fmt.Errorf("failed to deactivate student: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %v", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("student not found")
	}
	return nil
}
