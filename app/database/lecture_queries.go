package database

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/models"
)

// CreateLecture inserts a lecture with its course entries and month
// allocations in one transaction. Derived prices are already computed
// server-side; allocation sums are validated by the caller before this runs.
func CreateLecture(db *sql.DB, lecture *models.Lecture) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO lectures (student_id, label, grade, total_amount, notes, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err = tx.QueryRow(query,
		lecture.StudentID, lecture.Label, lecture.Grade, lecture.TotalAmount, lecture.Notes,
	).Scan(&lecture.ID, &lecture.CreatedAt, &lecture.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert lecture: %v", err)
	}

	if err := insertLectureCourses(tx, lecture); err != nil {
		return err
	}
	return tx.Commit()
}

// UpdateLecture rewrites the lecture row and replaces courses and allocations.
func UpdateLecture(db *sql.DB, lecture *models.Lecture) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `UPDATE lectures
			  SET student_id = $1, label = $2, grade = $3, total_amount = $4, notes = $5, updated_at = NOW()
			  WHERE id = $6`

	result, err := tx.Exec(query,
		lecture.StudentID, lecture.Label, lecture.Grade, lecture.TotalAmount, lecture.Notes, lecture.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update lecture: %v", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("lecture not found")
	}

	if _, err := tx.Exec(`DELETE FROM lecture_courses WHERE lecture_id = $1`, lecture.ID); err != nil {
		return fmt.Errorf("failed to replace lecture courses: %v", err)
	}
	if err := insertLectureCourses(tx, lecture); err != nil {
		return err
	}
	return tx.Commit()
}

func insertLectureCourses(tx *sql.Tx, lecture *models.Lecture) error {
	courseQuery := `INSERT INTO lecture_courses (lecture_id, course, total_lessons, unit_price, subtotal)
			  VALUES ($1, $2, $3, $4, $5) RETURNING id`
	allocQuery := `INSERT INTO lecture_allocations (lecture_course_id, year, month, lessons)
			  VALUES ($1, $2, $3, $4) RETURNING id`

	for i := range lecture.Courses {
		course := &lecture.Courses[i]
		course.LectureID = lecture.ID
		err := tx.QueryRow(courseQuery, lecture.ID, course.Course, course.TotalLessons,
			course.UnitPrice, course.Subtotal).Scan(&course.ID)
		if err != nil {
			return fmt.Errorf("failed to insert lecture course: %v", err)
		}
		for j := range course.Allocations {
			alloc := &course.Allocations[j]
			alloc.LectureCourseID = course.ID
			err := tx.QueryRow(allocQuery, course.ID, alloc.Year, alloc.Month, alloc.Lessons).Scan(&alloc.ID)
			if err != nil {
				return fmt.Errorf("failed to insert lecture allocation: %v", err)
			}
		}
	}
	return nil
}

// DeleteLecture hard deletes a lecture; courses and allocations cascade.
func DeleteLecture(db *sql.DB, lectureID string) error {
	result, err := db.Exec(`DELETE FROM lectures WHERE id = $1`, lectureID)
	if err != nil {
		return fmt.Errorf("failed to delete lecture: %v", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("lecture not found")
	}
	return nil
}

func GetLectureByID(db *sql.DB, lectureID string) (*models.Lecture, error) {
	lectures, err := scanLectures(db, `WHERE l.id = $1`, lectureID)
	if err != nil {
		return nil, err
	}
	if len(lectures) == 0 {
		return nil, sql.ErrNoRows
	}
	return lectures[0], nil
}

// GetAllLectures returns every lecture with courses and allocations loaded.
func GetAllLectures(db *sql.DB) ([]*models.Lecture, error) {
	return scanLectures(db, `ORDER BY l.created_at DESC`)
}

// GetLecturesForMonth returns lectures with at least one allocation in the
// given month, fully loaded so the aggregator can pick matching entries.
func GetLecturesForMonth(db *sql.DB, year, month int) ([]*models.Lecture, error) {
	return scanLectures(db, `WHERE l.id IN (
			SELECT lc.lecture_id FROM lecture_courses lc
			JOIN lecture_allocations la ON la.lecture_course_id = lc.id
			WHERE la.year = $1 AND la.month = $2 AND la.lessons > 0
		) ORDER BY l.created_at`, year, month)
}

func scanLectures(db *sql.DB, where string, args ...interface{}) ([]*models.Lecture, error) {
	query := `SELECT l.id, l.student_id, l.label, l.grade, l.total_amount, l.notes,
			  l.created_at, l.updated_at, s.last_name, s.first_name, s.parent_email
			  FROM lectures l
			  JOIN students s ON l.student_id = s.id ` + where

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lectures []*models.Lecture
	var ids []string
	byID := make(map[string]*models.Lecture)
	for rows.Next() {
		lecture := &models.Lecture{Student: &models.Student{}}
		var notes, parentEmail sql.NullString
		err := rows.Scan(
			&lecture.ID, &lecture.StudentID, &lecture.Label, &lecture.Grade,
			&lecture.TotalAmount, &notes, &lecture.CreatedAt, &lecture.UpdatedAt,
			&lecture.Student.LastName, &lecture.Student.FirstName, &parentEmail,
		)
		if err != nil {
			return nil, err
		}
		lecture.Notes = notes.String
		lecture.Student.ID = lecture.StudentID
		lecture.Student.ParentEmail = parentEmail.String
		lectures = append(lectures, lecture)
		ids = append(ids, lecture.ID)
		byID[lecture.ID] = lecture
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if lectures == nil {
		return []*models.Lecture{}, nil
	}

	courseQuery := `SELECT lc.id, lc.lecture_id, lc.course, lc.total_lessons, lc.unit_price, lc.subtotal,
			  la.id, la.year, la.month, la.lessons
			  FROM lecture_courses lc
			  LEFT JOIN lecture_allocations la ON la.lecture_course_id = lc.id
			  WHERE lc.lecture_id = ANY($1)
			  ORDER BY lc.lecture_id, lc.id, la.year, la.month`
	courseRows, err := db.Query(courseQuery, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer courseRows.Close()

	courseIndex := make(map[string]int)
	for courseRows.Next() {
		var course models.LectureCourse
		var allocID sql.NullString
		var allocYear, allocMonth, allocLessons sql.NullInt64
		err := courseRows.Scan(
			&course.ID, &course.LectureID, &course.Course, &course.TotalLessons,
			&course.UnitPrice, &course.Subtotal,
			&allocID, &allocYear, &allocMonth, &allocLessons,
		)
		if err != nil {
			return nil, err
		}
		lecture, ok := byID[course.LectureID]
		if !ok {
			continue
		}
		idx, ok := courseIndex[course.ID]
		if !ok {
			lecture.Courses = append(lecture.Courses, course)
			idx = len(lecture.Courses) - 1
			courseIndex[course.ID] = idx
		}
		if allocID.Valid {
			lecture.Courses[idx].Allocations = append(lecture.Courses[idx].Allocations, models.MonthAllocation{
				ID:              allocID.String,
				LectureCourseID: course.ID,
				Year:            int(allocYear.Int64),
				Month:           int(allocMonth.Int64),
				Lessons:         int(allocLessons.Int64),
			})
		}
	}
	return lectures, courseRows.Err()
}
