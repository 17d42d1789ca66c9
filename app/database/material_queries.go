package database

import (
	"database/sql"
	"fmt"

	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/models"
)

func CreateMaterialSale(db *sql.DB, sale *models.MaterialSale) error {
	query := `INSERT INTO material_sales (student_id, name, unit_price, quantity, total,
			  billing_year, billing_month, sold_on, notes, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query,
		sale.StudentID, sale.Name, sale.UnitPrice, sale.Quantity, sale.Total,
		sale.BillingYear, sale.BillingMonth, sale.SoldOn, sale.Notes,
	).Scan(&sale.ID, &sale.CreatedAt, &sale.UpdatedAt)
}

func UpdateMaterialSale(db *sql.DB, sale *models.MaterialSale) error {
	query := `UPDATE material_sales
			  SET student_id = $1, name = $2, unit_price = $3, quantity = $4, total = $5,
			      billing_year = $6, billing_month = $7, sold_on = $8, notes = $9, updated_at = NOW()
			  WHERE id = $10`

	result, err := db.Exec(query,
		sale.StudentID, sale.Name, sale.UnitPrice, sale.Quantity, sale.Total,
		sale.BillingYear, sale.BillingMonth, sale.SoldOn, sale.Notes, sale.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update material sale: %v", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("material sale not found")
	}
	return nil
}

func DeleteMaterialSale(db *sql.DB, saleID string) error {
	result, err := db.Exec(`DELETE FROM material_sales WHERE id = $1`, saleID)
	if err != nil {
		return fmt.Errorf("failed to delete material sale: %v", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("material sale not found")
	}
	return nil
}

func GetMaterialSaleByID(db *sql.DB, saleID string) (*models.MaterialSale, error) {
	sales, err := scanMaterialSales(db, `WHERE m.id = $1`, saleID)
	if err != nil {
		return nil, err
	}
	if len(sales) == 0 {
		return nil, sql.ErrNoRows
	}
	return sales[0], nil
}

// GetMaterialSalesForMonth returns material sales billed in the given month.
func GetMaterialSalesForMonth(db *sql.DB, year, month int) ([]*models.MaterialSale, error) {
	return scanMaterialSales(db,
		`WHERE m.billing_year = $1 AND m.billing_month = $2 ORDER BY m.sold_on`, year, month)
}

// GetMaterialSalesByStudent returns a student's material sales, newest first.
func GetMaterialSalesByStudent(db *sql.DB, studentID string) ([]*models.MaterialSale, error) {
	return scanMaterialSales(db, `WHERE m.student_id = $1 ORDER BY m.sold_on DESC`, studentID)
}

func scanMaterialSales(db *sql.DB, where string, args ...interface{}) ([]*models.MaterialSale, error) {
	query := `SELECT m.id, m.student_id, m.name, m.unit_price, m.quantity, m.total,
			  m.billing_year, m.billing_month, m.sold_on, m.notes, m.created_at, m.updated_at,
			  s.last_name, s.first_name
			  FROM material_sales m
			  JOIN students s ON m.student_id = s.id ` + where

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []*models.MaterialSale
	for rows.Next() {
		sale := &models.MaterialSale{Student: &models.Student{}}
		var notes sql.NullString
		err := rows.Scan(
			&sale.ID, &sale.StudentID, &sale.Name, &sale.UnitPrice, &sale.Quantity,
			&sale.Total, &sale.BillingYear, &sale.BillingMonth, &sale.SoldOn, &notes,
			&sale.CreatedAt, &sale.UpdatedAt,
			&sale.Student.LastName, &sale.Student.FirstName,
		)
		if err != nil {
			return nil, err
		}
		sale.Notes = notes.String
		sale.Student.ID = sale.StudentID
		sales = append(sales, sale)
	}

	if sales == nil {
		sales = []*models.MaterialSale{}
	}
	return sales, rows.Err()
}
