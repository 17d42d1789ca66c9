package models

import "time"

// MaterialSale is a single textbook/material purchase billed to one student in
// one specific billing month. Total is derived from unit price and quantity on
// every write.
type MaterialSale struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID    string    `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name         string    `json:"name" gorm:"not null" validate:"required"`
	UnitPrice    int       `json:"unit_price" gorm:"not null" validate:"required,gt=0"`
	Quantity     int       `json:"quantity" gorm:"not null" validate:"required,gt=0"`
	Total        int       `json:"total" gorm:"not null"`
	BillingYear  int       `json:"billing_year" gorm:"not null;index" validate:"required"`
	BillingMonth int       `json:"billing_month" gorm:"not null;index" validate:"required,min=1,max=12"`
	SoldOn       time.Time `json:"sold_on" gorm:"not null;type:date" validate:"required"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}

// Recalculate refreshes the derived total from unit price and quantity.
func (m *MaterialSale) Recalculate() {
	m.Total = m.UnitPrice * m.Quantity
}
