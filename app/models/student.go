package models

import "time"

// Student represents an enrolled student of the school.
type Student struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	LastName    string     `json:"last_name" gorm:"not null" validate:"required"`
	FirstName   string     `json:"first_name" gorm:"not null" validate:"required"`
	LastKana    string     `json:"last_kana,omitempty"`
	FirstKana   string     `json:"first_kana,omitempty"`
	Grade       string     `json:"grade" gorm:"not null" validate:"required"`
	School      string     `json:"school,omitempty"`
	Gender      Gender     `json:"gender,omitempty" gorm:"type:varchar(10)"`
	ParentName  string     `json:"parent_name,omitempty"`
	ParentEmail string     `json:"parent_email,omitempty" validate:"omitempty,email"`
	Phone       string     `json:"phone,omitempty" gorm:"type:varchar(20)"`
	Notes       string     `json:"notes,omitempty"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Contracts []*Contract     `json:"contracts,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Lectures  []*Lecture      `json:"lectures,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Sales     []*MaterialSale `json:"sales,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}

// FullName returns the student's display name in family-name-first order.
func (s *Student) FullName() string {
	return s.LastName + " " + s.FirstName
}
