package models

import "time"

// Contract represents a student's recurring monthly enrollment in a set of
// courses over a date range. MonthlyAmount, EnrollmentFee and CampaignDiscount
// are always derived server-side from (grade, courses, campaign); they are
// recomputed on every write and never accepted from a client.
type Contract struct {
	ID               string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID        string     `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	StartDate        time.Time  `json:"start_date" gorm:"not null;type:date" validate:"required"`
	EndDate          time.Time  `json:"end_date" gorm:"not null;type:date" validate:"required"`
	Grade            string     `json:"grade" gorm:"not null" validate:"required"`
	MonthlyAmount    int        `json:"monthly_amount" gorm:"not null"`
	EnrollmentFee    int        `json:"enrollment_fee" gorm:"not null"`
	Campaign         *string    `json:"campaign,omitempty"`
	CampaignDiscount int        `json:"campaign_discount" gorm:"not null;default:0"`
	Notes            string     `json:"notes,omitempty"`
	CreatedAt        time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time  `json:"updated_at" gorm:"autoUpdateTime"`

	Courses []ContractCourse `json:"courses" gorm:"foreignKey:ContractID;references:ID" validate:"required,min=1,dive"`
	Student *Student         `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}

// ContractCourse is one course entry on a contract, ordered by Position.
type ContractCourse struct {
	ID            string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ContractID    string `json:"contract_id" gorm:"not null;index;type:uuid"`
	Position      int    `json:"position" gorm:"not null"`
	Course        string `json:"course" gorm:"not null" validate:"required"`
	WeeklyLessons int    `json:"weekly_lessons" gorm:"not null" validate:"required,gt=0"`
}

// CampaignName returns the campaign string, with nil meaning "no campaign".
func (ct *Contract) CampaignName() string {
	if ct.Campaign == nil {
		return ""
	}
	return *ct.Campaign
}
