// Package billing computes monthly billing lines and dashboard trends from
// contract, lecture and material-sale rows already fetched by the caller.
// Everything here is a pure pass over those rows: no I/O, no shared state,
// safe to call concurrently for different months or row sets.
package billing

import (
	"time"

	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/models"
	"github.com/prepschoollefy-maker/shidouhoukokusyo-sub001/app/pricing"
)

// ContractCharge is the proration outcome of one contract for one month.
type ContractCharge struct {
	IsFirstMonth     bool `json:"is_first_month"`
	IsHalf           bool `json:"is_half"`
	Tuition          int  `json:"tuition"`
	EnrollmentFee    int  `json:"enrollment_fee"`
	FacilityFee      int  `json:"facility_fee"`
	CampaignDiscount int  `json:"campaign_discount"`
	Total            int  `json:"total_amount"`
}

// ContractLine is one contract's billing line for the month.
type ContractLine struct {
	ContractID  string `json:"contract_id"`
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name,omitempty"`
	Grade       string `json:"grade"`
	ContractCharge
}

// LectureLine is one lecture course's billing line for the month.
type LectureLine struct {
	LectureID   string `json:"lecture_id"`
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name,omitempty"`
	Label       string `json:"label"`
	Course      string `json:"course"`
	UnitPrice   int    `json:"unit_price"`
	Lessons     int    `json:"lessons"`
	Amount      int    `json:"amount"`
}

// MaterialLine is one material sale billed in the month, carried verbatim.
type MaterialLine struct {
	SaleID      string `json:"sale_id"`
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name,omitempty"`
	Name        string `json:"name"`
	UnitPrice   int    `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	Total       int    `json:"total"`
}

// Result is the full billing breakdown for one month. It is regenerated on
// every query and never persisted.
type Result struct {
	Year          int            `json:"year"`
	Month         int            `json:"month"`
	Contracts     []ContractLine `json:"contracts"`
	Lectures      []LectureLine  `json:"lectures"`
	Materials     []MaterialLine `json:"materials"`
	ContractTotal int            `json:"contract_total"`
	LectureTotal  int            `json:"lecture_total"`
	MaterialTotal int            `json:"material_total"`
	Total         int            `json:"total"`
}

func firstDayOf(year, month int) time.Time {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
}

func lastDayOf(year, month int) time.Time {
	return firstDayOf(year, month).AddDate(0, 1, -1)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// Overlaps reports whether the contract's [start, end] interval touches the
// target month: start <= last day of month AND end >= first day of month.
func Overlaps(ct *models.Contract, year, month int) bool {
	start := dateOnly(ct.StartDate)
	end := dateOnly(ct.EndDate)
	return !start.After(lastDayOf(year, month)) && !end.Before(firstDayOf(year, month))
}

// ChargeForMonth applies the proration rule to one contract for one month.
// A contract starting on the 16th or later of its first month is billed half
// tuition (fractional yen floored, never billed) and the half facility fee;
// enrollment fee and campaign discount apply exactly once, in the start month.
// Both the monthly billing view and the twelve-month trend use this one rule.
func ChargeForMonth(ct *models.Contract, year, month int) ContractCharge {
	start := ct.StartDate
	isFirstMonth := start.Year() == year && int(start.Month()) == month
	isHalf := isFirstMonth && start.Day() >= 16

	charge := ContractCharge{
		IsFirstMonth: isFirstMonth,
		IsHalf:       isHalf,
		Tuition:      ct.MonthlyAmount,
		FacilityFee:  pricing.FullFacilityFee,
	}
	if isHalf {
		charge.Tuition = ct.MonthlyAmount / 2
		charge.FacilityFee = pricing.HalfFacilityFee
	}
	if isFirstMonth {
		charge.EnrollmentFee = ct.EnrollmentFee
		charge.CampaignDiscount = ct.CampaignDiscount
	}
	charge.Total = charge.Tuition + charge.EnrollmentFee + charge.FacilityFee - charge.CampaignDiscount
	return charge
}

// Aggregate builds the billing breakdown for (year, month) from the supplied
// rows. Contracts not overlapping the month are skipped; lectures contribute
// one line per course entry with a non-zero allocation in the month; material
// sales are carried verbatim when their billing month matches.
func Aggregate(year, month int, contracts []*models.Contract, lectures []*models.Lecture, sales []*models.MaterialSale) Result {
	result := Result{Year: year, Month: month}

	for _, ct := range contracts {
		if !Overlaps(ct, year, month) {
			continue
		}
		line := ContractLine{
			ContractID:     ct.ID,
			StudentID:      ct.StudentID,
			Grade:          ct.Grade,
			ContractCharge: ChargeForMonth(ct, year, month),
		}
		if ct.Student != nil {
			line.StudentName = ct.Student.FullName()
		}
		result.Contracts = append(result.Contracts, line)
		result.ContractTotal += line.Total
	}

	for _, lec := range lectures {
		for _, course := range lec.Courses {
			lessons := course.AllocationFor(year, month)
			if lessons <= 0 {
				continue
			}
			line := LectureLine{
				LectureID: lec.ID,
				StudentID: lec.StudentID,
				Label:     lec.Label,
				Course:    course.Course,
				UnitPrice: course.UnitPrice,
				Lessons:   lessons,
				Amount:    course.UnitPrice * lessons,
			}
			if lec.Student != nil {
				line.StudentName = lec.Student.FullName()
			}
			result.Lectures = append(result.Lectures, line)
			result.LectureTotal += line.Amount
		}
	}

	for _, sale := range sales {
		if sale.BillingYear != year || sale.BillingMonth != month {
			continue
		}
		line := MaterialLine{
			SaleID:    sale.ID,
			StudentID: sale.StudentID,
			Name:      sale.Name,
			UnitPrice: sale.UnitPrice,
			Quantity:  sale.Quantity,
			Total:     sale.Total,
		}
		if sale.Student != nil {
			line.StudentName = sale.Student.FullName()
		}
		result.Materials = append(result.Materials, line)
		result.MaterialTotal += line.Total
	}

	result.Total = result.ContractTotal + result.LectureTotal + result.MaterialTotal
	return result
}
