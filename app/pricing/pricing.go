package pricing

import "fmt"

// Category buckets grades into price bands.
type Category string

const (
	Elementary Category = "elementary"
	JuniorHigh Category = "junior_high"
	SeniorHigh Category = "senior_high"
)

// Campaign names recognised on contracts. CampaignSpring is the only campaign
// that carries a tuition discount; callers gate the discount on it.
const (
	CampaignSpring         = "春の入塾応援キャンペーン"
	CampaignHalfEnrollment = "入会金半額キャンペーン"
)

// Facility fee charged every active month, halved under the same 16th-start
// rule as tuition.
const (
	FullFacilityFee = 3300
	HalfFacilityFee = 1650
)

const standardEnrollmentFee = 22000

// CourseLoad is one course entry with its weekly lesson count.
type CourseLoad struct {
	Course        string
	WeeklyLessons int
}

// Schedule is a price list: grade bands, monthly tuition per weekly lesson,
// per-lesson prices for seasonal lectures, and enrollment fees per campaign.
// It is constructed explicitly so historical contracts can be priced against
// an alternate schedule; nothing in this package holds mutable state.
type Schedule struct {
	gradeCategory  map[string]Category
	monthlyTuition map[Category]map[string]int
	lectureUnit    map[Category]map[string]int
	enrollmentFee  int
	campaignEnroll map[string]int
}

// DefaultSchedule returns the current production price list. All amounts are
// integer yen, tax included.
func DefaultSchedule() *Schedule {
	return &Schedule{
		gradeCategory: map[string]Category{
			"小1": Elementary, "小2": Elementary, "小3": Elementary,
			"小4": Elementary, "小5": Elementary, "小6": Elementary,
			"中1": JuniorHigh, "中2": JuniorHigh, "中3": JuniorHigh,
			"高1": SeniorHigh, "高2": SeniorHigh, "高3": SeniorHigh,
		},
		// Monthly tuition per one weekly lesson of the course.
		monthlyTuition: map[Category]map[string]int{
			Elementary: {"算数": 8800, "国語": 8800, "英語": 8800, "理科": 7700, "社会": 7700},
			JuniorHigh: {"数学": 13200, "英語": 13200, "国語": 12100, "理科": 11000, "社会": 11000},
			SeniorHigh: {"数学": 16500, "英語": 16500, "国語": 15400, "物理": 15400, "化学": 15400},
		},
		// Per-lesson price for seasonal lecture enrollments.
		lectureUnit: map[Category]map[string]int{
			Elementary: {"算数": 1650, "国語": 1650, "英語": 1650, "理科": 1650, "社会": 1650},
			JuniorHigh: {"数学": 2200, "英語": 2200, "国語": 2200, "理科": 2200, "社会": 2200},
			SeniorHigh: {"数学": 2750, "英語": 2750, "国語": 2750, "物理": 2750, "化学": 2750},
		},
		enrollmentFee: standardEnrollmentFee,
		campaignEnroll: map[string]int{
			CampaignSpring:         0,
			CampaignHalfEnrollment: 11000,
		},
	}
}

// CategoryFor maps a grade to its price band. An unknown grade is a
// configuration error, never a silent zero-price.
func (s *Schedule) CategoryFor(grade string) (Category, error) {
	cat, ok := s.gradeCategory[grade]
	if !ok {
		return "", fmt.Errorf("unknown grade: %s", grade)
	}
	return cat, nil
}

// MonthlyAmount computes a contract's base monthly tuition from grade and
// course list. Deterministic: the same inputs always yield the same amount.
func (s *Schedule) MonthlyAmount(grade string, courses []CourseLoad) (int, error) {
	cat, err := s.CategoryFor(grade)
	if err != nil {
		return 0, err
	}
	if len(courses) == 0 {
		return 0, fmt.Errorf("contract has no courses")
	}

	total := 0
	for _, cl := range courses {
		price, ok := s.monthlyTuition[cat][cl.Course]
		if !ok {
			return 0, fmt.Errorf("unknown course for %s: %s", grade, cl.Course)
		}
		if cl.WeeklyLessons <= 0 {
			return 0, fmt.Errorf("course %s: weekly lessons must be positive", cl.Course)
		}
		total += price * cl.WeeklyLessons
	}
	return total, nil
}

// CampaignDiscount computes the one-time discount magnitude for an eligible
// campaign: half of the first month's tuition, fractional yen dropped. The
// function does not check eligibility; callers invoke it only when the
// contract's campaign equals CampaignSpring, and use zero otherwise.
func (s *Schedule) CampaignDiscount(grade string, courses []CourseLoad) (int, error) {
	monthly, err := s.MonthlyAmount(grade, courses)
	if err != nil {
		return 0, err
	}
	return monthly / 2, nil
}

// EnrollmentFee returns the enrollment fee for a campaign string, with the
// empty string meaning "no campaign". Campaigns without a configured override
// pay the standard fee.
func (s *Schedule) EnrollmentFee(campaign string) int {
	if fee, ok := s.campaignEnroll[campaign]; ok {
		return fee
	}
	return s.enrollmentFee
}

// LectureUnitPrice returns the per-lesson price for a seasonal lecture course.
func (s *Schedule) LectureUnitPrice(grade, course string) (int, error) {
	cat, err := s.CategoryFor(grade)
	if err != nil {
		return 0, err
	}
	price, ok := s.lectureUnit[cat][course]
	if !ok {
		return 0, fmt.Errorf("unknown course for %s: %s", grade, course)
	}
	return price, nil
}
