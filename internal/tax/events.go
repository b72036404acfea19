// Package tax resolves upcoming Korean tax deadlines for a given
// taxpayer profile from a static rule calendar.
package tax

// Priority of a tax deadline.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Event is one tax deadline rule. DueDate is "MM-DD" in the static
// calendar; the resolver rewrites it to a full ISO date.
type Event struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	DueDate     string   `json:"due_date"`
	Targets     []string `json:"targets"`
	Category    string   `json:"category"`
	Priority    Priority `json:"priority"`
	Tip         string   `json:"tip"`
	Link        string   `json:"link,omitempty"`
}

// Taxpayer type labels used in profiles and event targets.
const (
	TypeSoleProprietor  = "개인사업자"
	TypeFreelancer      = "프리랜서"
	TypeCorporation     = "법인사업자"
	TypeGeneralTaxpayer = "일반과세자"
	TypeArtist          = "예술인"
)

var fixedEvents = []Event{
	{
		ID:          "vat-q4",
		Name:        "부가가치세 확정신고 (2기)",
		Description: "7~12월 매출/매입에 대한 부가세 신고·납부",
		DueDate:     "01-25",
		Targets:     []string{TypeGeneralTaxpayer, TypeCorporation},
		Category:    "부가가치세",
		Priority:    PriorityHigh,
		Tip:         "매입세액공제를 위해 세금계산서를 꼭 챙기세요",
		Link:        "https://www.hometax.go.kr",
	},
	{
		ID:          "local-income",
		Name:        "지방소득세 특별징수 신고",
		Description: "전월 원천징수한 지방소득세 신고·납부",
		DueDate:     "01-10",
		Targets:     []string{"원천징수의무자"},
		Category:    "지방세",
		Priority:    PriorityMedium,
		Tip:         "매월 10일까지 신고해야 해요",
	},
	{
		ID:          "corporate-tax",
		Name:        "법인세 신고",
		Description: "12월 결산법인 법인세 신고·납부",
		DueDate:     "03-31",
		Targets:     []string{TypeCorporation},
		Category:    "법인세",
		Priority:    PriorityHigh,
		Tip:         "결산 준비를 미리 해두세요",
		Link:        "https://www.hometax.go.kr",
	},
	{
		ID:          "vat-q1",
		Name:        "부가가치세 예정신고 (1기)",
		Description: "1~3월 매출/매입에 대한 부가세 예정신고",
		DueDate:     "04-25",
		Targets:     []string{TypeGeneralTaxpayer, TypeCorporation},
		Category:    "부가가치세",
		Priority:    PriorityHigh,
		Tip:         "예정신고 대상자인지 확인하세요",
	},
	{
		ID:          "income-tax",
		Name:        "종합소득세 신고",
		Description: "전년도 소득에 대한 종합소득세 신고·납부",
		DueDate:     "05-31",
		Targets:     []string{TypeSoleProprietor, TypeFreelancer, TypeArtist},
		Category:    "종합소득세",
		Priority:    PriorityHigh,
		Tip:         "경비처리 가능한 영수증을 미리 정리하세요",
		Link:        "https://www.hometax.go.kr",
	},
	{
		ID:          "vat-h1",
		Name:        "부가가치세 확정신고 (1기)",
		Description: "1~6월 매출/매입에 대한 부가세 신고·납부",
		DueDate:     "07-25",
		Targets:     []string{TypeGeneralTaxpayer, TypeCorporation},
		Category:    "부가가치세",
		Priority:    PriorityHigh,
		Tip:         "상반기 매입세금계산서를 정리하세요",
	},
	{
		ID:          "property-tax-1",
		Name:        "재산세 (1기분)",
		Description: "건물, 토지에 대한 재산세",
		DueDate:     "07-31",
		Targets:     []string{"부동산 소유자"},
		Category:    "지방세",
		Priority:    PriorityMedium,
		Tip:         "사업장 임차인은 해당 없어요",
	},
	{
		ID:          "income-tax-interim",
		Name:        "종합소득세 중간예납",
		Description: "상반기 소득에 대한 중간예납",
		DueDate:     "08-31",
		Targets:     []string{TypeSoleProprietor, TypeFreelancer},
		Category:    "종합소득세",
		Priority:    PriorityMedium,
		Tip:         "전년 세액의 50%가 고지되면 납부",
	},
	{
		ID:          "property-tax-2",
		Name:        "재산세 (2기분)",
		Description: "토지에 대한 재산세",
		DueDate:     "09-30",
		Targets:     []string{"부동산 소유자"},
		Category:    "지방세",
		Priority:    PriorityMedium,
		Tip:         "7월에 납부한 건물분과 별도예요",
	},
	{
		ID:          "vat-q3",
		Name:        "부가가치세 예정신고 (2기)",
		Description: "7~9월 매출/매입에 대한 부가세 예정신고",
		DueDate:     "10-25",
		Targets:     []string{TypeGeneralTaxpayer, TypeCorporation},
		Category:    "부가가치세",
		Priority:    PriorityHigh,
		Tip:         "예정신고 대상자인지 확인하세요",
	},
	{
		ID:          "income-tax-interim-2",
		Name:        "종합소득세 중간예납 납부",
		Description: "중간예납세액 납부 기한",
		DueDate:     "11-30",
		Targets:     []string{TypeSoleProprietor, TypeFreelancer},
		Category:    "종합소득세",
		Priority:    PriorityHigh,
		Tip:         "분납 가능 여부 확인하세요",
	},
}

// monthlyEvents repeat on a fixed day of every month. They are served
// as calendar data alongside the fixed rules.
var monthlyEvents = []Event{
	{
		ID:          "withholding",
		Name:        "원천세 신고·납부",
		Description: "전월 원천징수한 세금 신고·납부",
		DueDate:     "10",
		Targets:     []string{"원천징수의무자"},
		Category:    "원천세",
		Priority:    PriorityHigh,
		Tip:         "급여, 용역비 등을 지급한 경우",
		Link:        "https://www.hometax.go.kr",
	},
	{
		ID:          "four-insurance",
		Name:        "4대보험 납부",
		Description: "국민연금, 건강보험, 고용보험, 산재보험",
		DueDate:     "10",
		Targets:     []string{"사업자", "고용주"},
		Category:    "4대보험",
		Priority:    PriorityHigh,
		Tip:         "자동이체 설정하면 편해요",
	},
}

// FixedEvents returns the fixed-date deadline rules in calendar order.
func FixedEvents() []Event {
	return fixedEvents
}

// MonthlyEvents returns the monthly-recurring deadline rules.
func MonthlyEvents() []Event {
	return monthlyEvents
}
