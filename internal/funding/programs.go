// Package funding matches founder profiles against a static catalog of
// Korean public funding programs.
package funding

// Program is one public funding program. Target, Stage and Region hold
// the Korean labels the matcher compares against.
type Program struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Organization string   `json:"organization"`
	Category     string   `json:"category"`
	Target       []string `json:"target"`
	Stage        []string `json:"stage"`
	Region       []string `json:"region"`
	Amount       string   `json:"amount"`
	Period       string   `json:"period"`
	Deadline     string   `json:"deadline"`
	Description  string   `json:"description"`
	Benefits     []string `json:"benefits"`
	Requirements []string `json:"requirements"`
	Link         string   `json:"link"`
}

// Founder type labels used in profiles and program targets.
const (
	TargetPreFounder   = "예비창업자"
	TargetEarlyFounder = "초기창업자"
	TargetSmallBiz     = "소상공인"
	TargetArtist       = "예술인"
)

// RegionNationwide marks programs open regardless of region.
const RegionNationwide = "전국"

var programs = []Program{
	{
		ID:           "preliminary-startup",
		Name:         "예비창업패키지",
		Organization: "창업진흥원",
		Category:     "창업지원",
		Target:       []string{TargetPreFounder, TargetEarlyFounder},
		Stage:        []string{"아이디어", "시제품"},
		Region:       []string{RegionNationwide},
		Amount:       "최대 1억원",
		Period:       "약 10개월",
		Deadline:     "상반기 3월, 하반기 8월 (매년 변동)",
		Description:  "혁신적인 기술 아이디어를 보유한 예비창업자의 원활한 창업사업화를 지원",
		Benefits: []string{
			"사업화 자금 최대 1억원",
			"창업교육 및 멘토링",
			"사업공간 제공",
		},
		Requirements: []string{
			"신청일 기준 사업자등록 전 또는 1년 미만",
			"대표자 39세 이하 우대",
			"혁신성장 분야 아이템",
		},
		Link: "https://www.k-startup.go.kr",
	},
	{
		ID:           "initial-startup",
		Name:         "초기창업패키지",
		Organization: "창업진흥원",
		Category:     "창업지원",
		Target:       []string{TargetEarlyFounder},
		Stage:        []string{"시제품", "초기매출"},
		Region:       []string{RegionNationwide},
		Amount:       "최대 1억원",
		Period:       "약 10개월",
		Deadline:     "2월~3월 (매년 변동)",
		Description:  "창업 3년 이내 초기창업자의 성장을 위한 사업화 지원",
		Benefits: []string{
			"사업화 자금 최대 1억원",
			"전담 멘토링",
			"후속 투자 연계",
		},
		Requirements: []string{
			"창업 3년 이내 기업",
			"혁신 기술/아이디어 보유",
		},
		Link: "https://www.k-startup.go.kr",
	},
	{
		ID:           "seoul-youth",
		Name:         "서울시 청년창업지원",
		Organization: "서울시",
		Category:     "창업지원",
		Target:       []string{TargetPreFounder, TargetEarlyFounder},
		Stage:        []string{"아이디어", "시제품"},
		Region:       []string{"서울"},
		Amount:       "최대 5천만원",
		Period:       "6개월",
		Deadline:     "상시",
		Description:  "서울 거주 청년 창업자를 위한 맞춤형 지원",
		Benefits: []string{
			"사업화 자금",
			"공유오피스 제공",
			"네트워킹 기회",
		},
		Requirements: []string{
			"만 39세 이하 청년",
			"서울시 거주 또는 서울 소재 창업",
		},
		Link: "https://seoulsba.kr",
	},
	{
		ID:           "small-biz-policy",
		Name:         "소상공인 정책자금",
		Organization: "소상공인시장진흥공단",
		Category:     "소상공인",
		Target:       []string{TargetSmallBiz, TargetPreFounder},
		Stage:        []string{"아이디어", "시제품", "초기매출", "성장"},
		Region:       []string{RegionNationwide},
		Amount:       "최대 1억원 (대출)",
		Period:       "5년 (2년 거치)",
		Deadline:     "상시 (예산 소진 시 마감)",
		Description:  "소상공인의 경영안정 및 성장을 위한 저금리 정책자금",
		Benefits: []string{
			"연 2~3% 저금리 대출",
			"2년 거치 후 3년 상환",
			"신용등급 무관",
		},
		Requirements: []string{
			"소상공인 기준 충족",
			"사업자등록 보유",
		},
		Link: "https://www.semas.or.kr",
	},
	{
		ID:           "artist-welfare",
		Name:         "예술인 창작지원금",
		Organization: "예술인복지재단",
		Category:     "예술인",
		Target:       []string{TargetArtist},
		Stage:        []string{"아이디어", "시제품", "초기매출"},
		Region:       []string{RegionNationwide},
		Amount:       "300~500만원",
		Period:       "6개월",
		Deadline:     "상반기 4월, 하반기 9월",
		Description:  "예술인의 창작활동 지원을 위한 지원금",
		Benefits: []string{
			"창작지원금 지급",
			"창작 공간 연계",
			"전시/공연 기회 제공",
		},
		Requirements: []string{
			"예술활동증명 완료",
			"프로젝트 계획서 제출",
		},
		Link: "https://www.kawf.kr",
	},
	{
		ID:           "seoul-culture",
		Name:         "서울문화재단 통합공모",
		Organization: "서울문화재단",
		Category:     "예술인",
		Target:       []string{TargetArtist},
		Stage:        []string{"아이디어", "시제품"},
		Region:       []string{"서울"},
		Amount:       "1천만원~5천만원",
		Period:       "6~12개월",
		Deadline:     "1차 2월, 2차 7월",
		Description:  "서울 기반 예술인의 창작/기획/리서치 활동 지원",
		Benefits: []string{
			"프로젝트 지원금",
			"공간 지원",
			"홍보 지원",
		},
		Requirements: []string{
			"서울 거주 또는 활동 예술인",
			"프로젝트 기획안 제출",
		},
		Link: "https://www.sfac.or.kr",
	},
	{
		ID:           "content-korea",
		Name:         "콘텐츠 창의인재 동반사업",
		Organization: "한국콘텐츠진흥원",
		Category:     "콘텐츠",
		Target:       []string{TargetPreFounder, TargetEarlyFounder, TargetArtist},
		Stage:        []string{"아이디어", "시제품"},
		Region:       []string{RegionNationwide},
		Amount:       "최대 3천만원",
		Period:       "8개월",
		Deadline:     "3월~4월",
		Description:  "콘텐츠 분야 창작자/창업자 지원",
		Benefits: []string{
			"제작지원금",
			"멘토링",
			"유통/판로 연계",
		},
		Requirements: []string{
			"콘텐츠 분야 프로젝트",
			"창작 역량 보유",
		},
		Link: "https://www.kocca.kr",
	},
	{
		ID:           "tech-startup",
		Name:         "팁스(TIPS)",
		Organization: "중소벤처기업부",
		Category:     "창업지원",
		Target:       []string{TargetEarlyFounder},
		Stage:        []string{"시제품", "초기매출"},
		Region:       []string{RegionNationwide},
		Amount:       "최대 5억원 (R&D)",
		Period:       "2년",
		Deadline:     "상시",
		Description:  "민간 주도형 기술창업 지원 프로그램",
		Benefits: []string{
			"R&D 자금 최대 5억원",
			"엔젤투자 연계",
			"해외진출 지원",
		},
		Requirements: []string{
			"TIPS 운영사 추천 필수",
			"기술 기반 스타트업",
			"창업 7년 이내",
		},
		Link: "https://www.jointips.or.kr",
	},
}

// AllPrograms returns the full program catalog in stable order.
func AllPrograms() []Program {
	return programs
}
