// Package templates holds the static interview template catalog: one
// ordered question set plus a prompt skeleton per supported program type.
// Defined at process start, immutable.
package templates

// Question is one interview turn. Label is the short heading used for
// the answer when the prompt is assembled.
type Question struct {
	ID          int    `json:"id"`
	Question    string `json:"question"`
	Label       string `json:"label"`
	Hint        string `json:"hint"`
	Placeholder string `json:"placeholder"`
}

// Template is a named question set plus the prompt skeleton used to
// shape one generated document. PromptTemplate contains exactly one
// AnswersMarker substitution point.
type Template struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Icon           string     `json:"icon"`
	Description    string     `json:"description"`
	Category       string     `json:"category"`
	Questions      []Question `json:"questions"`
	PromptTemplate string     `json:"-"`
}

// AnswersMarker is the single substitution marker in a prompt skeleton.
const AnswersMarker = "{{answers}}"

// DefaultTemplateID identifies the fallback template used when a request
// carries no template id or an unknown one.
const DefaultTemplateID = "preliminary-startup"

var catalog = []Template{
	{
		ID:          "preliminary-startup",
		Name:        "예비창업패키지",
		Icon:        "🚀",
		Description: "예비창업패키지 지원용 사업계획서 (10개 질문)",
		Category:    "창업지원",
		Questions: []Question{
			{
				ID:          1,
				Question:    "어떤 문제를 해결하고 싶으세요?",
				Label:       "해결하고 싶은 문제",
				Hint:        "고객이 겪고 있는 불편함이나 해결되지 않은 니즈를 말해주세요.",
				Placeholder: "예: 프리랜서 예술가들이 세금 신고할 때 뭘 해야 할지 몰라서 어려워해요",
			},
			{
				ID:          2,
				Question:    "왜 이 문제에 관심을 갖게 됐나요?",
				Label:       "문제에 관심을 갖게 된 이유",
				Hint:        "개인적인 경험이나 발견한 계기를 말해주세요.",
				Placeholder: "예: 저도 프리랜서로 일하면서 첫 세금 신고 때 정말 막막했어요",
			},
			{
				ID:          3,
				Question:    "이 문제를 겪고 있는 사람들은 누구인가요?",
				Label:       "타겟 고객",
				Hint:        "타겟 고객을 구체적으로 설명해주세요. (연령, 직업, 상황 등)",
				Placeholder: "예: 20-30대 프리랜서 예술가, 1인 창작자, 연 수입 5천만원 이하",
			},
			{
				ID:          4,
				Question:    "지금은 이 문제를 어떻게 해결하고 있나요?",
				Label:       "현재 해결 방식 (경쟁 현황)",
				Hint:        "기존 해결책이나 경쟁 서비스를 말해주세요.",
				Placeholder: "예: 블로그 검색하거나, 지인한테 물어보거나, 세무사 찾아가요",
			},
			{
				ID:          5,
				Question:    "당신의 해결책은 무엇인가요?",
				Label:       "우리의 해결책",
				Hint:        "만들고자 하는 제품/서비스를 설명해주세요.",
				Placeholder: "예: 개인화된 세금 일정 알림과 단계별 가이드 템플릿을 제공하는 플랫폼",
			},
			{
				ID:          6,
				Question:    "기존 해결책과 뭐가 다른가요?",
				Label:       "차별점",
				Hint:        "차별점, 경쟁 우위를 말해주세요.",
				Placeholder: "예: 예술인 특화, 개인 상황에 맞는 알림, 복잡한 내용을 쉬운 템플릿으로",
			},
			{
				ID:          7,
				Question:    "어떻게 돈을 벌 계획인가요?",
				Label:       "수익 모델",
				Hint:        "수익 모델을 설명해주세요. (구독, 건당 결제, 광고 등)",
				Placeholder: "예: 월 9,900원 구독제, 기본 무료 + 프리미엄 기능 유료",
			},
			{
				ID:          8,
				Question:    "첫 고객은 어떻게 모을 계획인가요?",
				Label:       "초기 고객 확보 전략",
				Hint:        "초기 마케팅/영업 전략을 말해주세요.",
				Placeholder: "예: 예술인 커뮤니티, 인스타그램 타겟 광고, 지인 네트워크",
			},
			{
				ID:          9,
				Question:    "왜 당신이 이 문제를 해결해야 하나요?",
				Label:       "팀 역량",
				Hint:        "팀 역량, 관련 경험, 도메인 지식 등을 말해주세요.",
				Placeholder: "예: 5년간 프리랜서 활동, 개발자 경력 3년, 세무 관련 스터디 운영",
			},
			{
				ID:          10,
				Question:    "1년 후 목표는 무엇인가요?",
				Label:       "1년 후 목표",
				Hint:        "구체적인 숫자가 있으면 좋아요. (사용자 수, 매출 등)",
				Placeholder: "예: MAU 1만명, 유료 구독자 500명, 월 매출 500만원",
			},
		},
		PromptTemplate: `당신은 스타트업 사업계획서 전문 컨설턴트입니다.
아래 인터뷰 답변을 바탕으로 예비창업패키지 지원용 사업계획서를 작성해주세요.

## 인터뷰 답변

{{answers}}

---

## 작성 요청

위 답변을 바탕으로 다음 형식의 사업계획서를 작성해주세요.
각 섹션은 구체적이고 설득력 있게 작성하되, 답변에 있는 내용을 기반으로 확장해주세요.
평가위원이 읽는다고 생각하고, 혁신성과 실현가능성을 강조해주세요.

출력 형식 (마크다운):

# [창업 아이템명]

## 1. 창업 아이템 개요
(한 문단으로 핵심 가치 제안 요약)

## 2. 창업 배경 및 목적
### 2.1 문제 인식
### 2.2 창업 동기

## 3. 목표 시장 및 고객
### 3.1 타겟 고객 정의
### 3.2 시장 규모 및 성장성

## 4. 경쟁 현황 및 차별성
### 4.1 기존 해결책의 한계
### 4.2 우리의 차별점

## 5. 사업 아이템 소개
### 5.1 제품/서비스 설명
### 5.2 핵심 기능

## 6. 사업화 전략
### 6.1 수익 모델
### 6.2 마케팅 및 고객 확보 전략

## 7. 대표자 및 팀 역량
(관련 경험과 강점)

## 8. 사업 목표 및 로드맵
### 8.1 1년 목표
### 8.2 주요 마일스톤

---

사업계획서를 작성해주세요.`,
	},
	{
		ID:          "youth-academy",
		Name:        "청년창업사관학교",
		Icon:        "🎓",
		Description: "청년창업사관학교 지원용 사업계획서 (8개 질문)",
		Category:    "창업지원",
		Questions: []Question{
			{
				ID:          1,
				Question:    "창업 아이템을 한 문장으로 소개해주세요.",
				Label:       "아이템 소개",
				Hint:        "제품/서비스의 핵심을 짧게 말해주세요.",
				Placeholder: "예: 1인 창작자를 위한 세무 자동화 서비스",
			},
			{
				ID:          2,
				Question:    "이 아이템의 기술적 핵심은 무엇인가요?",
				Label:       "핵심 기술",
				Hint:        "보유 기술, 개발 현황, 기술적 차별성을 말해주세요.",
				Placeholder: "예: 거래내역 자동 분류 모델, MVP 개발 완료",
			},
			{
				ID:          3,
				Question:    "목표 시장의 규모는 어느 정도인가요?",
				Label:       "시장 규모",
				Hint:        "알고 있는 범위에서 시장 규모와 성장성을 말해주세요.",
				Placeholder: "예: 국내 프리랜서 약 400만명, 연 10% 성장",
			},
			{
				ID:          4,
				Question:    "경쟁 서비스 대비 강점은 무엇인가요?",
				Label:       "경쟁 우위",
				Hint:        "경쟁사와 비교했을 때의 우위를 말해주세요.",
				Placeholder: "예: 세무사 연계 없이 셀프 신고 완결, 절반 가격",
			},
			{
				ID:          5,
				Question:    "수익 모델을 설명해주세요.",
				Label:       "수익 모델",
				Hint:        "누구에게서 어떻게 돈을 받을 계획인가요?",
				Placeholder: "예: 월 구독 + 신고 대행 건당 수수료",
			},
			{
				ID:          6,
				Question:    "지원금을 어디에 사용할 계획인가요?",
				Label:       "자금 사용 계획",
				Hint:        "개발, 마케팅, 인건비 등 자금 사용 계획을 말해주세요.",
				Placeholder: "예: 개발 인건비 60%, 마케팅 30%, 운영비 10%",
			},
			{
				ID:          7,
				Question:    "팀 구성과 역량을 소개해주세요.",
				Label:       "팀 구성 및 역량",
				Hint:        "대표자와 팀원의 경력, 역할을 말해주세요.",
				Placeholder: "예: 대표(개발 7년), 디자이너 1명, 세무사 자문 1명",
			},
			{
				ID:          8,
				Question:    "1년 내 달성할 핵심 목표는 무엇인가요?",
				Label:       "1년 목표",
				Hint:        "구체적인 숫자 목표가 좋아요.",
				Placeholder: "예: 정식 출시, 유료 가입자 1,000명",
			},
		},
		PromptTemplate: `당신은 스타트업 사업계획서 전문 컨설턴트입니다.
아래 인터뷰 답변을 바탕으로 청년창업사관학교 지원용 사업계획서를 작성해주세요.

## 인터뷰 답변

{{answers}}

---

## 작성 요청

위 답변을 바탕으로 기술성과 사업성이 드러나는 사업계획서를 작성해주세요.
기술 개발 계획과 자금 사용 계획을 구체적으로 다루고, 평가위원이 읽는다고
생각하고 실현가능성을 강조해주세요.

출력 형식 (마크다운):

# [창업 아이템명]

## 1. 창업 아이템 개요

## 2. 기술성
### 2.1 핵심 기술
### 2.2 개발 로드맵

## 3. 시장성
### 3.1 목표 시장
### 3.2 경쟁 현황 및 차별성

## 4. 사업화 전략
### 4.1 수익 모델
### 4.2 자금 사용 계획

## 5. 팀 역량

## 6. 1년 목표 및 마일스톤

---

사업계획서를 작성해주세요.`,
	},
	{
		ID:          "artist-support",
		Name:        "예술인 창작지원",
		Icon:        "🎨",
		Description: "예술인 창작지원금 신청용 프로젝트 계획서 (7개 질문)",
		Category:    "예술인",
		Questions: []Question{
			{
				ID:          1,
				Question:    "어떤 창작 프로젝트를 계획하고 있나요?",
				Label:       "프로젝트 소개",
				Hint:        "장르, 형식, 규모를 말해주세요.",
				Placeholder: "예: 1인 가구의 고립을 다룬 단편 다큐멘터리",
			},
			{
				ID:          2,
				Question:    "이 프로젝트를 시작하게 된 계기는 무엇인가요?",
				Label:       "기획 의도",
				Hint:        "문제의식이나 개인적 경험을 말해주세요.",
				Placeholder: "예: 팬데믹 이후 주변 창작자들의 고립을 지켜보면서",
			},
			{
				ID:          3,
				Question:    "누구에게 보여주고 싶은 작업인가요?",
				Label:       "대상 관객",
				Hint:        "관객/독자를 구체적으로 말해주세요.",
				Placeholder: "예: 20-30대 1인 가구, 독립영화 관객",
			},
			{
				ID:          4,
				Question:    "프로젝트 일정은 어떻게 되나요?",
				Label:       "추진 일정",
				Hint:        "기획, 제작, 발표 단계별 일정을 말해주세요.",
				Placeholder: "예: 3개월 촬영, 2개월 편집, 연말 상영회",
			},
			{
				ID:          5,
				Question:    "지원금을 어디에 사용할 계획인가요?",
				Label:       "자금 사용 계획",
				Hint:        "장비, 공간, 인건비 등 예산 계획을 말해주세요.",
				Placeholder: "예: 촬영 장비 대여 40%, 편집 외주 30%, 상영회 30%",
			},
			{
				ID:          6,
				Question:    "본인의 창작 이력을 소개해주세요.",
				Label:       "창작 이력",
				Hint:        "대표 작업, 전시/상영 경험을 말해주세요.",
				Placeholder: "예: 단편 2편 연출, 독립영화제 상영 1회",
			},
			{
				ID:          7,
				Question:    "이 프로젝트가 끝나면 무엇이 남기를 바라나요?",
				Label:       "기대 효과",
				Hint:        "기대 효과나 다음 단계를 말해주세요.",
				Placeholder: "예: 장편 기획으로 확장, 공동체 상영 네트워크",
			},
		},
		PromptTemplate: `당신은 예술지원사업 신청서 작성을 돕는 전문 컨설턴트입니다.
아래 인터뷰 답변을 바탕으로 예술인 창작지원금 신청용 프로젝트 계획서를 작성해주세요.

## 인터뷰 답변

{{answers}}

---

## 작성 요청

위 답변을 바탕으로 작품의 예술적 의도와 실행 계획이 드러나는 계획서를
작성해주세요. 심사위원이 읽는다고 생각하고, 독창성과 실행가능성을
강조해주세요.

출력 형식 (마크다운):

# [프로젝트명]

## 1. 프로젝트 개요

## 2. 기획 의도
### 2.1 문제의식
### 2.2 창작 동기

## 3. 작품 내용

## 4. 추진 일정

## 5. 예산 계획

## 6. 창작 이력 및 역량

## 7. 기대 효과

---

프로젝트 계획서를 작성해주세요.`,
	},
}

// All returns the full template catalog in stable order.
func All() []Template {
	return catalog
}

// Default returns the fallback template.
func Default() Template {
	return catalog[0]
}

// Resolve returns the template with the given id, falling back to the
// default template when the id is unknown or empty.
func Resolve(id string) Template {
	for _, t := range catalog {
		if t.ID == id {
			return t
		}
	}
	return Default()
}
