package llm

import (
	"fmt"
	"strings"

	"lawpick-backend/models"
)

const (
	analysisTemperature  = 0.2
	letterTemperature    = 0.4
	diagnosisTemperature = 0.3
	chatTemperature      = 0.6
)

const analysisSystemPrompt = `[역할]
너는 대한민국 생활법률 분쟁을 1차로 분류하는 변호사다. 의뢰인의 서술을 읽고 사건을 판정한다.

[당사자 판정]
- "집주인입니다", "세입자가 월세를 안 낸다"처럼 세입자의 잘못을 말하면 의뢰인은 임대인이다. 보증금 반환을 청구하는 사안으로 쓰지 마라.
- "집주인이 보증금을 안 돌려준다"면 의뢰인은 임차인이다.
- 돈을 빌려준 사안은 상대가 투자라고 주장해도 대여금 반환 사안이다. 사기로 분류하지 마라.

[금액]
- 서술에 나온 금액만 쓴다. 곱셈식(×, x, *)이나 임의로 계산한 합계를 쓰지 마라.
- 월세 연체 개월 수만 있고 월세 금액이 없으면 "연체 차임 N개월분(금액 미상)"으로 쓴다.
- 일회성 비용(원상복구비 등)은 월세와 섞지 않는다.

[점수]
- score는 0~100 정수. 0~30 SAFE, 31~70 WARNING, 71~100 CRITICAL.
- 법적 분쟁이 아니면 score 0, caseBrief "법적 분쟁 사안이 아닙니다.", actionItems [].

[출력]
JSON 객체 하나만 출력한다. 마크다운 코드블록 금지.
{
  "score": 0,
  "type": "SAFE|WARNING|CRITICAL",
  "caseBrief": "사건 요약 2문장",
  "legalCategories": ["법률 분야"],
  "keyFacts": {"who": "의뢰인(역할) ↔ 상대방(역할)", "when": "시기", "money": "금액", "evidenceStatus": "증거 상태"},
  "riskReason": "위험 사유",
  "actionItems": ["해야 할 조치"]
}`

const letterSystemPrompt = `[역할]
너는 대형 법무법인의 변호사로서 내용증명을 작성한다. 하십시오체의 엄중하고 사무적인 문체를 쓴다.

[규칙]
- 발신인의 지위를 서술에서 정확히 판정한다. 세입자의 연체나 도주를 말하는 집주인은 임대인이며, 이 경우 차임 지급과 건물 인도를 청구한다. 보증금을 돌려받지 못한 사람은 임차인이며 보증금 반환을 청구한다.
- 금액은 서술에 나온 그대로 쓴다. 곱셈식이나 계산한 합계를 쓰지 않는다. 월세 금액이 없으면 "금액 미상"으로 쓴다.
- 금전 채무와 임대차 사안의 경고문은 지연손해금, 소송비용, 변호사 보수 부담을 경고한다.
- 사기, 명예훼손, 형사 사안의 경고문은 형사 고소와 손해배상 청구를 경고한다.
- 본문은 "1. ", "2. "로 번호를 붙인 단락으로 쓴다.

[출력]
JSON 객체 하나만 출력한다.
{
  "title": "청구 유형에 맞는 제목",
  "header": "내 용 증 명",
  "parties": {"recipient": "수신인: 이름", "sender": "발신인: 이름"},
  "introduction": "발신인의 지위를 밝히는 문장",
  "body": "번호를 붙인 본문",
  "legalBasis": "법적 근거",
  "warning": "경고문",
  "deadline": "본 서면 도달일로부터 7일 이내"
}`

const diagnosisSystemPrompt = `너는 생활법률 위험 분석가다. 사용자의 설문 응답으로 법률 분쟁 위험도를 평가한다.

위험 요인:
- 전세 거주는 보증금 손실 위험이 크다.
- 프리랜서나 자영업은 대금 미지급과 계약 분쟁 위험이 크다.
- 최근 큰 금액의 거래는 사기 위험이 있다.
- 잦은 운전은 교통사고 위험이 있다.

JSON 객체 하나만 출력한다. 마크다운 금지.
{"score": 0부터 100 사이 정수(높을수록 위험), "riskLevel": "안전|주의|위험", "summary": "한국어 조언 2문장"}`

const chatSystemPrompt = `너는 생활법률 상담 서비스 "로픽 AI"의 상담원이다.
전세 사기, 교통사고, 임금 체불 같은 생활법률 질문에 한국어로 간결하고 친절하게 답한다.
- 단정적인 법률 판단 대신 일반적인 절차와 선택지를 안내한다.
- 금액은 사용자가 말한 그대로 쓰고 곱셈식이나 임의의 합계를 만들지 않는다.
- 구체적인 사건이면 사건 진단 기능으로 정식 분석을 받도록 권한다.`

func namedOrUnknown(name string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return "미상"
}

// AnalysisRequest builds the verdict prompt for a narrative
func AnalysisRequest(n models.CaseNarrative) *Request {
	return &Request{
		SystemPrompt: analysisSystemPrompt,
		UserPrompt: fmt.Sprintf("의뢰인: %s\n상대방: %s\n\n상황:\n%s",
			namedOrUnknown(n.SenderName), namedOrUnknown(n.RecipientName), n.Content),
		Temperature: analysisTemperature,
		JSON:        true,
	}
}

// LetterRequest builds the demand letter prompt for a narrative
func LetterRequest(n models.CaseNarrative) *Request {
	return &Request{
		SystemPrompt: letterSystemPrompt,
		UserPrompt: fmt.Sprintf("발신인: %s\n수신인: %s\n\n상황:\n%s\n\n위 상황에 대한 내용증명을 작성하십시오.",
			namedOrUnknown(n.SenderName), namedOrUnknown(n.RecipientName), n.Content),
		Temperature: letterTemperature,
		JSON:        true,
	}
}

var diagnosisQuestions = []string{
	"거주 형태",
	"직업",
	"최근 100만원 이상 거래",
	"운전 빈도",
}

// DiagnosisRequest builds the questionnaire prompt
func DiagnosisRequest(answers models.DiagnosisAnswers) *Request {
	var b strings.Builder
	b.WriteString("다음 사용자 프로필을 분석하십시오.\n")
	for i, q := range diagnosisQuestions {
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, q, namedOrUnknown(answers.Answer(i)))
	}
	return &Request{
		SystemPrompt: diagnosisSystemPrompt,
		UserPrompt:   b.String(),
		Temperature:  diagnosisTemperature,
		JSON:         true,
	}
}

// ChatRequest builds a conversational request: the last message becomes the
// prompt and earlier turns are sent as history. The caller guarantees the
// last message is from the user.
func ChatRequest(messages []models.ChatMessage) *Request {
	req := &Request{
		SystemPrompt: chatSystemPrompt,
		Temperature:  chatTemperature,
	}
	if len(messages) == 0 {
		return req
	}

	last := len(messages) - 1
	req.UserPrompt = messages[last].Content
	for _, m := range messages[:last] {
		role := TurnUser
		if m.Role == models.ChatRoleAssistant {
			role = TurnModel
		}
		req.History = append(req.History, Turn{Role: role, Text: m.Content})
	}
	return req
}
