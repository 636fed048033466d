package classifier

import (
	"regexp"
	"strings"

	"lawpick-backend/models"
)

const diagnosisBaseScore = 15

type diagnosisFactor struct {
	name    string
	answer  int
	points  int
	match   func(answer string) bool
	summary string
}

var (
	rxNegative     = regexp.MustCompile(`아니|없|안 ?(함|해|합)|no`)
	rxJeonse       = regexp.MustCompile(`전세`)
	rxMonthlyRent  = regexp.MustCompile(`월세|반전세`)
	rxSelfEmployed = regexp.MustCompile(`프리랜서|자영업|사업`)
	rxAffirmative  = regexp.MustCompile(`예|네|있|yes`)
	rxDrives       = regexp.MustCompile(`예|네|자주|매일|yes`)
)

func affirmative(rx *regexp.Regexp) func(string) bool {
	return func(answer string) bool {
		answer = strings.ToLower(answer)
		return rx.MatchString(answer) && !rxNegative.MatchString(answer)
	}
}

// diagnosisFactors are evaluated in order. The two housing factors are
// exclusive: 반전세 counts as monthly rent.
var diagnosisFactors = []diagnosisFactor{
	{"jeonse", 0, 35, func(a string) bool {
		return rxJeonse.MatchString(a) && !strings.Contains(a, "반전세")
	}, "전세 거주로 보증금을 돌려받지 못할 위험이 큽니다."},
	{"monthly_rent", 0, 15, func(a string) bool {
		return rxMonthlyRent.MatchString(a)
	}, "월세 거주로 보증금과 원상복구 분쟁에 노출될 수 있습니다."},
	{"self_employed", 1, 20, func(a string) bool {
		return rxSelfEmployed.MatchString(a)
	}, "프리랜서나 자영업은 대금 미지급과 계약 분쟁이 잦습니다."},
	{"large_transaction", 2, 15, affirmative(rxAffirmative),
		"최근 큰 금액의 거래가 있어 사기나 대금 분쟁에 대비해야 합니다."},
	{"driving", 3, 10, affirmative(rxDrives),
		"운전이 잦아 교통사고 분쟁 가능성이 있습니다."},
}

// ScoreDiagnosis scores the four-question self-diagnosis. Missing answers
// add no risk.
func ScoreDiagnosis(answers models.DiagnosisAnswers) models.DiagnosisResult {
	score := diagnosisBaseScore
	var notes []string
	housingCounted := false
	for _, f := range diagnosisFactors {
		if f.answer == 0 && housingCounted {
			continue
		}
		if !f.match(strings.TrimSpace(answers.Answer(f.answer))) {
			continue
		}
		if f.answer == 0 {
			housingCounted = true
		}
		score += f.points
		notes = append(notes, f.summary)
	}

	score = models.ClampScore(score)
	severity := models.SeverityForScore(score)
	return models.DiagnosisResult{
		Score:     score,
		RiskLevel: models.RiskLevelFor(severity),
		Type:      severity,
		Summary:   diagnosisSummary(severity, notes),
	}
}

func diagnosisSummary(s models.Severity, notes []string) string {
	var advice string
	switch s {
	case models.SeveritySafe:
		advice = "현재 생활 패턴에서 큰 법률 위험은 보이지 않습니다. 계약서와 거래 기록을 보관하는 습관만 유지하세요."
	case models.SeverityWarning:
		advice = "분쟁이 생기기 전에 계약서와 대화 기록을 정리해두고 필요하면 전문가 상담을 받아보세요."
	default:
		advice = "여러 위험 요인이 겹쳐 있어 지금 바로 계약 관계와 증거를 점검하는 것이 좋습니다."
	}
	if len(notes) == 0 {
		return advice
	}
	return strings.Join(notes, " ") + " " + advice
}

// GuardDiagnosis makes an externally produced result consistent: the score
// is clamped and the tier and risk level are derived from it
func GuardDiagnosis(r models.DiagnosisResult, answers models.DiagnosisAnswers) models.DiagnosisResult {
	out := r
	out.Score = models.ClampScore(out.Score)
	out.Type = models.SeverityForScore(out.Score)
	out.RiskLevel = models.RiskLevelFor(out.Type)
	if strings.TrimSpace(out.Summary) == "" {
		out.Summary = ScoreDiagnosis(answers).Summary
	}
	return out
}
