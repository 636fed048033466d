package models

// DiagnosisAnswers is the ordered questionnaire: housing, job, recent large
// transaction (over 1M KRW) and driving habits
type DiagnosisAnswers []string

// Answer returns the i-th answer or "" when it was not supplied
func (a DiagnosisAnswers) Answer(i int) string {
	if i < 0 || i >= len(a) {
		return ""
	}
	return a[i]
}

// DiagnosisResult is the self-diagnosis outcome
type DiagnosisResult struct {
	Score     int      `json:"score"`
	RiskLevel string   `json:"riskLevel"`
	Type      Severity `json:"type"`
	Summary   string   `json:"summary"`
}

// Risk level labels shown with diagnosis results
const (
	RiskLevelSafe    = "안전"
	RiskLevelCaution = "주의"
	RiskLevelDanger  = "위험"
)

// RiskLevelFor maps a severity tier to its Korean label
func RiskLevelFor(s Severity) string {
	switch s {
	case SeveritySafe:
		return RiskLevelSafe
	case SeverityCritical:
		return RiskLevelDanger
	default:
		return RiskLevelCaution
	}
}
