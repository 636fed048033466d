package models

// Severity is the risk tier shown to the user
type Severity string

const (
	SeveritySafe     Severity = "SAFE"
	SeverityWarning  Severity = "WARNING"
	SeverityCritical Severity = "CRITICAL"
	SeverityError    Severity = "ERROR"
)

// Score band upper bounds (inclusive)
const (
	SafeMaxScore    = 30
	WarningMaxScore = 70
	MaxScore        = 100
)

// ClampScore bounds a score to 0..100
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// SeverityForScore maps a score to its tier: 0-30 SAFE, 31-70 WARNING, 71-100 CRITICAL
func SeverityForScore(score int) Severity {
	score = ClampScore(score)
	switch {
	case score <= SafeMaxScore:
		return SeveritySafe
	case score <= WarningMaxScore:
		return SeverityWarning
	default:
		return SeverityCritical
	}
}

// InBand reports whether score lies within the band of s
func (s Severity) InBand(score int) bool {
	switch s {
	case SeveritySafe:
		return score >= 0 && score <= SafeMaxScore
	case SeverityWarning:
		return score > SafeMaxScore && score <= WarningMaxScore
	case SeverityCritical:
		return score > WarningMaxScore && score <= MaxScore
	}
	return false
}

// KeyFacts is the structured fact block of a verdict
type KeyFacts struct {
	Who            string `json:"who"`
	When           string `json:"when"`
	Money          string `json:"money,omitempty"`
	EvidenceStatus string `json:"evidenceStatus"`
}

// Verdict is the classification result returned to clients and renderers
type Verdict struct {
	Score           int      `json:"score"`
	Type            Severity `json:"type"`
	CaseBrief       string   `json:"caseBrief"`
	LegalCategories []string `json:"legalCategories"`
	KeyFacts        KeyFacts `json:"keyFacts"`
	RiskReason      string   `json:"riskReason"`
	ActionItems     []string `json:"actionItems"`
}

// Clone returns a deep copy so correctors never mutate their input
func (v Verdict) Clone() Verdict {
	out := v
	out.LegalCategories = cloneStrings(v.LegalCategories)
	out.ActionItems = cloneStrings(v.ActionItems)
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
