package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lawpick-backend/models"
)

func TestScoreDiagnosis(t *testing.T) {
	tests := []struct {
		name    string
		answers models.DiagnosisAnswers
		score   int
		tier    models.Severity
		level   string
	}{
		{"every factor", models.DiagnosisAnswers{"전세", "프리랜서", "예", "매일"}, 95, models.SeverityCritical, models.RiskLevelDanger},
		{"low risk", models.DiagnosisAnswers{"월세", "회사원", "아니오", "아니요"}, 30, models.SeveritySafe, models.RiskLevelSafe},
		{"half jeonse counts as monthly rent", models.DiagnosisAnswers{"반전세"}, 30, models.SeveritySafe, models.RiskLevelSafe},
		{"no answers", nil, 15, models.SeveritySafe, models.RiskLevelSafe},
		{"jeonse and business", models.DiagnosisAnswers{"전세", "자영업"}, 70, models.SeverityWarning, models.RiskLevelCaution},
		{"negated transaction", models.DiagnosisAnswers{"자가", "회사원", "없어요", "안 해요"}, 15, models.SeveritySafe, models.RiskLevelSafe},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreDiagnosis(tt.answers)
			assert.Equal(t, tt.score, got.Score)
			assert.Equal(t, tt.tier, got.Type)
			assert.Equal(t, tt.level, got.RiskLevel)
			assert.NotEmpty(t, got.Summary)
		})
	}
}

func TestScoreDiagnosisSummaryMentionsFactors(t *testing.T) {
	got := ScoreDiagnosis(models.DiagnosisAnswers{"전세"})
	assert.Contains(t, got.Summary, "전세 거주")
}

func TestGuardDiagnosis(t *testing.T) {
	got := GuardDiagnosis(models.DiagnosisResult{Score: 120, RiskLevel: models.RiskLevelSafe, Type: models.SeveritySafe}, nil)
	assert.Equal(t, 100, got.Score)
	assert.Equal(t, models.SeverityCritical, got.Type)
	assert.Equal(t, models.RiskLevelDanger, got.RiskLevel)
	assert.NotEmpty(t, got.Summary)

	kept := GuardDiagnosis(models.DiagnosisResult{Score: 50, Summary: "요약"}, nil)
	assert.Equal(t, "요약", kept.Summary)
	assert.Equal(t, models.RiskLevelCaution, kept.RiskLevel)
}
