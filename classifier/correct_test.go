package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawpick-backend/models"
)

func tenantFlavouredVerdict() models.Verdict {
	return models.Verdict{
		Score:           82,
		Type:            models.SeverityCritical,
		CaseBrief:       "임차인인 의뢰인이 임대인에게 보증금 반환을 청구하는 사안입니다.",
		LegalCategories: []string{"임대차", "보증금 반환"},
		KeyFacts: models.KeyFacts{
			Who:            "의뢰인(임차인) ↔ 상대방(임대인)",
			When:           "최근",
			Money:          "월세 200만원 × 3개월 = 600만원",
			EvidenceStatus: "확인 필요",
		},
		RiskReason:  "보증금을 돌려받지 못할 위험이 있습니다.",
		ActionItems: []string{"임차권등기명령을 신청하세요."},
	}
}

func TestCorrectLandlordDescribedAsTenant(t *testing.T) {
	a := Analyze(models.CaseNarrative{Content: landlordNarrative})
	got := Correct(tenantFlavouredVerdict(), a)

	assert.Equal(t, []string{"landlord_described_as_tenant"}, Contradictions(tenantFlavouredVerdict(), a))
	assert.Equal(t, a.Verdict.CaseBrief, got.CaseBrief)
	assert.Equal(t, a.Verdict.LegalCategories, got.LegalCategories)
	assert.Equal(t, a.Verdict.ActionItems, got.ActionItems)
	assert.Equal(t, a.Verdict.Score, got.Score)
	assert.Equal(t, "의뢰인(임대인) ↔ 상대방(임차인)", got.KeyFacts.Who)
	assert.Equal(t, "원상복구비 200만원, 연체 차임 3개월분(금액 미상)", got.KeyFacts.Money)
	assert.Equal(t, "최근", got.KeyFacts.When)
	assert.False(t, mentions(got, rxTenantNarrative))
}

func TestCorrectCatchesPlainTenantWording(t *testing.T) {
	a := Analyze(models.CaseNarrative{Content: landlordNarrative})

	tests := []struct {
		name    string
		verdict models.Verdict
	}{
		{"tenant as client", models.Verdict{
			Score:           80,
			CaseBrief:       "세입자인 의뢰인이 집주인에게 보증금을 돌려받지 못한 사안입니다.",
			LegalCategories: []string{"임대차", "임차권 보호"},
		}},
		{"deposit not received", models.Verdict{
			Score:     80,
			CaseBrief: "계약이 끝났지만 보증금을 아직 못 받은 상황입니다.",
		}},
		{"lease registration advice", models.Verdict{
			Score:       80,
			CaseBrief:   "임대차 분쟁입니다.",
			ActionItems: []string{"임차권 등기를 먼저 마치세요."},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Correct(tt.verdict, a)
			assert.Equal(t, []string{"landlord_described_as_tenant"}, Contradictions(tt.verdict, a))
			assert.Equal(t, a.Verdict.CaseBrief, got.CaseBrief)
			assert.Equal(t, a.Verdict.LegalCategories, got.LegalCategories)
			assert.Empty(t, Contradictions(got, a))
			assert.Equal(t, got, Correct(got, a))
		})
	}
}

func TestCorrectCatchesPlainLandlordWording(t *testing.T) {
	a := Analyze(models.CaseNarrative{Content: tenantNarrative})
	require.True(t, a.Roles.IsTenant())

	for _, brief := range []string{
		"집주인인 의뢰인이 세입자에게 월세 연체를 이유로 계약 해지를 통보하는 사안입니다.",
		"임차인에게 퇴거 요구를 하고 건물 인도를 받아야 합니다.",
	} {
		v := models.Verdict{Score: 70, CaseBrief: brief}
		got := Correct(v, a)
		assert.Equal(t, []string{"tenant_described_as_landlord"}, Contradictions(v, a), brief)
		assert.Equal(t, a.Verdict.CaseBrief, got.CaseBrief, brief)
		assert.Equal(t, got, Correct(got, a), brief)
	}
}

func TestCorrectTenantDescribedAsLandlord(t *testing.T) {
	a := Analyze(models.CaseNarrative{Content: tenantNarrative})
	v := models.Verdict{
		Score:           70,
		CaseBrief:       "임대인인 의뢰인이 명도를 청구하는 사안입니다.",
		LegalCategories: []string{"건물명도"},
		ActionItems:     []string{"명도소송을 제기하세요."},
	}
	got := Correct(v, a)

	assert.True(t, a.Roles.IsTenant())
	assert.Equal(t, a.Verdict.CaseBrief, got.CaseBrief)
	assert.False(t, mentions(got, rxLandlordNarrative))
	assert.Equal(t, "의뢰인(임차인) ↔ 상대방(임대인)", got.KeyFacts.Who)
}

func TestCorrectLoanDescribedAsFraud(t *testing.T) {
	a := Analyze(models.CaseNarrative{Content: loanNarrative})
	v := models.Verdict{
		Score:           95,
		Type:            models.SeverityCritical,
		CaseBrief:       "투자사기 피해가 의심되는 사안입니다.",
		LegalCategories: []string{"투자사기", "형사 고소"},
		KeyFacts:        models.KeyFacts{Money: "500만원"},
		ActionItems:     []string{"경찰에 고소하세요."},
	}
	got := Correct(v, a)

	assert.Equal(t, a.Verdict.LegalCategories, got.LegalCategories)
	assert.Equal(t, a.Verdict.Score, got.Score)
	assert.Equal(t, "500만원", got.KeyFacts.Money)
}

func TestCorrectMoney(t *testing.T) {
	a := Analyze(models.CaseNarrative{Content: landlordNarrative})
	local := a.Facts.Money.Describe()

	tests := []struct {
		name  string
		money string
		want  string
	}{
		{"multiplied", "200만원 × 3개월", local},
		{"ascii multiplication", "200만원 x 3", local},
		{"invented total", "600만원", local},
		{"empty", "", local},
		{"not applicable despite amounts", models.MoneyNotApplicable, local},
		{"amount present in text", "원상복구비 200만원", "원상복구비 200만원"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := a.Verdict.Clone()
			v.KeyFacts.Money = tt.money
			assert.Equal(t, tt.want, Correct(v, a).KeyFacts.Money)
		})
	}
}

func TestCorrectSeverityFollowsScore(t *testing.T) {
	a := Analyze(models.CaseNarrative{Content: loanNarrative})

	v := a.Verdict.Clone()
	v.Score, v.Type = 150, models.SeveritySafe
	got := Correct(v, a)
	assert.Equal(t, 100, got.Score)
	assert.Equal(t, models.SeverityCritical, got.Type)

	v.Score, v.Type = -5, models.SeverityError
	got = Correct(v, a)
	assert.Equal(t, 0, got.Score)
	assert.Equal(t, models.SeveritySafe, got.Type)
}

func TestCorrectFillsEmptyFields(t *testing.T) {
	a := Analyze(models.CaseNarrative{Content: loanNarrative})
	got := Correct(models.Verdict{Score: 60}, a)

	assert.Equal(t, a.Verdict.CaseBrief, got.CaseBrief)
	assert.Equal(t, a.Verdict.ActionItems, got.ActionItems)
	assert.Equal(t, a.Verdict.KeyFacts.When, got.KeyFacts.When)
	assert.Equal(t, a.Verdict.KeyFacts.EvidenceStatus, got.KeyFacts.EvidenceStatus)
	assert.Equal(t, 60, got.Score)
	assert.Equal(t, models.SeverityWarning, got.Type)
}

func TestCorrectSentinelReturnsLocal(t *testing.T) {
	a := Analyze(models.CaseNarrative{Content: lunchNarrative})
	got := Correct(tenantFlavouredVerdict(), a)
	assert.Equal(t, a.Verdict, got)
}

func TestCorrectIsIdempotent(t *testing.T) {
	narratives := []string{landlordNarrative, loanNarrative, tenantNarrative, lunchNarrative, "보증금"}
	verdicts := []models.Verdict{
		tenantFlavouredVerdict(),
		{},
		{Score: 250, Type: models.SeverityError, CaseBrief: "명도 청구", KeyFacts: models.KeyFacts{Money: "80만원 * 3 = 240만원"}},
		{Score: 40, CaseBrief: "로맨스 스캠 의심", LegalCategories: []string{"사기죄"}, KeyFacts: models.KeyFacts{Money: "  500만원  "}},
		{Score: 80, CaseBrief: "세입자인 의뢰인이 집주인에게 보증금을 돌려받지 못한 사안입니다.", LegalCategories: []string{"임대차", "임차권 보호"}},
		{Score: 65, CaseBrief: "임대인으로서 월세 연체에 따른 퇴거 요구가 가능합니다."},
	}
	for _, text := range narratives {
		a := Analyze(models.CaseNarrative{Content: text})
		for _, v := range verdicts {
			once := Correct(v, a)
			assert.Equal(t, once, Correct(once, a), text)
		}
		assert.Equal(t, a.Verdict, Correct(a.Verdict, a), "local verdict must already be consistent: %s", text)
	}
}

func TestCorrectWithoutAnalysis(t *testing.T) {
	got := Correct(models.Verdict{Score: 75, Type: models.SeveritySafe}, nil)
	assert.Equal(t, models.SeverityCritical, got.Type)
}
