package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawpick-backend/models"
)

const (
	landlordNarrative = "집주인입니다. 세입자가 원상복구비 200만 원 안 주고 도망갔어요. 월세도 3달 밀렸고요."
	loanNarrative     = "친구에게 500만원을 빌려줬는데 투자라고 우기면서 안 갚고 있어요"
	lunchNarrative    = "오늘 점심 뭐 먹지"
	tenantNarrative   = "집주인이 보증금을 안 돌려줘요 계약 끝났는데 연락도 안 돼요"
)

func TestAnalyzeLandlordArrears(t *testing.T) {
	a := Analyze(models.CaseNarrative{Content: landlordNarrative})

	require.True(t, a.Gate.Passed())
	assert.True(t, a.Roles.IsLandlord())
	assert.False(t, a.Roles.IsTenant())
	assert.Equal(t, models.CategoryRental, a.Classification.Category)
	assert.Equal(t, models.SubEviction, a.Classification.SubType)

	v := a.Verdict
	assert.Equal(t, "원상복구비 200만원, 연체 차임 3개월분(금액 미상)", v.KeyFacts.Money)
	assert.NotContains(t, v.KeyFacts.Money, "600만")
	assert.Equal(t, "의뢰인(임대인) ↔ 상대방(임차인)", v.KeyFacts.Who)
	assert.Equal(t, 75, v.Score)
	assert.Equal(t, models.SeverityCritical, v.Type)
	assert.NotEmpty(t, v.ActionItems)
	assert.NotContains(t, v.CaseBrief, "보증금 반환")
}

func TestAnalyzePrivateLoan(t *testing.T) {
	a := Analyze(models.CaseNarrative{Content: loanNarrative})

	assert.Equal(t, models.CategoryMoney, a.Classification.Category)
	assert.Equal(t, models.SubLoan, a.Classification.SubType)
	assert.Equal(t, "의뢰인(채권자) ↔ 상대방(채무자)", a.Verdict.KeyFacts.Who)
	assert.Equal(t, "500만원", a.Verdict.KeyFacts.Money)
	assert.Contains(t, a.Verdict.CaseBrief, "500만원")
	assert.NotContains(t, a.Verdict.CaseBrief, "투자사기")
}

func TestAnalyzeNotLegal(t *testing.T) {
	a := Analyze(models.CaseNarrative{Content: lunchNarrative})

	assert.True(t, a.Sentinel())
	assert.Equal(t, GateNotLegal, a.Gate)
	assert.Equal(t, 0, a.Verdict.Score)
	assert.Equal(t, models.SeveritySafe, a.Verdict.Type)
	assert.Equal(t, "법적 분쟁 사안이 아닙니다.", a.Verdict.CaseBrief)
	assert.Empty(t, a.Verdict.ActionItems)
	assert.NotNil(t, a.Verdict.ActionItems)
}

func TestAnalyzeShortInputs(t *testing.T) {
	for _, content := range []string{"", " ", "보증금", "사기 당함", "돈 안 갚음", "월세 밀림 ㅠ"} {
		v := Verdict(models.CaseNarrative{Content: content})
		assert.Equal(t, 0, v.Score, content)
		assert.Equal(t, models.SeveritySafe, v.Type, content)
		assert.Empty(t, v.ActionItems, content)
	}
}

func TestAnalyzeUsesNames(t *testing.T) {
	v := Verdict(models.CaseNarrative{Content: landlordNarrative, SenderName: "홍길동", RecipientName: "김철수"})
	assert.Equal(t, "의뢰인 홍길동(임대인) ↔ 상대방 김철수(임차인)", v.KeyFacts.Who)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	n := models.CaseNarrative{Content: tenantNarrative}
	assert.Equal(t, Analyze(n), Analyze(n))
}

func TestComposedSeverityMatchesScore(t *testing.T) {
	for key, tpl := range templates {
		v := Compose(models.CaseNarrative{}, Roles{}, Classification{Category: key.Category, SubType: key.SubType}, Facts{})
		assert.Equal(t, tpl.BaseScore, v.Score, key.SubType)
		assert.True(t, v.Type.InBand(v.Score), "%s: %d is not %s", key.SubType, v.Score, v.Type)
		assert.NotContains(t, v.CaseBrief, "{", key.SubType)
		for _, a := range v.ActionItems {
			assert.NotContains(t, a, "{", key.SubType)
		}
	}
}

func TestSeverityBands(t *testing.T) {
	for score := -10; score <= 110; score++ {
		s := models.SeverityForScore(score)
		assert.True(t, s.InBand(models.ClampScore(score)), "score %d", score)
	}
	assert.Equal(t, models.SeveritySafe, models.SeverityForScore(30))
	assert.Equal(t, models.SeverityWarning, models.SeverityForScore(31))
	assert.Equal(t, models.SeverityWarning, models.SeverityForScore(70))
	assert.Equal(t, models.SeverityCritical, models.SeverityForScore(71))
}

func TestTemplatesAreRoleConsistent(t *testing.T) {
	landlordReachable := []string{models.SubEviction, models.SubKeyMoney, models.SubLease, models.SubLeak}
	for _, sub := range landlordReachable {
		v := Compose(models.CaseNarrative{}, Roles{}, Classification{Category: models.CategoryRental, SubType: sub}, Facts{})
		assert.False(t, mentions(v, rxTenantNarrative), sub)
	}
	for key := range templates {
		if key.SubType == models.SubEviction {
			continue
		}
		v := Compose(models.CaseNarrative{}, Roles{}, Classification{Category: key.Category, SubType: key.SubType}, Facts{})
		assert.False(t, mentions(v, rxLandlordNarrative), key.SubType)
	}
	loan := Compose(models.CaseNarrative{}, Roles{}, Classification{Category: models.CategoryMoney, SubType: models.SubLoan}, Facts{})
	assert.False(t, mentions(loan, rxFraudNarrative))
}
