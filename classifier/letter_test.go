package classifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"lawpick-backend/models"
)

func TestComposeLetterLandlord(t *testing.T) {
	a := Analyze(models.CaseNarrative{Content: landlordNarrative, SenderName: "홍길동"})
	l := ComposeLetter(a)

	assert.Equal(t, "차임 연체에 따른 임대차 계약 해지 및 건물 인도 청구의 건", l.Title)
	assert.Equal(t, models.LetterHeader, l.Header)
	assert.Equal(t, models.LetterDeadline, l.Deadline)
	assert.Equal(t, "수신인: (상대방)", l.Parties.Recipient)
	assert.Equal(t, "발신인: 홍길동", l.Parties.Sender)
	assert.Contains(t, l.Introduction, "임대인(홍길동)")
	assert.Contains(t, l.Body, "차임 3개월분")
	assert.Contains(t, l.Body, "원상복구비 200만원")
	assert.NotContains(t, l.Body, "600")
	assert.NotContains(t, l.Body, "보증금")
	assert.Equal(t, warningCivil, l.Warning)
	assert.True(t, strings.HasPrefix(l.Body, "1. "))
}

func TestComposeLetterTenantWithSpecialDamage(t *testing.T) {
	a := Analyze(models.CaseNarrative{Content: "집주인이 보증금 1억을 안 돌려줘서 이사도 못 가고 대출 이자만 내고 있어요"})
	l := ComposeLetter(a)

	assert.Equal(t, "임대차보증금 반환 청구 및 법적 조치 예고의 건", l.Title)
	assert.Contains(t, l.Body, "금 1억원")
	assert.Contains(t, l.Body, "[특별 손해 고지]")
	assert.Equal(t, warningCivil, l.Warning)
}

func TestComposeLetterFraudUsesCriminalWarning(t *testing.T) {
	a := Analyze(models.CaseNarrative{Content: "중고나라에서 아이폰 사려고 50만원 입금했는데 판매자가 잠적했어요"})
	l := ComposeLetter(a)

	assert.Equal(t, models.CategoryFraud, a.Classification.Category)
	assert.Equal(t, warningCriminal, l.Warning)
	assert.Contains(t, l.Introduction, "금 50만원")
}

func TestComposeLetterLoan(t *testing.T) {
	l := ComposeLetter(Analyze(models.CaseNarrative{Content: loanNarrative}))
	assert.Equal(t, "대여금 반환 청구 및 법적 조치 예고의 건", l.Title)
	assert.Contains(t, l.Introduction, "금 500만원")
}

func TestGuardLetterLandlord(t *testing.T) {
	a := Analyze(models.CaseNarrative{Content: landlordNarrative})
	generated := models.DemandLetter{
		Title:        "임대차보증금 반환 청구의 건",
		Introduction: "발신인은 임차인입니다.",
		Body:         "1. 보증금 5000만원을 즉시 반환하십시오.",
		Warning:      "민사소송을 제기하겠습니다.",
	}
	got := GuardLetter(generated, a)

	assert.Equal(t, "차임 연체에 따른 임대차 계약 해지 및 건물 인도 청구의 건", got.Title)
	assert.NotContains(t, got.Introduction, "임차인")
	assert.NotContains(t, got.Body, "보증금")
	assert.Equal(t, models.LetterHeader, got.Header)
	assert.Equal(t, models.LetterDeadline, got.Deadline)
	assert.NotEmpty(t, got.LegalBasis)
	assert.Equal(t, "민사소송을 제기하겠습니다.", got.Warning)
	assert.Equal(t, got, GuardLetter(got, a))
}

func TestGuardLetterTenant(t *testing.T) {
	a := Analyze(models.CaseNarrative{Content: tenantNarrative})
	generated := models.DemandLetter{
		Title:        "차임 연체에 따른 명도 청구의 건",
		Introduction: "발신인은 임대인입니다.",
		Body:         "1. 귀하는 차임을 연체하였습니다.",
	}
	got := GuardLetter(generated, a)

	assert.Equal(t, "임대차보증금 반환 청구 및 법적 조치 예고의 건", got.Title)
	assert.NotContains(t, got.Introduction, "임대인")
	assert.NotContains(t, got.Body, "차임")
	assert.Equal(t, got, GuardLetter(got, a))
}

func TestGuardLetterArithmetic(t *testing.T) {
	a := Analyze(models.CaseNarrative{Content: landlordNarrative})
	generated := ComposeLetter(a)
	generated.Body = "1. 귀하는 월세 200만원 × 3개월 = 600만원을 연체하고 있습니다."

	got := GuardLetter(generated, a)
	assert.NotContains(t, got.Body, "×")
	assert.NotContains(t, got.Body, "600만원")
	assert.Contains(t, got.Body, "연체 차임 3개월분(금액 미상)")
	assert.Equal(t, got, GuardLetter(got, a))
}

func TestGuardLetterKeepsConsistentLetter(t *testing.T) {
	for _, text := range []string{landlordNarrative, tenantNarrative, loanNarrative} {
		a := Analyze(models.CaseNarrative{Content: text})
		local := ComposeLetter(a)
		assert.Equal(t, local, GuardLetter(local, a), text)
	}
}
