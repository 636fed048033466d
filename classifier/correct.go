package classifier

import (
	"regexp"
	"strings"

	"lawpick-backend/models"
)

var (
	rxTenantNarrative   = regexp.MustCompile(`(세입자|임차인)(인|으로서)|의뢰인\((세입자|임차인)\)|의뢰인은 (세입자|임차인)|보증금 ?반환|보증금.{0,10}(돌려|반환|못 ?받)|임차권 ?등기`)
	rxLandlordNarrative = regexp.MustCompile(`(집주인|임대인|건물주)(인|으로서)|의뢰인\((집주인|임대인)\)|의뢰인은 (집주인|임대인)|명도|차임 ?(지급|청구)|(월세|차임).{0,10}(연체|밀)|퇴거 ?(청구|요구|통보|소송)|건물 ?인도`)
	rxFraudNarrative    = regexp.MustCompile(`투자 ?사기|로맨스 ?스캠|사기죄|유사수신`)
	rxArithmetic        = regexp.MustCompile(`[×✕]|\d\s*(만\s*)?원?\s*[xX*]\s*\d|곱하기`)
)

// contradiction pairs a locally detected fact with narrative text that
// cannot be true at the same time
type contradiction struct {
	name    string
	applies func(a *Analysis) bool
	rx      *regexp.Regexp
}

var contradictions = []contradiction{
	{"landlord_described_as_tenant", func(a *Analysis) bool { return a.Roles.IsLandlord() }, rxTenantNarrative},
	{"tenant_described_as_landlord", func(a *Analysis) bool { return a.Roles.IsTenant() }, rxLandlordNarrative},
	{"loan_described_as_fraud", func(a *Analysis) bool { return a.Classification.SubType == models.SubLoan }, rxFraudNarrative},
}

// Correct repairs a verdict produced elsewhere so it agrees with the local
// analysis of the same narrative. Narrative fields that contradict the
// detected role or the loan classification are replaced with the local
// ones, amounts that were multiplied or invented are replaced with the
// local money description, empty fields are filled, and severity is
// recomputed from the clamped score. Correct(Correct(v)) == Correct(v).
func Correct(v models.Verdict, a *Analysis) models.Verdict {
	out := v.Clone()
	if a == nil {
		out.Score = models.ClampScore(out.Score)
		out.Type = models.SeverityForScore(out.Score)
		return out
	}
	if a.Sentinel() {
		return a.Verdict.Clone()
	}
	local := a.Verdict

	for _, c := range contradictions {
		if c.applies(a) && mentions(out, c.rx) {
			adoptNarrative(&out, local)
			break
		}
	}

	if a.Roles.For(axisFor(a.Classification)).Determined() || strings.TrimSpace(out.KeyFacts.Who) == "" {
		out.KeyFacts.Who = local.KeyFacts.Who
	}
	out.KeyFacts.Money = correctMoney(out.KeyFacts.Money, a.Facts.Money)
	fillEmpty(&out, local)

	out.Score = models.ClampScore(out.Score)
	out.Type = models.SeverityForScore(out.Score)
	return out
}

// Contradictions lists the names of every contradiction found in v; used
// for logging which guardrail fired
func Contradictions(v models.Verdict, a *Analysis) []string {
	if a == nil || a.Sentinel() {
		return nil
	}
	var names []string
	for _, c := range contradictions {
		if c.applies(a) && mentions(v, c.rx) {
			names = append(names, c.name)
		}
	}
	return names
}

func mentions(v models.Verdict, rx *regexp.Regexp) bool {
	if rx.MatchString(v.CaseBrief) || rx.MatchString(v.RiskReason) {
		return true
	}
	for _, s := range v.LegalCategories {
		if rx.MatchString(s) {
			return true
		}
	}
	for _, s := range v.ActionItems {
		if rx.MatchString(s) {
			return true
		}
	}
	return false
}

func adoptNarrative(out *models.Verdict, local models.Verdict) {
	out.Score = local.Score
	out.CaseBrief = local.CaseBrief
	out.RiskReason = local.RiskReason
	out.LegalCategories = append([]string(nil), local.LegalCategories...)
	out.ActionItems = append([]string(nil), local.ActionItems...)
}

func correctMoney(money string, f MoneyFacts) string {
	local := f.Describe()
	money = strings.TrimSpace(money)
	switch {
	case money == "":
		return local
	case money == models.MoneyNotApplicable && local != models.MoneyNotApplicable:
		return local
	case rxArithmetic.MatchString(money):
		return local
	}
	allowed := f.allowedWon()
	for _, amt := range FindAmounts(money) {
		if !allowed[amt.Won] {
			return local
		}
	}
	return money
}

func fillEmpty(out *models.Verdict, local models.Verdict) {
	if strings.TrimSpace(out.CaseBrief) == "" {
		out.CaseBrief = local.CaseBrief
	}
	if strings.TrimSpace(out.RiskReason) == "" {
		out.RiskReason = local.RiskReason
	}
	if len(out.LegalCategories) == 0 {
		out.LegalCategories = append([]string(nil), local.LegalCategories...)
	}
	if len(out.ActionItems) == 0 {
		out.ActionItems = append([]string(nil), local.ActionItems...)
	}
	if strings.TrimSpace(out.KeyFacts.When) == "" {
		out.KeyFacts.When = local.KeyFacts.When
	}
	if strings.TrimSpace(out.KeyFacts.EvidenceStatus) == "" {
		out.KeyFacts.EvidenceStatus = local.KeyFacts.EvidenceStatus
	}
}
