package classifier

import (
	"strings"

	"lawpick-backend/models"
)

const amountFallback = "해당 금액"

// Compose builds the local verdict from the cascade result, the resolved
// roles and the extracted facts. Scores are table lookups.
func Compose(n models.CaseNarrative, roles Roles, c Classification, f Facts) models.Verdict {
	tpl := lookupTemplate(c.Category, c.SubType)
	role := roles.For(axisFor(c))

	client, counterparty := RoleClient, RoleCounterparty
	if role.Determined() {
		client, counterparty = role.Client, role.Counterparty
	}
	amount := f.Money.Figure()
	if amount == "" {
		amount = amountFallback
	}
	r := strings.NewReplacer(
		"{client}", client,
		"{counterparty}", counterparty,
		"{amount}", amount,
		"{label}", tpl.Label,
	)

	actions := make([]string, len(tpl.Actions))
	for i, a := range tpl.Actions {
		actions[i] = r.Replace(a)
	}

	score := models.ClampScore(tpl.BaseScore)
	return models.Verdict{
		Score:           score,
		Type:            models.SeverityForScore(score),
		CaseBrief:       r.Replace(tpl.Brief),
		LegalCategories: append([]string(nil), tpl.LegalCategories...),
		KeyFacts: models.KeyFacts{
			Who:            describeWho(role, n.SenderName, n.RecipientName),
			When:           f.When,
			Money:          f.Money.Describe(),
			EvidenceStatus: f.EvidenceStatus(),
		},
		RiskReason:  r.Replace(tpl.RiskReason),
		ActionItems: actions,
	}
}

// sentinelVerdict is the zero-score answer for gated input
func sentinelVerdict(n models.CaseNarrative, gate GateStatus) models.Verdict {
	brief, reason := briefInsufficient, reasonInsufficient
	if gate == GateNotLegal {
		brief, reason = briefNotLegal, reasonNotLegal
	}
	return models.Verdict{
		Score:           0,
		Type:            models.SeveritySafe,
		CaseBrief:       brief,
		LegalCategories: []string{},
		KeyFacts: models.KeyFacts{
			Who:            describeWho(RoleAssignment{}, n.SenderName, n.RecipientName),
			When:           models.WhenUnknown,
			Money:          models.MoneyNotApplicable,
			EvidenceStatus: models.EvidenceNeeded,
		},
		RiskReason:  reason,
		ActionItems: []string{},
	}
}
