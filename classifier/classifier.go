package classifier

import "lawpick-backend/models"

// Analysis is every intermediate result for one narrative. The corrector
// and the letter composer reuse it instead of re-reading the text.
type Analysis struct {
	Narrative      models.CaseNarrative `json:"-"`
	Text           string               `json:"-"`
	Gate           GateStatus           `json:"gate"`
	Roles          Roles                `json:"roles"`
	Classification Classification       `json:"classification"`
	Facts          Facts                `json:"facts"`
	Verdict        models.Verdict       `json:"verdict"`
}

// Sentinel reports whether the narrative was stopped by an input gate
func (a *Analysis) Sentinel() bool {
	return !a.Gate.Passed()
}

// Analyze runs the full local pipeline. It never fails: gated input yields
// the zero-score sentinel verdict.
func Analyze(n models.CaseNarrative) *Analysis {
	text, gate := Normalize(n.Content)
	a := &Analysis{Narrative: n, Text: text, Gate: gate}

	if !gate.Passed() {
		sub := models.SubInsufficient
		if gate == GateNotLegal {
			sub = models.SubNotLegal
		}
		a.Classification = Classification{Category: models.CategoryOther, SubType: sub, Rule: gate.String()}
		a.Verdict = sentinelVerdict(n, gate)
		return a
	}

	a.Roles = ResolveRoles(text)
	a.Classification = Classify(text, a.Roles)
	a.Facts = Extract(text)
	a.Verdict = Compose(n, a.Roles, a.Classification, a.Facts)
	return a
}

// Verdict is a shortcut for Analyze(n).Verdict
func Verdict(n models.CaseNarrative) models.Verdict {
	return Analyze(n).Verdict
}
