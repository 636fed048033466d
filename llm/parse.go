package llm

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"lawpick-backend/models"
)

const verdictSchema = `{
  "type": "object",
  "required": ["score", "caseBrief", "keyFacts", "actionItems"],
  "properties": {
    "score": {"type": "number"},
    "type": {"type": "string"},
    "caseBrief": {"type": "string"},
    "legalCategories": {"type": "array", "items": {"type": "string"}},
    "keyFacts": {
      "type": "object",
      "properties": {
        "who": {"type": "string"},
        "when": {"type": "string"},
        "money": {"type": "string"},
        "evidenceStatus": {"type": "string"}
      }
    },
    "riskReason": {"type": "string"},
    "actionItems": {"type": "array", "items": {"type": "string"}}
  }
}`

const letterSchema = `{
  "type": "object",
  "required": ["title", "introduction", "body"],
  "properties": {
    "title": {"type": "string", "minLength": 1},
    "header": {"type": "string"},
    "parties": {
      "type": "object",
      "properties": {
        "recipient": {"type": "string"},
        "sender": {"type": "string"}
      }
    },
    "introduction": {"type": "string"},
    "body": {"type": "string", "minLength": 1},
    "legalBasis": {"type": "string"},
    "warning": {"type": "string"},
    "deadline": {"type": "string"}
  }
}`

const diagnosisSchema = `{
  "type": "object",
  "required": ["score", "summary"],
  "properties": {
    "score": {"type": "number"},
    "riskLevel": {"type": "string"},
    "summary": {"type": "string"}
  }
}`

var (
	verdictValidator   = mustSchema(verdictSchema)
	letterValidator    = mustSchema(letterSchema)
	diagnosisValidator = mustSchema(diagnosisSchema)
)

func mustSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("failed to compile schema: %v", err))
	}
	return schema
}

// stripFences removes a surrounding markdown code fence
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx >= 0 {
			s = s[idx+1:]
		}
	}
	if strings.HasSuffix(s, "```") {
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}

// ExtractJSON returns the outermost JSON object in raw model output
func ExtractJSON(raw string) (string, error) {
	s := stripFences(raw)
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return "", ErrUnparsableOutput
	}
	doc := s[start : end+1]
	if !json.Valid([]byte(doc)) {
		return "", fmt.Errorf("%w: invalid JSON", ErrUnparsableOutput)
	}
	return doc, nil
}

func validate(schema *gojsonschema.Schema, doc string) error {
	result, err := schema.Validate(gojsonschema.NewStringLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnparsableOutput, err)
	}
	if !result.Valid() {
		var problems []string
		for _, e := range result.Errors() {
			problems = append(problems, e.String())
		}
		return fmt.Errorf("%w: %s", ErrSchemaViolation, strings.Join(problems, "; "))
	}
	return nil
}

func decode(schema *gojsonschema.Schema, raw string, into interface{}) error {
	doc, err := ExtractJSON(raw)
	if err != nil {
		return err
	}
	if err := validate(schema, doc); err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(doc), into); err != nil {
		return fmt.Errorf("%w: %v", ErrUnparsableOutput, err)
	}
	return nil
}

type verdictWire struct {
	Score           float64         `json:"score"`
	Type            string          `json:"type"`
	CaseBrief       string          `json:"caseBrief"`
	LegalCategories []string        `json:"legalCategories"`
	KeyFacts        models.KeyFacts `json:"keyFacts"`
	RiskReason      string          `json:"riskReason"`
	ActionItems     []string        `json:"actionItems"`
}

// ParseVerdict validates raw upstream output and converts it to a Verdict.
// The result still has to go through the corrector.
func ParseVerdict(raw string) (models.Verdict, error) {
	var w verdictWire
	if err := decode(verdictValidator, raw, &w); err != nil {
		return models.Verdict{}, err
	}
	return models.Verdict{
		Score:           roundScore(w.Score),
		Type:            models.Severity(strings.ToUpper(strings.TrimSpace(w.Type))),
		CaseBrief:       strings.TrimSpace(w.CaseBrief),
		LegalCategories: cleanList(w.LegalCategories),
		KeyFacts:        w.KeyFacts,
		RiskReason:      strings.TrimSpace(w.RiskReason),
		ActionItems:     cleanList(w.ActionItems),
	}, nil
}

// ParseLetter validates raw upstream output and converts it to a letter
func ParseLetter(raw string) (models.DemandLetter, error) {
	var l models.DemandLetter
	if err := decode(letterValidator, raw, &l); err != nil {
		return models.DemandLetter{}, err
	}
	return l, nil
}

type diagnosisWire struct {
	Score     float64 `json:"score"`
	RiskLevel string  `json:"riskLevel"`
	Summary   string  `json:"summary"`
}

// ParseDiagnosis validates raw upstream output for the questionnaire
func ParseDiagnosis(raw string) (models.DiagnosisResult, error) {
	var w diagnosisWire
	if err := decode(diagnosisValidator, raw, &w); err != nil {
		return models.DiagnosisResult{}, err
	}
	return models.DiagnosisResult{
		Score:     roundScore(w.Score),
		RiskLevel: strings.TrimSpace(w.RiskLevel),
		Summary:   strings.TrimSpace(w.Summary),
	}, nil
}

// roundScore bounds fractional or out-of-range upstream scores to 0..100
func roundScore(f float64) int {
	switch {
	case f <= 0:
		return 0
	case f >= models.MaxScore:
		return models.MaxScore
	}
	return int(math.Round(f))
}

func cleanList(s []string) []string {
	if s == nil {
		return []string{}
	}
	out := make([]string, 0, len(s))
	for _, v := range s {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
