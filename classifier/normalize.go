// Package classifier is the rule-based legal triage engine. It normalizes a
// free-text Korean narrative, resolves which party the narrator represents,
// assigns one case category through an ordered rule cascade, extracts money,
// time and evidence facts, and composes a fixed-shape verdict. A corrector
// re-checks verdicts produced elsewhere against the same signals.
//
// Everything in this package is pure and synchronous; no state is kept
// between calls.
package classifier

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// MinContentLength is the minimum trimmed length in runes
	MinContentLength = 15
	maxNoiseRatio    = 0.4
	maxRepeatRun     = 5
)

// GateStatus is the outcome of input normalization
type GateStatus int

const (
	GatePassed GateStatus = iota
	GateEmpty
	GateNotLegal
	GateTooShort
	GateSpam
)

func (g GateStatus) String() string {
	switch g {
	case GatePassed:
		return "passed"
	case GateEmpty:
		return "empty"
	case GateNotLegal:
		return "not_legal"
	case GateTooShort:
		return "too_short"
	case GateSpam:
		return "spam"
	}
	return "unknown"
}

// MarshalText encodes the status by name
func (g GateStatus) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// Passed reports whether the narrative may go through classification
func (g GateStatus) Passed() bool {
	return g == GatePassed
}

// legalLexicon is the keyword gate. A narrative without any of these terms is
// not treated as a legal matter.
var legalLexicon = []string{
	// money
	"원금", "송금", "입금", "이체", "빌려", "빌린", "빌렸", "대여", "차용", "갚", "변제",
	"채무", "채권", "대금", "미수금", "투자", "코인", "결제", "보험",
	// housing
	"보증금", "전세", "월세", "집주인", "세입자", "임대", "임차", "건물주", "권리금", "관리비",
	"원상복구", "명도", "누수", "층간소음",
	// crime
	"사기", "폭행", "때렸", "맞았", "협박", "스토킹", "고소", "신고", "경찰", "범죄", "절도",
	"도난", "횡령", "해킹", "피싱", "성추행", "성희롱", "불법촬영", "피해",
	// labor
	"월급", "임금", "급여", "알바", "퇴직금", "해고", "체불", "주휴", "용역비", "직장", "근로",
	// defamation
	"명예훼손", "모욕", "비방", "악플", "허위", "댓글",
	// consumer
	"환불", "반품", "하자", "불량", "청약철회", "중고", "택배",
	// family
	"이혼", "외도", "불륜", "상간", "양육", "위자료", "상속", "유산",
	// traffic
	"교통사고", "접촉사고", "뺑소니", "음주운전", "블랙박스",
	// general
	"소송", "변호사", "법원", "내용증명", "합의", "손해배상", "위약금", "잠적",
}

// contextTerms are lexicon words that also occur inside everyday words
// (돈가스, 이사님, 과실 as fruit), so they only count with a particle or a
// legal collocation
var contextTerms = []*regexp.Regexp{
	regexp.MustCompile(`돈(을|이|은|도|만|으로|좀|\s|$|[.,!?])`),
	regexp.MustCompile(`이사(를|했|하|비|갈|간|가야|\s?(날|나가|나간|들어|오))`),
	regexp.MustCompile(`계약(서|금|을|이|했|\s?(해지|해제|위반|기간|만료|갱신|파기|종료|관련|문제))`),
	regexp.MustCompile(`소음\s?(이|을|으로|때문|피해|공해|문제|신고|민원)`),
	regexp.MustCompile(`중과실|쌍방 ?과실|과실 ?(비율|상계|치사|책임)`),
}

var rxAmountMention = regexp.MustCompile(`\d\s*(억|천만|백만|만\s*원|만원|원)`)

// HasLegalKeyword reports whether text mentions any term of the legal lexicon
// or a money amount
func HasLegalKeyword(text string) bool {
	for _, kw := range legalLexicon {
		if strings.Contains(text, kw) {
			return true
		}
	}
	for _, rx := range contextTerms {
		if rx.MatchString(text) {
			return true
		}
	}
	return rxAmountMention.MatchString(text)
}

// Normalize trims the narrative, collapses whitespace and runs the input
// gates. Order: empty, legal-keyword gate, minimum length, spam heuristics.
func Normalize(raw string) (string, GateStatus) {
	text := strings.Join(strings.Fields(raw), " ")
	if text == "" {
		return "", GateEmpty
	}
	if !HasLegalKeyword(text) {
		return text, GateNotLegal
	}
	if utf8.RuneCountInString(text) < MinContentLength {
		return text, GateTooShort
	}
	if looksLikeSpam(text) {
		return text, GateSpam
	}
	return text, GatePassed
}

// looksLikeSpam flags text where symbols exceed 40% of the non-space runes or
// where one non-digit rune repeats five or more times in a row
func looksLikeSpam(text string) bool {
	var total, noise, run int
	var prev rune
	for _, r := range text {
		if unicode.IsSpace(r) {
			prev = 0
			run = 0
			continue
		}
		total++
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			noise++
		}

		if r == prev && !unicode.IsDigit(r) {
			run++
		} else {
			run = 1
		}
		prev = r
		if run >= maxRepeatRun {
			return true
		}
	}
	if total == 0 {
		return true
	}
	return float64(noise)/float64(total) > maxNoiseRatio
}
