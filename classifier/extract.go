package classifier

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"lawpick-backend/models"
)

// Amount is one money mention found in the narrative
type Amount struct {
	Text  string `json:"text"`
	Won   int64  `json:"won"`
	Label string `json:"label,omitempty"`
	Rank  int    `json:"-"`
	start int
	end   int
}

// Recurring reports whether the amount is flagged as a monthly figure
func (a Amount) Recurring() bool {
	return rentLabels[a.Label]
}

func (a Amount) labelled() string {
	if a.Label == "" || a.Recurring() {
		return a.Text
	}
	return a.Label + " " + a.Text
}

// manBody reads the part of an amount counted in 만: "3천5백", "3천500",
// "5백", "2천" or plain digits, followed by 만
const manBody = `(?:(\d)\s*천\s*(?:(\d)\s*백|(\d{1,3}))?|(\d)\s*백|(\d{1,3}(?:,\d{3})+|\d+))\s*만`

// Precedence tiers of a parsed amount; lower wins when picking the primary
// amount
const (
	tierEokCompound = iota
	tierCheonMan
	tierBaekMan
	tierMan
	tierEok
	tierWon
)

type amountPattern struct {
	name  string
	rx    *regexp.Regexp
	parse func(m []string) (won int64, text string, tier int)
}

// amountPatterns are scanned in this order; earlier patterns own their spans
var amountPatterns = []amountPattern{
	{
		name:  "eok",
		rx:    regexp.MustCompile(`(\d+(?:\.\d+)?)\s*억(?:\s*` + manBody + `|\s*(\d)\s*천)?(?:\s*원)?`),
		parse: parseEok,
	},
	{
		name: "man",
		rx:   regexp.MustCompile(manBody + `(?:\s*원)?`),
		parse: func(m []string) (int64, string, int) {
			units, text, tier := parseMan(m[1:6])
			return units * 10_000, text + "원", tier
		},
	},
	{
		name: "won",
		rx:   regexp.MustCompile(`(\d{1,3}(?:,\d{3})+|\d+)\s*원`),
		parse: func(m []string) (int64, string, int) {
			return atoi(m[1]), m[1] + "원", tierWon
		},
	},
}

// parseMan turns the manBody groups into a count of 만 and its display text
func parseMan(g []string) (int64, string, int) {
	switch {
	case g[0] != "":
		units, text := atoi(g[0])*1000, g[0]+"천"
		if g[1] != "" {
			units += atoi(g[1]) * 100
			text += g[1] + "백"
		} else if g[2] != "" {
			units += atoi(g[2])
			text += g[2]
		}
		return units, text + "만", tierCheonMan
	case g[3] != "":
		return atoi(g[3]) * 100, g[3] + "백만", tierBaekMan
	case g[4] != "":
		return atoi(g[4]), g[4] + "만", tierMan
	}
	return 0, "", tierMan
}

// parseEok reads "1억", "1.5억", "1억 2천", "1억 2천5백만" and "2억 5000만"
func parseEok(m []string) (int64, string, int) {
	eok, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, "", tierEok
	}
	won := int64(math.Round(eok * 100_000_000))
	text := m[1] + "억"

	if units, man, _ := parseMan(m[2:7]); man != "" {
		return won + units*10_000, text + " " + man + "원", tierEokCompound
	}
	if m[7] != "" {
		return won + atoi(m[7])*10_000_000, text + " " + m[7] + "천만원", tierEokCompound
	}
	return won, text + "원", tierEok
}

// continuesNumber reports whether a match at start would begin inside a
// longer number such as the "5억" of "1.5억"
func continuesNumber(text string, start int) bool {
	if start == 0 {
		return false
	}
	c := text[start-1]
	return c >= '0' && c <= '9' || c == '.' || c == ','
}

func atoi(s string) int64 {
	n, err := strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Labels that may directly precede an amount. Longer labels come first so
// "원상복구 비용" wins over "비용".
var amountLabels = []string{
	"원상복구 비용", "원상복구비", "수리 비용", "수리비", "청소비", "관리비", "위약금", "계약금",
	"중도금", "잔금", "전세 보증금", "보증금", "전세금", "권리금", "병원비", "치료비", "합의금",
	"알바비", "퇴직금", "월급", "임금", "용역비", "공사비", "대금", "월세", "차임", "매월", "매달",
}

var rentLabels = map[string]bool{"월세": true, "차임": true, "매월": true, "매달": true}

var labelParticles = []string{"", "은", "는", "이", "가", "을", "를", "도", "로", "으로", "만", "만큼", "가 총", "로만"}

func labelBefore(prefix string) string {
	prefix = strings.TrimRight(prefix, " ")
	for _, label := range amountLabels {
		for _, p := range labelParticles {
			if strings.HasSuffix(prefix, label+p) || strings.HasSuffix(prefix, label+p+" 약") {
				return label
			}
		}
	}
	return ""
}

// FindAmounts returns every non-overlapping money mention in text order.
// A span claimed by an earlier pattern is never re-read by a later one, so
// "1억 2천만 원" yields exactly one amount.
func FindAmounts(text string) []Amount {
	var found []Amount
	overlaps := func(start, end int) bool {
		for _, a := range found {
			if start < a.end && a.start < end {
				return true
			}
		}
		return false
	}

	for _, p := range amountPatterns {
		for _, idx := range p.rx.FindAllStringSubmatchIndex(text, -1) {
			if overlaps(idx[0], idx[1]) || continuesNumber(text, idx[0]) {
				continue
			}
			m := make([]string, len(idx)/2)
			for i := range m {
				if idx[2*i] >= 0 {
					m[i] = text[idx[2*i]:idx[2*i+1]]
				}
			}
			won, display, tier := p.parse(m)
			found = append(found, Amount{
				Text:  display,
				Won:   won,
				Label: labelBefore(text[:idx[0]]),
				Rank:  tier,
				start: idx[0],
				end:   idx[1],
			})
		}
	}

	sort.Slice(found, func(i, j int) bool { return found[i].start < found[j].start })
	return found
}

// primaryAmount picks the first amount of the highest-precedence tier
func primaryAmount(amounts []Amount) *Amount {
	var best *Amount
	for i := range amounts {
		if best == nil || amounts[i].Rank < best.Rank {
			best = &amounts[i]
		}
	}
	return best
}

var (
	rxMonthsOverdue = regexp.MustCompile(`(\d+)\s*(개월|달)\s*(?:치|분|째)?[^.?!\d]{0,8}?(?:밀|연체|미납|\s안 ?(?:내|냈|냄|낸)|못 ?(?:내|냈))`)
	rxRentMonths    = regexp.MustCompile(`(?:월세|차임)[^.?!\d]{0,10}?(\d+)\s*(개월|달)`)
	rxPastMonths    = regexp.MustCompile(`^\s*전`)
	rxMonthsAsTime  = regexp.MustCompile(`^\s*(?:전|동안|간|째)`)
	rxArrearsNoun   = regexp.MustCompile(`월세|차임|관리비`)
	rxArrearsVerb   = regexp.MustCompile(`밀(려|렸|리|림|린)|연체|미납|안 ?(내|냈|냄|낸)|못 ?(내|냈|받)`)
	rxMoneyContext  = regexp.MustCompile(`돈|금액|대금|보증금|월세|차임|임금|월급|급여|비용|원상복구|수리비|갚|송금|입금|이체|환불|배상|합의금`)
)

// MoneyFacts is everything the extractor knows about money in a narrative
type MoneyFacts struct {
	Amounts      []Amount `json:"amounts,omitempty"`
	Primary      *Amount  `json:"primary,omitempty"`
	Monthly      *Amount  `json:"monthly,omitempty"`
	Months       int      `json:"months,omitempty"`
	Arrears      bool     `json:"arrears,omitempty"`
	PeriodTotal  int64    `json:"periodTotal,omitempty"`
	MoneyContext bool     `json:"moneyContext,omitempty"`
}

// ExtractMoney collects amounts, month counts and rent arrears. A period
// total is computed only when a monthly-flagged figure and a month count
// are both present.
func ExtractMoney(text string) MoneyFacts {
	f := MoneyFacts{
		Amounts:      FindAmounts(text),
		MoneyContext: rxMoneyContext.MatchString(text),
	}
	f.Primary = primaryAmount(f.Amounts)
	for i := range f.Amounts {
		if f.Amounts[i].Recurring() {
			f.Monthly = &f.Amounts[i]
			break
		}
	}
	f.Months = arrearsMonths(text)
	f.Arrears = rxArrearsNoun.MatchString(text) && rxArrearsVerb.MatchString(text)
	if f.Monthly != nil && f.Months > 0 {
		f.PeriodTotal = f.Monthly.Won * int64(f.Months)
	}
	return f
}

// arrearsMonths reads the number of unpaid months. Only counts tied to an
// arrears verb or a rent noun are used; "6개월 전에" is a time reference.
func arrearsMonths(text string) int {
	for _, idx := range rxMonthsOverdue.FindAllStringSubmatchIndex(text, -1) {
		if !rxPastMonths.MatchString(text[idx[5]:]) {
			return int(atoi(text[idx[2]:idx[3]]))
		}
	}
	for _, idx := range rxRentMonths.FindAllStringSubmatchIndex(text, -1) {
		if !rxMonthsAsTime.MatchString(text[idx[5]:]) {
			return int(atoi(text[idx[2]:idx[3]]))
		}
	}
	return 0
}

// Describe renders the money fact. One-time fees and recurring rent are
// listed separately and never multiplied together.
func (f MoneyFacts) Describe() string {
	var parts []string
	seen := map[string]bool{}
	add := func(s string) {
		if s != "" && !seen[s] {
			seen[s] = true
			parts = append(parts, s)
		}
	}

	if f.Primary != nil && !f.Primary.Recurring() {
		add(f.Primary.labelled())
	}
	for _, a := range f.Amounts {
		if a.Label != "" && !a.Recurring() {
			add(a.labelled())
		}
	}

	switch {
	case f.Arrears && f.Months > 0 && f.Monthly != nil:
		add(fmt.Sprintf("연체 차임 %d개월분(월 %s, 기간 합계 %s)", f.Months, f.Monthly.Text, FormatWon(f.PeriodTotal)))
	case f.Arrears && f.Months > 0:
		add(fmt.Sprintf("연체 차임 %d개월분(%s)", f.Months, models.MoneyUnknown))
	case f.Arrears && f.Monthly != nil:
		add(fmt.Sprintf("연체 차임(월 %s, 개월 수 미상)", f.Monthly.Text))
	case f.Monthly != nil:
		add("월 차임 " + f.Monthly.Text)
	}

	if len(parts) == 0 {
		if f.MoneyContext || f.Arrears {
			return models.MoneyUnknown
		}
		return models.MoneyNotApplicable
	}
	return strings.Join(parts, ", ")
}

// Figure is the short amount used inside briefs and action items
func (f MoneyFacts) Figure() string {
	if f.Primary != nil {
		return f.Primary.Text
	}
	return ""
}

// allowedWon is the set of won values a verdict may cite
func (f MoneyFacts) allowedWon() map[int64]bool {
	allowed := make(map[int64]bool, len(f.Amounts)+1)
	for _, a := range f.Amounts {
		allowed[a.Won] = true
	}
	if f.PeriodTotal > 0 {
		allowed[f.PeriodTotal] = true
	}
	return allowed
}

// FormatWon prints a won value in 억/만 units, e.g. 240만원 or 1억 5000만원
func FormatWon(won int64) string {
	if won <= 0 {
		return "0원"
	}
	eok := won / 100_000_000
	man := (won % 100_000_000) / 10_000
	rest := won % 10_000

	var parts []string
	if eok > 0 {
		parts = append(parts, strconv.FormatInt(eok, 10)+"억")
	}
	if man > 0 {
		parts = append(parts, strconv.FormatInt(man, 10)+"만")
	}
	if rest > 0 {
		parts = append(parts, strconv.FormatInt(rest, 10))
	}
	return strings.Join(parts, " ") + "원"
}

var whenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{4}\s*년\s*\d{1,2}\s*월(\s*\d{1,2}\s*일)?`),
	regexp.MustCompile(`\d{4}[.\-/]\s*\d{1,2}[.\-/]\s*\d{1,2}`),
	regexp.MustCompile(`\d{1,2}\s*월\s*\d{1,2}\s*일`),
	regexp.MustCompile(`\d+\s*(개월|달|년|주일?|일)\s*(전|째|동안|넘게|이상|가량|간)`),
	regexp.MustCompile(`그저께|어제|오늘|지난 ?주|지난 ?달|작년|올해|최근|얼마 ?전|며칠 ?전`),
}

// ExtractWhen returns the first time reference in the narrative
func ExtractWhen(text string, money MoneyFacts) string {
	for _, rx := range whenPatterns {
		if m := rx.FindString(text); m != "" {
			return strings.Join(strings.Fields(m), " ")
		}
	}
	if money.Arrears && money.Months > 0 {
		return fmt.Sprintf("최근 %d개월", money.Months)
	}
	return models.WhenUnknown
}

type evidenceKind struct {
	label string
	rx    *regexp.Regexp
}

var evidenceKinds = []evidenceKind{
	{"카톡", regexp.MustCompile(`카톡|카카오톡|메신저|DM`)},
	{"문자", regexp.MustCompile(`문자`)},
	{"녹음", regexp.MustCompile(`녹음|녹취`)},
	{"캡처", regexp.MustCompile(`캡처|캡쳐|스크린샷`)},
	{"사진", regexp.MustCompile(`사진|영상`)},
	{"계약서", regexp.MustCompile(`계약서|차용증|각서`)},
	{"거래내역", regexp.MustCompile(`(이체|송금|거래|입금) ?내역|영수증`)},
	{"CCTV", regexp.MustCompile(`(?i)cctv|블랙박스`)},
	{"이메일", regexp.MustCompile(`메일`)},
}

// ExtractEvidence lists evidence kinds the narrator mentions
func ExtractEvidence(text string) []string {
	var kinds []string
	for _, k := range evidenceKinds {
		if k.rx.MatchString(text) {
			kinds = append(kinds, k.label)
		}
	}
	return kinds
}

// Facts is the full output of the extractor
type Facts struct {
	Money    MoneyFacts `json:"money"`
	When     string     `json:"when"`
	Evidence []string   `json:"evidence,omitempty"`
}

// EvidenceStatus is the coarse tag shown in key facts
func (f Facts) EvidenceStatus() string {
	if len(f.Evidence) == 0 {
		return models.EvidenceNeeded
	}
	return strings.Join(f.Evidence, "·") + " 보유"
}

// Extract runs every extractor over normalized text
func Extract(text string) Facts {
	money := ExtractMoney(text)
	return Facts{
		Money:    money,
		When:     ExtractWhen(text, money),
		Evidence: ExtractEvidence(text),
	}
}
