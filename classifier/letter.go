package classifier

import (
	"fmt"
	"regexp"
	"strings"

	"lawpick-backend/models"
)

type letterKind int

const (
	letterGeneral letterKind = iota
	letterLandlord
	letterTenant
	letterFraud
	letterTort
	letterDefamation
	letterNoise
	letterWage
	letterLeak
	letterLoan
)

const (
	warningCivil        = "위 기한 내 이행이 없을 경우 발신인은 즉시 민사소송을 제기할 것이며, 귀하는 원금 외에 민법 제379조에 따른 연 5%의 지연손해금, 소송비용 및 변호사 보수까지 부담하게 됩니다. 불이행이 계속되면 가압류와 강제집행을 통해 귀하 명의의 부동산, 예금, 급여에 대한 압류가 진행될 수 있음을 알려드립니다."
	warningCriminal     = "위 기한 내 조치가 없을 경우 발신인은 즉시 형사 고소를 진행할 것이며, 이와 별도로 불법행위에 기한 손해배상(위자료 포함) 청구 소송을 제기할 것임을 경고합니다. 향후 수사기관의 조사에 성실히 응하시기 바랍니다."
	specialDamageNotice = "[특별 손해 고지] 귀하의 이행 지체로 발신인은 대출 이자 부담, 이사 및 계약 일정 차질 등 추가 재산상 손해를 입고 있습니다. 민법 제393조에 따라 원금과 함께 이러한 특별손해의 배상도 청구할 것임을 통지합니다."

	defaultRecipient = "(상대방)"
	defaultSender    = "(의뢰인)"
)

var rxSpecialDamage = regexp.MustCompile(`대출|이자|이사|계약금|위약금|병원비|약값`)

func letterKindFor(a *Analysis) letterKind {
	c := a.Classification
	switch {
	case c.Category == models.CategoryRental && a.Roles.IsLandlord():
		return letterLandlord
	case c.SubType == models.SubDeposit || c.SubType == models.SubRentalFraud:
		return letterTenant
	case c.Category == models.CategoryRental && c.SubType != models.SubLeak && a.Roles.IsTenant():
		return letterTenant
	case c.SubType == models.SubLeak:
		return letterLeak
	case c.SubType == models.SubDefamation:
		return letterDefamation
	case c.Category == models.CategoryFraud:
		return letterFraud
	case c.Category == models.CategoryCrime || c.Category == models.CategoryCyber:
		return letterTort
	case c.SubType == models.SubNoise:
		return letterNoise
	case c.SubType == models.SubWage:
		return letterWage
	case c.SubType == models.SubLoan:
		return letterLoan
	}
	return letterGeneral
}

type letterText struct {
	title        string
	introduction string
	body         []string
	legalBasis   string
}

// ComposeLetter builds the rule-based demand letter for an analysis
func ComposeLetter(a *Analysis) models.DemandLetter {
	kind := letterKindFor(a)
	t := letterTextFor(kind, a)

	body := numbered(t.body)
	if rxSpecialDamage.MatchString(a.Text) {
		body += "\n\n" + specialDamageNotice
	}

	warning := warningCivil
	if a.Classification.Category.Criminal() {
		warning = warningCriminal
	}

	return models.DemandLetter{
		Title:        t.title,
		Header:       models.LetterHeader,
		Parties:      letterParties(a.Narrative),
		Introduction: t.introduction,
		Body:         body,
		LegalBasis:   t.legalBasis,
		Warning:      warning,
		Deadline:     models.LetterDeadline,
	}
}

func letterParties(n models.CaseNarrative) models.LetterParties {
	recipient, sender := defaultRecipient, defaultSender
	if name := strings.TrimSpace(n.RecipientName); name != "" {
		recipient = name
	}
	if name := strings.TrimSpace(n.SenderName); name != "" {
		sender = name
	}
	return models.LetterParties{Recipient: "수신인: " + recipient, Sender: "발신인: " + sender}
}

func numbered(paragraphs []string) string {
	out := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		out[i] = fmt.Sprintf("%d. %s", i+1, p)
	}
	return strings.Join(out, "\n\n")
}

func senderLabel(n models.CaseNarrative) string {
	if name := strings.TrimSpace(n.SenderName); name != "" {
		return name
	}
	return RoleClient
}

func moneyPhrase(m MoneyFacts) string {
	if m.Primary == nil {
		return "(금액 미상)"
	}
	return "금 " + m.Primary.Text
}

// rentArrearsPhrase describes unpaid rent without ever multiplying a
// one-time fee into it
func rentArrearsPhrase(m MoneyFacts) string {
	switch {
	case m.Monthly != nil && m.Months > 0:
		return fmt.Sprintf("차임 %d개월분(월 %s, 합계 금 %s)", m.Months, m.Monthly.Text, FormatWon(m.PeriodTotal))
	case m.Months > 0:
		return fmt.Sprintf("차임 %d개월분", m.Months)
	}
	return "상당 기간의 차임"
}

var depositLabels = map[string]bool{"보증금": true, "전세 보증금": true, "전세금": true}

// oneTimeFees lists labelled non-rent amounts such as 원상복구비 200만원;
// deposits are owed by the landlord and never listed as a tenant's debt
func oneTimeFees(m MoneyFacts) []string {
	var fees []string
	for _, amt := range m.Amounts {
		if amt.Label != "" && !amt.Recurring() && !depositLabels[amt.Label] {
			fees = append(fees, amt.labelled())
		}
	}
	return fees
}

func letterTextFor(kind letterKind, a *Analysis) letterText {
	m := a.Facts.Money
	sender := senderLabel(a.Narrative)
	money := moneyPhrase(m)

	switch kind {
	case letterLandlord:
		body := []string{
			fmt.Sprintf("귀하는 임대차 계약에 따라 차임을 지급할 의무가 있음에도 현재 %s을 연체하고 있으며, 이는 명백한 계약 위반입니다.", rentArrearsPhrase(m)),
		}
		if fees := oneTimeFees(m); len(fees) > 0 {
			body = append(body, fmt.Sprintf("또한 귀하는 %s을 지급하지 않고 있습니다. 위 금액은 차임과 별개의 채무입니다.", strings.Join(fees, ", ")))
		}
		body = append(body,
			"귀하는 발신인의 연락에 응하지 않은 채 건물을 점유하거나 방치하여 발신인에게 재산상 손해를 입히고 있습니다.",
			"이에 발신인은 민법 제640조에 따라 임대차 계약을 해지함을 통보하며, 본 서면 수령 즉시 건물을 원상으로 회복하여 인도할 것을 청구합니다.",
		)
		return letterText{
			title:        "차임 연체에 따른 임대차 계약 해지 및 건물 인도 청구의 건",
			introduction: fmt.Sprintf("발신인은 귀하와 상기 부동산에 관하여 임대차 계약을 체결한 임대인(%s)입니다.", sender),
			body:         body,
			legalBasis:   "민법 제640조(차임연체와 해지) 및 제618조에 의거하여 계약 해지를 통보하며, 건물을 인도하지 않을 경우 명도소송과 손해배상 청구를 진행할 것임을 고지합니다.",
		}

	case letterTenant:
		second := "이는 임대인의 핵심 의무인 보증금 반환 의무를 위반한 것으로 즉시 시정되어야 합니다."
		if strings.Contains(a.Text, "연락") {
			second = "발신인은 수차례 연락하여 반환을 요청하였으나 귀하는 이를 회피하고 있어 고의적인 채무 불이행으로 판단됩니다."
		}
		return letterText{
			title:        "임대차보증금 반환 청구 및 법적 조치 예고의 건",
			introduction: fmt.Sprintf("발신인은 귀하와 상기 부동산에 관하여 임대차 계약을 체결한 임차인(%s)입니다.", sender),
			body: []string{
				fmt.Sprintf("임대차 계약이 종료되었음에도 귀하는 임대차보증금 %s의 반환을 정당한 사유 없이 지체하고 있습니다.", money),
				second,
			},
			legalBasis: "주택임대차보호법 제3조의3 및 민법 제536조에 의거하여 본 서면 도달일로부터 7일 이내에 임대차보증금 전액을 반환하여 주실 것을 청구합니다.",
		}

	case letterFraud:
		return letterText{
			title:        "불법행위에 의한 손해배상 청구 및 형사고소 예고의 건",
			introduction: fmt.Sprintf("발신인은 귀하의 기망행위로 %s 상당의 재산상 손해를 입은 피해자입니다.", money),
			body: []string{
				fmt.Sprintf("귀하는 발신인을 속여 %s을 교부받은 뒤 연락을 끊었으며, 이는 형법 제347조 사기죄에 해당하는 행위입니다.", money),
				"발신인은 귀하의 행위로 재산적, 정신적 고통을 겪고 있으며 더 이상 변제를 기다릴 수 없는 상황입니다.",
			},
			legalBasis: "형법 제347조(사기) 및 민법 제750조(불법행위)에 의거하여 본 서면 도달일로부터 7일 이내에 피해금 전액을 배상하여 주실 것을 청구합니다.",
		}

	case letterTort:
		return letterText{
			title:        "불법행위에 따른 손해배상 청구 및 형사고소 예고의 건",
			introduction: "발신인은 귀하의 불법행위로 신체적, 정신적 피해를 입은 피해자입니다.",
			body: []string{
				"귀하의 행위는 발신인의 신체와 평온한 생활을 침해한 불법행위이며 형사 처벌 대상에 해당합니다.",
				"발신인은 귀하에게 동일한 행위의 즉각적인 중단과 피해에 대한 배상을 요구합니다.",
			},
			legalBasis: "민법 제750조 및 제751조(재산 이외의 손해의 배상)에 의거하여 치료비와 위자료를 포함한 손해 전액의 배상을 청구합니다.",
		}

	case letterDefamation:
		return letterText{
			title:        "명예훼손 게시물 삭제 및 손해배상 청구의 건",
			introduction: "발신인은 귀하의 허위 사실 유포와 비방으로 명예와 업무에 피해를 입고 있는 피해자입니다.",
			body: []string{
				"귀하는 비방할 목적으로 공공연하게 사실이 아닌 내용을 적시하여 발신인의 명예를 훼손하고 업무를 방해하였습니다.",
				"이는 정보통신망법 제70조 및 형법 제314조에 해당할 수 있는 행위입니다.",
				"이에 발신인은 해당 게시물의 즉시 삭제와 정정 및 사과문 게시를 청구합니다.",
			},
			legalBasis: "정보통신망법 제70조(명예훼손) 및 형법 제314조(업무방해)에 의거하여, 게시물을 삭제하지 않을 경우 형사 고소와 손해배상 청구를 진행할 것임을 고지합니다.",
		}

	case letterNoise:
		return letterText{
			title:        "층간소음 중단 요청 및 손해배상 청구 예고의 건",
			introduction: "발신인은 귀하 세대의 인근 거주자로서 지속적인 소음 피해를 입고 있는 당사자입니다.",
			body: []string{
				"귀하의 세대에서 시간을 가리지 않고 발생하는 소음으로 발신인과 가족은 일상생활에 심각한 지장을 겪고 있습니다.",
				"이는 공동주택관리법 제20조가 정한 수인한도를 넘는 생활방해로서 불법행위에 해당합니다.",
				"발신인은 귀하에게 소음을 줄이기 위한 실효성 있는 조치를 즉시 취해줄 것을 요청합니다.",
			},
			legalBasis: "민법 제750조 및 환경분쟁 조정법에 의거하여, 소음이 계속될 경우 측정 자료를 근거로 손해배상 청구와 분쟁조정 신청을 진행할 것임을 고지합니다.",
		}

	case letterWage:
		return letterText{
			title:        "미지급 임금(용역비) 청구 및 노동청 진정 예고의 건",
			introduction: "발신인은 귀하(귀사)에 근로 또는 용역을 제공하였으나 그 대가를 지급받지 못한 채권자입니다.",
			body: []string{
				fmt.Sprintf("귀하는 발신인에게 지급해야 할 임금 또는 용역비 %s을 지급기일이 지나도록 지급하지 않고 있습니다.", money),
				"이는 근로기준법 제43조 위반으로 형사 처벌의 대상이 될 수 있는 행위입니다.",
			},
			legalBasis: "근로기준법 제36조(금품 청산) 및 제109조(벌칙)에 의거하여 7일 이내에 전액을 지급하지 않을 경우 고용노동부 진정과 민사소송을 함께 진행할 것임을 통보합니다.",
		}

	case letterLeak:
		return letterText{
			title:        "누수로 인한 손해배상 및 하자보수 이행 청구의 건",
			introduction: "발신인은 귀하가 관리하는 부분의 하자로 누수 피해를 입은 피해자입니다.",
			body: []string{
				"귀하가 점유, 관리하는 세대의 배관 등 하자로 발신인 세대의 천장과 벽면에 누수가 발생하여 피해가 확대되고 있습니다.",
				"귀하는 민법 제758조에 따라 이를 보수하고 손해를 배상할 의무가 있으나 아직 조치를 취하지 않고 있습니다.",
			},
			legalBasis: "민법 제758조(공작물등의 점유자, 소유자의 책임) 및 제214조에 의거하여 즉시 누수 탐지와 보수 공사를 이행하고 손해 전액을 배상할 것을 청구합니다.",
		}

	case letterLoan:
		overdue := "상당 기간"
		if m.Months > 0 {
			overdue = fmt.Sprintf("%d개월 이상", m.Months)
		}
		return letterText{
			title:        "대여금 반환 청구 및 법적 조치 예고의 건",
			introduction: fmt.Sprintf("발신인은 귀하에게 %s을 대여한 채권자입니다.", money),
			body: []string{
				fmt.Sprintf("귀하는 위 금원을 차용한 후 변제기가 %s 지났음에도 원금과 이자를 변제하지 않고 있습니다.", overdue),
				"발신인은 귀하의 변제 의사를 믿고 기다려 왔으나 귀하가 연락을 피하는 등 변제 의사가 없다고 판단되어 본 서면을 보냅니다.",
			},
			legalBasis: "민법 제598조(소비대차) 및 제390조(채무불이행)에 의거하여 본 서면 도달일로부터 7일 이내에 대여금 전액을 상환하여 주실 것을 청구합니다.",
		}
	}

	return letterText{
		title:        "채무 이행 청구 및 법적 조치 예고의 건",
		introduction: "발신인은 귀하와 법률관계에 있는 당사자로서 귀하의 계약 위반 사실을 알려드립니다.",
		body: []string{
			"귀하는 발신인에 대한 채무를 현재까지 이행하지 않고 있으며, 이는 계약 위반이자 신의성실의 원칙에 반하는 행위입니다.",
			"발신인은 본 서면으로 채무의 즉각적인 이행을 촉구하며, 불응에 따른 법적 불이익은 귀하에게 있음을 알려드립니다.",
		},
		legalBasis: "민법 제390조(채무불이행과 손해배상)에 의거하여 본 서면 도달일로부터 7일 이내에 채무를 이행하여 주실 것을 최고합니다.",
	}
}

var (
	rxLetterTenantClaim   = regexp.MustCompile(`보증금`)
	rxLetterTenantIntro   = regexp.MustCompile(`임차인`)
	rxLetterLandlordClaim = regexp.MustCompile(`차임|명도`)
	rxLetterLandlordIntro = regexp.MustCompile(`임대인`)
	rxArithmeticExpr      = regexp.MustCompile(`(금\s*)?[\d,]+\s*(만\s*)?원?\s*[×✕xX*]\s*[\d,]+\s*(개월분?|달)?(\s*=\s*(금\s*)?[\d,]+\s*(만\s*)?원?)?`)
)

// GuardLetter repairs a letter produced elsewhere: role-contradicting
// titles, introductions and bodies are replaced with the local ones,
// arithmetic amount expressions are replaced with the money description,
// and fixed sections are restored. GuardLetter is idempotent.
func GuardLetter(l models.DemandLetter, a *Analysis) models.DemandLetter {
	out := l
	local := ComposeLetter(a)

	switch {
	case a.Roles.IsLandlord():
		landlord := letterTextFor(letterLandlord, a)
		if rxLetterTenantClaim.MatchString(out.Title) || rxLetterTenantIntro.MatchString(out.Introduction) {
			out.Title = landlord.title
			out.Introduction = fmt.Sprintf("발신인은 귀하와 상기 부동산에 관하여 임대차 계약을 체결한 임대인(%s)입니다.", senderLabel(a.Narrative))
		}
		if rxLetterTenantClaim.MatchString(out.Body) {
			out.Body = numbered(landlord.body)
		}
	case a.Roles.IsTenant():
		tenant := letterTextFor(letterTenant, a)
		if rxLetterLandlordClaim.MatchString(out.Title) || rxLetterLandlordIntro.MatchString(out.Introduction) {
			out.Title = tenant.title
			out.Introduction = tenant.introduction
		}
		if rxLetterLandlordClaim.MatchString(out.Body) {
			out.Body = numbered(tenant.body)
		}
	}

	if rxArithmetic.MatchString(out.Body) {
		out.Body = rxArithmeticExpr.ReplaceAllLiteralString(out.Body, a.Facts.Money.Describe())
		if rxArithmetic.MatchString(out.Body) {
			out.Body = local.Body
		}
	}

	out.Header = models.LetterHeader
	out.Deadline = models.LetterDeadline
	if strings.TrimSpace(out.Title) == "" {
		out.Title = local.Title
	}
	if strings.TrimSpace(out.Parties.Recipient) == "" {
		out.Parties.Recipient = local.Parties.Recipient
	}
	if strings.TrimSpace(out.Parties.Sender) == "" {
		out.Parties.Sender = local.Parties.Sender
	}
	if strings.TrimSpace(out.Introduction) == "" {
		out.Introduction = local.Introduction
	}
	if strings.TrimSpace(out.Body) == "" {
		out.Body = local.Body
	}
	if strings.TrimSpace(out.LegalBasis) == "" {
		out.LegalBasis = local.LegalBasis
	}
	if strings.TrimSpace(out.Warning) == "" {
		out.Warning = local.Warning
	}
	return out
}
