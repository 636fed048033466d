package models

// CaseNarrative is the raw request input
type CaseNarrative struct {
	Content       string `json:"content"`
	SenderName    string `json:"senderName,omitempty"`
	RecipientName string `json:"recipientName,omitempty"`
}

// CaseCategory is the top-level legal category of a narrative
type CaseCategory string

const (
	CategoryRental   CaseCategory = "RENTAL"
	CategoryMoney    CaseCategory = "MONEY"
	CategoryLabor    CaseCategory = "LABOR"
	CategoryConsumer CaseCategory = "CONSUMER"
	CategoryCyber    CaseCategory = "CYBER"
	CategoryTraffic  CaseCategory = "TRAFFIC"
	CategoryFamily   CaseCategory = "FAMILY"
	CategoryCrime    CaseCategory = "CRIME"
	CategoryFraud    CaseCategory = "FRAUD"
	CategoryNoise    CaseCategory = "NOISE"
	CategoryOther    CaseCategory = "OTHER"
)

// Criminal reports whether letters for this category warn of criminal complaints
func (c CaseCategory) Criminal() bool {
	switch c {
	case CategoryFraud, CategoryCrime, CategoryCyber:
		return true
	}
	return false
}

// Sub-type labels used by the rule cascade and the template table
const (
	SubRentalFraud  = "전세사기"
	SubKeyMoney     = "권리금분쟁"
	SubEviction     = "명도/차임청구"
	SubDeposit      = "보증금반환"
	SubLease        = "임대차분쟁"
	SubRomanceScam  = "로맨스스캠"
	SubInvestFraud  = "투자사기"
	SubTradeFraud   = "중고거래사기"
	SubPhishing     = "보이스피싱"
	SubLoan         = "대여금반환청구"
	SubSexCrime     = "성범죄"
	SubStalking     = "스토킹·협박"
	SubCyberCrime   = "사이버범죄"
	SubDefamation   = "명예훼손"
	SubAssault      = "폭행·상해"
	SubFraud        = "사기"
	SubTraffic      = "교통사고"
	SubDivorce      = "이혼·가사"
	SubInheritance  = "상속분쟁"
	SubNoise        = "층간소음"
	SubLeak         = "누수·하자"
	SubWage         = "임금체불"
	SubDismissal    = "부당해고·직장내괴롭힘"
	SubRefund       = "환불분쟁"
	SubMoneyClaim   = "금전청구"
	SubGeneral      = "일반상담"
	SubInsufficient = "정보부족"
	SubNotLegal     = "법률외사안"
)

// Fact placeholders
const (
	MoneyNotApplicable = "해당 없음"
	MoneyUnknown       = "금액 미상"
	WhenUnknown        = "시기 미상"
	EvidenceNeeded     = "확인 필요"
)
