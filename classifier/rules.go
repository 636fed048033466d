package classifier

import (
	"regexp"

	"lawpick-backend/models"
)

// Classification is the outcome of the category cascade
type Classification struct {
	Category models.CaseCategory `json:"category"`
	SubType  string              `json:"subType"`
	Rule     string              `json:"rule"`
}

// Signals is what category rules may look at
type Signals struct {
	Text    string
	Roles   Roles
	Lending bool
}

func (s Signals) has(rx *regexp.Regexp) bool {
	return rx.MatchString(s.Text)
}

// Rule is one entry of the ordered cascade; the first match wins
type Rule struct {
	Name     string
	Category models.CaseCategory
	SubType  string
	Match    func(s Signals) bool
}

var (
	rxLending = regexp.MustCompile(`빌려 ?(줬|주었|준|줌|드렸|드린|갔|간)|빌렸|빌린|꿔 ?(줬|준|갔)|꿨|대여|차용`)

	rxRentalFraud     = regexp.MustCompile(`전세 ?사기|깡통 ?전세|신탁 ?사기|전세.{0,20}(사기|경매|잠적|근저당|압류|파산)|(보증금|집주인|임대인).{0,20}(사기|잠적|경매)`)
	rxKeyMoney        = regexp.MustCompile(`권리금`)
	rxKeyMoneyContext = regexp.MustCompile(`건물주|임대인|집주인|상가|신규 ?임차인|가게|점포|방해`)
	rxLandlordClaim   = regexp.MustCompile(`월세|차임|명도|세입자|임차인|원상복구|관리비|나가|퇴거|계약 ?해지|보증금`)
	rxDepositClaim    = regexp.MustCompile(`보증금|전세금|전세 ?자금|돌려|반환`)

	rxRomanceChannel = regexp.MustCompile(`로맨스|데이팅|소개팅 ?앱|채팅 ?앱|랜덤 ?채팅|틴더|(인스타|SNS|페이스북|온라인).{0,10}(만난|알게|연애)|해외 ?(군인|의사|파병)|랜선`)
	rxRomanceMoney   = regexp.MustCompile(`송금|입금|보냈|이체|돈을|투자|선물|통관|수수료`)
	rxInvestChannel  = regexp.MustCompile(`투자|코인|리딩방|주식 ?방|수익률|원금 ?보장|고수익|가상 ?자산|선물 ?거래`)
	rxInvestOutcome  = regexp.MustCompile(`사기|잠적|연락.{0,4}(두절|안 ?(되|돼)|끊)|출금.{0,5}(안|불가|막|거부)|손실|차단|먹튀|돌려주지|환불.{0,5}(안|거부)`)
	rxTradeChannel   = regexp.MustCompile(`중고나라|당근|번개장터|중고 ?거래|중고로|직거래|택배 ?거래|중고 ?(물품|폰|제품)`)
	rxTradePaid      = regexp.MustCompile(`입금|송금|돈을 ?보냈|결제|이체`)
	rxTradeOutcome   = regexp.MustCompile(`안 ?(보내|와|옴)|잠적|연락.{0,4}(두절|안 ?(되|돼)|끊|없)|차단|사기|벽돌|먹튀`)
	rxPhishing       = regexp.MustCompile(`보이스 ?피싱|(검찰|검사|경찰|금감원|금융감독원).{0,5}사칭|대출 ?빙자|스미싱|메신저 ?피싱|(아들|딸|자녀|엄마|아빠).{0,5}사칭`)
	rxLoanDefault    = regexp.MustCompile(`안 ?갚|갚지 ?않|차용증|변제`)

	rxSexCrime      = regexp.MustCompile(`성추행|성희롱|성폭행|성폭력|강제 ?추행|불법 ?촬영|몰카`)
	rxStalking      = regexp.MustCompile(`스토킹|협박|따라다니|집 ?앞.{0,5}(기다리|찾아)`)
	rxCyberCrime    = regexp.MustCompile(`해킹|개인정보.{0,5}(유출|도용)|계정.{0,3}(도용|해킹)|몸캠|디지털 ?성범죄|랜섬웨어`)
	rxDefamation    = regexp.MustCompile(`명예 ?훼손|모욕|비방|허위 ?사실|악플|악성 ?(댓글|리뷰|게시)|(욕|험담).{0,10}(단톡|게시|댓글|퍼뜨)|(단톡|게시판|커뮤니티|카페).{0,10}(욕|험담|비방)`)
	rxOnline        = regexp.MustCompile(`인터넷|온라인|댓글|리뷰|후기|게시|SNS|인스타|유튜브|블로그|카페|커뮤니티|단톡|카톡방|단체 ?채팅`)
	rxAssault       = regexp.MustCompile(`폭행|때렸|때리|맞았|멱살|상해|주먹|발로 ?(차|찼)|밀쳐|밀쳤`)
	rxFraud         = regexp.MustCompile(`사기|속아|속았|먹튀|편취|기망|짝퉁`)
	rxTraffic       = regexp.MustCompile(`교통 ?사고|접촉 ?사고|추돌|뺑소니|음주 ?운전|과실 ?비율|블랙박스|신호 ?위반|차 ?사고|차량.{0,5}(사고|파손)|보험사.{0,10}(과실|합의)`)
	rxDivorce       = regexp.MustCompile(`이혼|외도|불륜|상간|바람(을|났|피)|양육권|양육비|혼인|배우자|(남편|아내).{0,10}(폭언|폭력)`)
	rxInheritance   = regexp.MustCompile(`상속|유산|유류분|유언`)
	rxNoise         = regexp.MustCompile(`층간 ?소음|발망치|쿵쿵|소음|시끄러|고성방가`)
	rxLeak          = regexp.MustCompile(`누수|물이 ?새|천장.{0,10}(물|곰팡이)|곰팡이|배관`)
	rxWage          = regexp.MustCompile(`월급|임금|급여|알바비|퇴직금|일당|주휴 ?수당|체불|용역비|(외주|프리랜서).{0,10}(대금|정산|못 ?받)|(야근|연장) ?수당`)
	rxDismissal     = regexp.MustCompile(`해고|권고 ?사직|직장 ?내 ?괴롭힘|갑질|부당 ?(전보|징계)|잘렸`)
	rxRefund        = regexp.MustCompile(`환불|반품|교환|청약 ?철회|하자|불량|계약금.{0,10}(반환|돌려)|위약금|헬스장|학원비`)
	rxMoneyMention  = regexp.MustCompile(`돈|만 ?원|억|대금|미수금|외상|금액`)
	rxMoneyWithheld = regexp.MustCompile(`안 ?(줘|줌|준|주|갚)|못 ?받|미지급|떼먹|연락.{0,4}(두절|안 ?(되|돼)|끊)`)
)

// cascade is ordered: tier 1 role-anchored rental rules, tier 2 scam types
// that must not swallow plain lending, tier 3 lending, tier 4 catch-alls
var cascade = []Rule{
	{"rental_fraud", models.CategoryRental, models.SubRentalFraud, func(s Signals) bool {
		return !s.Roles.IsLandlord() && s.has(rxRentalFraud)
	}},
	{"key_money", models.CategoryRental, models.SubKeyMoney, func(s Signals) bool {
		return s.has(rxKeyMoney) && s.has(rxKeyMoneyContext)
	}},
	{"landlord_claim", models.CategoryRental, models.SubEviction, func(s Signals) bool {
		return s.Roles.IsLandlord() && s.has(rxLandlordClaim)
	}},
	{"deposit_return", models.CategoryRental, models.SubDeposit, func(s Signals) bool {
		return s.Roles.IsTenant() && s.has(rxDepositClaim)
	}},

	{"romance_scam", models.CategoryFraud, models.SubRomanceScam, func(s Signals) bool {
		return !s.Lending && s.has(rxRomanceChannel) && s.has(rxRomanceMoney)
	}},
	{"investment_fraud", models.CategoryFraud, models.SubInvestFraud, func(s Signals) bool {
		return !s.Lending && s.has(rxInvestChannel) && s.has(rxInvestOutcome)
	}},
	{"trade_fraud", models.CategoryFraud, models.SubTradeFraud, func(s Signals) bool {
		return !s.Lending && s.has(rxTradeChannel) && s.has(rxTradePaid) && s.has(rxTradeOutcome)
	}},
	{"phishing", models.CategoryFraud, models.SubPhishing, func(s Signals) bool {
		return s.has(rxPhishing)
	}},

	{"loan", models.CategoryMoney, models.SubLoan, func(s Signals) bool {
		return s.Lending || s.has(rxLoanDefault)
	}},

	{"sex_crime", models.CategoryCrime, models.SubSexCrime, func(s Signals) bool {
		return s.has(rxSexCrime)
	}},
	{"stalking", models.CategoryCrime, models.SubStalking, func(s Signals) bool {
		return s.has(rxStalking)
	}},
	{"cyber_crime", models.CategoryCyber, models.SubCyberCrime, func(s Signals) bool {
		return s.has(rxCyberCrime)
	}},
	{"online_defamation", models.CategoryCyber, models.SubDefamation, func(s Signals) bool {
		return s.has(rxDefamation) && s.has(rxOnline)
	}},
	{"defamation", models.CategoryCrime, models.SubDefamation, func(s Signals) bool {
		return s.has(rxDefamation)
	}},
	{"assault", models.CategoryCrime, models.SubAssault, func(s Signals) bool {
		return s.has(rxAssault)
	}},
	{"fraud", models.CategoryFraud, models.SubFraud, func(s Signals) bool {
		return s.has(rxFraud)
	}},
	{"traffic", models.CategoryTraffic, models.SubTraffic, func(s Signals) bool {
		return s.has(rxTraffic)
	}},
	{"divorce", models.CategoryFamily, models.SubDivorce, func(s Signals) bool {
		return s.has(rxDivorce)
	}},
	{"inheritance", models.CategoryFamily, models.SubInheritance, func(s Signals) bool {
		return s.has(rxInheritance)
	}},
	{"noise", models.CategoryNoise, models.SubNoise, func(s Signals) bool {
		return s.has(rxNoise)
	}},
	{"leak", models.CategoryRental, models.SubLeak, func(s Signals) bool {
		return s.has(rxLeak)
	}},
	{"wage", models.CategoryLabor, models.SubWage, func(s Signals) bool {
		return s.has(rxWage)
	}},
	{"dismissal", models.CategoryLabor, models.SubDismissal, func(s Signals) bool {
		return s.has(rxDismissal)
	}},
	{"refund", models.CategoryConsumer, models.SubRefund, func(s Signals) bool {
		return s.has(rxRefund)
	}},
	{"lease_general", models.CategoryRental, models.SubLease, func(s Signals) bool {
		return s.Roles.Lease.Determined()
	}},
	{"money_claim", models.CategoryMoney, models.SubMoneyClaim, func(s Signals) bool {
		return s.has(rxMoneyMention) && s.has(rxMoneyWithheld)
	}},
	{"general", models.CategoryOther, models.SubGeneral, func(Signals) bool {
		return true
	}},
}

// HasLendingVerb reports whether the narrative describes lending or
// borrowing money
func HasLendingVerb(text string) bool {
	return rxLending.MatchString(text)
}

// Classify runs the cascade and returns the first matching rule
func Classify(text string, roles Roles) Classification {
	s := Signals{Text: text, Roles: roles, Lending: HasLendingVerb(text)}
	for _, r := range cascade {
		if r.Match(s) {
			return Classification{Category: r.Category, SubType: r.SubType, Rule: r.Name}
		}
	}
	return Classification{Category: models.CategoryOther, SubType: models.SubGeneral, Rule: "general"}
}

// axisFor picks the role axis relevant to a classification
func axisFor(c Classification) Axis {
	switch c.Category {
	case models.CategoryRental:
		return AxisLease
	case models.CategoryMoney:
		return AxisDebt
	case models.CategoryLabor:
		return AxisEmployment
	case models.CategoryConsumer:
		return AxisTrade
	case models.CategoryFraud:
		if c.SubType == models.SubTradeFraud {
			return AxisTrade
		}
		return AxisTort
	case models.CategoryCrime, models.CategoryCyber, models.CategoryTraffic:
		return AxisTort
	}
	return ""
}
