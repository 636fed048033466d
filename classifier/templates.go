package classifier

import "lawpick-backend/models"

type templateKey struct {
	Category models.CaseCategory
	SubType  string
}

// caseTemplate holds the fixed presentation strings for one sub-type.
// Brief, RiskReason and Actions may reference {client}, {counterparty},
// {amount} and {label}.
type caseTemplate struct {
	Label           string
	BaseScore       int
	Brief           string
	LegalCategories []string
	RiskReason      string
	Actions         []string
}

var templates = map[templateKey]caseTemplate{
	{models.CategoryRental, models.SubRentalFraud}: {
		Label:           "전세사기 의심",
		BaseScore:       92,
		Brief:           "의뢰인이 {counterparty} 측의 전세사기 정황으로 {amount} 상당의 보증금을 돌려받지 못할 위험에 놓인 사안입니다.",
		LegalCategories: []string{"임대차", "전세사기", "보증금 반환"},
		RiskReason:      "임대인의 잠적, 경매 또는 근저당 문제로 보증금 회수가 불확실하며 시간이 지날수록 우선순위가 밀릴 수 있습니다.",
		Actions: []string{
			"등기부등본을 즉시 발급해 근저당, 압류, 신탁 여부를 확인하세요.",
			"관할 법원에 임차권등기명령을 신청해 대항력과 우선변제권을 유지하세요.",
			"전세피해지원센터에 상담을 신청하고 피해자 결정 요건을 확인하세요.",
			"{counterparty}에게 {amount} 반환을 요구하는 내용증명을 발송하세요.",
		},
	},
	{models.CategoryRental, models.SubKeyMoney}: {
		Label:           "상가 권리금 분쟁",
		BaseScore:       78,
		Brief:           "상가 임대차에서 건물주가 신규 임차인 주선을 거절하거나 방해해 의뢰인의 권리금 {amount} 회수가 막힌 사안입니다.",
		LegalCategories: []string{"상가건물 임대차", "권리금 회수기회 보호", "손해배상"},
		RiskReason:      "권리금 회수 방해는 손해배상 청구가 가능하지만 임대차 종료 후 3년 안에 행사해야 하며 방해 사실 입증이 필요합니다.",
		Actions: []string{
			"신규 임차인과 주고받은 권리금 계약서와 연락 기록을 확보하세요.",
			"건물주의 거절 사유를 문자나 녹음으로 남기세요.",
			"권리금 감정평가를 받아 손해액 근거를 마련하세요.",
			"건물주에게 권리금 회수기회 보호 의무를 알리는 내용증명을 보내세요.",
		},
	},
	{models.CategoryRental, models.SubEviction}: {
		Label:           "명도 및 차임 청구",
		BaseScore:       75,
		Brief:           "임대인인 의뢰인이 임차인의 차임 연체와 의무 불이행에 대해 {amount} 지급과 건물 인도를 구하는 사안입니다.",
		LegalCategories: []string{"임대차", "차임지급청구", "건물명도"},
		RiskReason:      "차임 연체가 누적되면 계약 해지 사유가 되지만 임차인이 점유를 계속하면 명도소송 없이는 회수가 어렵습니다.",
		Actions: []string{
			"연체 내역과 미지급 비용({amount})을 정리한 내용증명을 발송하세요.",
			"2기 이상 차임 연체를 근거로 임대차 계약 해지를 통지하세요.",
			"점유이전금지가처분을 신청한 뒤 명도소송을 준비하세요.",
			"원상복구 전후 사진과 견적서를 확보해 손해액을 입증하세요.",
		},
	},
	{models.CategoryRental, models.SubDeposit}: {
		Label:           "임대차 보증금 반환",
		BaseScore:       80,
		Brief:           "임차인인 의뢰인이 계약 종료 후에도 {counterparty}으로부터 보증금 {amount}을 돌려받지 못하고 있는 사안입니다.",
		LegalCategories: []string{"임대차", "보증금 반환", "임차권등기명령"},
		RiskReason:      "이사를 먼저 하면 대항력을 잃을 수 있고 반환이 늦어질수록 지연손해금 분쟁이 커집니다.",
		Actions: []string{
			"이사 전에 임차권등기명령을 신청해 대항력을 유지하세요.",
			"{counterparty}에게 보증금 {amount} 반환을 요구하는 내용증명을 발송하세요.",
			"반환이 없으면 지급명령 또는 보증금반환소송을 제기하세요.",
		},
	},
	{models.CategoryRental, models.SubLease}: {
		Label:           "임대차 분쟁",
		BaseScore:       60,
		Brief:           "의뢰인과 {counterparty} 사이에 임대차 계약 이행을 두고 다툼이 생긴 사안입니다.",
		LegalCategories: []string{"임대차", "계약 이행"},
		RiskReason:      "계약서 특약과 주고받은 연락에 따라 책임 범위가 달라지므로 기록을 남기지 않으면 불리해질 수 있습니다.",
		Actions: []string{
			"임대차 계약서와 특약 사항을 다시 확인하세요.",
			"상대방과의 대화를 문자나 녹음으로 남기세요.",
			"주택임대차분쟁조정위원회에 조정을 신청하세요.",
		},
	},
	{models.CategoryRental, models.SubLeak}: {
		Label:           "누수 및 주택 하자",
		BaseScore:       60,
		Brief:           "누수 또는 주택 하자로 의뢰인이 재산 피해를 입고 {counterparty}에게 수리와 배상을 구하는 사안입니다.",
		LegalCategories: []string{"공작물 책임", "손해배상", "수선 의무"},
		RiskReason:      "누수 원인과 책임 소재가 불분명하면 배상이 지연되고 피해가 계속 커질 수 있습니다.",
		Actions: []string{
			"누수 부위와 피해 물품을 사진과 영상으로 기록하세요.",
			"누수탐지 업체의 원인 소견서를 받아두세요.",
			"수리비 견적서를 첨부해 배상을 요구하는 내용증명을 보내세요.",
		},
	},
	{models.CategoryFraud, models.SubRomanceScam}: {
		Label:           "로맨스스캠",
		BaseScore:       95,
		Brief:           "온라인에서 알게 된 상대방이 연인 관계를 가장해 의뢰인에게서 {amount}을 송금받은 로맨스스캠 의심 사안입니다.",
		LegalCategories: []string{"사기", "전기통신금융사기", "형사 고소"},
		RiskReason:      "해외 계좌나 가상자산으로 자금이 빠르게 이동하므로 신고가 늦으면 회수 가능성이 급격히 낮아집니다.",
		Actions: []string{
			"송금한 은행에 즉시 지급정지를 요청하세요.",
			"대화 내역과 프로필, 송금 내역을 캡처해 보관하세요.",
			"경찰청 사이버범죄 신고시스템에 피해를 신고하세요.",
			"추가 송금 요구에는 절대 응하지 마세요.",
		},
	},
	{models.CategoryFraud, models.SubInvestFraud}: {
		Label:           "투자사기",
		BaseScore:       90,
		Brief:           "고수익을 약속한 투자 권유에 따라 {amount}을 보냈으나 출금이 막히거나 운영자가 잠적한 투자사기 의심 사안입니다.",
		LegalCategories: []string{"사기", "유사수신행위", "형사 고소"},
		RiskReason:      "조직적 투자사기는 자금 세탁이 빨라 피해 회복이 어렵고 추가 입금을 유도하는 경우가 많습니다.",
		Actions: []string{
			"입금 계좌 은행에 지급정지를 요청하세요.",
			"투자 권유 메시지와 사이트 화면, 입금 내역을 보관하세요.",
			"경찰에 사기 혐의로 고소장을 제출하세요.",
			"같은 피해자들과 연락해 공동 대응을 검토하세요.",
		},
	},
	{models.CategoryFraud, models.SubTradeFraud}: {
		Label:           "중고거래사기",
		BaseScore:       88,
		Brief:           "중고거래에서 대금 {amount}을 입금했으나 판매자가 물건을 보내지 않고 연락을 끊은 사안입니다.",
		LegalCategories: []string{"사기", "전자상거래", "형사 고소"},
		RiskReason:      "판매자가 여러 피해자를 상대로 같은 수법을 반복하는 경우가 많아 빠른 신고가 회수 가능성을 좌우합니다.",
		Actions: []string{
			"거래 게시글과 대화 내역, 입금 내역을 캡처해 두세요.",
			"판매자 계좌번호를 더치트 등에서 조회하고 피해를 등록하세요.",
			"경찰청 사이버범죄 신고시스템에 신고하세요.",
		},
	},
	{models.CategoryFraud, models.SubPhishing}: {
		Label:           "보이스피싱",
		BaseScore:       93,
		Brief:           "기관이나 가족을 사칭한 연락에 속아 {amount}을 이체한 보이스피싱 피해 사안입니다.",
		LegalCategories: []string{"전기통신금융사기", "사기", "피해구제 신청"},
		RiskReason:      "지급정지가 늦어지면 피해금이 인출되어 환급 절차로도 돌려받기 어렵습니다.",
		Actions: []string{
			"112 또는 송금 은행에 즉시 지급정지를 요청하세요.",
			"은행에 피해구제 신청서를 제출하세요.",
			"휴대폰에 설치된 원격 제어 앱을 삭제하고 공동인증서를 폐기하세요.",
		},
	},
	{models.CategoryFraud, models.SubFraud}: {
		Label:           "사기 피해",
		BaseScore:       85,
		Brief:           "상대방의 기망 행위로 의뢰인이 {amount} 상당의 재산상 손해를 입은 사안입니다.",
		LegalCategories: []string{"사기", "형사 고소", "손해배상"},
		RiskReason:      "처음부터 갚을 의사가 없었다는 점을 입증해야 형사 처벌이 가능하므로 증거 확보가 중요합니다.",
		Actions: []string{
			"상대방이 한 약속과 거짓말이 담긴 대화를 보관하세요.",
			"송금 내역과 계약 관련 자료를 정리하세요.",
			"경찰에 사기 혐의로 고소장을 제출하세요.",
		},
	},
	{models.CategoryMoney, models.SubLoan}: {
		Label:           "대여금 반환",
		BaseScore:       68,
		Brief:           "의뢰인과 {counterparty} 사이에 빌려준 돈 {amount}의 반환을 두고 다툼이 생긴 사안입니다.",
		LegalCategories: []string{"대여금 반환", "민사 소송", "지급명령"},
		RiskReason:      "상대방이 빌린 돈이 아니라고 다투면 대여 사실을 입증해야 하며 소멸시효가 지나면 청구할 수 없습니다.",
		Actions: []string{
			"이체 내역과 차용 사실을 인정한 대화를 확보하세요.",
			"{counterparty}에게 {amount} 변제를 요구하는 내용증명을 보내세요.",
			"반환이 없으면 지급명령이나 소액심판을 신청하세요.",
			"상대방 재산에 가압류를 검토하세요.",
		},
	},
	{models.CategoryMoney, models.SubMoneyClaim}: {
		Label:           "금전 청구",
		BaseScore:       62,
		Brief:           "의뢰인이 상대방에게 받아야 할 {amount}을 지급받지 못하고 있는 금전 분쟁입니다.",
		LegalCategories: []string{"금전 청구", "민사 소송"},
		RiskReason:      "채권의 발생 근거를 입증하지 못하면 청구가 기각될 수 있습니다.",
		Actions: []string{
			"금전 지급 약속이 담긴 자료를 정리하세요.",
			"지급을 요구하는 내용증명을 보내세요.",
			"지급명령 신청을 검토하세요.",
		},
	},
	{models.CategoryCrime, models.SubSexCrime}: {
		Label:           "성범죄",
		BaseScore:       90,
		Brief:           "의뢰인이 성적 침해 행위로 피해를 입은 사안입니다.",
		LegalCategories: []string{"성폭력범죄", "형사 고소", "피해자 보호"},
		RiskReason:      "시간이 지나면 증거가 사라지고 2차 피해 우려가 있어 신속한 보호 조치가 필요합니다.",
		Actions: []string{
			"해바라기센터 또는 112에 즉시 도움을 요청하세요.",
			"피해 당시 상황을 기록하고 관련 메시지를 보관하세요.",
			"국선 피해자 변호사 선임을 요청하세요.",
		},
	},
	{models.CategoryCrime, models.SubStalking}: {
		Label:           "스토킹 및 협박",
		BaseScore:       86,
		Brief:           "상대방의 반복적인 접근이나 협박으로 의뢰인이 신변의 위협을 느끼는 사안입니다.",
		LegalCategories: []string{"스토킹처벌법", "협박", "접근금지"},
		RiskReason:      "스토킹과 협박은 짧은 기간에 강력범죄로 이어질 수 있어 조기 개입이 중요합니다.",
		Actions: []string{
			"112에 신고하고 긴급응급조치를 요청하세요.",
			"연락 기록과 방문 시각을 일지로 정리하세요.",
			"법원에 잠정조치(접근금지)를 신청하세요.",
		},
	},
	{models.CategoryCyber, models.SubCyberCrime}: {
		Label:           "사이버범죄",
		BaseScore:       84,
		Brief:           "해킹이나 개인정보 도용 등 정보통신망을 이용한 침해로 의뢰인이 피해를 입은 사안입니다.",
		LegalCategories: []string{"정보통신망법", "개인정보보호법", "형사 고소"},
		RiskReason:      "도용된 계정이나 유출된 정보가 2차 범죄에 쓰일 수 있어 확산을 막는 조치가 우선입니다.",
		Actions: []string{
			"비밀번호를 변경하고 로그인 기록을 확인하세요.",
			"피해 화면을 캡처하고 접속 기록을 보관하세요.",
			"경찰청 사이버범죄 신고시스템에 신고하세요.",
		},
	},
	{models.CategoryCyber, models.SubDefamation}: {
		Label:           "온라인 명예훼손",
		BaseScore:       68,
		Brief:           "온라인 게시물이나 댓글로 의뢰인의 명예가 훼손되거나 모욕을 당한 사안입니다.",
		LegalCategories: []string{"명예훼손", "모욕", "정보통신망법"},
		RiskReason:      "게시물이 삭제되면 입증이 어려워지고 모욕죄는 안 날로부터 6개월 안에 고소해야 합니다.",
		Actions: []string{
			"게시물 주소와 작성 시각이 보이도록 캡처하세요.",
			"플랫폼에 게시 중단(임시조치)을 요청하세요.",
			"작성자를 상대로 고소 또는 손해배상 청구를 검토하세요.",
		},
	},
	{models.CategoryCrime, models.SubDefamation}: {
		Label:           "명예훼손",
		BaseScore:       64,
		Brief:           "상대방이 여러 사람 앞에서 의뢰인의 명예를 훼손하거나 모욕한 사안입니다.",
		LegalCategories: []string{"명예훼손", "모욕"},
		RiskReason:      "공연성과 사실 적시 여부에 따라 성립 여부가 갈리므로 발언을 들은 사람의 진술이 중요합니다.",
		Actions: []string{
			"발언 일시와 장소, 들은 사람을 정리하세요.",
			"녹음이나 메시지 등 발언 증거를 확보하세요.",
			"고소 여부와 손해배상 청구를 검토하세요.",
		},
	},
	{models.CategoryCrime, models.SubAssault}: {
		Label:           "폭행 및 상해",
		BaseScore:       80,
		Brief:           "상대방의 폭행으로 의뢰인이 신체적 피해를 입은 사안입니다.",
		LegalCategories: []string{"폭행", "상해", "손해배상"},
		RiskReason:      "진단서와 현장 증거가 없으면 쌍방폭행으로 다퉈질 위험이 있습니다.",
		Actions: []string{
			"병원 진료를 받고 상해진단서를 발급받으세요.",
			"현장 CCTV 보존을 요청하고 목격자 연락처를 확보하세요.",
			"경찰에 고소하고 치료비 배상을 청구하세요.",
		},
	},
	{models.CategoryTraffic, models.SubTraffic}: {
		Label:           "교통사고",
		BaseScore:       65,
		Brief:           "교통사고로 인한 과실 비율과 손해배상 범위를 두고 다툼이 생긴 사안입니다.",
		LegalCategories: []string{"교통사고", "손해배상", "과실비율"},
		RiskReason:      "블랙박스와 현장 기록이 과실비율을 좌우하며 합의 후에는 추가 청구가 어렵습니다.",
		Actions: []string{
			"블랙박스 영상과 현장 사진을 백업하세요.",
			"보험사에 사고 접수 후 과실비율 산정 근거를 요청하세요.",
			"이견이 있으면 과실비율분쟁심의위원회에 심의를 청구하세요.",
		},
	},
	{models.CategoryFamily, models.SubDivorce}: {
		Label:           "이혼 및 가사",
		BaseScore:       60,
		Brief:           "배우자와의 혼인 관계 파탄을 두고 이혼, 위자료, 양육 문제를 정리해야 하는 사안입니다.",
		LegalCategories: []string{"이혼", "위자료", "재산분할"},
		RiskReason:      "유책 사유와 재산 내역을 미리 정리하지 않으면 위자료와 재산분할에서 불리해질 수 있습니다.",
		Actions: []string{
			"유책 사유를 입증할 자료를 시간 순서로 정리하세요.",
			"공동 재산과 채무 목록을 작성하세요.",
			"협의이혼이 어려우면 가정법원 조정을 신청하세요.",
		},
	},
	{models.CategoryFamily, models.SubInheritance}: {
		Label:           "상속 분쟁",
		BaseScore:       58,
		Brief:           "상속 재산의 분할이나 유류분을 두고 상속인 사이에 다툼이 생긴 사안입니다.",
		LegalCategories: []string{"상속", "유류분", "상속재산분할"},
		RiskReason:      "상속 포기와 한정승인은 3개월, 유류분 청구는 1년 안에 해야 하는 기간 제한이 있습니다.",
		Actions: []string{
			"상속재산 조회 서비스로 재산과 채무를 확인하세요.",
			"가족관계증명서와 유언장 존재 여부를 확인하세요.",
			"기한 안에 상속재산분할 협의 또는 심판을 진행하세요.",
		},
	},
	{models.CategoryNoise, models.SubNoise}: {
		Label:           "층간소음",
		BaseScore:       55,
		Brief:           "이웃 세대의 반복적인 소음으로 의뢰인의 생활이 침해되고 있는 사안입니다.",
		LegalCategories: []string{"생활방해", "손해배상", "공동주택관리"},
		RiskReason:      "직접 항의하다 보면 보복 소음이나 폭행 시비로 번질 수 있어 공식 절차를 거치는 것이 안전합니다.",
		Actions: []string{
			"소음 발생 일시와 내용을 일지로 기록하고 녹음하세요.",
			"관리사무소에 중재를 요청하세요.",
			"층간소음 이웃사이센터에 측정과 상담을 신청하세요.",
		},
	},
	{models.CategoryLabor, models.SubWage}: {
		Label:           "임금 체불",
		BaseScore:       70,
		Brief:           "근로의 대가로 받아야 할 임금 {amount}을 사용자가 지급하지 않고 있는 사안입니다.",
		LegalCategories: []string{"근로기준법", "임금체불", "진정"},
		RiskReason:      "임금채권은 3년이 지나면 소멸하며 사업장이 폐업하면 회수가 더 어려워집니다.",
		Actions: []string{
			"근로계약서와 출퇴근 기록, 급여 이체 내역을 모으세요.",
			"고용노동부에 임금체불 진정을 제기하세요.",
			"체불임금확인서를 받아 대지급금 신청을 검토하세요.",
		},
	},
	{models.CategoryLabor, models.SubDismissal}: {
		Label:           "부당해고 및 직장 내 괴롭힘",
		BaseScore:       66,
		Brief:           "정당한 사유나 절차 없이 해고되었거나 직장 내 괴롭힘을 당한 사안입니다.",
		LegalCategories: []string{"근로기준법", "부당해고", "직장 내 괴롭힘"},
		RiskReason:      "부당해고 구제신청은 해고일로부터 3개월 안에 해야 하므로 기한을 놓치지 않아야 합니다.",
		Actions: []string{
			"해고 통보 문서나 메시지를 보관하세요.",
			"관할 지방노동위원회에 부당해고 구제신청을 하세요.",
			"괴롭힘 사실은 회사에 신고하고 조사를 요구하세요.",
		},
	},
	{models.CategoryConsumer, models.SubRefund}: {
		Label:           "환불 분쟁",
		BaseScore:       50,
		Brief:           "구매한 상품이나 서비스의 환불 또는 교환을 두고 업체와 다툼이 생긴 사안입니다.",
		LegalCategories: []string{"전자상거래법", "소비자분쟁", "청약철회"},
		RiskReason:      "청약철회 기간이 지나면 환불 요구가 어려워지므로 기한을 확인해야 합니다.",
		Actions: []string{
			"결제 내역과 환불 거절 메시지를 보관하세요.",
			"업체에 서면으로 환불을 요구하세요.",
			"한국소비자원 1372 상담센터에 피해구제를 신청하세요.",
		},
	},
	{models.CategoryOther, models.SubGeneral}: {
		Label:           "일반 법률 상담",
		BaseScore:       40,
		Brief:           "의뢰인과 {counterparty} 사이의 분쟁으로 구체적인 사실관계 확인이 필요한 사안입니다.",
		LegalCategories: []string{"일반 민사"},
		RiskReason:      "현재 정보만으로는 법적 쟁점을 특정하기 어려워 추가 사실 확인이 필요합니다.",
		Actions: []string{
			"사건 경위를 날짜 순서로 정리하세요.",
			"관련 문서와 대화 기록을 모아두세요.",
			"대한법률구조공단 132에서 무료 상담을 받아보세요.",
		},
	},
}

func lookupTemplate(category models.CaseCategory, subType string) caseTemplate {
	if t, ok := templates[templateKey{category, subType}]; ok {
		return t
	}
	return templates[templateKey{models.CategoryOther, models.SubGeneral}]
}

// Sentinel narratives
const (
	briefInsufficient  = "입력된 내용만으로는 사안을 판단하기 어렵습니다. 언제, 누구와, 어떤 일이 있었는지 15자 이상 구체적으로 적어주세요."
	reasonInsufficient = "정보가 부족해 위험도를 산정하지 않았습니다."
	briefNotLegal      = "법적 분쟁 사안이 아닙니다."
	reasonNotLegal     = "법률 분쟁과 관련된 내용이 확인되지 않았습니다."
)
