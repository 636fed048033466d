package classifier

import (
	"regexp"
	"strings"
)

// Axis is a pair of opposing roles
type Axis string

const (
	AxisLease      Axis = "lease"
	AxisDebt       Axis = "debt"
	AxisTrade      Axis = "trade"
	AxisTort       Axis = "tort"
	AxisEmployment Axis = "employment"
)

// Role labels
const (
	RoleLandlord     = "임대인"
	RoleTenant       = "임차인"
	RoleCreditor     = "채권자"
	RoleDebtor       = "채무자"
	RoleBuyer        = "매수인"
	RoleSeller       = "매도인"
	RoleVictim       = "피해자"
	RoleSuspect      = "피의자"
	RoleEmployee     = "근로자"
	RoleEmployer     = "사용자"
	RoleClient       = "의뢰인"
	RoleCounterparty = "상대방"
)

// Side selects one end of an axis
type Side int

const (
	SideUnknown Side = iota
	SideA
	SideB
)

// RoleAssignment is the resolved client role on one axis. The zero value
// means the axis could not be determined.
type RoleAssignment struct {
	Axis         Axis   `json:"axis,omitempty"`
	Client       string `json:"client,omitempty"`
	Counterparty string `json:"counterparty,omitempty"`
	Rule         string `json:"rule,omitempty"`
}

// Determined reports whether a rule resolved this axis
func (r RoleAssignment) Determined() bool {
	return r.Client != ""
}

// Roles holds one assignment per axis. Each axis stores a single client
// role, so opposing roles can never both be set.
type Roles struct {
	Lease      RoleAssignment `json:"lease"`
	Debt       RoleAssignment `json:"debt"`
	Trade      RoleAssignment `json:"trade"`
	Tort       RoleAssignment `json:"tort"`
	Employment RoleAssignment `json:"employment"`
}

// IsLandlord reports whether the narrator is the lessor
func (r Roles) IsLandlord() bool { return r.Lease.Client == RoleLandlord }

// IsTenant reports whether the narrator is the lessee
func (r Roles) IsTenant() bool { return r.Lease.Client == RoleTenant }

// For returns the assignment on axis
func (r Roles) For(axis Axis) RoleAssignment {
	switch axis {
	case AxisLease:
		return r.Lease
	case AxisDebt:
		return r.Debt
	case AxisTrade:
		return r.Trade
	case AxisTort:
		return r.Tort
	case AxisEmployment:
		return r.Employment
	}
	return RoleAssignment{}
}

func (r *Roles) set(a RoleAssignment) {
	switch a.Axis {
	case AxisLease:
		r.Lease = a
	case AxisDebt:
		r.Debt = a
	case AxisTrade:
		r.Trade = a
	case AxisTort:
		r.Tort = a
	case AxisEmployment:
		r.Employment = a
	}
}

type roleRule struct {
	name  string
	side  Side
	match func(text string) bool
}

type axisDef struct {
	axis  Axis
	roleA string
	roleB string
	rules []roleRule
}

func matchRx(rx *regexp.Regexp) func(string) bool {
	return rx.MatchString
}

var (
	rxLandlordSelf  = regexp.MustCompile(`(집주인|임대인|건물주)(입니다|이에요|예요|인데|이고|이며|으로서|로서)|(저는|나는) ?(집주인|임대인|건물주)(입|이에|예|인데|으로|로)`)
	rxTenantSubject = regexp.MustCompile(`(세입자가|세입자는|세입자 측이|세입자들이|임차인이|임차인은|임차인 측이)`)
	rxOtherSubject  = regexp.MustCompile(`(집주인|임대인|건물주)(이|가|은|는|께서)`)
	rxTenantFault   = regexp.MustCompile(`(안 ?(내|냈|냄|낸|줘|줬|줌|주|준|갚)|못 ?(내|냈|줘|주|갚)|밀(려|렸|리|림|린)|연체|미납|도망|잠적|야반도주|연락.{0,4}(두절|안 ?(되|돼|받)|끊)|안 ?나가|버티|무단|파손|망가뜨)`)
	rxTenantSelf    = regexp.MustCompile(`(세입자|임차인)(입니다|이에요|예요|인데|이고|이며|으로서|로서)|(저는|나는) ?(세입자|임차인)(입|이에|예|인데|으로|로)`)
	rxToLandlord    = regexp.MustCompile(`(집주인|임대인|건물주)(에게|한테|께|이|가|은|는|측이|측에서|쪽에서)`)
	rxDepositLost   = regexp.MustCompile(`(보증금|전세금|전세 ?자금).{0,12}(못 ?받|안 ?돌려|돌려받|돌려 ?달|반환|안 ?줘|안 ?줌|안 ?준|걱정|떼일|날리)`)
	rxLandlordNoun  = regexp.MustCompile(`집주인|임대인|건물주`)
	rxTenantNoun    = regexp.MustCompile(`세입자|임차인`)
	rxLeaseNoun     = regexp.MustCompile(`전세|월세|보증금|임대차|전월세`)

	rxLent           = regexp.MustCompile(`빌려 ?(줬|주었|준|줌|드렸|드린)|꿔 ?(줬|준)|대여해 ?(줬|준|드렸)`)
	rxSelfBorrowed   = regexp.MustCompile(`(제가|내가|저는|나는|저도).{0,15}(빌렸|빌린|꿨|차용했|대출 ?받)`)
	rxUnpaidDebt     = regexp.MustCompile(`안 ?갚|갚지 ?않|빌려 ?(갔|간)|꿔 ?(갔|간)|떼먹|차용증`)
	rxCannotRepay    = regexp.MustCompile(`못 ?갚|갚을 ?(수가?|돈이?) ?없`)
	rxDebtorNoun     = regexp.MustCompile(`채무자`)
	rxCreditorNoun   = regexp.MustCompile(`채권자|독촉|추심`)
	rxBought         = regexp.MustCompile(`샀|구매했|구입했|주문했|결제했|구매한|구입한|주문한`)
	rxSold           = regexp.MustCompile(`팔았|판매했|판매한|구매자(가|는|에게|한테)`)
	rxSellerNoun     = regexp.MustCompile(`판매자|셀러|업체|쇼핑몰`)
	rxBuyerNoun      = regexp.MustCompile(`구매자|손님`)
	rxAccused        = regexp.MustCompile(`(고소|신고|고발)(를 ?)?당|피의자|가해자(입니다|인데|로)|(제가|내가) ?.{0,10}(때렸|밀쳤|폭행했)|합의금.{0,6}(요구|달라)`)
	rxVictimized     = regexp.MustCompile(`당했|피해를 ?(입|봤|당)|피해자|맞았|속았|뜯겼|털렸`)
	rxOffenderNoun   = regexp.MustCompile(`가해자|범인|사기꾼`)
	rxEmployerSelf   = regexp.MustCompile(`(사장|대표|사업주|고용주)(입니다|인데|이에요|예요)|(직원|알바생|근로자|아르바이트생)(이|가|들이) .{0,20}(무단|잠적|횡령|안 ?나와|연락.{0,4}(두절|끊))`)
	rxWageUnpaid     = regexp.MustCompile(`(월급|임금|급여|알바비|퇴직금|일당|주휴 ?수당|수당|용역비).{0,15}(안 ?(줘|줌|준|주|나|들)|못 ?받|밀|체불|미지급|떼)|해고(를 ?)?당|잘렸|권고 ?사직`)
	rxToEmployer     = regexp.MustCompile(`(사장|사장님|대표|회사|사업주)(이|가|께서|한테|에게)`)
)

// tenantMisconduct matches "세입자가 ... 안 냄/도망" within a short window,
// stopping early when another party becomes the subject
func tenantMisconduct(text string) bool {
	for _, loc := range rxTenantSubject.FindAllStringIndex(text, -1) {
		window := runeWindow(text[loc[1]:], 30)
		if cut := rxOtherSubject.FindStringIndex(window); cut != nil {
			window = window[:cut[0]]
		}
		if rxTenantFault.MatchString(window) {
			return true
		}
	}
	return false
}

func runeWindow(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// axisDefs lists each axis's rules strongest first: verb phrases about the
// counterparty, then self introductions, then bare nouns
var axisDefs = []axisDef{
	{
		axis: AxisLease, roleA: RoleLandlord, roleB: RoleTenant,
		rules: []roleRule{
			{"tenant_misconduct", SideA, tenantMisconduct},
			{"landlord_self", SideA, matchRx(rxLandlordSelf)},
			{"tenant_self", SideB, matchRx(rxTenantSelf)},
			{"addressed_to_landlord", SideB, matchRx(rxToLandlord)},
			{"deposit_unreturned", SideB, matchRx(rxDepositLost)},
			{"landlord_noun", SideA, matchRx(rxLandlordNoun)},
			{"tenant_noun", SideA, matchRx(rxTenantNoun)},
			{"lease_context", SideB, matchRx(rxLeaseNoun)},
		},
	},
	{
		axis: AxisDebt, roleA: RoleCreditor, roleB: RoleDebtor,
		rules: []roleRule{
			{"lent_money", SideA, matchRx(rxLent)},
			{"borrowed_money", SideB, matchRx(rxSelfBorrowed)},
			{"unpaid_debt", SideA, matchRx(rxUnpaidDebt)},
			{"cannot_repay", SideB, matchRx(rxCannotRepay)},
			{"debtor_noun", SideA, matchRx(rxDebtorNoun)},
			{"creditor_noun", SideB, matchRx(rxCreditorNoun)},
		},
	},
	{
		axis: AxisTrade, roleA: RoleBuyer, roleB: RoleSeller,
		rules: []roleRule{
			{"bought", SideA, matchRx(rxBought)},
			{"sold", SideB, matchRx(rxSold)},
			{"seller_noun", SideA, matchRx(rxSellerNoun)},
			{"buyer_noun", SideB, matchRx(rxBuyerNoun)},
		},
	},
	{
		axis: AxisTort, roleA: RoleVictim, roleB: RoleSuspect,
		rules: []roleRule{
			{"accused", SideB, matchRx(rxAccused)},
			{"victimized", SideA, matchRx(rxVictimized)},
			{"offender_noun", SideA, matchRx(rxOffenderNoun)},
		},
	},
	{
		axis: AxisEmployment, roleA: RoleEmployee, roleB: RoleEmployer,
		rules: []roleRule{
			{"employer_self", SideB, matchRx(rxEmployerSelf)},
			{"wage_unpaid", SideA, matchRx(rxWageUnpaid)},
			{"addressed_to_employer", SideA, matchRx(rxToEmployer)},
		},
	},
}

// ResolveRoles walks every axis in precedence order and keeps the first
// matching rule per axis
func ResolveRoles(text string) Roles {
	var roles Roles
	for _, def := range axisDefs {
		for _, rule := range def.rules {
			if !rule.match(text) {
				continue
			}
			a := RoleAssignment{Axis: def.axis, Rule: rule.name}
			if rule.side == SideA {
				a.Client, a.Counterparty = def.roleA, def.roleB
			} else {
				a.Client, a.Counterparty = def.roleB, def.roleA
			}
			roles.set(a)
			break
		}
	}
	return roles
}

// describeWho renders "의뢰인(임대인) ↔ 상대방(임차인)" with optional names
func describeWho(a RoleAssignment, sender, recipient string) string {
	client := partyLabel(RoleClient, sender, a.Client)
	counterparty := partyLabel(RoleCounterparty, recipient, a.Counterparty)
	return client + " ↔ " + counterparty
}

func partyLabel(base, name, role string) string {
	label := base
	if name = strings.TrimSpace(name); name != "" {
		label += " " + name
	}
	if role != "" {
		label += "(" + role + ")"
	}
	return label
}
