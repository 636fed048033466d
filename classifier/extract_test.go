package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawpick-backend/models"
)

func TestFindAmounts(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		won  int64
	}{
		{"compound eok cheon", "1억 2천만 원", "1억 2천만원", 120_000_000},
		{"compound without spaces", "1억2천", "1억 2천만원", 120_000_000},
		{"eok and man", "2억 5000만원", "2억 5000만원", 250_000_000},
		{"cheon man", "3천만원", "3천만원", 30_000_000},
		{"baek man", "5백만 원", "5백만원", 5_000_000},
		{"grouped man", "1,500만원", "1,500만원", 15_000_000},
		{"plain man", "200만 원", "200만원", 2_000_000},
		{"bare eok", "2억", "2억원", 200_000_000},
		{"bare won", "50,000원", "50,000원", 50_000},
		{"cheon baek man", "3천5백만원", "3천5백만원", 35_000_000},
		{"cheon with digits", "3천500만원", "3천500만원", 35_000_000},
		{"decimal eok", "1.5억", "1.5억원", 150_000_000},
		{"eok cheon baek man", "1억 2천 5백만원", "1억 2천5백만원", 125_000_000},
		{"eok with cheon baek", "2억3천5백만 원", "2억 3천5백만원", 235_000_000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amounts := FindAmounts(tt.text)
			require.Len(t, amounts, 1)
			assert.Equal(t, tt.want, amounts[0].Text)
			assert.Equal(t, tt.won, amounts[0].Won)
		})
	}
}

func TestFindAmountsIsStable(t *testing.T) {
	first := FindAmounts("보증금 1억 2천만 원을 못 받았어요")
	second := FindAmounts("보증금 1억 2천만 원을 못 받았어요")
	assert.Equal(t, first, second)
	require.Len(t, first, 1)
	assert.Equal(t, "보증금", first[0].Label)
}

func TestFindAmountsKeepsTextOrder(t *testing.T) {
	amounts := FindAmounts("원상복구비 200만원이고 보증금은 1억원이에요")
	require.Len(t, amounts, 2)
	assert.Equal(t, "200만원", amounts[0].Text)
	assert.Equal(t, "원상복구비", amounts[0].Label)
	assert.Equal(t, "1억원", amounts[1].Text)
	assert.Equal(t, "보증금", amounts[1].Label)
}

func TestExtractMoneyCompoundAmounts(t *testing.T) {
	tests := []struct {
		text    string
		primary string
		won     int64
	}{
		{"보증금 3천5백만원을 아직 못 받았어요", "3천5백만원", 35_000_000},
		{"보증금 1.5억을 돌려받지 못했어요", "1.5억원", 150_000_000},
		{"전세금 1억 2천 5백만원을 안 돌려줘요", "1억 2천5백만원", 125_000_000},
		{"보증금 3천500만원이 묶여 있어요", "3천500만원", 35_000_000},
	}
	for _, tt := range tests {
		t.Run(tt.primary, func(t *testing.T) {
			f := ExtractMoney(tt.text)
			require.Len(t, f.Amounts, 1)
			require.NotNil(t, f.Primary)
			assert.Equal(t, tt.primary, f.Primary.Text)
			assert.Equal(t, tt.won, f.Primary.Won)
		})
	}
}

func TestArrearsMonths(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"count before arrears verb", "월세도 3달 밀렸고요", 3},
		{"count with suffix", "월세 3달치가 밀렸어요", 3},
		{"ongoing count", "월세를 3개월째 안 내고 있어요", 3},
		{"rent noun before count", "월세 4개월치를 아직 못 받았어요", 4},
		{"duration after rent noun", "월세를 4개월 동안 냈는데 이번 달은 못 냈어요", 0},
		{"time reference is not a count", "세입자가 6개월 전에 들어왔는데 월세 50만원을 두 번 밀렸어요", 0},
		{"past arrears is a time reference", "월세가 2개월 전에 밀렸어요", 0},
		{"unrelated duration", "80만원씩 3개월 동안 빌려줬어요", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractMoney(tt.text).Months)
		})
	}
}

func TestMoneyDescribeDoesNotMultiplyTimeReferences(t *testing.T) {
	f := ExtractMoney("집주인입니다. 세입자가 6개월 전에 들어왔는데 월세 50만원을 두 번 밀렸어요")
	assert.Zero(t, f.PeriodTotal)
	got := f.Describe()
	assert.Equal(t, "연체 차임(월 50만원, 개월 수 미상)", got)
	assert.NotContains(t, got, "300만")
}

func TestMoneyDescribe(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			"one-time fee and unpriced arrears",
			"집주인입니다. 세입자가 원상복구비 200만 원 안 주고 도망갔어요. 월세도 3달 밀렸고요.",
			"원상복구비 200만원, 연체 차임 3개월분(금액 미상)",
		},
		{
			"flagged monthly rent with months",
			"월세 80만원을 3개월 밀렸어요",
			"연체 차임 3개월분(월 80만원, 기간 합계 240만원)",
		},
		{"unflagged amount is never multiplied", "80만원씩 3개월 동안 빌려줬어요", "80만원"},
		{"labelled deposit", "보증금 1억 2천만 원을 못 받았어요", "보증금 1억 2천만원"},
		{"money context without figure", "돈을 빌려줬는데 안 갚아요", models.MoneyUnknown},
		{"no money at all", "옆집 개가 너무 짖어요", models.MoneyNotApplicable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractMoney(tt.text).Describe()
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "×")
		})
	}
}

func TestMoneyDescribeNeverMultipliesFees(t *testing.T) {
	got := ExtractMoney("집주인입니다. 세입자가 원상복구비 200만 원 안 주고 도망갔어요. 월세도 3달 밀렸고요.").Describe()
	assert.NotContains(t, got, "600만")
}

func TestFormatWon(t *testing.T) {
	assert.Equal(t, "240만원", FormatWon(2_400_000))
	assert.Equal(t, "1억 5000만원", FormatWon(150_000_000))
	assert.Equal(t, "1억원", FormatWon(100_000_000))
	assert.Equal(t, "1만 2500원", FormatWon(12_500))
	assert.Equal(t, "0원", FormatWon(0))
}

func TestExtractWhen(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"2024년 3월 5일에 계약했어요", "2024년 3월 5일"},
		{"2023.11.20 이체했습니다", "2023.11.20"},
		{"3개월 전에 빌려줬어요", "3개월 전"},
		{"어제 맞았어요", "어제"},
		{"월세가 3달 밀렸어요", "최근 3개월"},
		{"언제인지 기억이 안 나요", models.WhenUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractWhen(tt.text, ExtractMoney(tt.text)), tt.text)
	}
}

func TestEvidenceStatus(t *testing.T) {
	f := Extract("카톡이랑 녹음 파일이 있어요")
	assert.Equal(t, []string{"카톡", "녹음"}, f.Evidence)
	assert.Equal(t, "카톡·녹음 보유", f.EvidenceStatus())

	assert.Equal(t, models.EvidenceNeeded, Extract("아무 자료도 없어요").EvidenceStatus())
}
