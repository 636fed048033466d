package llm

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"

	"lawpick-backend/models"
)

func TestNewGeminiGeneratorRequiresKey(t *testing.T) {
	_, err := NewGeminiGenerator(context.Background(), "", "gemini-1.5-flash")
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestResponseText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: nil},
			{Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"score":`), genai.Text(` 10}`)}}},
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("ignored")}}},
		},
	}
	assert.Equal(t, `{"score": 10}`, responseText(resp))
	assert.Equal(t, "", responseText(nil))
	assert.Equal(t, "", responseText(&genai.GenerateContentResponse{}))
}

func TestPrompts(t *testing.T) {
	n := models.CaseNarrative{Content: "친구에게 500만원을 빌려줬어요", SenderName: "홍길동"}

	a := AnalysisRequest(n)
	assert.True(t, a.JSON)
	assert.Contains(t, a.UserPrompt, n.Content)
	assert.Contains(t, a.UserPrompt, "의뢰인: 홍길동")
	assert.Contains(t, a.UserPrompt, "상대방: 미상")

	l := LetterRequest(n)
	assert.Contains(t, l.SystemPrompt, "내 용 증 명")
	assert.Contains(t, l.UserPrompt, "발신인: 홍길동")

	d := DiagnosisRequest(models.DiagnosisAnswers{"전세", "프리랜서"})
	assert.Contains(t, d.UserPrompt, "1. 거주 형태: 전세")
	assert.Contains(t, d.UserPrompt, "4. 운전 빈도: 미상")
}

func TestChatRequest(t *testing.T) {
	req := ChatRequest([]models.ChatMessage{
		{Role: models.ChatRoleUser, Content: "전세 계약 전에 뭘 확인해야 하나요?"},
		{Role: models.ChatRoleAssistant, Content: "등기부등본의 근저당을 먼저 확인하세요."},
		{Role: models.ChatRoleUser, Content: "근저당이 있으면 계약하면 안 되나요?"},
	})

	assert.False(t, req.JSON)
	assert.Contains(t, req.SystemPrompt, "로픽 AI")
	assert.Equal(t, "근저당이 있으면 계약하면 안 되나요?", req.UserPrompt)
	assert.Equal(t, []Turn{
		{Role: TurnUser, Text: "전세 계약 전에 뭘 확인해야 하나요?"},
		{Role: TurnModel, Text: "등기부등본의 근저당을 먼저 확인하세요."},
	}, req.History)

	single := ChatRequest([]models.ChatMessage{{Role: models.ChatRoleUser, Content: "안녕하세요"}})
	assert.Equal(t, "안녕하세요", single.UserPrompt)
	assert.Empty(t, single.History)
}

func TestHistoryContents(t *testing.T) {
	contents := historyContents([]Turn{{Role: TurnUser, Text: "질문"}, {Role: TurnModel, Text: "답변"}})
	assert.Len(t, contents, 2)
	assert.Equal(t, "model", contents[1].Role)
	assert.Equal(t, []genai.Part{genai.Text("답변")}, contents[1].Parts)
}
