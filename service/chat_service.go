package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lawpick-backend/llm"
	"lawpick-backend/logger"
	"lawpick-backend/metrics"
	"lawpick-backend/models"
)

// ChatFallbackReply is sent whenever the upstream cannot answer
const ChatFallbackReply = "AI 상담 연결이 원활하지 않습니다. 사건 진단 기능으로 상황을 먼저 분석해 보세요. (이 메시지는 시뮬레이션입니다.)"

// maxChatHistory bounds how many trailing messages are forwarded upstream
const maxChatHistory = 20

var (
	ErrEmptyConversation = errors.New("conversation has no user message")
	ErrInvalidChatRole   = errors.New("invalid chat role")
)

// ChatService answers free-form legal questions through the generative
// upstream
type ChatService struct {
	pipeline
}

// ChatServiceOption is a functional option for ChatService
type ChatServiceOption func(*ChatService)

// ChatWithGenerator sets the generative upstream
func ChatWithGenerator(g llm.Generator) ChatServiceOption {
	return func(s *ChatService) {
		s.generator = g
	}
}

// ChatWithTimeout bounds each upstream call
func ChatWithTimeout(d time.Duration) ChatServiceOption {
	return func(s *ChatService) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// ChatWithLogger sets the logger
func ChatWithLogger(l logger.Logger) ChatServiceOption {
	return func(s *ChatService) {
		s.logger = l.Named("chat")
	}
}

// ChatWithMetrics sets the metrics collectors
func ChatWithMetrics(m *metrics.Metrics) ChatServiceOption {
	return func(s *ChatService) {
		s.metrics = m
	}
}

// NewChatService creates a new chat service
func NewChatService(opts ...ChatServiceOption) *ChatService {
	s := &ChatService{pipeline: newPipeline()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ChatResult is the reply and where it came from
type ChatResult struct {
	Reply  models.ChatReply
	Source string
}

// Reply answers the last user message. Only a malformed conversation is an
// error; upstream failures yield ChatFallbackReply.
func (s *ChatService) Reply(ctx context.Context, messages []models.ChatMessage) (*ChatResult, error) {
	conv, err := cleanConversation(messages)
	if err != nil {
		return nil, err
	}

	raw, err := s.generate(ctx, opChat, llm.ChatRequest(conv))
	if err == nil {
		if reply := strings.TrimSpace(raw); reply != "" {
			return &ChatResult{Reply: models.ChatReply{Reply: reply}, Source: metrics.SourceAI}, nil
		}
		err = fmt.Errorf("%w: empty reply", llm.ErrUnparsableOutput)
	}

	s.fallback(opChat, err, logger.Int("messages", len(conv)))
	return &ChatResult{Reply: models.ChatReply{Reply: ChatFallbackReply}, Source: metrics.SourceRules}, nil
}

// cleanConversation trims every turn, drops blank ones, keeps the most recent
// maxChatHistory and requires the conversation to end with the user
func cleanConversation(messages []models.ChatMessage) ([]models.ChatMessage, error) {
	conv := make([]models.ChatMessage, 0, len(messages))
	for _, m := range messages {
		if !m.Role.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidChatRole, m.Role)
		}
		content := strings.TrimSpace(m.Content)
		if content == "" {
			continue
		}
		conv = append(conv, models.ChatMessage{Role: m.Role, Content: content})
	}

	if len(conv) == 0 || conv[len(conv)-1].Role != models.ChatRoleUser {
		return nil, ErrEmptyConversation
	}
	if len(conv) > maxChatHistory {
		conv = conv[len(conv)-maxChatHistory:]
	}
	return conv, nil
}
