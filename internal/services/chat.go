package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/studyhub/internal/ai"
	"github.com/dmitrijs2005/studyhub/internal/common"
	"github.com/dmitrijs2005/studyhub/internal/logging"
	"github.com/dmitrijs2005/studyhub/internal/models"
)

const (
	// ChatWindow is the number of stored turns sent as context.
	ChatWindow = 10

	// ChatFallbackReply is shown in place of an answer when a chat call fails.
	// It is not stored.
	ChatFallbackReply = "Sorry, I encountered an error. Please check your API key or try again."

	chatSystemPrompt = "You are a helpful AI study assistant for college students. Help them understand complex topics, provide study tips, and explain concepts clearly. Keep responses concise but informative."
)

type ChatStore interface {
	ChatHistory(ctx context.Context) ([]models.ChatMessage, error)
	SetChatHistory(ctx context.Context, msgs []models.ChatMessage) error
}

// Completer is the chat-completion call used by chat and generation.
type Completer interface {
	Complete(ctx context.Context, req ai.Request) (string, error)
}

type ChatService interface {
	Append(ctx context.Context, role models.Role, content string) (models.ChatMessage, error)
	History(ctx context.Context) ([]models.ChatMessage, error)
	// Window returns the last ChatWindow stored turns.
	Window(ctx context.Context) ([]models.ChatMessage, error)
	// Send stores the user message, asks the assistant and stores its reply.
	// On failure the user message stays stored and no reply is added.
	Send(ctx context.Context, message string) (models.ChatMessage, error)
}

type chatService struct {
	store ChatStore
	keys  ai.KeySource
	ai    Completer
	log   logging.Logger
}

func NewChatService(store ChatStore, keys ai.KeySource, completer Completer, log logging.Logger) ChatService {
	if log == nil {
		log = logging.NopLogger{}
	}
	return &chatService{store: store, keys: keys, ai: completer, log: log}
}

func (s *chatService) Append(ctx context.Context, role models.Role, content string) (models.ChatMessage, error) {
	if strings.TrimSpace(content) == "" {
		return models.ChatMessage{}, common.NewValidationError("message", "")
	}
	if role != models.RoleUser && role != models.RoleAssistant {
		return models.ChatMessage{}, common.NewValidationError("role", "must be user or assistant")
	}

	msgs, err := s.store.ChatHistory(ctx)
	if err != nil {
		return models.ChatMessage{}, err
	}

	m := models.ChatMessage{ID: newID(), Role: role, Content: content, Timestamp: now()}
	if err := s.store.SetChatHistory(ctx, append(msgs, m)); err != nil {
		return models.ChatMessage{}, err
	}
	return m, nil
}

func (s *chatService) History(ctx context.Context) ([]models.ChatMessage, error) {
	return s.store.ChatHistory(ctx)
}

func (s *chatService) Window(ctx context.Context) ([]models.ChatMessage, error) {
	msgs, err := s.store.ChatHistory(ctx)
	if err != nil {
		return nil, err
	}
	if len(msgs) > ChatWindow {
		msgs = msgs[len(msgs)-ChatWindow:]
	}
	return msgs, nil
}

func (s *chatService) Send(ctx context.Context, message string) (models.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return models.ChatMessage{}, common.NewValidationError("message", "")
	}

	// Nothing is stored without a key.
	if _, err := s.keys.APIKey(ctx, common.ProviderDeepSeek); err != nil {
		return models.ChatMessage{}, err
	}

	window, err := s.Window(ctx)
	if err != nil {
		return models.ChatMessage{}, err
	}

	if _, err := s.Append(ctx, models.RoleUser, message); err != nil {
		return models.ChatMessage{}, err
	}

	reply, err := s.ai.Complete(ctx, ai.Request{
		System:      chatSystemPrompt,
		History:     window,
		User:        message,
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		s.log.Error(ctx, "chat reply failed", "error", err)
		return models.ChatMessage{}, err
	}
	if strings.TrimSpace(reply) == "" {
		s.log.Error(ctx, "chat reply is empty")
		return models.ChatMessage{}, &common.RemoteError{Provider: common.ProviderDeepSeek, Err: errors.New("empty reply")}
	}

	return s.Append(ctx, models.RoleAssistant, reply)
}
