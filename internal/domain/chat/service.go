package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"ask-astro/internal/domain/profiles"
	"ask-astro/internal/platform/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

const (
	DefaultSignupPromptAfter = 3
	defaultHistoryLimit      = 50
	providerHistory          = 20
	maxMessageRunes          = 1000
)

// ProfileReader es lo que chat necesita de profiles.
type ProfileReader interface {
	Get(ctx context.Context, userID string) (profiles.Profile, error)
}

type Options struct {
	// Cantidad de preguntas de un guest antes de sugerir registro.
	SignupPromptAfter int
	Logger            logger.Logger
}

type Service struct {
	repo     Repository
	quota    QuotaStore
	provider ResponseProvider
	profiles ProfileReader

	signupAfter int
	log         logger.Logger
	now         func() time.Time
}

func NewService(repo Repository, quota QuotaStore, provider ResponseProvider, profiles ProfileReader, opts Options) *Service {
	after := opts.SignupPromptAfter
	if after <= 0 {
		after = DefaultSignupPromptAfter
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:        repo,
		quota:       quota,
		provider:    provider,
		profiles:    profiles,
		signupAfter: after,
		log:         log,
		now:         time.Now,
	}
}

type SendInput struct {
	UserID string
	Guest  bool
	Text   string
}

type SendResult struct {
	Question Message
	Reply    Message

	QuestionCount   int
	PromptSignup    bool
	PromptBirthInfo bool
}

// Send guarda la pregunta, pide la respuesta al provider y la guarda.
// Si el provider falla, la pregunta queda en el historial y se devuelve ErrProviderUnavailable.
func (s *Service) Send(ctx context.Context, in SendInput) (SendResult, error) {
	text := strings.TrimSpace(in.Text)
	if strings.TrimSpace(in.UserID) == "" || text == "" {
		return SendResult{}, ErrInvalidInput
	}
	if utf8.RuneCountInString(text) > maxMessageRunes {
		return SendResult{}, fmt.Errorf("%w: message longer than %d characters", ErrInvalidInput, maxMessageRunes)
	}

	history, err := s.repo.ListByUser(ctx, in.UserID, providerHistory)
	if err != nil {
		return SendResult{}, err
	}

	question := s.newMessage(in.UserID, RoleUser, text)
	if err := s.repo.Append(ctx, question); err != nil {
		return SendResult{}, err
	}

	count, err := s.quota.Incr(ctx, in.UserID)
	if err != nil {
		return SendResult{}, fmt.Errorf("quota incr: %w", err)
	}

	prompt := Prompt{UserID: in.UserID, Text: text, History: history}
	hasProfile := false
	if p, err := s.profiles.Get(ctx, in.UserID); err == nil {
		hasProfile = true
		prompt.FirstName = p.FirstName
		prompt.Sign = string(p.Reading().Sign)
	} else if !errors.Is(err, profiles.ErrNotFound) {
		return SendResult{}, err
	}

	replyText, err := s.provider.Reply(ctx, prompt)
	if err != nil {
		s.log.Warn("chat provider failed", map[string]any{"user_id": in.UserID, "err": err})
		return SendResult{}, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	reply := s.newMessage(in.UserID, RoleAssistant, replyText)
	if err := s.repo.Append(ctx, reply); err != nil {
		return SendResult{}, err
	}

	return SendResult{
		Question:        question,
		Reply:           reply,
		QuestionCount:   count,
		PromptSignup:    in.Guest && count >= s.signupAfter,
		PromptBirthInfo: !hasProfile,
	}, nil
}

func (s *Service) History(ctx context.Context, userID string, limit int) ([]Message, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	if limit <= 0 || limit > 200 {
		limit = defaultHistoryLimit
	}
	return s.repo.ListByUser(ctx, userID, limit)
}

// Clear borra el historial. El contador de preguntas no se toca.
func (s *Service) Clear(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrInvalidInput
	}
	return s.repo.DeleteByUser(ctx, userID)
}

// ResetQuestionCount se llama al registrarse o al cerrar el aviso de registro.
func (s *Service) ResetQuestionCount(ctx context.Context, userID string) error {
	return s.quota.Reset(ctx, userID)
}

func (s *Service) QuestionCount(ctx context.Context, userID string) (int, error) {
	return s.quota.Get(ctx, userID)
}

func (s *Service) newMessage(userID string, role Role, content string) Message {
	return Message{
		ID:        uuid.NewString(),
		UserID:    userID,
		Role:      role,
		Content:   content,
		CreatedAt: s.now(),
	}
}
