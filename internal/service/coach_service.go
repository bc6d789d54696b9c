package service

import (
	"context"
	"couple_coach_backend/internal/insight"
)

// CoachService glues the context aggregator to the AI backend: every chat turn
// gets the freshly rendered relationship context as system knowledge.
type CoachService struct {
	ContextService *CoachContextService
	AI             *AIService
}

func NewCoachService(contextService *CoachContextService, ai *AIService) *CoachService {
	return &CoachService{
		ContextService: contextService,
		AI:             ai,
	}
}

// Context builds and returns the raw coach context, mostly for debugging and
// the client's insight views.
func (s *CoachService) Context(ctx context.Context, userID uint) (*insight.CoachContext, error) {
	return s.ContextService.BuildContext(ctx, userID)
}

// Prompt renders the deterministic context block for a user.
func (s *CoachService) Prompt(ctx context.Context, userID uint) (string, error) {
	coachCtx, err := s.ContextService.BuildContext(ctx, userID)
	if err != nil {
		return "", err
	}
	return insight.RenderPrompt(coachCtx), nil
}

func (s *CoachService) Chat(ctx context.Context, userID uint, message string, history []AIChatMessage) (string, error) {
	prompt, err := s.Prompt(ctx, userID)
	if err != nil {
		return "", err
	}
	return s.AI.Chat(message, prompt, history)
}

func (s *CoachService) ChatStream(ctx context.Context, userID uint, message string, history []AIChatMessage) (<-chan string, <-chan error, error) {
	prompt, err := s.Prompt(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	out, errChan := s.AI.ChatStream(message, prompt, history)
	return out, errChan, nil
}
