package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/nicholasjozef-cloud/Pacer/internal/llm"
	"github.com/nicholasjozef-cloud/Pacer/internal/models"
)

type stubGenerator struct {
	reply       string
	err         error
	lastSystem  string
	lastHistory []llm.ChatTurn
	lastMessage string
}

func (g *stubGenerator) GenerateReply(_ context.Context, systemPrompt string, history []llm.ChatTurn, message string) (string, error) {
	g.lastSystem = systemPrompt
	g.lastHistory = history
	g.lastMessage = message
	return g.reply, g.err
}

type stubMessageRepo struct {
	stored  []models.ChatMessage
	created []models.ChatMessage
	err     error
}

func (r *stubMessageRepo) Create(_ context.Context, userID uuid.UUID, role string, content string) (*models.ChatMessage, error) {
	if r.err != nil {
		return nil, r.err
	}
	message := models.ChatMessage{ID: int64(len(r.created) + 1), UserID: userID, Role: role, Content: content}
	r.created = append(r.created, message)
	return &message, nil
}

func (r *stubMessageRepo) ListByUserID(_ context.Context, _ uuid.UUID, _ int) ([]models.ChatMessage, error) {
	return r.stored, r.err
}

func newCoachFixture(reply string, genErr error) (*CoachService, *stubGenerator, *stubMessageRepo, *stubPlanRepo) {
	generator := &stubGenerator{reply: reply, err: genErr}
	messages := &stubMessageRepo{stored: []models.ChatMessage{
		{Role: "user", Content: "How was my week?"},
		{Role: "assistant", Content: "Solid consistency."},
	}}
	planRepo := &stubPlanRepo{plan: models.TrainingPlan{
		1: {{Day: "Saturday", Type: models.WorkoutLongRun, Planned: 12}},
	}}
	settings := models.DefaultUserSettings()
	service := NewCoachService(generator, messages, &stubSettingsGetter{settings: settings}, NewPlanService(planRepo))
	return service, generator, messages, planRepo
}

func TestCoachServiceChatAppliesPlanDirectives(t *testing.T) {
	reply := "Let's stretch that long run a bit.\n" +
		"UPDATE: Week 1, Saturday, Long Run, 14, 8:45\n" +
		"Ease into the first miles."
	service, generator, messages, planRepo := newCoachFixture(reply, nil)

	result, err := service.Chat(context.Background(), testUserID, "Can we bump Saturday?")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}

	if result.UpdatesApplied != 1 {
		t.Fatalf("expected 1 update applied, got %d", result.UpdatesApplied)
	}
	if strings.Contains(result.Reply, "UPDATE:") {
		t.Fatalf("directive leaked into reply: %q", result.Reply)
	}
	if !strings.Contains(result.Reply, "Training plan updated") {
		t.Fatalf("expected confirmation suffix, got %q", result.Reply)
	}
	if planRepo.savedPlan == nil || planRepo.savedPlan[1][0].Planned != 14 {
		t.Fatalf("expected plan persisted with 14 miles, got %+v", planRepo.savedPlan)
	}

	if len(messages.created) != 2 {
		t.Fatalf("expected both turns persisted, got %d", len(messages.created))
	}
	if messages.created[0].Role != "user" || messages.created[1].Role != "assistant" {
		t.Fatalf("unexpected roles: %+v", messages.created)
	}
	if messages.created[1].Content != result.Reply {
		t.Fatalf("stored assistant turn differs from reply")
	}

	if len(generator.lastHistory) != 2 {
		t.Fatalf("expected prior turns passed as history, got %d", len(generator.lastHistory))
	}
	if !strings.Contains(generator.lastSystem, "2:59:59") || !strings.Contains(generator.lastSystem, "Week 1:") {
		t.Fatalf("system prompt missing context:\n%s", generator.lastSystem)
	}
}

func TestCoachServiceChatDegradesWhenModelFails(t *testing.T) {
	service, _, messages, planRepo := newCoachFixture("", errors.New("quota exceeded"))

	result, err := service.Chat(context.Background(), testUserID, "Thoughts on today?")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if result.Reply != fallbackReply {
		t.Fatalf("expected fallback reply, got %q", result.Reply)
	}
	if result.UpdatesApplied != 0 {
		t.Fatalf("fallback must not touch the plan, applied %d", result.UpdatesApplied)
	}
	if planRepo.savedPlan != nil {
		t.Fatalf("fallback must not persist the plan")
	}
	if len(messages.created) != 2 {
		t.Fatalf("fallback turns still recorded, got %d", len(messages.created))
	}
}

func TestCoachServiceChatValidation(t *testing.T) {
	service, _, _, _ := newCoachFixture("hi", nil)
	if _, err := service.Chat(context.Background(), testUserID, "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank message, got %v", err)
	}

	unconfigured := NewCoachService(nil, &stubMessageRepo{}, &stubSettingsGetter{}, NewPlanService(&stubPlanRepo{}))
	if _, err := unconfigured.Chat(context.Background(), testUserID, "hello"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
