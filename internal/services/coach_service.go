package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/nicholasjozef-cloud/Pacer/internal/llm"
	"github.com/nicholasjozef-cloud/Pacer/internal/models"
	"github.com/nicholasjozef-cloud/Pacer/internal/training"
)

const chatHistoryLimit = 20

const fallbackReply = "I couldn't reach the coaching model just now. " +
	"Stick to the plan for today, keep easy days easy, and try me again in a bit."

type messageStore interface {
	Create(ctx context.Context, userID uuid.UUID, role string, content string) (*models.ChatMessage, error)
	ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.ChatMessage, error)
}

type planUpdater interface {
	planGetter
	ApplyUpdates(ctx context.Context, userID uuid.UUID, updates []training.PlanUpdate) (int, error)
}

type CoachService struct {
	generator llm.ChatGenerator
	messages  messageStore
	settings  settingsGetter
	plans     planUpdater
}

func NewCoachService(generator llm.ChatGenerator, messages messageStore, settings settingsGetter, plans planUpdater) *CoachService {
	return &CoachService{
		generator: generator,
		messages:  messages,
		settings:  settings,
		plans:     plans,
	}
}

// ChatResult is the cleaned reply plus how many plan directives landed.
type ChatResult struct {
	Reply          string `json:"reply"`
	UpdatesApplied int    `json:"updatesApplied"`
}

// Chat runs one coaching turn: build the context prompt, call the model, land
// any plan directives the reply carries, and persist both turns. Model
// failures degrade to a canned reply rather than an error so the conversation
// survives outages.
func (s *CoachService) Chat(ctx context.Context, userID uuid.UUID, message string) (*ChatResult, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrInvalidInput
	}
	if s.generator == nil {
		return nil, ErrNotConfigured
	}

	settings, err := s.settings.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	plan, err := s.plans.GetPlan(ctx, userID)
	if err != nil {
		return nil, err
	}

	history, err := s.history(ctx, userID)
	if err != nil {
		return nil, err
	}

	raw, err := s.generator.GenerateReply(ctx, buildSystemPrompt(settings, plan), history, message)
	if err != nil {
		log.Printf("coach generate failed for user %s: %v", userID, err)
		raw = fallbackReply
	}

	applied, err := s.plans.ApplyUpdates(ctx, userID, training.ParsePlanUpdates(raw))
	if err != nil {
		return nil, err
	}

	reply := training.StripPlanUpdates(raw)
	if applied > 0 {
		reply = strings.TrimSpace(reply + "\n\n" + training.UpdateConfirmation)
	}

	if _, err := s.messages.Create(ctx, userID, "user", message); err != nil {
		return nil, err
	}
	if _, err := s.messages.Create(ctx, userID, "assistant", reply); err != nil {
		return nil, err
	}

	return &ChatResult{Reply: reply, UpdatesApplied: applied}, nil
}

// History returns the recent conversation in chronological order.
func (s *CoachService) History(ctx context.Context, userID uuid.UUID) ([]models.ChatMessage, error) {
	return s.messages.ListByUserID(ctx, userID, chatHistoryLimit)
}

func (s *CoachService) history(ctx context.Context, userID uuid.UUID) ([]llm.ChatTurn, error) {
	messages, err := s.messages.ListByUserID(ctx, userID, chatHistoryLimit)
	if err != nil {
		return nil, err
	}
	turns := make([]llm.ChatTurn, 0, len(messages))
	for _, m := range messages {
		turns = append(turns, llm.ChatTurn{Role: m.Role, Content: m.Content})
	}
	return turns, nil
}

// buildSystemPrompt embeds the runner's goal and current plan so the model can
// answer concretely and emit well-formed update directives.
func buildSystemPrompt(settings models.UserSettings, plan models.TrainingPlan) string {
	var b strings.Builder
	b.WriteString("You are a marathon coach for a runner targeting a ")
	b.WriteString(settings.TargetTime)
	b.WriteString(" finish (")
	if pace, err := training.TargetPace(settings.TargetTime); err == nil {
		b.WriteString(pace)
		b.WriteString("/mile goal pace")
	} else {
		b.WriteString("goal pace unknown")
	}
	fmt.Fprintf(&b, "). Body weight %d lb. Training week %d of %d.\n",
		settings.BodyWeight, settings.CurrentWeek, settings.TotalTrainingWeeks)
	if settings.RaceDate != nil {
		fmt.Fprintf(&b, "Race date: %s.\n", *settings.RaceDate)
	}

	b.WriteString("\nCurrent training plan:\n")
	weeks := make([]int, 0, len(plan))
	for week := range plan {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)
	for _, week := range weeks {
		fmt.Fprintf(&b, "Week %d:\n", week)
		for _, w := range plan[week] {
			fmt.Fprintf(&b, "  %s: %s, %.1f miles planned", w.Day, w.Type, w.Planned)
			if w.Actual != nil {
				fmt.Fprintf(&b, ", %.1f done", *w.Actual)
			}
			if w.Pace != nil {
				fmt.Fprintf(&b, " @ %s", *w.Pace)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\nTo change the plan, emit one line per change, exactly:\n")
	b.WriteString("UPDATE: Week <n>, <Day>, <Type>, <miles>, <pace>\n")
	b.WriteString("Valid types: " + strings.Join(models.WorkoutTypes, ", ") + ".\n")
	b.WriteString("Keep replies short and practical. Only emit UPDATE lines when the runner asks for a change.")
	return b.String()
}
