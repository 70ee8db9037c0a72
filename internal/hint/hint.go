// Package hint produces short, child-friendly nudges toward the correct
// option of a challenge without giving the answer away.
package hint

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/mathtower/internal/challenge"
	"github.com/abhisek/mathtower/internal/equation"
	"github.com/abhisek/mathtower/internal/llm"
)

// Purpose labels hint requests in the LLM event log.
const Purpose = "hint"

const systemPrompt = `You are a friendly math coach in a tower-climbing game for children aged 6-10.
Give ONE short sentence (at most 20 words) that helps the player spot which equation equals the target.
Never state which option is correct and never write the correct equation itself.
Equations are read left to right; x and / combine with the number just before them, so 3+2x2 is 7.`

var hintSchema = &llm.Schema{
	Name:        "equation-hint",
	Description: "A one-sentence hint for a multiple-choice equation challenge",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hint": map[string]any{
				"type":        "string",
				"description": "One encouraging sentence that does not reveal the answer",
				"minLength":   1,
				"maxLength":   200,
			},
		},
		"required":             []any{"hint"},
		"additionalProperties": false,
	},
}

// Service produces hints. With a nil provider every hint is the
// deterministic fallback.
type Service struct {
	provider llm.Provider
}

// New creates a Service.
func New(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

// Hint returns a hint for ch. A non-nil error means the LLM call failed
// or gave an unusable hint; the returned text is then the fallback, so a
// hint is always available.
func (s *Service) Hint(ctx context.Context, ch challenge.Challenge) (string, error) {
	if s == nil || s.provider == nil {
		return Fallback(ch), nil
	}

	req := llm.UserPrompt(systemPrompt, prompt(ch))
	req.Schema = hintSchema
	req.MaxTokens = 200
	req.Temperature = 0.7

	resp, err := s.provider.Generate(llm.WithPurpose(ctx, Purpose), req)
	if err != nil {
		return Fallback(ch), fmt.Errorf("generate hint: %w", err)
	}

	var out struct {
		Hint string `json:"hint"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Fallback(ch), fmt.Errorf("decode hint: %w", err)
	}

	text := strings.TrimSpace(out.Hint)
	if text == "" || revealsAnswer(text, ch) {
		return Fallback(ch), fmt.Errorf("unusable hint %q", text)
	}
	return text, nil
}

func prompt(ch challenge.Challenge) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Target: %d\n", ch.Target)
	fmt.Fprintf(&b, "Mode: %s\n", ch.Mode)
	b.WriteString("Options:\n")
	for i, o := range ch.Options {
		fmt.Fprintf(&b, "%d. %s\n", i+1, equation.Display(o))
	}
	return b.String()
}

// revealsAnswer reports whether text contains the correct equation in
// either canonical or display form.
func revealsAnswer(text string, ch challenge.Challenge) bool {
	if ch.CorrectEquation == "" {
		return false
	}
	compact := strings.ReplaceAll(text, " ", "")
	return strings.Contains(compact, ch.CorrectEquation) ||
		strings.Contains(compact, strings.ReplaceAll(equation.Display(ch.CorrectEquation), " ", ""))
}

// Fallback is the deterministic hint for ch's mode and target.
func Fallback(ch challenge.Challenge) string {
	t := ch.Target
	switch ch.Mode {
	case challenge.Addition:
		return fmt.Sprintf("Which two numbers join together to make %d?", t)
	case challenge.Subtraction:
		return fmt.Sprintf("Start with the bigger number and take away. Which one leaves exactly %d?", t)
	case challenge.Multiplication:
		if t == 0 {
			return "Anything times 0 is 0."
		}
		return fmt.Sprintf("Think of your times tables. Which pair makes %d?", t)
	case challenge.Division:
		return fmt.Sprintf("Share the first number into equal groups. Which one gives %d in each group?", t)
	default:
		return fmt.Sprintf("Work each option from left to right. Only one lands exactly on %d.", t)
	}
}
