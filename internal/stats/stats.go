// Package stats gathers the progress report shown by the stats screen and
// the stats command.
package stats

import (
	"context"
	"fmt"

	"github.com/abhisek/mathtower/internal/llm"
	"github.com/abhisek/mathtower/internal/store"
)

// RecentLimit is how many recent answers a report includes.
const RecentLimit = 10

// Report is a snapshot of recorded play.
type Report struct {
	Modes          []store.ModeStats
	Recent         []store.AnswerEvent
	BestSpeedScore int
	LLM            []ModelUsage
}

// ModelUsage is store.LLMUsage with an estimated cost. Cost is negative
// when the model has no known price.
type ModelUsage struct {
	store.LLMUsage
	Cost float64
}

// Totals sums answers across modes.
func (r Report) Totals() store.ModeStats {
	var t store.ModeStats
	t.Mode = "all"
	for _, m := range r.Modes {
		t.Answered += m.Answered
		t.Correct += m.Correct
	}
	return t
}

// TotalCost sums the known LLM costs.
func (r Report) TotalCost() float64 {
	var sum float64
	for _, u := range r.LLM {
		if u.Cost > 0 {
			sum += u.Cost
		}
	}
	return sum
}

// Load queries repo for a report.
func Load(ctx context.Context, repo store.EventRepo) (Report, error) {
	var r Report
	var err error

	if r.Modes, err = repo.ModeAccuracy(ctx); err != nil {
		return Report{}, fmt.Errorf("mode accuracy: %w", err)
	}
	if r.Recent, err = repo.RecentAnswers(ctx, RecentLimit); err != nil {
		return Report{}, fmt.Errorf("recent answers: %w", err)
	}
	if r.BestSpeedScore, err = repo.BestSpeedScore(ctx); err != nil {
		return Report{}, fmt.Errorf("best speed score: %w", err)
	}

	usage, err := repo.LLMUsage(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("llm usage: %w", err)
	}
	for _, u := range usage {
		mu := ModelUsage{LLMUsage: u, Cost: -1}
		if c := llm.LookupCost(u.Model); c != nil {
			mu.Cost = c.Cost(u.InputTokens, u.OutputTokens)
		}
		r.LLM = append(r.LLM, mu)
	}
	return r, nil
}
