// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"math"
	"testing"

	"github.com/danielhkuo/stemkompas/models"
)

var testCategories = map[string]string{
	"1": "Zorg & Welzijn",
	"2": "Klimaat & Milieu",
	"3": "Economie & Financiën",
}

func TestBuildAnswersLinear(t *testing.T) {
	raw := []models.RawAnswer{
		{StatementID: "1", Answer: "agree"},
		{StatementID: "2", Answer: "disagree"},
		{StatementID: "3", Answer: "neutral"},
	}
	themePct := map[string]float64{
		"Zorg & Welzijn":       90, // weight 3
		"Klimaat & Milieu":     50, // weight 2
		"Economie & Financiën": 10, // weight 1
	}

	answers, dropped := BuildAnswers(raw, testCategories, themePct, LinearWeights{})

	if dropped != 0 {
		t.Errorf("Expected 0 dropped, got %d", dropped)
	}
	if len(answers) != 3 {
		t.Fatalf("Expected 3 answers, got %d", len(answers))
	}

	wantWeights := []float64{3, 2, 1}
	wantPos := []models.Pos{models.PosAgree, models.PosDisagree, models.PosNeutral}
	for i, a := range answers {
		if a.Weight != wantWeights[i] {
			t.Errorf("Answer %d: weight %v, want %v", i, a.Weight, wantWeights[i])
		}
		if a.Position != wantPos[i] {
			t.Errorf("Answer %d: position %d, want %d", i, a.Position, wantPos[i])
		}
	}

	if answers[0].Importance != 0.9 {
		t.Errorf("Expected importance 0.9, got %v", answers[0].Importance)
	}
}

func TestBuildAnswersDropsMalformed(t *testing.T) {
	raw := []models.RawAnswer{
		{StatementID: "1", Answer: "agree"},
		{StatementID: "1", Answer: "maybe"},        // unknown answer string
		{StatementID: "2", Answer: "agree", Weight: 5}, // weight outside 1-3
		{StatementID: "404", Answer: "agree"},      // unknown statement
	}

	answers, dropped := BuildAnswers(raw, testCategories, nil, LinearWeights{})

	if dropped != 3 {
		t.Errorf("Expected 3 dropped, got %d", dropped)
	}
	if len(answers) != 1 {
		t.Fatalf("Expected 1 valid answer, got %d", len(answers))
	}
	if answers[0].StatementID != "1" {
		t.Errorf("Expected statement 1 to survive, got %s", answers[0].StatementID)
	}
}

func TestBuildAnswersDuplicateLastWins(t *testing.T) {
	raw := []models.RawAnswer{
		{StatementID: "1", Answer: "agree"},
		{StatementID: "2", Answer: "agree"},
		{StatementID: "1", Answer: "disagree"},
	}

	answers, dropped := BuildAnswers(raw, testCategories, nil, LinearWeights{})

	if dropped != 1 {
		t.Errorf("Expected 1 dropped (shadowed duplicate), got %d", dropped)
	}
	if len(answers) != 2 {
		t.Fatalf("Expected 2 answers, got %d", len(answers))
	}
	if answers[0].Position != models.PosDisagree {
		t.Errorf("Expected the later duplicate to win, got position %d", answers[0].Position)
	}
}

func TestBuildAnswersExplicitWeight(t *testing.T) {
	raw := []models.RawAnswer{
		{StatementID: "1", Answer: "agree", Weight: 3},
	}
	// Theme says weight 1, but the explicit weight wins
	themePct := map[string]float64{"Zorg & Welzijn": 10}

	answers, dropped := BuildAnswers(raw, testCategories, themePct, LinearWeights{})
	if dropped != 0 || len(answers) != 1 {
		t.Fatalf("Expected 1 answer and 0 dropped, got %d/%d", len(answers), dropped)
	}
	if answers[0].Weight != 3 {
		t.Errorf("Expected explicit weight 3, got %v", answers[0].Weight)
	}
}

func TestBuildAnswersSigmoidNormalized(t *testing.T) {
	raw := []models.RawAnswer{
		{StatementID: "1", Answer: "agree"},
		{StatementID: "2", Answer: "agree"},
		{StatementID: "3", Answer: "agree"},
	}
	themePct := map[string]float64{
		"Zorg & Welzijn":       100,
		"Klimaat & Milieu":     50,
		"Economie & Financiën": 0,
	}

	answers, dropped := BuildAnswers(raw, testCategories, themePct, SigmoidWeights{})
	if dropped != 0 {
		t.Errorf("Expected 0 dropped, got %d", dropped)
	}

	var sum float64
	for _, a := range answers {
		sum += a.Weight
	}
	mean := sum / float64(len(answers))
	if math.Abs(mean-1.0) > 1e-9 {
		t.Errorf("Expected normalized mean weight 1.0, got %v", mean)
	}

	// High-importance statements still weigh more after normalization
	if answers[0].Weight <= answers[2].Weight {
		t.Errorf("Expected weight order preserved: %v <= %v", answers[0].Weight, answers[2].Weight)
	}
}

func TestBuildAnswersMissingThemeDefaults(t *testing.T) {
	raw := []models.RawAnswer{{StatementID: "1", Answer: "agree"}}

	answers, _ := BuildAnswers(raw, testCategories, map[string]float64{}, LinearWeights{})
	if len(answers) != 1 {
		t.Fatal("Expected answer to survive without theme weights")
	}
	if answers[0].Importance != 0.5 {
		t.Errorf("Expected default importance 0.5, got %v", answers[0].Importance)
	}
	if answers[0].Weight != 2 {
		t.Errorf("Expected default linear weight 2, got %v", answers[0].Weight)
	}
}
