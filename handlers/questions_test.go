// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/stemkompas/models"
	"github.com/danielhkuo/stemkompas/testutil"
)

func TestListQuestions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewQuestionsHandler(db)

	// Inserted out of order; the endpoint must sort by order_index
	testutil.CreateTestQuestion(t, db, "Second statement", "zorg", 2)
	testutil.CreateTestQuestion(t, db, "First statement", "klimaat", 1)
	inactiveID := testutil.CreateTestQuestion(t, db, "Retired statement", "overig", 3)
	if _, err := db.Exec(`UPDATE question SET active = FALSE WHERE id = $1`, inactiveID); err != nil {
		t.Fatalf("Failed to deactivate question: %v", err)
	}

	req := httptest.NewRequest("GET", "/questions", nil)
	w := httptest.NewRecorder()
	handler.ListQuestions(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var questions []models.Question
	testutil.AssertJSON(t, w, &questions)

	if len(questions) != 2 {
		t.Fatalf("Expected 2 active questions, got %d", len(questions))
	}
	if questions[0].Statement != "First statement" || questions[1].Statement != "Second statement" {
		t.Errorf("Questions out of order: %s, %s", questions[0].Statement, questions[1].Statement)
	}
	if questions[0].Category != "klimaat" {
		t.Errorf("Expected category klimaat, got %s", questions[0].Category)
	}
}

func TestListQuestionsEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewQuestionsHandler(db)

	req := httptest.NewRequest("GET", "/questions", nil)
	w := httptest.NewRecorder()
	handler.ListQuestions(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var questions []models.Question
	testutil.AssertJSON(t, w, &questions)

	if len(questions) != 0 {
		t.Errorf("Expected empty list, got %d questions", len(questions))
	}
}
