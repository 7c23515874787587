// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/stemkompas/models"
	"github.com/danielhkuo/stemkompas/tables"
	"github.com/danielhkuo/stemkompas/testutil"
)

func TestGetCoalitions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	store := testutil.NewTablesStore(t)
	quizHandler := NewQuizHandler(db, cfg, store)
	handler := NewCoalitionsHandler(db, store)

	q1 := testutil.CreateTestQuestion(t, db, "Statement one", "klimaat", 1)

	// Real party names so the default seat and ideology tables apply
	for _, name := range []string{"VVD", "D66", "CDA", "GroenLinks-PvdA"} {
		partyID := testutil.CreateTestParty(t, db, name)
		testutil.AddTestStance(t, db, partyID, q1, models.SourceProgram, models.PosAgree)
	}

	reqBody := models.QuizResultsRequest{
		Answers: []models.RawAnswer{{StatementID: q1, Answer: "agree"}},
	}
	req := testutil.MakeRequest("POST", "/quiz/results", reqBody, nil)
	w := httptest.NewRecorder()
	quizHandler.SubmitQuiz(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var created models.QuizResultsResponse
	testutil.AssertJSON(t, w, &created)

	t.Run("exact estimator", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/quiz/results/"+created.SnapshotID+"/coalitions", nil)
		req.SetPathValue("id", created.SnapshotID)
		w := httptest.NewRecorder()
		handler.GetCoalitions(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.CoalitionResponse
		testutil.AssertJSON(t, w, &resp)

		if resp.SnapshotID != created.SnapshotID {
			t.Errorf("Expected snapshot %s, got %s", created.SnapshotID, resp.SnapshotID)
		}
		if resp.Estimator != "exact" {
			t.Errorf("Expected exact estimator, got %s", resp.Estimator)
		}
		if len(resp.Chances) != 4 {
			t.Fatalf("Expected 4 chance entries, got %d", len(resp.Chances))
		}
		for _, c := range resp.Chances {
			if c.ChancePercentage < 0 || c.ChancePercentage > 100 {
				t.Errorf("%s chance %d out of range", c.PartyName, c.ChancePercentage)
			}
			if len(c.MostLikelyCoalitions) > 3 {
				t.Errorf("%s has %d coalition options, max is 3", c.PartyName, len(c.MostLikelyCoalitions))
			}
			if c.Explanation == "" {
				t.Errorf("%s has no explanation", c.PartyName)
			}
		}
	})

	t.Run("fallback estimator", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tables.toml")
		if err := os.WriteFile(path, []byte("[coalition]\nestimator = \"fallback\"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		fallbackStore, err := tables.NewStore(path)
		if err != nil {
			t.Fatalf("Failed to load fallback tables: %v", err)
		}
		fallbackHandler := NewCoalitionsHandler(db, fallbackStore)

		req := httptest.NewRequest("POST", "/quiz/results/"+created.SnapshotID+"/coalitions", nil)
		req.SetPathValue("id", created.SnapshotID)
		w := httptest.NewRecorder()
		fallbackHandler.GetCoalitions(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.CoalitionResponse
		testutil.AssertJSON(t, w, &resp)

		if resp.Estimator != "fallback" {
			t.Errorf("Expected fallback estimator, got %s", resp.Estimator)
		}
		if len(resp.Chances) != 4 {
			t.Fatalf("Expected 4 chance entries, got %d", len(resp.Chances))
		}
		for _, c := range resp.Chances {
			if c.ChancePercentage < 0 || c.ChancePercentage > 100 {
				t.Errorf("%s chance %d out of range", c.PartyName, c.ChancePercentage)
			}
		}
	})

	t.Run("missing snapshot", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/quiz/results/absent/coalitions", nil)
		req.SetPathValue("id", "absent")
		w := httptest.NewRecorder()
		handler.GetCoalitions(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}
