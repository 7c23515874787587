// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/stemkompas/models"
	"github.com/danielhkuo/stemkompas/testutil"
)

func TestListParties(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewPartiesHandler(db)

	q1 := testutil.CreateTestQuestion(t, db, "Statement one", "klimaat", 1)
	q2 := testutil.CreateTestQuestion(t, db, "Statement two", "zorg", 2)

	alphaID := testutil.CreateTestParty(t, db, "Alpha")
	testutil.CreateTestParty(t, db, "Beta")
	testutil.AddTestStance(t, db, alphaID, q1, models.SourceProgram, models.PosAgree)
	testutil.AddTestStance(t, db, alphaID, q2, models.SourceProgram, models.PosDisagree)
	testutil.AddTestStance(t, db, alphaID, q1, models.SourceVotes, models.PosAgree)

	req := httptest.NewRequest("GET", "/parties", nil)
	w := httptest.NewRecorder()
	handler.ListParties(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var parties []models.PartySummary
	testutil.AssertJSON(t, w, &parties)

	if len(parties) != 2 {
		t.Fatalf("Expected 2 parties, got %d", len(parties))
	}

	// Sorted by name
	if parties[0].Name != "Alpha" || parties[1].Name != "Beta" {
		t.Errorf("Expected Alpha, Beta order; got %s, %s", parties[0].Name, parties[1].Name)
	}
	if parties[0].ProgramStances != 2 || parties[0].VoteStances != 1 {
		t.Errorf("Alpha stance counts = %d program, %d votes; want 2/1",
			parties[0].ProgramStances, parties[0].VoteStances)
	}
	if parties[1].ProgramStances != 0 || parties[1].VoteStances != 0 {
		t.Errorf("Beta stance counts = %d program, %d votes; want 0/0",
			parties[1].ProgramStances, parties[1].VoteStances)
	}
}

func TestGetParty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewPartiesHandler(db)

	q1 := testutil.CreateTestQuestion(t, db, "Statement one", "klimaat", 1)
	q2 := testutil.CreateTestQuestion(t, db, "Statement two", "zorg", 2)

	partyID := testutil.CreateTestParty(t, db, "Alpha")
	testutil.AddTestStance(t, db, partyID, q1, models.SourceProgram, models.PosAgree)
	testutil.AddTestStance(t, db, partyID, q2, models.SourceProgram, models.PosNeutral)
	testutil.AddTestStance(t, db, partyID, q1, models.SourceVotes, models.PosDisagree)

	t.Run("existing party", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/parties/"+partyID, nil)
		req.SetPathValue("id", partyID)
		w := httptest.NewRecorder()
		handler.GetParty(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var party models.PartyData
		testutil.AssertJSON(t, w, &party)

		if party.ID != partyID || party.Name != "Alpha" {
			t.Errorf("Unexpected party: %s (%s)", party.Name, party.ID)
		}
		if len(party.Program) != 2 {
			t.Errorf("Expected 2 program stances, got %d", len(party.Program))
		}
		if len(party.Votes) != 1 {
			t.Errorf("Expected 1 voting stance, got %d", len(party.Votes))
		}
		if party.Votes[0].Position != models.PosDisagree {
			t.Errorf("Expected disagree voting stance, got %d", party.Votes[0].Position)
		}
	})

	t.Run("missing party", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/parties/nope", nil)
		req.SetPathValue("id", "nope")
		w := httptest.NewRecorder()
		handler.GetParty(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}

func TestListDocuments(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewPartiesHandler(db)

	older := time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	// Spelling variants of the same party must group together
	testutil.CreateTestDocument(t, db, "GroenLinks", "Program 2023", older)
	testutil.CreateTestDocument(t, db, "GL-PvdA", "Program 2025", newer)
	testutil.CreateTestDocument(t, db, "VVD", "Program 2025", newer)

	req := httptest.NewRequest("GET", "/documents", nil)
	w := httptest.NewRecorder()
	handler.ListDocuments(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var grouped map[string][]models.Document
	testutil.AssertJSON(t, w, &grouped)

	if len(grouped) != 2 {
		t.Fatalf("Expected 2 groups, got %d: %v", len(grouped), grouped)
	}

	gl := grouped["GroenLinks-PvdA"]
	if len(gl) != 2 {
		t.Fatalf("Expected 2 GroenLinks-PvdA documents, got %d", len(gl))
	}
	// Most recent first within the group
	if gl[0].Title != "Program 2025" || gl[1].Title != "Program 2023" {
		t.Errorf("Expected newest document first, got %s then %s", gl[0].Title, gl[1].Title)
	}
	// Party labels are canonicalized in the response
	if gl[0].Party != "GroenLinks-PvdA" {
		t.Errorf("Expected canonical party name, got %s", gl[0].Party)
	}

	if len(grouped["VVD"]) != 1 {
		t.Errorf("Expected 1 VVD document, got %d", len(grouped["VVD"]))
	}
}
