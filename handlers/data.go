// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"strings"

	"github.com/danielhkuo/stemkompas/models"
)

// loadCategories returns the statement ID -> theme category map for all
// active questions.
func loadCategories(db *sql.DB) (map[string]string, error) {
	rows, err := db.Query(`
		SELECT id, category
		FROM question
		WHERE active = TRUE
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make(map[string]string)
	for rows.Next() {
		var id, category string
		if err := rows.Scan(&id, &category); err != nil {
			return nil, err
		}
		categories[id] = category
	}
	return categories, rows.Err()
}

// loadParties returns all parties with both stance sets attached.
func loadParties(db *sql.DB) ([]models.PartyData, error) {
	rows, err := db.Query(`
		SELECT id, name, color, description, cpb_analysis_url
		FROM party
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parties := []models.PartyData{}
	index := make(map[string]int)
	for rows.Next() {
		var p models.PartyData
		var color, description, cpbURL sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &color, &description, &cpbURL); err != nil {
			return nil, err
		}
		p.Color = color.String
		p.Description = description.String
		p.CPBAnalysisURL = cpbURL.String
		p.Program = []models.StancePoint{}
		p.Votes = []models.StancePoint{}
		index[p.ID] = len(parties)
		parties = append(parties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	stanceRows, err := db.Query(`
		SELECT party_id, question_id, source, position, confidence, evidence_refs
		FROM stance
	`)
	if err != nil {
		return nil, err
	}
	defer stanceRows.Close()

	for stanceRows.Next() {
		var partyID, questionID, source string
		var position int
		var confidence sql.NullFloat64
		var evidenceRefs sql.NullString
		if err := stanceRows.Scan(&partyID, &questionID, &source, &position, &confidence, &evidenceRefs); err != nil {
			return nil, err
		}
		i, ok := index[partyID]
		if !ok {
			continue
		}
		sp := models.StancePoint{
			StatementID: questionID,
			Position:    models.Pos(position),
		}
		if confidence.Valid {
			c := confidence.Float64
			sp.Confidence = &c
		}
		if evidenceRefs.Valid && evidenceRefs.String != "" {
			sp.EvidenceRefs = strings.Split(evidenceRefs.String, ",")
		}
		switch source {
		case models.SourceProgram:
			parties[i].Program = append(parties[i].Program, sp)
		case models.SourceVotes:
			parties[i].Votes = append(parties[i].Votes, sp)
		}
	}
	return parties, stanceRows.Err()
}
