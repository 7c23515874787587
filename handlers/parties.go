// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/stemkompas/middleware"
	"github.com/danielhkuo/stemkompas/models"
	"github.com/danielhkuo/stemkompas/partyname"
)

type PartiesHandler struct {
	db *sql.DB
}

func NewPartiesHandler(db *sql.DB) *PartiesHandler {
	return &PartiesHandler{db: db}
}

// ListParties handles GET /parties
// Returns party metadata with stance counts per source set
func (h *PartiesHandler) ListParties(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT p.id, p.name, p.color, p.description, p.cpb_analysis_url,
		       COUNT(CASE WHEN s.source = 'program' THEN 1 END) AS program_stances,
		       COUNT(CASE WHEN s.source = 'votes' THEN 1 END) AS vote_stances
		FROM party p
		LEFT JOIN stance s ON s.party_id = p.id
		GROUP BY p.id, p.name, p.color, p.description, p.cpb_analysis_url
		ORDER BY p.name
	`)
	if err != nil {
		slog.Error("failed to query parties", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	parties := []models.PartySummary{}
	for rows.Next() {
		var p models.PartySummary
		var color, description, cpbURL sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &color, &description, &cpbURL,
			&p.ProgramStances, &p.VoteStances); err != nil {
			slog.Error("failed to scan party", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		p.Color = color.String
		p.Description = description.String
		p.CPBAnalysisURL = cpbURL.String
		parties = append(parties, p)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read parties", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, parties)
}

// GetParty handles GET /parties/{id}
// Returns full party data including both stance sets
func (h *PartiesHandler) GetParty(w http.ResponseWriter, r *http.Request) {
	partyID := r.PathValue("id")
	if partyID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "party id is required")
		return
	}

	parties, err := loadParties(h.db)
	if err != nil {
		slog.Error("failed to load parties", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	for _, p := range parties {
		if p.ID == partyID {
			middleware.JSONResponse(w, http.StatusOK, p)
			return
		}
	}

	middleware.ErrorResponse(w, http.StatusNotFound, "Party not found")
}

// ListDocuments handles GET /documents
// Returns source documents grouped by canonical party name,
// most recent first within each group
func (h *PartiesHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, party_name, title, url, year, version, inserted_at
		FROM document
		ORDER BY inserted_at DESC, id
	`)
	if err != nil {
		slog.Error("failed to query documents", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	grouped := map[string][]models.Document{}
	for rows.Next() {
		var d models.Document
		var url, version sql.NullString
		var year sql.NullInt64
		if err := rows.Scan(&d.ID, &d.Party, &d.Title, &url, &year, &version, &d.InsertedAt); err != nil {
			slog.Error("failed to scan document", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		d.URL = url.String
		d.Version = version.String
		if year.Valid {
			y := int(year.Int64)
			d.Year = &y
		}

		canonical := partyname.Normalize(d.Party)
		d.Party = canonical
		grouped[canonical] = append(grouped[canonical], d)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read documents", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, grouped)
}
