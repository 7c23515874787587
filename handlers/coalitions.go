// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/stemkompas/coalition"
	"github.com/danielhkuo/stemkompas/middleware"
	"github.com/danielhkuo/stemkompas/models"
	"github.com/danielhkuo/stemkompas/tables"
)

type CoalitionsHandler struct {
	db     *sql.DB
	tables *tables.Store
}

func NewCoalitionsHandler(db *sql.DB, store *tables.Store) *CoalitionsHandler {
	return &CoalitionsHandler{db: db, tables: store}
}

// GetCoalitions handles POST /quiz/results/{id}/coalitions
// Estimates coalition chances for the parties in a stored snapshot
func (h *CoalitionsHandler) GetCoalitions(w http.ResponseWriter, r *http.Request) {
	snapshotID := r.PathValue("id")
	if snapshotID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "snapshot id is required")
		return
	}

	snapshot, err := loadSnapshot(h.db, snapshotID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Snapshot not found")
		return
	}
	if err != nil {
		slog.Error("failed to load snapshot", "error", err, "id", snapshotID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	t := h.tables.Current()

	var chances []models.CoalitionChance
	switch t.Coalition.Estimator {
	case tables.EstimatorFallback:
		ranked := make([]coalition.RankedParty, 0, len(snapshot.Results))
		for _, res := range snapshot.Results {
			ranked = append(ranked, coalition.RankedParty{
				Name:  res.Party.Name,
				Score: res.Combined,
			})
		}
		chances = coalition.FallbackChances(ranked, t.Coalition.TotalSeats, t.Coalition.MajorityThreshold)
	default:
		names := make([]string, 0, len(snapshot.Results))
		for _, res := range snapshot.Results {
			names = append(names, res.Party.Name)
		}
		chances, err = coalition.Chances(names, t.CoalitionTables())
		if errors.Is(err, coalition.ErrTooManyParties) {
			middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "too many parties for exact estimation")
			return
		}
		if err != nil {
			slog.Error("coalition estimation failed", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Estimation failed")
			return
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.CoalitionResponse{
		SnapshotID: snapshotID,
		Estimator:  t.Coalition.Estimator,
		Chances:    chances,
	})
}
