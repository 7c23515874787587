// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/stemkompas/auth"
	"github.com/danielhkuo/stemkompas/cliparse"
	"github.com/danielhkuo/stemkompas/middleware"
	"github.com/danielhkuo/stemkompas/models"
	"github.com/danielhkuo/stemkompas/scoring"
	"github.com/danielhkuo/stemkompas/tables"
)

type QuizHandler struct {
	db     *sql.DB
	cfg    cliparse.Config
	tables *tables.Store
}

func NewQuizHandler(db *sql.DB, cfg cliparse.Config, store *tables.Store) *QuizHandler {
	return &QuizHandler{db: db, cfg: cfg, tables: store}
}

// SubmitQuiz handles POST /quiz/results
// Scores the submitted answers against every party and persists an
// immutable snapshot that can be fetched again by ID
func (h *QuizHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	var req models.QuizResultsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if len(req.Answers) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "answers are required")
		return
	}

	categories, err := loadCategories(h.db)
	if err != nil {
		slog.Error("failed to load questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	parties, err := loadParties(h.db)
	if err != nil {
		slog.Error("failed to load parties", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	t := h.tables.Current()
	answers, dropped := scoring.BuildAnswers(req.Answers, categories, req.ThemeWeights, t.WeightStrategy())
	if len(answers) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "no valid answers in submission")
		return
	}

	results := scoring.ScoreAll(parties, answers, t.ScoringParams())

	snapshot := models.ResultSnapshot{
		ID:             uuid.NewString(),
		Method:         models.MethodDual,
		ComputedAt:     time.Now().UTC(),
		DroppedAnswers: dropped,
		Results:        results,
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		slog.Error("failed to marshal snapshot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store results")
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO result_snapshot (id, method, computed_at, payload)
		VALUES ($1, $2, $3, $4)
	`, snapshot.ID, snapshot.Method, snapshot.ComputedAt, string(payload))
	if err != nil {
		slog.Error("failed to insert snapshot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store results")
		return
	}

	// Submission log is best-effort; never fail the request over it
	h.logSubmission(r, len(answers), dropped)

	middleware.JSONResponse(w, http.StatusCreated, models.QuizResultsResponse{
		SnapshotID:     snapshot.ID,
		Method:         snapshot.Method,
		DroppedAnswers: dropped,
		Results:        results,
	})
}

// GetSnapshot handles GET /quiz/results/{id}
// Returns a previously computed snapshot
func (h *QuizHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
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

	middleware.JSONResponse(w, http.StatusOK, snapshot)
}

func (h *QuizHandler) logSubmission(r *http.Request, answered, dropped int) {
	id, err := auth.GenerateID(16)
	if err != nil {
		slog.Warn("failed to generate submission id", "error", err)
		return
	}
	ipHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.AdminKeySalt)
	_, err = h.db.Exec(`
		INSERT INTO quiz_submission (id, answer_count, dropped_count, ip_hash, user_agent)
		VALUES ($1, $2, $3, $4, $5)
	`, id, answered, dropped, ipHash, r.UserAgent())
	if err != nil {
		slog.Warn("failed to log submission", "error", err)
	}
}

// loadSnapshot fetches a stored snapshot and decodes its payload.
func loadSnapshot(db *sql.DB, id string) (models.ResultSnapshot, error) {
	var payload []byte
	err := db.QueryRow(`
		SELECT payload
		FROM result_snapshot
		WHERE id = $1
	`, id).Scan(&payload)
	if err != nil {
		return models.ResultSnapshot{}, err
	}

	var snapshot models.ResultSnapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return models.ResultSnapshot{}, err
	}
	return snapshot, nil
}
