// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/stemkompas/middleware"
	"github.com/danielhkuo/stemkompas/models"
)

type QuestionsHandler struct {
	db *sql.DB
}

func NewQuestionsHandler(db *sql.DB) *QuestionsHandler {
	return &QuestionsHandler{db: db}
}

// ListQuestions handles GET /questions
// Returns active statements in presentation order
func (h *QuestionsHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, statement, category, description, order_index, active
		FROM question
		WHERE active = TRUE
		ORDER BY order_index, id
	`)
	if err != nil {
		slog.Error("failed to query questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		var description sql.NullString
		if err := rows.Scan(&q.ID, &q.Statement, &q.Category, &description, &q.OrderIndex, &q.Active); err != nil {
			slog.Error("failed to scan question", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		q.Description = description.String
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to read questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, questions)
}
