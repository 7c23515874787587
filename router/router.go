// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/stemkompas/cliparse"
	"github.com/danielhkuo/stemkompas/handlers"
	"github.com/danielhkuo/stemkompas/middleware"
	"github.com/danielhkuo/stemkompas/tables"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, store *tables.Store) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	questionsHandler := handlers.NewQuestionsHandler(db)
	partiesHandler := handlers.NewPartiesHandler(db)
	quizHandler := handlers.NewQuizHandler(db, cfg, store)
	coalitionsHandler := handlers.NewCoalitionsHandler(db, store)
	adminHandler := handlers.NewAdminHandler(cfg, store)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Statements and party data (public)
	mux.HandleFunc("GET /questions", middleware.WithLogging(questionsHandler.ListQuestions))
	mux.HandleFunc("GET /parties", middleware.WithLogging(partiesHandler.ListParties))
	mux.HandleFunc("GET /parties/{id}", middleware.WithLogging(partiesHandler.GetParty))
	mux.HandleFunc("GET /documents", middleware.WithLogging(partiesHandler.ListDocuments))

	// Quiz scoring (public)
	mux.HandleFunc("POST /quiz/results", middleware.WithLogging(quizHandler.SubmitQuiz))
	mux.HandleFunc("GET /quiz/results/{id}", middleware.WithLogging(quizHandler.GetSnapshot))
	mux.HandleFunc("POST /quiz/results/{id}/coalitions", middleware.WithLogging(coalitionsHandler.GetCoalitions))

	// Admin operations
	mux.HandleFunc("POST /admin/tables/reload", middleware.WithLogging(adminHandler.ReloadTables))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("stemkompas API v1"))
	})

	return mux
}
