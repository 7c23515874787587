// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Stemkompas API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, tablesStore)

# Endpoints

Health:

	GET /health

Statements and party data (public):

	GET /questions      - Active statements in presentation order
	GET /parties        - Party metadata with stance counts
	GET /parties/{id}   - Full party data with both stance sets
	GET /documents      - Source documents grouped by canonical party

Quiz scoring (public):

	POST /quiz/results                  - Score answers, store snapshot
	GET  /quiz/results/{id}             - Fetch a stored snapshot
	POST /quiz/results/{id}/coalitions  - Coalition chances for a snapshot

Admin (requires X-Admin-Key):

	POST /admin/tables/reload - Hot-reload scoring tables

# Handler Initialization

The router creates handler instances with dependency injection:

	questionsHandler := handlers.NewQuestionsHandler(db)
	partiesHandler := handlers.NewPartiesHandler(db)
	quizHandler := handlers.NewQuizHandler(db, cfg, store)
	coalitionsHandler := handlers.NewCoalitionsHandler(db, store)
	adminHandler := handlers.NewAdminHandler(cfg, store)
*/
package router
