// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Stemkompas API.

# Handler Types

Each handler is a struct with its dependencies:

  - QuestionsHandler: Statement listing
  - PartiesHandler: Party metadata, stance sets, source documents
  - QuizHandler: Answer scoring and result snapshots
  - CoalitionsHandler: Coalition chance estimation
  - AdminHandler: Tables reload

Handlers are created via constructor functions:

	quizHandler := handlers.NewQuizHandler(db, cfg, tablesStore)

# Quiz Flow

The frontend fetches statements, collects answers and theme weights,
then submits them for scoring:

	GET  /questions              → ListQuestions
	POST /quiz/results           → SubmitQuiz (returns snapshot_id)
	GET  /quiz/results/{id}      → GetSnapshot
	POST /quiz/results/{id}/coalitions → GetCoalitions

Scoring runs both stance sets (program and voting record) through the
compatibility engine and combines them 70/30. Results are stored as an
immutable snapshot so a shared link always shows the same outcome.

# Party Data

	GET /parties        → ListParties (metadata plus stance counts)
	GET /parties/{id}   → GetParty (full stance sets)
	GET /documents      → ListDocuments (grouped by canonical party name)

# Admin Operations

	POST /admin/tables/reload → ReloadTables

Requires the X-Admin-Key header. The scoring constants and coalition
tables are reloaded from the configured TOML file without a restart.
*/
package handlers
