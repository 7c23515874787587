// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Stemkompas API server.

Stemkompas is a voter-advice service for Dutch elections: users answer
statements, weight the themes they care about, and get per-party
compatibility scores computed against both written party programs and
actual voting records, plus coalition chance estimates.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 3318 -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): Database connection string
  - ADMIN_KEY_SALT (-admin-salt): Secret for admin key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)
  - TABLES_PATH (-tables): Scoring tables TOML file

# Architecture

The server uses a handler-based architecture with dependency injection:

  - scoring: Compatibility engine, weighting, dual scorer
  - coalition: Coalition enumeration and chance estimation
  - tables: Tunable constants and polling data, hot-reloadable
  - handlers: HTTP request handlers (questions, parties, quiz, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - partyname: Canonical party name mapping
  - auth: Admin key validation and IP hashing
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
