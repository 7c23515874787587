// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// CURRENT_TIMESTAMP keeps the DDL portable across sqlite and postgres.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Statements presented to the user
CREATE TABLE IF NOT EXISTS question (
    id TEXT PRIMARY KEY,
    statement TEXT NOT NULL,
    category TEXT NOT NULL,
    description TEXT,
    order_index INTEGER NOT NULL DEFAULT 0,
    active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_question_category ON question(category);

-- Parties
CREATE TABLE IF NOT EXISTS party (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    color TEXT,
    description TEXT,
    cpb_analysis_url TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Party positions, one row per party per statement per source set
CREATE TABLE IF NOT EXISTS stance (
    party_id TEXT NOT NULL REFERENCES party(id) ON DELETE CASCADE,
    question_id TEXT NOT NULL REFERENCES question(id) ON DELETE CASCADE,
    source TEXT NOT NULL CHECK (source IN ('program', 'votes')),
    position INTEGER NOT NULL CHECK (position IN (-1, 0, 1)),
    confidence REAL CHECK (confidence >= 0 AND confidence <= 1),
    evidence_refs TEXT,
    PRIMARY KEY (party_id, question_id, source)
);

CREATE INDEX IF NOT EXISTS idx_stance_question_id ON stance(question_id);
CREATE INDEX IF NOT EXISTS idx_stance_party_source ON stance(party_id, source);

-- Source documents the stances were derived from
CREATE TABLE IF NOT EXISTS document (
    id TEXT PRIMARY KEY,
    party_name TEXT NOT NULL,
    title TEXT NOT NULL,
    url TEXT,
    year INTEGER,
    version TEXT,
    inserted_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_document_party_name ON document(party_name);

-- Anonymous submission log, IP addresses stored hashed only
CREATE TABLE IF NOT EXISTS quiz_submission (
    id TEXT PRIMARY KEY,
    submitted_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    answer_count INTEGER NOT NULL,
    dropped_count INTEGER NOT NULL DEFAULT 0,
    ip_hash TEXT,
    user_agent TEXT
);

-- Immutable computed results, fetched later by ID
CREATE TABLE IF NOT EXISTS result_snapshot (
    id TEXT PRIMARY KEY,
    method TEXT NOT NULL,
    computed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    payload TEXT NOT NULL
);
`
