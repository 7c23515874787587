// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - question: Statements presented to the user
  - party: Party metadata
  - stance: Party positions per statement, split by source set
  - document: Source documents behind the stances
  - quiz_submission: Anonymous submission log (hashed IPs)
  - result_snapshot: Immutable computed results

# Relationships

	party 1──* stance
	question 1──* stance

Stances are keyed (party, question, source) so each party carries at
most one program position and one voting-record position per statement.
Foreign keys use ON DELETE CASCADE.

# Portability

The DDL runs unchanged on sqlite and postgres: CURRENT_TIMESTAMP
defaults, TEXT payloads, and no engine-specific column types.
*/
package db
