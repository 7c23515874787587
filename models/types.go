// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Pos is a position on a statement: disagree, neutral, or agree.
type Pos int

const (
	PosDisagree Pos = -1
	PosNeutral  Pos = 0
	PosAgree    Pos = 1
)

// Valid reports whether p is one of the three allowed positions.
func (p Pos) Valid() bool {
	return p == PosDisagree || p == PosNeutral || p == PosAgree
}

// Stance source constants
const (
	SourceProgram = "program"
	SourceVotes   = "votes"
)

// Scoring method constants
const (
	MethodDual   = "dual_v1"
	MethodLegacy = "program_only"
)

// Request types

// RawAnswer is one quiz answer as submitted by the frontend.
// Answer is "agree", "neutral", or "disagree". Weight is an optional
// direct importance multiplier (1-3); when zero, the weight is derived
// from the theme weights via the configured strategy.
type RawAnswer struct {
	StatementID string `json:"statement_id"`
	Answer      string `json:"answer"`
	Weight      int    `json:"weight,omitempty"`
}

type QuizResultsRequest struct {
	// theme category -> importance percentage (0-100)
	ThemeWeights map[string]float64 `json:"theme_weights"`
	Answers      []RawAnswer        `json:"answers"`
}

// Response types

type QuizResultsResponse struct {
	SnapshotID     string            `json:"snapshot_id"`
	Method         string            `json:"method"`
	DroppedAnswers int               `json:"dropped_answers"`
	Results        []DualPartyResult `json:"results"`
}

type CoalitionResponse struct {
	SnapshotID string            `json:"snapshot_id"`
	Estimator  string            `json:"estimator"`
	Chances    []CoalitionChance `json:"chances"`
}

type ReloadTablesResponse struct {
	Reloaded bool   `json:"reloaded"`
	Message  string `json:"message"`
}

// PartySummary is the list view of a party: metadata plus stance
// counts, without the full stance sets.
type PartySummary struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Color          string `json:"color"`
	Description    string `json:"description"`
	ProgramStances int    `json:"program_stances"`
	VoteStances    int    `json:"vote_stances"`
	CPBAnalysisURL string `json:"cpb_analysis_url,omitempty"`
}

// Domain types

type Question struct {
	ID          string `json:"id"`
	Statement   string `json:"statement"`
	Category    string `json:"category"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index"`
	Active      bool   `json:"active"`
}

// StancePoint is one declared position of a party on a statement,
// taken either from its written program or from a recorded vote.
type StancePoint struct {
	StatementID  string   `json:"statement_id"`
	Position     Pos      `json:"position"`
	Confidence   *float64 `json:"confidence,omitempty"`
	EvidenceRefs []string `json:"evidence_refs,omitempty"`
}

type PartyData struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Color          string        `json:"color"`
	Description    string        `json:"description"`
	Program        []StancePoint `json:"program"`
	Votes          []StancePoint `json:"votes"`
	CPBAnalysisURL string        `json:"cpb_analysis_url,omitempty"`
}

// UserAnswer is one weighted answer ready for scoring. Weight is the
// theme-derived multiplier (linear: 1, 2, or 3; sigmoid: a normalized
// float around 1.0). Importance is the theme importance on a 0-1 scale,
// used only by the soft-conflict rule.
type UserAnswer struct {
	StatementID string  `json:"statement_id"`
	Position    Pos     `json:"position"`
	Weight      float64 `json:"weight"`
	Importance  float64 `json:"importance"`
}

// ScoreBreakdown is the result of scoring one stance-set for one party.
// Score, RawScore and Penalty are 0-100 integers; Coverage is the 0-1
// fraction of answered weight on which the party took a non-neutral
// position.
type ScoreBreakdown struct {
	Score        int     `json:"score"`
	RawScore     int     `json:"raw_score"`
	Coverage     float64 `json:"coverage"`
	Penalty      int     `json:"penalty"`
	Matches      int     `json:"matches"`
	Conflicts    int     `json:"conflicts"`
	NeutralAlign int     `json:"neutral_align"`
	PartialAlign int     `json:"partial_align"`
	Answered     int     `json:"answered"`
}

// DualPartyResult combines a party's program and voting-record scores.
// Combined = round(0.7*program.score + 0.3*votes.score).
type DualPartyResult struct {
	Party                PartyData      `json:"party"`
	Program              ScoreBreakdown `json:"program"`
	Votes                ScoreBreakdown `json:"votes"`
	Combined             int            `json:"combined"`
	HasLimitedVotingData bool           `json:"has_limited_voting_data"`
}

// SingleSetResult is the program-only scoring variant, used for
// datasets without voting-record data.
type SingleSetResult struct {
	Party      PartyData      `json:"party"`
	Breakdown  ScoreBreakdown `json:"breakdown"`
	Percentage int            `json:"percentage"`
}

// Coalition types

type CoalitionOption struct {
	Partners    []string `json:"partners"`
	Seats       int      `json:"seats"`
	Probability int      `json:"probability"`
}

type CoalitionChance struct {
	PartyName            string            `json:"party_name"`
	ChancePercentage     int               `json:"chance_percentage"`
	MostLikelyCoalitions []CoalitionOption `json:"most_likely_coalitions"`
	Explanation          string            `json:"explanation"`
}

// Document is one party-program document record. The documents listing
// groups these by normalized party label, most recent first.
type Document struct {
	ID         string    `json:"id"`
	Party      string    `json:"party"`
	Title      string    `json:"title"`
	URL        string    `json:"url"`
	Year       *int      `json:"year,omitempty"`
	Version    string    `json:"version,omitempty"`
	InsertedAt time.Time `json:"inserted_at"`
}

// ResultSnapshot is a persisted scoring run.
type ResultSnapshot struct {
	ID             string            `json:"id"`
	Method         string            `json:"method"`
	ComputedAt     time.Time         `json:"computed_at"`
	DroppedAnswers int               `json:"dropped_answers"`
	Results        []DualPartyResult `json:"results"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
