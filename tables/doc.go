// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package tables loads and serves the tunable configuration behind the
// scoring engine and the coalition estimator: compatibility constants,
// the weighting strategy, seat projections, incompatibility lists, and
// ideology positions. Values ship with sensible defaults and can be
// overridden from a TOML file, with hot reload via the admin API.
package tables
