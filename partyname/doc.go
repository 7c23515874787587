// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package partyname canonicalizes Dutch party names. Source documents
// spell the same party several ways (abbreviation, full name, combined
// list); the ordered rule cascade here maps every variant onto the one
// canonical spelling the rest of the system keys on.
package partyname
