// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin key validation and privacy utilities.

# Admin Keys

Admin keys use HMAC-SHA256 to derive a deterministic, verifiable key
from the deployment salt:

	adminKey := auth.GenerateAdminKey(salt)
	err := auth.ValidateAdminKey(presented, salt)

The key is URL-safe base64 encoded without padding. Since it's
deterministic, the same salt always produces the same key, so nothing
needs to be stored server-side.

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(16)  // 32 hex characters

# IP Hashing

For privacy-preserving submission logs:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256. Raw addresses are
never stored.
*/
package auth
