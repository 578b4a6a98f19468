// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth signs simulation reports.

# Fingerprints

A fingerprint is an HMAC-SHA256 over a report's configuration, run count and
seed:

	fp := auth.Fingerprint(payload, key)
	err := auth.VerifyFingerprint(payload, fp, key)

Two reports with the same fingerprint were produced by the same election and
seed, so their outcome counts must match. The fingerprint is URL-safe base64
without padding.

# Share Slugs

Share slugs are short base62 identifiers for stored reports:

	slug := auth.ShareSlug(reportID, key)

Like fingerprints they are deterministic for a given ID and key.
*/
package auth
