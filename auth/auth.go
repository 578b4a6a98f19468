// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidFingerprint = errors.New("invalid fingerprint")

// Fingerprint signs payload with key using HMAC-SHA256.
// This is deterministic and verifiable.
func Fingerprint(payload []byte, key string) string {
	h := hmac.New(sha256.New, []byte(key))
	h.Write(payload)
	sum := h.Sum(nil)

	// Use URL-safe base64 and trim padding for cleaner fingerprints
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// VerifyFingerprint checks that fingerprint was produced from payload with key
func VerifyFingerprint(payload []byte, fingerprint, key string) error {
	expected := Fingerprint(payload, key)
	if !hmac.Equal([]byte(fingerprint), []byte(expected)) {
		return ErrInvalidFingerprint
	}
	return nil
}

// ShareSlug creates a short, deterministic URL slug for a report
// Uses HMAC for determinism and base62 encoding for URL-friendliness
func ShareSlug(reportID, key string) string {
	h := hmac.New(sha256.New, []byte(key))
	h.Write([]byte(reportID))
	sum := h.Sum(nil)

	// Take first 8 bytes for a shorter slug
	return base62Encode(sum[:8])
}

// base62Encode converts bytes to base62 (0-9, a-z, A-Z)
func base62Encode(data []byte) string {
	const base62Chars = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	var num uint64
	for i := 0; i < len(data) && i < 8; i++ {
		num = num<<8 | uint64(data[i])
	}

	if num == 0 {
		return "0"
	}

	result := make([]byte, 0, 11) // max length for uint64
	for num > 0 {
		result = append(result, base62Chars[num%62])
		num /= 62
	}

	// Reverse the string
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}

	return string(result)
}
