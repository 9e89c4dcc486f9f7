// Package models defines the core domain models for cinebook.
//
// # Persisted Models
//
//   - Credential: a local account (email, password hash, display name)
//   - UserProfile: the single cached copy of the account signed in on this device
//   - Ticket: a completed seat reservation
//
// Seat maps and show schedules are transient and live in the booking package.
//
// # Design Principles
//
// 1. **Email is identity**: accounts, the cached profile and tickets are keyed by
// the normalized (trimmed, lowercased) email
// 2. **Avoid circular references**: relationships use email strings, not pointers
// 3. **Display strings are not sort keys**: tickets keep an ISO show day next to
// the "T7, 31" label shown in the UI
package models

import "strings"

// NormalizeEmail trims and lowercases an email so it can be used as a key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
