// Package state defines the per-session activity state and the stores that
// persist it between hook invocations. Every hook and statusline call runs
// in a fresh process; this state file is the only memory a session has.
package state

import (
	"time"
)

// Activity is the coarse category of the most recent tool-use event.
type Activity string

const (
	ActivityEditing     Activity = "Editing"
	ActivityConfiguring Activity = "Configuring"
	ActivityNavigating  Activity = "Navigating"
	ActivityWriting     Activity = "Writing"
	ActivityExecuting   Activity = "Executing"
	ActivityReading     Activity = "Reading"
	ActivitySearching   Activity = "Searching"
	ActivityDebugging   Activity = "Debugging"
	ActivityTesting     Activity = "Testing"
	ActivityReviewing   Activity = "Reviewing"
	ActivityThinking    Activity = "Thinking"
	ActivityBuilding    Activity = "Building"
	ActivityInstalling  Activity = "Installing"
	ActivityIdle        Activity = "Idle"
	ActivityRefactoring Activity = "Refactoring"
	ActivityDocumenting Activity = "Documenting"
	ActivityDeploying   Activity = "Deploying"
)

// BootPersonality is the label a session wears before its first tool event.
const BootPersonality = "( ˘ ³˘) Booting Up"

// SessionState is the persisted per-session snapshot. It is written in full
// on every update; last writer wins across concurrent hook processes.
type SessionState struct {
	SessionID          string    `json:"session_id"`
	Activity           Activity  `json:"activity"`
	Personality        string    `json:"personality"`
	CurrentJob         string    `json:"current_job,omitempty"`
	ConsecutiveActions uint32    `json:"consecutive_actions"`
	ErrorCount         uint32    `json:"error_count"`
	LastUpdated        time.Time `json:"last_updated"`
}

// Default returns the state of a session that has not produced any events.
func Default(sessionID string) SessionState {
	return SessionState{
		SessionID:   sessionID,
		Activity:    ActivityIdle,
		Personality: BootPersonality,
	}
}

// normalize fills fields that older or partially-written state files may
// lack, so unknown or missing fields degrade instead of erroring.
func (s *SessionState) normalize(sessionID string) {
	if s.SessionID == "" {
		s.SessionID = sessionID
	}
	if s.Activity == "" {
		s.Activity = ActivityIdle
	}
	if s.Personality == "" {
		s.Personality = BootPersonality
	}
}

// Store is the persistence contract for session state. The file-backed
// implementation is the production store; MemStore backs tests.
type Store interface {
	// Load returns the persisted state for a session, or the default
	// state when none exists or the file is unreadable. It never fails
	// on missing or corrupt data.
	Load(sessionID string) (SessionState, error)

	// Save persists the state so that concurrent readers observe either
	// the previous complete state or this one, never a partial write.
	Save(st SessionState) error

	// ResetErrors zeroes the error counter, leaving all other fields
	// untouched. Called on each new user prompt.
	ResetErrors(sessionID string) error

	// Delete removes all persisted state for a session. Deleting a
	// session that was never saved is a no-op.
	Delete(sessionID string) error
}
