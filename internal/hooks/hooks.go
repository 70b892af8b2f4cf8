// Package hooks handles the short-lived hook invocations Claude Code
// fires around tool use. Every handler is fail-open: malformed input is a
// no-op, and no failure here may abort the host's tool pipeline — the CLI
// layer logs returned errors and still exits zero.
package hooks

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/tidwall/gjson"

	"github.com/persona-dev/persona/internal/classify"
	"github.com/persona-dev/persona/internal/eventlog"
	"github.com/persona-dev/persona/internal/state"
)

// Deps are the collaborators a hook invocation touches. Journal may be
// nil; history recording is optional.
type Deps struct {
	Store   state.Store
	Journal *eventlog.Journal
	Now     func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// ParseToolEvent extracts a tool event from hook input. The second return
// is false when the input is not a JSON object at all, which callers
// treat as "nothing to do".
func ParseToolEvent(data []byte) (classify.ToolEvent, bool) {
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return classify.ToolEvent{}, false
	}
	// Some hosts report success as an explicit "error": null; only a
	// present, non-null value marks a failure.
	errField := root.Get("tool_response.error")
	return classify.ToolEvent{
		SessionID: sessionID(root),
		Tool:      root.Get("tool_name").String(),
		FilePath:  root.Get("tool_input.file_path").String(),
		Command:   root.Get("tool_input.command").String(),
		Pattern:   root.Get("tool_input.pattern").String(),
		IsError:   errField.Exists() && errField.Type != gjson.Null,
	}, true
}

// HandleToolUse classifies one tool event and persists the new state.
// Both the pre-tool and post-tool hooks land here; the classifier does
// not care which side of the tool call it sees.
func HandleToolUse(deps Deps, data []byte) error {
	ev, ok := ParseToolEvent(data)
	if !ok {
		slog.Debug("ignoring malformed hook input")
		return nil
	}

	prev, err := deps.Store.Load(ev.SessionID)
	if err != nil {
		return err
	}
	next := classify.Apply(prev, ev, deps.now())
	if err := deps.Store.Save(next); err != nil {
		return err
	}

	if deps.Journal != nil {
		entry := eventlog.Entry{
			SessionID: next.SessionID,
			Tool:      ev.Tool,
			Activity:  string(next.Activity),
			Job:       next.CurrentJob,
			IsError:   ev.IsError,
			CreatedAt: next.LastUpdated,
		}
		if err := deps.Journal.Record(context.Background(), entry); err != nil {
			slog.Debug("journaling tool event failed", "error", err)
		}
	}
	return nil
}

// HandlePromptSubmit zeroes the error counter at the turn boundary.
func HandlePromptSubmit(deps Deps, data []byte) error {
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		slog.Debug("ignoring malformed hook input")
		return nil
	}
	return deps.Store.ResetErrors(sessionID(root))
}

// HandleSessionEnd removes all per-session state and journal rows.
func HandleSessionEnd(deps Deps, data []byte) error {
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		slog.Debug("ignoring malformed hook input")
		return nil
	}
	id := sessionID(root)

	if deps.Journal != nil {
		if err := deps.Journal.DeleteSession(context.Background(), id); err != nil {
			slog.Debug("clearing session journal failed", "session", id, "error", err)
		}
	}
	return deps.Store.Delete(id)
}

// sessionID mirrors the statusline fallback chain so hook and render
// invocations agree on the session when the host omits the id.
func sessionID(root gjson.Result) string {
	if id := root.Get("session_id").String(); id != "" {
		return id
	}
	if id := os.Getenv("CLAUDE_SESSION_ID"); id != "" {
		return id
	}
	return "claude_current"
}
