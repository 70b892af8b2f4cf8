package hooks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/persona-dev/persona/internal/state"
)

var noon = time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

func testDeps() (Deps, *state.MemStore) {
	store := state.NewMemStore()
	return Deps{Store: store, Now: func() time.Time { return noon }}, store
}

func TestHandleToolUse(t *testing.T) {
	deps, store := testDeps()

	err := HandleToolUse(deps, []byte(`{
		"session_id": "s1",
		"tool_name": "Edit",
		"tool_input": {"file_path": "main.rs"}
	}`))
	require.NoError(t, err)

	st, err := store.Load("s1")
	require.NoError(t, err)
	assert.Equal(t, state.ActivityEditing, st.Activity)
	assert.Equal(t, "main.rs", st.CurrentJob)
	assert.Equal(t, uint32(1), st.ConsecutiveActions)
	assert.Equal(t, noon, st.LastUpdated)
}

func TestHandleToolUseCountsErrors(t *testing.T) {
	deps, store := testDeps()

	input := []byte(`{
		"session_id": "s1",
		"tool_name": "Bash",
		"tool_input": {"command": "cargo run"},
		"tool_response": {"error": "exit status 1"}
	}`)
	for i := 0; i < 3; i++ {
		require.NoError(t, HandleToolUse(deps, input))
	}

	st, _ := store.Load("s1")
	assert.Equal(t, uint32(3), st.ErrorCount)
}

func TestHandleToolUseNullErrorIsSuccess(t *testing.T) {
	deps, store := testDeps()

	ev, ok := ParseToolEvent([]byte(`{"tool_name": "Bash", "tool_response": {"error": null}}`))
	require.True(t, ok)
	assert.False(t, ev.IsError)

	// A host that always includes tool_response reports success as an
	// explicit null; five clean calls must not look like five failures.
	input := []byte(`{
		"session_id": "s1",
		"tool_name": "Bash",
		"tool_input": {"command": "cargo run"},
		"tool_response": {"error": null}
	}`)
	for i := 0; i < 5; i++ {
		require.NoError(t, HandleToolUse(deps, input))
	}

	st, _ := store.Load("s1")
	assert.Zero(t, st.ErrorCount)
}

func TestHandleToolUseMalformedInputIsNoOp(t *testing.T) {
	deps, store := testDeps()

	require.NoError(t, HandleToolUse(deps, []byte(`this is not json`)))
	require.NoError(t, HandleToolUse(deps, []byte(``)))
	require.NoError(t, HandleToolUse(deps, []byte(`[1,2,3]`)))

	st, _ := store.Load("claude_current")
	assert.Equal(t, state.Default("claude_current"), st)
}

func TestHandleToolUseMissingKeys(t *testing.T) {
	deps, store := testDeps()

	// Object with no recognizable fields still classifies, using the
	// fallback session and the generic activity.
	t.Setenv("CLAUDE_SESSION_ID", "")
	require.NoError(t, HandleToolUse(deps, []byte(`{"something": "else"}`)))

	st, _ := store.Load("claude_current")
	assert.Equal(t, state.ActivityThinking, st.Activity)
	assert.Equal(t, uint32(1), st.ConsecutiveActions)
}

func TestHandlePromptSubmitResetsErrors(t *testing.T) {
	deps, store := testDeps()

	st := state.Default("s1")
	st.ErrorCount = 4
	st.Activity = state.ActivityEditing
	st.ConsecutiveActions = 7
	require.NoError(t, store.Save(st))

	require.NoError(t, HandlePromptSubmit(deps, []byte(`{"session_id": "s1"}`)))

	got, _ := store.Load("s1")
	assert.Zero(t, got.ErrorCount)
	// Everything else survives the reset.
	assert.Equal(t, state.ActivityEditing, got.Activity)
	assert.Equal(t, uint32(7), got.ConsecutiveActions)
}

func TestHandleSessionEndDeletesState(t *testing.T) {
	deps, store := testDeps()
	require.NoError(t, store.Save(state.Default("s1")))

	require.NoError(t, HandleSessionEnd(deps, []byte(`{"session_id": "s1"}`)))

	got, _ := store.Load("s1")
	assert.Equal(t, state.Default("s1"), got)

	// Unknown session: still a clean no-op.
	require.NoError(t, HandleSessionEnd(deps, []byte(`{"session_id": "ghost"}`)))
}

func TestParseToolEventSessionFallback(t *testing.T) {
	t.Setenv("CLAUDE_SESSION_ID", "from-env")

	ev, ok := ParseToolEvent([]byte(`{"tool_name": "Read"}`))
	require.True(t, ok)
	assert.Equal(t, "from-env", ev.SessionID)

	t.Setenv("CLAUDE_SESSION_ID", "")
	ev, ok = ParseToolEvent([]byte(`{"tool_name": "Read"}`))
	require.True(t, ok)
	assert.Equal(t, "claude_current", ev.SessionID)
}
