package classify

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/persona-dev/persona/internal/personality"
	"github.com/persona-dev/persona/internal/state"
)

var noon = time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

func TestApplyFreshEdit(t *testing.T) {
	prev := state.Default("s1")
	ev := ToolEvent{SessionID: "s1", Tool: "Edit", FilePath: "main.rs"}

	next := Apply(prev, ev, noon)

	assert.Equal(t, state.ActivityEditing, next.Activity)
	assert.Equal(t, "main.rs", next.CurrentJob)
	assert.Equal(t, uint32(1), next.ConsecutiveActions)
	assert.Equal(t, uint32(0), next.ErrorCount)
	assert.Equal(t, noon, next.LastUpdated)
}

func TestApplyConsecutiveCounting(t *testing.T) {
	st := state.Default("s1")

	for i := 1; i <= 3; i++ {
		st = Apply(st, ToolEvent{Tool: "Read", FilePath: "a.go"}, noon)
		assert.Equal(t, uint32(i), st.ConsecutiveActions)
		assert.Equal(t, state.ActivityReading, st.Activity)
	}

	// Activity change resets the streak to 1, not 0.
	st = Apply(st, ToolEvent{Tool: "Edit", FilePath: "a.go"}, noon)
	assert.Equal(t, uint32(1), st.ConsecutiveActions)
}

func TestApplyErrorAccumulation(t *testing.T) {
	st := state.Default("s1")
	for i := 0; i < 5; i++ {
		st = Apply(st, ToolEvent{Tool: "Bash", Command: "cargo run", IsError: true}, noon)
	}
	assert.Equal(t, uint32(5), st.ErrorCount)
	assert.Equal(t, personality.TableFlipper.String(), st.Personality)

	// Non-error events never decrement.
	st = Apply(st, ToolEvent{Tool: "Read", FilePath: "a.go"}, noon)
	assert.Equal(t, uint32(5), st.ErrorCount)
}

func TestApplyGitPersonality(t *testing.T) {
	st := Apply(state.Default("s1"), ToolEvent{Tool: "Bash", Command: "git commit -m x"}, noon)
	assert.Equal(t, personality.GitManager.String(), st.Personality)
	assert.Equal(t, state.ActivityExecuting, st.Activity)
	assert.Equal(t, "git", st.CurrentJob)
}

func TestApplyUnknownTool(t *testing.T) {
	st := Apply(state.Default("s1"), ToolEvent{Tool: "WebFetch"}, noon)
	assert.Equal(t, state.ActivityThinking, st.Activity)
	assert.Empty(t, st.CurrentJob)
}

func TestApplyEmptyParameters(t *testing.T) {
	// Missing parameters must classify, not crash.
	for _, tool := range []string{"Edit", "Write", "Bash", "Read", "Grep", ""} {
		st := Apply(state.Default("s1"), ToolEvent{Tool: tool}, noon)
		assert.NotEmpty(t, st.Activity, tool)
		assert.NotEmpty(t, st.Personality, tool)
	}
}

func TestApplyDeterministic(t *testing.T) {
	prev := state.SessionState{
		SessionID:          "s1",
		Activity:           state.ActivityReading,
		ConsecutiveActions: 4,
		ErrorCount:         2,
	}
	ev := ToolEvent{Tool: "Grep", Pattern: "func.*Apply"}

	first := Apply(prev, ev, noon)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Apply(prev, ev, noon))
	}
}

func TestActivityForBashFamilies(t *testing.T) {
	cases := map[string]state.Activity{
		"npm install express":    state.ActivityInstalling,
		"cargo build --release":  state.ActivityBuilding,
		"go test ./...":          state.ActivityTesting,
		"kubectl apply -f x.yml": state.ActivityDeploying,
		"ls -la":                 state.ActivityNavigating,
		"cowsay moo":             state.ActivityExecuting,
	}
	for cmd, want := range cases {
		got, job := activityFor(ToolEvent{Tool: "Bash", Command: cmd})
		assert.Equal(t, want, got, cmd)
		assert.NotEmpty(t, job, cmd)
	}
}

func TestActivityForEditRefinements(t *testing.T) {
	act, _ := activityFor(ToolEvent{Tool: "Edit", FilePath: "README.md"})
	assert.Equal(t, state.ActivityDocumenting, act)

	act, _ = activityFor(ToolEvent{Tool: "Edit", FilePath: "settings.toml"})
	assert.Equal(t, state.ActivityConfiguring, act)

	act, _ = activityFor(ToolEvent{Tool: "MultiEdit", FilePath: "lib.rs"})
	assert.Equal(t, state.ActivityRefactoring, act)

	act, _ = activityFor(ToolEvent{Tool: "Write", FilePath: "new.go"})
	assert.Equal(t, state.ActivityWriting, act)
}

func TestTrimFilenameKeepsExtension(t *testing.T) {
	got := trimFilename("a_very_long_descriptive_filename_for_testing.tsx", 20)
	require.LessOrEqual(t, len(got), 20)
	assert.True(t, len(got) > 0)
	assert.Equal(t, ".tsx", got[len(got)-4:])
	assert.Contains(t, got, "...")
}

func TestTrimFilenameShortAndPathOnly(t *testing.T) {
	assert.Equal(t, "main.rs", trimFilename("main.rs", 20))
	assert.Equal(t, "main.rs", trimFilename("/deep/path/to/main.rs", 20))
	assert.Equal(t, "", trimFilename("", 20))
}

func TestTrimMultibyteFilenames(t *testing.T) {
	got := trimFilename("説明資料_とても長いファイル名のサンプル.md", 20)
	assert.True(t, utf8.ValidString(got))
	assert.True(t, strings.HasSuffix(got, ".md"))
	assert.LessOrEqual(t, len([]rune(got)), 20)

	got = trimPattern(strings.Repeat("функция", 5), 20)
	assert.True(t, utf8.ValidString(got))
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Len(t, []rune(got), 20)
}

func TestTrimPattern(t *testing.T) {
	long := "a_pattern_that_goes_on_and_on"
	got := trimPattern(long, 20)
	assert.Len(t, got, 20)
	assert.Equal(t, "...", got[17:])
	assert.Equal(t, "short", trimPattern("short", 20))
}
