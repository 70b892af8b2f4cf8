package statusline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/persona-dev/persona/internal/config"
	"github.com/persona-dev/persona/internal/state"
	"github.com/persona-dev/persona/internal/theme"
)

// plainCtx renders without escape codes so assertions can match substrings.
func plainCtx() Context {
	cfg := config.DefaultConfig()
	cfg.UseColors = false
	cfg.UseIcons = false
	return Context{
		Config:    cfg,
		Styles:    theme.PlainStyles(),
		ModelName: "Claude Sonnet 4.5",
	}
}

func editingState() state.SessionState {
	return state.SessionState{
		SessionID:          "s1",
		Activity:           state.ActivityEditing,
		Personality:        "(⌐■_■) Code Wizard",
		CurrentJob:         "main.go",
		ConsecutiveActions: 2,
	}
}

func TestBuildAllSegments(t *testing.T) {
	got := Build(editingState(), plainCtx())

	assert.Equal(t, "(⌐■_■) Code Wizard • Editing main.go • [Claude Sonnet 4.5]", got)
}

func TestBuildIsDeterministic(t *testing.T) {
	st := editingState()
	ctx := plainCtx()

	first := Build(st, ctx)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Build(st, ctx))
	}
}

func TestBuildSkipsDisabledSegments(t *testing.T) {
	ctx := plainCtx()
	ctx.Config.ShowModel = false
	ctx.Config.ShowActivity = false

	got := Build(editingState(), ctx)
	assert.Equal(t, "(⌐■_■) Code Wizard", got)
}

func TestBuildNoDanglingSeparators(t *testing.T) {
	ctx := plainCtx()
	ctx.Config.ShowPersonality = false
	ctx.Config.ShowUpdate = false

	got := Build(editingState(), ctx)
	assert.False(t, strings.HasPrefix(got, " "))
	assert.False(t, strings.HasSuffix(got, " "))
	assert.NotContains(t, got, "•  •")
	assert.Equal(t, "Editing main.go • [Claude Sonnet 4.5]", got)
}

func TestBuildErrorTiers(t *testing.T) {
	st := editingState()
	ctx := plainCtx()

	st.ErrorCount = 0
	assert.NotContains(t, Build(st, ctx), "!")

	st.ErrorCount = 2
	line := Build(st, ctx)
	assert.Contains(t, line, "!")
	assert.NotContains(t, line, "!!")

	st.ErrorCount = 5
	assert.Contains(t, Build(st, ctx), "!!")
}

func TestBuildUpdateSegment(t *testing.T) {
	ctx := plainCtx()
	ctx.UpdateVersion = "1.4.0"

	assert.Contains(t, Build(editingState(), ctx), "v1.4.0")

	ctx.UpdateVersion = ""
	assert.NotContains(t, Build(editingState(), ctx), "v1.4.0")
}

func TestBuildDirectorySegment(t *testing.T) {
	ctx := plainCtx()
	ctx.Config.ShowCurrentDir = true
	ctx.CurrentDir = "/home/dev/projects/persona"

	assert.Contains(t, Build(editingState(), ctx), "persona")

	// No directory in the render request: segment drops out cleanly.
	ctx.CurrentDir = ""
	assert.NotContains(t, Build(editingState(), ctx), "  ")
}

func TestBuildEmptyJobOmitted(t *testing.T) {
	st := editingState()
	st.CurrentJob = ""
	st.Activity = state.ActivityThinking

	got := Build(st, plainCtx())
	assert.Contains(t, got, "Thinking •")
}

func TestBuildCustomSeparator(t *testing.T) {
	ctx := plainCtx()
	ctx.Config.Separator = "|"

	got := Build(editingState(), ctx)
	assert.Contains(t, got, " | ")
	assert.NotContains(t, got, "•")
}

func TestParseInput(t *testing.T) {
	in := ParseInput([]byte(`{
		"session_id": "abc",
		"model": {"display_name": "Claude Opus 4.1"},
		"workspace": {"current_dir": "/tmp/w"}
	}`))
	assert.Equal(t, "abc", in.SessionID)
	assert.Equal(t, "Claude Opus 4.1", in.ModelName)
	assert.Equal(t, "/tmp/w", in.CurrentDir)
}

func TestParseInputFallbacks(t *testing.T) {
	t.Setenv("CLAUDE_SESSION_ID", "")

	in := ParseInput([]byte(`not json at all`))
	assert.Equal(t, "claude_current", in.SessionID)
	assert.Equal(t, "Claude", in.ModelName)
	assert.Empty(t, in.CurrentDir)

	t.Setenv("CLAUDE_SESSION_ID", "env-session")
	in = ParseInput([]byte(`{}`))
	assert.Equal(t, "env-session", in.SessionID)
}
