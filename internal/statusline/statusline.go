// Package statusline turns a session state plus render context into the
// single styled line Claude Code displays. Building is pure: every lookup
// (preferences, styles, cached update) arrives through the Context, and
// the same inputs always produce the same bytes.
package statusline

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/persona-dev/persona/internal/config"
	"github.com/persona-dev/persona/internal/icons"
	"github.com/persona-dev/persona/internal/personality"
	"github.com/persona-dev/persona/internal/state"
	"github.com/persona-dev/persona/internal/theme"
)

// Input is the render request Claude Code writes to stdin.
type Input struct {
	SessionID  string
	ModelName  string
	CurrentDir string
}

// ParseInput extracts the fields we use from the render request. Parsing
// is lenient: missing keys get fallbacks, garbage yields the same result
// as an empty object, and nothing here can fail.
func ParseInput(data []byte) Input {
	in := Input{
		SessionID:  gjson.GetBytes(data, "session_id").String(),
		ModelName:  gjson.GetBytes(data, "model.display_name").String(),
		CurrentDir: gjson.GetBytes(data, "workspace.current_dir").String(),
	}
	if in.SessionID == "" {
		in.SessionID = os.Getenv("CLAUDE_SESSION_ID")
	}
	if in.SessionID == "" {
		in.SessionID = "claude_current"
	}
	if in.ModelName == "" {
		in.ModelName = "Claude"
	}
	return in
}

// Context carries everything the renderer needs besides the state.
type Context struct {
	Config     config.Config
	Styles     theme.Styles
	ModelName  string
	CurrentDir string

	// UpdateVersion is the cached newer release (without the "v"
	// prefix), or empty when the running build is current. The render
	// path never checks the network; a prior invocation filled this.
	UpdateVersion string
}

// Build assembles the statusline. Disabled or empty segments are skipped
// together with their separators, so the line never starts or ends with
// one and never shows two in a row.
func Build(st state.SessionState, ctx Context) string {
	cfg := ctx.Config

	var parts []string
	add := func(segment string) {
		if segment != "" {
			parts = append(parts, segment)
		}
	}

	if cfg.ShowPersonality {
		add(ctx.Styles.Personality.Render(st.Personality))
	}
	if cfg.ShowCurrentDir {
		add(directorySegment(ctx))
	}
	if cfg.ShowActivity {
		add(activitySegment(st, ctx))
	}
	if cfg.ShowErrorIndicator {
		add(errorSegment(st.ErrorCount, ctx))
	}
	if cfg.ShowModel {
		add(modelSegment(ctx))
	}
	if cfg.ShowUpdate {
		add(updateSegment(ctx))
	}

	sep := " " + ctx.Styles.Separator.Render(cfg.Separator) + " "
	return strings.Join(parts, sep)
}

func directorySegment(ctx Context) string {
	if ctx.CurrentDir == "" {
		return ""
	}
	name := filepath.Base(ctx.CurrentDir)
	if ctx.Config.UseIcons {
		name = icons.Folder + " " + name
	}
	return ctx.Styles.Directory.Render(name)
}

func activitySegment(st state.SessionState, ctx Context) string {
	var parts []string
	if ctx.Config.UseIcons {
		if icon := icons.ForActivity(st.Activity); icon != "" {
			parts = append(parts, ctx.Styles.Activity.Render(icon))
		}
	}
	parts = append(parts, ctx.Styles.Activity.Render(string(st.Activity)))
	if ctx.Config.ShowCurrentJob && st.CurrentJob != "" {
		parts = append(parts, ctx.Styles.Job.Render(st.CurrentJob))
	}
	return strings.Join(parts, " ")
}

// errorSegment shows nothing until the first error, the warning glyph
// below the critical threshold, and the error glyph at or above it.
func errorSegment(errorCount uint32, ctx Context) string {
	if errorCount == 0 {
		return ""
	}
	if errorCount >= personality.ErrorCriticalThreshold {
		glyph := icons.Error
		if !ctx.Config.UseIcons {
			glyph = "!!"
		}
		return ctx.Styles.Error.Render(glyph)
	}
	glyph := icons.Warning
	if !ctx.Config.UseIcons {
		glyph = "!"
	}
	return ctx.Styles.Warning.Render(glyph)
}

func modelSegment(ctx Context) string {
	if ctx.ModelName == "" {
		return ""
	}
	label := ctx.ModelName
	if ctx.Config.UseIcons {
		label = icons.ForModel(ctx.ModelName) + " " + label
	}
	return ctx.Styles.Model(ctx.ModelName).Render("[" + label + "]")
}

func updateSegment(ctx Context) string {
	if ctx.UpdateVersion == "" {
		return ""
	}
	label := "v" + ctx.UpdateVersion
	if ctx.Config.UseIcons {
		label = icons.UpArrow + " " + label
	}
	return ctx.Styles.Success.Render(label)
}
