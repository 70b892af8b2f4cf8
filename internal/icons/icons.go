// Package icons holds the Nerd Font glyphs used across the statusline and
// CLI output. Everything here assumes a patched Nerd Font in the user's
// terminal; `persona init` warns about this during installation.
package icons

import (
	"strings"

	"github.com/persona-dev/persona/internal/state"
)

// Status and UI glyphs.
const (
	Check   = "\uf00c" // check mark
	Info    = "\uf129" // info circle
	Warning = "\uf071" // warning triangle
	Error   = "\uf057" // crossed circle
	Folder  = "\uf07b" // folder
	Gear    = "\uf013" // gear
	UpArrow = "\uf062" // arrow up, update available
)

// Model glyphs: Opus gets the crown, Sonnet the diamond, Haiku the leaf.
// Unknown models fall back to the north star.
const (
	ModelOpus    = "\uf521"
	ModelSonnet  = "\uf219"
	ModelHaiku   = "\uf06c"
	ModelDefault = "\uf3f5"
)

// activityIcons maps activities to glyphs. Not every activity carries one;
// most labels read fine on their own and the line stays shorter that way.
var activityIcons = map[state.Activity]string{
	state.ActivityExecuting:  "\uf0e7", // lightning
	state.ActivityReading:    "\uf06e", // eye
	state.ActivitySearching:  "\uf002", // magnifier
	state.ActivityDebugging:  "\uf188", // bug
	state.ActivityTesting:    "\uf0c3", // flask
	state.ActivityThinking:   "\uf0eb", // lightbulb
	state.ActivityBuilding:   "\uf0e9", // hammer
	state.ActivityInstalling: "\uf1c6", // package
	state.ActivityDeploying:  "\uf0c2", // cloud
	state.ActivityIdle:       "\uf236", // bed
}

// ForActivity returns the glyph for an activity, or "" when the activity
// renders without one.
func ForActivity(a state.Activity) string {
	return activityIcons[a]
}

// ForModel returns the glyph for a model display name based on its family.
func ForModel(displayName string) string {
	name := strings.ToLower(displayName)
	switch {
	case strings.Contains(name, "opus"):
		return ModelOpus
	case strings.Contains(name, "sonnet"):
		return ModelSonnet
	case strings.Contains(name, "haiku"):
		return ModelHaiku
	default:
		return ModelDefault
	}
}
