// Package settings edits Claude Code's settings.json to install and
// remove the statusline command and the hook entries. Edits are surgical:
// everything the user already has in the file survives untouched.
package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/persona-dev/persona/internal/fileio"
)

// hookEvents are the Claude Code hook points we attach to, with the hook
// subcommand each one runs.
var hookEvents = []struct {
	Event   string
	Type    string
	Matcher string
}{
	{"PreToolUse", "pre-tool", "*"},
	{"PostToolUse", "post-tool", "*"},
	{"UserPromptSubmit", "prompt-submit", ""},
	{"SessionEnd", "session-end", ""},
}

type hookCommand struct {
	Type    string `json:"type"`
	Command string `json:"command"`
}

type hookGroup struct {
	Matcher string        `json:"matcher,omitempty"`
	Hooks   []hookCommand `json:"hooks"`
}

// File is an in-memory settings.json being edited.
type File struct {
	path string
	data []byte
}

// DefaultPath returns ~/.claude/settings.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, ".claude", "settings.json"), nil
}

// Load reads the settings file. A missing file starts as an empty object;
// an existing but invalid file is an error, because blind edits on top of
// malformed JSON would destroy whatever the user had.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &File{path: path, data: []byte("{}")}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("settings file %s is not valid JSON", path)
	}
	return &File{path: path, data: data}, nil
}

// Backup copies the current on-disk settings aside and returns the backup
// path. No file on disk means nothing to back up.
func (f *File) Backup() (string, error) {
	if !fileio.Exists(f.path) {
		return "", nil
	}
	backup := f.path + ".backup." + time.Now().Format("20060102_150405")
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", fmt.Errorf("reading settings for backup: %w", err)
	}
	if err := os.WriteFile(backup, data, 0644); err != nil {
		return "", fmt.Errorf("writing settings backup: %w", err)
	}
	return backup, nil
}

// Install wires the statusline command and all hook entries for the given
// binary path. Running it twice replaces our previous entries instead of
// duplicating them.
func (f *File) Install(binary string) error {
	data, err := sjson.SetBytes(f.data, "statusLine", map[string]any{
		"type":    "command",
		"command": binary + " statusline",
		"padding": 0,
	})
	if err != nil {
		return fmt.Errorf("setting statusLine: %w", err)
	}
	f.data = data

	for _, ev := range hookEvents {
		group := hookGroup{
			Matcher: ev.Matcher,
			Hooks:   []hookCommand{{Type: "command", Command: binary + " hook " + ev.Type}},
		}
		if err := f.mergeHookGroup(ev.Event, group); err != nil {
			return err
		}
	}
	return nil
}

// Remove strips our statusline command and hook entries, leaving foreign
// ones alone. Hook arrays and the hooks object itself are dropped when
// they end up empty.
func (f *File) Remove() error {
	if isOurCommand(gjson.GetBytes(f.data, "statusLine.command").String()) {
		data, err := sjson.DeleteBytes(f.data, "statusLine")
		if err != nil {
			return fmt.Errorf("removing statusLine: %w", err)
		}
		f.data = data
	}

	for _, ev := range hookEvents {
		kept := keepForeignGroups(gjson.GetBytes(f.data, "hooks."+ev.Event))
		if err := f.setHookArray(ev.Event, kept); err != nil {
			return err
		}
	}

	hooks := gjson.GetBytes(f.data, "hooks")
	if hooks.Exists() && hooks.IsObject() && len(hooks.Map()) == 0 {
		data, err := sjson.DeleteBytes(f.data, "hooks")
		if err != nil {
			return fmt.Errorf("removing empty hooks object: %w", err)
		}
		f.data = data
	}
	return nil
}

// Installed reports whether any of our entries are present.
func (f *File) Installed() bool {
	if isOurCommand(gjson.GetBytes(f.data, "statusLine.command").String()) {
		return true
	}
	for _, ev := range hookEvents {
		for _, group := range gjson.GetBytes(f.data, "hooks."+ev.Event).Array() {
			if groupIsOurs(group) {
				return true
			}
		}
	}
	return false
}

// Save writes the settings back, pretty-printed, under an advisory lock.
func (f *File) Save() error {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, f.data, "", "  "); err != nil {
		return fmt.Errorf("formatting settings: %w", err)
	}
	pretty.WriteByte('\n')
	return fileio.WithLock(f.path, fileio.DefaultLockTimeout, func() error {
		return fileio.AtomicWrite(f.path, pretty.Bytes(), 0644)
	})
}

func (f *File) mergeHookGroup(event string, group hookGroup) error {
	kept := keepForeignGroups(gjson.GetBytes(f.data, "hooks."+event))
	raw, err := json.Marshal(group)
	if err != nil {
		return fmt.Errorf("marshaling hook group: %w", err)
	}
	kept = append(kept, json.RawMessage(raw))
	return f.setHookArray(event, kept)
}

// setHookArray replaces one hook event's array, deleting the key when the
// array is empty.
func (f *File) setHookArray(event string, groups []json.RawMessage) error {
	path := "hooks." + event
	if len(groups) == 0 {
		if !gjson.GetBytes(f.data, path).Exists() {
			return nil
		}
		data, err := sjson.DeleteBytes(f.data, path)
		if err != nil {
			return fmt.Errorf("removing %s hooks: %w", event, err)
		}
		f.data = data
		return nil
	}

	raw, err := json.Marshal(groups)
	if err != nil {
		return fmt.Errorf("marshaling %s hooks: %w", event, err)
	}
	data, err := sjson.SetRawBytes(f.data, path, raw)
	if err != nil {
		return fmt.Errorf("setting %s hooks: %w", event, err)
	}
	f.data = data
	return nil
}

// keepForeignGroups returns the hook groups under an event that are not
// ours, preserving their original JSON.
func keepForeignGroups(arr gjson.Result) []json.RawMessage {
	var kept []json.RawMessage
	for _, group := range arr.Array() {
		if !groupIsOurs(group) {
			kept = append(kept, json.RawMessage(group.Raw))
		}
	}
	return kept
}

func groupIsOurs(group gjson.Result) bool {
	for _, h := range group.Get("hooks").Array() {
		if isOurCommand(h.Get("command").String()) {
			return true
		}
	}
	return false
}

// isOurCommand recognizes our entries by subcommand, so the check holds
// for any install location of the binary.
func isOurCommand(cmd string) bool {
	return strings.Contains(cmd, "persona statusline") ||
		strings.Contains(cmd, "persona hook ")
}
