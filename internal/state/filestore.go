package state

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// FileStore persists one JSON file per session in a shared directory,
// by default the OS temp directory. Writes go through a temp file plus
// rename so a reader racing a writer sees either the old or the new file,
// never a torn one. There is deliberately no locking: the hook fan-out
// produces last-writer-wins updates and that is the accepted semantics.
type FileStore struct {
	dir string
}

// NewFileStore creates a store rooted at dir. An empty dir means the OS
// temp directory.
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = os.TempDir()
	}
	return &FileStore{dir: dir}
}

// Path returns the state file path for a session id.
func (fs *FileStore) Path(sessionID string) string {
	return filepath.Join(fs.dir, "persona_state_"+sanitizeID(sessionID)+".json")
}

// Load implements Store. Missing and corrupt files both yield the default
// state; corruption is logged for diagnostics but never surfaced, since a
// stale statusline beats a broken one.
func (fs *FileStore) Load(sessionID string) (SessionState, error) {
	data, err := os.ReadFile(fs.Path(sessionID))
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Debug("unreadable session state, starting fresh", "session", sessionID, "error", err)
		}
		return Default(sessionID), nil
	}

	var st SessionState
	if err := json.Unmarshal(data, &st); err != nil {
		slog.Debug("corrupt session state, starting fresh", "session", sessionID, "error", err)
		return Default(sessionID), nil
	}
	st.normalize(sessionID)
	return st, nil
}

// Save implements Store via atomic replace. The temp file name carries the
// writer's PID so parallel hook processes never interleave writes into the
// same temp file; whichever rename lands last wins.
func (fs *FileStore) Save(st SessionState) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session state: %w", err)
	}

	path := fs.Path(st.SessionID)
	tmp := fmt.Sprintf("%s.%d.tmp", path, os.Getpid())
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing session state: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing session state: %w", err)
	}
	return nil
}

// ResetErrors implements Store.
func (fs *FileStore) ResetErrors(sessionID string) error {
	st, err := fs.Load(sessionID)
	if err != nil {
		return err
	}
	st.ErrorCount = 0
	return fs.Save(st)
}

// Delete implements Store.
func (fs *FileStore) Delete(sessionID string) error {
	err := os.Remove(fs.Path(sessionID))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session state: %w", err)
	}
	return nil
}

// sanitizeID maps a session identifier onto a filesystem-safe name.
// Session ids are opaque strings from the host; anything outside
// [A-Za-z0-9._-] becomes an underscore.
func sanitizeID(id string) string {
	if id == "" {
		return "unknown"
	}
	out := make([]byte, len(id))
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9',
			c == '.', c == '_', c == '-':
			out[i] = c
		default:
			out[i] = '_'
		}
	}
	return string(out)
}
