// Package version knows which build is running and whether a newer
// release exists. Network lookups happen only in explicit check paths and
// land in a small cache file; the statusline reads the cache and nothing
// else.
package version

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	github_ratelimit "github.com/gofri/go-github-ratelimit/v2/github_ratelimit"
	gh "github.com/google/go-github/v82/github"
	"golang.org/x/mod/semver"

	"github.com/persona-dev/persona/internal/fileio"
)

// Version is the running build, stamped via ldflags at release time.
var Version = "0.0.0-dev"

const (
	repoOwner = "persona-dev"
	repoName  = "persona"
	cacheTTL  = 24 * time.Hour
)

type cacheEntry struct {
	Latest    string    `json:"latest"`
	CheckedAt time.Time `json:"checked_at"`
}

// CachePath returns the version cache location, or "" when no cache
// directory is available (the check then simply runs uncached).
func CachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "persona", "version_cache.json")
}

// CachedLatest returns the cached release version when it is both fresh
// and newer than the running build, else "". It does one file read, takes
// no locks, and swallows every failure: this is the render path.
func CachedLatest() string {
	entry, ok := readCache(CachePath())
	if !ok || time.Since(entry.CheckedAt) > cacheTTL {
		return ""
	}
	if !IsNewer(entry.Latest, Version) {
		return ""
	}
	return entry.Latest
}

// Check returns the latest published release version (without the "v"
// prefix) and whether it is newer than the running build. A fresh cache
// answers without network unless force is set.
func Check(ctx context.Context, force bool) (string, bool, error) {
	path := CachePath()
	if !force {
		if entry, ok := readCache(path); ok && time.Since(entry.CheckedAt) <= cacheTTL {
			return entry.Latest, IsNewer(entry.Latest, Version), nil
		}
	}

	client := gh.NewClient(github_ratelimit.NewClient(nil))
	release, _, err := client.Repositories.GetLatestRelease(ctx, repoOwner, repoName)
	if err != nil {
		return "", false, fmt.Errorf("fetching latest release: %w", err)
	}
	latest := strings.TrimPrefix(release.GetTagName(), "v")
	if latest == "" {
		return "", false, fmt.Errorf("release %q has no usable tag", release.GetName())
	}

	writeCache(path, cacheEntry{Latest: latest, CheckedAt: time.Now()})
	return latest, IsNewer(latest, Version), nil
}

// IsNewer reports whether latest is a strictly newer semantic version
// than current. Unparseable versions compare as not newer.
func IsNewer(latest, current string) bool {
	l, c := canonical(latest), canonical(current)
	if !semver.IsValid(l) || !semver.IsValid(c) {
		return false
	}
	return semver.Compare(l, c) > 0
}

func canonical(v string) string {
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

func readCache(path string) (cacheEntry, bool) {
	if path == "" {
		return cacheEntry{}, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cacheEntry{}, false
	}
	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		slog.Debug("corrupt version cache, ignoring", "path", path, "error", err)
		return cacheEntry{}, false
	}
	return entry, true
}

// writeCache is best-effort: a failed write just means the next check
// hits the network again.
func writeCache(path string, entry cacheEntry) {
	if path == "" {
		return
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	err = fileio.WithLock(path, fileio.DefaultLockTimeout, func() error {
		return fileio.AtomicWrite(path, data, 0644)
	})
	if err != nil {
		slog.Debug("writing version cache failed", "path", path, "error", err)
	}
}
