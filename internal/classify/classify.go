// Package classify turns a single tool-use event plus the previous session
// state into the next session state. It is the pure core of the hook
// pipeline: no I/O, deterministic for a given (state, event, clock) triple.
package classify

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/persona-dev/persona/internal/personality"
	"github.com/persona-dev/persona/internal/state"
)

// jobBudget caps the displayed job descriptor. Long filenames keep their
// extension when trimmed.
const jobBudget = 20

// ToolEvent is one tool invocation as reported by the host. Fields the
// tool does not carry stay empty; classification treats empty as absent.
type ToolEvent struct {
	SessionID string
	Tool      string
	FilePath  string
	Command   string
	Pattern   string
	IsError   bool
}

// Apply computes the successor state for an event. The returned state is
// complete: activity, job, counters, and personality are all recomputed,
// so callers persist it as-is.
func Apply(prev state.SessionState, ev ToolEvent, now time.Time) state.SessionState {
	activity, job := activityFor(ev)

	next := prev
	if ev.SessionID != "" {
		next.SessionID = ev.SessionID
	}
	next.Activity = activity
	next.CurrentJob = job
	if activity == prev.Activity {
		next.ConsecutiveActions = prev.ConsecutiveActions + 1
	} else {
		next.ConsecutiveActions = 1
	}
	if ev.IsError {
		next.ErrorCount = prev.ErrorCount + 1
	}
	next.Personality = personality.Determine(personality.Input{
		Tool:        ev.Tool,
		FilePath:    ev.FilePath,
		Command:     ev.Command,
		Consecutive: next.ConsecutiveActions,
		ErrorCount:  next.ErrorCount,
		Now:         now,
	})
	next.LastUpdated = now
	return next
}

// activityFor maps a tool event onto an activity and a short job label.
// Unknown tools land on Thinking with no job rather than erroring.
func activityFor(ev ToolEvent) (state.Activity, string) {
	switch ev.Tool {
	case "Edit", "MultiEdit":
		job := trimFilename(ev.FilePath, jobBudget)
		if ev.Tool == "MultiEdit" {
			return state.ActivityRefactoring, job
		}
		return editActivity(ev.FilePath, state.ActivityEditing), job

	case "Write":
		return editActivity(ev.FilePath, state.ActivityWriting), trimFilename(ev.FilePath, jobBudget)

	case "Bash":
		if ev.Command == "" {
			return state.ActivityExecuting, ""
		}
		return bashActivity(ev.Command), commandJob(ev.Command)

	case "Read":
		return state.ActivityReading, trimFilename(ev.FilePath, jobBudget)

	case "Grep", "Glob":
		return state.ActivitySearching, trimPattern(ev.Pattern, jobBudget)
	}
	return state.ActivityThinking, ""
}

// editActivity refines an edit-like tool by file type: documentation and
// configuration get their own activities, everything else keeps the
// tool's base activity.
func editActivity(path string, base state.Activity) state.Activity {
	switch {
	case path == "":
		return base
	case isDocumentationFile(path):
		return state.ActivityDocumenting
	case isConfigFile(path):
		return state.ActivityConfiguring
	default:
		return base
	}
}

func bashActivity(cmd string) state.Activity {
	switch {
	case strings.Contains(cmd, " install") || strings.Contains(cmd, " add"):
		return state.ActivityInstalling
	case strings.Contains(cmd, " build") || strings.Contains(cmd, " compile") || strings.Contains(cmd, "make "):
		return state.ActivityBuilding
	case strings.Contains(cmd, "test") || strings.Contains(cmd, "spec"):
		return state.ActivityTesting
	case isDeployCommand(cmd):
		return state.ActivityDeploying
	case isNavigationCommand(cmd):
		return state.ActivityNavigating
	default:
		return state.ActivityExecuting
	}
}

func isDeployCommand(cmd string) bool {
	lower := strings.ToLower(cmd)
	for _, kw := range []string{
		"deploy", "docker", "kubectl", "k8s", "helm", "terraform", "ansible",
		"serverless", "sls ", "vercel", "netlify", "heroku", "aws ", "gcloud", "azure",
	} {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func isNavigationCommand(cmd string) bool {
	first, _, _ := strings.Cut(strings.TrimSpace(cmd), " ")
	switch first {
	case "ls", "cd", "pwd", "find", "tree", "mkdir", "rmdir", "mv", "cp", "rm":
		return true
	}
	return false
}

// commandJob keeps only the command's first token.
func commandJob(cmd string) string {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return "bash"
	}
	return fields[0]
}

// trimFilename reduces a path to its base name within maxLen runes,
// keeping the extension visible when it has to cut the middle out.
func trimFilename(path string, maxLen int) string {
	if path == "" {
		return ""
	}
	name := filepath.Base(path)
	runes := []rune(name)
	if len(runes) <= maxLen {
		return name
	}

	if dot := strings.LastIndex(name, "."); dot > 0 {
		ext := name[dot:]
		base := []rune(name[:dot])
		keep := maxLen - len([]rune(ext)) - 3
		if keep > 0 {
			if keep > len(base) {
				keep = len(base)
			}
			return string(base[:keep]) + "..." + ext
		}
	}
	return string(runes[:maxLen])
}

func trimPattern(p string, maxLen int) string {
	runes := []rune(p)
	if len(runes) <= maxLen {
		return p
	}
	return string(runes[:maxLen-3]) + "..."
}

func hasExtension(path string, exts ...string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return false
	}
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

func isDocumentationFile(path string) bool {
	lower := strings.ToLower(path)
	for _, kw := range []string{
		"readme", "docs/", "documentation", "guide", "tutorial",
		"changelog", "license", "contributing", "api-",
	} {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return hasExtension(path, "md", "rst", "txt", "adoc", "asciidoc")
}

func isConfigFile(path string) bool {
	lower := strings.ToLower(path)
	for _, kw := range []string{
		"config", "settings", ".env", "dockerfile", "makefile",
		"package.json", "tsconfig", "webpack", "babel", "eslint", "prettier",
		"tailwind", "cargo.toml", "pyproject.toml", "requirements.txt",
		"pipfile", "poetry.lock", "yarn.lock", "package-lock.json",
		"pnpm-lock.yaml", "go.mod", "go.sum", "composer.json", "gemfile",
		"podfile", "build.gradle", "pom.xml", "cmake",
	} {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return hasExtension(path, "json", "yaml", "yml", "toml", "ini", "conf", "cfg", "properties", "plist", "xml")
}
