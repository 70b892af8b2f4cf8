package personality

import (
	"strings"
	"time"
)

// Thresholds shared with the statusline's error indicator tiers.
const (
	ErrorWarnThreshold     = 3
	ErrorCriticalThreshold = 5

	streakBerserk = 20
	streakFocused = 10
	streakSearch  = 5
)

// Input is everything the rule table may look at for one event. FilePath
// and Command are empty when the tool does not carry them; the rules treat
// empty as "no match" rather than failing.
type Input struct {
	Tool        string
	FilePath    string
	Command     string
	Consecutive uint32
	ErrorCount  uint32
	Now         time.Time
}

// Determine resolves the personality label for an event. Rules are ordered
// and the first match wins, except for the two trailing overrides
// (performance and quality), which beat every earlier rule.
func Determine(in Input) string {
	face := baseFace(in)
	if f, ok := overrideFace(in); ok {
		face = f
	}
	return face.String()
}

func baseFace(in Input) Face {
	if in.ErrorCount >= ErrorCriticalThreshold {
		return TableFlipper
	}
	if in.ErrorCount >= ErrorWarnThreshold {
		return ErrorWarrior
	}

	if in.Tool == "Bash" {
		if strings.Contains(in.Command, "git ") {
			return GitManager
		}
		if containsAny(in.Command, "test", "spec") {
			return TestTaskmaster
		}
	}

	if in.Tool == "Grep" || in.Tool == "Glob" {
		if in.Consecutive > streakSearch {
			return SearchMaestro
		}
		return BugHunter
	}

	if f, ok := fileFace(in.FilePath); ok {
		return f
	}

	if in.Consecutive > streakBerserk {
		return CodeBerserker
	}
	if in.Consecutive > streakFocused {
		return Hyperfocused
	}

	if f, ok := toolFace(in); ok {
		return f
	}
	return timeFace(in.Now)
}

// overrideFace applies the cross-cutting performance and quality checks.
// Quality is evaluated second so it wins when both would match.
func overrideFace(in Input) (Face, bool) {
	face, ok := Face{}, false
	if isPerformanceTarget(in.FilePath) || isPerformanceTarget(in.Command) {
		face, ok = PerformanceTuner, true
	}
	if isQualityTarget(in.FilePath) {
		face, ok = QualityAuditor, true
	}
	return face, ok
}

// toolFace supplies per-tool defaults. Tools without one fall back to the
// time-of-day bucket.
func toolFace(in Input) (Face, bool) {
	switch in.Tool {
	case "Edit", "MultiEdit":
		return CodeWizardAlt, true
	case "Write":
		return GentleRefactorer, true
	case "Delete":
		return CodeJanitor, true
	case "Review":
		return CasualReviewer, true
	case "Read":
		if in.Consecutive > streakSearch {
			return SearchMaestro, true
		}
		return ResearchKing, true
	case "Bash":
		if f, ok := commandFace(in.Command); ok {
			return f, true
		}
		return CommandExplorer, true
	}
	return Face{}, false
}

// timeFace buckets the local wall clock into four ranges covering the full
// day. Friday evenings take precedence over the evening bucket.
func timeFace(now time.Time) Face {
	hour := now.Hour()
	if now.Weekday() == time.Friday && hour >= 17 {
		return TGIF
	}
	switch {
	case hour < 5:
		return NightOwl
	case hour < 8:
		return Caffeinated
	case hour < 18:
		return CodeWizard
	default:
		return NightShift
	}
}

// commandFace dispatches shell commands onto keyword families. Ordered so
// the more specific families match before the broad ones; git and test
// commands never reach here, the top-level rules take those first.
func commandFace(command string) (Face, bool) {
	switch {
	case containsAny(command, "deploy", "kubectl", "terraform", "ansible", "helm"):
		return DeploymentGuard, true
	case containsAny(command, "database", "sql", "mongo", "postgres", "mysql", "redis", "sqlite"):
		return DatabaseExpert, true
	case containsAny(command, "build", "compile", "make"):
		return CompilationWarrior, true
	case containsAny(command, "npm install", "yarn add", "pip install", "cargo add", "go get"):
		return DependencyWrangler, true
	case hasVerb(command, "ls", "cd", "mkdir", "rm", "mv", "cp", "find", "touch", "tree"):
		return FileExplorer, true
	case hasVerb(command, "ps", "kill", "killall") || containsAny(command, "top", "htop"):
		return TaskAssassin, true
	case containsAny(command, "curl", "wget", "ping"):
		return NetworkSentinel, true
	case hasVerb(command, "df") || containsAny(command, "free", "uname"):
		return SystemDetective, true
	case hasVerb(command, "sudo") || containsAny(command, "systemctl", "service"):
		return SystemAdmin, true
	case hasVerb(command, "chmod", "chown"):
		return PermissionPolice, true
	case hasVerb(command, "grep", "sed", "awk", "sort"):
		return StringSurgeon, true
	case hasVerb(command, "vim", "nvim", "nano", "code"):
		return EditorUser, true
	case hasVerb(command, "tar", "zip", "unzip"):
		return CompressionChef, true
	case hasVerb(command, "export", "source", "echo") || strings.Contains(command, "env"):
		return EnvironmentEnchanter, true
	case containsAny(command, "svn ", "hg ", "bzr "):
		return CodeHistorian, true
	case containsAny(command, "docker", "podman"):
		return ContainerCaptain, true
	}
	return Face{}, false
}

// fileFace matches the edited path against domain patterns. Ordered: the
// security check outranks everything, then content type by extension.
func fileFace(path string) (Face, bool) {
	if path == "" {
		return Face{}, false
	}
	lower := strings.ToLower(path)
	switch {
	case containsAny(lower, "auth", "security", "login", "passport", "jwt"):
		return SecurityAnalyst, true
	case containsAny(lower, "readme", "docs/", "documentation") || strings.HasSuffix(lower, ".md"):
		return DocumentationWriter, true
	case hasSuffixAny(lower, ".jsx", ".tsx", ".vue", ".svelte"):
		return UIDeveloper, true
	case hasSuffixAny(lower, ".js", ".ts", ".mjs"):
		return JSMaster, true
	case hasSuffixAny(lower, ".css", ".scss", ".sass", ".less"):
		return StyleArtist, true
	case hasSuffixAny(lower, ".html", ".ejs", ".pug", ".hbs"):
		return MarkupWizard, true
	case strings.Contains(lower, "config") || hasSuffixAny(lower, ".json", ".yaml", ".yml", ".toml"):
		return ConfigHelper, true
	}
	return Face{}, false
}

func isPerformanceTarget(s string) bool {
	return containsAny(strings.ToLower(s), "performance", "benchmark", "profil", "metric")
}

func isQualityTarget(path string) bool {
	return containsAny(strings.ToLower(path), "lint", "eslint", "prettier", "format", "quality")
}

func hasSuffixAny(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// hasVerb reports whether the command's first token is one of the verbs.
func hasVerb(command string, verbs ...string) bool {
	first, _, _ := strings.Cut(strings.TrimSpace(command), " ")
	for _, v := range verbs {
		if first == v {
			return true
		}
	}
	return false
}
