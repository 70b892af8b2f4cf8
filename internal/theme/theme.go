// Package theme owns the statusline's colors. Presets are ANSI-256
// palettes; individual colors can be overridden from a small YAML file so
// users can tune the line to their terminal without rebuilding.
package theme

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"dario.cat/mergo"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// Palette names an ANSI-256 color (as lipgloss accepts it) for every
// colored part of the statusline.
type Palette struct {
	Personality string `yaml:"personality"`
	Activity    string `yaml:"activity"`
	Job         string `yaml:"job"`
	Directory   string `yaml:"directory"`
	Warning     string `yaml:"warning"`
	Error       string `yaml:"error"`
	Success     string `yaml:"success"`
	Separator   string `yaml:"separator"`
	ModelOpus   string `yaml:"model_opus"`
	ModelSonnet string `yaml:"model_sonnet"`
	ModelHaiku  string `yaml:"model_haiku"`
	ModelOther  string `yaml:"model_other"`
}

// Dark is the default palette, tuned for dark terminals.
func Dark() Palette {
	return Palette{
		Personality: "15",
		Activity:    "14",
		Job:         "229",
		Directory:   "75",
		Warning:     "215",
		Error:       "203",
		Success:     "84",
		Separator:   "244",
		ModelOpus:   "213",
		ModelSonnet: "123",
		ModelHaiku:  "120",
		ModelOther:  "252",
	}
}

// Light trades brightness for contrast on light backgrounds.
func Light() Palette {
	return Palette{
		Personality: "238",
		Activity:    "26",
		Job:         "136",
		Directory:   "61",
		Warning:     "166",
		Error:       "124",
		Success:     "28",
		Separator:   "250",
		ModelOpus:   "127",
		ModelSonnet: "30",
		ModelHaiku:  "28",
		ModelOther:  "240",
	}
}

// ByName resolves a preset name. Unknown names fall back to Dark so a
// typo in the config never blanks the statusline.
func ByName(name string) Palette {
	if strings.EqualFold(name, "light") {
		return Light()
	}
	return Dark()
}

// Load returns the named preset with per-color overrides from the YAML
// file at path merged on top. A missing or unreadable file yields the
// plain preset; a broken file is logged and otherwise ignored.
func Load(name, path string) Palette {
	p := ByName(name)
	if path == "" {
		return p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Debug("unreadable theme overrides", "path", path, "error", err)
		}
		return p
	}

	var over Palette
	if err := yaml.Unmarshal(data, &over); err != nil {
		slog.Debug("invalid theme overrides", "path", path, "error", err)
		return p
	}
	if err := mergo.Merge(&p, over, mergo.WithOverride); err != nil {
		slog.Debug("merging theme overrides", "path", path, "error", err)
	}
	return p
}

// Styles are the ready-to-apply lipgloss styles for one render.
type Styles struct {
	Personality lipgloss.Style
	Activity    lipgloss.Style
	Job         lipgloss.Style
	Directory   lipgloss.Style
	Warning     lipgloss.Style
	Error       lipgloss.Style
	Success     lipgloss.Style
	Separator   lipgloss.Style

	modelOpus   lipgloss.Style
	modelSonnet lipgloss.Style
	modelHaiku  lipgloss.Style
	modelOther  lipgloss.Style
}

// NewStyles builds styles bound to a renderer for w. The color profile is
// pinned to ANSI-256: statusline output goes to a pipe, where lipgloss
// would otherwise strip all color.
func NewStyles(p Palette, w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)

	style := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Styles{
		Personality: style(p.Personality).Bold(true),
		Activity:    style(p.Activity),
		Job:         style(p.Job),
		Directory:   style(p.Directory),
		Warning:     style(p.Warning),
		Error:       style(p.Error),
		Success:     style(p.Success),
		Separator:   style(p.Separator),
		modelOpus:   style(p.ModelOpus),
		modelSonnet: style(p.ModelSonnet),
		modelHaiku:  style(p.ModelHaiku),
		modelOther:  style(p.ModelOther),
	}
}

// PlainStyles renders without any escape sequences, for the no-color
// preference.
func PlainStyles() Styles {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	s := r.NewStyle()
	return Styles{
		Personality: s, Activity: s, Job: s, Directory: s,
		Warning: s, Error: s, Success: s, Separator: s,
		modelOpus: s, modelSonnet: s, modelHaiku: s, modelOther: s,
	}
}

// Model returns the style for a model display name based on its family.
func (s Styles) Model(displayName string) lipgloss.Style {
	name := strings.ToLower(displayName)
	switch {
	case strings.Contains(name, "opus"):
		return s.modelOpus
	case strings.Contains(name, "sonnet"):
		return s.modelSonnet
	case strings.Contains(name, "haiku"):
		return s.modelHaiku
	default:
		return s.modelOther
	}
}
