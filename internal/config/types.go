package config

// Config holds the display preferences for the statusline. Everything is
// cosmetic; classification never reads it.
type Config struct {
	ShowPersonality    bool   `json:"show_personality"`
	ShowActivity       bool   `json:"show_activity"`
	ShowCurrentJob     bool   `json:"show_current_job"`
	ShowCurrentDir     bool   `json:"show_current_dir"`
	ShowModel          bool   `json:"show_model"`
	ShowErrorIndicator bool   `json:"show_error_indicators"`
	ShowUpdate         bool   `json:"show_update"`
	UseIcons           bool   `json:"use_icons"`
	UseColors          bool   `json:"use_colors"`
	Separator          string `json:"separator"`
	Theme              string `json:"theme"`
}

// DefaultConfig returns the out-of-the-box preferences. The working
// directory is hidden by default; the rest of the line is on.
func DefaultConfig() Config {
	return Config{
		ShowPersonality:    true,
		ShowActivity:       true,
		ShowCurrentJob:     true,
		ShowCurrentDir:     false,
		ShowModel:          true,
		ShowErrorIndicator: true,
		ShowUpdate:         true,
		UseIcons:           true,
		UseColors:          true,
		Separator:          "•",
		Theme:              "dark",
	}
}
