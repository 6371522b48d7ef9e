package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
)

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorRosewater lipgloss.Color = "#f5e0dc"
	colorFlamingo  lipgloss.Color = "#f2cdcd"
	colorPink      lipgloss.Color = "#f5c2e7"
	colorMauve     lipgloss.Color = "#cba6f7"
	colorRed       lipgloss.Color = "#f38ba8"
	colorMaroon    lipgloss.Color = "#eba0ac"
	colorPeach     lipgloss.Color = "#fab387"
	colorYellow    lipgloss.Color = "#f9e2af"
	colorGreen     lipgloss.Color = "#a6e3a1"
	colorTeal      lipgloss.Color = "#94e2d5"
	colorSky       lipgloss.Color = "#89dceb"
	colorSapphire  lipgloss.Color = "#74c7ec"
	colorBlue      lipgloss.Color = "#89b4fa"
	colorLavender  lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

// Semantic color aliases.
const (
	colorAccent  = colorMauve
	colorFocus   = colorLavender
	colorTitle   = colorBlue
	colorBorder  = colorSurface1
	colorMuted   = colorOverlay0
	colorSurface = colorSurface0
	colorFailure = colorRed
)

// AllPaletteColors returns every palette color, in declaration order.
func AllPaletteColors() []lipgloss.Color {
	return []lipgloss.Color{
		colorRosewater, colorFlamingo, colorPink, colorMauve,
		colorRed, colorMaroon, colorPeach, colorYellow,
		colorGreen, colorTeal, colorSky, colorSapphire,
		colorBlue, colorLavender,
		colorText, colorSubtext0, colorOverlay0,
		colorSurface1, colorSurface0, colorBase,
	}
}

// Theme is the set of styles widgets render with. The zero value renders
// everything unstyled; use [DefaultTheme] or [LoadTheme] for a usable one.
type Theme struct {
	Title  lipgloss.Style // window title bar
	Text   lipgloss.Style // labels and plain widget text
	Muted  lipgloss.Style // placeholders and inactive decoration
	Accent lipgloss.Style // selection markers and combo arrows
	Focus  lipgloss.Style // the widget holding input focus
	Border lipgloss.Style // frame borders
	Button lipgloss.Style // button face
	Canvas lipgloss.Style // canvas fill
	Error  lipgloss.Style // failure reporting
}

// themeColors is the on-disk shape of a theme: one hex color per role.
type themeColors struct {
	Text    string
	Muted   string
	Accent  string
	Focus   string
	Title   string
	Border  string
	Surface string
	Error   string
}

func defaultColors() themeColors {
	return themeColors{
		Text:    string(colorText),
		Muted:   string(colorMuted),
		Accent:  string(colorAccent),
		Focus:   string(colorFocus),
		Title:   string(colorTitle),
		Border:  string(colorBorder),
		Surface: string(colorSurface),
		Error:   string(colorFailure),
	}
}

func makeTheme(c themeColors) Theme {
	text := lipgloss.Color(c.Text)
	focus := lipgloss.Color(c.Focus)

	return Theme{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Title)).
			Padding(0, 1),
		Text:   lipgloss.NewStyle().Foreground(text),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Muted)),
		Accent: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Accent)),
		Focus:  lipgloss.NewStyle().Bold(true).Foreground(focus),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Border)),
		Button: lipgloss.NewStyle().Foreground(text).Padding(0, 1),
		Canvas: lipgloss.NewStyle().Background(lipgloss.Color(c.Surface)),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Error)),
	}
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return makeTheme(defaultColors())
}

// LoadTheme reads theme overrides from a theme.toml file in dir, falling
// back to the defaults for every color the file does not set. Environment
// variables of the form TEADOC_COLOR_<ROLE> override both. A missing file
// is not an error.
func LoadTheme(dir string) (Theme, error) {
	v := viper.New()

	defaults := defaultColors()
	v.SetDefault("color.text", defaults.Text)
	v.SetDefault("color.muted", defaults.Muted)
	v.SetDefault("color.accent", defaults.Accent)
	v.SetDefault("color.focus", defaults.Focus)
	v.SetDefault("color.title", defaults.Title)
	v.SetDefault("color.border", defaults.Border)
	v.SetDefault("color.surface", defaults.Surface)
	v.SetDefault("color.error", defaults.Error)

	v.SetConfigType("toml")
	v.SetConfigName("theme")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("TEADOC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read the theme file if present; defaults cover its absence.
	_ = v.ReadInConfig()

	var c struct{ Color themeColors }
	if err := v.Unmarshal(&c); err != nil {
		return Theme{}, ErrThemeConfig.Wrap(err)
	}

	return makeTheme(c.Color), nil
}
