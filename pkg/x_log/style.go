package x_log

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

//
// ---------- IBM Carbon Colors ----------

const (
	ColorTeal40    = "#3ddbd9"
	ColorBlue60    = "#4589ff"
	ColorBlue40    = "#78a9ff"
	ColorBlue70    = "#0043ce"
	ColorBlueBase  = "#0f62fe"
	ColorRed60     = "#da1e28"
	ColorRedStrong = "#ff0000"
	ColorOrange40  = "#ff832b"
	ColorGray60    = "#8d8d8d"
	ColorGray10    = "#f4f4f4"
	ColorGray90    = "#262626"
)

//
// ---------- Styles Definition ----------

// Styles defines all formatting styles used for structured output
type Styles struct {
	Out               io.Writer                        // output target
	NoColor           bool                             // render plain text
	Timestamp         lipgloss.Style                   // style for timestamps
	Levels            map[zerolog.Level]lipgloss.Style // level-to-style mapping
	Keys              map[string]lipgloss.Style        // custom field keys
	DefaultKeyStyle   lipgloss.Style                   // fallback for unknown keys
	DefaultValueStyle lipgloss.Style                   // fallback for unknown values
}

// Render applies st unless colors are off.
func (s *Styles) Render(st lipgloss.Style, text string) string {
	if s.NoColor {
		return text
	}
	return st.Render(text)
}

//
// ---------- Theme Selectors ----------

// DefaultStylesByName returns a theme by name ("dark", "light")
func DefaultStylesByName(name string) *Styles {
	switch strings.ToLower(name) {
	case "light":
		return DefaultStylesLight()
	default:
		return DefaultStylesDark()
	}
}

//
// ---------- Console Formatter ----------

// ConsoleWriterWithStyles builds a zerolog.ConsoleWriter with styles
func ConsoleWriterWithStyles(styles *Styles) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        styles.Out,
		NoColor:    styles.NoColor,
		TimeFormat: "01-02 15:04:05",

		FormatLevel: func(i any) string {
			name := strings.ToLower(fmt.Sprint(i))
			lvl, err := zerolog.ParseLevel(name)
			short := strings.ToUpper(name)
			if len(short) > 3 {
				short = short[:3]
			}
			style, ok := styles.Levels[lvl]
			if err != nil || !ok {
				return short
			}
			return styles.Render(style, short)
		},

		FormatTimestamp: func(i any) string {
			return styles.Render(styles.Timestamp, fmt.Sprintf("[%s]", i))
		},

		FormatFieldName: func(i any) string {
			key := fmt.Sprint(i)
			style, ok := styles.Keys[key]
			if !ok {
				style = styles.DefaultKeyStyle
			}
			eqStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60))
			return styles.Render(style, key) + styles.Render(eqStyle, "=")
		},

		FormatFieldValue: func(i any) string {
			return styles.Render(styles.DefaultValueStyle, fmt.Sprint(i))
		},

		FormatMessage: func(i any) string {
			if i == nil {
				return ""
			}
			return styles.Render(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray10)), fmt.Sprint(i))
		},
	}
}

//
// ---------- Dark Theme ----------

func DefaultStylesDark() *Styles {
	return &Styles{
		Timestamp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGray60)),

		DefaultKeyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorBlue40)),

		DefaultValueStyle: lipgloss.NewStyle(),

		Levels: map[zerolog.Level]lipgloss.Style{
			zerolog.TraceLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60)),
			zerolog.DebugLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorTeal40)),
			zerolog.InfoLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue60)),
			zerolog.WarnLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorOrange40)),
			zerolog.ErrorLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed60)),
			zerolog.FatalLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRedStrong)),
		},

		Keys: map[string]lipgloss.Style{
			"key":     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)),
			"session": lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)),
			"module":  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)),
			"error":   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed60)),
		},
	}
}

//
// ---------- Light Theme ----------

func DefaultStylesLight() *Styles {
	return &Styles{
		Timestamp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGray60)),

		DefaultKeyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorBlueBase)),

		DefaultValueStyle: lipgloss.NewStyle(),

		Levels: map[zerolog.Level]lipgloss.Style{
			zerolog.TraceLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60)),
			zerolog.DebugLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue70)),
			zerolog.InfoLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue70)),
			zerolog.WarnLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorOrange40)),
			zerolog.ErrorLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed60)),
			zerolog.FatalLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRedStrong)),
		},

		Keys: map[string]lipgloss.Style{
			"key":     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlueBase)),
			"session": lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlueBase)),
			"module":  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlueBase)),
			"error":   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed60)),
		},
	}
}
