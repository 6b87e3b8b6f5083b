package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// --- Theme Colors ---

var (
	ColorPrimary = lipgloss.Color("#7f57b4") // purple
	ColorAccent  = lipgloss.Color("#b45fa8") // magenta
	ColorText    = lipgloss.Color("#d7d9da") // main text
	ColorMuted   = lipgloss.Color("#9ba0bf") // muted text
	ColorSuccess = lipgloss.Color("#3f866b") // green
	ColorError   = lipgloss.Color("#c0505e") // red
	ColorWarning = lipgloss.Color("#c78854") // warning
	ColorBorder  = lipgloss.Color("#273540") // border
	ColorBlue    = lipgloss.Color("#4f7fb8") // blue
)

// --- Reusable Styles ---

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	BlueStyle = lipgloss.NewStyle().
			Foreground(ColorBlue)

	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)
)

// Divider returns a horizontal rule of the given width.
func Divider(width int) string {
	if width <= 0 {
		return ""
	}
	return DividerStyle.Render(strings.Repeat("=", width))
}

// Banner renders a title framed by dividers.
func Banner(title string, width int) string {
	return Divider(width) + "\n" + HeaderStyle.Render(title) + "\n" + Divider(width)
}

// Success, Failure, Warn, Info and Notice render one labeled status line.
func Success(format string, args ...any) string {
	return SuccessStyle.Render("✅ " + fmt.Sprintf(format, args...))
}

func Failure(format string, args ...any) string {
	return ErrorStyle.Render("❌ " + fmt.Sprintf(format, args...))
}

func Warn(format string, args ...any) string {
	return WarningStyle.Render("⚠️  " + fmt.Sprintf(format, args...))
}

func Info(format string, args ...any) string {
	return BlueStyle.Render(fmt.Sprintf(format, args...))
}

func Notice(format string, args ...any) string {
	return AccentStyle.Render(fmt.Sprintf(format, args...))
}

// Detail renders an indented "label: value" line; value is sanitized.
func Detail(label string, value any) string {
	return "   " + MutedStyle.Render(label+":") + " " + NormalStyle.Render(SanitizeOneLine(fmt.Sprint(value)))
}
