package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jitterbugs/jitterkit/internal/model"
)

// Adaptive colors that work in both light and dark terminals.
var (
	ColorSuccess = lipgloss.AdaptiveColor{Dark: "#22c55e", Light: "#16a34a"}
	ColorError   = lipgloss.AdaptiveColor{Dark: "#ef4444", Light: "#dc2626"}
	ColorWarning = lipgloss.AdaptiveColor{Dark: "#f59e0b", Light: "#d97706"}
	ColorMuted   = lipgloss.AdaptiveColor{Dark: "#6b7280", Light: "#9ca3af"}
	ColorAccent  = lipgloss.AdaptiveColor{Dark: "#a78bfa", Light: "#7c3aed"}
	ColorURL     = lipgloss.AdaptiveColor{Dark: "#38bdf8", Light: "#0284c7"}
)

var (
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleURL     = lipgloss.NewStyle().Foreground(ColorURL)
	StyleBold    = lipgloss.NewStyle().Bold(true)
)

const (
	IconSuccess = "✓"
	IconError   = "✗"
	IconWarning = "!"
	IconInfo    = "→"
)

func printStatus(w io.Writer, icon string, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", icon, fmt.Sprintf(format, args...))
}

// PrintSuccess prints a message with a green checkmark.
func PrintSuccess(format string, args ...any) {
	printStatus(os.Stdout, StyleSuccess.Render(IconSuccess), format, args...)
}

// PrintError prints a message with a red X to stderr.
func PrintError(format string, args ...any) {
	printStatus(os.Stderr, StyleError.Render(IconError), format, args...)
}

// PrintWarning prints a message with an amber icon to stderr.
func PrintWarning(format string, args ...any) {
	printStatus(os.Stderr, StyleWarning.Render(IconWarning), format, args...)
}

// PrintInfo prints a message with a muted arrow.
func PrintInfo(format string, args ...any) {
	printStatus(os.Stdout, StyleMuted.Render(IconInfo), format, args...)
}

func RenderURL(url string) string    { return StyleURL.Render(url) }
func RenderMuted(text string) string { return StyleMuted.Render(text) }
func RenderBold(text string) string  { return StyleBold.Render(text) }

// ColorSwatch renders a two cell block in hexColor.
func ColorSwatch(hexColor string) string {
	return swatch(hexColor, 2)
}

// ColorSwatchWide renders a wider block for a single color card.
func ColorSwatchWide(c model.Color) string {
	return swatch(c.Hex(), 8)
}

func swatch(hexColor string, width int) string {
	style := StyleMuted
	if hexColor != "" {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor))
	}
	return style.Render(strings.Repeat("█", width))
}

// Box renders content in a rounded muted border.
func Box(content string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Padding(0, 1).
		Render(content)
}

// TitleBox renders a bold heading in an accent border.
func TitleBox(title string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorAccent).
		Padding(0, 2).
		Bold(true).
		Render(title)
}

// LabelValue right-aligns label in labelWidth cells, then prints value.
func LabelValue(label, value string, labelWidth int) string {
	labelStyle := lipgloss.NewStyle().
		Width(labelWidth).
		Align(lipgloss.Right).
		Foreground(ColorMuted)
	return fmt.Sprintf("%s %s", labelStyle.Render(label+":"), value)
}
