// Package ui owns terminal output: lipgloss styles, the structured logger,
// and the small callout helpers the commands print through.
package ui

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Logger is the package-level structured logger. Warning and Error route
// through it; call sites with context attach key/value fields directly.
var Logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

// Styles — initialized in Init().
var (
	headerStyle  lipgloss.Style
	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	dimStyle     lipgloss.Style
	boldStyle    lipgloss.Style
)

// Init sets up color detection, lipgloss styles, and the structured logger.
// Call this once at CLI startup.
func Init(noColorFlag bool) {
	noColor := noColorFlag || os.Getenv("NO_COLOR") != ""

	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	warningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	dimStyle = lipgloss.NewStyle().Faint(true)
	boldStyle = lipgloss.NewStyle().Bold(true)

	Logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if noColor {
		Logger.SetStyles(log.DefaultStyles())
	}
}

func Bold(s string) string   { return boldStyle.Render(s) }
func Dim(s string) string    { return dimStyle.Render(s) }
func Red(s string) string    { return errorStyle.Render(s) }
func Green(s string) string  { return successStyle.Render(s) }
func Yellow(s string) string { return warningStyle.Render(s) }

// Success prints a green checkmark line.
func Success(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", successStyle.Render("✓"), msg)
}

// Warning logs a warning through the structured logger.
func Warning(msg string) {
	Logger.Warn(msg)
}

// Error logs an error through the structured logger.
func Error(msg string) {
	Logger.Error(msg)
}

// Info prints a dim informational line.
func Info(msg string) {
	fmt.Fprintln(os.Stderr, dimStyle.Render(msg))
}

// Detail prints an indented key/value line.
func Detail(key, value string) {
	fmt.Fprintf(os.Stderr, "  %s %s\n", dimStyle.Render(key), value)
}

// KeyValue prints an aligned bold key with its value.
func KeyValue(key, value string) {
	fmt.Fprintf(os.Stderr, "  %s %s\n", boldStyle.Render(key), value)
}

// SectionHeader prints a bold section label.
func SectionHeader(label string) {
	fmt.Fprintf(os.Stderr, "\n%s\n", headerStyle.Render(label))
}

// EmptyState prints a dim placeholder for empty listings.
func EmptyState(msg string) {
	fmt.Fprintln(os.Stderr, dimStyle.Render("  "+msg))
}

// Table prints an aligned table to stdout.
func Table(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}
