// Package output prints styled status lines to the terminal.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	InfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	DimStyle     = lipgloss.NewStyle().Faint(true)
)

// Stdout and Stderr are swapped out in tests.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func PrintSuccess(format string, args ...interface{}) {
	fmt.Fprintln(Stdout, SuccessStyle.Render(fmt.Sprintf(format, args...)))
}

func PrintError(format string, args ...interface{}) {
	fmt.Fprintln(Stderr, ErrorStyle.Render(fmt.Sprintf(format, args...)))
}

func PrintWarning(format string, args ...interface{}) {
	fmt.Fprintln(Stdout, WarningStyle.Render(fmt.Sprintf(format, args...)))
}

func PrintInfo(format string, args ...interface{}) {
	fmt.Fprintln(Stdout, InfoStyle.Render(fmt.Sprintf(format, args...)))
}

func PrintHeader(format string, args ...interface{}) {
	fmt.Fprintln(Stdout, HeaderStyle.Render(fmt.Sprintf(format, args...)))
}

// PrintList prints one dimmed, indented line per item.
func PrintList(items []string) {
	for _, item := range items {
		fmt.Fprintf(Stdout, "  %s\n", DimStyle.Render(item))
	}
}
