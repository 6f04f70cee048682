// SPDX-License-Identifier: EPL-2.0

package cli

import "github.com/charmbracelet/lipgloss"

var (
	accentColor  = lipgloss.Color("#FFA500")
	successColor = lipgloss.Color("#00AA00")
	errorColor   = lipgloss.Color("#DC143C")
	mutedColor   = lipgloss.Color("#888888")
)

var (
	pathStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	keyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)
)

func field(key string, value any) string {
	return keyStyle.Render(key+":") + " " + valueStyle.Render(fmtValue(value))
}
