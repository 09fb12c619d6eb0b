package styles

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config command output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file path followed by its effective
// settings in TOML form.
func (r *ConfigRenderer) RenderConfigInfo(path string, content []byte) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n  %s Config %s\n\n", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path))
	for _, line := range strings.Split(strings.TrimRight(string(content), "\n"), "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "["):
			sb.WriteString("  " + r.theme.Highlight.Render(trimmed) + "\n")
		case trimmed == "":
			sb.WriteString("\n")
		default:
			sb.WriteString("    " + r.theme.Normal.Render(trimmed) + "\n")
		}
	}
	return sb.String()
}

// RenderWritten renders the confirmation of a written file.
func (r *ConfigRenderer) RenderWritten(what, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s %s written to %s\n",
		iconStyle.Render(IconCheck),
		what,
		r.theme.Subtle.Render(path),
	)
}

// RenderExists renders the message shown when init finds an existing file.
func (r *ConfigRenderer) RenderExists(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)

	return fmt.Sprintf(
		"\n  %s %s already exists\n  %s\n",
		iconStyle.Render(IconWarning),
		r.theme.Subtle.Render(filepath.Base(path)),
		r.theme.Subtle.Render("Use --force to overwrite it with the defaults."),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
