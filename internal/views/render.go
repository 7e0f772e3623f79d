package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Palette holds the styles for one theme.
type Palette struct {
	Name      string
	Header    lipgloss.Style
	Welcome   lipgloss.Style
	Panel     lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
	Selected  lipgloss.Style
	Completed lipgloss.Style
	Overdue   lipgloss.Style
	DueSoon   lipgloss.Style
	High      lipgloss.Style
	Medium    lipgloss.Style
	Low       lipgloss.Style
	Active    lipgloss.Style
}

var (
	lightPalette = Palette{
		Name:      "light",
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
		Welcome:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Panel:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("250")).Padding(0, 1),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
		Completed: lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("246")),
		Overdue:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160")),
		DueSoon:   lipgloss.NewStyle().Foreground(lipgloss.Color("166")),
		High:      lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		Medium:    lipgloss.NewStyle().Foreground(lipgloss.Color("136")),
		Low:       lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		Active:    lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("25")),
	}
	darkPalette = Palette{
		Name:      "dark",
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Welcome:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Panel:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Completed: lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("242")),
		Overdue:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		DueSoon:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		High:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Medium:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Low:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Active:    lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("14")),
	}
)

// PaletteFor returns the dark palette for "dark" and the light one otherwise.
func PaletteFor(theme string) Palette {
	if theme == "dark" {
		return darkPalette
	}
	return lightPalette
}

type AppData struct {
	Theme      string
	Header     string
	Welcome    string
	Stats      string
	FilterBar  string
	Body       string
	Detail     string
	StatusLine string
	IsError    bool
	Overlay    string
	Footer     string
}

func RenderApp(data AppData) string {
	p := PaletteFor(data.Theme)

	top := p.Header.Render(data.Header)
	if data.Welcome != "" {
		top += "  " + p.Welcome.Render(data.Welcome)
	}
	lines := []string{top}
	if data.Stats != "" {
		lines = append(lines, p.Muted.Render(data.Stats))
	}
	if data.FilterBar != "" {
		lines = append(lines, data.FilterBar)
	}

	body := p.Panel.Width(64).Render(data.Body)
	if strings.TrimSpace(data.Detail) != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, p.Panel.Width(44).Render(data.Detail))
	}
	lines = append(lines, body)

	if data.StatusLine != "" {
		if data.IsError {
			lines = append(lines, p.Error.Render("error: "+data.StatusLine))
		} else {
			lines = append(lines, p.Status.Render(data.StatusLine))
		}
	}
	if data.Overlay != "" {
		lines = append(lines, p.Panel.Render(data.Overlay))
	}
	if data.Footer != "" {
		lines = append(lines, p.Muted.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderMarkdown renders a task description. Rendering failures fall back to
// the raw text.
func RenderMarkdown(md string, theme string, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "light"
	if theme == "dark" {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(glamour.WithStandardStyle(style), glamour.WithWordWrap(width))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
