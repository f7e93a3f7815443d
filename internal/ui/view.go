package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/pokearena/arena/internal/theme"
)

const headerTitle = "Pokemon Arena"

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	styles := m.styles()
	current := m.session.Menu()

	lines := make([]styledLine, 0, 24)
	lines = append(lines, styledLine{text: m.Breadcrumb(), style: styles.Header})
	lines = append(lines, styledLine{text: current.Title, style: styles.Title})
	lines = append(lines, styledLine{})

	for i, item := range current.Items {
		lines = append(lines, buildItemLine(styles, item.Label, i == m.session.Cursor(), m.width))
	}

	if body := m.registry.DispatchRender(m.screenContext()); len(body) > 0 {
		lines = append(lines, styledLine{})
		for _, line := range body {
			lines = append(lines, styledLine{text: line, style: styles.Body})
		}
	}

	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.errMsg != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "Error: " + m.errMsg, style: styles.Error})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "↑/↓ move  enter select  esc back  f1 help  q quit", style: styles.Footer})
	}

	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

// buildItemLine constructs a single menu row. width is the target column
// width; when > 0 the text is padded so the selected item's background spans
// the full row.
func buildItemLine(styles theme.Styles, label string, selected bool, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if selected {
		lineStyle = styles.SelectedItem
		indicatorStyle = styles.SelectedItemIndicator
	}
	fullText := indicator + " " + label
	if width > 0 {
		if pad := width - len([]rune(fullText)); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		result[i] = line
		result[i].text = truncateText(line.text, width)
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

// truncateText trims a plain line to width columns with an ellipsis tail.
// Measurement is ANSI-aware so already wide glyphs count correctly.
func truncateText(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return string([]rune(text)[:1])
	}
	return truncate.StringWithTail(text, uint(width-1), "…")
}

// Breadcrumb renders the header line: the app name alone at the root, or the
// app name followed by the active menu's title once navigated into a screen.
func (m *Model) Breadcrumb() string {
	if m.session.AtRoot() {
		return headerTitle
	}
	return fmt.Sprintf("%s → %s", headerTitle, m.session.Menu().Title)
}
