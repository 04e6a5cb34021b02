package tui

import (
	"fmt"
	"strings"

	"github.com/mmcdole/shelf/internal/domain"
	"github.com/mmcdole/shelf/internal/tui/styles"
)

// renderHeader shows the catalog name with live counts
func (m Model) renderHeader() string {
	s := m.cat.Statistics()
	counts := fmt.Sprintf("%s  %s  %s",
		styles.RenderStatus(true, fmt.Sprintf("%d %s", s.Available, m.locale.StatusAvailable)),
		styles.RenderStatus(false, fmt.Sprintf("%d %s", s.Borrowed, m.locale.StatusBorrowed)),
		styles.DimStyle.Render(fmt.Sprintf(m.locale.TotalFormat, s.Total)),
	)
	return styles.HeaderStyle.Render(m.cat.Name()) + "\n" + counts
}

// renderFilterLine shows the title query and active view filters
func (m Model) renderFilterLine() string {
	var parts []string
	if m.Filtering || m.Filter.Value() != "" {
		parts = append(parts, m.Filter.View())
	}

	kind := m.locale.AllKinds
	if m.KindFilter != allKinds {
		kind = m.locale.KindName(domain.Kinds[m.KindFilter])
	}
	parts = append(parts, styles.SubtitleStyle.Render("["+kind+"]"))

	if m.AvailableOnly {
		parts = append(parts, styles.AccentStyle.Render("["+m.locale.AvailableOnly+"]"))
	}
	return strings.Join(parts, " ")
}

func (m Model) renderStatus() string {
	switch {
	case m.StatusMsg == "":
		if len(m.Rows) == 0 {
			return styles.DimStyle.Render(m.locale.NoMatches)
		}
		return ""
	case m.StatusIsErr:
		return styles.ErrorStyle.Render(m.StatusMsg)
	default:
		return styles.SuccessStyle.Render(m.StatusMsg)
	}
}

func (m Model) renderHelp() string {
	bindings := m.keys.helpBindings()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, styles.HelpKeyStyle.Render(h.Key)+" "+styles.HelpDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}
