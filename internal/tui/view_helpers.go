package tui

import (
	"fmt"
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// pageCount is ceil(total/limit), computed against the requested page size
// because the service reports the size of the returned window as its limit.
func pageCount(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// renderPagination returns an empty string when everything fits on one page.
func renderPagination(current, total int) string {
	if total <= 1 {
		return ""
	}

	prev := "‹ Previous (←)"
	if current <= 1 {
		prev = disabledStyle.Render(prev)
	}
	next := "Next (→) ›"
	if current >= total {
		next = disabledStyle.Render(next)
	}

	return fmt.Sprintf("%s   Page %d of %d   %s", prev, current, total, next)
}

func moveCursor(cursor, delta, size int) int {
	if size == 0 {
		return 0
	}
	return min(max(cursor+delta, 0), size-1)
}
