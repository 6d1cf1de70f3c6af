package tui

import (
	"strings"
)

const uiDivider = "──────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	if hotKeys != "" {
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}

	return appStyle.Render(b.String())
}

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func mask(v string) string {
	if v == "" {
		return "-"
	}
	return strings.Repeat("•", 8)
}
