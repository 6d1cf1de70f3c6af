package tui

type confirmModel struct {
	name string
}

func (m confirmModel) View() string {
	content := "Remove \"" + m.name + "\"? This cannot be undone.\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
