package tui

const msgConfirmDelete = "Are you sure you want to delete this recipe?"

type confirmModel struct {
	name string
}

func (m confirmModel) View() string {
	content := msgConfirmDelete + "\n\n\"" + m.name + "\"\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}

// notice is a transient message shown after a mutation.
type notice struct {
	text    string
	isError bool
}

func (n notice) View() string {
	if n.text == "" {
		return ""
	}
	if n.isError {
		return errorStyle.Render(n.text)
	}
	return successStyle.Render(n.text)
}
