package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := "Вы уверены, что хотите удалить эту вакансию?\n\n"
	content += "\"" + m.message + "\"\n\n"
	content += "y да    n нет"
	return overlayBoxStyle.Render(content)
}
