package tui

import (
	"strconv"
	"strings"

	"github.com/okugula/work-kg-admin/models"
)

type userDetailModel struct {
	user models.User
}

func (m userDetailModel) View() string {
	u := m.user

	username := ""
	if u.Username != "" {
		username = "@" + u.Username
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(valueOrDash(u.FullName())) + "\n\n")
	b.WriteString("ID:            " + strconv.FormatInt(u.ID, 10) + "\n")
	b.WriteString("Telegram ID:   " + strconv.FormatInt(u.TelegramID, 10) + "\n")
	b.WriteString("Username:      " + valueOrDash(username) + "\n")
	b.WriteString("Телефон:       " + valueOrDash(u.Phone) + "\n")
	b.WriteString("Город:         " + valueOrDash(u.City) + "\n")
	b.WriteString("Специальность: " + valueOrDash(u.Specialty) + "\n")
	b.WriteString("Опыт:          " + valueOrDash(u.Experience) + "\n")
	b.WriteString("Роль:          " + valueOrDash(u.Role) + "\n")
	b.WriteString("Регистрация:   " + formatDateTime(u.CreatedAt) + "\n\n")
	b.WriteString(helpStyle.Render("c копировать телефон    enter / esc закрыть"))

	return overlayBoxStyle.Render(b.String())
}
