package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/okugula/work-kg-admin/models"
)

const pageSize = 15

// visibleRange returns the [from, to) window of n rows that keeps cursor on
// screen.
func visibleRange(n, cursor, size int) (int, int) {
	if n <= size {
		return 0, n
	}

	from := cursor - size/2
	if from < 0 {
		from = 0
	}
	if from+size > n {
		from = n - size
	}
	return from, from + size
}

func renderLoadError(err error) string {
	return errorStyle.Render("Не удалось загрузить: " + humanizeServerUnavailableError(err))
}

func renderStats(stats *models.Stats, err error) string {
	if err != nil {
		return renderLoadError(err)
	}
	if stats == nil {
		return "Нет данных"
	}

	var b strings.Builder
	b.WriteString("Показатель        │ Всего  │ Сегодня\n")
	b.WriteString("──────────────────┼────────┼────────\n")
	fmt.Fprintf(&b, "Вакансии          │ %s │ %d\n", cell(strconv.Itoa(stats.TotalJobs), 6), stats.TodayJobs)
	fmt.Fprintf(&b, "Активные вакансии │ %s │ -\n", cell(strconv.Itoa(stats.ActiveJobs), 6))
	fmt.Fprintf(&b, "Пользователи      │ %s │ %d\n", cell(strconv.Itoa(stats.TotalUsers), 6), stats.TodayUsers)
	fmt.Fprintf(&b, "Резюме            │ %s │ %d", cell(strconv.Itoa(stats.TotalResumes), 6), stats.TodayResumes)
	return b.String()
}

func renderJobsTable(jobs []models.Job, cursor int, err error) string {
	if err != nil {
		return renderLoadError(err)
	}
	if len(jobs) == 0 {
		return "Вакансий нет. n: добавить"
	}

	var b strings.Builder
	b.WriteString("  " + cell("ID", 5) + " │ " + cell("Название", 24) + " │ " + cell("Категория", 14) + " │ " +
		cell("Город", 10) + " │ " + cell("Зарплата", 14) + " │ " + cell("Статус", 9) + " │ Дата\n")

	from, to := visibleRange(len(jobs), cursor, pageSize)
	for i := from; i < to; i++ {
		j := jobs[i]
		b.WriteString(cursorMark(i == cursor))
		b.WriteString(cell(strconv.FormatInt(j.ID, 10), 5) + " │ ")
		b.WriteString(cell(j.Title, 24) + " │ ")
		b.WriteString(cell(j.Category, 14) + " │ ")
		b.WriteString(cell(j.City, 10) + " │ ")
		b.WriteString(cell(j.Salary, 14) + " │ ")
		b.WriteString(cell(yesNo(j.IsActive), 9) + " │ ")
		b.WriteString(formatDate(j.CreatedAt))
		b.WriteString("\n")
	}
	b.WriteString(countLabel(len(jobs), "вакансий"))
	return b.String()
}

func renderResumesTable(resumes []models.Resume, cursor int, err error) string {
	if err != nil {
		return renderLoadError(err)
	}
	if len(resumes) == 0 {
		return "Резюме нет"
	}

	var b strings.Builder
	b.WriteString("  " + cell("Имя", 20) + " │ " + cell("Специальность", 16) + " │ " + cell("Город", 10) + " │ " +
		cell("Опыт", 12) + " │ " + cell("Телефон", 16) + " │ Обновлено\n")

	from, to := visibleRange(len(resumes), cursor, pageSize)
	for i := from; i < to; i++ {
		r := resumes[i]
		b.WriteString(cursorMark(i == cursor))
		b.WriteString(cell(r.Name, 20) + " │ ")
		b.WriteString(cell(r.Specialty, 16) + " │ ")
		b.WriteString(cell(r.City, 10) + " │ ")
		b.WriteString(cell(r.Experience, 12) + " │ ")
		b.WriteString(cell(r.Phone, 16) + " │ ")
		b.WriteString(formatDate(r.UpdatedAt))
		b.WriteString("\n")
	}
	b.WriteString(countLabel(len(resumes), "резюме"))
	return b.String()
}

func renderUsersTable(users []models.User, cursor int, err error) string {
	if err != nil {
		return renderLoadError(err)
	}
	if len(users) == 0 {
		return "Пользователей нет"
	}

	var b strings.Builder
	b.WriteString("  " + cell("Имя", 20) + " │ " + cell("Telegram", 16) + " │ " + cell("Город", 10) + " │ " +
		cell("Роль", 10) + " │ " + cell("Телефон", 16) + " │ Регистрация\n")

	from, to := visibleRange(len(users), cursor, pageSize)
	for i := from; i < to; i++ {
		u := users[i]
		username := ""
		if u.Username != "" {
			username = "@" + u.Username
		}
		b.WriteString(cursorMark(i == cursor))
		b.WriteString(cell(u.FullName(), 20) + " │ ")
		b.WriteString(cell(username, 16) + " │ ")
		b.WriteString(cell(u.City, 10) + " │ ")
		b.WriteString(cell(u.Role, 10) + " │ ")
		b.WriteString(cell(u.Phone, 16) + " │ ")
		b.WriteString(formatDate(u.CreatedAt))
		b.WriteString("\n")
	}
	b.WriteString(countLabel(len(users), "пользователей"))
	return b.String()
}
