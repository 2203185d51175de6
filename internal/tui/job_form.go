package tui

import (
	"context"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okugula/work-kg-admin/models"
)

type jobField int

const (
	fieldTitle jobField = iota
	fieldDescription
	fieldCategory
	fieldSubcategory
	fieldCity
	fieldSalary
	fieldPhone
	fieldCompany
	fieldActive
	jobFieldCount
)

// jobFormModel edits one job. jobID is 0 for a new job.
type jobFormModel struct {
	jobID int64

	title       textinput.Model
	description textarea.Model
	salary      textinput.Model
	phone       textinput.Model
	company     textinput.Model

	// catalog-backed values; a value missing from the catalog is kept as is
	// until the operator cycles it
	category    string
	subcategory string
	city        string
	isActive    bool

	focus      jobField
	submitting bool
	errMsg     string
}

func newTextInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 50
	return in
}

// newJobFormModel opens the form for job, or an empty active job when job is
// nil.
func newJobFormModel(job *models.Job) jobFormModel {
	description := textarea.New()
	description.Placeholder = "Описание вакансии"
	description.SetWidth(50)
	description.SetHeight(4)
	description.ShowLineNumbers = false

	m := jobFormModel{
		title:       newTextInput("Электрик", 200),
		description: description,
		salary:      newTextInput("от 40 000 сом", 100),
		phone:       newTextInput("+996 555 123 456", 50),
		company:     newTextInput("Компания", 200),
		isActive:    true,
	}

	if job != nil {
		m.jobID = job.ID
		m.title.SetValue(job.Title)
		m.description.SetValue(job.Description)
		m.salary.SetValue(job.Salary)
		m.phone.SetValue(job.Phone)
		m.company.SetValue(job.Company)
		m.category = job.Category
		m.subcategory = job.Subcategory
		m.city = job.City
		m.isActive = job.IsActive
	}

	m.setFocus(fieldTitle)
	return m
}

func (m jobFormModel) editing() bool {
	return m.jobID != 0
}

// toInput returns every editable field, the way the dashboard always sends
// the whole form.
func (m jobFormModel) toInput() models.JobInput {
	return models.JobInput{
		Title:       models.Ptr(strings.TrimSpace(m.title.Value())),
		Description: models.Ptr(strings.TrimSpace(m.description.Value())),
		Category:    models.Ptr(m.category),
		Subcategory: models.Ptr(m.subcategory),
		City:        models.Ptr(m.city),
		Salary:      models.Ptr(strings.TrimSpace(m.salary.Value())),
		Phone:       models.Ptr(strings.TrimSpace(m.phone.Value())),
		Company:     models.Ptr(strings.TrimSpace(m.company.Value())),
		IsActive:    models.Ptr(m.isActive),
	}
}

func (m jobFormModel) validate() string {
	return validationMessage(formValidator.Validate(context.Background(), m.toInput()))
}

func (m *jobFormModel) setFocus(f jobField) {
	m.title.Blur()
	m.description.Blur()
	m.salary.Blur()
	m.phone.Blur()
	m.company.Blur()

	m.focus = f
	switch f {
	case fieldTitle:
		m.title.Focus()
	case fieldDescription:
		m.description.Focus()
	case fieldSalary:
		m.salary.Focus()
	case fieldPhone:
		m.phone.Focus()
	case fieldCompany:
		m.company.Focus()
	}
}

func (m *jobFormModel) moveFocus(delta int) {
	next := (int(m.focus) + delta + int(jobFieldCount)) % int(jobFieldCount)
	m.setFocus(jobField(next))
}

// cycle moves value through options by delta. An empty or unknown value
// starts from the first option going forward and the last going back.
func cycle(options []string, value string, delta int) string {
	if len(options) == 0 {
		return value
	}

	idx := slices.Index(options, value)
	if idx < 0 {
		if delta > 0 {
			return options[0]
		}
		return options[len(options)-1]
	}

	return options[(idx+delta+len(options))%len(options)]
}

func categoryNames() []string {
	names := make([]string, 0, len(models.JobCategories))
	for _, c := range models.JobCategories {
		names = append(names, c.Name)
	}
	return names
}

func (m *jobFormModel) cycleSelect(delta int) {
	switch m.focus {
	case fieldCategory:
		next := cycle(categoryNames(), m.category, delta)
		if next != m.category {
			m.category = next
			m.subcategory = ""
		}
	case fieldSubcategory:
		m.subcategory = cycle(models.Subcategories(m.category), m.subcategory, delta)
	case fieldCity:
		m.city = cycle(models.JobCities, m.city, delta)
	case fieldActive:
		m.isActive = !m.isActive
	}
}

func (m jobFormModel) isSelectField() bool {
	switch m.focus {
	case fieldCategory, fieldSubcategory, fieldCity, fieldActive:
		return true
	}
	return false
}

// Update handles focus movement, catalog cycling and text entry. Saving and
// cancelling belong to the dashboard.
func (m jobFormModel) Update(msg tea.Msg) (jobFormModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.moveFocus(1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.moveFocus(-1)
			return m, nil
		case keyMsg.Type == tea.KeyEnter && m.focus != fieldDescription:
			m.moveFocus(1)
			return m, nil
		}

		if m.isSelectField() {
			switch {
			case key.Matches(keyMsg, keys.right), key.Matches(keyMsg, keys.toggle):
				m.cycleSelect(1)
			case key.Matches(keyMsg, keys.left):
				m.cycleSelect(-1)
			case keyMsg.Type == tea.KeyDown:
				m.moveFocus(1)
			case keyMsg.Type == tea.KeyUp:
				m.moveFocus(-1)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldTitle:
		m.title, cmd = m.title.Update(msg)
	case fieldDescription:
		m.description, cmd = m.description.Update(msg)
	case fieldSalary:
		m.salary, cmd = m.salary.Update(msg)
	case fieldPhone:
		m.phone, cmd = m.phone.Update(msg)
	case fieldCompany:
		m.company, cmd = m.company.Update(msg)
	}
	return m, cmd
}

func (m jobFormModel) selectView(f jobField, value string) string {
	v := valueOrDash(value)
	if m.focus == f {
		return "‹ " + v + " ›"
	}
	return v
}

func (m jobFormModel) View() string {
	title := "НОВАЯ ВАКАНСИЯ"
	if m.editing() {
		title = "РЕДАКТИРОВАНИЕ: " + fitText(m.title.Value(), 40)
	}

	active := "[ ]"
	if m.isActive {
		active = "[x]"
	}
	if m.focus == fieldActive {
		active = "‹ " + active + " ›"
	}

	var b strings.Builder
	b.WriteString("Название     " + cursorMark(m.focus == fieldTitle) + m.title.View() + "\n")
	b.WriteString("Описание     " + cursorMark(m.focus == fieldDescription) + "\n")
	b.WriteString(m.description.View() + "\n")
	b.WriteString("Категория    " + cursorMark(m.focus == fieldCategory) + m.selectView(fieldCategory, m.category) + "\n")
	b.WriteString("Подкатегория " + cursorMark(m.focus == fieldSubcategory) + m.selectView(fieldSubcategory, m.subcategory) + "\n")
	b.WriteString("Город        " + cursorMark(m.focus == fieldCity) + m.selectView(fieldCity, m.city) + "\n")
	b.WriteString("Зарплата     " + cursorMark(m.focus == fieldSalary) + m.salary.View() + "\n")
	b.WriteString("Телефон      " + cursorMark(m.focus == fieldPhone) + m.phone.View() + "\n")
	b.WriteString("Компания     " + cursorMark(m.focus == fieldCompany) + m.company.View() + "\n")
	b.WriteString("Активна      " + cursorMark(m.focus == fieldActive) + active + "  (видна пользователям)\n")

	if m.submitting {
		b.WriteString("\n[Сохранение...]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Ошибка: "+m.errMsg) + "\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: след. поле │ ←/→: выбрать │ пробел: переключить │ ctrl+s: сохранить │ esc: отмена")
}
