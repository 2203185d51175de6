// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/okugula/work-kg-admin/internal/app"
	"github.com/okugula/work-kg-admin/internal/service"
	"github.com/okugula/work-kg-admin/models"
)

type dashboardTab int

const (
	tabStats dashboardTab = iota
	tabResumes
	tabJobs
	tabUsers
	tabCount
)

var tabTitles = [tabCount]string{"Панель", "Резюме", "Вакансии", "Пользователи"}

type dashboardMode int

const (
	modeList dashboardMode = iota
	modeForm
	modeConfirm
	modeError
	modeUserDetail
)

const statusTTL = 3 * time.Second

// dashboardModel is the main screen: a tabbed view over the loaded dashboard
// with job editing on the jobs tab. The program quits when the operator logs
// out or quits; logout tells the two apart.
type dashboardModel struct {
	ctx      context.Context
	services *service.ClientServices
	session  models.Session

	data    models.Dashboard
	loading bool
	tab     dashboardTab
	cursor  [tabCount]int
	mode    dashboardMode

	form          jobFormModel
	confirm       confirmModel
	errOverlay    errorOverlayModel
	userDetail    userDetailModel
	pendingDelete int64

	status string
	logout bool

	copy func(string) error
}

func newDashboardModel(ctx context.Context, services *service.ClientServices, session models.Session) dashboardModel {
	return dashboardModel{
		ctx:      ctx,
		services: services,
		session:  session,
		loading:  true,
		copy:     clipboard.WriteAll,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		return m.onLoaded(msg)

	case jobSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.form.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.mode = modeList
		if msg.created {
			m.status = app.MsgJobCreated
		} else {
			m.status = app.MsgJobSaved
		}
		m.loading = true
		return m, tea.Batch(m.cmdLoad(), clearStatusAfter(statusTTL))

	case jobDeletedMsg:
		m.pendingDelete = 0
		if msg.err != nil {
			m.showError(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.status = app.MsgJobDeleted
		m.loading = true
		return m, tea.Batch(m.cmdLoad(), clearStatusAfter(statusTTL))

	case copiedMsg:
		if msg.err != nil {
			m.status = app.MsgCopyFailed + msg.err.Error()
		} else {
			m.status = app.MsgPhoneCopied
		}
		return m, clearStatusAfter(statusTTL)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		return m.onKey(msg)
	}

	if m.mode == modeForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m dashboardModel) onLoaded(msg dashboardLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.data = msg.dash
	m.clampCursors()

	switch {
	case isSessionExpired(msg.err):
		m.status = app.MsgSessionExpired
	case msg.err != nil && !msg.background:
		m.status = app.MsgPartialLoad
	}

	return m, nil
}

func (m dashboardModel) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeForm:
		return m.onFormKey(msg)

	case modeConfirm:
		switch {
		case key.Matches(msg, keys.yes):
			m.mode = modeList
			m.status = app.MsgDeleting
			return m, m.cmdDelete(m.pendingDelete)
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.mode = modeList
			m.pendingDelete = 0
		}
		return m, nil

	case modeError:
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.mode = modeList
		}
		return m, nil

	case modeUserDetail:
		switch {
		case key.Matches(msg, keys.enter), key.Matches(msg, keys.esc):
			m.mode = modeList
		case key.Matches(msg, keys.copy):
			return m, m.cmdCopy(m.userDetail.user.Phone)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.reload):
		m.loading = true
		return m, m.cmdLoad()
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.right):
		m.tab = (m.tab + 1) % tabCount
	case key.Matches(msg, keys.backtab), key.Matches(msg, keys.left):
		m.tab = (m.tab + tabCount - 1) % tabCount
	case key.Matches(msg, keys.up):
		if m.cursor[m.tab] > 0 {
			m.cursor[m.tab]--
		}
	case key.Matches(msg, keys.down):
		if m.cursor[m.tab] < m.rowCount(m.tab)-1 {
			m.cursor[m.tab]++
		}
	case key.Matches(msg, keys.copy):
		if phone, ok := m.selectedPhone(); ok {
			return m, m.cmdCopy(phone)
		}
		m.status = app.MsgNoPhone
		return m, clearStatusAfter(statusTTL)
	case key.Matches(msg, keys.enter):
		if m.tab == tabUsers && len(m.data.Users) > 0 {
			m.userDetail = userDetailModel{user: m.data.Users[m.cursor[tabUsers]]}
			m.mode = modeUserDetail
		}
	case key.Matches(msg, keys.newItem):
		if m.tab == tabJobs {
			m.form = newJobFormModel(nil)
			m.mode = modeForm
		}
	case key.Matches(msg, keys.edit):
		if job, ok := m.selectedJob(); ok {
			m.form = newJobFormModel(&job)
			m.mode = modeForm
		}
	case key.Matches(msg, keys.delete):
		if job, ok := m.selectedJob(); ok {
			m.pendingDelete = job.ID
			m.confirm = confirmModel{message: job.Title}
			m.mode = modeConfirm
		}
	default:
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '4' {
			m.tab = dashboardTab(s[0] - '1')
		}
	}

	return m, nil
}

func (m dashboardModel) onFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeList
		return m, nil
	case key.Matches(msg, keys.save):
		if m.form.submitting {
			return m, nil
		}
		if errMsg := m.form.validate(); errMsg != "" {
			m.form.errMsg = errMsg
			return m, nil
		}
		m.form.errMsg = ""
		m.form.submitting = true
		return m, m.cmdSave(m.form.jobID, m.form.toInput())
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m *dashboardModel) showError(message string) {
	m.errOverlay = errorOverlayModel{message: message}
	m.mode = modeError
}

func (m dashboardModel) rowCount(tab dashboardTab) int {
	switch tab {
	case tabResumes:
		return len(m.data.Resumes)
	case tabJobs:
		return len(m.data.Jobs)
	case tabUsers:
		return len(m.data.Users)
	}
	return 0
}

func (m *dashboardModel) clampCursors() {
	for tab := range tabCount {
		n := m.rowCount(tab)
		if m.cursor[tab] >= n {
			m.cursor[tab] = max(n-1, 0)
		}
	}
}

func (m dashboardModel) selectedJob() (models.Job, bool) {
	if m.tab != tabJobs || len(m.data.Jobs) == 0 {
		return models.Job{}, false
	}
	return m.data.Jobs[m.cursor[tabJobs]], true
}

func (m dashboardModel) selectedPhone() (string, bool) {
	var phone string
	switch m.tab {
	case tabResumes:
		if len(m.data.Resumes) > 0 {
			phone = m.data.Resumes[m.cursor[tabResumes]].Phone
		}
	case tabJobs:
		if len(m.data.Jobs) > 0 {
			phone = m.data.Jobs[m.cursor[tabJobs]].Phone
		}
	case tabUsers:
		if len(m.data.Users) > 0 {
			phone = m.data.Users[m.cursor[tabUsers]].Phone
		}
	}
	phone = strings.TrimSpace(phone)
	return phone, phone != ""
}

func (m dashboardModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	dashboard := m.services.DashboardService

	return func() tea.Msg {
		dash, err := dashboard.Load(ctx)
		return dashboardLoadedMsg{dash: dash, err: err}
	}
}

func (m dashboardModel) cmdSave(id int64, input models.JobInput) tea.Cmd {
	ctx := m.ctx
	jobs := m.services.JobService

	return func() tea.Msg {
		job, err := jobs.Save(ctx, id, input)
		return jobSavedMsg{job: job, created: id == 0, err: err}
	}
}

func (m dashboardModel) cmdDelete(id int64) tea.Cmd {
	ctx := m.ctx
	jobs := m.services.JobService

	return func() tea.Msg {
		return jobDeletedMsg{err: jobs.Delete(ctx, id)}
	}
}

func (m dashboardModel) cmdCopy(text string) tea.Cmd {
	write := m.copy
	return func() tea.Msg {
		return copiedMsg{err: write(text)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m dashboardModel) View() string {
	switch m.mode {
	case modeForm:
		return appStyle.Render(m.form.View())
	case modeConfirm:
		return appStyle.Render(m.confirm.View())
	case modeError:
		return appStyle.Render(m.errOverlay.View())
	case modeUserDetail:
		return appStyle.Render(m.userDetail.View())
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Загрузка...\n\n")
	}

	switch m.tab {
	case tabStats:
		b.WriteString(renderStats(m.data.Stats, m.data.StatsErr))
	case tabResumes:
		b.WriteString(renderResumesTable(m.data.Resumes, m.cursor[tabResumes], m.data.ResumesErr))
	case tabJobs:
		b.WriteString(renderJobsTable(m.data.Jobs, m.cursor[tabJobs], m.data.JobsErr))
	case tabUsers:
		b.WriteString(renderUsersTable(m.data.Users, m.cursor[tabUsers], m.data.UsersErr))
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	return appStyle.Render(renderPage(m.title(), b.String(), m.hotKeys()))
}

func (m dashboardModel) title() string {
	name := m.session.User.Name
	if name == "" {
		name = m.session.User.Email
	}
	if name == "" {
		return "WORK.KG ─ ПАНЕЛЬ АДМИНИСТРАТОРА"
	}
	if m.session.Role != "" {
		name += " (" + m.session.Role + ")"
	}
	return "WORK.KG ─ ПАНЕЛЬ АДМИНИСТРАТОРА ─ " + name
}

func (m dashboardModel) renderTabs() string {
	rendered := make([]string, 0, tabCount)
	for i, title := range tabTitles {
		if dashboardTab(i) == m.tab {
			rendered = append(rendered, activeTabStyle.Render(title))
		} else {
			rendered = append(rendered, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m dashboardModel) hotKeys() string {
	base := "tab/←/→: вкладка │ ↑/↓: выбор │ r: обновить │ c: телефон │ l: выйти из аккаунта │ q: выход"
	switch m.tab {
	case tabJobs:
		return "n: новая │ e: изменить │ d: удалить │ " + base
	case tabUsers:
		return "enter: подробнее │ " + base
	}
	return base
}
