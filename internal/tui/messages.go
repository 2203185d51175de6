package tui

import (
	"github.com/okugula/work-kg-admin/models"
)

type loginResultMsg struct {
	user models.AdminUser
	err  error
}

type dashboardLoadedMsg struct {
	dash models.Dashboard
	err  error
	// background is set for reloads issued by the refresh job.
	background bool
}

type jobSavedMsg struct {
	job     models.Job
	created bool
	err     error
}

type jobDeletedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
