package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/okugula/work-kg-admin/internal/logger"
	"github.com/okugula/work-kg-admin/internal/mock"
	"github.com/okugula/work-kg-admin/internal/service"
	"github.com/okugula/work-kg-admin/models"
)

var errQuit = errors.New("quit")

// fakeUI replays scripted results for each call.
type fakeUI struct {
	logins   []error
	loops    []bool
	loopErr  error
	sessions []models.Session
}

func (f *fakeUI) LoginFlow(context.Context) (models.AdminUser, error) {
	if len(f.logins) == 0 {
		return models.AdminUser{}, errQuit
	}
	err := f.logins[0]
	f.logins = f.logins[1:]
	return models.AdminUser{ID: 1, Role: "admin"}, err
}

func (f *fakeUI) MainLoop(_ context.Context, session models.Session) (bool, error) {
	f.sessions = append(f.sessions, session)
	if f.loopErr != nil {
		return false, f.loopErr
	}
	if len(f.loops) == 0 {
		return false, nil
	}
	logout := f.loops[0]
	f.loops = f.loops[1:]
	return logout, nil
}

func newTestApp(t *testing.T, ui UI) (*App, *mock.MockAuthService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	services := &service.ClientServices{AuthService: auth}
	return NewApp(services, ui, logger.Nop()), auth
}

func TestApp_Run_RestoredSessionSkipsLogin(t *testing.T) {
	ui := &fakeUI{logins: []error{errors.New("must not be called")}}
	app, auth := newTestApp(t, ui)

	session := models.Session{User: models.AdminUser{ID: 3}, Role: "admin"}
	auth.EXPECT().RestoreSession(gomock.Any()).Return(session, nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, []models.Session{session}, ui.sessions)
	assert.Len(t, ui.logins, 1)
}

func TestApp_Run_LoginWhenNotAuthenticated(t *testing.T) {
	ui := &fakeUI{logins: []error{nil}}
	app, auth := newTestApp(t, ui)

	session := models.Session{User: models.AdminUser{ID: 1}, Role: "admin"}
	gomock.InOrder(
		auth.EXPECT().RestoreSession(gomock.Any()).Return(models.Session{}, service.ErrNotAuthenticated),
		auth.EXPECT().RestoreSession(gomock.Any()).Return(session, nil),
	)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, []models.Session{session}, ui.sessions)
}

func TestApp_Run_QuitOnLoginScreen(t *testing.T) {
	ui := &fakeUI{}
	app, auth := newTestApp(t, ui)
	auth.EXPECT().RestoreSession(gomock.Any()).Return(models.Session{}, service.ErrNotAuthenticated)

	err := app.Run(context.Background())
	assert.ErrorIs(t, err, errQuit)
	assert.Empty(t, ui.sessions)
}

func TestApp_Run_LogoutStartsOver(t *testing.T) {
	ui := &fakeUI{logins: []error{nil}, loops: []bool{true, false}}
	app, auth := newTestApp(t, ui)

	first := models.Session{User: models.AdminUser{ID: 1}}
	second := models.Session{User: models.AdminUser{ID: 2}}
	gomock.InOrder(
		auth.EXPECT().RestoreSession(gomock.Any()).Return(first, nil),
		auth.EXPECT().Logout(gomock.Any()).Return(nil),
		auth.EXPECT().RestoreSession(gomock.Any()).Return(models.Session{}, service.ErrNotAuthenticated),
		auth.EXPECT().RestoreSession(gomock.Any()).Return(second, nil),
	)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, []models.Session{first, second}, ui.sessions)
}

func TestApp_Run_Errors(t *testing.T) {
	storageErr := errors.New("disk I/O error")

	t.Run("restore fails", func(t *testing.T) {
		app, auth := newTestApp(t, &fakeUI{})
		auth.EXPECT().RestoreSession(gomock.Any()).Return(models.Session{}, storageErr)

		err := app.Run(context.Background())
		assert.ErrorIs(t, err, storageErr)
		assert.Contains(t, err.Error(), "restore session")
	})

	t.Run("main loop fails", func(t *testing.T) {
		loopErr := errors.New("terminal gone")
		app, auth := newTestApp(t, &fakeUI{loopErr: loopErr})
		auth.EXPECT().RestoreSession(gomock.Any()).Return(models.Session{}, nil)

		assert.ErrorIs(t, app.Run(context.Background()), loopErr)
	})

	t.Run("logout fails", func(t *testing.T) {
		app, auth := newTestApp(t, &fakeUI{loops: []bool{true}})
		auth.EXPECT().RestoreSession(gomock.Any()).Return(models.Session{}, nil)
		auth.EXPECT().Logout(gomock.Any()).Return(storageErr)

		err := app.Run(context.Background())
		assert.ErrorIs(t, err, storageErr)
		assert.Contains(t, err.Error(), "logout")
	})
}
