package service

import (
	"github.com/okugula/work-kg-admin/internal/adapter"
	"github.com/okugula/work-kg-admin/internal/logger"
	"github.com/okugula/work-kg-admin/internal/store"
)

type ClientServices struct {
	AuthService      AuthService
	DashboardService DashboardService
	JobService       JobService
	RefreshJob       RefreshJob
}

// NewClientServices wires the services over one API client. kv may be nil.
func NewClientServices(api adapter.AdminAPI, kv store.KeyValueStore, logger *logger.Logger) *ClientServices {
	dashboardSvc := NewDashboardService(api, logger)

	return &ClientServices{
		AuthService:      NewAuthService(api, kv, logger),
		DashboardService: dashboardSvc,
		JobService:       NewJobService(api, logger),
		RefreshJob:       NewRefreshJob(dashboardSvc, logger),
	}
}
