package get_dashboard

import (
	"context"

	"github.com/marrymk/marketplace-service/internal/service/providers/models"
)

type ProvidersService interface {
	GetDashboard(ctx context.Context, ownerEmail string) (*models.DashboardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
