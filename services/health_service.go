package services

import (
	"context"
	"time"

	"github.com/webfolio/contact-backend/logger"
	"github.com/webfolio/contact-backend/types"
	"go.uber.org/zap"
)

// Pinger is the health-check view of the database pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthService struct {
	dbPool  Pinger
	version string
	log     *zap.SugaredLogger
}

func NewHealthService(dbPool Pinger, version string) *HealthService {
	return &HealthService{
		dbPool:  dbPool,
		version: version,
		log:     logger.GetLogger(),
	}
}

func (h *HealthService) CheckHealth(ctx context.Context) types.HealthCheck {
	components := make(map[string]types.HealthComponent)
	overallStatus := types.HealthStatusUp

	dbStatus := h.checkDatabase(ctx)
	components["database"] = dbStatus
	if dbStatus.Status == types.HealthStatusDown {
		overallStatus = types.HealthStatusDown
	}

	return types.HealthCheck{
		Status:     overallStatus,
		Components: components,
		Version:    h.version,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
}

func (h *HealthService) checkDatabase(ctx context.Context) types.HealthComponent {
	if err := h.dbPool.Ping(ctx); err != nil {
		h.log.Errorw("Database health check failed", "error", err)
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: "Database connection failed",
		}
	}

	return types.HealthComponent{
		Status: types.HealthStatusUp,
	}
}
