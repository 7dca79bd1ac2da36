package usecase

import (
	"context"
	"time"

	"job-portal-backend/internal/domain"
)

type healthUsecase struct {
	checks map[string]domain.Pinger
}

// NewHealthUsecase probes every named dependency; nil entries are reported as disabled.
func NewHealthUsecase(checks map[string]domain.Pinger) domain.HealthUsecase {
	return &healthUsecase{checks: checks}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	healthy := true
	status := map[string]string{"status": "ok"}
	for name, p := range u.checks {
		if p == nil {
			status[name] = "disabled"
			continue
		}
		if err := p.Ping(ctx); err != nil {
			status[name] = "down"
			healthy = false
			continue
		}
		status[name] = "up"
	}
	if !healthy {
		status["status"] = "degraded"
	}
	return status, healthy
}
