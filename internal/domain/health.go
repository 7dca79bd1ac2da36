package domain

import "context"

// Pinger is implemented by every backing service the health check probes.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}
