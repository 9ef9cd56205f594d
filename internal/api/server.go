package api

import (
	"context"

	"github.com/vytor/cyberquest/internal/catalog"
	"github.com/vytor/cyberquest/internal/services"
)

// HealthChecker reports whether a dependency can serve traffic.
type HealthChecker interface {
	Health(ctx context.Context) error
}

type Server struct {
	Catalog         *catalog.Catalog
	PlayService     services.PlayService
	SummaryService  services.SummaryService
	PasswordService services.PasswordService
	DB              HealthChecker
}
