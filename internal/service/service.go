// Package service wires the pure domain computations to the surrounding
// application: configuration-sourced tariff rates, structured logging and
// the persistence collaborator boundary.
package service

import (
	"github.com/stimasense/stimasense/internal/config"
	"github.com/stimasense/stimasense/internal/domain/meter"
	"github.com/stimasense/stimasense/internal/logger"
)

// ServiceParams holds the shared dependencies injected into every service.
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	MeterReadingRepo meter.Repository
}
