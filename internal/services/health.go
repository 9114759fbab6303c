package services

import (
	"gorm.io/gorm"

	"sarthakenterprise/internal/database"
)

// HealthService implements the health service
type HealthService struct {
	db      *gorm.DB
	service string
}

// NewHealthService creates a new health service
func NewHealthService(db *gorm.DB, service string) *HealthService {
	return &HealthService{db: db, service: service}
}

// HealthResult reports overall service health
type HealthResult struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Check pings the database and reports service health
func (s *HealthService) Check() HealthResult {
	status := "healthy"
	if err := database.Ping(s.db); err != nil {
		status = "degraded"
	}
	return HealthResult{
		Status:  status,
		Service: s.service,
	}
}
