package repository

import "github.com/eco-stock/eco-stock-api/internal/domain/entity"

// ReportRepository define el puerto de persistencia para instantáneas de reportes.
type ReportRepository interface {
	ListTypes() ([]*entity.ReportType, error)
	GetTypeByName(name string) (*entity.ReportType, error)
	Create(report *entity.Report) error
	UpdateStatus(id, status string) error
	GetByID(id string) (*entity.Report, error)
	List(limit, offset int) ([]*entity.Report, error)
	CreateDetails(details []*entity.ReportDetail) error
	ListDetails(reportID string) ([]*entity.ReportDetail, error)
}
