// File: services/business/interface.go
package business

import (
	"context"
	"io"

	businessRepo "dialvet/database/repository/business"
	"dialvet/models"
)

// BusinessService is the CRUD surface consumed by the dashboard side of the
// application: listing, CSV ingestion/export, per-record updates and the
// bulk clear.
type BusinessService interface {
	ListBusinesses(ctx context.Context) ([]models.Business, error)
	GetBusiness(ctx context.Context, id string) (*models.Business, error)
	ImportCSV(ctx context.Context, r io.Reader) (*models.ImportSummary, error)
	ExportCSV(ctx context.Context, w io.Writer) error
	UpdateBusiness(ctx context.Context, id string, upd models.BusinessUpdate) (*models.Business, error)
	ClearAll(ctx context.Context) (int64, error)
}

// DefaultBusinessService is the production implementation.
type DefaultBusinessService struct {
	Repo businessRepo.BusinessRepository
}
