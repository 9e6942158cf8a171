// File: services/business/crud.go
package business

import (
	"context"
	"fmt"

	"dialvet/models"
)

func (s *DefaultBusinessService) ListBusinesses(ctx context.Context) ([]models.Business, error) {
	bizs, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	return bizs, nil
}

func (s *DefaultBusinessService) GetBusiness(ctx context.Context, id string) (*models.Business, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultBusinessService) UpdateBusiness(ctx context.Context, id string, upd models.BusinessUpdate) (*models.Business, error) {
	biz, err := s.Repo.Update(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("update business %s: %w", id, err)
	}
	return biz, nil
}

// ClearAll removes every record. This is the only deletion path in the
// system; individual records are never physically deleted.
func (s *DefaultBusinessService) ClearAll(ctx context.Context) (int64, error) {
	deleted, err := s.Repo.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear businesses: %w", err)
	}
	return deleted, nil
}
