// File: services/call/bulk.go
package call

import (
	"context"
	"fmt"
	"sync"

	"dialvet/models"
	"dialvet/utils"

	"go.uber.org/zap"
)

// CallAll iterates every business record and places one outbound call per
// record. Placements are independent: each failure is isolated, counted,
// and never aborts the batch. The returned summary settles once every
// placement (not every conversation) has finished.
func (s *DefaultCallService) CallAll(ctx context.Context) (*models.BulkCallSummary, error) {
	bizs, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("bulk caller: list businesses: %w", err)
	}

	summary := &models.BulkCallSummary{Total: len(bizs)}
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, biz := range bizs {
		wg.Add(1)
		go func(biz models.Business) {
			defer wg.Done()
			err := s.placeCall(ctx, biz)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				summary.Failed++
			} else {
				summary.Successful++
			}
		}(biz)
	}
	wg.Wait()

	utils.GetLogger().Info("Bulk call batch placed",
		zap.Int("total", summary.Total),
		zap.Int("successful", summary.Successful),
		zap.Int("failed", summary.Failed))
	return summary, nil
}

// CallBusiness places a single outbound call to one business.
func (s *DefaultCallService) CallBusiness(ctx context.Context, id string) error {
	biz, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("call business %s: %w", id, err)
	}
	return s.placeCall(ctx, *biz)
}

// placeCall marks the record as calling and initiates the call. A placement
// failure does not roll back the status update.
func (s *DefaultCallService) placeCall(ctx context.Context, biz models.Business) error {
	logger := utils.GetLogger()

	if err := s.Repo.UpdateCallStatus(ctx, biz.ID, models.CallStatusCalling); err != nil {
		logger.Warn("Failed to mark business as calling",
			zap.String("businessId", biz.ID), zap.Error(err))
	}

	sid, err := s.Telephony.PlaceCall(ctx, biz.Phone)
	if err != nil {
		logger.Error("Call placement failed",
			zap.String("businessId", biz.ID),
			zap.String("phone", biz.Phone),
			zap.Error(err))
		return err
	}

	logger.Info("Call placed",
		zap.String("businessId", biz.ID),
		zap.String("phone", biz.Phone),
		zap.String("callSid", sid))
	return nil
}
