// File: services/business/csv.go
package business

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"dialvet/models"
	"dialvet/utils"
)

// ImportCSV ingests rows of "name,phone". Validation failures are collected
// per row and never abort the batch; phone numbers are canonicalized before
// insert, and rows whose number already exists are skipped.
func (s *DefaultBusinessService) ImportCSV(ctx context.Context, r io.Reader) (*models.ImportSummary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	summary := &models.ImportSummary{}
	var bizs []models.Business

	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("import csv: read row %d: %w", row+1, err)
		}
		row++

		// Skip a header row.
		if row == 1 && len(record) >= 2 && strings.EqualFold(strings.TrimSpace(record[0]), "name") {
			continue
		}

		if len(record) < 2 {
			summary.Errors = append(summary.Errors, models.RowError{
				Row: row, Message: "expected columns: name, phone",
			})
			continue
		}

		name := strings.TrimSpace(record[0])
		phone := strings.TrimSpace(record[1])
		if err := utils.ValidateBusinessRow(row, name, phone); err != nil {
			summary.Errors = append(summary.Errors, models.RowError{
				Row: row, Message: err.Error(),
			})
			continue
		}

		bizs = append(bizs, models.Business{
			Name:       name,
			Phone:      utils.NormalizePhone(phone),
			CallStatus: models.CallStatusPending,
		})
	}

	inserted, skipped, err := s.Repo.BulkInsert(ctx, bizs)
	if err != nil {
		return nil, fmt.Errorf("import csv: bulk insert: %w", err)
	}
	summary.Imported = inserted
	summary.Skipped = skipped
	return summary, nil
}

// ExportCSV writes every record, survey results included.
func (s *DefaultBusinessService) ExportCSV(ctx context.Context, w io.Writer) error {
	bizs, err := s.Repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("export csv: %w", err)
	}

	writer := csv.NewWriter(w)
	header := []string{
		"name", "phone", "hasDiscount", "discountAmount", "discountDetails",
		"availabilityInfo", "eligibilityInfo", "callStatus", "lastCalled",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("export csv: write header: %w", err)
	}

	for _, biz := range bizs {
		lastCalled := ""
		if biz.LastCalled != nil {
			lastCalled = biz.LastCalled.Format(time.RFC3339)
		}
		rec := []string{
			biz.Name,
			biz.Phone,
			fmt.Sprintf("%t", biz.HasDiscount),
			biz.DiscountAmount,
			biz.DiscountDetails,
			biz.AvailabilityInfo,
			biz.EligibilityInfo,
			string(biz.CallStatus),
			lastCalled,
		}
		if err := writer.Write(rec); err != nil {
			return fmt.Errorf("export csv: write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
