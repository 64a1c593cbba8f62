package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	contracts "github.com/connersimmonsmayne/weddingplanner-sub000/contracts/mq"
	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/importer"
	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/model"
	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/repository"
	"github.com/connersimmonsmayne/weddingplanner-sub000/pkg/metrics"
	"github.com/connersimmonsmayne/weddingplanner-sub000/pkg/mq"
)

// GuestImportService runs the two-step CSV import: Preview parses and
// validates without writing anything; Commit re-parses, batch-inserts the
// accepted rows and hands addressed guests to the geocode worker via MQ.
type GuestImportService struct {
	guestRepo *repository.GuestRepository
	publisher *mq.Publisher
	logger    *zap.Logger
}

func NewGuestImportService(guestRepo *repository.GuestRepository, publisher *mq.Publisher, logger *zap.Logger) *GuestImportService {
	return &GuestImportService{
		guestRepo: guestRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// ImportResult summarizes a committed import.
type ImportResult struct {
	BatchID  string `json:"batch_id"`
	Inserted int    `json:"inserted"`
	Skipped  int    `json:"skipped"`
}

func (s *GuestImportService) Preview(ctx context.Context, weddingID int, csvData io.Reader) (*importer.Preview, error) {
	existing, err := s.guestRepo.ListNames(ctx, weddingID)
	if err != nil {
		return nil, err
	}
	return importer.Parse(csvData, existing)
}

// Commit inserts the valid rows from the CSV. When skipDuplicates is set,
// rows flagged as duplicates are dropped instead of inserted.
func (s *GuestImportService) Commit(ctx context.Context, weddingID int, csvData io.Reader, skipDuplicates bool) (*ImportResult, error) {
	preview, err := s.Preview(ctx, weddingID, csvData)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{BatchID: uuid.NewString()}

	guests := make([]model.Guest, 0, preview.ValidCount)
	for _, row := range preview.Rows {
		if !row.Valid {
			result.Skipped++
			continue
		}
		if row.Duplicate && skipDuplicates {
			result.Skipped++
			continue
		}
		guests = append(guests, model.Guest{
			WeddingID:  weddingID,
			Name:       row.Name,
			Email:      row.Email,
			Phone:      row.Phone,
			Address:    row.Address,
			RSVPStatus: model.RSVPPending,
			Priority:   row.Priority,
			PartySize:  row.PartySize,
			Notes:      row.Notes,
		})
	}

	ids, err := s.guestRepo.InsertBatch(ctx, guests)
	if err != nil {
		return nil, err
	}
	result.Inserted = len(ids)

	metrics.IncrementGuestImportRows("inserted", result.Inserted)
	metrics.IncrementGuestImportRows("invalid", preview.InvalidCount)
	metrics.IncrementGuestImportRows("duplicate", preview.DuplicateCount)

	// publish after commit; the worker fills in coordinates asynchronously
	if s.publisher != nil {
		for i, g := range guests {
			if g.Address == "" {
				continue
			}
			event := contracts.GuestAddressEvent{
				GuestID:   ids[i],
				WeddingID: weddingID,
				Address:   g.Address,
				BatchID:   result.BatchID,
			}
			if err := s.publisher.Publish(contracts.RoutingKeyGuestImported, event); err != nil {
				// geocoding is best-effort; the import itself succeeded
				s.logger.Warn("Failed to publish guest import event",
					zap.Int("guest_id", ids[i]),
					zap.Error(err),
				)
			}
		}
	}

	s.logger.Info("Guest import committed",
		zap.Int("wedding_id", weddingID),
		zap.String("batch_id", result.BatchID),
		zap.Int("inserted", result.Inserted),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}
