package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/milestone"
	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/model"
	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/repository"
	"github.com/connersimmonsmayne/weddingplanner-sub000/pkg/metrics"
)

// MilestoneService assembles the snapshot for one wedding and runs the
// engine. A failed fetch degrades that collection to empty rather than
// failing the whole report; the report is best-effort by contract.
type MilestoneService struct {
	weddingRepo *repository.WeddingRepository
	vendorRepo  *repository.VendorRepository
	guestRepo   *repository.GuestRepository
	taskRepo    *repository.TaskRepository
	eventRepo   *repository.EventRepository
	logger      *zap.Logger
}

func NewMilestoneService(
	weddingRepo *repository.WeddingRepository,
	vendorRepo *repository.VendorRepository,
	guestRepo *repository.GuestRepository,
	taskRepo *repository.TaskRepository,
	eventRepo *repository.EventRepository,
	logger *zap.Logger,
) *MilestoneService {
	return &MilestoneService{
		weddingRepo: weddingRepo,
		vendorRepo:  vendorRepo,
		guestRepo:   guestRepo,
		taskRepo:    taskRepo,
		eventRepo:   eventRepo,
		logger:      logger,
	}
}

// Report recomputes the milestone view from scratch for every call.
func (s *MilestoneService) Report(ctx context.Context, weddingID int) milestone.Report {
	snap := milestone.Snapshot{}

	if wedding, err := s.weddingRepo.FindByID(ctx, weddingID); err != nil {
		s.logger.Warn("Milestones: wedding fetch failed, date treated as unset",
			zap.Int("wedding_id", weddingID),
			zap.Error(err),
		)
	} else {
		snap.WeddingDate = wedding.WeddingDate
	}

	var err error
	if snap.Vendors, err = s.vendorRepo.ListByWedding(ctx, weddingID); err != nil {
		s.logger.Warn("Milestones: vendors fetch failed, treated as empty",
			zap.Int("wedding_id", weddingID),
			zap.Error(err),
		)
		snap.Vendors = []model.Vendor{}
	}
	if snap.Guests, err = s.guestRepo.ListByWedding(ctx, weddingID); err != nil {
		s.logger.Warn("Milestones: guests fetch failed, treated as empty",
			zap.Int("wedding_id", weddingID),
			zap.Error(err),
		)
		snap.Guests = []model.Guest{}
	}
	if snap.Tasks, err = s.taskRepo.ListByWedding(ctx, weddingID); err != nil {
		s.logger.Warn("Milestones: tasks fetch failed, treated as empty",
			zap.Int("wedding_id", weddingID),
			zap.Error(err),
		)
		snap.Tasks = []model.Task{}
	}
	if snap.Events, err = s.eventRepo.ListByWedding(ctx, weddingID); err != nil {
		s.logger.Warn("Milestones: events fetch failed, treated as empty",
			zap.Int("wedding_id", weddingID),
			zap.Error(err),
		)
		snap.Events = []model.Event{}
	}

	metrics.IncrementMilestoneCompute()
	return milestone.Compute(snap, time.Now())
}
