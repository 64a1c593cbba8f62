package mqhandler

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	mqcontracts "github.com/connersimmonsmayne/weddingplanner-sub000/contracts/mq"
	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/geo"
	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/repository"
	"github.com/connersimmonsmayne/weddingplanner-sub000/pkg/circuitbreaker"
	"github.com/connersimmonsmayne/weddingplanner-sub000/pkg/util"
)

// GuestGeocodeHandler consumes guest address events and resolves them to
// coordinates. Geocoding is best effort: a failed lookup is logged and the
// message is acked, never retried, so a bad address cannot wedge the queue.
type GuestGeocodeHandler struct {
	guestRepo *repository.GuestRepository
	geocoder  *geo.Geocoder
	deduper   *util.Deduper
	logger    *zap.Logger
}

func NewGuestGeocodeHandler(
	guestRepo *repository.GuestRepository,
	geocoder *geo.Geocoder,
	deduper *util.Deduper,
	logger *zap.Logger,
) *GuestGeocodeHandler {
	return &GuestGeocodeHandler{
		guestRepo: guestRepo,
		geocoder:  geocoder,
		deduper:   deduper,
		logger:    logger,
	}
}

func (h *GuestGeocodeHandler) HandleGuestAddress(ctx context.Context, raw json.RawMessage) error {
	var p mqcontracts.GuestAddressEvent
	if err := json.Unmarshal(raw, &p); err != nil {
		h.logger.Error("Failed to unmarshal guest address payload (non-retryable)",
			zap.Error(err),
		)
		return nil // ack, the payload will never parse
	}

	if p.Address == "" {
		h.logger.Warn("Guest address event with empty address, skipping",
			zap.Int("guest_id", p.GuestID),
		)
		return nil
	}

	if !h.deduper.AcquireOnce(ctx, "geocode", p.GuestID) {
		return nil
	}

	coords, err := h.geocoder.Geocode(ctx, p.Address)
	if err != nil {
		// Not retried. The address either does not resolve or the
		// upstream is unhealthy; the guest stays without coordinates
		// until the address is edited again.
		switch {
		case errors.Is(err, geo.ErrAddressNotFound):
			h.logger.Info("Address not found by geocoder",
				zap.Int("guest_id", p.GuestID),
				zap.Int("wedding_id", p.WeddingID),
			)
		case errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen):
			h.logger.Warn("Geocoder circuit open, dropping event",
				zap.Int("guest_id", p.GuestID),
			)
		default:
			h.logger.Error("Geocoding failed",
				zap.Int("guest_id", p.GuestID),
				zap.Error(err),
			)
		}
		return nil
	}

	if err := h.guestRepo.UpdateCoordinates(ctx, p.GuestID, coords.Latitude, coords.Longitude); err != nil {
		if repository.IsNotFound(err) {
			// Guest deleted between publish and consume.
			h.logger.Info("Guest gone before coordinates landed",
				zap.Int("guest_id", p.GuestID),
			)
			return nil
		}
		h.logger.Error("Failed to store guest coordinates",
			zap.Int("guest_id", p.GuestID),
			zap.Error(err),
		)
		return err // retryable, nack and redeliver
	}

	h.logger.Info("Guest geocoded",
		zap.Int("guest_id", p.GuestID),
		zap.Int("wedding_id", p.WeddingID),
		zap.Float64("latitude", coords.Latitude),
		zap.Float64("longitude", coords.Longitude),
	)

	return nil
}
