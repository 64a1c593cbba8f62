package service

import (
	"context"

	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/geo"
	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/repository"
)

// MapService clusters geocoded guests for the map view.
type MapService struct {
	guestRepo *repository.GuestRepository
}

func NewMapService(guestRepo *repository.GuestRepository) *MapService {
	return &MapService{guestRepo: guestRepo}
}

func (s *MapService) GuestClusters(ctx context.Context, weddingID int) ([]geo.Cluster, error) {
	guests, err := s.guestRepo.ListLocated(ctx, weddingID)
	if err != nil {
		return nil, err
	}

	points := make([]geo.Point, 0, len(guests))
	for _, g := range guests {
		points = append(points, geo.Point{
			GuestID:   g.ID,
			Latitude:  *g.Latitude,
			Longitude: *g.Longitude,
		})
	}

	clusters := geo.ClusterPoints(points, geo.DefaultClusterThreshold)
	if clusters == nil {
		clusters = []geo.Cluster{}
	}
	return clusters, nil
}
