package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClusterPoints_Empty(t *testing.T) {
	assert.Empty(t, ClusterPoints(nil, DefaultClusterThreshold))
}

func TestClusterPoints_SinglePoint(t *testing.T) {
	clusters := ClusterPoints([]Point{{GuestID: 1, Latitude: 40.7, Longitude: -74.0}}, 0.15)

	require.Len(t, clusters, 1)
	assert.Equal(t, 1, clusters[0].Count)
	assert.Equal(t, []int{1}, clusters[0].GuestIDs)
	assert.Equal(t, 40.7, clusters[0].Latitude)
}

func TestClusterPoints_NearbyPointsGroup(t *testing.T) {
	points := []Point{
		{GuestID: 1, Latitude: 40.70, Longitude: -74.00},
		{GuestID: 2, Latitude: 40.80, Longitude: -74.10},
		{GuestID: 3, Latitude: 34.05, Longitude: -118.24}, // far away
	}
	clusters := ClusterPoints(points, 0.15)

	require.Len(t, clusters, 2)

	assert.Equal(t, 2, clusters[0].Count)
	assert.Equal(t, []int{1, 2}, clusters[0].GuestIDs)
	assert.InDelta(t, 40.75, clusters[0].Latitude, 1e-9)
	assert.InDelta(t, -74.05, clusters[0].Longitude, 1e-9)

	assert.Equal(t, 1, clusters[1].Count)
	assert.Equal(t, []int{3}, clusters[1].GuestIDs)
}

func TestClusterPoints_CentroidIsRunningMean(t *testing.T) {
	points := []Point{
		{GuestID: 1, Latitude: 10.0, Longitude: 10.0},
		{GuestID: 2, Latitude: 10.1, Longitude: 10.1},
		{GuestID: 3, Latitude: 10.2, Longitude: 10.2},
	}
	clusters := ClusterPoints(points, 0.15)

	require.Len(t, clusters, 1)
	assert.Equal(t, 3, clusters[0].Count)
	assert.InDelta(t, 10.1, clusters[0].Latitude, 1e-9)
	assert.InDelta(t, 10.1, clusters[0].Longitude, 1e-9)
}

func TestClusterPoints_ThresholdAppliesPerAxis(t *testing.T) {
	// close in latitude, too far in longitude
	points := []Point{
		{GuestID: 1, Latitude: 10.0, Longitude: 10.0},
		{GuestID: 2, Latitude: 10.0, Longitude: 10.2},
	}
	clusters := ClusterPoints(points, 0.15)
	assert.Len(t, clusters, 2)
}

func TestClusterPoints_JoinsNearestOfOverlappingClusters(t *testing.T) {
	// both clusters are within threshold of the third point; it must join
	// the nearer one, not the one created first
	points := []Point{
		{GuestID: 1, Latitude: 10.00, Longitude: 10.0},
		{GuestID: 2, Latitude: 10.25, Longitude: 10.0},
		{GuestID: 3, Latitude: 10.15, Longitude: 10.0},
	}
	clusters := ClusterPoints(points, 0.15)

	require.Len(t, clusters, 2)
	assert.Equal(t, []int{1}, clusters[0].GuestIDs)
	assert.Equal(t, []int{2, 3}, clusters[1].GuestIDs)
	assert.InDelta(t, 10.20, clusters[1].Latitude, 1e-9)
}

func TestClusterPoints_NoBacktracking(t *testing.T) {
	// the third point is within range of the shifted centroid of cluster 1
	// even though it was not within range of the first point alone
	points := []Point{
		{GuestID: 1, Latitude: 10.00, Longitude: 10.0},
		{GuestID: 2, Latitude: 10.14, Longitude: 10.0},
		{GuestID: 3, Latitude: 10.20, Longitude: 10.0},
	}
	clusters := ClusterPoints(points, 0.15)

	require.Len(t, clusters, 1)
	assert.Equal(t, []int{1, 2, 3}, clusters[0].GuestIDs)
}
