package geo

// Point is a guest location on the map.
type Point struct {
	GuestID   int     `json:"guest_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Cluster is a group of nearby points with a running mean centroid.
type Cluster struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	GuestIDs  []int   `json:"guest_ids"`
	Count     int     `json:"count"`
}

// DefaultClusterThreshold is the per-axis distance in degrees within which a
// point joins an existing cluster.
const DefaultClusterThreshold = 0.15

// ClusterPoints groups points with a single greedy pass: each point joins
// the nearest cluster whose centroid is within threshold on both axes,
// shifting that centroid to the new arithmetic mean, or starts a cluster of
// its own. Existing clusters are never merged, so the result depends on
// input order. O(n * clusters); fine for guest-list sizes, not for bulk
// spatial data.
func ClusterPoints(points []Point, threshold float64) []Cluster {
	if threshold <= 0 {
		threshold = DefaultClusterThreshold
	}

	var clusters []Cluster
	for _, p := range points {
		best := -1
		bestDist := 0.0
		for i := range clusters {
			dLat := absFloat(p.Latitude - clusters[i].Latitude)
			dLng := absFloat(p.Longitude - clusters[i].Longitude)
			if dLat > threshold || dLng > threshold {
				continue
			}
			dist := dLat*dLat + dLng*dLng
			if best == -1 || dist < bestDist {
				best = i
				bestDist = dist
			}
		}
		if best >= 0 {
			c := &clusters[best]
			n := float64(c.Count)
			c.Latitude = (c.Latitude*n + p.Latitude) / (n + 1)
			c.Longitude = (c.Longitude*n + p.Longitude) / (n + 1)
			c.GuestIDs = append(c.GuestIDs, p.GuestID)
			c.Count++
			continue
		}
		clusters = append(clusters, Cluster{
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			GuestIDs:  []int{p.GuestID},
			Count:     1,
		})
	}

	return clusters
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
