package seeder

import (
	"math"

	"github.com/edelooff/smallville/internal/generate"
	"github.com/edelooff/smallville/internal/model"
	"github.com/edelooff/smallville/internal/pathfind"
	"github.com/edelooff/smallville/internal/seeddata"
)

// createTransportNetwork creates transport links between cities such that
// every city is part of the network. It repeatedly shuffles the city list
// and connects each city to the next, closing the circle at the end.
//
// To keep distant cities (mostly) within n hops of each other, the number
// of such chains is the n-th root of the city count: a network of 1000
// cities with 10 chains has most, if not all, pairs within 3 hops.
func (s *Seeder) createTransportNetwork(params *seeddata.TransportParams, plans []*generate.CityPlan) []*model.TransportLink {
	cityIDs := make([]int, len(plans))
	for i, plan := range plans {
		cityIDs[i] = plan.City.ID
	}

	chainCount := math.Pow(float64(len(cityIDs)), 1/float64(params.MaxHopDistance))
	repeats := int(math.Round(chainCount - 0.25)) // biased rounding
	low, high := params.DistanceRange[0], params.DistanceRange[1]

	var links []*model.TransportLink
	created := make(map[[2]int]bool)
	for r := 0; r < repeats; r++ {
		s.rng.Shuffle(len(cityIDs), func(i, j int) {
			cityIDs[i], cityIDs[j] = cityIDs[j], cityIDs[i]
		})
		for i := range cityIDs {
			lower, higher := cityIDs[i], cityIDs[(i+1)%len(cityIDs)]
			if higher < lower {
				lower, higher = higher, lower
			}
			if created[[2]int{lower, higher}] {
				continue
			}
			created[[2]int{lower, higher}] = true
			links = append(links, &model.TransportLink{
				LowerCityID:  lower,
				HigherCityID: higher,
				Distance:     int(math.Round(float64(low) + s.rng.Float64()*float64(high-low))),
			})
		}
	}
	return links
}

// transportGraph builds the pathfinding adjacency list from the generated
// links. Links are undirected, so every link yields two edges.
func transportGraph(links []*model.TransportLink) pathfind.Graph {
	graph := make(pathfind.Graph)
	for _, link := range links {
		graph[link.LowerCityID] = append(graph[link.LowerCityID],
			pathfind.Edge{To: link.HigherCityID, Cost: link.Distance})
		graph[link.HigherCityID] = append(graph[link.HigherCityID],
			pathfind.Edge{To: link.LowerCityID, Cost: link.Distance})
	}
	return graph
}
