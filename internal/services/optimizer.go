package services

import (
	"sort"

	"trip-planner-service/internal/domain"
)

// RouteOptimizer orders locations into a visiting sequence. Implementations
// return a permutation of indices into the input slice.
type RouteOptimizer interface {
	Order(locs []domain.VisitLocation, travelMinutes [][]int) []int
}

// Greedy priority-weighted nearest-neighbor ordering.
//
// At each step the unvisited location minimizing
// travel_time(current, candidate) * candidate.Priority.Bonus() is appended.
// No backtracking and no local-search improvement pass: the heuristic trades
// optimality for determinism and O(n²) cost.
type GreedyPriorityOptimizer struct{}

func (GreedyPriorityOptimizer) Order(locs []domain.VisitLocation, travelMinutes [][]int) []int {
	n := len(locs)
	if n == 0 {
		return nil
	}

	// Stable sort keeps input order among equal priorities; that order is
	// also the tie-breaker for equal greedy scores below.
	byPriority := make([]int, n)
	for i := range byPriority {
		byPriority[i] = i
	}
	sort.SliceStable(byPriority, func(a, b int) bool {
		return locs[byPriority[a]].Priority.Rank() > locs[byPriority[b]].Priority.Rank()
	})

	visited := make([]bool, n)
	route := make([]int, 0, n)

	// Seed with the highest-priority location.
	current := byPriority[0]
	visited[current] = true
	route = append(route, current)

	for len(route) < n {
		best := -1
		bestScore := 0.0

		for _, cand := range byPriority {
			if visited[cand] {
				continue
			}
			score := float64(travelMinutes[current][cand]) * locs[cand].Priority.Bonus()
			// Strict comparison: ties resolve to the earlier candidate.
			if best == -1 || score < bestScore {
				best = cand
				bestScore = score
			}
		}

		visited[best] = true
		route = append(route, best)
		current = best
	}

	return route
}
