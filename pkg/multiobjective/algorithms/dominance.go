package algorithms

import (
	"math"
	"sort"

	"golang.org/x/exp/rand"

	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/framework"
)

// Dominates checks if individual a dominates individual b: no worse in every
// objective and strictly better in at least one. The comparison runs on the
// penalty-adjusted objective vectors only; feasibility is never consulted
// here because penalty injection already folded it into the objectives.
func Dominates(a, b *framework.Individual) bool {
	better := false
	for i := 0; i < len(a.Objectives); i++ {
		if a.Objectives[i] > b.Objectives[i] {
			return false
		}
		if a.Objectives[i] < b.Objectives[i] {
			better = true
		}
	}
	return better
}

// NonDominatedSort performs fast non-dominated sorting on the population.
// Every individual is assigned to exactly one front and given its front index
// as Rank. The O(M^2) pairwise pass is acceptable because M is bounded by
// twice the population size. Domination bookkeeping is written onto the
// individuals as indices into the given slice; it is only valid until the
// next sort pass.
func NonDominatedSort(population []*framework.Individual) [][]*framework.Individual {
	var fronts [][]*framework.Individual
	dominated := make(map[int][]int)
	domCount := make([]int, len(population))

	// Calculate domination for each individual
	for i := 0; i < len(population); i++ {
		dominated[i] = []int{}
		for j := 0; j < len(population); j++ {
			if i != j {
				if Dominates(population[i], population[j]) {
					dominated[i] = append(dominated[i], j)
				} else if Dominates(population[j], population[i]) {
					domCount[i]++
				}
			}
		}
	}
	for i := range population {
		population[i].DominationCount = domCount[i]
		population[i].Dominated = dominated[i]
	}

	// Find first front
	currentFront := []*framework.Individual{}
	currentFrontIndices := []int{}
	for i := 0; i < len(population); i++ {
		if domCount[i] == 0 {
			population[i].Rank = 0
			currentFront = append(currentFront, population[i])
			currentFrontIndices = append(currentFrontIndices, i)
		}
	}
	fronts = append(fronts, currentFront)

	// Find subsequent fronts
	frontIndex := 0
	for len(currentFront) > 0 {
		nextFront := []*framework.Individual{}
		nextFrontIndices := []int{}
		for _, idx := range currentFrontIndices {
			for _, dominatedIdx := range dominated[idx] {
				domCount[dominatedIdx]--
				if domCount[dominatedIdx] == 0 {
					population[dominatedIdx].Rank = frontIndex + 1
					nextFront = append(nextFront, population[dominatedIdx])
					nextFrontIndices = append(nextFrontIndices, dominatedIdx)
				}
			}
		}
		frontIndex++
		if len(nextFront) > 0 {
			fronts = append(fronts, nextFront)
		}
		currentFront = nextFront
		currentFrontIndices = nextFrontIndices
	}

	return fronts
}

// CrowdingDistance calculates crowding distance for individuals in a front,
// using only that front's members. Boundary individuals on any objective get
// +Inf so they are never truncated away; fronts of size <= 2 cannot yield a
// meaningful gap and get +Inf throughout.
func CrowdingDistance(front []*framework.Individual) {
	if len(front) <= 2 {
		for i := range front {
			front[i].CrowdingDistance = math.Inf(1)
		}
		return
	}

	numObjectives := len(front[0].Objectives)
	for i := range front {
		front[i].CrowdingDistance = 0
	}

	for m := 0; m < numObjectives; m++ {
		// Sort by each objective
		sort.Slice(front, func(i, j int) bool {
			return front[i].Objectives[m] < front[j].Objectives[m]
		})

		// Set boundary points to infinity
		front[0].CrowdingDistance = math.Inf(1)
		front[len(front)-1].CrowdingDistance = math.Inf(1)

		objectiveRange := front[len(front)-1].Objectives[m] - front[0].Objectives[m]
		if objectiveRange == 0 {
			continue
		}

		// Calculate distance for intermediate points
		for i := 1; i < len(front)-1; i++ {
			front[i].CrowdingDistance += (front[i+1].Objectives[m] - front[i-1].Objectives[m]) / objectiveRange
		}
	}
}

// TournamentSelect picks a parent by binary tournament: lower rank wins, and
// within a rank the larger crowding distance wins. Rank is always primary.
func TournamentSelect(rng *rand.Rand, population []*framework.Individual, tournamentSize int) *framework.Individual {
	if tournamentSize < 2 {
		tournamentSize = 2 // minimum tournament size
	}
	best := population[rng.Intn(len(population))]

	for i := 1; i < tournamentSize; i++ {
		contestant := population[rng.Intn(len(population))]
		if contestant.Rank < best.Rank || (contestant.Rank == best.Rank && contestant.CrowdingDistance > best.CrowdingDistance) {
			best = contestant
		}
	}

	return best
}
