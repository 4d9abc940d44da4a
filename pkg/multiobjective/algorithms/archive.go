package algorithms

import (
	"sort"

	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/framework"
)

// Archive is a bounded store of historically non-dominated individuals,
// maintained across generations independent of the working population. It
// backs the final report even when the last generation's front is smaller
// than desired, and it is what a cancelled run returns. Members are clones:
// the working population is rebuilt every generation and must not be aliased.
type Archive struct {
	capacity int
	members  []*framework.Individual
}

// NewArchive creates an archive bounded to capacity members.
func NewArchive(capacity int) *Archive {
	return &Archive{capacity: capacity}
}

// Update folds a generation's first front into the archive: entrants
// dominated by a current member are skipped, members dominated by an entrant
// are dropped, and the archive is pruned back to capacity by removing the
// least isolated members first.
func (a *Archive) Update(front []*framework.Individual) {
	for _, cand := range front {
		dominated := false
		for _, m := range a.members {
			if Dominates(m, cand) {
				dominated = true
				break
			}
		}
		if dominated {
			// Archive members are mutually non-dominated, so a candidate
			// beaten by one member cannot dominate any other.
			continue
		}
		kept := a.members[:0]
		for _, m := range a.members {
			if !Dominates(cand, m) {
				kept = append(kept, m)
			}
		}
		a.members = append(kept, cand.Clone())
	}

	if len(a.members) > a.capacity {
		CrowdingDistance(a.members)
		sort.Slice(a.members, func(i, j int) bool {
			return a.members[i].CrowdingDistance > a.members[j].CrowdingDistance
		})
		a.members = a.members[:a.capacity]
	}
}

// Members returns the archived individuals.
func (a *Archive) Members() []*framework.Individual {
	out := make([]*framework.Individual, len(a.members))
	copy(out, a.members)
	return out
}

// Len returns the archive size.
func (a *Archive) Len() int {
	return len(a.members)
}
