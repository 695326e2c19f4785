package physics

import "sort"

// Island is one connected component of a tick's interaction graph, recorded
// as lists of indices (not necessarily contiguous — see buildIslands) into
// the tick's four working buffers.
//
// Identity is (FirstBodySlot, EdgeSum): FirstBodySlot is the arena slot of
// the island's DFS root (its lowest-slot member), and EdgeSum is a
// permutation-stable hash of the island's edges. Two ticks whose islands
// share an identity have (almost certainly) the same topology, which the
// sleep manager (sleep.go) uses to carry fall-asleep counters across
// frames despite islands being rebuilt from scratch every tick.
type Island struct {
	FirstBodySlot uint32
	EdgeSum       uint64

	Bodies      []int // dense indices into the tick's body buffer, DFS order
	Ropes       []int
	Constraints []int
	Pairs       []int

	// CanSleep is false if the island contains any rope edge or any
	// constraint with CanSleep == false: such edges keep every body they
	// touch permanently awake-eligible.
	CanSleep bool
}

// Identity returns the stable (FirstBodySlot, EdgeSum) pair used to match
// this island against the previous tick's islands.
func (isl Island) Identity() (uint32, uint64) {
	return isl.FirstBodySlot, isl.EdgeSum
}

// buildIslands partitions a tick's working buffers into connected
// components by DFS over the interaction graph implied by ropes,
// constraints and broad-phase pairs. Static edges (StaticConstraint/
// StaticContact) touch only their one dynamic body and never merge two
// islands.
func buildIslands(buf tickBuffers) []Island {
	n := len(buf.Bodies)
	adjacency := make([][]graphEdge, n)
	addEdge := func(body int, e graphEdge) {
		if body >= 0 {
			adjacency[body] = append(adjacency[body], e)
		}
	}

	for ri, r := range buf.Ropes {
		for i := 0; i+1 < len(r.ParticleIdx); i++ {
			a, b := r.ParticleIdx[i], r.ParticleIdx[i+1]
			addEdge(a, graphEdge{Kind: EdgeRope, Other: b, Index: ri})
			addEdge(b, graphEdge{Kind: EdgeRope, Other: a, Index: ri})
		}
	}
	for ci, c := range buf.Constraints {
		if c.TargetIdx < 0 {
			addEdge(c.OwnerIdx, graphEdge{Kind: EdgeStaticConstraint, Other: -1, Index: ci})
		} else {
			addEdge(c.OwnerIdx, graphEdge{Kind: EdgeConstraint, Other: c.TargetIdx, Index: ci})
			addEdge(c.TargetIdx, graphEdge{Kind: EdgeConstraint, Other: c.OwnerIdx, Index: ci})
		}
	}
	for pi, p := range buf.Pairs {
		switch {
		case p.BodyIdxA >= 0 && p.BodyIdxB >= 0:
			addEdge(p.BodyIdxA, graphEdge{Kind: EdgeContact, Other: p.BodyIdxB, Index: pi})
			addEdge(p.BodyIdxB, graphEdge{Kind: EdgeContact, Other: p.BodyIdxA, Index: pi})
		case p.BodyIdxA >= 0:
			addEdge(p.BodyIdxA, graphEdge{Kind: EdgeStaticContact, Other: -1, Index: pi})
		case p.BodyIdxB >= 0:
			addEdge(p.BodyIdxB, graphEdge{Kind: EdgeStaticContact, Other: -1, Index: pi})
		}
	}

	bodyIsland := make([]int, n)
	for i := range bodyIsland {
		bodyIsland[i] = -1
	}
	var islands []Island
	for root := 0; root < n; root++ {
		if bodyIsland[root] != -1 {
			continue
		}
		id := len(islands)
		var order []int
		stack := []int{root}
		bodyIsland[root] = id
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			order = append(order, cur)
			for _, e := range adjacency[cur] {
				if e.Other >= 0 && bodyIsland[e.Other] == -1 {
					bodyIsland[e.Other] = id
					stack = append(stack, e.Other)
				}
			}
		}
		islands = append(islands, Island{
			FirstBodySlot: buf.Bodies[root].slot,
			Bodies:        order,
			CanSleep:      true,
		})
	}

	slotOf := func(idx int) uint64 { return uint64(buf.Bodies[idx].slot) + 1 }

	for ri, r := range buf.Ropes {
		if len(r.ParticleIdx) == 0 {
			continue
		}
		id := bodyIsland[r.ParticleIdx[0]]
		assert(id >= 0, "buildIslands: rope particle has no island assignment")
		islands[id].Ropes = append(islands[id].Ropes, ri)
		islands[id].CanSleep = false
		for i := 0; i+1 < len(r.ParticleIdx); i++ {
			islands[id].EdgeSum += slotOf(r.ParticleIdx[i]) * slotOf(r.ParticleIdx[i+1])
		}
	}
	for ci, c := range buf.Constraints {
		id := bodyIsland[c.OwnerIdx]
		assert(id >= 0, "buildIslands: constraint owner has no island assignment")
		islands[id].Constraints = append(islands[id].Constraints, ci)
		if !c.Data.CanSleep {
			islands[id].CanSleep = false
		}
		if c.TargetIdx < 0 {
			islands[id].EdgeSum += slotOf(c.OwnerIdx)
		} else {
			islands[id].EdgeSum += slotOf(c.OwnerIdx) * slotOf(c.TargetIdx)
		}
	}
	for pi, p := range buf.Pairs {
		var id int
		switch {
		case p.BodyIdxA >= 0 && p.BodyIdxB >= 0:
			id = bodyIsland[p.BodyIdxA]
			islands[id].EdgeSum += slotOf(p.BodyIdxA) * slotOf(p.BodyIdxB)
		case p.BodyIdxA >= 0:
			id = bodyIsland[p.BodyIdxA]
			islands[id].EdgeSum += slotOf(p.BodyIdxA)
		case p.BodyIdxB >= 0:
			id = bodyIsland[p.BodyIdxB]
			islands[id].EdgeSum += slotOf(p.BodyIdxB)
		default:
			continue
		}
		islands[id].Pairs = append(islands[id].Pairs, pi)
	}
	return islands
}

// bucketIslands greedily packs islands (by descending body count, classic
// longest-processing-time-first scheduling) into at most nThreads groups,
// so that solving a group in one worker goroutine costs roughly
// total_bodies/nThreads work. A group always receives
// at least minBodiesPerThread worth of islands before a new group opens,
// which keeps small scenes from paying goroutine overhead for no benefit.
func bucketIslands(islands []Island, nThreads, minBodiesPerThread int) [][]int {
	if nThreads < 1 {
		nThreads = 1
	}
	order := make([]int, len(islands))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return len(islands[order[i]].Bodies) > len(islands[order[j]].Bodies)
	})

	totalBodies := 0
	for _, isl := range islands {
		totalBodies += len(isl.Bodies)
	}
	target := totalBodies / nThreads
	if target < minBodiesPerThread {
		target = minBodiesPerThread
	}

	groups := make([][]int, 0, nThreads)
	counts := make([]int, 0, nThreads)
	for _, idx := range order {
		n := len(islands[idx].Bodies)
		best := -1
		for g := range groups {
			if counts[g] >= target {
				continue
			}
			if best == -1 || counts[g] < counts[best] {
				best = g
			}
		}
		if best == -1 {
			if len(groups) < nThreads {
				groups = append(groups, nil)
				counts = append(counts, 0)
				best = len(groups) - 1
			} else {
				best = 0
				for g := range counts {
					if counts[g] < counts[best] {
						best = g
					}
				}
			}
		}
		groups[best] = append(groups[best], idx)
		counts[best] += n
	}
	return groups
}
