package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func handleSlot(slot uint32) Handle { return Handle{slot: slot, generation: 1} }

func TestBuildIslandsSeparatesUnconnectedBodies(t *testing.T) {
	buf := tickBuffers{
		Bodies: []Handle{handleSlot(0), handleSlot(1)},
	}
	islands := buildIslands(buf)
	assert.Len(t, islands, 2)
}

func TestBuildIslandsMergesBodiesSharingAContactPair(t *testing.T) {
	buf := tickBuffers{
		Bodies: []Handle{handleSlot(0), handleSlot(1)},
		Pairs:  []tickPair{{BodyIdxA: 0, BodyIdxB: 1}},
	}
	islands := buildIslands(buf)
	assert.Len(t, islands, 1)
	assert.ElementsMatch(t, []int{0, 1}, islands[0].Bodies)
}

func TestBuildIslandsStaticContactDoesNotMergeUnrelatedBodies(t *testing.T) {
	// Two separate dynamic bodies both touch the same static platform
	// (BodyIdxB == -1 represents the static/infinite-mass side), and must
	// not be merged into a single island just because they share it.
	buf := tickBuffers{
		Bodies: []Handle{handleSlot(0), handleSlot(1)},
		Pairs: []tickPair{
			{BodyIdxA: 0, BodyIdxB: -1},
			{BodyIdxA: 1, BodyIdxB: -1},
		},
	}
	islands := buildIslands(buf)
	assert.Len(t, islands, 2, "static contacts must not merge otherwise-unrelated dynamic bodies")
}

func TestBuildIslandsRopeMarksCanSleepFalse(t *testing.T) {
	buf := tickBuffers{
		Bodies: []Handle{handleSlot(0), handleSlot(1)},
		Ropes:  []tickRope{{ParticleIdx: []int{0, 1}, Data: Rope{Spacing: 1}}},
	}
	islands := buildIslands(buf)
	assert.Len(t, islands, 1)
	assert.False(t, islands[0].CanSleep)
}

func TestBuildIslandsConstraintNonSleepablePropagates(t *testing.T) {
	buf := tickBuffers{
		Bodies:      []Handle{handleSlot(0)},
		Constraints: []tickConstraint{{OwnerIdx: 0, TargetIdx: -1, Data: Constraint{CanSleep: false}}},
	}
	islands := buildIslands(buf)
	assert.False(t, islands[0].CanSleep)
}

func TestBuildIslandsIdentityStableAcrossEquivalentTopology(t *testing.T) {
	buf1 := tickBuffers{
		Bodies: []Handle{handleSlot(0), handleSlot(1)},
		Pairs:  []tickPair{{BodyIdxA: 0, BodyIdxB: 1}},
	}
	buf2 := tickBuffers{
		Bodies: []Handle{handleSlot(0), handleSlot(1)},
		Pairs:  []tickPair{{BodyIdxA: 0, BodyIdxB: 1}},
	}
	i1 := buildIslands(buf1)
	i2 := buildIslands(buf2)
	slot1, sum1 := i1[0].Identity()
	slot2, sum2 := i2[0].Identity()
	assert.Equal(t, slot1, slot2)
	assert.Equal(t, sum1, sum2)
}

func TestBucketIslandsRespectsThreadCount(t *testing.T) {
	islands := []Island{
		{Bodies: make([]int, 10)},
		{Bodies: make([]int, 8)},
		{Bodies: make([]int, 1)},
		{Bodies: make([]int, 1)},
	}
	groups := bucketIslands(islands, 2, 1)
	assert.LessOrEqual(t, len(groups), 2)
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	assert.Equal(t, len(islands), total, "every island must be assigned to exactly one group")
}

func TestBucketIslandsSingleThreadPutsEverythingInOneGroup(t *testing.T) {
	islands := []Island{{Bodies: make([]int, 5)}, {Bodies: make([]int, 3)}}
	groups := bucketIslands(islands, 1, 1)
	assert.Len(t, groups, 1)
	assert.Len(t, groups[0], 2)
}
