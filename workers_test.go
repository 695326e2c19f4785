package physics

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunIslandGroupsInlineForSingleGroup(t *testing.T) {
	var visited []int
	runIslandGroups([][]int{{0, 1, 2}}, func(idx int) {
		visited = append(visited, idx)
	})
	assert.Equal(t, []int{0, 1, 2}, visited, "a single group should run inline, preserving order")
}

func TestRunIslandGroupsVisitsEveryIndexExactlyOnce(t *testing.T) {
	groups := [][]int{{0, 1}, {2, 3}, {4}}
	var mu sync.Mutex
	var visited []int
	runIslandGroups(groups, func(idx int) {
		mu.Lock()
		visited = append(visited, idx)
		mu.Unlock()
	})
	sort.Ints(visited)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, visited)
}

func TestRunIslandGroupsEmptyIsNoOp(t *testing.T) {
	called := false
	runIslandGroups(nil, func(idx int) { called = true })
	assert.False(t, called)
}
