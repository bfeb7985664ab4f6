package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jdangerx/cyclus/scenario"
)

func TestOrderByParent_ParentsPrecedeChildren(t *testing.T) {
	agents := []scenario.Agent{
		{Name: "reactorA", Prototype: "ReactorProto", Parent: "regionA"},
		{Name: "regionA", Prototype: "RegionProto"},
		{Name: "instA1", Prototype: "InstProto", Parent: "regionA"},
	}

	ordered := orderByParent(agents)
	position := make(map[string]int, len(ordered))
	for i, a := range ordered {
		position[a.Name] = i
	}

	require.Less(t, position["regionA"], position["reactorA"])
	require.Less(t, position["regionA"], position["instA1"])
}

func TestOrderByParent_BreaksOnCycleRatherThanHanging(t *testing.T) {
	agents := []scenario.Agent{
		{Name: "a", Parent: "b"},
		{Name: "b", Parent: "a"},
	}
	ordered := orderByParent(agents)
	require.Less(t, len(ordered), len(agents))
}
