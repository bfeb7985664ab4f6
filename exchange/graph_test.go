package exchange_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jdangerx/cyclus/exchange"
)

func TestExchangeGraph_ArcsOfPreservesInsertionOrder(t *testing.T) {
	n := exchange.NewNode("n")
	other1 := exchange.NewNode("o1")
	other2 := exchange.NewNode("o2")
	s := exchange.NewNodeSet("S", nil)
	require.NoError(t, s.Add(n))
	require.NoError(t, s.Add(other1))
	require.NoError(t, s.Add(other2))

	a1 := exchange.NewArc(n, other1)
	a2 := exchange.NewArc(n, other2)

	g := exchange.NewExchangeGraph()
	g.AddArc(a2)
	g.AddArc(a1)

	require.Equal(t, []exchange.Arc{a2, a1}, g.ArcsOf(n))
}

func TestArc_EqualityByEndpointIdentity(t *testing.T) {
	u := exchange.NewNode("u")
	v := exchange.NewNode("v")
	a1 := exchange.NewArc(u, v)
	a2 := exchange.NewArc(u, v)
	require.Equal(t, a1, a2)
	require.True(t, a1 == a2)
}

func TestExchangeGraph_MatchLogIsAppendOnlyCopy(t *testing.T) {
	g := exchange.NewExchangeGraph()
	u, v := exchange.NewNode("u"), exchange.NewNode("v")
	a := exchange.NewArc(u, v)
	g.AddMatch(a, 1.0)
	got := g.Matches()
	got[0].Qty = 999 // mutating the returned slice must not affect the log
	require.InDelta(t, 1.0, g.Matches()[0].Qty, 1e-9)
}
