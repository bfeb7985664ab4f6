package exchange_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jdangerx/cyclus/exchange"
)

// buildSimpleArc wires one request node against one bid node, each in its
// own NodeSet, and returns the arc plus the graph it was registered on.
func buildSimpleArc(t *testing.T, reqCap, bidCap, reqCoef, bidCoef float64) (*exchange.ExchangeGraph, exchange.Arc, *exchange.RequestSet) {
	t.Helper()
	rs := exchange.NewRequestSet("R", []float64{reqCap}, reqCap/reqCoef)
	bs := exchange.NewNodeSet("B", []float64{bidCap})

	reqNode := exchange.NewNode("req")
	bidNode := exchange.NewNode("bid")
	require.NoError(t, rs.Add(reqNode))
	require.NoError(t, bs.Add(bidNode))

	a := exchange.NewArc(reqNode, bidNode)
	require.NoError(t, reqNode.SetUnitCapacity(a, []float64{reqCoef}))
	require.NoError(t, bidNode.SetUnitCapacity(a, []float64{bidCoef}))

	g := exchange.NewExchangeGraph()
	g.AddRequestSet(rs)
	g.AddSupplySet(bs)
	g.AddArc(a)
	return g, a, rs
}

func TestMatch_EmptyGraphProducesNoMatches(t *testing.T) {
	g := exchange.NewExchangeGraph()
	require.NoError(t, exchange.Match(g))
	require.Empty(t, g.Matches())
}

func TestMatch_ZeroQtyRequestProducesNoMatches(t *testing.T) {
	rs := exchange.NewRequestSet("R", nil, 0)
	bs := exchange.NewNodeSet("B", nil)
	reqNode, bidNode := exchange.NewNode("req"), exchange.NewNode("bid")
	require.NoError(t, rs.Add(reqNode))
	require.NoError(t, bs.Add(bidNode))
	a := exchange.NewArc(reqNode, bidNode)
	require.NoError(t, reqNode.SetUnitCapacity(a, nil))
	require.NoError(t, bidNode.SetUnitCapacity(a, nil))

	g := exchange.NewExchangeGraph()
	g.AddRequestSet(rs)
	g.AddSupplySet(bs)
	g.AddArc(a)

	require.NoError(t, exchange.Match(g))
	require.Empty(t, g.Matches())
}

func TestMatch_SingleArcFullySatisfiesSmallerSide(t *testing.T) {
	// Request wants 4 units (coef 1 against cap 4); bid can supply 10
	// (coef 1 against cap 10). The request should be fully matched.
	g, a, rs := buildSimpleArc(t, 4, 10, 1, 1)

	require.NoError(t, exchange.Match(g))
	matches := g.Matches()
	require.Len(t, matches, 1)
	require.Equal(t, a, matches[0].Arc)
	require.InDelta(t, 4.0, matches[0].Qty, 1e-9)
	require.InDelta(t, 0.0, rs.Remaining(), 1e-9)

	remainingBidCap, err := exchange.Capacity(a.V, a)
	require.NoError(t, err)
	require.InDelta(t, 6.0, remainingBidCap, 1e-9)
}

func TestMatch_UnderFulfillmentIsSilent(t *testing.T) {
	// Bid can only supply 2, request wants 4: matcher should commit 2 and
	// stop, with no error — under-fulfillment is legal.
	g, _, rs := buildSimpleArc(t, 4, 2, 1, 1)

	require.NoError(t, exchange.Match(g))
	matches := g.Matches()
	require.Len(t, matches, 1)
	require.InDelta(t, 2.0, matches[0].Qty, 1e-9)
	require.InDelta(t, 2.0, rs.Remaining(), 1e-9)
}

func TestMatch_VisitsArcsInInsertionOrder(t *testing.T) {
	rs := exchange.NewRequestSet("R", []float64{10}, 10)
	bs1 := exchange.NewNodeSet("B1", []float64{3})
	bs2 := exchange.NewNodeSet("B2", []float64{100})

	reqNode := exchange.NewNode("req")
	bidNode1 := exchange.NewNode("bid1")
	bidNode2 := exchange.NewNode("bid2")
	require.NoError(t, rs.Add(reqNode))
	require.NoError(t, bs1.Add(bidNode1))
	require.NoError(t, bs2.Add(bidNode2))

	a1 := exchange.NewArc(reqNode, bidNode1)
	a2 := exchange.NewArc(reqNode, bidNode2)
	require.NoError(t, reqNode.SetUnitCapacity(a1, []float64{1}))
	require.NoError(t, bidNode1.SetUnitCapacity(a1, []float64{1}))
	require.NoError(t, reqNode.SetUnitCapacity(a2, []float64{1}))
	require.NoError(t, bidNode2.SetUnitCapacity(a2, []float64{1}))

	g := exchange.NewExchangeGraph()
	g.AddRequestSet(rs)
	g.AddSupplySet(bs1)
	g.AddSupplySet(bs2)
	g.AddArc(a1)
	g.AddArc(a2)

	require.NoError(t, exchange.Match(g))
	matches := g.Matches()
	require.Len(t, matches, 2)
	require.Equal(t, a1, matches[0].Arc)
	require.InDelta(t, 3.0, matches[0].Qty, 1e-9) // a1 exhausted first, in order
	require.Equal(t, a2, matches[1].Arc)
	require.InDelta(t, 7.0, matches[1].Qty, 1e-9)
}

func TestMatch_RequestSetConservation(t *testing.T) {
	// Total across all arcs incident to the request-set must never exceed
	// qty + eps, regardless of how much supply is available.
	rs := exchange.NewRequestSet("R", []float64{5}, 5)
	bs := exchange.NewNodeSet("B", []float64{1000})
	reqNode, bidNode := exchange.NewNode("req"), exchange.NewNode("bid")
	require.NoError(t, rs.Add(reqNode))
	require.NoError(t, bs.Add(bidNode))
	a := exchange.NewArc(reqNode, bidNode)
	require.NoError(t, reqNode.SetUnitCapacity(a, []float64{1}))
	require.NoError(t, bidNode.SetUnitCapacity(a, []float64{1}))

	g := exchange.NewExchangeGraph()
	g.AddRequestSet(rs)
	g.AddSupplySet(bs)
	g.AddArc(a)

	require.NoError(t, exchange.Match(g))
	var total float64
	for _, m := range g.Matches() {
		total += m.Qty
	}
	require.LessOrEqual(t, total, rs.Qty()+1e-6)
}

func TestMatch_DeterministicAcrossRuns(t *testing.T) {
	build := func() *exchange.ExchangeGraph {
		g, _, _ := buildSimpleArc(t, 4, 10, 1, 1)
		return g
	}
	g1, g2 := build(), build()
	require.NoError(t, exchange.Match(g1))
	require.NoError(t, exchange.Match(g2))
	require.Equal(t, g1.Matches(), g2.Matches())
}
