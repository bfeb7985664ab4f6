package portfolio_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jdangerx/cyclus/exchange"
	"github.com/jdangerx/cyclus/portfolio"
)

func TestExtractTrades_EmptyGraphYieldsNoTrades(t *testing.T) {
	g := exchange.NewExchangeGraph()
	require.Empty(t, portfolio.ExtractTrades(g))
}

func TestExtractTrades_SkipsUntaggedNodes(t *testing.T) {
	// A match log entry whose endpoints were never tagged by Build (e.g.
	// a graph assembled directly against package exchange in a test)
	// must not panic ExtractTrades; it is simply not representable as a
	// Trade and is skipped.
	rs := exchange.NewRequestSet("r", []float64{1}, 5)
	u := exchange.NewNode("u")
	require.NoError(t, rs.Add(u))
	ss := exchange.NewNodeSet("s", []float64{1})
	v := exchange.NewNode("v")
	require.NoError(t, ss.Add(v))

	g := exchange.NewExchangeGraph()
	g.AddRequestSet(rs)
	g.AddSupplySet(ss)
	arc := exchange.NewArc(u, v)
	require.NoError(t, u.SetUnitCapacity(arc, []float64{1}))
	require.NoError(t, v.SetUnitCapacity(arc, []float64{1}))
	g.AddArc(arc)
	require.NoError(t, exchange.Match(g))

	require.Empty(t, portfolio.ExtractTrades(g))
}
