package flightindex

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flighttsp/flighttsp/costtable"
)

func buildTable() *costtable.Table {
	b := costtable.NewBuilder(3)
	b.Set(0, 0, 1, 20)
	b.Set(0, 0, 2, 10)
	b.Set(1, 1, 2, 5)
	b.Set(2, 2, 0, 7)
	return b.Build()
}

func TestOutboundSortedByPrice(t *testing.T) {
	idx := Build(buildTable())
	legs := idx.Outbound(0, 0)
	require.Equal(t, []Leg{{City: 2, Price: 10}, {City: 1, Price: 20}}, legs, "cheapest leg first")
}

func TestInboundMirrorsOutbound(t *testing.T) {
	idx := Build(buildTable())
	legs := idx.Inbound(2, 0)
	require.Equal(t, []Leg{{City: 0, Price: 10}}, legs)
}

func TestEmptyIndexForUnreachable(t *testing.T) {
	idx := Build(buildTable())
	if legs := idx.Outbound(1, 0); len(legs) != 0 {
		t.Errorf("expected no outbound flights for city 1 on day 0, got %+v", legs)
	}
}

func TestStats(t *testing.T) {
	idx := Build(buildTable())
	s := idx.Stats()
	require.Equal(t, 4, s.TotalLegs)
	require.Greater(t, s.MeanOutboundPrice, 0.0)
}
