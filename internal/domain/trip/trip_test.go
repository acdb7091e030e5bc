//go:build unit

package trip_test

import (
	"testing"

	"sameday-trips/internal/domain/flight"
	"sameday-trips/internal/domain/trip"
	"sameday-trips/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func outbound(dest string, hour, minute, duration int, price float64) *flight.Flight {
	return builder.NewFlightBuilder().
		WithRoute("CLT", dest).
		WithDeparture(hour, minute).
		WithDuration(duration).
		WithPrice(price).
		MustBuild()
}

func inbound(origin string, hour, minute, duration int, price float64) *flight.Flight {
	return builder.NewFlightBuilder().
		WithRoute(origin, "CLT").
		WithDeparture(hour, minute).
		WithDuration(duration).
		WithPrice(price).
		MustBuild()
}

func TestFilters(t *testing.T) {
	t.Run("出発は時のみで判定", func(t *testing.T) {
		early := outbound("ATL", 8, 59, 60, 100)
		onTheHour := outbound("ATL", 9, 0, 60, 100)
		tooLong := outbound("ATL", 6, 0, 205, 100)
		maxLength := outbound("ATL", 6, 0, 204, 100)

		got := trip.FilterOutbound([]*flight.Flight{early, onTheHour, tooLong, maxLength}, 9, 204)
		assert.Equal(t, []*flight.Flight{early, maxLength}, got)
	})

	t.Run("帰りは到着時の半開区間", func(t *testing.T) {
		// arrive 15:00, 18:59, 19:00, 14:59
		atMin := inbound("ATL", 14, 0, 60, 100)
		lateInWindow := inbound("ATL", 17, 59, 60, 100)
		atMax := inbound("ATL", 18, 0, 60, 100)
		beforeMin := inbound("ATL", 13, 59, 60, 100)

		got := trip.FilterReturn([]*flight.Flight{atMin, lateInWindow, atMax, beforeMin}, 15, 19, 204)
		assert.Equal(t, []*flight.Flight{atMin, lateInWindow}, got)
	})
}

func TestFindTrips(t *testing.T) {
	t.Run("最低滞在時間を満たす組だけ", func(t *testing.T) {
		out := outbound("ATL", 6, 0, 75, 120)      // arrives 07:15
		retShort := inbound("ATL", 10, 0, 75, 90)  // 2h45m on the ground
		retExact := inbound("ATL", 10, 15, 75, 80) // exactly 3h
		retLong := inbound("ATL", 16, 0, 75, 110)

		trips := trip.FindTrips([]*flight.Flight{out}, []*flight.Flight{retShort, retExact, retLong}, 3.0)
		require.Len(t, trips, 2)
		assert.Same(t, retExact, trips[0].Return())
		assert.InDelta(t, 3.0, trips[0].GroundHours(), 0.0001)
		assert.Equal(t, "3h 00m", trips[0].GroundTime())

		cost, ok := trips[1].TotalCost()
		require.True(t, ok)
		assert.InDelta(t, 230.0, cost, 0.001)
		assert.InDelta(t, 8.75, trips[1].GroundHoursRounded(), 0.0001)
		assert.Equal(t, "11h 15m", trips[1].TotalTripTime())
	})

	t.Run("滞在時間は常に最低値以上", func(t *testing.T) {
		var outs, rets []*flight.Flight
		for h := 5; h < 9; h++ {
			outs = append(outs, outbound("BOS", h, 15, 120, float64(100+h)))
		}
		for h := 10; h < 19; h++ {
			rets = append(rets, inbound("BOS", h, 30, 120, float64(50+h)))
		}
		for _, minGround := range []float64{0, 2.5, 4, 8} {
			for _, c := range trip.FindTrips(outs, rets, minGround) {
				assert.GreaterOrEqual(t, c.GroundHours(), minGround)
			}
		}
	})

	t.Run("負の最低値はゼロとして扱う", func(t *testing.T) {
		out := outbound("ATL", 8, 0, 60, 100) // arrives 09:00
		before := inbound("ATL", 8, 30, 60, 100)

		assert.Empty(t, trip.FindTrips([]*flight.Flight{out}, []*flight.Flight{before}, -1))
	})

	t.Run("空港が一致しない組は除外", func(t *testing.T) {
		out := outbound("ATL", 6, 0, 60, 100)
		ret := inbound("MIA", 16, 0, 60, 100)

		assert.Empty(t, trip.FindTrips([]*flight.Flight{out}, []*flight.Flight{ret}, 3))
	})
}

func TestRank(t *testing.T) {
	atlOut := outbound("ATL", 6, 0, 60, 100)
	bosOut := outbound("BOS", 6, 0, 120, 150)
	atlPricey := inbound("ATL", 16, 0, 60, 300)
	atlCheap := inbound("ATL", 17, 0, 60, 50)
	atlCheapToo := inbound("ATL", 15, 0, 60, 50)
	bosRet := inbound("BOS", 15, 0, 120, 100)

	candidates := append(
		trip.FindTrips([]*flight.Flight{bosOut}, []*flight.Flight{bosRet}, 3),
		trip.FindTrips([]*flight.Flight{atlOut}, []*flight.Flight{atlPricey, atlCheap, atlCheapToo}, 3)...,
	)

	ranked := trip.Rank(candidates)
	require.Len(t, ranked, 4)

	type row struct {
		dest string
		ret  *flight.Flight
		rank int
		best bool
	}
	var got []row
	for _, r := range ranked {
		got = append(got, row{r.Destination(), r.Return(), r.Rank, r.Best})
	}
	assert.Equal(t, []row{
		{"ATL", atlCheap, 1, true},
		{"ATL", atlCheapToo, 2, false},
		{"ATL", atlPricey, 3, false},
		{"BOS", bosRet, 1, true},
	}, got)

	best := trip.BestPerDestination(ranked)
	require.Len(t, best, 2)
	assert.Equal(t, "ATL", best[0].Destination())
	assert.Equal(t, "BOS", best[1].Destination())

	summary := trip.Summarize(ranked)
	require.Len(t, summary, 2)
	assert.Equal(t, 3, summary[0].Options)
	assert.InDelta(t, 150.0, summary[0].MinTotalCost, 0.001)
	assert.InDelta(t, 10.0, summary[0].MaxGroundHours, 0.001)
}
