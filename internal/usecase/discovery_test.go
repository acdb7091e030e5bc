//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"sameday-trips/internal/domain/flight"
	"sameday-trips/internal/pkg/errs"
	"sameday-trips/internal/usecase"
	"sameday-trips/internal/usecase/shared"
	"sameday-trips/tests/common/builder"
	sharedmock "sameday-trips/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type discoveryFixture struct {
	fares    *sharedmock.MockFareSearcher
	catalog  *sharedmock.MockDestinationCatalog
	trips    *sharedmock.MockTripSink
	workList *sharedmock.MockWorkListStore
	uc       usecase.DiscoveryUseCase
}

func newDiscoveryFixture(t *testing.T) *discoveryFixture {
	ctrl := gomock.NewController(t)
	f := &discoveryFixture{
		fares:    sharedmock.NewMockFareSearcher(ctrl),
		catalog:  sharedmock.NewMockDestinationCatalog(ctrl),
		trips:    sharedmock.NewMockTripSink(ctrl),
		workList: sharedmock.NewMockWorkListStore(ctrl),
	}
	f.uc = usecase.NewDiscoveryUseCase(f.fares, f.catalog, f.trips, f.workList, pricingConfig(), quietLogger)
	return f
}

// routeFares answers each fare search from a route keyed "ORIGIN-DEST".
func (f *discoveryFixture) routeFares(routes map[string][]flight.RawFareOffer, failures map[string]error) {
	f.fares.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q shared.FareQuery) ([]flight.RawFareOffer, error) {
		key := q.Origin + "-" + q.Destination
		if err, ok := failures[key]; ok {
			return nil, err
		}
		return routes[key], nil
	}).AnyTimes()
}

func discoveryOptions() usecase.DiscoveryOptions {
	return usecase.DiscoveryOptionsFrom(pricingConfig().Search, runDate)
}

var atlRoutes = map[string][]flight.RawFareOffer{
	"CLT-ATL": {
		builder.NewFlightBuilder().WithDeparture(6, 10).WithDuration(75).WithPrice(120).BuildFareOffer(),
		builder.NewFlightBuilder().WithDeparture(6, 40).WithDuration(90).WithSegments("AA100", "AA200").WithPrice(90).BuildFareOffer(),
		builder.NewFlightBuilder().WithDeparture(12, 0).WithDuration(75).WithPrice(60).BuildFareOffer(),
	},
	"ATL-CLT": {
		builder.NewFlightBuilder().WithRoute("ATL", "CLT").WithDeparture(16, 0).WithDuration(75).WithPrice(110).BuildFareOffer(),
		builder.NewFlightBuilder().WithRoute("ATL", "CLT").WithDeparture(19, 30).WithDuration(75).WithPrice(50).BuildFareOffer(),
	},
}

func TestDiscoverySearch(t *testing.T) {
	t.Run("同日往復の候補を順位付け", func(t *testing.T) {
		f := newDiscoveryFixture(t)
		f.catalog.EXPECT().Destinations(gomock.Any()).Return([]shared.Destination{
			{Code: "ATL", City: "Atlanta"},
			{Code: "CLT", City: "Charlotte"},
		}, nil)
		f.routeFares(atlRoutes, nil)

		result, err := f.uc.Search(context.Background(), discoveryOptions())
		require.NoError(t, err)

		require.Len(t, result.Trips, 2)
		best := result.Trips[0]
		assert.Equal(t, "Atlanta", best.City)
		assert.True(t, best.Trip.Best)
		assert.Equal(t, "06:40", best.Trip.Outbound().DepartClock().String())
		cost, ok := best.Trip.TotalCost()
		require.True(t, ok)
		assert.Equal(t, 200.0, cost)
		assert.Equal(t, 2, result.Trips[1].Trip.Rank)

		require.Len(t, result.Summaries, 1)
		assert.Equal(t, 2, result.Summaries[0].Options)
		assert.Equal(t, 200.0, result.Summaries[0].MinTotalCost)
		assert.Empty(t, result.Failed)
	})

	t.Run("一部の宛先の失敗は記録して継続", func(t *testing.T) {
		f := newDiscoveryFixture(t)
		f.catalog.EXPECT().Destinations(gomock.Any()).Return([]shared.Destination{
			{Code: "ATL", City: "Atlanta"},
			{Code: "MIA", City: "Miami"},
		}, nil)
		f.routeFares(atlRoutes, map[string]error{"CLT-MIA": outageErr()})

		result, err := f.uc.Search(context.Background(), discoveryOptions())
		require.NoError(t, err)
		assert.Equal(t, []string{"MIA"}, result.Failed)
		assert.Len(t, result.Trips, 2)
	})

	t.Run("認証失敗は検索全体を中止NG", func(t *testing.T) {
		f := newDiscoveryFixture(t)
		f.catalog.EXPECT().Destinations(gomock.Any()).Return([]shared.Destination{
			{Code: "ATL", City: "Atlanta"},
			{Code: "MIA", City: "Miami"},
		}, nil)
		f.routeFares(nil, map[string]error{"CLT-ATL": authErr()})

		_, err := f.uc.Search(context.Background(), discoveryOptions())
		assert.True(t, errs.Is(err, errs.ErrAuthentication))
	})

	t.Run("宛先の絞り込み", func(t *testing.T) {
		f := newDiscoveryFixture(t)
		f.catalog.EXPECT().Destinations(gomock.Any()).Return([]shared.Destination{
			{Code: "ATL", City: "Atlanta"},
			{Code: "MIA", City: "Miami"},
		}, nil)
		f.fares.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q shared.FareQuery) ([]flight.RawFareOffer, error) {
			assert.NotEqual(t, "ATL", q.Destination)
			assert.NotEqual(t, "ATL", q.Origin)
			assert.Equal(t, 50, q.MaxResults)
			return nil, nil
		}).Times(1)

		opts := discoveryOptions()
		opts.Destinations = []string{"mia"}
		result, err := f.uc.Search(context.Background(), opts)
		require.NoError(t, err)
		assert.Empty(t, result.Trips)
	})

	invalid := []struct {
		name   string
		mutate func(*usecase.DiscoveryOptions)
	}{
		{name: "出発地なしNG", mutate: func(o *usecase.DiscoveryOptions) { o.Origin = "" }},
		{name: "帰着時間帯が空NG", mutate: func(o *usecase.DiscoveryOptions) { o.ReturnAfterHour = 19 }},
		{name: "最大所要時間0NG", mutate: func(o *usecase.DiscoveryOptions) { o.MaxDurationMinutes = 0 }},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			f := newDiscoveryFixture(t)
			opts := discoveryOptions()
			tc.mutate(&opts)

			_, err := f.uc.Search(context.Background(), opts)
			assert.True(t, errs.Is(err, usecase.ErrInvalidSearchWindow))
		})
	}
}

func TestDiscover(t *testing.T) {
	t.Run("旅程と作業リストを書き出す", func(t *testing.T) {
		f := newDiscoveryFixture(t)
		f.catalog.EXPECT().Destinations(gomock.Any()).Return([]shared.Destination{{Code: "ATL", City: "Atlanta"}}, nil)
		f.routeFares(atlRoutes, nil)

		f.trips.EXPECT().WriteTrips(gomock.Any(), gomock.Len(2)).Return(nil)
		var saved []shared.WorkItem
		f.workList.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, items []shared.WorkItem) error {
			saved = items
			return nil
		})

		_, err := f.uc.Discover(context.Background(), discoveryOptions())
		require.NoError(t, err)

		require.Len(t, saved, 1)
		item := saved[0]
		assert.Equal(t, "ATL", item.Destination)
		assert.Equal(t, "Atlanta", item.City)
		assert.Equal(t, "06:40", item.DepartOrigin.String())
		require.NotNil(t, item.ArriveDestination)
		assert.Equal(t, "08:10", item.ArriveDestination.String())
		assert.Equal(t, "16:00", item.DepartDestination.String())
	})

	t.Run("旅程の書き出し失敗NG", func(t *testing.T) {
		f := newDiscoveryFixture(t)
		f.catalog.EXPECT().Destinations(gomock.Any()).Return([]shared.Destination{{Code: "ATL", City: "Atlanta"}}, nil)
		f.routeFares(atlRoutes, nil)
		f.trips.EXPECT().WriteTrips(gomock.Any(), gomock.Any()).Return(outageErr())

		_, err := f.uc.Discover(context.Background(), discoveryOptions())
		assert.Error(t, err)
	})
}
