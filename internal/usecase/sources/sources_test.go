//go:build unit

package sources_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"sameday-trips/internal/domain/flight"
	"sameday-trips/internal/domain/pricing"
	"sameday-trips/internal/pkg/clock"
	"sameday-trips/internal/pkg/errs"
	"sameday-trips/internal/usecase/shared"
	"sameday-trips/internal/usecase/sources"
	"sameday-trips/tests/common/builder"
	sharedmock "sameday-trips/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	pricingDate = time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)
	quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

func outboundRequest(target flight.ClockTime) sources.Request {
	return sources.Request{
		Origin:      "CLT",
		Destination: "ATL",
		City:        "Atlanta",
		Date:        pricingDate,
		Target:      target,
	}
}

func authErr() error {
	return errs.Mark(errors.New("401 invalid client"), errs.ErrAuthentication)
}

func outageErr() error {
	return errs.Mark(errors.New("503 service unavailable"), errs.ErrSourceUnavailable)
}

// ================================================================================
// CashAdapter
// ================================================================================

func TestCashAdapter(t *testing.T) {
	direct := builder.NewFlightBuilder().WithDeparture(6, 10).WithPrice(120).BuildFareOffer()
	oneStop := builder.NewFlightBuilder().WithDeparture(6, 40).WithSegments("AA100", "AA200").WithPrice(90).BuildFareOffer()
	late := builder.NewFlightBuilder().WithDeparture(11, 0).WithPrice(60).BuildFareOffer()

	query := shared.FareQuery{Origin: "CLT", Destination: "ATL", Date: pricingDate, Adults: 1, MaxResults: 10}

	t.Run("目標時刻に最も近い便の価格OK", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fares := sharedmock.NewMockFareSearcher(ctrl)
		fares.EXPECT().Search(gomock.Any(), query).Return([]flight.RawFareOffer{oneStop, direct, late}, nil)

		adapter := sources.NewCashAdapter(fares, 10, quietLogger)
		res := adapter.FetchPrice(context.Background(), outboundRequest(flight.MustClockTime(6, 0)))

		price, ok := res.Value()
		require.True(t, ok)
		assert.Equal(t, 120.0, price)
	})

	t.Run("不正なオファーは読み飛ばすOK", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		broken := direct
		broken.Segments = nil
		fares := sharedmock.NewMockFareSearcher(ctrl)
		fares.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]flight.RawFareOffer{broken, oneStop}, nil)

		res := sources.NewCashAdapter(fares, 10, quietLogger).FetchPrice(context.Background(), outboundRequest(flight.MustClockTime(6, 0)))

		price, ok := res.Value()
		require.True(t, ok)
		assert.Equal(t, 90.0, price)
	})

	cases := []struct {
		name   string
		offers []flight.RawFareOffer
		err    error
		reason pricing.Reason
	}{
		{name: "許容差を超える便のみNG", offers: []flight.RawFareOffer{late}, reason: pricing.ReasonNoAvailability},
		{name: "オファーなしNG", offers: nil, reason: pricing.ReasonNoAvailability},
		{name: "検索失敗NG", err: outageErr(), reason: pricing.ReasonFetchFailed},
		{name: "認証失敗NG", err: authErr(), reason: pricing.ReasonAuth},
		{name: "タイムアウトNG", err: context.DeadlineExceeded, reason: pricing.ReasonTimeout},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			fares := sharedmock.NewMockFareSearcher(ctrl)
			fares.EXPECT().Search(gomock.Any(), gomock.Any()).Return(tc.offers, tc.err)

			res := sources.NewCashAdapter(fares, 10, quietLogger).FetchPrice(context.Background(), outboundRequest(flight.MustClockTime(6, 0)))

			assert.False(t, res.IsOK())
			assert.Equal(t, tc.reason, res.Reason())
			if tc.err != nil {
				assert.True(t, errs.Is(res.Err(), errs.ErrSourceUnavailable))
			}
		})
	}
}

// ================================================================================
// AwardAdapter
// ================================================================================

func TestAwardAdapter(t *testing.T) {
	offer := builder.NewFlightBuilder().
		WithDeparture(6, 15).
		WithMiles(map[string]float64{flight.CabinMain: 12500, flight.CabinFirst: 30000}).
		BuildAwardOffer()
	businessOnly := builder.NewFlightBuilder().
		WithDeparture(6, 15).
		WithMiles(map[string]float64{flight.CabinBusiness: 25000}).
		BuildAwardOffer()
	page := shared.AwardPage{Offers: []flight.RawAwardOffer{offer}, Parsed: true}

	newAdapter := func(r shared.AwardRenderer) *sources.AwardAdapter {
		return sources.NewAwardAdapter(r, sources.NewLease(), 2, time.Millisecond, quietLogger)
	}

	t.Run("メインとファーストのマイルOK", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		renderer := sharedmock.NewMockAwardRenderer(ctrl)
		renderer.EXPECT().RenderAndExtract(gomock.Any(), "CLT", "ATL", pricingDate).Return(page, nil)

		res := newAdapter(renderer).FetchPrice(context.Background(), outboundRequest(flight.MustClockTime(6, 0)))

		miles, ok := res.Value()
		require.True(t, ok)
		require.NotNil(t, miles.Main)
		require.NotNil(t, miles.First)
		assert.Equal(t, 12500.0, *miles.Main)
		assert.Equal(t, 30000.0, *miles.First)
	})

	t.Run("一時的な障害は再試行OK", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		renderer := sharedmock.NewMockAwardRenderer(ctrl)
		gomock.InOrder(
			renderer.EXPECT().RenderAndExtract(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(shared.AwardPage{}, outageErr()),
			renderer.EXPECT().RenderAndExtract(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(page, nil),
		)

		res := newAdapter(renderer).FetchPrice(context.Background(), outboundRequest(flight.MustClockTime(6, 0)))
		assert.True(t, res.IsOK())
	})

	t.Run("認証失敗は再試行しないNG", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		renderer := sharedmock.NewMockAwardRenderer(ctrl)
		renderer.EXPECT().RenderAndExtract(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(shared.AwardPage{}, authErr()).Times(1)

		res := newAdapter(renderer).FetchPrice(context.Background(), outboundRequest(flight.MustClockTime(6, 0)))
		assert.Equal(t, pricing.ReasonAuth, res.Reason())
	})

	t.Run("再試行上限で取得失敗NG", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		renderer := sharedmock.NewMockAwardRenderer(ctrl)
		renderer.EXPECT().RenderAndExtract(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(shared.AwardPage{}, outageErr()).Times(3)

		res := newAdapter(renderer).FetchPrice(context.Background(), outboundRequest(flight.MustClockTime(6, 0)))
		assert.Equal(t, pricing.ReasonFetchFailed, res.Reason())
		assert.True(t, errs.Is(res.Err(), shared.ErrMaxRetriesExceeded))
	})

	noAvail := []struct {
		name   string
		page   shared.AwardPage
		target flight.ClockTime
	}{
		{name: "解析できないページNG", page: shared.AwardPage{Parsed: false}, target: flight.MustClockTime(6, 0)},
		{name: "便なしページNG", page: shared.AwardPage{Parsed: true}, target: flight.MustClockTime(6, 0)},
		{name: "30分超の差NG", page: page, target: flight.MustClockTime(6, 46)},
		{name: "対象キャビンなしNG", page: shared.AwardPage{Offers: []flight.RawAwardOffer{businessOnly}, Parsed: true}, target: flight.MustClockTime(6, 0)},
	}
	for _, tc := range noAvail {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			renderer := sharedmock.NewMockAwardRenderer(ctrl)
			renderer.EXPECT().RenderAndExtract(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(tc.page, nil)

			res := newAdapter(renderer).FetchPrice(context.Background(), outboundRequest(tc.target))
			assert.Equal(t, pricing.ReasonNoAvailability, res.Reason())
			assert.NoError(t, res.Err())
		})
	}
}

// ================================================================================
// Lease
// ================================================================================

func TestLease(t *testing.T) {
	t.Run("同時に一つだけ保持OK", func(t *testing.T) {
		lease := sources.NewLease()
		release, err := lease.Acquire(context.Background())
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err = lease.Acquire(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		release()
		again, err := lease.Acquire(context.Background())
		require.NoError(t, err)
		again()
	})
}

// ================================================================================
// RentalAdapter
// ================================================================================

func TestRentalAdapter(t *testing.T) {
	opts := sources.RentalOptions{PollInterval: time.Millisecond, MaxWait: 50 * time.Millisecond, DriverAge: 25}
	req := sources.Request{
		Origin:      "CLT",
		Destination: "ATL",
		City:        "ATL Atlanta",
		Date:        pricingDate,
		Target:      flight.MustClockTime(8, 30),
		Until:       flight.MustClockTime(16, 0),
	}
	vehicles := []pricing.Vehicle{
		{Description: "Midsize SUV", DailyPrice: 64.5, Currency: "USD", URL: "https://turo.com/a"},
		{Description: "Compact", DailyPrice: 41, Currency: "USD", URL: "https://turo.com/b"},
	}
	newAdapter := func(jobs shared.RentalJobs) *sources.RentalAdapter {
		return sources.NewRentalAdapter(jobs, opts, clock.NewMockClock(pricingDate), quietLogger)
	}

	t.Run("最安の車両OK", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		jobs := sharedmock.NewMockRentalJobs(ctrl)
		jobs.EXPECT().SubmitJob(gomock.Any(), shared.RentalQuery{
			Location:  "atlanta",
			From:      time.Date(2025, 11, 15, 8, 30, 0, 0, time.UTC),
			Until:     time.Date(2025, 11, 15, 16, 0, 0, 0, time.UTC),
			DriverAge: 25,
		}).Return("run-1", nil)
		gomock.InOrder(
			jobs.EXPECT().PollStatus(gomock.Any(), "run-1").Return(pricing.JobRunning, nil),
			jobs.EXPECT().PollStatus(gomock.Any(), "run-1").Return(pricing.JobSucceeded, nil),
		)
		jobs.EXPECT().FetchResults(gomock.Any(), "run-1").Return(vehicles, nil)

		res := newAdapter(jobs).FetchPrice(context.Background(), req)

		v, ok := res.Value()
		require.True(t, ok)
		assert.Equal(t, "Compact", v.Description)
		assert.Equal(t, 41.0, v.DailyPrice)
	})

	t.Run("状態取得の一時失敗は次の周期で再試行OK", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		jobs := sharedmock.NewMockRentalJobs(ctrl)
		jobs.EXPECT().SubmitJob(gomock.Any(), gomock.Any()).Return("run-2", nil)
		gomock.InOrder(
			jobs.EXPECT().PollStatus(gomock.Any(), "run-2").Return(pricing.JobStatus(""), outageErr()),
			jobs.EXPECT().PollStatus(gomock.Any(), "run-2").Return(pricing.JobSucceeded, nil),
		)
		jobs.EXPECT().FetchResults(gomock.Any(), "run-2").Return(vehicles[:1], nil)

		res := newAdapter(jobs).FetchPrice(context.Background(), req)
		assert.True(t, res.IsOK())
	})

	t.Run("結果なしは空きなしNG", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		jobs := sharedmock.NewMockRentalJobs(ctrl)
		jobs.EXPECT().SubmitJob(gomock.Any(), gomock.Any()).Return("run-3", nil)
		jobs.EXPECT().PollStatus(gomock.Any(), "run-3").Return(pricing.JobSucceeded, nil)
		jobs.EXPECT().FetchResults(gomock.Any(), "run-3").Return(nil, nil)

		res := newAdapter(jobs).FetchPrice(context.Background(), req)
		assert.Equal(t, pricing.ReasonNoAvailability, res.Reason())
	})

	t.Run("ジョブ失敗NG", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		jobs := sharedmock.NewMockRentalJobs(ctrl)
		jobs.EXPECT().SubmitJob(gomock.Any(), gomock.Any()).Return("run-4", nil)
		jobs.EXPECT().PollStatus(gomock.Any(), "run-4").Return(pricing.JobFailed, nil)

		res := newAdapter(jobs).FetchPrice(context.Background(), req)
		assert.Equal(t, pricing.ReasonFetchFailed, res.Reason())
	})

	t.Run("待機上限でタイムアウトNG", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		jobs := sharedmock.NewMockRentalJobs(ctrl)
		jobs.EXPECT().SubmitJob(gomock.Any(), gomock.Any()).Return("run-5", nil)
		jobs.EXPECT().PollStatus(gomock.Any(), "run-5").Return(pricing.JobRunning, nil).AnyTimes()

		res := newAdapter(jobs).FetchPrice(context.Background(), req)
		assert.Equal(t, pricing.ReasonTimeout, res.Reason())
		assert.True(t, errs.Is(res.Err(), sources.ErrPollCeiling))
	})

	t.Run("投入時の認証失敗NG", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		jobs := sharedmock.NewMockRentalJobs(ctrl)
		jobs.EXPECT().SubmitJob(gomock.Any(), gomock.Any()).Return("", authErr())

		res := newAdapter(jobs).FetchPrice(context.Background(), req)
		assert.Equal(t, pricing.ReasonAuth, res.Reason())
	})

	t.Run("検索地名の正規化", func(t *testing.T) {
		assert.Equal(t, "atlanta", sources.SearchCity("ATL Atlanta"))
		assert.Equal(t, "miami", sources.SearchCity("Miami"))
		assert.Equal(t, "boston", sources.SearchCity(" Boston "))
	})
}
