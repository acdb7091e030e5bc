//go:build unit

package pricing_test

import (
	"errors"
	"testing"
	"time"

	"sameday-trips/internal/domain/pricing"
	"sameday-trips/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pricingDate = time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)
	now         = time.Date(2025, 11, 1, 12, 30, 0, 0, time.UTC)
	errFetch    = errors.New("boom")
)

func ptr(v float64) *float64 { return &v }

func TestCompositeStatus(t *testing.T) {
	t.Run("各ソースのトークンをソース順に連結", func(t *testing.T) {
		r := pricing.NewRecord(uuid.New(), "ATL", "Atlanta", pricingDate)

		require.NoError(t, r.ApplyCar(pricing.OK(pricing.Vehicle{Description: "2021 Tesla Model 3", DailyPrice: 89})))
		require.NoError(t, r.ApplyAward(pricing.AwardQuote{
			Outbound: pricing.Unavailable[pricing.AwardMiles](pricing.ReasonNoAvailability, nil),
			Return:   pricing.Unavailable[pricing.AwardMiles](pricing.ReasonNoAvailability, nil),
		}))
		require.NoError(t, r.ApplyCash(pricing.CashQuote{
			Outbound: pricing.OK(120.0),
			Return:   pricing.OK(95.5),
		}))
		require.NoError(t, r.Finalize(now))

		assert.Equal(t, "Cash OK | Award: No availability | Turo OK", r.Status)
		assert.Equal(t, now, r.UpdatedAt)
		require.NotNil(t, r.Cash.Total)
		assert.InDelta(t, 215.5, *r.Cash.Total, 0.001)
		assert.False(t, r.Award.Outbound.Available)
	})

	t.Run("片道のみ取得はPartial", func(t *testing.T) {
		r := pricing.NewRecord(uuid.New(), "MIA", "Miami", pricingDate)
		require.NoError(t, r.ApplyCash(pricing.CashQuote{
			Outbound: pricing.OK(100.0),
			Return:   pricing.Unavailable[float64](pricing.ReasonNoAvailability, nil),
		}))
		require.NoError(t, r.ApplyAward(pricing.AwardQuote{
			Outbound: pricing.OK(pricing.AwardMiles{Main: ptr(12500)}),
			Return:   pricing.Unavailable[pricing.AwardMiles](pricing.ReasonFetchFailed, errFetch),
		}))
		require.NoError(t, r.Skip(pricing.SourceCar))
		require.NoError(t, r.Finalize(now))

		assert.Equal(t, "Cash Partial | Award Partial | Turo Skipped", r.Status)
		assert.Nil(t, r.Cash.Total)
		assert.True(t, r.Award.Outbound.Available)
	})

	t.Run("取得失敗と在庫なしを区別", func(t *testing.T) {
		failed := pricing.AwardQuote{
			Outbound: pricing.Unavailable[pricing.AwardMiles](pricing.ReasonFetchFailed, errFetch),
			Return:   pricing.Unavailable[pricing.AwardMiles](pricing.ReasonTimeout, errFetch),
		}
		assert.Equal(t, pricing.OutcomeFailed, failed.Outcome())

		mixed := pricing.AwardQuote{
			Outbound: pricing.Unavailable[pricing.AwardMiles](pricing.ReasonFetchFailed, errFetch),
			Return:   pricing.Unavailable[pricing.AwardMiles](pricing.ReasonNoAvailability, nil),
		}
		assert.Equal(t, pricing.OutcomeNoAvailability, mixed.Outcome())

		assert.Equal(t, pricing.OutcomeNoAvailability, pricing.CarOutcome(pricing.Unavailable[pricing.Vehicle](pricing.ReasonNoAvailability, nil)))
		assert.Equal(t, pricing.OutcomeFailed, pricing.CarOutcome(pricing.Unavailable[pricing.Vehicle](pricing.ReasonAuth, errFetch)))
	})

	t.Run("ステータス文字列の往復", func(t *testing.T) {
		outcomes := map[pricing.Source]pricing.Outcome{
			pricing.SourceCash:  pricing.OutcomeFailed,
			pricing.SourceAward: pricing.OutcomeNoAvailability,
			pricing.SourceCar:   pricing.OutcomeSkipped,
		}
		status := pricing.CompositeStatus(outcomes)
		assert.Equal(t, "Cash Failed | Award: No availability | Turo Skipped", status)

		if diff := cmp.Diff(outcomes, pricing.ParseCompositeStatus(status)); diff != "" {
			t.Errorf("outcomes mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestRecordLifecycle(t *testing.T) {
	t.Run("確定後の変更はNG", func(t *testing.T) {
		r := pricing.NewRecord(uuid.New(), "BOS", "Boston", pricingDate)
		require.NoError(t, r.Finalize(now))

		assert.ErrorIs(t, r.ApplyCash(pricing.CashQuote{}), errs.ErrRecordFinalized)
		assert.ErrorIs(t, r.ApplyAward(pricing.AwardQuote{}), errs.ErrRecordFinalized)
		assert.ErrorIs(t, r.ApplyCar(pricing.OK(pricing.Vehicle{})), errs.ErrRecordFinalized)
		assert.ErrorIs(t, r.Skip(pricing.SourceCash), errs.ErrRecordFinalized)
		assert.ErrorIs(t, r.Finalize(now), errs.ErrRecordFinalized)
	})

	t.Run("全ソース失敗の判定", func(t *testing.T) {
		r := pricing.NewRecord(uuid.New(), "BOS", "Boston", pricingDate)
		require.NoError(t, r.Fail(pricing.SourceCash))
		require.NoError(t, r.Skip(pricing.SourceAward))
		require.NoError(t, r.ApplyCar(pricing.Unavailable[pricing.Vehicle](pricing.ReasonTimeout, errFetch)))
		assert.True(t, r.AllSourcesFailed())

		skipped := pricing.NewRecord(uuid.New(), "BOS", "Boston", pricingDate)
		require.NoError(t, skipped.Skip(pricing.SourceCash))
		assert.False(t, skipped.AllSourcesFailed())

		noAvail := pricing.NewRecord(uuid.New(), "BOS", "Boston", pricingDate)
		require.NoError(t, noAvail.ApplyCar(pricing.Unavailable[pricing.Vehicle](pricing.ReasonNoAvailability, nil)))
		assert.False(t, noAvail.AllSourcesFailed())
	})
}

func TestJob(t *testing.T) {
	t.Run("正常な遷移", func(t *testing.T) {
		job, err := pricing.NewJob("run-1", now)
		require.NoError(t, err)
		assert.Equal(t, pricing.JobSubmitted, job.Status())

		require.NoError(t, job.Transition(pricing.JobRunning))
		require.NoError(t, job.Transition(pricing.JobRunning))
		require.NoError(t, job.Transition(pricing.JobSucceeded))
		require.NoError(t, job.Complete([]pricing.Vehicle{
			{Description: "2020 Honda Civic", DailyPrice: 55},
			{Description: "2019 Toyota Camry", DailyPrice: 48},
		}))

		cheapest, ok := job.Cheapest()
		require.True(t, ok)
		assert.Equal(t, "2019 Toyota Camry", cheapest.Description)
		assert.Equal(t, 90*time.Second, job.Elapsed(now.Add(90*time.Second)))
	})

	t.Run("不正な遷移はNG", func(t *testing.T) {
		job, err := pricing.NewJob("run-2", now)
		require.NoError(t, err)
		require.NoError(t, job.Transition(pricing.JobRunning))

		assert.True(t, errs.Is(job.Transition(pricing.JobSubmitted), errs.ErrInvalidJobTransition))
		assert.True(t, errs.Is(job.Complete(nil), errs.ErrInvalidJobTransition))
		assert.True(t, errs.Is(job.Transition("PAUSED"), errs.ErrInvalidJobTransition))

		require.NoError(t, job.Transition(pricing.JobAborted))
		assert.True(t, errs.Is(job.Transition(pricing.JobRunning), errs.ErrInvalidJobTransition))
	})

	t.Run("ジョブIDなしNG", func(t *testing.T) {
		_, err := pricing.NewJob("", now)
		require.Error(t, err)
	})
}
