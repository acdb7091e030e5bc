//go:build unit

package rental_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sameday-trips/internal/domain/pricing"
	"sameday-trips/internal/infra/rental"
	"sameday-trips/internal/pkg/config"
	"sameday-trips/internal/pkg/errs"
	"sameday-trips/internal/usecase/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newJobs(url, token string) *rental.Jobs {
	return rental.NewJobs(config.RentalConfig{
		BaseURL:     url,
		Token:       token,
		ActorID:     "actor-1",
		MaxVehicles: 10,
		Timeout:     time.Second,
	}, quietLogger)
}

func TestSubmitJob(t *testing.T) {
	t.Run("検索条件を送信してジョブIDを返すOK", func(t *testing.T) {
		var input map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/acts/actor-1/runs", r.URL.Path)
			assert.Equal(t, "secret", r.URL.Query().Get("token"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&input))
			_, _ = w.Write([]byte(`{"data":{"id":"run-42","status":"READY"}}`))
		}))
		defer srv.Close()

		id, err := newJobs(srv.URL, "secret").SubmitJob(context.Background(), shared.RentalQuery{
			Location:  "Atlanta",
			From:      time.Date(2025, 11, 15, 10, 0, 0, 0, time.UTC),
			Until:     time.Date(2025, 11, 15, 16, 0, 0, 0, time.UTC),
			DriverAge: 25,
		})
		require.NoError(t, err)
		assert.Equal(t, "run-42", id)
		assert.Equal(t, "Atlanta", input["location"])
		assert.Equal(t, "2025-11-15T10:00", input["fromDate"])
		assert.Equal(t, "2025-11-15T16:00", input["untilDate"])
		assert.Equal(t, "daily_price_low_to_high", input["sortBy"])
		assert.EqualValues(t, 10, input["maxVehiclesReturn"])
	})

	t.Run("トークン未設定は認証失敗NG", func(t *testing.T) {
		_, err := newJobs("http://127.0.0.1:1", "").SubmitJob(context.Background(), shared.RentalQuery{Location: "Atlanta"})
		assert.True(t, errs.Is(err, errs.ErrAuthentication))
	})

	t.Run("401は認証失敗NG", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		_, err := newJobs(srv.URL, "wrong").SubmitJob(context.Background(), shared.RentalQuery{Location: "Atlanta"})
		assert.True(t, errs.Is(err, errs.ErrAuthentication))
	})
}

func TestPollStatus(t *testing.T) {
	type testCase struct {
		name    string
		status  string
		want    pricing.JobStatus
		wantErr bool
	}

	cases := []testCase{
		{name: "READYは送信済みOK", status: "READY", want: pricing.JobSubmitted},
		{name: "RUNNINGは実行中OK", status: "RUNNING", want: pricing.JobRunning},
		{name: "TIMING-OUTは実行中OK", status: "TIMING-OUT", want: pricing.JobRunning},
		{name: "SUCCEEDEDは成功OK", status: "SUCCEEDED", want: pricing.JobSucceeded},
		{name: "TIMED-OUTは終端OK", status: "TIMED-OUT", want: pricing.JobTimedOut},
		{name: "未知のステータスNG", status: "PAUSED", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/actor-runs/run-42", r.URL.Path)
				_, _ = w.Write([]byte(`{"data":{"id":"run-42","status":"` + tc.status + `"}}`))
			}))
			defer srv.Close()

			got, err := newJobs(srv.URL, "secret").PollStatus(context.Background(), "run-42")
			if tc.wantErr {
				assert.True(t, errs.Is(err, errs.ErrSourceUnavailable))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFetchResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/actor-runs/run-42/dataset/items", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"avgDailyPrice":{"amount":54.5,"currency":"USD"},"url":"https://turo.com/a","year":2021,"make":"Toyota","model":"Corolla"},
			{"avgDailyPrice":{"amount":61,"currency":"USD"},"vehicleUrl":"https://turo.com/b","make":"Honda","model":"Civic"},
			{"url":"https://turo.com/c","make":"Unpriced"}
		]`))
	}))
	defer srv.Close()

	got, err := newJobs(srv.URL, "secret").FetchResults(context.Background(), "run-42")
	require.NoError(t, err)

	want := []pricing.Vehicle{
		{Description: "2021 Toyota Corolla", DailyPrice: 54.5, Currency: "USD", URL: "https://turo.com/a"},
		{Description: "Honda Civic", DailyPrice: 61, Currency: "USD", URL: "https://turo.com/b"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("vehicles mismatch (-want +got):\n%s", diff)
	}
}
