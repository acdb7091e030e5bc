//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"sameday-trips/internal/handler/api"
	resdto "sameday-trips/internal/handler/dto/response"
	"sameday-trips/internal/pkg/config"
	"sameday-trips/internal/pkg/errs"
	"sameday-trips/internal/usecase"
	"sameday-trips/tests/common/builder"
	"sameday-trips/tests/common/httptest"
	"sameday-trips/tests/common/testutil"
	usecasemock "sameday-trips/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TripHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockDiscovery *usecasemock.MockDiscoveryUseCase
	handler       *api.TripHandler
}

func (s *TripHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockDiscovery = usecasemock.NewMockDiscoveryUseCase(s.mockCtrl)
	s.handler = api.NewTripHandler(s.mockDiscovery, config.NewTestConfig())

	s.router.POST("/api/trips/search", s.handler.Search)
}

func (s *TripHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTripHandlerSuite(t *testing.T) {
	suite.Run(t, new(TripHandlerTestSuite))
}

type testCaseTrip struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestSearch
// ================================================================================

func (s *TripHandlerTestSuite) TestSearch() {
	url := "/api/trips/search"

	reqBody := builder.NewTripSearchBuilder().BuildRequestDTO()
	result := builder.NewTripSearchBuilder().BuildResult()

	s.Run("正常系: ランク付きの旅程を返すOK", func() {
		s.mockDiscovery.EXPECT().Search(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, opts usecase.DiscoveryOptions) (*usecase.DiscoveryResult, error) {
				s.Equal("CLT", opts.Origin)
				s.Equal(time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC), opts.Date)
				s.Equal(9, opts.DepartByHour)
				s.Equal(15, opts.ReturnAfterHour)
				s.Equal(19, opts.ReturnByHour)
				s.Equal(204, opts.MaxDurationMinutes)
				s.Equal([]string{"ATL"}, opts.Destinations)
				return result, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.TripSearchResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Trips, 1)
		got := body.Trips[0]
		s.Equal(1, got.Rank)
		s.True(got.Best)
		s.Equal("Atlanta", got.City)
		s.Equal("2025-11-15", got.Date)
		s.Equal("AA1234", got.Outbound.FlightNumbers)
		s.Equal("06:00", got.Outbound.Depart)
		s.Equal("07:15", got.Outbound.Arrive)
		s.Equal("1h 15m", got.Outbound.Duration)
		s.Equal(75, got.Outbound.DurationMinutes)
		s.Equal("ATL", got.Return.Origin)
		s.Equal("8h 45m", got.GroundTime)
		s.Equal(8.75, got.GroundHours)
		s.Require().NotNil(got.TotalCost)
		s.Equal(220.0, *got.TotalCost)
		s.Require().Len(body.Summaries, 1)
		s.Equal(1, body.Summaries[0].Options)
	})

	s.Run("正常系: 指定した値で検索窓を上書きOK", func() {
		departBy, returnBy := 8, 20
		req := builder.NewTripSearchBuilder().With(func(b *builder.TripSearchBuilder) {
			b.Origin = "rdu"
			b.DepartBy = &departBy
			b.ReturnBy = &returnBy
		}).BuildRequestDTO()

		s.mockDiscovery.EXPECT().Search(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, opts usecase.DiscoveryOptions) (*usecase.DiscoveryResult, error) {
				s.Equal("RDU", opts.Origin)
				s.Equal(8, opts.DepartByHour)
				s.Equal(20, opts.ReturnByHour)
				return &usecase.DiscoveryResult{}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("異常系: 入力検証で400NG", func() {
		cases := []testCaseTrip{
			{name: "日付なしNG", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
			{name: "日付の書式不正NG", mutate: testutil.Field("date", "11/15/2025"), expectCode: http.StatusBadRequest},
			{name: "出発地が3文字でないNG", mutate: testutil.Field("origin", "CLTX"), expectCode: http.StatusBadRequest},
			{name: "出発期限が範囲外NG", mutate: testutil.Field("departBy", 24), expectCode: http.StatusBadRequest},
			{name: "最低滞在時間が負NG", mutate: testutil.Field("minGroundTime", -1), expectCode: http.StatusBadRequest},
			{name: "目的地コード不正NG", mutate: testutil.Field("destinations", []string{"ATLX"}), expectCode: http.StatusBadRequest},
			{name: "出発期限0時は許容OK", mutate: testutil.Field("departBy", 0), expectCode: http.StatusOK},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				if tc.expectCode == http.StatusOK {
					s.mockDiscovery.EXPECT().Search(gomock.Any(), gomock.Any()).
						Return(&usecase.DiscoveryResult{}, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				if tc.expectCode == http.StatusOK {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
				}
			})
		}
	})

	s.Run("異常系: ユースケースのエラーを状態コードに変換NG", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "検索窓不正", err: errs.Wrap(usecase.ErrInvalidSearchWindow, "return window empty"), expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid search window"},
			{name: "認証失敗", err: errs.Mark(errors.New("token rejected"), errs.ErrAuthentication), expectedStatus: http.StatusBadGateway, expectedMsg: "rejected credentials"},
			{name: "取得元停止", err: errs.Mark(errors.New("503"), errs.ErrSourceUnavailable), expectedStatus: http.StatusBadGateway, expectedMsg: "unavailable"},
			{name: "その他", err: errors.New("catalog unreadable"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockDiscovery.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
