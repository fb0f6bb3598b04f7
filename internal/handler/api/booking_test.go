//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"service-marketplace/internal/domain/booking"
	"service-marketplace/internal/domain/refund"
	"service-marketplace/internal/domain/slot"
	"service-marketplace/internal/domain/user"
	"service-marketplace/internal/handler/api"
	reqdto "service-marketplace/internal/handler/dto/request"
	resdto "service-marketplace/internal/handler/dto/response"
	"service-marketplace/internal/pkg/errs"
	"service-marketplace/internal/usecase/commands"
	"service-marketplace/internal/usecase/queries"
	"service-marketplace/tests/common/builder"
	"service-marketplace/tests/common/httptest"
	"service-marketplace/tests/common/testutil"
	commandsmock "service-marketplace/tests/mock/commands"
	queriesmock "service-marketplace/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	customerID   uuid.UUID
	providerID   uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.customerID = uuid.New()
	s.providerID = uuid.New()

	h := api.NewBookingHandler(s.mockCommands, s.mockQueries)
	asCustomer := func(hf gin.HandlerFunc) gin.HandlerFunc { return withActorAs(s.customerID, user.RoleCustomer, hf) }
	asProvider := func(hf gin.HandlerFunc) gin.HandlerFunc {
		return withActorAs(s.providerID, user.RoleServiceProvider, hf)
	}

	s.router.POST("/bookings", asCustomer(h.Create))
	s.router.GET("/bookings", asCustomer(h.ListMine))
	s.router.GET("/bookings/:id", asCustomer(h.Get))
	s.router.POST("/bookings/:id/cancel", asCustomer(h.Cancel))
	s.router.POST("/provider/bookings/:id/complete", asProvider(h.Complete))
	s.router.POST("/provider/bookings/:id/no-show", asProvider(h.MarkNoShow))
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	reqBody := builder.NewBookingBuilder().BuildDTO()

	s.Run("正常系: 201で予約IDを返す", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, s.customerID, gomock.Nil()).
			Return(&commands.CreateBookingResult{BookingID: id}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Content-Type": "application/json; charset=utf-8"})
		s.Equal(id, response.ID)
		s.False(response.IsReplayed)
	})

	s.Run("正常系: 冪等キーの再送は200", func() {
		key := uuid.New()
		id := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, s.customerID, &key).
			Return(&commands.CreateBookingResult{BookingID: id, IsReplayed: true}, nil).Times(1)

		rec := httptest.Do(s.T(), s.router, httptest.Request{
			Method:    http.MethodPost,
			Path:      url,
			Body:      reqBody,
			AuthToken: "token",
			Headers:   map[string]string{api.IdempotencyKeyHeader: key.String()},
		})

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.IsReplayed)
		s.Equal(id, response.ID)
	})

	s.Run("異常系: UUIDでない冪等キーは400", func() {
		rec := httptest.Do(s.T(), s.router, httptest.Request{
			Method:    http.MethodPost,
			Path:      url,
			Body:      reqBody,
			AuthToken: "token",
			Headers:   map[string]string{api.IdempotencyKeyHeader: "not-a-uuid"},
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid Idempotency-Key")
	})

	s.Run("異常系: 入力検証", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "スロットなし", mutate: testutil.Field("slot_id", nil)},
			{name: "サービスなし", mutate: testutil.Field("service_id", nil)},
			{name: "カードなし", mutate: testutil.Field("payment_card", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("異常系: 認証なしは401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("異常系: エラー種別をステータスに変換", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "スロット予約済み", err: slot.ErrSlotNotAvailable, expectedStatus: http.StatusConflict, expectedMsg: "slot is not available"},
			{name: "決済失敗", err: errs.PaymentFailed(errors.New("card declined"), "payment failed"), expectedStatus: http.StatusPaymentRequired, expectedMsg: "payment failed"},
			{name: "スロットなし", err: slot.ErrSlotNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "slot not found"},
			{name: "過去のスロット", err: slot.ErrSlotInPast, expectedStatus: http.StatusUnprocessableEntity, expectedMsg: "slot date is in the past"},
			{name: "内部エラー", err: errors.New("connection reset"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), reqBody, s.customerID, gomock.Nil()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("正常系: 予約を返す", func() {
		view := &queries.BookingView{ID: uuid.New(), CustomerID: s.customerID, Status: booking.StatusConfirmed.String(), TotalPriceCents: 10000}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.customerID, user.RoleCustomer).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "token")

		var got queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		if diff := cmp.Diff(*view, got); diff != "" {
			s.Failf("booking view mismatch", "(-want +got):\n%s", diff)
		}
	})

	s.Run("異常系: 他人の予約は403", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id, s.customerID, user.RoleCustomer).Return(nil, queries.ErrBookingAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "booking access denied")
	})

	s.Run("異常系: 不正なIDは400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/abc", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *BookingHandlerTestSuite) TestListMine() {
	s.Run("正常系: 次ページのカーソルを返す", func() {
		items := []*queries.BookingView{{ID: uuid.New()}, {ID: uuid.New()}}
		s.mockQueries.EXPECT().
			ListByCustomer(gomock.Any(), s.customerID, &queries.Cursor{After: "c1"}, 2).
			Return(items, &queries.Cursor{After: "c2"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=2&after=c1", nil, "token")

		var response struct {
			Bookings   []queries.BookingView `json:"bookings"`
			NextCursor string                `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Bookings, 2)
		s.Equal("c2", response.NextCursor)
	})

	s.Run("正常系: 既定の件数で最終ページ", func() {
		s.mockQueries.EXPECT().
			ListByCustomer(gomock.Any(), s.customerID, gomock.Nil(), queries.DefaultListLimit).
			Return([]*queries.BookingView{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotContains(response, "next_cursor")
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/cancel"

	s.Run("正常系: 返金情報を返す", func() {
		refundID := uuid.New()
		req := reqdto.CancelBookingRequest{Reason: "sick"}
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.customerID, id, req).
			Return(&commands.CancelBookingResult{BookingID: id, RefundID: refundID, RefundAmount: 5000, RefundStatus: refund.StatusPending}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "token")

		var response resdto.CancelBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(5000), response.RefundAmount)
		s.Equal("PENDING", response.RefundStatus)
		s.Require().NotNil(response.RefundID)
		s.Equal(refundID, *response.RefundID)
	})

	s.Run("正常系: 本文なしでも取消できる", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.customerID, id, reqdto.CancelBookingRequest{}).
			Return(&commands.CancelBookingResult{BookingID: id}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotContains(response, "refund_id")
	})

	s.Run("異常系: 取消済みは422", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.customerID, id, gomock.Any()).
			Return(nil, booking.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "booking status does not allow this operation")
	})
}

func (s *BookingHandlerTestSuite) TestProviderActions() {
	id := uuid.New()

	s.Run("正常系: 完了は204", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), s.providerID, id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/provider/bookings/"+id.String()+"/complete", nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("異常系: PENDINGの完了は422", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), s.providerID, id).Return(booking.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/provider/bookings/"+id.String()+"/complete", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("正常系: 無断キャンセルは204", func() {
		s.mockCommands.EXPECT().MarkNoShow(gomock.Any(), s.providerID, id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/provider/bookings/"+id.String()+"/no-show", nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
