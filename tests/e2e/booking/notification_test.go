//go:build e2e

package booking_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"service-marketplace/internal/handler/dto/response"
	"service-marketplace/internal/usecase/queries"
	"service-marketplace/tests/common/authtest"
	"service-marketplace/tests/common/builder"
	"service-marketplace/tests/common/dbtest"
	"service-marketplace/tests/common/httptest"

	"github.com/stretchr/testify/require"
)

const notificationsURL = "/api/notifications"

func (s *bookingSuite) notifications(t *testing.T, token, query string) []queries.NotificationView {
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, notificationsURL+query, nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res struct {
		Notifications []queries.NotificationView `json:"notifications"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res.Notifications
}

func (s *bookingSuite) unreadCount(t *testing.T, token string) int64 {
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, notificationsURL+"/unread-count", nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.CountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res.Count
}

func (s *bookingSuite) TestNotifications() {
	s.Run("正常系: 予約で顧客とプロバイダーに通知が届く", func() {
		t := s.T()
		code, _ := s.book(s.slotIn(72*time.Hour), builder.ValidCardNumber, nil)
		require.Equal(t, http.StatusCreated, code)

		customer := s.notifications(t, s.customerToken, "")
		require.Len(t, customer, 1)
		require.Equal(t, "BOOKING_CONFIRMED", customer[0].Type)
		require.False(t, customer[0].IsRead)

		providerToken := authtest.LoginUser(t, s.Router, "provider@example.com", dbtest.DefaultPassword)
		provider := s.notifications(t, providerToken, "")
		require.Len(t, provider, 1)
		require.Equal(t, "NEW_BOOKING_RECEIVED", provider[0].Type)
	})

	s.Run("正常系: 既読化で未読数が減る", func() {
		t := s.T()
		s.book(s.slotIn(72*time.Hour), builder.ValidCardNumber, nil)
		s.book(s.slotIn(96*time.Hour), builder.ValidCardNumber, nil)
		require.EqualValues(t, 2, s.unreadCount(t, s.customerToken))

		first := s.notifications(t, s.customerToken, "")[0]
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, notificationsURL+"/"+first.ID.String()+"/read", nil, s.customerToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		require.EqualValues(t, 1, s.unreadCount(t, s.customerToken))
		require.Len(t, s.notifications(t, s.customerToken, "?unread=true"), 1)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, notificationsURL+"/read-all", nil, s.customerToken)
		require.Equal(t, http.StatusOK, w.Code)
		var marked response.CountResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &marked))
		require.EqualValues(t, 1, marked.Count)
		require.Zero(t, s.unreadCount(t, s.customerToken))
	})

	s.Run("異常系: 他人の通知は操作できない", func() {
		t := s.T()
		s.book(s.slotIn(72*time.Hour), builder.ValidCardNumber, nil)
		target := s.notifications(t, s.customerToken, "")[0]

		path := notificationsURL + "/" + target.ID.String()
		require.Equal(t, http.StatusNotFound, httptest.PerformRequest(t, s.Router, http.MethodPost, path+"/read", nil, s.adminToken).Code)
		require.Equal(t, http.StatusNotFound, httptest.PerformRequest(t, s.Router, http.MethodDelete, path, nil, s.adminToken).Code)

		require.Equal(t, http.StatusNoContent, httptest.PerformRequest(t, s.Router, http.MethodDelete, path, nil, s.customerToken).Code)
		require.Empty(t, s.notifications(t, s.customerToken, ""))
	})
}
