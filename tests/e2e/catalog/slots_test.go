//go:build e2e

package catalog_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"service-marketplace/internal/domain/user"
	"service-marketplace/internal/handler/dto/request"
	"service-marketplace/internal/handler/dto/response"
	"service-marketplace/internal/usecase/queries"
	"service-marketplace/tests/common/authtest"
	"service-marketplace/tests/common/dbtest"
	"service-marketplace/tests/common/httptest"
	"service-marketplace/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type slotsSuite struct {
	e2e.SharedSuite

	providerToken string
	serviceID     uuid.UUID
	tomorrow      time.Time
}

func TestSlotsSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(slotsSuite))
}

func (s *slotsSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	t := s.T()
	var providerID uuid.UUID
	providerID, s.providerToken = authtest.CreateAndLogin(t, s.DB, s.Router, "provider@example.com", user.RoleServiceProvider)
	s.serviceID = dbtest.CreateTestService(t, s.DB, providerID, "Massage", 8000, 30)
	s.tomorrow = time.Now().UTC().AddDate(0, 0, 1)
}

func (s *slotsSuite) setAvailability(start, end string) *response.CreatedResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/provider/availability", request.SetAvailabilityRequest{
		DayOfWeek: strings.ToUpper(s.tomorrow.Weekday().String()),
		StartTime: start,
		EndTime:   end,
	}, s.providerToken)
	if w.Code != http.StatusCreated {
		return nil
	}
	var res response.CreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return &res
}

func (s *slotsSuite) listSlots() []queries.SlotView {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet,
		"/api/services/"+s.serviceID.String()+"/slots?date="+s.tomorrow.Format(time.DateOnly), nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res struct {
		Slots []queries.SlotView `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res.Slots
}

func (s *slotsSuite) storedSlots() int {
	var n int
	require.NoError(s.T(), s.DB.QueryRow(s.T().Context(),
		"SELECT count(*) FROM slots WHERE service_id = $1 AND slot_date = $2::date",
		s.serviceID, s.tomorrow.Format(time.DateOnly)).Scan(&n))
	return n
}

func (s *slotsSuite) TestGeneration() {
	s.Run("正常系: 稼働時間から枠が生成され再取得しても重複しない", func() {
		t := s.T()
		require.NotNil(t, s.setAvailability("09:00", "11:00"))

		first := s.listSlots()
		require.Len(t, first, 4)
		require.Equal(t, "09:00", first[0].StartTime[:5])
		require.Equal(t, "11:00", first[3].EndTime[:5])

		second := s.listSlots()
		require.Len(t, second, 4)
		require.Equal(t, 4, s.storedSlots())
	})

	s.Run("正常系: 稼働時間の追加で枠が増える", func() {
		t := s.T()
		require.NotNil(t, s.setAvailability("09:00", "10:00"))
		require.Len(t, s.listSlots(), 2)

		require.NotNil(t, s.setAvailability("14:00", "15:00"))
		require.Len(t, s.listSlots(), 4)
	})

	s.Run("異常系: 重なる稼働時間は拒否", func() {
		t := s.T()
		require.NotNil(t, s.setAvailability("09:00", "11:00"))
		require.Nil(t, s.setAvailability("10:00", "12:00"))
		require.Len(t, s.listSlots(), 4)
	})

	s.Run("異常系: 同じ曜日への同時登録は重なりを残さない", func() {
		t := s.T()
		day := strings.ToUpper(s.tomorrow.Weekday().String())

		const attempts = 5
		codes := make([]int, attempts)
		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				// each window overlaps every other one
				codes[i] = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/provider/availability", request.SetAvailabilityRequest{
					DayOfWeek: day,
					StartTime: "09:00",
					EndTime:   []string{"10:00", "10:30", "11:00", "11:30", "12:00"}[i],
				}, s.providerToken).Code
			}()
		}
		wg.Wait()

		var created, conflicted int
		for _, c := range codes {
			switch c {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			}
		}
		require.Equal(t, 1, created, "codes=%v", codes)
		require.Equal(t, attempts-1, conflicted, "codes=%v", codes)

		var windows int
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT count(*) FROM availabilities").Scan(&windows))
		require.Equal(t, 1, windows)
	})

	s.Run("正常系: ブロックした枠は一覧に出ない", func() {
		t := s.T()
		require.NotNil(t, s.setAvailability("09:00", "10:00"))
		slots := s.listSlots()
		require.Len(t, slots, 2)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/provider/slots/"+slots[0].ID.String()+"/block", nil, s.providerToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		require.Len(t, s.listSlots(), 1)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/provider/slots/"+slots[0].ID.String()+"/unblock", nil, s.providerToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		require.Len(t, s.listSlots(), 2)
	})
}
