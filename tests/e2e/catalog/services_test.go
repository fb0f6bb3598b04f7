//go:build e2e

package catalog_test

import (
	"encoding/json"
	"net/http"

	"service-marketplace/internal/usecase/queries"
	"service-marketplace/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func (s *slotsSuite) publicServices() []queries.ServiceView {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/services", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res struct {
		Services []queries.ServiceView `json:"services"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res.Services
}

func (s *slotsSuite) TestBrowse() {
	s.Run("正常系: 公開一覧と詳細に出品が表示される", func() {
		t := s.T()
		services := s.publicServices()
		require.Len(t, services, 1)
		require.Equal(t, s.serviceID, services[0].ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/services/"+s.serviceID.String(), nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		var view queries.ServiceView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		require.Equal(t, "Massage", view.Title)
		require.EqualValues(t, 8000, view.PriceCents)
	})

	s.Run("正常系: 無効化した出品は公開一覧から消える", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/provider/services/"+s.serviceID.String(), nil, s.providerToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		require.Empty(t, s.publicServices())
	})

	s.Run("異常系: 存在しない出品は404", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/services/"+uuid.NewString(), nil, "")
		require.Equal(s.T(), http.StatusNotFound, w.Code)
	})
}
