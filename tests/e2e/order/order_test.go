//go:build e2e

package order_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"bibliolights/internal/handler/dto/response"
	"bibliolights/tests/common/authtest"
	"bibliolights/tests/common/dbtest"
	"bibliolights/tests/common/httptest"
	"bibliolights/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	ordersURL      = "/api/orders"
	adminOrdersURL = "/api/admin/orders"
	adminOrderURL  = "/api/admin/orders/%s"
)

type OrderSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *OrderSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *OrderSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestOrderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(OrderSuite))
}

func (s *OrderSuite) createOrder(t *testing.T, token string) response.OrderResponse {
	t.Helper()
	rayuela := dbtest.DefaultCatalogEntry()
	rayuela.Title = "Rayuela"
	first := dbtest.CreateCatalogEntry(t, s.DB, rayuela)
	second := dbtest.CreateCatalogEntry(t, s.DB, dbtest.DefaultCatalogEntry())

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, map[string]any{
		"items": []map[string]any{
			{"catalogEntryId": first, "quantity": 2, "unitPrice": "10.00"},
			{"catalogEntryId": second, "quantity": 1, "unitPrice": "5.50"},
		},
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.OrderResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created
}

func (s *OrderSuite) TestCreateOrder() {
	s.Run("Normal case: total is the sum of line totals", func() {
		t := s.T()
		ownerID, token := s.jwt.CustomerToken(t)

		created := s.createOrder(t, token)

		require.Equal(t, ownerID, created.OwnerID)
		require.Equal(t, "created", created.Status)
		require.Equal(t, "25.5", created.TotalAmount.String())
		require.Nil(t, created.TrackingURL)
		require.Len(t, created.Items, 2)
		require.Equal(t, "Rayuela", created.Items[0].Title)
		require.Equal(t, "20", created.Items[0].LineTotal.String())
	})

	s.Run("Error case: empty order", func() {
		t := s.T()
		_, token := s.jwt.CustomerToken(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, map[string]any{"items": []any{}}, token)
		httptest.AssertErrorKind(t, w, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	s.Run("Error case: unknown catalog entry", func() {
		t := s.T()
		_, token := s.jwt.CustomerToken(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, map[string]any{
			"items": []map[string]any{{"catalogEntryId": uuid.New(), "quantity": 1, "unitPrice": "1"}},
		}, token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func (s *OrderSuite) TestUpdateStatus() {
	s.Run("Normal case: tracking url kept until replaced", func() {
		t := s.T()
		_, customer := s.jwt.CustomerToken(t)
		_, admin := s.jwt.AdminToken(t)
		created := s.createOrder(t, customer)
		url := fmt.Sprintf(adminOrderURL, created.ID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, url,
			map[string]any{"status": "shipped", "trackingUrl": "https://track.example.com/1"}, admin)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, url, map[string]any{"status": "accepted"}, admin)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.OrderResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, "accepted", res.Status)
		require.NotNil(t, res.TrackingURL)
		require.Equal(t, "https://track.example.com/1", *res.TrackingURL)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, url,
			map[string]any{"status": "accepted", "trackingUrl": ""}, admin)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		res = response.OrderResponse{}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Nil(t, res.TrackingURL)
	})

	s.Run("Error case: unknown status and unknown order", func() {
		t := s.T()
		_, customer := s.jwt.CustomerToken(t)
		_, admin := s.jwt.AdminToken(t)
		created := s.createOrder(t, customer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(adminOrderURL, created.ID),
			map[string]any{"status": "teleported"}, admin)
		httptest.AssertErrorKind(t, w, http.StatusBadRequest, "VALIDATION_ERROR")

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(adminOrderURL, uuid.New()),
			map[string]any{"status": "shipped"}, admin)
		httptest.AssertErrorKind(t, w, http.StatusNotFound, "NOT_FOUND")
	})
}

func (s *OrderSuite) TestListing() {
	s.Run("Normal case: owners see their orders, admins filter by status", func() {
		t := s.T()
		_, alice := s.jwt.CustomerToken(t)
		_, bob := s.jwt.CustomerToken(t)
		_, admin := s.jwt.AdminToken(t)
		aliceOrder := s.createOrder(t, alice)
		s.createOrder(t, bob)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(adminOrderURL, aliceOrder.ID),
			map[string]any{"status": "payment_confirmed"}, admin)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var mine struct {
			Orders []response.OrderResponse `json:"orders"`
		}
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, ordersURL, nil, alice)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
		require.Len(t, mine.Orders, 1)
		require.Equal(t, aliceOrder.ID, mine.Orders[0].ID)
		require.Len(t, mine.Orders[0].Items, 2)

		var filtered struct {
			Orders []response.OrderResponse `json:"orders"`
		}
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, adminOrdersURL+"?status=payment_confirmed", nil, admin)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &filtered))
		require.Len(t, filtered.Orders, 1)
		require.Equal(t, "payment_confirmed", filtered.Orders[0].Status)
	})
}
