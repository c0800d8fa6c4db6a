//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"bibliolights/internal/domain/order"
	"bibliolights/internal/domain/user"
	"bibliolights/internal/handler/api"
	resdto "bibliolights/internal/handler/dto/response"
	"bibliolights/internal/infra"
	"bibliolights/internal/pkg/ptr"
	"bibliolights/internal/usecase/queries"
	"bibliolights/tests/common/builder"
	"bibliolights/tests/common/httptest"
	"bibliolights/tests/common/testutil"
	commandsmock "bibliolights/tests/mock/commands"
	queriesmock "bibliolights/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	ownerID      uuid.UUID
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	handler := api.NewOrderHandler(s.mockCommands, s.mockQueries)

	s.ownerID = uuid.New()
	customer := fakeAuth(s.ownerID, user.RoleCustomer)
	admin := fakeAuth(uuid.New(), user.RoleAdmin)

	s.router.POST("/orders", customer, handler.Create)
	s.router.GET("/orders", customer, handler.ListMine)
	s.router.GET("/admin/orders", admin, handler.ListAll)
	s.router.PUT("/admin/orders/:id", admin, handler.UpdateStatus)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *OrderHandlerTestSuite) TestCreate() {
	b := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) { b.OwnerID = s.ownerID })
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: returns 201 Created with the computed total", func() {
		created, err := b.BuildDomain()
		s.Require().NoError(err)
		view := b.BuildView()
		view.ID = created.ID()

		s.mockCommands.EXPECT().CreateOrder(gomock.Any(), s.ownerID, gomock.Len(2)).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, items []order.LineItemInput) (*order.Order, error) {
				s.Equal(2, items[0].Quantity)
				s.Equal(b.Items[1].CatalogEntryID, items[1].CatalogEntryID)
				return created, nil
			}).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), created.ID()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders", reqBody, "bearer-token")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("25", response.TotalAmount.String())
		s.Equal("created", response.Status)
		s.Len(response.Items, 2)
		s.Nil(response.TrackingURL)
	})

	s.Run("error: 400 Bad Request on invalid input", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
			err    error
		}{
			{name: "missing items", mutate: testutil.Field("items", nil)},
			{name: "quantity is not a number", mutate: testutil.FirstItem("items", testutil.Field("quantity", "two"))},
			{name: "empty items", mutate: testutil.Field("items", []any{}), err: order.ErrEmptyOrder},
			{name: "zero quantity", mutate: testutil.FirstItem("items", testutil.Field("quantity", 0)), err: order.ErrInvalidQuantity},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				if tc.err != nil {
					s.mockCommands.EXPECT().CreateOrder(gomock.Any(), s.ownerID, gomock.Any()).Return(nil, tc.err).Times(1)
				}
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders", body, "bearer-token")
				httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, "VALIDATION_ERROR")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/orders", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *OrderHandlerTestSuite) TestListMine() {
	view := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) { b.OwnerID = s.ownerID }).BuildView()
	s.mockQueries.EXPECT().ListForOwner(gomock.Any(), s.ownerID, nil, nil, queries.DefaultListLimit).
		Return([]*queries.OrderView{view}, nil, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders", nil, "bearer-token")

	var body struct {
		Orders []resdto.OrderResponse `json:"orders"`
	}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body.Orders, 1)
	s.Equal(s.ownerID, body.Orders[0].OwnerID)
}

func (s *OrderHandlerTestSuite) TestListAll() {
	status := "shipped"
	s.mockQueries.EXPECT().ListAll(gomock.Any(), &status, nil, queries.MaxListLimit).
		Return([]*queries.OrderView{}, nil, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/orders?status=shipped&limit=100000", nil, "bearer-token")

	var body struct {
		Orders []resdto.OrderResponse `json:"orders"`
	}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.NotNil(body.Orders)
	s.Empty(body.Orders)
}

// ================================================================================
// TestUpdateStatus
// ================================================================================

func (s *OrderHandlerTestSuite) TestUpdateStatus() {
	b := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) {
		b.Status = order.StatusShipped
		b.TrackingURL = ptr.Of("https://track.example.com/abc")
	})
	url := "/admin/orders/" + b.ID.String()

	s.Run("success: tracking url forwarded when supplied", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), b.ID, "shipped", ptr.Of("https://track.example.com/abc")).
			Return(nil, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"status": "shipped", "trackingUrl": "https://track.example.com/abc"}, "bearer-token")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.TrackingURL)
		s.Equal("https://track.example.com/abc", *response.TrackingURL)
	})

	s.Run("success: omitted tracking url is passed as nil", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), b.ID, "accepted", nil).Return(nil, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), b.ID).Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "accepted"}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: maps command errors", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedKind   string
		}{
			{name: "unknown status", commandsError: order.ErrInvalidStatus, expectedStatus: http.StatusBadRequest, expectedKind: "VALIDATION_ERROR"},
			{name: "bad tracking url", commandsError: order.ErrInvalidTracking, expectedStatus: http.StatusBadRequest, expectedKind: "VALIDATION_ERROR"},
			{
				name:           "order not found",
				commandsError:  infra.WrapRepoErr("order not found", nil, infra.KindNotFound),
				expectedStatus: http.StatusNotFound,
				expectedKind:   "NOT_FOUND",
			},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), b.ID, gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "lost"}, "bearer-token")
				httptest.AssertErrorKind(s.T(), rec, tc.expectedStatus, tc.expectedKind)
			})
		}
	})
}
