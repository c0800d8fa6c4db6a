//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"bibliolights/internal/domain/user"
	"bibliolights/internal/handler/api"
	resdto "bibliolights/internal/handler/dto/response"
	"bibliolights/internal/infra"
	"bibliolights/internal/pkg/ptr"
	"bibliolights/internal/usecase/queries"
	"bibliolights/tests/common/builder"
	"bibliolights/tests/common/httptest"
	commandsmock "bibliolights/tests/mock/commands"
	queriesmock "bibliolights/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProfileHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockProfileCommands
	mockQueries  *queriesmock.MockProfileQueries
	userID       uuid.UUID
}

func (s *ProfileHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockProfileCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockProfileQueries(s.mockCtrl)
	handler := api.NewProfileHandler(s.mockCommands, s.mockQueries)

	s.userID = uuid.New()
	auth := fakeAuth(s.userID, user.RoleCustomer)
	s.router.POST("/books/:id/favorite", auth, handler.ToggleFavorite)
	s.router.GET("/users/me/favorites", auth, handler.Favorites)
	s.router.GET("/users/me/details", auth, handler.Details)
	s.router.PUT("/users/me/details", auth, handler.SaveDetails)
}

func (s *ProfileHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProfileHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProfileHandlerTestSuite))
}

func (s *ProfileHandlerTestSuite) TestToggleFavorite() {
	entryID := uuid.New()
	url := "/books/" + entryID.String() + "/favorite"

	s.Run("success: reports the new state", func() {
		for _, favorited := range []bool{true, false} {
			s.mockCommands.EXPECT().ToggleFavorite(gomock.Any(), s.userID, entryID).Return(favorited, nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

			var response resdto.FavoriteToggleResponse
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
			s.Equal(favorited, response.Favorited)
			s.Equal(entryID, response.CatalogEntryID)
		}
	})

	s.Run("error: 404 Not Found for a missing entry", func() {
		s.mockCommands.EXPECT().ToggleFavorite(gomock.Any(), s.userID, entryID).
			Return(false, infra.WrapRepoErr("catalog entry not found", nil, infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorKind(s.T(), rec, http.StatusNotFound, "NOT_FOUND")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *ProfileHandlerTestSuite) TestFavorites() {
	entry := builder.NewCatalogEntryBuilder()
	favoritedAt := time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC)
	s.mockQueries.EXPECT().Favorites(gomock.Any(), s.userID).Return([]*queries.FavoriteView{
		{CatalogEntryView: *entry.BuildView(), FavoritedAt: favoritedAt},
	}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/me/favorites", nil, "bearer-token")

	var body struct {
		Favorites []resdto.FavoriteResponse `json:"favorites"`
	}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body.Favorites, 1)
	s.Equal(entry.ID, body.Favorites[0].ID)
	s.True(favoritedAt.Equal(body.Favorites[0].FavoritedAt))
}

func (s *ProfileHandlerTestSuite) TestDetails() {
	s.Run("success: absent fields render as null", func() {
		s.mockQueries.EXPECT().Details(gomock.Any(), s.userID).
			Return(&queries.UserDetailsView{UserID: s.userID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/me/details", nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		for _, key := range []string{"firstName", "lastName", "address", "city", "country", "phoneNumber", "dob"} {
			v, ok := body[key]
			s.True(ok, "key %s should be present", key)
			s.Nil(v, "key %s should be null", key)
		}
	})
}

func (s *ProfileHandlerTestSuite) TestSaveDetails() {
	url := "/users/me/details"

	s.Run("success: dob parsed as a date and the stored profile returned", func() {
		dob := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
		s.mockCommands.EXPECT().SaveDetails(gomock.Any(), s.userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, in user.DetailsInput) (*user.Details, error) {
				s.Require().NotNil(in.DateOfBirth)
				s.True(dob.Equal(*in.DateOfBirth))
				s.Nil(in.LastName)
				return nil, nil
			}).Times(1)
		s.mockQueries.EXPECT().Details(gomock.Any(), s.userID).Return(&queries.UserDetailsView{
			UserID:      s.userID,
			FirstName:   ptr.Of("Ana"),
			DateOfBirth: &dob,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"firstName": "Ana", "dob": "1990-05-17"}, "bearer-token")

		var response resdto.UserDetailsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.Dob)
		s.Equal("1990-05-17", *response.Dob)
		s.Nil(response.LastName)
	})

	s.Run("error: 400 Bad Request for a malformed dob", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"dob": "17/05/1990"}, "bearer-token")
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, "VALIDATION_ERROR")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})

	s.Run("error: 400 Bad Request for malformed JSON", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPut, url, `{"firstName": 12`, "bearer-token")
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, "VALIDATION_ERROR")
	})
}
