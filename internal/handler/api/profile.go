package api

import (
	"net/http"

	reqdto "bibliolights/internal/handler/dto/request"
	resdto "bibliolights/internal/handler/dto/response"
	"bibliolights/internal/handler/httperr"
	"bibliolights/internal/handler/middleware"
	"bibliolights/internal/usecase/commands"
	"bibliolights/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	cmds commands.ProfileCommands
	q    queries.ProfileQueries
}

func NewProfileHandler(cmds commands.ProfileCommands, q queries.ProfileQueries) *ProfileHandler {
	return &ProfileHandler{cmds: cmds, q: q}
}

// @Summary Toggle favorite
// @Description Adds the entry to the caller's favorites, or removes it when already present
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "Catalog entry ID"
// @Success 200 {object} resdto.FavoriteToggleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /books/{id}/favorite [post]
func (h *ProfileHandler) ToggleFavorite(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	entryID, ok := parseID(c, "id", "catalog entry id")
	if !ok {
		return
	}
	favorited, err := h.cmds.ToggleFavorite(c.Request.Context(), userID, entryID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FavoriteToggleResponse{CatalogEntryID: entryID, Favorited: favorited})
}

// @Summary List favorites
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.FavoriteResponse
// @Failure 401 {object} httperr.Response
// @Router /users/me/favorites [get]
func (h *ProfileHandler) Favorites(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	items, err := h.q.Favorites(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromFavoriteList(items)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": res})
}

// @Summary Get profile details
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserDetailsResponse
// @Failure 401 {object} httperr.Response
// @Router /users/me/details [get]
func (h *ProfileHandler) Details(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	view, err := h.q.Details(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromUserDetailsView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Save profile details
// @Description Replaces the whole profile; omitted or blank fields are stored as null
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SaveDetailsRequest true "Profile details"
// @Success 200 {object} resdto.UserDetailsResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /users/me/details [put]
func (h *ProfileHandler) SaveDetails(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.SaveDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToDomain()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if _, err = h.cmds.SaveDetails(c.Request.Context(), userID, in); err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.q.Details(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromUserDetailsView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
