package api

import (
	"log/slog"
	"net/http"

	reqdto "bibliolights/internal/handler/dto/request"
	resdto "bibliolights/internal/handler/dto/response"
	"bibliolights/internal/handler/httperr"
	"bibliolights/internal/handler/middleware"
	"bibliolights/internal/usecase/commands"
	"bibliolights/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookRequestHandler struct {
	admission commands.AdmissionCommands
	requests  commands.BookRequestCommands
	q         queries.BookRequestQueries
}

func NewBookRequestHandler(admission commands.AdmissionCommands, requests commands.BookRequestCommands, q queries.BookRequestQueries) *BookRequestHandler {
	return &BookRequestHandler{admission: admission, requests: requests, q: q}
}

// @Summary Request a book
// @Description Reserves one slot of the entry's quota and records a pending request
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Catalog entry ID"
// @Param request body reqdto.RequestBookRequest true "Delivery option and notes"
// @Success 201 {object} resdto.BookRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /books/{id}/requests [post]
func (h *BookRequestHandler) RequestBook(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	entryID, ok := parseID(c, "id", "catalog entry id")
	if !ok {
		return
	}
	var req reqdto.RequestBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	created, err := h.admission.RequestBook(c.Request.Context(), commands.RequestBookInput{
		UserID:         userID,
		CatalogEntryID: entryID,
		DeliveryOption: req.DeliveryOption,
		Notes:          req.Notes,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondRequest(c, http.StatusCreated, created.ID())
}

// @Summary List own book requests
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.BookRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /requests [get]
func (h *BookRequestHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	cursor, limit := parsePage(c)
	items, next, err := h.q.ListForUser(c.Request.Context(), userID, statusFilter(c), cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromBookRequestList(items)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, page("requests", res, next))
}

// @Summary List all book requests
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.BookRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/requests [get]
func (h *BookRequestHandler) ListAll(c *gin.Context) {
	cursor, limit := parsePage(c)
	items, next, err := h.q.ListAll(c.Request.Context(), statusFilter(c), cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromBookRequestList(items)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, page("requests", res, next))
}

// @Summary Transition a book request
// @Description Moves a request along pending → approved|rejected, approved → processing → delivered
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Book request ID"
// @Param request body reqdto.TransitionRequestRequest true "Target status"
// @Success 200 {object} resdto.BookRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/requests/{id} [put]
func (h *BookRequestHandler) Transition(c *gin.Context) {
	id, ok := parseID(c, "id", "book request id")
	if !ok {
		return
	}
	var req reqdto.TransitionRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if _, err := h.requests.Transition(c.Request.Context(), id, req.Status); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondRequest(c, http.StatusOK, id)
}

func (h *BookRequestHandler) respondRequest(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to load book request after write", "book_request_id", id, "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load book request", nil)
		return
	}
	res, err := resdto.FromBookRequestView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, res)
}
