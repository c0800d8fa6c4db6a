package api

import (
	"log/slog"
	"net/http"

	reqdto "bibliolights/internal/handler/dto/request"
	resdto "bibliolights/internal/handler/dto/response"
	"bibliolights/internal/handler/httperr"
	"bibliolights/internal/usecase/commands"
	"bibliolights/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	cmds   commands.CatalogCommands
	ledger commands.InventoryLedger
	q      queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, ledger commands.InventoryLedger, q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, ledger: ledger, q: q}
}

// @Summary List catalog entries
// @Description List catalog entries, newest first, with keyset pagination
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.CatalogEntryResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/books [get]
func (h *CatalogHandler) List(c *gin.Context) {
	cursor, limit := parsePage(c)
	items, next, err := h.q.List(c.Request.Context(), cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromCatalogEntryList(items)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, page("books", res, next))
}

// @Summary Get catalog entry
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Catalog entry ID"
// @Success 200 {object} resdto.CatalogEntryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/books/{id} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id", "catalog entry id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromCatalogEntryView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create catalog entry
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCatalogEntryRequest true "Catalog entry"
// @Success 201 {object} resdto.CatalogEntryResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/books [post]
func (h *CatalogHandler) Create(c *gin.Context) {
	var req reqdto.CreateCatalogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	entry, err := h.cmds.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondEntry(c, http.StatusCreated, entry.ID())
}

// @Summary Update catalog entry
// @Description Partial update; omitted fields keep their value
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Catalog entry ID"
// @Param request body reqdto.UpdateCatalogEntryRequest true "Fields to change"
// @Success 200 {object} resdto.CatalogEntryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/books/{id} [put]
func (h *CatalogHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id", "catalog entry id")
	if !ok {
		return
	}
	var req reqdto.UpdateCatalogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if _, err := h.cmds.Update(c.Request.Context(), id, req.ToPatch()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondEntry(c, http.StatusOK, id)
}

// @Summary Delete catalog entry
// @Description Refused while requests or orders still reference the entry
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Catalog entry ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/books/{id} [delete]
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id", "catalog entry id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Update request quota
// @Description The new quota must not be below the reserved count
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Catalog entry ID"
// @Param request body reqdto.UpdateQuotaRequest true "New quota"
// @Success 200 {object} resdto.QuotaResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/books/{id}/quota [put]
func (h *CatalogHandler) UpdateQuota(c *gin.Context) {
	id, ok := parseID(c, "id", "catalog entry id")
	if !ok {
		return
	}
	var req reqdto.UpdateQuotaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	counter, err := h.cmds.UpdateQuota(c.Request.Context(), id, *req.Quota)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.QuotaResponse{
		CatalogEntryID: counter.EntryID,
		Quota:          counter.Quota,
		Reserved:       counter.Reserved,
	})
}

// @Summary Release one reserved slot
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Catalog entry ID"
// @Success 200 {object} resdto.QuotaResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/books/{id}/release [post]
func (h *CatalogHandler) Release(c *gin.Context) {
	id, ok := parseID(c, "id", "catalog entry id")
	if !ok {
		return
	}
	counter, err := h.ledger.Release(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.QuotaResponse{
		CatalogEntryID: counter.EntryID,
		Quota:          counter.Quota,
		Reserved:       counter.Reserved,
	})
}

// @Summary Catalog entry stats
// @Description Quota, reserved count and request count per status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Catalog entry ID"
// @Success 200 {object} resdto.CatalogStatsResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/books/{id}/stats [get]
func (h *CatalogHandler) Stats(c *gin.Context) {
	id, ok := parseID(c, "id", "catalog entry id")
	if !ok {
		return
	}
	stats, err := h.q.Stats(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromCatalogStatsView(stats)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *CatalogHandler) respondEntry(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to load catalog entry after write", "catalog_entry_id", id, "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load catalog entry", nil)
		return
	}
	res, err := resdto.FromCatalogEntryView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, res)
}
