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

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Create order
// @Description Creates a pending order; the total is the sum of quantity × unit price
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOrderRequest true "Line items"
// @Success 201 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	created, err := h.cmds.CreateOrder(c.Request.Context(), ownerID, req.ToDomain())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondOrder(c, http.StatusCreated, created.ID())
}

// @Summary List own orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /orders [get]
func (h *OrderHandler) ListMine(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	cursor, limit := parsePage(c)
	items, next, err := h.q.ListForOwner(c.Request.Context(), ownerID, statusFilter(c), cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromOrderList(items)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, page("orders", res, next))
}

// @Summary List all orders
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/orders [get]
func (h *OrderHandler) ListAll(c *gin.Context) {
	cursor, limit := parsePage(c)
	items, next, err := h.q.ListAll(c.Request.Context(), statusFilter(c), cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromOrderList(items)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, page("orders", res, next))
}

// @Summary Update order status
// @Description Sets the status and, when given, the tracking url
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "Status and tracking url"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/orders/{id} [put]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id", "order id")
	if !ok {
		return
	}
	var req reqdto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if _, err := h.cmds.UpdateStatus(c.Request.Context(), id, req.Status, req.TrackingURL); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondOrder(c, http.StatusOK, id)
}

func (h *OrderHandler) respondOrder(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to load order after write", "order_id", id, "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load order", nil)
		return
	}
	res, err := resdto.FromOrderView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, res)
}
