package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nicitum/orderappu-sub000/internal/domain"
	"github.com/nicitum/orderappu-sub000/internal/port"
	"github.com/nicitum/orderappu-sub000/internal/service"
)

// OrderHandler handles order lifecycle endpoints.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// parseDate parses a YYYY-MM-DD query value.
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// List handles GET /api/v1/orders
func (h *OrderHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	var filter port.OrderFilter
	if s := c.Query("status"); s != "" {
		status := domain.OrderStatus(s)
		if !domain.ValidOrderStatuses[status] {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid status filter")
			return
		}
		filter.Status = status
	}
	if s := c.Query("approve_status"); s != "" {
		approve := domain.ApproveStatus(s)
		if !domain.ValidApproveStatuses[approve] {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid approve_status filter")
			return
		}
		filter.ApproveStatus = approve
	}
	if s := c.Query("customer_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid customer_id filter")
			return
		}
		filter.CustomerID = &id
	}
	if s := c.Query("from"); s != "" {
		from, err := parseDate(s)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "from must be YYYY-MM-DD")
			return
		}
		filter.From = &from
	}
	if s := c.Query("to"); s != "" {
		to, err := parseDate(s)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "to must be YYYY-MM-DD")
			return
		}
		// inclusive upper bound on the day
		to = to.Add(24*time.Hour - time.Nanosecond)
		filter.To = &to
	}

	orders, total, err := h.orderService.List(c.Request.Context(), filter, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, orders, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/orders/:id
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, order)
}

// UpdateItems handles PUT /api/v1/orders/:id/items
func (h *OrderHandler) UpdateItems(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input service.UpdateOrderItemsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	order, err := h.orderService.UpdateItems(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, order)
}

// Accept handles POST /api/v1/orders/:id/accept
func (h *OrderHandler) Accept(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	order, err := h.orderService.Accept(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, order)
}

// Reject handles POST /api/v1/orders/:id/reject
func (h *OrderHandler) Reject(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&req)

	order, err := h.orderService.Reject(c.Request.Context(), id, req.Reason)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, order)
}

// Cancel handles POST /api/v1/orders/:id/cancel
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&req)

	order, err := h.orderService.Cancel(c.Request.Context(), id, req.Reason)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, order)
}

// Deliver handles POST /api/v1/orders/:id/deliver
func (h *OrderHandler) Deliver(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	order, err := h.orderService.Deliver(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, order)
}
