package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nicitum/orderappu-sub000/internal/service"
)

// CollectionHandler handles cash collection endpoints.
type CollectionHandler struct {
	collectionService service.CollectionService
}

// NewCollectionHandler creates a new CollectionHandler.
func NewCollectionHandler(collectionService service.CollectionService) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService}
}

// Record handles POST /api/v1/collections
func (h *CollectionHandler) Record(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var input service.RecordCollectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	col, err := h.collectionService.Record(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, col)
}

// List handles GET /api/v1/collections
func (h *CollectionHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	var from, to *time.Time
	if s := c.Query("from"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "from must be YYYY-MM-DD")
			return
		}
		from = &t
	}
	if s := c.Query("to"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "to must be YYYY-MM-DD")
			return
		}
		// inclusive upper bound on the day
		t = t.Add(24*time.Hour - time.Nanosecond)
		to = &t
	}

	collections, total, err := h.collectionService.List(c.Request.Context(), from, to, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, collections, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// ListByInvoice handles GET /api/v1/invoices/:id/collections
func (h *CollectionHandler) ListByInvoice(c *gin.Context) {
	invoiceID, ok := parseIDParam(c)
	if !ok {
		return
	}

	collections, err := h.collectionService.ListByInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, collections)
}

// Outstanding handles GET /api/v1/invoices/:id/outstanding
func (h *CollectionHandler) Outstanding(c *gin.Context) {
	invoiceID, ok := parseIDParam(c)
	if !ok {
		return
	}

	report, err := h.collectionService.Outstanding(c.Request.Context(), invoiceID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}
