package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nicitum/orderappu-sub000/internal/csvexport"
	"github.com/nicitum/orderappu-sub000/internal/service"
)

// exportPageSize caps how many invoices a single export fetches per page.
const exportPageSize = 200

// InvoiceHandler handles invoice endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// CreateFromOrder handles POST /api/v1/invoices
func (h *InvoiceHandler) CreateFromOrder(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var input service.InvoiceFromOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	inv, err := h.invoiceService.CreateFromOrder(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, inv)
}

// CreateDirect handles POST /api/v1/invoices/direct
func (h *InvoiceHandler) CreateDirect(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var input service.DirectInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	inv, err := h.invoiceService.CreateDirect(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, inv)
}

// GetByID handles GET /api/v1/invoices/:id
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	inv, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, inv)
}

// List handles GET /api/v1/invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	customerID, from, to, ok := parseInvoiceFilters(c)
	if !ok {
		return
	}

	invoices, total, err := h.invoiceService.List(c.Request.Context(), customerID, from, to, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, invoices, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// ExportCSV handles GET /api/v1/invoices/export/csv
// Streams the invoice register for the requested date range as CSV.
func (h *InvoiceHandler) ExportCSV(c *gin.Context) {
	customerID, from, to, ok := parseInvoiceFilters(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", "attachment; filename=\""+csvexport.BuildFilename("invoice_register")+"\"")
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		return
	}
	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}

	// Headers are already sent, so a mid-stream failure can only truncate
	// the file: log the abort and stop.
	requestID, _ := c.Get("request_id")
	offset := 0
	for {
		invoices, total, err := h.invoiceService.List(c.Request.Context(), customerID, from, to, offset, exportPageSize)
		if err != nil {
			log.Printf("[%s] invoice export aborted at offset %d: %v", requestID, offset, err)
			w.Flush()
			return
		}
		if err := w.WriteInvoices(invoices); err != nil {
			log.Printf("[%s] invoice export aborted at offset %d: %v", requestID, offset, err)
			w.Flush()
			return
		}
		offset += len(invoices)
		if len(invoices) == 0 || offset >= total {
			break
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Printf("[%s] invoice export flush failed: %v", requestID, err)
	}
}

// parseInvoiceFilters extracts the shared list/export query filters.
func parseInvoiceFilters(c *gin.Context) (customerID *uuid.UUID, from, to *time.Time, ok bool) {
	if s := c.Query("customer_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid customer_id filter")
			return nil, nil, nil, false
		}
		customerID = &id
	}
	if s := c.Query("from"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "from must be YYYY-MM-DD")
			return nil, nil, nil, false
		}
		from = &t
	}
	if s := c.Query("to"); s != "" {
		t, err := parseDate(s)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "to must be YYYY-MM-DD")
			return nil, nil, nil, false
		}
		// inclusive upper bound on the day
		t = t.Add(24*time.Hour - time.Nanosecond)
		to = &t
	}
	return customerID, from, to, true
}
