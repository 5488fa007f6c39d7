package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nicitum/orderappu-sub000/internal/service"
)

// BankAccountHandler handles seller bank account endpoints.
type BankAccountHandler struct {
	bankAccountService service.BankAccountService
}

// NewBankAccountHandler creates a new BankAccountHandler.
func NewBankAccountHandler(bankAccountService service.BankAccountService) *BankAccountHandler {
	return &BankAccountHandler{bankAccountService: bankAccountService}
}

// Create handles POST /api/v1/bank-accounts
func (h *BankAccountHandler) Create(c *gin.Context) {
	var input service.CreateBankAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	acct, err := h.bankAccountService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, acct)
}

// List handles GET /api/v1/bank-accounts
func (h *BankAccountHandler) List(c *gin.Context) {
	accts, err := h.bankAccountService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, accts)
}

// SetDefault handles POST /api/v1/bank-accounts/:id/default
func (h *BankAccountHandler) SetDefault(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.bankAccountService.SetDefault(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "default bank account updated"})
}
