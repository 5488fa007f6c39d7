package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nicitum/orderappu-sub000/internal/service"
)

// CartHandler handles the per-customer working cart endpoints.
type CartHandler struct {
	cartService  service.CartService
	orderService service.OrderService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService service.CartService, orderService service.OrderService) *CartHandler {
	return &CartHandler{cartService: cartService, orderService: orderService}
}

// customerIDParam parses the :customerID path parameter.
func customerIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("customerID"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid customer id")
		return uuid.Nil, false
	}
	return id, true
}

// Get handles GET /api/v1/cart/:customerID
func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	customerID, ok := customerIDParam(c)
	if !ok {
		return
	}

	cart, err := h.cartService.Get(c.Request.Context(), userID, customerID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, cart)
}

// SetItems handles PUT /api/v1/cart/:customerID
func (h *CartHandler) SetItems(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	customerID, ok := customerIDParam(c)
	if !ok {
		return
	}

	var req struct {
		Items []service.CartItemInput `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	cart, err := h.cartService.SetItems(c.Request.Context(), userID, customerID, req.Items)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, cart)
}

// Clear handles DELETE /api/v1/cart/:customerID
func (h *CartHandler) Clear(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	customerID, ok := customerIDParam(c)
	if !ok {
		return
	}

	if err := h.cartService.Clear(c.Request.Context(), userID, customerID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "cart cleared"})
}

// Checkout handles POST /api/v1/cart/:customerID/checkout
func (h *CartHandler) Checkout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	customerID, ok := customerIDParam(c)
	if !ok {
		return
	}

	var req struct {
		DueOn *string `json:"due_on"`
	}
	// body is optional
	_ = c.ShouldBindJSON(&req)

	input := service.CheckoutInput{CustomerID: customerID}
	if req.DueOn != nil {
		due, err := parseDate(*req.DueOn)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "due_on must be YYYY-MM-DD")
			return
		}
		input.DueOn = &due
	}

	order, err := h.orderService.Checkout(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, order)
}
