package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sothea-dev/shoppos-api/internal/application/service"
	"github.com/sothea-dev/shoppos-api/internal/domain/enum"
	"github.com/sothea-dev/shoppos-api/internal/presentation/http/dto/response"
	"github.com/sothea-dev/shoppos-api/pkg/pagination"
)

// ReceiveOrderHandler handles receive order HTTP requests
type ReceiveOrderHandler struct {
	receiveService *service.ReceiveOrderService
}

// NewReceiveOrderHandler creates a new receive order handler
func NewReceiveOrderHandler(receiveService *service.ReceiveOrderService) *ReceiveOrderHandler {
	return &ReceiveOrderHandler{receiveService: receiveService}
}

// Create handles opening delivery tracking for a purchase order
func (h *ReceiveOrderHandler) Create(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req struct {
		PurchaseOrderID uuid.UUID  `json:"purchase_order_id" binding:"required"`
		Status          *string    `json:"status"`
		ReceiveAt       *time.Time `json:"receive_at"`
		Note            *string    `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateReceiveOrderInput{
		Actor:           *actor,
		PurchaseOrderID: req.PurchaseOrderID,
		ReceiveAt:       req.ReceiveAt,
		Note:            req.Note,
	}
	if req.Status != nil {
		input.Status = enum.PurchaseStatus(*req.Status)
	}

	order, err := h.receiveService.CreateReceiveOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Receive order created successfully", order)
}

// Get handles getting a single receive order
func (h *ReceiveOrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receive order ID")
		return
	}

	order, err := h.receiveService.GetReceiveOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receive order retrieved successfully", order)
}

// Update handles a partial receive order update
func (h *ReceiveOrderHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receive order ID")
		return
	}

	var req struct {
		Status    *string    `json:"status"`
		ReceiveAt *time.Time `json:"receive_at"`
		Note      *string    `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateReceiveOrderInput{
		ReceiveAt: req.ReceiveAt,
		Note:      req.Note,
	}
	if req.Status != nil {
		status := enum.PurchaseStatus(*req.Status)
		input.Status = &status
	}

	order, err := h.receiveService.UpdateReceiveOrder(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receive order updated successfully", order)
}

// List handles listing receive orders
func (h *ReceiveOrderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
	params.Validate()

	result, err := h.receiveService.ListReceiveOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Receive orders retrieved successfully", result)
}

// Delete handles deleting a receive order
func (h *ReceiveOrderHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receive order ID")
		return
	}

	if err := h.receiveService.DeleteReceiveOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receive order deleted successfully", nil)
}
