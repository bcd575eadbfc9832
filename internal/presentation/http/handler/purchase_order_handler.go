package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sothea-dev/shoppos-api/internal/application/service"
	"github.com/sothea-dev/shoppos-api/internal/domain/enum"
	"github.com/sothea-dev/shoppos-api/internal/domain/repository"
	"github.com/sothea-dev/shoppos-api/internal/presentation/http/dto/response"
	"github.com/sothea-dev/shoppos-api/pkg/pagination"
)

// PurchaseOrderHandler handles purchase order HTTP requests
type PurchaseOrderHandler struct {
	purchaseService *service.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a new purchase order handler
func NewPurchaseOrderHandler(purchaseService *service.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{purchaseService: purchaseService}
}

type purchaseLineRequest struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

func toPurchaseLineInputs(lines []purchaseLineRequest) []service.PurchaseLineInput {
	items := make([]service.PurchaseLineInput, len(lines))
	for i, line := range lines {
		items[i] = service.PurchaseLineInput{
			Name:     line.Name,
			Quantity: line.Quantity,
			Price:    line.Price,
		}
	}
	return items
}

// Create handles creating a purchase order
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req struct {
		SupplierID       uuid.UUID             `json:"supplier_id" binding:"required"`
		PurchaseDate     *string               `json:"purchase_date"`
		ExpectedDelivery *string               `json:"expected_delivery"`
		Items            []purchaseLineRequest `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreatePurchaseOrderInput{
		Actor:      *actor,
		SupplierID: req.SupplierID,
		Items:      toPurchaseLineInputs(req.Items),
	}

	if req.PurchaseDate != nil {
		date, err := time.Parse(dateLayout, *req.PurchaseDate)
		if err != nil {
			response.BadRequest(c, "Invalid purchase_date, expected YYYY-MM-DD")
			return
		}
		input.PurchaseDate = &date
	}
	if req.ExpectedDelivery != nil {
		date, err := time.Parse(dateLayout, *req.ExpectedDelivery)
		if err != nil {
			response.BadRequest(c, "Invalid expected_delivery, expected YYYY-MM-DD")
			return
		}
		input.ExpectedDelivery = &date
	}

	order, err := h.purchaseService.CreatePurchaseOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Purchase order created successfully", order)
}

// Get handles getting a single purchase order
func (h *PurchaseOrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	order, err := h.purchaseService.GetPurchaseOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order retrieved successfully", order)
}

// Update handles a partial purchase order update
func (h *PurchaseOrderHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	var req struct {
		SupplierID       *uuid.UUID            `json:"supplier_id"`
		PurchaseDate     *string               `json:"purchase_date"`
		ExpectedDelivery *string               `json:"expected_delivery"`
		Status           *string               `json:"status"`
		TotalPrice       *decimal.Decimal      `json:"total_price"`
		Items            []purchaseLineRequest `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdatePurchaseOrderInput{
		SupplierID: req.SupplierID,
		TotalPrice: req.TotalPrice,
	}

	if req.Status != nil {
		status := enum.PurchaseStatus(*req.Status)
		input.Status = &status
	}
	if req.PurchaseDate != nil {
		date, err := time.Parse(dateLayout, *req.PurchaseDate)
		if err != nil {
			response.BadRequest(c, "Invalid purchase_date, expected YYYY-MM-DD")
			return
		}
		input.PurchaseDate = &date
	}
	if req.ExpectedDelivery != nil {
		date, err := time.Parse(dateLayout, *req.ExpectedDelivery)
		if err != nil {
			response.BadRequest(c, "Invalid expected_delivery, expected YYYY-MM-DD")
			return
		}
		input.ExpectedDelivery = &date
	}
	if req.Items != nil {
		input.Items = toPurchaseLineInputs(req.Items)
	}

	order, err := h.purchaseService.UpdatePurchaseOrder(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order updated successfully", order)
}

// List handles listing purchase orders. Each date bound applies on its own.
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.PurchaseOrderFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
	}
	params.Pagination.Validate()

	if startStr := c.Query("start_date"); startStr != "" {
		if start, err := time.Parse(dateLayout, startStr); err == nil {
			params.StartDate = &start
		}
	}
	if endStr := c.Query("end_date"); endStr != "" {
		if end, err := time.Parse(dateLayout, endStr); err == nil {
			end = end.Add(24*time.Hour - time.Nanosecond)
			params.EndDate = &end
		}
	}
	if supplierStr := c.Query("supplier_id"); supplierStr != "" {
		if supplierID, err := uuid.Parse(supplierStr); err == nil {
			params.SupplierID = &supplierID
		}
	}

	result, err := h.purchaseService.ListPurchaseOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Purchase orders retrieved successfully", result)
}

// Delete handles deleting a purchase order
func (h *PurchaseOrderHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase order ID")
		return
	}

	if err := h.purchaseService.DeletePurchaseOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase order deleted successfully", nil)
}
