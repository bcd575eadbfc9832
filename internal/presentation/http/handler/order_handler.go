package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sothea-dev/shoppos-api/internal/application/service"
	"github.com/sothea-dev/shoppos-api/internal/domain/enum"
	"github.com/sothea-dev/shoppos-api/internal/domain/pricing"
	"github.com/sothea-dev/shoppos-api/internal/domain/repository"
	"github.com/sothea-dev/shoppos-api/internal/presentation/http/dto/response"
	"github.com/sothea-dev/shoppos-api/pkg/pagination"
)

const dateLayout = "2006-01-02"

// OrderHandler handles shop order HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create handles creating a shop order
func (h *OrderHandler) Create(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req struct {
		PaymentMethod string  `json:"payment_method" binding:"required"`
		Currency      *string `json:"currency"`
		Items         []struct {
			ItemID   uuid.UUID        `json:"item_id"`
			Quantity decimal.Decimal  `json:"quantity"`
			Price    decimal.Decimal  `json:"price"`
			Discount decimal.Decimal  `json:"discount"`
			Options  []pricing.Option `json:"options"`
		} `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.OrderLineInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.OrderLineInput{
			ItemID:   item.ItemID,
			Quantity: item.Quantity,
			Price:    item.Price,
			Discount: item.Discount,
			Options:  item.Options,
		}
	}

	input := &service.CreateOrderInput{
		Actor:         *actor,
		PaymentMethod: enum.PaymentMethod(req.PaymentMethod),
		Items:         items,
	}
	if req.Currency != nil {
		currency := enum.Currency(*req.Currency)
		input.Currency = &currency
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// Get handles getting a single order
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// List handles listing orders. The from/to filter only applies when both
// bounds parse; a lone or malformed bound is ignored.
func (h *OrderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.ShopOrderFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
	}
	params.Pagination.Validate()

	if fromStr := c.Query("from"); fromStr != "" {
		if from, err := time.Parse(dateLayout, fromStr); err == nil {
			params.From = &from
		}
	}
	if toStr := c.Query("to"); toStr != "" {
		if to, err := time.Parse(dateLayout, toStr); err == nil {
			// Include the whole end day
			to = to.Add(24*time.Hour - time.Nanosecond)
			params.To = &to
		}
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Delete handles deleting an order together with its line items
func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order deleted successfully", nil)
}
