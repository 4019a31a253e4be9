package devserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/titaska/bitukai-client/internal/models"
	"github.com/titaska/bitukai-client/pkg/utils"
)

// OrderHandler serves the catering order endpoints.
type OrderHandler struct {
	store *Store
}

// NewOrderHandler creates an OrderHandler.
func NewOrderHandler(store *Store) *OrderHandler {
	return &OrderHandler{store: store}
}

// CreateOrder handles POST /orders.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req models.OrderCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	if utils.IsEmpty(req.RegistrationNumber) {
		utils.RespondValidationFailed(c, "registrationNumber is required")
		return
	}
	c.JSON(http.StatusCreated, h.store.CreateOrder(req))
}

// ListOrders handles GET /orders?registrationNumber=&status=.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !models.IsValidOrderStatus(status) {
		utils.RespondValidationFailed(c, "unknown order status: "+status)
		return
	}

	orders := h.store.ListOrders(c.Query("registrationNumber"), status)
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /orders/:id.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.store.GetOrder(c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "GetOrder", "Order not found.")
		return
	}
	c.JSON(http.StatusOK, order)
}

// AddOrderLine handles POST /orders/:id/lines.
func (h *OrderHandler) AddOrderLine(c *gin.Context) {
	var req models.OrderLineCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	if utils.IsEmpty(req.ProductID) || req.Quantity <= 0 {
		utils.RespondValidationFailed(c, "productId and a positive quantity are required")
		return
	}

	line, err := h.store.AddOrderLine(c.Param("id"), req)
	if err != nil {
		respondStoreError(c, err, "AddOrderLine", "Order not found.")
		return
	}
	c.JSON(http.StatusCreated, line)
}

// UpdateOrderLine handles PUT /orders/:id/lines/:lineId.
func (h *OrderHandler) UpdateOrderLine(c *gin.Context) {
	var req models.OrderLineUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	if req.Quantity <= 0 {
		utils.RespondValidationFailed(c, "quantity must be positive")
		return
	}

	line, err := h.store.UpdateOrderLine(c.Param("id"), c.Param("lineId"), req)
	if err != nil {
		respondStoreError(c, err, "UpdateOrderLine", "Order or line not found.")
		return
	}
	c.JSON(http.StatusOK, line)
}

// DeleteOrderLine handles DELETE /orders/:id/lines/:lineId.
func (h *OrderHandler) DeleteOrderLine(c *gin.Context) {
	if err := h.store.DeleteOrderLine(c.Param("id"), c.Param("lineId")); err != nil {
		respondStoreError(c, err, "DeleteOrderLine", "Order or line not found.")
		return
	}
	c.Status(http.StatusNoContent)
}

// CalculateOrder handles POST /orders/:id/calculate.
func (h *OrderHandler) CalculateOrder(c *gin.Context) {
	order, err := h.store.CalculateOrder(c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "CalculateOrder", "Order not found.")
		return
	}
	c.JSON(http.StatusOK, order)
}

// CloseOrder handles POST /orders/:id/close.
func (h *OrderHandler) CloseOrder(c *gin.Context) {
	order, err := h.store.CloseOrder(c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "CloseOrder", "Order not found.")
		return
	}
	c.JSON(http.StatusOK, order)
}
