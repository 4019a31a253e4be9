package devserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/titaska/bitukai-client/internal/models"
	"github.com/titaska/bitukai-client/pkg/utils"
)

// TaxHandler serves the tax rate endpoints.
type TaxHandler struct {
	store *Store
}

// NewTaxHandler creates a TaxHandler.
func NewTaxHandler(store *Store) *TaxHandler {
	return &TaxHandler{store: store}
}

// ListTaxes handles GET /tax.
func (h *TaxHandler) ListTaxes(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListTaxes())
}

// GetTax handles GET /tax/:id.
func (h *TaxHandler) GetTax(c *gin.Context) {
	tax, err := h.store.GetTax(c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "GetTax", "Tax not found.")
		return
	}
	c.JSON(http.StatusOK, tax)
}

// CreateTax handles POST /tax.
func (h *TaxHandler) CreateTax(c *gin.Context) {
	var req models.TaxCreateUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		if errors.Is(err, models.ErrTaxValidation) {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create tax.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, h.store.CreateTax(req))
}

// UpdateTax handles PUT /tax/:id.
func (h *TaxHandler) UpdateTax(c *gin.Context) {
	var req models.TaxCreateUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	tax, err := h.store.UpdateTax(c.Param("id"), req)
	if err != nil {
		respondStoreError(c, err, "UpdateTax", "Tax not found.")
		return
	}
	c.JSON(http.StatusOK, tax)
}

// DeleteTax handles DELETE /tax/:id.
func (h *TaxHandler) DeleteTax(c *gin.Context) {
	if err := h.store.DeleteTax(c.Param("id")); err != nil {
		respondStoreError(c, err, "DeleteTax", "Tax not found.")
		return
	}
	c.Status(http.StatusNoContent)
}
