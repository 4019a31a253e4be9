package devserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/titaska/bitukai-client/pkg/utils"
)

// BusinessHandler serves the tenant endpoints.
type BusinessHandler struct {
	store *Store
}

// NewBusinessHandler creates a BusinessHandler.
func NewBusinessHandler(store *Store) *BusinessHandler {
	return &BusinessHandler{store: store}
}

// ListBusinesses handles GET /business.
func (h *BusinessHandler) ListBusinesses(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListBusinesses())
}

// GetBusiness handles GET /business/:registrationNumber.
func (h *BusinessHandler) GetBusiness(c *gin.Context) {
	business, err := h.store.GetBusiness(c.Param("registrationNumber"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Business not found.", c.Param("registrationNumber")))
			return
		}
		utils.LogError(err, "GetBusiness: store lookup failed")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch business.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, business)
}
