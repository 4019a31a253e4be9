package devserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/titaska/bitukai-client/internal/models"
	"github.com/titaska/bitukai-client/pkg/utils"
)

// ProductHandler serves the catalog and staff-eligibility endpoints.
type ProductHandler struct {
	store *Store
}

// NewProductHandler creates a ProductHandler.
func NewProductHandler(store *Store) *ProductHandler {
	return &ProductHandler{store: store}
}

// ListProducts handles GET /products?type=&registrationNumber=&search=&page=&limit=.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	params := models.ProductListParams{
		RegistrationNumber: c.Query("registrationNumber"),
		Type:               models.ProductType(c.Query("type")),
		Search:             c.Query("search"),
		Page:               page,
		Limit:              limit,
	}

	data, pagination := h.store.ListProducts(params)
	if data == nil {
		data = []models.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"data": data, "pagination": pagination})
}

// GetProduct handles GET /products/:id.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.store.GetProduct(c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "GetProduct", "Product not found.")
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /products.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req models.ProductCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	if utils.IsEmpty(req.Name) || utils.IsEmpty(req.RegistrationNumber) {
		utils.RespondValidationFailed(c, "name and registrationNumber are required")
		return
	}
	if req.Type == models.ProductTypeService && (req.DurationMinutes == nil || *req.DurationMinutes <= 0) {
		utils.RespondValidationFailed(c, "a service requires a positive durationMinutes")
		return
	}
	c.JSON(http.StatusCreated, h.store.CreateProduct(req))
}

// UpdateProduct handles PUT /products/:id.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req models.ProductUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	product, err := h.store.UpdateProduct(c.Param("id"), req)
	if err != nil {
		respondStoreError(c, err, "UpdateProduct", "Product not found.")
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /products/:id.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.store.DeleteProduct(c.Param("id")); err != nil {
		respondStoreError(c, err, "DeleteProduct", "Product not found.")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListProductStaff handles GET /products/:id/staff.
func (h *ProductHandler) ListProductStaff(c *gin.Context) {
	links := h.store.ListProductStaff(c.Param("id"))
	if links == nil {
		links = []models.ProductStaff{}
	}
	c.JSON(http.StatusOK, links)
}

// LinkProductStaff handles POST /products/:id/staff.
func (h *ProductHandler) LinkProductStaff(c *gin.Context) {
	var req models.ProductStaffLink
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	if utils.IsEmpty(req.StaffID) {
		utils.RespondValidationFailed(c, "staffId is required")
		return
	}
	link, err := h.store.LinkProductStaff(c.Param("id"), req)
	if err != nil {
		respondStoreError(c, err, "LinkProductStaff", "Product or staff member not found.")
		return
	}
	c.JSON(http.StatusCreated, link)
}

// UpdateProductStaff handles PUT /products/:id/staff/:staffId.
func (h *ProductHandler) UpdateProductStaff(c *gin.Context) {
	var req models.ProductStaffLink
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	link, err := h.store.UpdateProductStaff(c.Param("id"), c.Param("staffId"), req)
	if err != nil {
		respondStoreError(c, err, "UpdateProductStaff", "Staff link not found.")
		return
	}
	c.JSON(http.StatusOK, link)
}

// UnlinkProductStaff handles DELETE /products/:id/staff/:staffId.
func (h *ProductHandler) UnlinkProductStaff(c *gin.Context) {
	if err := h.store.UnlinkProductStaff(c.Param("id"), c.Param("staffId")); err != nil {
		respondStoreError(c, err, "UnlinkProductStaff", "Staff link not found.")
		return
	}
	c.Status(http.StatusNoContent)
}
